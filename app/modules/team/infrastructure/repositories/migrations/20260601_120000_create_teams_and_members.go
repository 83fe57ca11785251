package teammigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating teams and team_members tables...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS teams (
					id BIGSERIAL PRIMARY KEY,
					name VARCHAR(50) NOT NULL CHECK (char_length(name) BETWEEN 1 AND 50),
					description VARCHAR(500),
					created_by BIGINT NOT NULL REFERENCES users(id),
					discord_channel_id TEXT,
					max_members INTEGER NOT NULL DEFAULT 5 CONSTRAINT teams_max_members_range CHECK (max_members BETWEEN 2 AND 20),
					created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
				CREATE INDEX IF NOT EXISTS idx_teams_created_at ON teams(created_at);
			`); err != nil {
				return fmt.Errorf("failed to create teams table: %w", err)
			}

			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS team_members (
					id BIGSERIAL PRIMARY KEY,
					team_id BIGINT NOT NULL REFERENCES teams(id) ON DELETE CASCADE,
					user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
					joined_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					CONSTRAINT team_members_team_user_key UNIQUE (team_id, user_id)
				);
			`); err != nil {
				return fmt.Errorf("failed to create team_members table: %w", err)
			}

			return nil
		})
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping teams and team_members tables...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.ExecContext(ctx, `
				DROP TABLE IF EXISTS team_members;
				DROP TABLE IF EXISTS teams;
			`); err != nil {
				return fmt.Errorf("failed to drop team tables: %w", err)
			}
			return nil
		})
	})
}
