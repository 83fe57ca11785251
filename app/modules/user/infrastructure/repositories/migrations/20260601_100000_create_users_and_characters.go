package usermigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating users and characters tables...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.ExecContext(ctx, `
				DO $$ BEGIN
					CREATE TYPE guild_role AS ENUM (
						'guild_master', 'vice_guild_master', 'senior_guild_member', 'member', 'recruit'
					);
				EXCEPTION WHEN duplicate_object THEN NULL;
				END $$;

				DO $$ BEGIN
					CREATE TYPE treasury_status AS ENUM ('paid', 'pending', 'overdue', 'exempt');
				EXCEPTION WHEN duplicate_object THEN NULL;
				END $$;

				DO $$ BEGIN
					CREATE TYPE character_job AS ENUM (
						'gladiator', 'moonlord', 'barbarian', 'destroyer',
						'sniper', 'artillery', 'tempest', 'wind_walker',
						'saleana', 'elestra', 'smasher', 'majesty',
						'guardian', 'crusader', 'saint', 'inquisitor',
						'shooting_star', 'gear_master', 'adept', 'physician',
						'dark_summoner', 'soul_eater', 'blade_dancer', 'spirit_dancer',
						'ripper', 'raven', 'light_fury', 'abyss_walker',
						'flurry', 'sting_breezer', 'avalanche', 'randgrid',
						'defensio', 'ruina', 'impactor', 'luster',
						'mystic_knight', 'grand_master', 'duelist', 'trickster', 'revenant', 'maverick'
					);
				EXCEPTION WHEN duplicate_object THEN NULL;
				END $$;
			`); err != nil {
				return fmt.Errorf("failed to create user enum types: %w", err)
			}

			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS users (
					id BIGSERIAL PRIMARY KEY,
					discord_id VARCHAR(32) NOT NULL UNIQUE,
					discord_username VARCHAR(100) NOT NULL,
					discord_avatar TEXT,
					guild_role guild_role NOT NULL DEFAULT 'recruit',
					treasury_status treasury_status NOT NULL DEFAULT 'pending',
					created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
			`); err != nil {
				return fmt.Errorf("failed to create users table: %w", err)
			}

			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS characters (
					id BIGSERIAL PRIMARY KEY,
					user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
					ign VARCHAR(20) NOT NULL CHECK (char_length(ign) BETWEEN 1 AND 20),
					job character_job NOT NULL,
					stats_screenshot_url TEXT,
					created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
				CREATE INDEX IF NOT EXISTS idx_characters_user_id ON characters(user_id);
			`); err != nil {
				return fmt.Errorf("failed to create characters table: %w", err)
			}

			return nil
		})
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping users and characters tables...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.ExecContext(ctx, `
				DROP TABLE IF EXISTS characters;
				DROP TABLE IF EXISTS users;
				DROP TYPE IF EXISTS character_job;
				DROP TYPE IF EXISTS treasury_status;
				DROP TYPE IF EXISTS guild_role;
			`); err != nil {
				return fmt.Errorf("failed to drop user tables: %w", err)
			}
			return nil
		})
	})
}
