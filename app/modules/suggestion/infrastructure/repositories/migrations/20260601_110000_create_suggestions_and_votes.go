package suggestionmigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating suggestions and suggestion_votes tables...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.ExecContext(ctx, `
				DO $$ BEGIN
					CREATE TYPE suggestion_status AS ENUM ('pending', 'approved', 'rejected', 'implemented');
				EXCEPTION WHEN duplicate_object THEN NULL;
				END $$;

				DO $$ BEGIN
					CREATE TYPE vote_type AS ENUM ('upvote', 'downvote');
				EXCEPTION WHEN duplicate_object THEN NULL;
				END $$;
			`); err != nil {
				return fmt.Errorf("failed to create suggestion enum types: %w", err)
			}

			// Counters are denormalized from suggestion_votes and can never go negative.
			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS suggestions (
					id BIGSERIAL PRIMARY KEY,
					title VARCHAR(100) NOT NULL CHECK (char_length(title) BETWEEN 1 AND 100),
					description VARCHAR(1000) NOT NULL CHECK (char_length(description) BETWEEN 1 AND 1000),
					status suggestion_status NOT NULL DEFAULT 'pending',
					upvotes INTEGER NOT NULL DEFAULT 0 CONSTRAINT suggestions_upvotes_non_negative CHECK (upvotes >= 0),
					downvotes INTEGER NOT NULL DEFAULT 0 CONSTRAINT suggestions_downvotes_non_negative CHECK (downvotes >= 0),
					created_by BIGINT NOT NULL REFERENCES users(id),
					created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
				CREATE INDEX IF NOT EXISTS idx_suggestions_created_at ON suggestions(created_at DESC);
			`); err != nil {
				return fmt.Errorf("failed to create suggestions table: %w", err)
			}

			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS suggestion_votes (
					id BIGSERIAL PRIMARY KEY,
					suggestion_id BIGINT NOT NULL REFERENCES suggestions(id) ON DELETE CASCADE,
					user_id BIGINT NOT NULL REFERENCES users(id),
					vote_type vote_type NOT NULL,
					created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					CONSTRAINT suggestion_votes_suggestion_user_key UNIQUE (suggestion_id, user_id)
				);
			`); err != nil {
				return fmt.Errorf("failed to create suggestion_votes table: %w", err)
			}

			return nil
		})
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping suggestions and suggestion_votes tables...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.ExecContext(ctx, `
				DROP TABLE IF EXISTS suggestion_votes;
				DROP TABLE IF EXISTS suggestions;
				DROP TYPE IF EXISTS vote_type;
				DROP TYPE IF EXISTS suggestion_status;
			`); err != nil {
				return fmt.Errorf("failed to drop suggestion tables: %w", err)
			}
			return nil
		})
	})
}
