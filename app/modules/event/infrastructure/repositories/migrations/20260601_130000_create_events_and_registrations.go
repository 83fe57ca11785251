package eventmigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating events and event_registrations tables...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.ExecContext(ctx, `
				DO $$ BEGIN
					CREATE TYPE event_status AS ENUM ('upcoming', 'ongoing', 'completed', 'cancelled');
				EXCEPTION WHEN duplicate_object THEN NULL;
				END $$;
			`); err != nil {
				return fmt.Errorf("failed to create event_status type: %w", err)
			}

			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS events (
					id BIGSERIAL PRIMARY KEY,
					title VARCHAR(100) NOT NULL CHECK (char_length(title) BETWEEN 1 AND 100),
					description VARCHAR(1000) NOT NULL CHECK (char_length(description) BETWEEN 1 AND 1000),
					event_date TIMESTAMPTZ NOT NULL,
					max_slots INTEGER NOT NULL CONSTRAINT events_max_slots_range CHECK (max_slots BETWEEN 1 AND 100),
					status event_status NOT NULL DEFAULT 'upcoming',
					created_by BIGINT NOT NULL REFERENCES users(id),
					created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
				CREATE INDEX IF NOT EXISTS idx_events_event_date ON events(event_date);
				CREATE INDEX IF NOT EXISTS idx_events_status ON events(status);
			`); err != nil {
				return fmt.Errorf("failed to create events table: %w", err)
			}

			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS event_registrations (
					id BIGSERIAL PRIMARY KEY,
					event_id BIGINT NOT NULL REFERENCES events(id) ON DELETE CASCADE,
					user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
					character_id BIGINT NOT NULL REFERENCES characters(id) ON DELETE CASCADE,
					registered_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					CONSTRAINT event_registrations_event_user_key UNIQUE (event_id, user_id)
				);
				CREATE INDEX IF NOT EXISTS idx_event_registrations_user_id ON event_registrations(user_id);
			`); err != nil {
				return fmt.Errorf("failed to create event_registrations table: %w", err)
			}

			return nil
		})
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping events and event_registrations tables...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.ExecContext(ctx, `
				DROP TABLE IF EXISTS event_registrations;
				DROP TABLE IF EXISTS events;
				DROP TYPE IF EXISTS event_status;
			`); err != nil {
				return fmt.Errorf("failed to drop event tables: %w", err)
			}
			return nil
		})
	})
}
