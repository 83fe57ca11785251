package recruitmentmigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating recruitment_applications table...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS recruitment_applications (
					id BIGSERIAL PRIMARY KEY,
					user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
					application_text TEXT NOT NULL CHECK (char_length(application_text) BETWEEN 50 AND 1000),
					status VARCHAR(20) NOT NULL DEFAULT 'pending' CHECK (status IN ('pending', 'approved', 'rejected')),
					reviewed_by BIGINT REFERENCES users(id),
					reviewed_at TIMESTAMPTZ,
					created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					CONSTRAINT recruitment_review_complete CHECK ((reviewed_by IS NULL) = (reviewed_at IS NULL))
				);
				CREATE INDEX IF NOT EXISTS idx_recruitment_user_id ON recruitment_applications(user_id);
				CREATE INDEX IF NOT EXISTS idx_recruitment_status ON recruitment_applications(status);
			`); err != nil {
				return fmt.Errorf("failed to create recruitment_applications table: %w", err)
			}
			return nil
		})
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping recruitment_applications table...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS recruitment_applications;`); err != nil {
				return fmt.Errorf("failed to drop recruitment_applications table: %w", err)
			}
			return nil
		})
	})
}
