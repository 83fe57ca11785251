package guidemigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating guides table...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS guides (
					id BIGSERIAL PRIMARY KEY,
					title VARCHAR(100) NOT NULL CHECK (char_length(title) BETWEEN 1 AND 100),
					content TEXT NOT NULL CHECK (char_length(content) BETWEEN 100 AND 10000),
					status VARCHAR(20) NOT NULL DEFAULT 'pending' CHECK (status IN ('pending', 'approved', 'rejected')),
					created_by BIGINT NOT NULL REFERENCES users(id),
					approved_by BIGINT REFERENCES users(id),
					approved_at TIMESTAMPTZ,
					created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					CONSTRAINT guides_approved_at_only_when_approved CHECK ((approved_at IS NOT NULL) = (status = 'approved'))
				);
				CREATE INDEX IF NOT EXISTS idx_guides_status ON guides(status);
				CREATE INDEX IF NOT EXISTS idx_guides_created_by ON guides(created_by);
				CREATE INDEX IF NOT EXISTS idx_guides_approved_by ON guides(approved_by);
			`); err != nil {
				return fmt.Errorf("failed to create guides table: %w", err)
			}
			return nil
		})
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping guides table...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS guides;`); err != nil {
				return fmt.Errorf("failed to drop guides table: %w", err)
			}
			return nil
		})
	})
}
