package treasurymigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating treasury_fees and treasury_payments tables...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS treasury_fees (
					id BIGSERIAL PRIMARY KEY,
					amount NUMERIC(10, 2) NOT NULL CHECK (amount > 0),
					week_start DATE NOT NULL,
					week_end DATE NOT NULL,
					set_by BIGINT NOT NULL REFERENCES users(id),
					created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					CONSTRAINT treasury_fees_week_order CHECK (week_end >= week_start)
				);
				CREATE INDEX IF NOT EXISTS idx_treasury_fees_week_start ON treasury_fees(week_start);
				CREATE INDEX IF NOT EXISTS idx_treasury_fees_set_by ON treasury_fees(set_by);
			`); err != nil {
				return fmt.Errorf("failed to create treasury_fees table: %w", err)
			}

			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS treasury_payments (
					id BIGSERIAL PRIMARY KEY,
					user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
					treasury_fee_id BIGINT NOT NULL REFERENCES treasury_fees(id) ON DELETE CASCADE,
					proof_url TEXT NOT NULL,
					submitted_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
					verified_by BIGINT REFERENCES users(id),
					verified_at TIMESTAMPTZ
				);
				CREATE INDEX IF NOT EXISTS idx_treasury_payments_user_id ON treasury_payments(user_id);
				CREATE INDEX IF NOT EXISTS idx_treasury_payments_treasury_fee_id ON treasury_payments(treasury_fee_id);
			`); err != nil {
				return fmt.Errorf("failed to create treasury_payments table: %w", err)
			}

			return nil
		})
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping treasury_fees and treasury_payments tables...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.ExecContext(ctx, `
				DROP TABLE IF EXISTS treasury_payments;
				DROP TABLE IF EXISTS treasury_fees;
			`); err != nil {
				return fmt.Errorf("failed to drop treasury tables: %w", err)
			}
			return nil
		})
	})
}
