package testutils

import (
	"context"
	"fmt"
	"strings"

	"github.com/uptrace/bun"
)

// Application tables, children first.
var appTables = []string{
	"gallery_images",
	"announcements",
	"treasury_payments",
	"treasury_fees",
	"guides",
	"recruitment_applications",
	"event_registrations",
	"events",
	"team_members",
	"teams",
	"suggestion_votes",
	"suggestions",
	"characters",
	"users",
}

// CleanupDatabase truncates every application table and the River job table.
func CleanupDatabase(ctx context.Context, db *bun.DB) error {
	query := fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", strings.Join(appTables, ", "))
	if _, err := db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to truncate tables: %w", err)
	}

	if _, err := db.ExecContext(ctx, "DELETE FROM river_job"); err != nil {
		if !strings.Contains(err.Error(), "does not exist") {
			return fmt.Errorf("failed to cleanup river jobs: %w", err)
		}
	}
	return nil
}

// CountRows returns the number of rows in table matching where.
func CountRows(ctx context.Context, db bun.IDB, table, where string, args ...any) (int, error) {
	return db.NewSelect().TableExpr(table).Where(where, args...).Count(ctx)
}
