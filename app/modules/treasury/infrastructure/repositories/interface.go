package treasurydb

import (
	"context"
	"time"

	"github.com/uptrace/bun"
)

// Repository defines the persistence contract for weekly fees and payments.
//
// Error semantics:
//   - ErrNotFound: requested record does not exist (Get* methods)
//   - other errors: infrastructure failures
type Repository interface {
	CreateFee(ctx context.Context, db bun.IDB, fee *Fee) error
	GetFeeByID(ctx context.Context, db bun.IDB, id int64) (*Fee, error)

	// GetFeeCovering returns the most recently set fee whose week contains day.
	GetFeeCovering(ctx context.Context, db bun.IDB, day time.Time) (*Fee, error)

	CreatePayment(ctx context.Context, db bun.IDB, payment *Payment) error
}
