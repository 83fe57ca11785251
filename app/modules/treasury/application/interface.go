package treasuryservice

import (
	"context"

	treasurydb "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/treasury/infrastructure/repositories"
	userdb "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/user/infrastructure/repositories"
	"github.com/uptrace/bun"
)

// Service defines the guild treasury's application operations.
type Service interface {
	CreateFee(ctx context.Context, req CreateFeeRequest) (*treasurydb.Fee, error)

	// GetCurrentFee returns the fee whose week covers today, or nil when no
	// fee has been set for this week.
	GetCurrentFee(ctx context.Context) (*treasurydb.Fee, error)

	SubmitPayment(ctx context.Context, req SubmitPaymentRequest) (*treasurydb.Payment, error)
}

// UserLookup is the part of the user repository this module reads.
type UserLookup interface {
	GetUserByID(ctx context.Context, db bun.IDB, id int64) (*userdb.User, error)
}

// CreateFeeRequest sets the fee for one week. Dates are YYYY-MM-DD or RFC 3339;
// only the UTC calendar day is kept.
type CreateFeeRequest struct {
	Amount    float64 `json:"amount"`
	WeekStart string  `json:"week_start"`
	WeekEnd   string  `json:"week_end"`
	SetBy     int64   `json:"set_by"`
}

// SubmitPaymentRequest records a member's proof of payment. ProofURL is stored as given.
type SubmitPaymentRequest struct {
	UserID        int64  `json:"user_id"`
	TreasuryFeeID int64  `json:"treasury_fee_id"`
	ProofURL      string `json:"proof_url"`
}
