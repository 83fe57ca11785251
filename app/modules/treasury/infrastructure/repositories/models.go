package treasurydb

import (
	"time"

	"github.com/uptrace/bun"
)

// Fee is the guild contribution owed for one week. WeekStart and WeekEnd are
// calendar dates, both inclusive.
type Fee struct {
	bun.BaseModel `bun:"table:treasury_fees,alias:tf"`
	ID            int64     `bun:"id,pk,autoincrement" json:"id"`
	Amount        float64   `bun:"amount,type:numeric(10,2),notnull" json:"amount"`
	WeekStart     time.Time `bun:"week_start,type:date,notnull" json:"week_start"`
	WeekEnd       time.Time `bun:"week_end,type:date,notnull" json:"week_end"`
	SetBy         int64     `bun:"set_by,notnull" json:"set_by"`
	CreatedAt     time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"created_at"`
}

// Payment is a member's proof of paying one fee, awaiting verification.
type Payment struct {
	bun.BaseModel `bun:"table:treasury_payments,alias:tp"`
	ID            int64      `bun:"id,pk,autoincrement" json:"id"`
	UserID        int64      `bun:"user_id,notnull" json:"user_id"`
	TreasuryFeeID int64      `bun:"treasury_fee_id,notnull" json:"treasury_fee_id"`
	ProofURL      string     `bun:"proof_url,notnull" json:"proof_url"`
	SubmittedAt   time.Time  `bun:"submitted_at,nullzero,notnull,default:current_timestamp" json:"submitted_at"`
	VerifiedBy    *int64     `bun:"verified_by" json:"verified_by"`
	VerifiedAt    *time.Time `bun:"verified_at" json:"verified_at"`
}
