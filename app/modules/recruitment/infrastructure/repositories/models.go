package recruitmentdb

import (
	"time"

	"github.com/uptrace/bun"
)

// Status is the review state of an application.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Decisions are the statuses a review may set.
var Decisions = []Status{StatusApproved, StatusRejected}

// Application is a user's request to join the guild as a full member.
// ReviewedBy and ReviewedAt are set together when the application leaves pending.
type Application struct {
	bun.BaseModel   `bun:"table:recruitment_applications,alias:ra"`
	ID              int64      `bun:"id,pk,autoincrement" json:"id"`
	UserID          int64      `bun:"user_id,notnull" json:"user_id"`
	ApplicationText string     `bun:"application_text,notnull" json:"application_text"`
	Status          Status     `bun:"status,notnull,default:'pending'" json:"status"`
	ReviewedBy      *int64     `bun:"reviewed_by" json:"reviewed_by"`
	ReviewedAt      *time.Time `bun:"reviewed_at" json:"reviewed_at"`
	CreatedAt       time.Time  `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"created_at"`
}

// Review is the outcome recorded on an application.
type Review struct {
	Status     Status
	ReviewedBy int64
	ReviewedAt time.Time
}
