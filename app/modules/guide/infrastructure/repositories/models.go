package guidedb

import (
	"time"

	"github.com/uptrace/bun"
)

// Status is the moderation state of a guide.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Decisions are the statuses a review may set.
var Decisions = []Status{StatusApproved, StatusRejected}

// Guide is a member-written article that is published once a moderator approves it.
// ApprovedAt is set only while the guide is approved.
type Guide struct {
	bun.BaseModel `bun:"table:guides,alias:g"`
	ID            int64      `bun:"id,pk,autoincrement" json:"id"`
	Title         string     `bun:"title,notnull" json:"title"`
	Content       string     `bun:"content,notnull" json:"content"`
	Status        Status     `bun:"status,notnull,default:'pending'" json:"status"`
	CreatedBy     int64      `bun:"created_by,notnull" json:"created_by"`
	ApprovedBy    *int64     `bun:"approved_by" json:"approved_by"`
	ApprovedAt    *time.Time `bun:"approved_at" json:"approved_at"`
	CreatedAt     time.Time  `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt     time.Time  `bun:"updated_at,nullzero,notnull,default:current_timestamp" json:"updated_at"`
}

// Review is the moderation outcome recorded on a guide.
type Review struct {
	Status     Status
	ApprovedBy int64
	ApprovedAt *time.Time
	ReviewedAt time.Time
}
