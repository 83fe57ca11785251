package suggestiondb

import (
	"time"

	"github.com/uptrace/bun"
)

// Status is the review state of a suggestion.
type Status string

const (
	StatusPending     Status = "pending"
	StatusApproved    Status = "approved"
	StatusRejected    Status = "rejected"
	StatusImplemented Status = "implemented"
)

var Statuses = []Status{StatusPending, StatusApproved, StatusRejected, StatusImplemented}

// VoteType is the direction of a vote.
type VoteType string

const (
	Upvote   VoteType = "upvote"
	Downvote VoteType = "downvote"
)

var VoteTypes = []VoteType{Upvote, Downvote}

// Opposite returns the other vote direction.
func (v VoteType) Opposite() VoteType {
	if v == Upvote {
		return Downvote
	}
	return Upvote
}

// Suggestion is a member proposal with denormalized vote counters.
// Upvotes and Downvotes always equal the number of vote rows of each type.
type Suggestion struct {
	bun.BaseModel `bun:"table:suggestions,alias:s"`
	ID            int64     `bun:"id,pk,autoincrement" json:"id"`
	Title         string    `bun:"title,notnull" json:"title"`
	Description   string    `bun:"description,notnull" json:"description"`
	Status        Status    `bun:"status,notnull,default:'pending'" json:"status"`
	Upvotes       int       `bun:"upvotes,notnull,default:0" json:"upvotes"`
	Downvotes     int       `bun:"downvotes,notnull,default:0" json:"downvotes"`
	CreatedBy     int64     `bun:"created_by,notnull" json:"created_by"`
	CreatedAt     time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt     time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp" json:"updated_at"`
}

// Score is the net vote score.
func (s *Suggestion) Score() int {
	return s.Upvotes - s.Downvotes
}

// Vote is one user's vote on one suggestion. There is at most one per pair.
type Vote struct {
	bun.BaseModel `bun:"table:suggestion_votes,alias:sv"`
	ID            int64     `bun:"id,pk,autoincrement" json:"id"`
	SuggestionID  int64     `bun:"suggestion_id,notnull" json:"suggestion_id"`
	UserID        int64     `bun:"user_id,notnull" json:"user_id"`
	VoteType      VoteType  `bun:"vote_type,notnull" json:"vote_type"`
	CreatedAt     time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"created_at"`
}

// Tally is a vote count recomputed from vote rows.
type Tally struct {
	Upvotes   int
	Downvotes int
}
