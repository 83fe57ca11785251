package suggestiondb

import (
	"context"

	"github.com/uptrace/bun"
)

// Repository defines the persistence contract for suggestions and their votes.
type Repository interface {
	// Suggestion operations
	CreateSuggestion(ctx context.Context, db bun.IDB, suggestion *Suggestion) error
	ListSuggestions(ctx context.Context, db bun.IDB) ([]Suggestion, error)
	ListTopSuggestions(ctx context.Context, db bun.IDB, limit int) ([]Suggestion, error)
	ListSuggestionIDs(ctx context.Context, db bun.IDB) ([]int64, error)
	UpdateSuggestionStatus(ctx context.Context, db bun.IDB, id int64, status Status) (*Suggestion, error)

	// GetSuggestionForUpdate reads a suggestion and locks its row until the
	// transaction ends. db must be a transaction.
	GetSuggestionForUpdate(ctx context.Context, db bun.IDB, id int64) (*Suggestion, error)

	// AdjustCounters adds the deltas to the suggestion's counters and refreshes updated_at.
	AdjustCounters(ctx context.Context, db bun.IDB, id int64, upDelta, downDelta int) error

	// SetCounters overwrites the suggestion's counters.
	SetCounters(ctx context.Context, db bun.IDB, id int64, tally Tally) error

	// Vote operations
	GetVote(ctx context.Context, db bun.IDB, suggestionID, userID int64) (*Vote, error)
	InsertVote(ctx context.Context, db bun.IDB, vote *Vote) error
	UpdateVoteType(ctx context.Context, db bun.IDB, voteID int64, voteType VoteType) (*Vote, error)
	CountVotes(ctx context.Context, db bun.IDB, suggestionID int64) (Tally, error)
}
