package suggestionservice

import (
	"context"

	suggestiondb "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/suggestion/infrastructure/repositories"
	userdb "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/user/infrastructure/repositories"
	"github.com/uptrace/bun"
)

// Service defines the suggestion board's application operations.
type Service interface {
	// CastVote records a user's vote and keeps the suggestion counters in step.
	CastVote(ctx context.Context, suggestionID, userID int64, voteType suggestiondb.VoteType) (*suggestiondb.Vote, error)

	CreateSuggestion(ctx context.Context, req CreateSuggestionRequest) (*suggestiondb.Suggestion, error)
	ListSuggestions(ctx context.Context) ([]suggestiondb.Suggestion, error)
	UpdateSuggestionStatus(ctx context.Context, suggestionID int64, status suggestiondb.Status) (*suggestiondb.Suggestion, error)

	// RenderVoteChart draws the top suggestions by net score as a PNG.
	RenderVoteChart(ctx context.Context, limit int) ([]byte, error)

	// AuditVoteCounters recomputes every suggestion's counters from its votes
	// and repairs any drift.
	AuditVoteCounters(ctx context.Context) (AuditReport, error)
}

// UserLookup is the part of the user repository this module reads.
type UserLookup interface {
	GetUserByID(ctx context.Context, db bun.IDB, id int64) (*userdb.User, error)
}

// CreateSuggestionRequest submits a new suggestion.
type CreateSuggestionRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	CreatedBy   int64  `json:"created_by"`
}

// CastVoteRequest is the body of a vote.
type CastVoteRequest struct {
	UserID   int64                 `json:"user_id"`
	VoteType suggestiondb.VoteType `json:"vote_type"`
}

// UpdateStatusRequest is the body of a status change.
type UpdateStatusRequest struct {
	Status suggestiondb.Status `json:"status"`
}

// AuditReport summarizes one counter audit run.
type AuditReport struct {
	Checked  int `json:"checked"`
	Repaired int `json:"repaired"`
}
