package suggestiondb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"
)

// GetVote returns the vote a user cast on a suggestion.
func (r *Impl) GetVote(ctx context.Context, db bun.IDB, suggestionID, userID int64) (*Vote, error) {
	db = r.resolveDB(db)
	vote := new(Vote)
	err := db.NewSelect().
		Model(vote).
		Where("sv.suggestion_id = ?", suggestionID).
		Where("sv.user_id = ?", userID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get vote: %w", err)
	}
	return vote, nil
}

// InsertVote inserts a vote row.
func (r *Impl) InsertVote(ctx context.Context, db bun.IDB, vote *Vote) error {
	db = r.resolveDB(db)
	_, err := db.NewInsert().
		Model(vote).
		Returning("*").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to insert vote: %w", err)
	}
	return nil
}

// UpdateVoteType flips a vote and refreshes its timestamp.
func (r *Impl) UpdateVoteType(ctx context.Context, db bun.IDB, voteID int64, voteType VoteType) (*Vote, error) {
	db = r.resolveDB(db)
	vote := new(Vote)
	result, err := db.NewUpdate().
		Model(vote).
		Set("vote_type = ?", voteType).
		Set("created_at = ?", time.Now().UTC()).
		Where("id = ?", voteID).
		Returning("*").
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update vote type: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return nil, ErrNoRowsAffected
	}
	return vote, nil
}

// CountVotes recomputes a suggestion's tally from its vote rows.
func (r *Impl) CountVotes(ctx context.Context, db bun.IDB, suggestionID int64) (Tally, error) {
	db = r.resolveDB(db)
	var tally Tally
	err := db.NewSelect().
		Model((*Vote)(nil)).
		ColumnExpr("COUNT(*) FILTER (WHERE sv.vote_type = ?)", Upvote).
		ColumnExpr("COUNT(*) FILTER (WHERE sv.vote_type = ?)", Downvote).
		Where("sv.suggestion_id = ?", suggestionID).
		Scan(ctx, &tally.Upvotes, &tally.Downvotes)
	if err != nil {
		return Tally{}, fmt.Errorf("failed to count votes: %w", err)
	}
	return tally, nil
}
