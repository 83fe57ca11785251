package suggestiondb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"
)

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new suggestion repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

// CreateSuggestion inserts a suggestion with zeroed counters.
func (r *Impl) CreateSuggestion(ctx context.Context, db bun.IDB, suggestion *Suggestion) error {
	db = r.resolveDB(db)
	_, err := db.NewInsert().
		Model(suggestion).
		Returning("*").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create suggestion: %w", err)
	}
	return nil
}

// ListSuggestions returns every suggestion, newest first.
func (r *Impl) ListSuggestions(ctx context.Context, db bun.IDB) ([]Suggestion, error) {
	db = r.resolveDB(db)
	var suggestions []Suggestion
	err := db.NewSelect().
		Model(&suggestions).
		Order("s.created_at DESC", "s.id DESC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list suggestions: %w", err)
	}
	return suggestions, nil
}

// ListTopSuggestions returns the suggestions with the highest net score.
func (r *Impl) ListTopSuggestions(ctx context.Context, db bun.IDB, limit int) ([]Suggestion, error) {
	db = r.resolveDB(db)
	var suggestions []Suggestion
	err := db.NewSelect().
		Model(&suggestions).
		OrderExpr("(s.upvotes - s.downvotes) DESC").
		Order("s.created_at DESC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list top suggestions: %w", err)
	}
	return suggestions, nil
}

// ListSuggestionIDs returns every suggestion id in ascending order.
func (r *Impl) ListSuggestionIDs(ctx context.Context, db bun.IDB) ([]int64, error) {
	db = r.resolveDB(db)
	var ids []int64
	err := db.NewSelect().
		Model((*Suggestion)(nil)).
		Column("s.id").
		Order("s.id ASC").
		Scan(ctx, &ids)
	if err != nil {
		return nil, fmt.Errorf("failed to list suggestion ids: %w", err)
	}
	return ids, nil
}

// UpdateSuggestionStatus sets the review status and refreshes updated_at.
func (r *Impl) UpdateSuggestionStatus(ctx context.Context, db bun.IDB, id int64, status Status) (*Suggestion, error) {
	db = r.resolveDB(db)
	suggestion := new(Suggestion)
	result, err := db.NewUpdate().
		Model(suggestion).
		Set("status = ?", status).
		Set("updated_at = ?", time.Now().UTC()).
		Where("id = ?", id).
		Returning("*").
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update suggestion status: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return nil, ErrNoRowsAffected
	}
	return suggestion, nil
}

// GetSuggestionForUpdate reads a suggestion with SELECT ... FOR UPDATE.
func (r *Impl) GetSuggestionForUpdate(ctx context.Context, db bun.IDB, id int64) (*Suggestion, error) {
	db = r.resolveDB(db)
	suggestion := new(Suggestion)
	err := db.NewSelect().
		Model(suggestion).
		Where("s.id = ?", id).
		For("UPDATE").
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock suggestion: %w", err)
	}
	return suggestion, nil
}

// AdjustCounters applies relative counter changes in a single UPDATE.
func (r *Impl) AdjustCounters(ctx context.Context, db bun.IDB, id int64, upDelta, downDelta int) error {
	db = r.resolveDB(db)
	result, err := db.NewUpdate().
		Model((*Suggestion)(nil)).
		Set("upvotes = upvotes + ?", upDelta).
		Set("downvotes = downvotes + ?", downDelta).
		Set("updated_at = ?", time.Now().UTC()).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to adjust vote counters: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNoRowsAffected
	}
	return nil
}

// SetCounters overwrites both counters.
func (r *Impl) SetCounters(ctx context.Context, db bun.IDB, id int64, tally Tally) error {
	db = r.resolveDB(db)
	result, err := db.NewUpdate().
		Model((*Suggestion)(nil)).
		Set("upvotes = ?", tally.Upvotes).
		Set("downvotes = ?", tally.Downvotes).
		Set("updated_at = ?", time.Now().UTC()).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to set vote counters: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNoRowsAffected
	}
	return nil
}
