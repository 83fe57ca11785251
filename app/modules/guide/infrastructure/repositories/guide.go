package guidedb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"
)

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new guide repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

// CreateGuide inserts a guide and fills in the generated columns.
func (r *Impl) CreateGuide(ctx context.Context, db bun.IDB, guide *Guide) error {
	db = r.resolveDB(db)
	_, err := db.NewInsert().
		Model(guide).
		Returning("*").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create guide: %w", err)
	}
	return nil
}

// ListGuidesByStatus returns the guides in status ordered by creation time.
func (r *Impl) ListGuidesByStatus(ctx context.Context, db bun.IDB, status Status, newestFirst bool) ([]Guide, error) {
	db = r.resolveDB(db)
	order := []string{"g.created_at ASC", "g.id ASC"}
	if newestFirst {
		order = []string{"g.created_at DESC", "g.id DESC"}
	}

	var guides []Guide
	err := db.NewSelect().
		Model(&guides).
		Where("g.status = ?", status).
		Order(order...).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s guides: %w", status, err)
	}
	return guides, nil
}

// GetGuideForUpdate reads a guide with SELECT ... FOR UPDATE.
func (r *Impl) GetGuideForUpdate(ctx context.Context, db bun.IDB, id int64) (*Guide, error) {
	db = r.resolveDB(db)
	guide := new(Guide)
	err := db.NewSelect().
		Model(guide).
		Where("g.id = ?", id).
		For("UPDATE").
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock guide: %w", err)
	}
	return guide, nil
}

// RecordReview stores the moderation outcome and returns the updated guide.
func (r *Impl) RecordReview(ctx context.Context, db bun.IDB, id int64, review Review) (*Guide, error) {
	db = r.resolveDB(db)
	guide := new(Guide)
	result, err := db.NewUpdate().
		Model(guide).
		Set("status = ?", review.Status).
		Set("approved_by = ?", review.ApprovedBy).
		Set("approved_at = ?", review.ApprovedAt).
		Set("updated_at = ?", review.ReviewedAt).
		Where("id = ?", id).
		Returning("*").
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record guide review: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return nil, ErrNoRowsAffected
	}
	return guide, nil
}
