package recruitmentdb

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

// NewRepository creates a new recruitment repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

// CreateApplication inserts an application and fills in the generated columns.
func (r *Impl) CreateApplication(ctx context.Context, db bun.IDB, application *Application) error {
	db = r.resolveDB(db)
	_, err := db.NewInsert().
		Model(application).
		Returning("*").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create recruitment application: %w", err)
	}
	return nil
}

// ListPendingApplications returns the applications awaiting review, oldest first.
func (r *Impl) ListPendingApplications(ctx context.Context, db bun.IDB) ([]Application, error) {
	db = r.resolveDB(db)
	var applications []Application
	err := db.NewSelect().
		Model(&applications).
		Where("ra.status = ?", StatusPending).
		Order("ra.created_at ASC", "ra.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending recruitment applications: %w", err)
	}
	return applications, nil
}

// GetApplicationForUpdate reads an application with SELECT ... FOR UPDATE.
func (r *Impl) GetApplicationForUpdate(ctx context.Context, db bun.IDB, id int64) (*Application, error) {
	db = r.resolveDB(db)
	application := new(Application)
	err := db.NewSelect().
		Model(application).
		Where("ra.id = ?", id).
		For("UPDATE").
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock recruitment application: %w", err)
	}
	return application, nil
}

// RecordReview stores the review outcome and returns the updated application.
func (r *Impl) RecordReview(ctx context.Context, db bun.IDB, id int64, review Review) (*Application, error) {
	db = r.resolveDB(db)
	application := new(Application)
	result, err := db.NewUpdate().
		Model(application).
		Set("status = ?", review.Status).
		Set("reviewed_by = ?", review.ReviewedBy).
		Set("reviewed_at = ?", review.ReviewedAt).
		Where("id = ?", id).
		Returning("*").
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record recruitment review: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return nil, ErrNoRowsAffected
	}
	return application, nil
}
