package treasurydb

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

// NewRepository creates a new treasury repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

// CreateFee inserts a fee and fills in the generated columns.
func (r *Impl) CreateFee(ctx context.Context, db bun.IDB, fee *Fee) error {
	db = r.resolveDB(db)
	_, err := db.NewInsert().
		Model(fee).
		Returning("*").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create treasury fee: %w", err)
	}
	return nil
}

// GetFeeByID retrieves a fee by its id.
func (r *Impl) GetFeeByID(ctx context.Context, db bun.IDB, id int64) (*Fee, error) {
	db = r.resolveDB(db)
	fee := new(Fee)
	err := db.NewSelect().
		Model(fee).
		Where("tf.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get treasury fee: %w", err)
	}
	return fee, nil
}

// GetFeeCovering returns the newest fee with week_start <= day <= week_end.
func (r *Impl) GetFeeCovering(ctx context.Context, db bun.IDB, day time.Time) (*Fee, error) {
	db = r.resolveDB(db)
	date := day.Format(time.DateOnly)
	fee := new(Fee)
	err := db.NewSelect().
		Model(fee).
		Where("tf.week_start <= ?::date", date).
		Where("tf.week_end >= ?::date", date).
		Order("tf.created_at DESC", "tf.id DESC").
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get current treasury fee: %w", err)
	}
	return fee, nil
}

// CreatePayment inserts a payment and fills in the generated columns.
func (r *Impl) CreatePayment(ctx context.Context, db bun.IDB, payment *Payment) error {
	db = r.resolveDB(db)
	_, err := db.NewInsert().
		Model(payment).
		Returning("*").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create treasury payment: %w", err)
	}
	return nil
}
