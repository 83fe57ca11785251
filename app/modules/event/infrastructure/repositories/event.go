package eventdb

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

// NewRepository creates a new event repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

// CreateEvent inserts an event and fills in the generated columns.
func (r *Impl) CreateEvent(ctx context.Context, db bun.IDB, event *Event) error {
	db = r.resolveDB(db)
	_, err := db.NewInsert().
		Model(event).
		Returning("*").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}
	return nil
}

// GetEventByID retrieves an event by primary key.
func (r *Impl) GetEventByID(ctx context.Context, db bun.IDB, id int64) (*Event, error) {
	return r.getEvent(ctx, db, id, false)
}

// GetEventForUpdate reads an event with SELECT ... FOR UPDATE.
func (r *Impl) GetEventForUpdate(ctx context.Context, db bun.IDB, id int64) (*Event, error) {
	return r.getEvent(ctx, db, id, true)
}

func (r *Impl) getEvent(ctx context.Context, db bun.IDB, id int64, lock bool) (*Event, error) {
	db = r.resolveDB(db)
	event := new(Event)
	q := db.NewSelect().
		Model(event).
		Where("e.id = ?", id)
	if lock {
		q = q.For("UPDATE")
	}
	if err := q.Scan(ctx); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return event, nil
}

// ListUpcomingEvents returns upcoming and ongoing events, soonest first.
func (r *Impl) ListUpcomingEvents(ctx context.Context, db bun.IDB) ([]EventSummary, error) {
	db = r.resolveDB(db)
	var events []EventSummary
	err := db.NewSelect().
		Model(&events).
		ColumnExpr("e.*").
		ColumnExpr("(SELECT COUNT(*) FROM event_registrations AS er WHERE er.event_id = e.id) AS registered_count").
		Where("e.status IN (?)", bun.In([]Status{StatusUpcoming, StatusOngoing})).
		Order("e.event_date ASC", "e.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list upcoming events: %w", err)
	}
	return events, nil
}
