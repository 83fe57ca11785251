package eventdb

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

// IsRegistered reports whether a user already holds a seat at an event.
func (r *Impl) IsRegistered(ctx context.Context, db bun.IDB, eventID, userID int64) (bool, error) {
	db = r.resolveDB(db)
	exists, err := db.NewSelect().
		Model((*Registration)(nil)).
		Where("er.event_id = ?", eventID).
		Where("er.user_id = ?", userID).
		Exists(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check registration: %w", err)
	}
	return exists, nil
}

// CountRegistrations returns the number of seats taken at an event.
func (r *Impl) CountRegistrations(ctx context.Context, db bun.IDB, eventID int64) (int, error) {
	db = r.resolveDB(db)
	count, err := db.NewSelect().
		Model((*Registration)(nil)).
		Where("er.event_id = ?", eventID).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count registrations: %w", err)
	}
	return count, nil
}

// InsertRegistration inserts a registration row.
func (r *Impl) InsertRegistration(ctx context.Context, db bun.IDB, registration *Registration) error {
	db = r.resolveDB(db)
	_, err := db.NewInsert().
		Model(registration).
		Returning("*").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to insert registration: %w", err)
	}
	return nil
}

// GetEventRegistrations returns an event's registrations in sign-up order.
func (r *Impl) GetEventRegistrations(ctx context.Context, db bun.IDB, eventID int64) ([]Registration, error) {
	db = r.resolveDB(db)
	var registrations []Registration
	err := db.NewSelect().
		Model(&registrations).
		Where("er.event_id = ?", eventID).
		Order("er.registered_at ASC", "er.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get event registrations: %w", err)
	}
	return registrations, nil
}

// ListRoster returns an event's registrations with user and character details.
func (r *Impl) ListRoster(ctx context.Context, db bun.IDB, eventID int64) ([]RosterEntry, error) {
	db = r.resolveDB(db)
	var roster []RosterEntry
	err := db.NewSelect().
		TableExpr("event_registrations AS er").
		ColumnExpr("er.id AS registration_id").
		ColumnExpr("er.user_id").
		ColumnExpr("u.discord_username").
		ColumnExpr("c.ign").
		ColumnExpr("c.job").
		ColumnExpr("er.registered_at").
		Join("JOIN users AS u ON u.id = er.user_id").
		Join("JOIN characters AS c ON c.id = er.character_id").
		Where("er.event_id = ?", eventID).
		Order("er.registered_at ASC", "er.id ASC").
		Scan(ctx, &roster)
	if err != nil {
		return nil, fmt.Errorf("failed to list roster: %w", err)
	}
	return roster, nil
}
