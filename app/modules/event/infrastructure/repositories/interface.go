package eventdb

import (
	"context"

	"github.com/uptrace/bun"
)

// Repository defines the persistence contract for events and registrations.
type Repository interface {
	CreateEvent(ctx context.Context, db bun.IDB, event *Event) error
	GetEventByID(ctx context.Context, db bun.IDB, id int64) (*Event, error)

	// GetEventForUpdate reads an event and locks its row until the transaction ends.
	GetEventForUpdate(ctx context.Context, db bun.IDB, id int64) (*Event, error)

	// ListUpcomingEvents returns upcoming and ongoing events by date with their
	// registration counts.
	ListUpcomingEvents(ctx context.Context, db bun.IDB) ([]EventSummary, error)

	IsRegistered(ctx context.Context, db bun.IDB, eventID, userID int64) (bool, error)
	CountRegistrations(ctx context.Context, db bun.IDB, eventID int64) (int, error)
	InsertRegistration(ctx context.Context, db bun.IDB, registration *Registration) error
	GetEventRegistrations(ctx context.Context, db bun.IDB, eventID int64) ([]Registration, error)
	ListRoster(ctx context.Context, db bun.IDB, eventID int64) ([]RosterEntry, error)
}
