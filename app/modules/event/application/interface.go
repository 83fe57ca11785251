package eventservice

import (
	"context"

	eventdb "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/event/infrastructure/repositories"
	userdb "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/user/infrastructure/repositories"
	"github.com/uptrace/bun"
)

// Service defines the event module's application operations.
type Service interface {
	CreateEvent(ctx context.Context, req CreateEventRequest) (*eventdb.Event, error)
	GetUpcomingEvents(ctx context.Context) ([]eventdb.EventSummary, error)
	GetEventRegistrations(ctx context.Context, eventID int64) ([]eventdb.Registration, error)

	// RegisterForEvent takes a seat at an event with one of the user's characters.
	RegisterForEvent(ctx context.Context, eventID int64, req RegisterRequest) (*eventdb.Registration, error)

	// ExportRoster renders the event's registrations as an XLSX workbook.
	ExportRoster(ctx context.Context, eventID int64) ([]byte, error)
}

// UserLookup is the part of the user repository this module reads.
type UserLookup interface {
	GetUserByID(ctx context.Context, db bun.IDB, id int64) (*userdb.User, error)
	GetCharacterByID(ctx context.Context, db bun.IDB, id int64) (*userdb.Character, error)
}

// CreateEventRequest creates an event. EventDate is RFC 3339 or a phrase
// like "next friday 8pm".
type CreateEventRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	EventDate   string `json:"event_date"`
	MaxSlots    int    `json:"max_slots"`
	CreatedBy   int64  `json:"created_by"`
}

// RegisterRequest is the body of a registration.
type RegisterRequest struct {
	UserID      int64 `json:"user_id"`
	CharacterID int64 `json:"character_id"`
}
