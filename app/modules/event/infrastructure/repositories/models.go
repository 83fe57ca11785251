package eventdb

import (
	"time"

	"github.com/uptrace/bun"
)

// Status is the lifecycle state of an event.
type Status string

const (
	StatusUpcoming  Status = "upcoming"
	StatusOngoing   Status = "ongoing"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Event is a scheduled guild activity with a fixed number of slots.
type Event struct {
	bun.BaseModel `bun:"table:events,alias:e"`
	ID            int64     `bun:"id,pk,autoincrement" json:"id"`
	Title         string    `bun:"title,notnull" json:"title"`
	Description   string    `bun:"description,notnull" json:"description"`
	EventDate     time.Time `bun:"event_date,notnull" json:"event_date"`
	MaxSlots      int       `bun:"max_slots,notnull" json:"max_slots"`
	Status        Status    `bun:"status,notnull,default:'upcoming'" json:"status"`
	CreatedBy     int64     `bun:"created_by,notnull" json:"created_by"`
	CreatedAt     time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"created_at"`
}

// EventSummary is an event with its live registration count.
type EventSummary struct {
	Event           `bun:",extend"`
	RegisteredCount int `bun:"registered_count,scanonly" json:"registered_count"`
}

// Registration is one user's seat at one event, taken with one of their characters.
type Registration struct {
	bun.BaseModel `bun:"table:event_registrations,alias:er"`
	ID            int64     `bun:"id,pk,autoincrement" json:"id"`
	EventID       int64     `bun:"event_id,notnull" json:"event_id"`
	UserID        int64     `bun:"user_id,notnull" json:"user_id"`
	CharacterID   int64     `bun:"character_id,notnull" json:"character_id"`
	RegisteredAt  time.Time `bun:"registered_at,nullzero,notnull,default:current_timestamp" json:"registered_at"`
}

// RosterEntry is a registration joined with its user and character.
type RosterEntry struct {
	RegistrationID  int64     `bun:"registration_id"`
	UserID          int64     `bun:"user_id"`
	DiscordUsername string    `bun:"discord_username"`
	CharacterIGN    string    `bun:"ign"`
	CharacterJob    string    `bun:"job"`
	RegisteredAt    time.Time `bun:"registered_at"`
}
