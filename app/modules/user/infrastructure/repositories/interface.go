package userdb

import (
	"context"

	"github.com/uptrace/bun"
)

// Repository defines the persistence contract for users and their characters.
//
// Error semantics:
//   - ErrNotFound: requested record does not exist (Get* methods)
//   - ErrNoRowsAffected: UPDATE matched no rows
//   - other errors: infrastructure failures
type Repository interface {
	// User operations
	CreateUser(ctx context.Context, db bun.IDB, user *User) error
	GetUserByID(ctx context.Context, db bun.IDB, id int64) (*User, error)
	GetUserByDiscordID(ctx context.Context, db bun.IDB, discordID string) (*User, error)
	ListUsers(ctx context.Context, db bun.IDB) ([]User, error)
	UpdateUser(ctx context.Context, db bun.IDB, id int64, updates *UserUpdateFields) (*User, error)

	// Character operations
	CreateCharacter(ctx context.Context, db bun.IDB, character *Character) error
	GetCharacterByID(ctx context.Context, db bun.IDB, id int64) (*Character, error)
	GetCharactersByUser(ctx context.Context, db bun.IDB, userID int64) ([]Character, error)
	UpdateCharacter(ctx context.Context, db bun.IDB, id int64, updates *CharacterUpdateFields) (*Character, error)
}
