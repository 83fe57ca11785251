package userservice

import (
	"context"

	userdb "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/user/infrastructure/repositories"
	"github.com/uptrace/bun"
)

// ------------------------
// Fake User Repo
// ------------------------

type FakeUserRepo struct {
	trace []string

	CreateUserFunc          func(ctx context.Context, db bun.IDB, user *userdb.User) error
	GetUserByIDFunc         func(ctx context.Context, db bun.IDB, id int64) (*userdb.User, error)
	GetUserByDiscordIDFunc  func(ctx context.Context, db bun.IDB, discordID string) (*userdb.User, error)
	ListUsersFunc           func(ctx context.Context, db bun.IDB) ([]userdb.User, error)
	UpdateUserFunc          func(ctx context.Context, db bun.IDB, id int64, updates *userdb.UserUpdateFields) (*userdb.User, error)
	CreateCharacterFunc     func(ctx context.Context, db bun.IDB, character *userdb.Character) error
	GetCharacterByIDFunc    func(ctx context.Context, db bun.IDB, id int64) (*userdb.Character, error)
	GetCharactersByUserFunc func(ctx context.Context, db bun.IDB, userID int64) ([]userdb.Character, error)
	UpdateCharacterFunc     func(ctx context.Context, db bun.IDB, id int64, updates *userdb.CharacterUpdateFields) (*userdb.Character, error)
}

func NewFakeUserRepo() *FakeUserRepo {
	return &FakeUserRepo{
		trace: []string{},
	}
}

func (f *FakeUserRepo) record(step string) {
	f.trace = append(f.trace, step)
}

// --- Repository Interface Implementation ---

func (f *FakeUserRepo) CreateUser(ctx context.Context, db bun.IDB, user *userdb.User) error {
	f.record("CreateUser")
	if f.CreateUserFunc != nil {
		return f.CreateUserFunc(ctx, db, user)
	}
	return nil
}

func (f *FakeUserRepo) GetUserByID(ctx context.Context, db bun.IDB, id int64) (*userdb.User, error) {
	f.record("GetUserByID")
	if f.GetUserByIDFunc != nil {
		return f.GetUserByIDFunc(ctx, db, id)
	}
	return nil, userdb.ErrNotFound
}

func (f *FakeUserRepo) GetUserByDiscordID(ctx context.Context, db bun.IDB, discordID string) (*userdb.User, error) {
	f.record("GetUserByDiscordID")
	if f.GetUserByDiscordIDFunc != nil {
		return f.GetUserByDiscordIDFunc(ctx, db, discordID)
	}
	return nil, userdb.ErrNotFound
}

func (f *FakeUserRepo) ListUsers(ctx context.Context, db bun.IDB) ([]userdb.User, error) {
	f.record("ListUsers")
	if f.ListUsersFunc != nil {
		return f.ListUsersFunc(ctx, db)
	}
	return nil, nil
}

func (f *FakeUserRepo) UpdateUser(ctx context.Context, db bun.IDB, id int64, updates *userdb.UserUpdateFields) (*userdb.User, error) {
	f.record("UpdateUser")
	if f.UpdateUserFunc != nil {
		return f.UpdateUserFunc(ctx, db, id, updates)
	}
	return nil, userdb.ErrNoRowsAffected
}

func (f *FakeUserRepo) CreateCharacter(ctx context.Context, db bun.IDB, character *userdb.Character) error {
	f.record("CreateCharacter")
	if f.CreateCharacterFunc != nil {
		return f.CreateCharacterFunc(ctx, db, character)
	}
	return nil
}

func (f *FakeUserRepo) GetCharacterByID(ctx context.Context, db bun.IDB, id int64) (*userdb.Character, error) {
	f.record("GetCharacterByID")
	if f.GetCharacterByIDFunc != nil {
		return f.GetCharacterByIDFunc(ctx, db, id)
	}
	return nil, userdb.ErrNotFound
}

func (f *FakeUserRepo) GetCharactersByUser(ctx context.Context, db bun.IDB, userID int64) ([]userdb.Character, error) {
	f.record("GetCharactersByUser")
	if f.GetCharactersByUserFunc != nil {
		return f.GetCharactersByUserFunc(ctx, db, userID)
	}
	return nil, nil
}

func (f *FakeUserRepo) UpdateCharacter(ctx context.Context, db bun.IDB, id int64, updates *userdb.CharacterUpdateFields) (*userdb.Character, error) {
	f.record("UpdateCharacter")
	if f.UpdateCharacterFunc != nil {
		return f.UpdateCharacterFunc(ctx, db, id, updates)
	}
	return nil, userdb.ErrNoRowsAffected
}

// --- Accessors for assertions ---

func (f *FakeUserRepo) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

// Ensure the fake actually satisfies the interface
var _ userdb.Repository = (*FakeUserRepo)(nil)
