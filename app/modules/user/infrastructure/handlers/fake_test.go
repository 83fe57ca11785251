package userhandlers

import (
	"context"

	userservice "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/user/application"
	userdb "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/user/infrastructure/repositories"
)

// ------------------------
// Fake User Service
// ------------------------

type FakeUserService struct {
	trace []string

	CreateUserFunc          func(ctx context.Context, req userservice.CreateUserRequest) (*userdb.User, error)
	UpdateUserFunc          func(ctx context.Context, req userservice.UpdateUserRequest) (*userdb.User, error)
	GetUserByDiscordIDFunc  func(ctx context.Context, discordID string) (*userdb.User, error)
	ListUsersFunc           func(ctx context.Context) ([]userdb.User, error)
	CreateCharacterFunc     func(ctx context.Context, req userservice.CreateCharacterRequest) (*userdb.Character, error)
	UpdateCharacterFunc     func(ctx context.Context, req userservice.UpdateCharacterRequest) (*userdb.Character, error)
	GetCharactersByUserFunc func(ctx context.Context, userID int64) ([]userdb.Character, error)
}

func NewFakeUserService() *FakeUserService {
	return &FakeUserService{
		trace: []string{},
	}
}

func (f *FakeUserService) record(step string) {
	f.trace = append(f.trace, step)
}

// --- Service Interface Implementation ---

func (f *FakeUserService) CreateUser(ctx context.Context, req userservice.CreateUserRequest) (*userdb.User, error) {
	f.record("CreateUser")
	if f.CreateUserFunc != nil {
		return f.CreateUserFunc(ctx, req)
	}
	return &userdb.User{}, nil
}

func (f *FakeUserService) UpdateUser(ctx context.Context, req userservice.UpdateUserRequest) (*userdb.User, error) {
	f.record("UpdateUser")
	if f.UpdateUserFunc != nil {
		return f.UpdateUserFunc(ctx, req)
	}
	return &userdb.User{}, nil
}

func (f *FakeUserService) GetUserByDiscordID(ctx context.Context, discordID string) (*userdb.User, error) {
	f.record("GetUserByDiscordID")
	if f.GetUserByDiscordIDFunc != nil {
		return f.GetUserByDiscordIDFunc(ctx, discordID)
	}
	return &userdb.User{}, nil
}

func (f *FakeUserService) ListUsers(ctx context.Context) ([]userdb.User, error) {
	f.record("ListUsers")
	if f.ListUsersFunc != nil {
		return f.ListUsersFunc(ctx)
	}
	return []userdb.User{}, nil
}

func (f *FakeUserService) CreateCharacter(ctx context.Context, req userservice.CreateCharacterRequest) (*userdb.Character, error) {
	f.record("CreateCharacter")
	if f.CreateCharacterFunc != nil {
		return f.CreateCharacterFunc(ctx, req)
	}
	return &userdb.Character{}, nil
}

func (f *FakeUserService) UpdateCharacter(ctx context.Context, req userservice.UpdateCharacterRequest) (*userdb.Character, error) {
	f.record("UpdateCharacter")
	if f.UpdateCharacterFunc != nil {
		return f.UpdateCharacterFunc(ctx, req)
	}
	return &userdb.Character{}, nil
}

func (f *FakeUserService) GetCharactersByUser(ctx context.Context, userID int64) ([]userdb.Character, error) {
	f.record("GetCharactersByUser")
	if f.GetCharactersByUserFunc != nil {
		return f.GetCharactersByUserFunc(ctx, userID)
	}
	return []userdb.Character{}, nil
}

// --- Accessors for assertions ---

func (f *FakeUserService) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

// Ensure the fake actually satisfies the interface
var _ userservice.Service = (*FakeUserService)(nil)
