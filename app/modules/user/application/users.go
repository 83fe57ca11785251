package userservice

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	userdb "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/user/infrastructure/repositories"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/domainerr"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/operation"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/pgerr"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/results"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/validate"
	"github.com/uptrace/bun"
)

type userResult = results.OperationResult[*userdb.User, error]

// CreateUser registers a Discord account. New members start as recruits with a
// pending treasury status unless a role is given.
func (s *UserService) CreateUser(ctx context.Context, req CreateUserRequest) (*userdb.User, error) {
	return operation.Run(s.run, ctx, "CreateUser", req.DiscordID, func(ctx context.Context, db bun.IDB) (userResult, error) {
		return s.createUserLogic(ctx, db, req)
	})
}

func (s *UserService) createUserLogic(ctx context.Context, db bun.IDB, req CreateUserRequest) (userResult, error) {
	if err := validate.First(
		validate.Length("discord_id", req.DiscordID, 1, 32),
		validate.Length("discord_username", req.DiscordUsername, 1, 100),
	); err != nil {
		return results.FailureResult[*userdb.User, error](err), nil
	}

	role := userdb.RoleRecruit
	if req.GuildRole != nil {
		if err := validate.OneOf("guild_role", *req.GuildRole, userdb.GuildRoles); err != nil {
			return results.FailureResult[*userdb.User, error](err), nil
		}
		role = *req.GuildRole
	}

	existing, err := s.repo.GetUserByDiscordID(ctx, db, req.DiscordID)
	if err != nil && !errors.Is(err, userdb.ErrNotFound) {
		return userResult{}, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return results.FailureResult[*userdb.User, error](duplicateDiscordID(req.DiscordID)), nil
	}

	user := &userdb.User{
		DiscordID:       req.DiscordID,
		DiscordUsername: req.DiscordUsername,
		DiscordAvatar:   req.DiscordAvatar,
		GuildRole:       role,
		TreasuryStatus:  userdb.TreasuryPending,
	}
	if err := s.repo.CreateUser(ctx, db, user); err != nil {
		if pgerr.IsUniqueViolation(err) {
			return results.FailureResult[*userdb.User, error](duplicateDiscordID(req.DiscordID)), nil
		}
		return userResult{}, err
	}

	return results.SuccessResult[*userdb.User, error](user), nil
}

func duplicateDiscordID(discordID string) error {
	return domainerr.Conflict("User with discord ID %s already exists", discordID)
}

// UpdateUser changes a member's guild role and/or treasury status.
func (s *UserService) UpdateUser(ctx context.Context, req UpdateUserRequest) (*userdb.User, error) {
	return operation.Run(s.run, ctx, "UpdateUser", strconv.FormatInt(req.ID, 10), func(ctx context.Context, db bun.IDB) (userResult, error) {
		return s.updateUserLogic(ctx, db, req)
	})
}

func (s *UserService) updateUserLogic(ctx context.Context, db bun.IDB, req UpdateUserRequest) (userResult, error) {
	if err := validate.ID("id", req.ID); err != nil {
		return results.FailureResult[*userdb.User, error](err), nil
	}
	if req.GuildRole != nil {
		if err := validate.OneOf("guild_role", *req.GuildRole, userdb.GuildRoles); err != nil {
			return results.FailureResult[*userdb.User, error](err), nil
		}
	}
	if req.TreasuryStatus != nil {
		if err := validate.OneOf("treasury_status", *req.TreasuryStatus, userdb.TreasuryStatuses); err != nil {
			return results.FailureResult[*userdb.User, error](err), nil
		}
	}

	user, err := s.repo.UpdateUser(ctx, db, req.ID, &userdb.UserUpdateFields{
		GuildRole:      req.GuildRole,
		TreasuryStatus: req.TreasuryStatus,
	})
	if err != nil {
		if errors.Is(err, userdb.ErrNoRowsAffected) || errors.Is(err, userdb.ErrNotFound) {
			return results.FailureResult[*userdb.User, error](domainerr.NotFound("User with id %d not found", req.ID)), nil
		}
		return userResult{}, err
	}

	return results.SuccessResult[*userdb.User, error](user), nil
}

// GetUserByDiscordID looks a member up by Discord account id.
func (s *UserService) GetUserByDiscordID(ctx context.Context, discordID string) (*userdb.User, error) {
	return operation.Run(s.run, ctx, "GetUserByDiscordID", discordID, func(ctx context.Context, db bun.IDB) (userResult, error) {
		user, err := s.repo.GetUserByDiscordID(ctx, db, discordID)
		if err != nil {
			if errors.Is(err, userdb.ErrNotFound) {
				return results.FailureResult[*userdb.User, error](domainerr.NotFound("User not found")), nil
			}
			return userResult{}, err
		}
		return results.SuccessResult[*userdb.User, error](user), nil
	})
}

// ListUsers returns every member, oldest first.
func (s *UserService) ListUsers(ctx context.Context) ([]userdb.User, error) {
	return operation.Run(s.run, ctx, "ListUsers", "all", func(ctx context.Context, db bun.IDB) (results.OperationResult[[]userdb.User, error], error) {
		users, err := s.repo.ListUsers(ctx, db)
		if err != nil {
			return results.OperationResult[[]userdb.User, error]{}, err
		}
		if users == nil {
			users = []userdb.User{}
		}
		return results.SuccessResult[[]userdb.User, error](users), nil
	})
}
