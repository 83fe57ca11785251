package userservice

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	userdb "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/user/infrastructure/repositories"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/domainerr"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/operation"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/results"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/validate"
	"github.com/uptrace/bun"
)

type characterResult = results.OperationResult[*userdb.Character, error]

// CreateCharacter adds an in-game character to an existing user.
func (s *UserService) CreateCharacter(ctx context.Context, req CreateCharacterRequest) (*userdb.Character, error) {
	return operation.Run(s.run, ctx, "CreateCharacter", strconv.FormatInt(req.UserID, 10), func(ctx context.Context, db bun.IDB) (characterResult, error) {
		return s.createCharacterLogic(ctx, db, req)
	})
}

func (s *UserService) createCharacterLogic(ctx context.Context, db bun.IDB, req CreateCharacterRequest) (characterResult, error) {
	if err := validate.First(
		validate.ID("user_id", req.UserID),
		validate.Length("ign", req.IGN, 1, 20),
		validate.OneOf("job", req.Job, userdb.Jobs),
	); err != nil {
		return results.FailureResult[*userdb.Character, error](err), nil
	}

	if _, err := s.repo.GetUserByID(ctx, db, req.UserID); err != nil {
		if errors.Is(err, userdb.ErrNotFound) {
			return results.FailureResult[*userdb.Character, error](domainerr.NotFound("User with id %d not found", req.UserID)), nil
		}
		return characterResult{}, fmt.Errorf("failed to get user: %w", err)
	}

	character := &userdb.Character{
		UserID:             req.UserID,
		IGN:                req.IGN,
		Job:                req.Job,
		StatsScreenshotURL: req.StatsScreenshotURL,
	}
	if err := s.repo.CreateCharacter(ctx, db, character); err != nil {
		return characterResult{}, err
	}

	return results.SuccessResult[*userdb.Character, error](character), nil
}

// UpdateCharacter edits a character's name, job or screenshot.
func (s *UserService) UpdateCharacter(ctx context.Context, req UpdateCharacterRequest) (*userdb.Character, error) {
	return operation.Run(s.run, ctx, "UpdateCharacter", strconv.FormatInt(req.ID, 10), func(ctx context.Context, db bun.IDB) (characterResult, error) {
		return s.updateCharacterLogic(ctx, db, req)
	})
}

func (s *UserService) updateCharacterLogic(ctx context.Context, db bun.IDB, req UpdateCharacterRequest) (characterResult, error) {
	if err := validate.ID("id", req.ID); err != nil {
		return results.FailureResult[*userdb.Character, error](err), nil
	}
	if req.IGN != nil {
		if err := validate.Length("ign", *req.IGN, 1, 20); err != nil {
			return results.FailureResult[*userdb.Character, error](err), nil
		}
	}
	if req.Job != nil {
		if err := validate.OneOf("job", *req.Job, userdb.Jobs); err != nil {
			return results.FailureResult[*userdb.Character, error](err), nil
		}
	}

	character, err := s.repo.UpdateCharacter(ctx, db, req.ID, &userdb.CharacterUpdateFields{
		IGN:                req.IGN,
		Job:                req.Job,
		StatsScreenshotURL: req.StatsScreenshotURL,
	})
	if err != nil {
		if errors.Is(err, userdb.ErrNoRowsAffected) || errors.Is(err, userdb.ErrNotFound) {
			return results.FailureResult[*userdb.Character, error](domainerr.NotFound("Character with id %d not found", req.ID)), nil
		}
		return characterResult{}, err
	}

	return results.SuccessResult[*userdb.Character, error](character), nil
}

// GetCharactersByUser lists a user's characters in creation order.
func (s *UserService) GetCharactersByUser(ctx context.Context, userID int64) ([]userdb.Character, error) {
	return operation.Run(s.run, ctx, "GetCharactersByUser", strconv.FormatInt(userID, 10), func(ctx context.Context, db bun.IDB) (results.OperationResult[[]userdb.Character, error], error) {
		characters, err := s.repo.GetCharactersByUser(ctx, db, userID)
		if err != nil {
			return results.OperationResult[[]userdb.Character, error]{}, err
		}
		if characters == nil {
			characters = []userdb.Character{}
		}
		return results.SuccessResult[[]userdb.Character, error](characters), nil
	})
}
