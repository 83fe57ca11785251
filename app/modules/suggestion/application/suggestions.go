package suggestionservice

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	suggestiondb "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/suggestion/infrastructure/repositories"
	userdb "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/user/infrastructure/repositories"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/domainerr"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/operation"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/results"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/validate"
	"github.com/uptrace/bun"
)

type suggestionResult = results.OperationResult[*suggestiondb.Suggestion, error]

// CreateSuggestion submits a suggestion on behalf of an existing user.
func (s *SuggestionService) CreateSuggestion(ctx context.Context, req CreateSuggestionRequest) (*suggestiondb.Suggestion, error) {
	return operation.Run(s.run, ctx, "CreateSuggestion", strconv.FormatInt(req.CreatedBy, 10), func(ctx context.Context, db bun.IDB) (suggestionResult, error) {
		return s.createSuggestionLogic(ctx, db, req)
	})
}

func (s *SuggestionService) createSuggestionLogic(ctx context.Context, db bun.IDB, req CreateSuggestionRequest) (suggestionResult, error) {
	if err := validate.First(
		validate.Length("title", req.Title, 1, 100),
		validate.Length("description", req.Description, 1, 1000),
		validate.ID("created_by", req.CreatedBy),
	); err != nil {
		return results.FailureResult[*suggestiondb.Suggestion, error](err), nil
	}

	if _, err := s.users.GetUserByID(ctx, db, req.CreatedBy); err != nil {
		if errors.Is(err, userdb.ErrNotFound) {
			return results.FailureResult[*suggestiondb.Suggestion, error](domainerr.NotFound("User with id %d does not exist", req.CreatedBy)), nil
		}
		return suggestionResult{}, fmt.Errorf("failed to get creator: %w", err)
	}

	suggestion := &suggestiondb.Suggestion{
		Title:       req.Title,
		Description: req.Description,
		Status:      suggestiondb.StatusPending,
		CreatedBy:   req.CreatedBy,
	}
	if err := s.repo.CreateSuggestion(ctx, db, suggestion); err != nil {
		return suggestionResult{}, err
	}

	return results.SuccessResult[*suggestiondb.Suggestion, error](suggestion), nil
}

// ListSuggestions returns every suggestion, newest first.
func (s *SuggestionService) ListSuggestions(ctx context.Context) ([]suggestiondb.Suggestion, error) {
	return operation.Run(s.run, ctx, "ListSuggestions", "all", func(ctx context.Context, db bun.IDB) (results.OperationResult[[]suggestiondb.Suggestion, error], error) {
		suggestions, err := s.repo.ListSuggestions(ctx, db)
		if err != nil {
			return results.OperationResult[[]suggestiondb.Suggestion, error]{}, err
		}
		if suggestions == nil {
			suggestions = []suggestiondb.Suggestion{}
		}
		return results.SuccessResult[[]suggestiondb.Suggestion, error](suggestions), nil
	})
}

// UpdateSuggestionStatus moves a suggestion through review.
func (s *SuggestionService) UpdateSuggestionStatus(ctx context.Context, suggestionID int64, status suggestiondb.Status) (*suggestiondb.Suggestion, error) {
	return operation.Run(s.run, ctx, "UpdateSuggestionStatus", strconv.FormatInt(suggestionID, 10), func(ctx context.Context, db bun.IDB) (suggestionResult, error) {
		if err := validate.First(
			validate.ID("suggestion_id", suggestionID),
			validate.OneOf("status", status, suggestiondb.Statuses),
		); err != nil {
			return results.FailureResult[*suggestiondb.Suggestion, error](err), nil
		}

		suggestion, err := s.repo.UpdateSuggestionStatus(ctx, db, suggestionID, status)
		if err != nil {
			if errors.Is(err, suggestiondb.ErrNoRowsAffected) {
				return results.FailureResult[*suggestiondb.Suggestion, error](domainerr.NotFound("Suggestion with id %d not found", suggestionID)), nil
			}
			return suggestionResult{}, err
		}
		return results.SuccessResult[*suggestiondb.Suggestion, error](suggestion), nil
	})
}
