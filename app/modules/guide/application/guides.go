package guideservice

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	guidedb "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/guide/infrastructure/repositories"
	userdb "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/user/infrastructure/repositories"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/domainerr"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/operation"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/results"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/validate"
	"github.com/uptrace/bun"
)

type guideResult = results.OperationResult[*guidedb.Guide, error]

type guideListResult = results.OperationResult[[]guidedb.Guide, error]

// CreateGuide submits a guide for moderation on behalf of an existing user.
func (s *GuideService) CreateGuide(ctx context.Context, req CreateGuideRequest) (*guidedb.Guide, error) {
	return operation.Run(s.run, ctx, "CreateGuide", strconv.FormatInt(req.CreatedBy, 10), func(ctx context.Context, db bun.IDB) (guideResult, error) {
		if err := validate.First(
			validate.Length("title", req.Title, 1, 100),
			validate.Length("content", req.Content, 100, 10000),
			validate.ID("created_by", req.CreatedBy),
		); err != nil {
			return results.FailureResult[*guidedb.Guide, error](err), nil
		}

		if _, err := s.users.GetUserByID(ctx, db, req.CreatedBy); err != nil {
			if errors.Is(err, userdb.ErrNotFound) {
				return results.FailureResult[*guidedb.Guide, error](domainerr.NotFound("User with id %d does not exist", req.CreatedBy)), nil
			}
			return guideResult{}, fmt.Errorf("failed to get author: %w", err)
		}

		guide := &guidedb.Guide{
			Title:     req.Title,
			Content:   req.Content,
			Status:    guidedb.StatusPending,
			CreatedBy: req.CreatedBy,
		}
		if err := s.repo.CreateGuide(ctx, db, guide); err != nil {
			return guideResult{}, err
		}
		return results.SuccessResult[*guidedb.Guide, error](guide), nil
	})
}

// ListApprovedGuides returns the published guides, newest first.
func (s *GuideService) ListApprovedGuides(ctx context.Context) ([]guidedb.Guide, error) {
	return s.listGuides(ctx, "ListApprovedGuides", guidedb.StatusApproved, true)
}

// ListPendingGuides returns the moderation queue, oldest first.
func (s *GuideService) ListPendingGuides(ctx context.Context) ([]guidedb.Guide, error) {
	return s.listGuides(ctx, "ListPendingGuides", guidedb.StatusPending, false)
}

func (s *GuideService) listGuides(ctx context.Context, op string, status guidedb.Status, newestFirst bool) ([]guidedb.Guide, error) {
	return operation.Run(s.run, ctx, op, string(status), func(ctx context.Context, db bun.IDB) (guideListResult, error) {
		guides, err := s.repo.ListGuidesByStatus(ctx, db, status, newestFirst)
		if err != nil {
			return guideListResult{}, err
		}
		if guides == nil {
			guides = []guidedb.Guide{}
		}
		return results.SuccessResult[[]guidedb.Guide, error](guides), nil
	})
}

// ReviewGuide approves or rejects a guide. A decided guide may be reviewed
// again; approved_at follows the latest decision.
func (s *GuideService) ReviewGuide(ctx context.Context, guideID int64, req ReviewGuideRequest) (*guidedb.Guide, error) {
	return operation.Run(s.run, ctx, "ReviewGuide", strconv.FormatInt(guideID, 10), func(ctx context.Context, db bun.IDB) (guideResult, error) {
		return s.reviewGuideLogic(ctx, db, guideID, req)
	})
}

func (s *GuideService) reviewGuideLogic(ctx context.Context, db bun.IDB, guideID int64, req ReviewGuideRequest) (guideResult, error) {
	if err := validate.First(
		validate.ID("guide_id", guideID),
		validate.OneOf("status", req.Status, guidedb.Decisions),
		validate.ID("approved_by", req.ApprovedBy),
	); err != nil {
		return results.FailureResult[*guidedb.Guide, error](err), nil
	}

	if _, err := s.repo.GetGuideForUpdate(ctx, db, guideID); err != nil {
		if errors.Is(err, guidedb.ErrNotFound) {
			return results.FailureResult[*guidedb.Guide, error](domainerr.NotFound("Guide not found")), nil
		}
		return guideResult{}, err
	}

	if _, err := s.users.GetUserByID(ctx, db, req.ApprovedBy); err != nil {
		if errors.Is(err, userdb.ErrNotFound) {
			return results.FailureResult[*guidedb.Guide, error](domainerr.NotFound("Reviewer not found")), nil
		}
		return guideResult{}, fmt.Errorf("failed to get reviewer: %w", err)
	}

	now := time.Now().UTC()
	review := guidedb.Review{
		Status:     req.Status,
		ApprovedBy: req.ApprovedBy,
		ReviewedAt: now,
	}
	if req.Status == guidedb.StatusApproved {
		review.ApprovedAt = &now
	}

	guide, err := s.repo.RecordReview(ctx, db, guideID, review)
	if err != nil {
		if errors.Is(err, guidedb.ErrNoRowsAffected) {
			return results.FailureResult[*guidedb.Guide, error](domainerr.NotFound("Guide not found")), nil
		}
		return guideResult{}, err
	}
	return results.SuccessResult[*guidedb.Guide, error](guide), nil
}
