package recruitmentservice

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	recruitmentdb "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/recruitment/infrastructure/repositories"
	userdb "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/user/infrastructure/repositories"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/domainerr"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/operation"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/results"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/validate"
	"github.com/uptrace/bun"
)

const (
	MinApplicationText = 50
	MaxApplicationText = 1000
)

type applicationResult = results.OperationResult[*recruitmentdb.Application, error]

// CreateApplication files a pending application on behalf of an existing user.
func (s *RecruitmentService) CreateApplication(ctx context.Context, req CreateApplicationRequest) (*recruitmentdb.Application, error) {
	return operation.Run(s.run, ctx, "CreateApplication", strconv.FormatInt(req.UserID, 10), func(ctx context.Context, db bun.IDB) (applicationResult, error) {
		return s.createApplicationLogic(ctx, db, req)
	})
}

func (s *RecruitmentService) createApplicationLogic(ctx context.Context, db bun.IDB, req CreateApplicationRequest) (applicationResult, error) {
	if err := validate.First(
		validate.ID("user_id", req.UserID),
		validate.Length("application_text", req.ApplicationText, MinApplicationText, MaxApplicationText),
	); err != nil {
		return results.FailureResult[*recruitmentdb.Application, error](err), nil
	}

	if _, err := s.users.GetUserByID(ctx, db, req.UserID); err != nil {
		if errors.Is(err, userdb.ErrNotFound) {
			return results.FailureResult[*recruitmentdb.Application, error](domainerr.NotFound("User with id %d does not exist", req.UserID)), nil
		}
		return applicationResult{}, fmt.Errorf("failed to get applicant: %w", err)
	}

	application := &recruitmentdb.Application{
		UserID:          req.UserID,
		ApplicationText: req.ApplicationText,
		Status:          recruitmentdb.StatusPending,
	}
	if err := s.repo.CreateApplication(ctx, db, application); err != nil {
		return applicationResult{}, err
	}

	return results.SuccessResult[*recruitmentdb.Application, error](application), nil
}

// ListPendingApplications returns the applications awaiting review, oldest first.
func (s *RecruitmentService) ListPendingApplications(ctx context.Context) ([]recruitmentdb.Application, error) {
	return operation.Run(s.run, ctx, "ListPendingApplications", "pending", func(ctx context.Context, db bun.IDB) (results.OperationResult[[]recruitmentdb.Application, error], error) {
		applications, err := s.repo.ListPendingApplications(ctx, db)
		if err != nil {
			return results.OperationResult[[]recruitmentdb.Application, error]{}, err
		}
		if applications == nil {
			applications = []recruitmentdb.Application{}
		}
		return results.SuccessResult[[]recruitmentdb.Application, error](applications), nil
	})
}

// ReviewApplication records the decision on a pending application.
//
// The application row stays locked for the whole transaction, so two reviewers
// cannot both decide it. Approval promotes the applicant from recruit to member;
// applicants who already hold a higher role keep it.
func (s *RecruitmentService) ReviewApplication(ctx context.Context, applicationID int64, req ReviewApplicationRequest) (*recruitmentdb.Application, error) {
	return operation.Run(s.run, ctx, "ReviewApplication", strconv.FormatInt(applicationID, 10), func(ctx context.Context, db bun.IDB) (applicationResult, error) {
		return s.reviewApplicationLogic(ctx, db, applicationID, req)
	})
}

func (s *RecruitmentService) reviewApplicationLogic(ctx context.Context, db bun.IDB, applicationID int64, req ReviewApplicationRequest) (applicationResult, error) {
	if err := validate.First(
		validate.ID("application_id", applicationID),
		validate.OneOf("status", req.Status, recruitmentdb.Decisions),
		validate.ID("reviewed_by", req.ReviewedBy),
	); err != nil {
		return results.FailureResult[*recruitmentdb.Application, error](err), nil
	}

	existing, err := s.repo.GetApplicationForUpdate(ctx, db, applicationID)
	if err != nil {
		if errors.Is(err, recruitmentdb.ErrNotFound) {
			return results.FailureResult[*recruitmentdb.Application, error](domainerr.NotFound("Recruitment application not found")), nil
		}
		return applicationResult{}, err
	}
	if existing.Status != recruitmentdb.StatusPending {
		return results.FailureResult[*recruitmentdb.Application, error](domainerr.Conflict("Application has already been reviewed")), nil
	}

	if _, err := s.users.GetUserByID(ctx, db, req.ReviewedBy); err != nil {
		if errors.Is(err, userdb.ErrNotFound) {
			return results.FailureResult[*recruitmentdb.Application, error](domainerr.NotFound("Reviewer not found")), nil
		}
		return applicationResult{}, fmt.Errorf("failed to get reviewer: %w", err)
	}

	application, err := s.repo.RecordReview(ctx, db, applicationID, recruitmentdb.Review{
		Status:     req.Status,
		ReviewedBy: req.ReviewedBy,
		ReviewedAt: time.Now().UTC(),
	})
	if err != nil {
		return applicationResult{}, err
	}

	if application.Status == recruitmentdb.StatusApproved {
		if err := s.promoteApplicant(ctx, db, application.UserID); err != nil {
			return applicationResult{}, err
		}
	}

	return results.SuccessResult[*recruitmentdb.Application, error](application), nil
}

func (s *RecruitmentService) promoteApplicant(ctx context.Context, db bun.IDB, userID int64) error {
	applicant, err := s.users.GetUserByID(ctx, db, userID)
	if err != nil {
		return fmt.Errorf("failed to get applicant: %w", err)
	}
	if applicant.GuildRole != userdb.RoleRecruit {
		return nil
	}

	role := userdb.RoleMember
	if _, err := s.users.UpdateUser(ctx, db, userID, &userdb.UserUpdateFields{GuildRole: &role}); err != nil {
		return fmt.Errorf("failed to promote applicant: %w", err)
	}
	return nil
}
