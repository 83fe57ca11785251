package recruitmentservice

import (
	"context"

	recruitmentdb "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/recruitment/infrastructure/repositories"
	userdb "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/user/infrastructure/repositories"
	"github.com/uptrace/bun"
)

// Service defines the recruitment module's application operations.
type Service interface {
	CreateApplication(ctx context.Context, req CreateApplicationRequest) (*recruitmentdb.Application, error)
	ListPendingApplications(ctx context.Context) ([]recruitmentdb.Application, error)

	// ReviewApplication decides a pending application. Approving a recruit
	// promotes them to member in the same transaction.
	ReviewApplication(ctx context.Context, applicationID int64, req ReviewApplicationRequest) (*recruitmentdb.Application, error)
}

// UserStore is the part of the user repository this module reads and writes.
type UserStore interface {
	GetUserByID(ctx context.Context, db bun.IDB, id int64) (*userdb.User, error)
	UpdateUser(ctx context.Context, db bun.IDB, id int64, updates *userdb.UserUpdateFields) (*userdb.User, error)
}

// CreateApplicationRequest submits an application for an existing user.
type CreateApplicationRequest struct {
	UserID          int64  `json:"user_id"`
	ApplicationText string `json:"application_text"`
}

// ReviewApplicationRequest is the body of a review.
type ReviewApplicationRequest struct {
	Status     recruitmentdb.Status `json:"status"`
	ReviewedBy int64                `json:"reviewed_by"`
}
