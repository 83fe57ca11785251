package guideservice

import (
	"context"

	guidedb "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/guide/infrastructure/repositories"
	userdb "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/user/infrastructure/repositories"
	"github.com/uptrace/bun"
)

// Service defines the guide library's application operations.
type Service interface {
	CreateGuide(ctx context.Context, req CreateGuideRequest) (*guidedb.Guide, error)
	ListApprovedGuides(ctx context.Context) ([]guidedb.Guide, error)
	ListPendingGuides(ctx context.Context) ([]guidedb.Guide, error)
	ReviewGuide(ctx context.Context, guideID int64, req ReviewGuideRequest) (*guidedb.Guide, error)
}

// UserLookup is the part of the user repository this module reads.
type UserLookup interface {
	GetUserByID(ctx context.Context, db bun.IDB, id int64) (*userdb.User, error)
}

// CreateGuideRequest submits a guide for moderation.
type CreateGuideRequest struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	CreatedBy int64  `json:"created_by"`
}

// ReviewGuideRequest is the body of a moderation decision.
type ReviewGuideRequest struct {
	Status     guidedb.Status `json:"status"`
	ApprovedBy int64          `json:"approved_by"`
}
