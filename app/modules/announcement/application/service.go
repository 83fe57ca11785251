package announcementservice

import (
	"log/slog"

	announcementdb "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/announcement/infrastructure/repositories"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/operation"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/opmetrics"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"
)

// AnnouncementService implements the Service interface.
type AnnouncementService struct {
	repo  announcementdb.Repository
	users UserLookup
	run   *operation.Runner
}

// NewAnnouncementService creates a new AnnouncementService.
func NewAnnouncementService(
	repo announcementdb.Repository,
	users UserLookup,
	logger *slog.Logger,
	metrics opmetrics.OperationMetrics,
	tracer trace.Tracer,
	db *bun.DB,
) *AnnouncementService {
	return &AnnouncementService{
		repo:  repo,
		users: users,
		run:   operation.NewRunner("AnnouncementService", logger, metrics, tracer, db),
	}
}

var _ Service = (*AnnouncementService)(nil)
