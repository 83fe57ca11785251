package guideservice

import (
	"log/slog"

	guidedb "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/guide/infrastructure/repositories"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/operation"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/opmetrics"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"
)

// GuideService implements the Service interface.
type GuideService struct {
	repo  guidedb.Repository
	users UserLookup
	run   *operation.Runner
}

// NewGuideService creates a new GuideService.
func NewGuideService(
	repo guidedb.Repository,
	users UserLookup,
	logger *slog.Logger,
	metrics opmetrics.OperationMetrics,
	tracer trace.Tracer,
	db *bun.DB,
) *GuideService {
	return &GuideService{
		repo:  repo,
		users: users,
		run:   operation.NewRunner("GuideService", logger, metrics, tracer, db),
	}
}

var _ Service = (*GuideService)(nil)
