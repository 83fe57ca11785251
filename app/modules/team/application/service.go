package teamservice

import (
	"log/slog"

	teamdb "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/team/infrastructure/repositories"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/operation"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/opmetrics"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"
)

// TeamService implements the Service interface.
type TeamService struct {
	repo  teamdb.Repository
	users UserLookup
	run   *operation.Runner
}

// NewTeamService creates a new TeamService.
func NewTeamService(
	repo teamdb.Repository,
	users UserLookup,
	logger *slog.Logger,
	metrics opmetrics.OperationMetrics,
	tracer trace.Tracer,
	db *bun.DB,
) *TeamService {
	return &TeamService{
		repo:  repo,
		users: users,
		run:   operation.NewRunner("TeamService", logger, metrics, tracer, db),
	}
}

var _ Service = (*TeamService)(nil)
