package team

import (
	"context"
	"log/slog"

	teamservice "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/team/application"
	teamhandlers "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/team/infrastructure/handlers"
	teamdb "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/team/infrastructure/repositories"
	teamrouter "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/team/infrastructure/router"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/eventbus"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/opmetrics"
	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"
)

// Module represents the team module.
type Module struct {
	TeamService teamservice.Service
	TeamRouter  *teamrouter.TeamRouter
}

// NewTeamModule creates and initializes a new team module.
func NewTeamModule(
	ctx context.Context,
	logger *slog.Logger,
	metrics opmetrics.OperationMetrics,
	tracer trace.Tracer,
	db *bun.DB,
	mux chi.Router,
	users teamservice.UserLookup,
	bus eventbus.EventBus,
) (*Module, error) {
	logger.InfoContext(ctx, "team.NewTeamModule initializing")

	// 1. Initialize Repository
	repo := teamdb.NewRepository(db)

	// 2. Initialize Service
	service := teamservice.NewTeamService(repo, users, logger, metrics, tracer, db)

	// 3. Initialize Handlers
	handlers := teamhandlers.NewTeamHandlers(service, bus, logger, tracer)

	// 4. Initialize Router
	router := teamrouter.NewTeamRouter(logger, mux)
	router.Configure(handlers)

	return &Module{
		TeamService: service,
		TeamRouter:  router,
	}, nil
}
