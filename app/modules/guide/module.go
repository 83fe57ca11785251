package guide

import (
	"context"
	"log/slog"

	guideservice "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/guide/application"
	guidehandlers "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/guide/infrastructure/handlers"
	guidedb "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/guide/infrastructure/repositories"
	guiderouter "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/guide/infrastructure/router"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/eventbus"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/opmetrics"
	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"
)

// Module represents the guide module.
type Module struct {
	GuideService guideservice.Service
	GuideRouter  *guiderouter.GuideRouter
}

// NewGuideModule creates and initializes a new guide module.
func NewGuideModule(
	ctx context.Context,
	logger *slog.Logger,
	metrics opmetrics.OperationMetrics,
	tracer trace.Tracer,
	db *bun.DB,
	mux chi.Router,
	users guideservice.UserLookup,
	bus eventbus.EventBus,
) (*Module, error) {
	logger.InfoContext(ctx, "guide.NewGuideModule initializing")

	// 1. Initialize Repository
	repo := guidedb.NewRepository(db)

	// 2. Initialize Service
	service := guideservice.NewGuideService(repo, users, logger, metrics, tracer, db)

	// 3. Initialize Handlers
	handlers := guidehandlers.NewGuideHandlers(service, bus, logger, tracer)

	// 4. Initialize Router
	router := guiderouter.NewGuideRouter(logger, mux)
	router.Configure(handlers)

	return &Module{
		GuideService: service,
		GuideRouter:  router,
	}, nil
}
