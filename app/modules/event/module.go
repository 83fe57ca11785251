package event

import (
	"context"
	"log/slog"

	eventservice "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/event/application"
	eventhandlers "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/event/infrastructure/handlers"
	eventdb "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/event/infrastructure/repositories"
	eventrouter "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/event/infrastructure/router"
	eventtime "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/event/time_utils"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/eventbus"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/opmetrics"
	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"
)

// Module represents the event module.
type Module struct {
	EventService eventservice.Service
	EventRouter  *eventrouter.EventRouter
}

// NewEventModule creates and initializes a new event module.
func NewEventModule(
	ctx context.Context,
	logger *slog.Logger,
	metrics opmetrics.OperationMetrics,
	tracer trace.Tracer,
	db *bun.DB,
	mux chi.Router,
	users eventservice.UserLookup,
	bus eventbus.EventBus,
) (*Module, error) {
	logger.InfoContext(ctx, "event.NewEventModule initializing")

	// 1. Initialize Repository
	repo := eventdb.NewRepository(db)

	// 2. Initialize Service
	service := eventservice.NewEventService(repo, users, eventtime.RealClock{}, logger, metrics, tracer, db)

	// 3. Initialize Handlers
	handlers := eventhandlers.NewEventHandlers(service, bus, logger, tracer)

	// 4. Initialize Router
	router := eventrouter.NewEventRouter(logger, mux)
	router.Configure(handlers)

	return &Module{
		EventService: service,
		EventRouter:  router,
	}, nil
}
