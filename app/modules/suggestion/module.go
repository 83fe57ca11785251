package suggestion

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	suggestionservice "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/suggestion/application"
	suggestionhandlers "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/suggestion/infrastructure/handlers"
	suggestionqueue "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/suggestion/infrastructure/queue"
	suggestiondb "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/suggestion/infrastructure/repositories"
	suggestionrouter "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/suggestion/infrastructure/router"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/eventbus"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/opmetrics"
	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"
)

// Module represents the suggestion module.
type Module struct {
	SuggestionService suggestionservice.Service
	SuggestionRouter  *suggestionrouter.SuggestionRouter
	QueueService      suggestionqueue.QueueService
	logger            *slog.Logger
	metrics           opmetrics.OperationMetrics
}

// NewSuggestionModule creates and initializes a new suggestion module.
func NewSuggestionModule(
	ctx context.Context,
	logger *slog.Logger,
	metrics opmetrics.OperationMetrics,
	tracer trace.Tracer,
	db *bun.DB,
	mux chi.Router,
	users suggestionservice.UserLookup,
	bus eventbus.EventBus,
) (*Module, error) {
	logger.InfoContext(ctx, "suggestion.NewSuggestionModule initializing")

	// 1. Initialize Repository
	repo := suggestiondb.NewRepository(db)

	// 2. Initialize Service
	service := suggestionservice.NewSuggestionService(repo, users, logger, metrics, tracer, db)

	// 3. Initialize Handlers
	handlers := suggestionhandlers.NewSuggestionHandlers(service, bus, logger, tracer)

	// 4. Initialize Router
	router := suggestionrouter.NewSuggestionRouter(logger, mux)
	router.Configure(handlers)

	return &Module{
		SuggestionService: service,
		SuggestionRouter:  router,
		logger:            logger,
		metrics:           metrics,
	}, nil
}

// StartQueue starts the River vote-counter audit against dsn.
func (m *Module) StartQueue(ctx context.Context, dsn string, auditInterval time.Duration) error {
	queue, err := suggestionqueue.NewService(ctx, m.logger, dsn, m.metrics, m.SuggestionService, auditInterval)
	if err != nil {
		return fmt.Errorf("failed to create suggestion queue: %w", err)
	}
	if err := queue.Start(ctx); err != nil {
		return err
	}
	m.QueueService = queue
	return nil
}

// Close stops the queue, if it was started.
func (m *Module) Close(ctx context.Context) error {
	if m.QueueService == nil {
		return nil
	}
	m.logger.InfoContext(ctx, "Stopping suggestion module")
	return m.QueueService.Stop(ctx)
}
