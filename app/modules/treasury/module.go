package treasury

import (
	"context"
	"log/slog"

	eventtime "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/event/time_utils"
	treasuryservice "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/treasury/application"
	treasuryhandlers "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/treasury/infrastructure/handlers"
	treasurydb "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/treasury/infrastructure/repositories"
	treasuryrouter "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/treasury/infrastructure/router"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/opmetrics"
	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"
)

// Module represents the treasury module.
type Module struct {
	TreasuryService treasuryservice.Service
	TreasuryRouter  *treasuryrouter.TreasuryRouter
}

// NewTreasuryModule creates and initializes a new treasury module.
func NewTreasuryModule(
	ctx context.Context,
	logger *slog.Logger,
	metrics opmetrics.OperationMetrics,
	tracer trace.Tracer,
	db *bun.DB,
	mux chi.Router,
	users treasuryservice.UserLookup,
) (*Module, error) {
	logger.InfoContext(ctx, "treasury.NewTreasuryModule initializing")

	// 1. Initialize Repository
	repo := treasurydb.NewRepository(db)

	// 2. Initialize Service
	service := treasuryservice.NewTreasuryService(repo, users, eventtime.RealClock{}, logger, metrics, tracer, db)

	// 3. Initialize Handlers
	handlers := treasuryhandlers.NewTreasuryHandlers(service, logger, tracer)

	// 4. Initialize Router
	router := treasuryrouter.NewTreasuryRouter(logger, mux)
	router.Configure(handlers)

	return &Module{
		TreasuryService: service,
		TreasuryRouter:  router,
	}, nil
}
