package announcement

import (
	"context"
	"log/slog"

	announcementservice "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/announcement/application"
	announcementhandlers "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/announcement/infrastructure/handlers"
	announcementdb "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/announcement/infrastructure/repositories"
	announcementrouter "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/announcement/infrastructure/router"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/eventbus"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/opmetrics"
	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"
)

// Module represents the announcement module, which also owns the gallery.
type Module struct {
	AnnouncementService announcementservice.Service
	AnnouncementRouter  *announcementrouter.AnnouncementRouter
}

// NewAnnouncementModule creates and initializes a new announcement module.
func NewAnnouncementModule(
	ctx context.Context,
	logger *slog.Logger,
	metrics opmetrics.OperationMetrics,
	tracer trace.Tracer,
	db *bun.DB,
	mux chi.Router,
	users announcementservice.UserLookup,
	bus eventbus.EventBus,
) (*Module, error) {
	logger.InfoContext(ctx, "announcement.NewAnnouncementModule initializing")

	// 1. Initialize Repository
	repo := announcementdb.NewRepository(db)

	// 2. Initialize Service
	service := announcementservice.NewAnnouncementService(repo, users, logger, metrics, tracer, db)

	// 3. Initialize Handlers
	handlers := announcementhandlers.NewAnnouncementHandlers(service, bus, logger, tracer)

	// 4. Initialize Router
	router := announcementrouter.NewAnnouncementRouter(logger, mux)
	router.Configure(handlers)

	return &Module{
		AnnouncementService: service,
		AnnouncementRouter:  router,
	}, nil
}
