package user

import (
	"context"
	"log/slog"

	userservice "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/user/application"
	userhandlers "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/user/infrastructure/handlers"
	userdb "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/user/infrastructure/repositories"
	userrouter "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/user/infrastructure/router"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/opmetrics"
	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"
)

// Module represents the user module.
type Module struct {
	UserService userservice.Service
	// Repository is shared with modules that look up users and characters
	// inside their own transactions.
	Repository userdb.Repository
	UserRouter *userrouter.UserRouter
}

// NewUserModule creates and initializes a new user module.
func NewUserModule(
	ctx context.Context,
	logger *slog.Logger,
	metrics opmetrics.OperationMetrics,
	tracer trace.Tracer,
	db *bun.DB,
	mux chi.Router,
) (*Module, error) {
	logger.InfoContext(ctx, "user.NewUserModule initializing")

	// 1. Initialize Repository
	repo := userdb.NewRepository(db)

	// 2. Initialize Service
	service := userservice.NewUserService(repo, logger, metrics, tracer, db)

	// 3. Initialize Handlers
	handlers := userhandlers.NewUserHandlers(service, logger, tracer)

	// 4. Initialize Router
	router := userrouter.NewUserRouter(logger, mux)
	router.Configure(handlers)

	return &Module{
		UserService: service,
		Repository:  repo,
		UserRouter:  router,
	}, nil
}
