package recruitment

import (
	"context"
	"log/slog"

	recruitmentservice "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/recruitment/application"
	recruitmenthandlers "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/recruitment/infrastructure/handlers"
	recruitmentdb "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/recruitment/infrastructure/repositories"
	recruitmentrouter "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/recruitment/infrastructure/router"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/eventbus"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/opmetrics"
	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"
)

// Module represents the recruitment module.
type Module struct {
	RecruitmentService recruitmentservice.Service
	RecruitmentRouter  *recruitmentrouter.RecruitmentRouter
}

// NewRecruitmentModule creates and initializes a new recruitment module. users
// must be able to update roles, since approval promotes the applicant.
func NewRecruitmentModule(
	ctx context.Context,
	logger *slog.Logger,
	metrics opmetrics.OperationMetrics,
	tracer trace.Tracer,
	db *bun.DB,
	mux chi.Router,
	users recruitmentservice.UserStore,
	bus eventbus.EventBus,
) (*Module, error) {
	logger.InfoContext(ctx, "recruitment.NewRecruitmentModule initializing")

	// 1. Initialize Repository
	repo := recruitmentdb.NewRepository(db)

	// 2. Initialize Service
	service := recruitmentservice.NewRecruitmentService(repo, users, logger, metrics, tracer, db)

	// 3. Initialize Handlers
	handlers := recruitmenthandlers.NewRecruitmentHandlers(service, bus, logger, tracer)

	// 4. Initialize Router
	router := recruitmentrouter.NewRecruitmentRouter(logger, mux)
	router.Configure(handlers)

	return &Module{
		RecruitmentService: service,
		RecruitmentRouter:  router,
	}, nil
}
