package recruitmentrouter

import (
	"log/slog"

	recruitmenthandlers "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/recruitment/infrastructure/handlers"
	"github.com/go-chi/chi/v5"
)

// RecruitmentRouter mounts the recruitment module's HTTP routes.
type RecruitmentRouter struct {
	logger *slog.Logger
	mux    chi.Router
}

// NewRecruitmentRouter creates a new RecruitmentRouter on mux.
func NewRecruitmentRouter(logger *slog.Logger, mux chi.Router) *RecruitmentRouter {
	return &RecruitmentRouter{logger: logger, mux: mux}
}

// Configure registers the handlers.
func (r *RecruitmentRouter) Configure(handlers recruitmenthandlers.Handlers) {
	r.logger.Info("Registering recruitment module routes",
		slog.String("prefix", "/api/recruitment"),
	)

	r.mux.Route("/api/recruitment", func(mux chi.Router) {
		mux.Post("/applications", handlers.HandleCreateApplication)
		mux.Get("/applications/pending", handlers.HandleListPendingApplications)
		mux.Post("/applications/{applicationID}/review", handlers.HandleReviewApplication)
	})
}
