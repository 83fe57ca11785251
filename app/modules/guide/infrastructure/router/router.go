package guiderouter

import (
	"log/slog"

	guidehandlers "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/guide/infrastructure/handlers"
	"github.com/go-chi/chi/v5"
)

// GuideRouter mounts the guide module's HTTP routes.
type GuideRouter struct {
	logger *slog.Logger
	mux    chi.Router
}

// NewGuideRouter creates a new GuideRouter on mux.
func NewGuideRouter(logger *slog.Logger, mux chi.Router) *GuideRouter {
	return &GuideRouter{logger: logger, mux: mux}
}

// Configure registers the handlers.
func (r *GuideRouter) Configure(handlers guidehandlers.Handlers) {
	r.logger.Info("Registering guide module routes",
		slog.String("prefix", "/api/guides"),
	)

	r.mux.Route("/api/guides", func(mux chi.Router) {
		mux.Post("/", handlers.HandleCreateGuide)
		mux.Get("/", handlers.HandleListApprovedGuides)
		mux.Get("/pending", handlers.HandleListPendingGuides)
		mux.Post("/{guideID}/review", handlers.HandleReviewGuide)
	})
}
