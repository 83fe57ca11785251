package suggestionrouter

import (
	"log/slog"

	suggestionhandlers "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/suggestion/infrastructure/handlers"
	"github.com/go-chi/chi/v5"
)

// SuggestionRouter mounts the suggestion board's HTTP routes.
type SuggestionRouter struct {
	logger *slog.Logger
	mux    chi.Router
}

// NewSuggestionRouter creates a new SuggestionRouter on mux.
func NewSuggestionRouter(logger *slog.Logger, mux chi.Router) *SuggestionRouter {
	return &SuggestionRouter{
		logger: logger,
		mux:    mux,
	}
}

// Configure registers the handlers.
func (r *SuggestionRouter) Configure(handlers suggestionhandlers.Handlers) {
	r.logger.Info("Registering suggestion module routes",
		slog.String("prefix", "/api/suggestions"),
	)

	r.mux.Route("/api/suggestions", func(mux chi.Router) {
		mux.Post("/", handlers.HandleCreateSuggestion)
		mux.Get("/", handlers.HandleListSuggestions)
		// Static segment; chi matches it ahead of {suggestionID}.
		mux.Get("/chart.png", handlers.HandleVoteChart)
		mux.Patch("/{suggestionID}/status", handlers.HandleUpdateSuggestionStatus)
		mux.Post("/{suggestionID}/votes", handlers.HandleCastVote)
	})
}
