package teamrouter

import (
	"log/slog"

	teamhandlers "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/team/infrastructure/handlers"
	"github.com/go-chi/chi/v5"
)

// TeamRouter mounts the team module's HTTP routes.
type TeamRouter struct {
	logger *slog.Logger
	mux    chi.Router
}

// NewTeamRouter creates a new TeamRouter on mux.
func NewTeamRouter(logger *slog.Logger, mux chi.Router) *TeamRouter {
	return &TeamRouter{logger: logger, mux: mux}
}

// Configure registers the handlers.
func (r *TeamRouter) Configure(handlers teamhandlers.Handlers) {
	r.logger.Info("Registering team module routes",
		slog.String("prefix", "/api/teams"),
	)

	r.mux.Route("/api/teams", func(mux chi.Router) {
		mux.Post("/", handlers.HandleCreateTeam)
		mux.Get("/", handlers.HandleListTeams)
		mux.Get("/{teamID}/members", handlers.HandleGetTeamMembers)
		mux.Post("/{teamID}/members", handlers.HandleJoinTeam)
	})
}
