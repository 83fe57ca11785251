package eventrouter

import (
	"log/slog"

	eventhandlers "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/event/infrastructure/handlers"
	"github.com/go-chi/chi/v5"
)

// EventRouter mounts the event module's HTTP routes.
type EventRouter struct {
	logger *slog.Logger
	mux    chi.Router
}

// NewEventRouter creates a new EventRouter on mux.
func NewEventRouter(logger *slog.Logger, mux chi.Router) *EventRouter {
	return &EventRouter{logger: logger, mux: mux}
}

// Configure registers the handlers.
func (r *EventRouter) Configure(handlers eventhandlers.Handlers) {
	r.logger.Info("Registering event module routes",
		slog.String("prefix", "/api/events"),
	)

	r.mux.Route("/api/events", func(mux chi.Router) {
		mux.Post("/", handlers.HandleCreateEvent)
		mux.Get("/upcoming", handlers.HandleGetUpcomingEvents)
		mux.Route("/{eventID}", func(mux chi.Router) {
			mux.Get("/registrations", handlers.HandleGetEventRegistrations)
			mux.Post("/registrations", handlers.HandleRegisterForEvent)
			mux.Get("/roster.xlsx", handlers.HandleExportRoster)
		})
	})
}
