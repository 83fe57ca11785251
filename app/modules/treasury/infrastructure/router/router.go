package treasuryrouter

import (
	"log/slog"

	treasuryhandlers "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/treasury/infrastructure/handlers"
	"github.com/go-chi/chi/v5"
)

// TreasuryRouter mounts the treasury module's HTTP routes.
type TreasuryRouter struct {
	logger *slog.Logger
	mux    chi.Router
}

// NewTreasuryRouter creates a new TreasuryRouter on mux.
func NewTreasuryRouter(logger *slog.Logger, mux chi.Router) *TreasuryRouter {
	return &TreasuryRouter{logger: logger, mux: mux}
}

// Configure registers the handlers.
func (r *TreasuryRouter) Configure(handlers treasuryhandlers.Handlers) {
	r.logger.Info("Registering treasury module routes",
		slog.String("prefix", "/api/treasury"),
	)

	r.mux.Route("/api/treasury", func(mux chi.Router) {
		mux.Post("/fees", handlers.HandleCreateFee)
		mux.Get("/fees/current", handlers.HandleGetCurrentFee)
		mux.Post("/payments", handlers.HandleSubmitPayment)
	})
}
