package userrouter

import (
	"log/slog"

	userhandlers "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/user/infrastructure/handlers"
	"github.com/go-chi/chi/v5"
)

// UserRouter mounts the user module's HTTP routes.
type UserRouter struct {
	logger *slog.Logger
	mux    chi.Router
}

// NewUserRouter creates a new UserRouter on mux.
func NewUserRouter(logger *slog.Logger, mux chi.Router) *UserRouter {
	return &UserRouter{
		logger: logger,
		mux:    mux,
	}
}

// Configure registers the handlers.
func (r *UserRouter) Configure(handlers userhandlers.Handlers) {
	r.logger.Info("Registering user module routes",
		slog.String("prefix", "/api/users"),
	)

	r.mux.Route("/api/users", func(mux chi.Router) {
		mux.Post("/", handlers.HandleCreateUser)
		mux.Get("/", handlers.HandleListUsers)
		mux.Get("/discord/{discordID}", handlers.HandleGetUserByDiscordID)
		mux.Patch("/{userID}", handlers.HandleUpdateUser)
		mux.Post("/{userID}/characters", handlers.HandleCreateCharacter)
		mux.Get("/{userID}/characters", handlers.HandleGetCharactersByUser)
	})
	r.mux.Patch("/api/characters/{characterID}", handlers.HandleUpdateCharacter)
}
