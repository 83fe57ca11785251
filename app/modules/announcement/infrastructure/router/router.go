package announcementrouter

import (
	"log/slog"

	announcementhandlers "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/announcement/infrastructure/handlers"
	"github.com/go-chi/chi/v5"
)

// AnnouncementRouter mounts the announcement board and gallery routes.
type AnnouncementRouter struct {
	logger *slog.Logger
	mux    chi.Router
}

// NewAnnouncementRouter creates a new AnnouncementRouter on mux.
func NewAnnouncementRouter(logger *slog.Logger, mux chi.Router) *AnnouncementRouter {
	return &AnnouncementRouter{logger: logger, mux: mux}
}

// Configure registers the handlers.
func (r *AnnouncementRouter) Configure(handlers announcementhandlers.Handlers) {
	r.logger.Info("Registering announcement module routes",
		slog.String("prefix", "/api/announcements"),
		slog.String("gallery_prefix", "/api/gallery"),
	)

	r.mux.Route("/api/announcements", func(mux chi.Router) {
		mux.Post("/", handlers.HandleCreateAnnouncement)
		mux.Get("/recent", handlers.HandleGetRecentAnnouncements)
	})

	r.mux.Route("/api/gallery", func(mux chi.Router) {
		mux.Post("/", handlers.HandleCreateGalleryImage)
		mux.Get("/", handlers.HandleListGalleryImages)
	})
}
