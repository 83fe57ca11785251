package announcementhandlers

import (
	"log/slog"
	"net/http"

	announcementservice "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/announcement/application"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/attr"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/eventbus"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/httpx"
	"go.opentelemetry.io/otel/trace"
)

// AnnouncementHandlers implements the Handlers interface.
type AnnouncementHandlers struct {
	service announcementservice.Service
	bus     eventbus.EventBus
	logger  *slog.Logger
	tracer  trace.Tracer
}

// NewAnnouncementHandlers creates a new AnnouncementHandlers instance.
func NewAnnouncementHandlers(
	service announcementservice.Service,
	bus eventbus.EventBus,
	logger *slog.Logger,
	tracer trace.Tracer,
) Handlers {
	return &AnnouncementHandlers{
		service: service,
		bus:     bus,
		logger:  logger,
		tracer:  tracer,
	}
}

// HandleCreateAnnouncement handles POST /api/announcements.
func (h *AnnouncementHandlers) HandleCreateAnnouncement(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "AnnouncementHandlers.HandleCreateAnnouncement")
	defer span.End()
	r = r.WithContext(ctx)

	var req announcementservice.CreateAnnouncementRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	announcement, err := h.service.CreateAnnouncement(ctx, req)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	event := eventbus.AnnouncementCreated{
		AnnouncementID: announcement.ID,
		Title:          announcement.Title,
		CreatedBy:      announcement.CreatedBy,
	}
	if err := h.bus.Publish(ctx, eventbus.AnnouncementCreatedTopic, event); err != nil {
		h.logger.WarnContext(ctx, "Failed to publish announcement event",
			attr.ExtractCorrelationID(ctx),
			attr.Int64("announcement_id", announcement.ID),
			attr.Error(err),
		)
	}

	httpx.WriteJSON(w, http.StatusCreated, announcement)
}

// HandleGetRecentAnnouncements handles GET /api/announcements/recent.
func (h *AnnouncementHandlers) HandleGetRecentAnnouncements(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "AnnouncementHandlers.HandleGetRecentAnnouncements")
	defer span.End()
	r = r.WithContext(ctx)

	announcements, err := h.service.GetRecentAnnouncements(ctx)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, announcements)
}

// HandleCreateGalleryImage handles POST /api/gallery.
func (h *AnnouncementHandlers) HandleCreateGalleryImage(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "AnnouncementHandlers.HandleCreateGalleryImage")
	defer span.End()
	r = r.WithContext(ctx)

	var req announcementservice.CreateGalleryImageRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	image, err := h.service.CreateGalleryImage(ctx, req)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, image)
}

// HandleListGalleryImages handles GET /api/gallery?page=&limit=.
func (h *AnnouncementHandlers) HandleListGalleryImages(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "AnnouncementHandlers.HandleListGalleryImages")
	defer span.End()
	r = r.WithContext(ctx)

	page, err := httpx.QueryInt(r, "page", 1)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	limit, err := httpx.QueryInt(r, "limit", announcementservice.DefaultPageLimit)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	images, err := h.service.ListGalleryImages(ctx, announcementservice.Page{Page: page, Limit: limit})
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, images)
}
