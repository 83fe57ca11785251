package guidehandlers

import (
	"log/slog"
	"net/http"

	guideservice "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/guide/application"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/attr"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/eventbus"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/httpx"
	"go.opentelemetry.io/otel/trace"
)

// GuideHandlers implements the Handlers interface.
type GuideHandlers struct {
	service guideservice.Service
	bus     eventbus.EventBus
	logger  *slog.Logger
	tracer  trace.Tracer
}

// NewGuideHandlers creates a new GuideHandlers instance.
func NewGuideHandlers(
	service guideservice.Service,
	bus eventbus.EventBus,
	logger *slog.Logger,
	tracer trace.Tracer,
) Handlers {
	return &GuideHandlers{
		service: service,
		bus:     bus,
		logger:  logger,
		tracer:  tracer,
	}
}

// HandleCreateGuide handles POST /api/guides.
func (h *GuideHandlers) HandleCreateGuide(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "GuideHandlers.HandleCreateGuide")
	defer span.End()
	r = r.WithContext(ctx)

	var req guideservice.CreateGuideRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	guide, err := h.service.CreateGuide(ctx, req)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, guide)
}

// HandleListApprovedGuides handles GET /api/guides.
func (h *GuideHandlers) HandleListApprovedGuides(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "GuideHandlers.HandleListApprovedGuides")
	defer span.End()
	r = r.WithContext(ctx)

	guides, err := h.service.ListApprovedGuides(ctx)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, guides)
}

// HandleListPendingGuides handles GET /api/guides/pending.
func (h *GuideHandlers) HandleListPendingGuides(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "GuideHandlers.HandleListPendingGuides")
	defer span.End()
	r = r.WithContext(ctx)

	guides, err := h.service.ListPendingGuides(ctx)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, guides)
}

// HandleReviewGuide handles POST /api/guides/{guideID}/review.
func (h *GuideHandlers) HandleReviewGuide(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "GuideHandlers.HandleReviewGuide")
	defer span.End()
	r = r.WithContext(ctx)

	guideID, err := httpx.IDParam(r, "guideID")
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	var req guideservice.ReviewGuideRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	guide, err := h.service.ReviewGuide(ctx, guideID, req)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	event := eventbus.GuideReviewed{
		GuideID:    guide.ID,
		CreatedBy:  guide.CreatedBy,
		Status:     string(guide.Status),
		ApprovedBy: req.ApprovedBy,
	}
	if err := eventbus.PublishScoped(ctx, h.bus, eventbus.GuideReviewedTopic, guide.ID, event); err != nil {
		h.logger.WarnContext(ctx, "Failed to publish guide review event",
			attr.ExtractCorrelationID(ctx),
			attr.Int64("guide_id", guide.ID),
			attr.Error(err),
		)
	}

	httpx.WriteJSON(w, http.StatusOK, guide)
}
