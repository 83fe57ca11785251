package recruitmenthandlers

import (
	"log/slog"
	"net/http"

	recruitmentservice "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/recruitment/application"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/attr"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/eventbus"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/httpx"
	"go.opentelemetry.io/otel/trace"
)

// RecruitmentHandlers implements the Handlers interface.
type RecruitmentHandlers struct {
	service recruitmentservice.Service
	bus     eventbus.EventBus
	logger  *slog.Logger
	tracer  trace.Tracer
}

// NewRecruitmentHandlers creates a new RecruitmentHandlers instance.
func NewRecruitmentHandlers(
	service recruitmentservice.Service,
	bus eventbus.EventBus,
	logger *slog.Logger,
	tracer trace.Tracer,
) Handlers {
	return &RecruitmentHandlers{
		service: service,
		bus:     bus,
		logger:  logger,
		tracer:  tracer,
	}
}

// HandleCreateApplication handles POST /api/recruitment/applications.
func (h *RecruitmentHandlers) HandleCreateApplication(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "RecruitmentHandlers.HandleCreateApplication")
	defer span.End()
	r = r.WithContext(ctx)

	var req recruitmentservice.CreateApplicationRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	application, err := h.service.CreateApplication(ctx, req)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, application)
}

// HandleListPendingApplications handles GET /api/recruitment/applications/pending.
func (h *RecruitmentHandlers) HandleListPendingApplications(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "RecruitmentHandlers.HandleListPendingApplications")
	defer span.End()
	r = r.WithContext(ctx)

	applications, err := h.service.ListPendingApplications(ctx)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, applications)
}

// HandleReviewApplication handles POST /api/recruitment/applications/{applicationID}/review.
func (h *RecruitmentHandlers) HandleReviewApplication(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "RecruitmentHandlers.HandleReviewApplication")
	defer span.End()
	r = r.WithContext(ctx)

	applicationID, err := httpx.IDParam(r, "applicationID")
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	var req recruitmentservice.ReviewApplicationRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	application, err := h.service.ReviewApplication(ctx, applicationID, req)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	event := eventbus.RecruitmentReviewed{
		ApplicationID: application.ID,
		UserID:        application.UserID,
		Status:        string(application.Status),
		ReviewedBy:    req.ReviewedBy,
	}
	if err := eventbus.PublishScoped(ctx, h.bus, eventbus.RecruitmentReviewedTopic, application.ID, event); err != nil {
		h.logger.WarnContext(ctx, "Failed to publish recruitment review event",
			attr.ExtractCorrelationID(ctx),
			attr.Int64("application_id", application.ID),
			attr.Error(err),
		)
	}

	httpx.WriteJSON(w, http.StatusOK, application)
}
