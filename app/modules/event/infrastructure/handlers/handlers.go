package eventhandlers

import (
	"fmt"
	"log/slog"
	"net/http"

	eventservice "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/event/application"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/attr"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/eventbus"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/httpx"
	"go.opentelemetry.io/otel/trace"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// EventHandlers implements the Handlers interface.
type EventHandlers struct {
	service eventservice.Service
	bus     eventbus.EventBus
	logger  *slog.Logger
	tracer  trace.Tracer
}

// NewEventHandlers creates a new EventHandlers instance.
func NewEventHandlers(
	service eventservice.Service,
	bus eventbus.EventBus,
	logger *slog.Logger,
	tracer trace.Tracer,
) Handlers {
	return &EventHandlers{
		service: service,
		bus:     bus,
		logger:  logger,
		tracer:  tracer,
	}
}

// HandleCreateEvent handles POST /api/events.
func (h *EventHandlers) HandleCreateEvent(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "EventHandlers.HandleCreateEvent")
	defer span.End()
	r = r.WithContext(ctx)

	var req eventservice.CreateEventRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	event, err := h.service.CreateEvent(ctx, req)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, event)
}

// HandleGetUpcomingEvents handles GET /api/events/upcoming.
func (h *EventHandlers) HandleGetUpcomingEvents(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "EventHandlers.HandleGetUpcomingEvents")
	defer span.End()
	r = r.WithContext(ctx)

	events, err := h.service.GetUpcomingEvents(ctx)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, events)
}

// HandleGetEventRegistrations handles GET /api/events/{eventID}/registrations.
func (h *EventHandlers) HandleGetEventRegistrations(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "EventHandlers.HandleGetEventRegistrations")
	defer span.End()
	r = r.WithContext(ctx)

	eventID, err := httpx.IDParam(r, "eventID")
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	registrations, err := h.service.GetEventRegistrations(ctx, eventID)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, registrations)
}

// HandleRegisterForEvent handles POST /api/events/{eventID}/registrations.
func (h *EventHandlers) HandleRegisterForEvent(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "EventHandlers.HandleRegisterForEvent")
	defer span.End()
	r = r.WithContext(ctx)

	eventID, err := httpx.IDParam(r, "eventID")
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	var req eventservice.RegisterRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	registration, err := h.service.RegisterForEvent(ctx, eventID, req)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	payload := eventbus.EventRegistered{
		RegistrationID: registration.ID,
		EventID:        registration.EventID,
		UserID:         registration.UserID,
		CharacterID:    registration.CharacterID,
	}
	if err := eventbus.PublishScoped(ctx, h.bus, eventbus.EventRegistrationTopic, registration.EventID, payload); err != nil {
		h.logger.WarnContext(ctx, "Failed to publish event registration",
			attr.ExtractCorrelationID(ctx),
			attr.Int64("event_id", registration.EventID),
			attr.Error(err),
		)
	}

	httpx.WriteJSON(w, http.StatusCreated, registration)
}

// HandleExportRoster handles GET /api/events/{eventID}/roster.xlsx.
func (h *EventHandlers) HandleExportRoster(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "EventHandlers.HandleExportRoster")
	defer span.End()
	r = r.WithContext(ctx)

	eventID, err := httpx.IDParam(r, "eventID")
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	data, err := h.service.ExportRoster(ctx, eventID)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	httpx.WriteFile(w, xlsxContentType, fmt.Sprintf("event-%d-roster.xlsx", eventID), data)
}
