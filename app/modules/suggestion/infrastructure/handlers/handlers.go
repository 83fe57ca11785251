package suggestionhandlers

import (
	"log/slog"
	"net/http"
	"strconv"

	suggestionservice "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/suggestion/application"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/attr"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/domainerr"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/eventbus"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/httpx"
	"go.opentelemetry.io/otel/trace"
)

// SuggestionHandlers implements the Handlers interface.
type SuggestionHandlers struct {
	service suggestionservice.Service
	bus     eventbus.EventBus
	logger  *slog.Logger
	tracer  trace.Tracer
}

// NewSuggestionHandlers creates a new SuggestionHandlers instance.
func NewSuggestionHandlers(
	service suggestionservice.Service,
	bus eventbus.EventBus,
	logger *slog.Logger,
	tracer trace.Tracer,
) Handlers {
	return &SuggestionHandlers{
		service: service,
		bus:     bus,
		logger:  logger,
		tracer:  tracer,
	}
}

// HandleCreateSuggestion handles POST /api/suggestions.
func (h *SuggestionHandlers) HandleCreateSuggestion(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "SuggestionHandlers.HandleCreateSuggestion")
	defer span.End()
	r = r.WithContext(ctx)

	var req suggestionservice.CreateSuggestionRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	suggestion, err := h.service.CreateSuggestion(ctx, req)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, suggestion)
}

// HandleListSuggestions handles GET /api/suggestions.
func (h *SuggestionHandlers) HandleListSuggestions(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "SuggestionHandlers.HandleListSuggestions")
	defer span.End()
	r = r.WithContext(ctx)

	suggestions, err := h.service.ListSuggestions(ctx)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, suggestions)
}

// HandleUpdateSuggestionStatus handles PATCH /api/suggestions/{suggestionID}/status.
func (h *SuggestionHandlers) HandleUpdateSuggestionStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "SuggestionHandlers.HandleUpdateSuggestionStatus")
	defer span.End()
	r = r.WithContext(ctx)

	suggestionID, err := httpx.IDParam(r, "suggestionID")
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	var req suggestionservice.UpdateStatusRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	suggestion, err := h.service.UpdateSuggestionStatus(ctx, suggestionID, req.Status)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, suggestion)
}

// HandleCastVote handles POST /api/suggestions/{suggestionID}/votes.
func (h *SuggestionHandlers) HandleCastVote(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "SuggestionHandlers.HandleCastVote")
	defer span.End()
	r = r.WithContext(ctx)

	suggestionID, err := httpx.IDParam(r, "suggestionID")
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	var req suggestionservice.CastVoteRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	vote, err := h.service.CastVote(ctx, suggestionID, req.UserID, req.VoteType)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	event := eventbus.VoteCast{
		VoteID:       vote.ID,
		SuggestionID: vote.SuggestionID,
		UserID:       vote.UserID,
		VoteType:     string(vote.VoteType),
	}
	if err := eventbus.PublishScoped(ctx, h.bus, eventbus.VoteCastTopic, vote.SuggestionID, event); err != nil {
		// The vote is committed; a lost notification is not worth failing the request.
		h.logger.WarnContext(ctx, "Failed to publish vote event",
			attr.ExtractCorrelationID(ctx),
			attr.Int64("suggestion_id", vote.SuggestionID),
			attr.Error(err),
		)
	}

	httpx.WriteJSON(w, http.StatusOK, vote)
}

// HandleVoteChart handles GET /api/suggestions/chart.png?limit=N.
func (h *SuggestionHandlers) HandleVoteChart(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "SuggestionHandlers.HandleVoteChart")
	defer span.End()
	r = r.WithContext(ctx)

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			httpx.WriteError(w, r, h.logger, domainerr.Invalid("limit must be an integer"))
			return
		}
		limit = parsed
	}

	png, err := h.service.RenderVoteChart(ctx, limit)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	httpx.WriteFile(w, "image/png", "", png)
}
