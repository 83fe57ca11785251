package teamhandlers

import (
	"log/slog"
	"net/http"

	teamservice "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/team/application"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/attr"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/eventbus"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/httpx"
	"go.opentelemetry.io/otel/trace"
)

// TeamHandlers implements the Handlers interface.
type TeamHandlers struct {
	service teamservice.Service
	bus     eventbus.EventBus
	logger  *slog.Logger
	tracer  trace.Tracer
}

// NewTeamHandlers creates a new TeamHandlers instance.
func NewTeamHandlers(
	service teamservice.Service,
	bus eventbus.EventBus,
	logger *slog.Logger,
	tracer trace.Tracer,
) Handlers {
	return &TeamHandlers{
		service: service,
		bus:     bus,
		logger:  logger,
		tracer:  tracer,
	}
}

// HandleCreateTeam handles POST /api/teams.
func (h *TeamHandlers) HandleCreateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "TeamHandlers.HandleCreateTeam")
	defer span.End()
	r = r.WithContext(ctx)

	var req teamservice.CreateTeamRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	team, err := h.service.CreateTeam(ctx, req)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, team)
}

// HandleListTeams handles GET /api/teams.
func (h *TeamHandlers) HandleListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "TeamHandlers.HandleListTeams")
	defer span.End()
	r = r.WithContext(ctx)

	teams, err := h.service.ListTeams(ctx)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, teams)
}

// HandleGetTeamMembers handles GET /api/teams/{teamID}/members.
func (h *TeamHandlers) HandleGetTeamMembers(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "TeamHandlers.HandleGetTeamMembers")
	defer span.End()
	r = r.WithContext(ctx)

	teamID, err := httpx.IDParam(r, "teamID")
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	members, err := h.service.GetTeamMembers(ctx, teamID)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, members)
}

// HandleJoinTeam handles POST /api/teams/{teamID}/members.
func (h *TeamHandlers) HandleJoinTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "TeamHandlers.HandleJoinTeam")
	defer span.End()
	r = r.WithContext(ctx)

	teamID, err := httpx.IDParam(r, "teamID")
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	var req teamservice.JoinTeamRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	member, err := h.service.JoinTeam(ctx, teamID, req.UserID)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	event := eventbus.TeamMemberJoined{
		MembershipID: member.ID,
		TeamID:       member.TeamID,
		UserID:       member.UserID,
	}
	if err := eventbus.PublishScoped(ctx, h.bus, eventbus.TeamMemberJoinedTopic, member.TeamID, event); err != nil {
		h.logger.WarnContext(ctx, "Failed to publish team join event",
			attr.ExtractCorrelationID(ctx),
			attr.Int64("team_id", member.TeamID),
			attr.Error(err),
		)
	}

	httpx.WriteJSON(w, http.StatusCreated, member)
}
