package userhandlers

import (
	"log/slog"
	"net/http"

	userservice "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/user/application"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/httpx"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/trace"
)

// UserHandlers implements the Handlers interface.
type UserHandlers struct {
	service userservice.Service
	logger  *slog.Logger
	tracer  trace.Tracer
}

// NewUserHandlers creates a new UserHandlers instance.
func NewUserHandlers(
	service userservice.Service,
	logger *slog.Logger,
	tracer trace.Tracer,
) Handlers {
	return &UserHandlers{
		service: service,
		logger:  logger,
		tracer:  tracer,
	}
}

// HandleCreateUser handles POST /api/users.
func (h *UserHandlers) HandleCreateUser(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "UserHandlers.HandleCreateUser")
	defer span.End()
	r = r.WithContext(ctx)

	var req userservice.CreateUserRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	user, err := h.service.CreateUser(ctx, req)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, user)
}

// HandleListUsers handles GET /api/users.
func (h *UserHandlers) HandleListUsers(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "UserHandlers.HandleListUsers")
	defer span.End()
	r = r.WithContext(ctx)

	users, err := h.service.ListUsers(ctx)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, users)
}

// HandleGetUserByDiscordID handles GET /api/users/discord/{discordID}.
func (h *UserHandlers) HandleGetUserByDiscordID(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "UserHandlers.HandleGetUserByDiscordID")
	defer span.End()
	r = r.WithContext(ctx)

	user, err := h.service.GetUserByDiscordID(ctx, chi.URLParam(r, "discordID"))
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, user)
}

// HandleUpdateUser handles PATCH /api/users/{userID}.
func (h *UserHandlers) HandleUpdateUser(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "UserHandlers.HandleUpdateUser")
	defer span.End()
	r = r.WithContext(ctx)

	userID, err := httpx.IDParam(r, "userID")
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	var req userservice.UpdateUserRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	req.ID = userID

	user, err := h.service.UpdateUser(ctx, req)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, user)
}
