package userhandlers

import (
	"net/http"

	userservice "github.com/appdotbuilder/dragon-nest-guild-portal/app/modules/user/application"
	"github.com/appdotbuilder/dragon-nest-guild-portal/pkg/httpx"
)

// HandleCreateCharacter handles POST /api/users/{userID}/characters.
func (h *UserHandlers) HandleCreateCharacter(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "UserHandlers.HandleCreateCharacter")
	defer span.End()
	r = r.WithContext(ctx)

	userID, err := httpx.IDParam(r, "userID")
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	var req userservice.CreateCharacterRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	req.UserID = userID

	character, err := h.service.CreateCharacter(ctx, req)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, character)
}

// HandleGetCharactersByUser handles GET /api/users/{userID}/characters.
func (h *UserHandlers) HandleGetCharactersByUser(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "UserHandlers.HandleGetCharactersByUser")
	defer span.End()
	r = r.WithContext(ctx)

	userID, err := httpx.IDParam(r, "userID")
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	characters, err := h.service.GetCharactersByUser(ctx, userID)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, characters)
}

// HandleUpdateCharacter handles PATCH /api/characters/{characterID}.
func (h *UserHandlers) HandleUpdateCharacter(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "UserHandlers.HandleUpdateCharacter")
	defer span.End()
	r = r.WithContext(ctx)

	characterID, err := httpx.IDParam(r, "characterID")
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	var req userservice.UpdateCharacterRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	req.ID = characterID

	character, err := h.service.UpdateCharacter(ctx, req)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, character)
}
