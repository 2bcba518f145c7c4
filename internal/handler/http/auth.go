package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-recipe-keeper/internal/app"
	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/internal/utils"
	"github.com/MKhiriev/go-recipe-keeper/models"
)

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg(app.MsgInvalidJSON)
		utils.WriteErrors(w, http.StatusBadRequest, app.MsgInvalidJSON)
		return
	}

	result, err := h.services.AuthService.Register(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.setSessionCookie(w, result.Session)
	utils.WriteJSON(w, result.Profile, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg(app.MsgInvalidJSON)
		utils.WriteErrors(w, http.StatusBadRequest, app.MsgInvalidJSON)
		return
	}

	result, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("id", result.Profile.ID).Msg("user successfully logged in")

	h.setSessionCookie(w, result.Session)
	utils.WriteJSON(w, result.Profile, http.StatusOK)
}

func (h *Handler) checkSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionID, _ := utils.GetSessionIDFromContext(ctx)

	profile, err := h.services.AuthService.CheckSession(ctx, sessionID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, profile, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionID, _ := utils.GetSessionIDFromContext(ctx)

	if err := h.services.AuthService.Logout(ctx, sessionID); err != nil {
		writeError(w, r, err)
		return
	}

	h.clearSessionCookie(w)
	w.WriteHeader(http.StatusNoContent)
}
