package handler

import (
	"encoding/json"
	"net/http"

	"spalatorie/internal/admin/session"
	"spalatorie/internal/settings/repository"
	apperrors "spalatorie/pkg/errors"
	httputil "spalatorie/pkg/http"
	"spalatorie/pkg/logger"
	"spalatorie/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type SettingsHandler struct {
	repo     repository.SettingsRepository
	sessions *session.Manager
	log      *logger.Logger
}

func NewSettingsHandler(repo repository.SettingsRepository, sessions *session.Manager, log *logger.Logger) *SettingsHandler {
	return &SettingsHandler{
		repo:     repo,
		sessions: sessions,
		log:      log,
	}
}

func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	settings, err := h.repo.Get(r.Context())
	if err != nil {
		h.log.Error("Failed to read settings", "error", err)
		if writeErr := httputil.WriteError(w, apperrors.Internal("Failed to retrieve settings", err)); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Get", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, settings); err != nil {
		h.log.Error("failed to write success response", "handler", "Get", "operation", "WriteSuccess", "error", err)
	}
}

// Update merges the posted keys into the app-state document. Admin only.
func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if !h.sessions.IsAdmin(r) {
		if writeErr := httputil.WriteError(w, apperrors.Forbidden("Admin session required")); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Update", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	var updates model.AppSettings
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Update", "operation", "WriteJSON", "error", writeErr)
		}
		return
	}
	if len(updates) == 0 {
		if writeErr := httputil.WriteError(w, apperrors.InvalidInput("No settings provided")); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Update", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := h.repo.Set(r.Context(), updates); err != nil {
		h.log.Error("Failed to update settings", "error", err)
		if writeErr := httputil.WriteError(w, apperrors.Internal("Failed to update settings", err)); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Update", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	h.log.Info("Settings updated", "keys", len(updates))
	httputil.WriteNoContent(w)
}

func (h *SettingsHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/settings", h.Get)
	router.PUT("/api/v1/settings", h.Update)
}
