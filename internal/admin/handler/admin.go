package handler

import (
	"encoding/json"
	"net/http"

	"spalatorie/internal/admin/session"
	"spalatorie/pkg/config"
	apperrors "spalatorie/pkg/errors"
	httputil "spalatorie/pkg/http"
	"spalatorie/pkg/logger"
	"spalatorie/pkg/pin"

	"github.com/julienschmidt/httprouter"
)

type AdminHandler struct {
	sessions *session.Manager
	cfg      *config.Config
	log      *logger.Logger
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionResponse struct {
	IsAdmin bool `json:"is_admin"`
}

func NewAdminHandler(sessions *session.Manager, cfg *config.Config, log *logger.Logger) *AdminHandler {
	return &AdminHandler{
		sessions: sessions,
		cfg:      cfg,
		log:      log,
	}
}

// Login checks credentials against the configured admin email and password
// hash. Wrong email and wrong password produce the same response.
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Login", "operation", "WriteJSON", "error", writeErr)
		}
		return
	}

	if req.Email != h.cfg.AdminEmail || !pin.Verify(req.Password, h.cfg.AdminPasswordHash) {
		h.log.Warn("Admin login rejected", "email", req.Email)
		if writeErr := httputil.WriteError(w, apperrors.Unauthorized("Invalid credentials")); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Login", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	token, err := h.sessions.Issue(req.Email)
	if err != nil {
		h.log.Error("Failed to issue admin session", "error", err)
		if writeErr := httputil.WriteError(w, apperrors.Internal("Failed to create session", err)); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Login", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	h.sessions.SetCookie(w, token)
	h.log.Info("Admin logged in", "email", req.Email)
	if err := httputil.WriteSuccess(w, sessionResponse{IsAdmin: true}); err != nil {
		h.log.Error("failed to write success response", "handler", "Login", "operation", "WriteSuccess", "error", err)
	}
}

func (h *AdminHandler) Logout(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.sessions.ClearCookie(w)
	httputil.WriteNoContent(w)
}

func (h *AdminHandler) Session(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := httputil.WriteJSON(w, http.StatusOK, sessionResponse{
		IsAdmin: h.sessions.IsAdmin(r),
	}); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Session", "operation", "WriteJSON", "error", err)
	}
}

func (h *AdminHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/v1/admin/login", h.Login)
	router.POST("/api/v1/admin/logout", h.Logout)
	router.GET("/api/v1/admin/session", h.Session)
}
