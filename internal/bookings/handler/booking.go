package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"spalatorie/internal/admin/session"
	"spalatorie/internal/bookings/service"
	httputil "spalatorie/pkg/http"
	"spalatorie/pkg/logger"
	"spalatorie/pkg/model"
	"spalatorie/pkg/timeslot"

	"github.com/julienschmidt/httprouter"
)

// Default listing window when the caller gives no range: yesterday through
// seven days ahead.
const (
	defaultRangeBackDays    = -1
	defaultRangeForwardDays = 7
)

type BookingHandler struct {
	service  service.BookingService
	sessions *session.Manager
	log      *logger.Logger
}

type cancelRequest struct {
	Pin string `json:"pin"`
}

func NewBookingHandler(service service.BookingService, sessions *session.Manager, log *logger.Logger) *BookingHandler {
	return &BookingHandler{
		service:  service,
		sessions: sessions,
		log:      log,
	}
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Create", "operation", "WriteJSON", "error", writeErr)
		}
		return
	}

	reservation, err := h.service.Book(r.Context(), &req)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Create", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteCreated(w, reservation); err != nil {
		h.log.Error("failed to write created response", "handler", "Create", "operation", "WriteCreated", "error", err)
	}
}

func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	query := r.URL.Query()

	from := query.Get("from")
	to := query.Get("to")
	if from == "" || to == "" {
		today := time.Now().Format(timeslot.DateLayout)
		var err error
		if from == "" {
			if from, err = timeslot.AddDays(today, defaultRangeBackDays); err != nil {
				from = today
			}
		}
		if to == "" {
			if to, err = timeslot.AddDays(today, defaultRangeForwardDays); err != nil {
				to = today
			}
		}
	}

	reservations, err := h.service.ListRange(r.Context(), from, to)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "List", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, reservations); err != nil {
		h.log.Error("failed to write success response", "handler", "List", "operation", "WriteSuccess", "error", err)
	}
}

func (h *BookingHandler) Cancel(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	var req cancelRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
				Error: "Invalid request body",
			}); writeErr != nil {
				h.log.Error("failed to write JSON response", "handler", "Cancel", "operation", "WriteJSON", "error", writeErr)
			}
			return
		}
	}

	admin := h.sessions.IsAdmin(r)
	if err := h.service.Cancel(r.Context(), id, req.Pin, admin); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Cancel", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	httputil.WriteNoContent(w)
}

func (h *BookingHandler) Slots(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := httputil.WriteSuccess(w, h.service.Slots()); err != nil {
		h.log.Error("failed to write success response", "handler", "Slots", "operation", "WriteSuccess", "error", err)
	}
}

func (h *BookingHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/v1/bookings", h.Create)
	router.GET("/api/v1/bookings", h.List)
	router.POST("/api/v1/bookings/id/:id/cancel", h.Cancel)
	router.GET("/api/v1/slots", h.Slots)
}
