// Package http provides the JSON response helpers shared by all handlers.
package http

import (
	"encoding/json"
	"net/http"

	apperrors "spalatorie/pkg/errors"
)

type ErrorResponse struct {
	Error   string         `json:"error"`
	Details map[string]any `json:"details,omitempty"`
}

type SuccessResponse struct {
	Data any `json:"data,omitempty"`
}

func WriteJSON(w http.ResponseWriter, statusCode int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(data)
}

// WriteError maps an error to its HTTP status via the AppError it carries.
// Classified errors surface their message to the caller, internal ones
// included, so a failed transaction reports what aborted it. Only errors no
// layer classified become an opaque 500.
func WriteError(w http.ResponseWriter, err error) error {
	switch e := err.(type) {
	case *apperrors.AppError:
		resp := ErrorResponse{
			Error:   e.Message,
			Details: e.Details,
		}
		if e.Code == apperrors.CodeInternal && e.Err != nil {
			details := make(map[string]any, len(resp.Details)+1)
			for k, v := range resp.Details {
				details[k] = v
			}
			details["cause"] = e.Err.Error()
			resp.Details = details
		}
		return WriteJSON(w, e.StatusCode(), resp)
	default:
		return WriteJSON(w, http.StatusInternalServerError, ErrorResponse{
			Error: "Internal server error",
		})
	}
}

func WriteSuccess(w http.ResponseWriter, data any) error {
	return WriteJSON(w, http.StatusOK, SuccessResponse{Data: data})
}

func WriteCreated(w http.ResponseWriter, data any) error {
	return WriteJSON(w, http.StatusCreated, SuccessResponse{Data: data})
}

func WriteNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}
