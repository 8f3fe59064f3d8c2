package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "spalatorie/pkg/errors"
)

func decodeErrorResponse(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	return resp
}

func TestWriteError_SurfacesInternalMessageAndCause(t *testing.T) {
	w := httptest.NewRecorder()
	appErr := apperrors.Internal("Failed to create reservation", errors.New("write conflict at commit"))

	if err := WriteError(w, appErr); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", w.Code)
	}
	resp := decodeErrorResponse(t, w)
	if resp.Error != "Failed to create reservation" {
		t.Errorf("expected classification message, got %q", resp.Error)
	}
	if resp.Details["cause"] != "write conflict at commit" {
		t.Errorf("expected triggering cause in details, got %v", resp.Details["cause"])
	}
}

func TestWriteError_InternalCauseDoesNotMutateDetails(t *testing.T) {
	appErr := apperrors.Internal("Failed to commit", errors.New("timeout")).
		WithDetails(map[string]any{"slot": "2024-01-10_masina1_09:00"})

	w := httptest.NewRecorder()
	if err := WriteError(w, appErr); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	resp := decodeErrorResponse(t, w)
	if resp.Details["slot"] != "2024-01-10_masina1_09:00" {
		t.Errorf("expected original detail preserved, got %v", resp.Details["slot"])
	}
	if resp.Details["cause"] != "timeout" {
		t.Errorf("expected cause detail, got %v", resp.Details["cause"])
	}
	if _, ok := appErr.Details["cause"]; ok {
		t.Error("writing the response must not modify the error's own details")
	}
}

func TestWriteError_MasksUnclassifiedErrors(t *testing.T) {
	w := httptest.NewRecorder()

	if err := WriteError(w, errors.New("pq: connection reset")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", w.Code)
	}
	resp := decodeErrorResponse(t, w)
	if resp.Error != "Internal server error" {
		t.Errorf("expected opaque message for unclassified error, got %q", resp.Error)
	}
	if len(resp.Details) != 0 {
		t.Errorf("expected no details for unclassified error, got %v", resp.Details)
	}
}

func TestWriteError_ClassifiedStatusAndDetails(t *testing.T) {
	w := httptest.NewRecorder()
	appErr := apperrors.NotFoundWithID("Reservation", "65f1b2")

	if err := WriteError(w, appErr); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", w.Code)
	}
	resp := decodeErrorResponse(t, w)
	if resp.Error != "Reservation not found" {
		t.Errorf("expected message passthrough, got %q", resp.Error)
	}
	if resp.Details["id"] != "65f1b2" {
		t.Errorf("expected id detail, got %v", resp.Details["id"])
	}
}
