package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"equipment-rental-backend/internal/logger"
	"equipment-rental-backend/internal/service"
)

// Error codes carried in ErrorResponse.Error
const (
	ErrCodeNotFound             = "not_found"
	ErrCodeBadRequest           = "bad_request"
	ErrCodeValidation           = "validation_error"
	ErrCodeDateConflict         = "date_conflict"
	ErrCodeEquipmentUnavailable = "equipment_unavailable"
	ErrCodeUnauthorized         = "unauthorized"
	ErrCodeInconsistentState    = "inconsistent_state"
	ErrCodeInternal             = "internal_error"
)

// ErrorResponse represents a standardized API error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

// WriteError writes a JSON error response with the given status code.
func WriteError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{Error: code, Message: message})
}

// WriteErrorWithDetails writes a JSON error response with additional details.
func WriteErrorWithDetails(w http.ResponseWriter, status int, code, message string, details any) {
	writeJSON(w, status, ErrorResponse{Error: code, Message: message, Details: details})
}

// handleServiceError maps service errors onto HTTP responses.
func handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *service.ValidationError

	switch {
	case errors.Is(err, service.ErrInconsistentState):
		logger.ErrorContext(r.Context(), "Request left data partially updated", "error", err)
		WriteError(w, http.StatusInternalServerError, ErrCodeInconsistentState, err.Error())
	case errors.As(err, &verr):
		WriteErrorWithDetails(w, http.StatusBadRequest, ErrCodeValidation, verr.Error(), map[string]string{"field": verr.Field})
	case errors.Is(err, service.ErrValidation):
		WriteError(w, http.StatusBadRequest, ErrCodeValidation, err.Error())
	case errors.Is(err, service.ErrDateConflict):
		WriteError(w, http.StatusConflict, ErrCodeDateConflict, err.Error())
	case errors.Is(err, service.ErrEquipmentUnavailable):
		WriteError(w, http.StatusConflict, ErrCodeEquipmentUnavailable, err.Error())
	case errors.Is(err, service.ErrNotFound):
		WriteError(w, http.StatusNotFound, ErrCodeNotFound, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials), errors.Is(err, service.ErrUnauthorized):
		WriteError(w, http.StatusUnauthorized, ErrCodeUnauthorized, err.Error())
	default:
		logger.ErrorContext(r.Context(), "Request failed", "error", err, "path", r.URL.Path)
		WriteError(w, http.StatusInternalServerError, ErrCodeInternal, "An unexpected error occurred")
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20))
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
