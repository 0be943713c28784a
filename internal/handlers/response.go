package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/crucial707/hci-inventory/internal/apperr"
)

// ErrMessageInternal is the generic message for 500 responses. Do not expose internal details to clients.
const ErrMessageInternal = "Internal server error"

// Error codes carried in the error envelope.
const (
	CodeValidation       = "VALIDATION_ERROR"
	CodeBadRequest       = "BAD_REQUEST"
	CodeConflict         = "CONFLICT"
	CodeNotFound         = "NOT_FOUND"
	CodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	CodePayloadTooLarge  = "PAYLOAD_TOO_LARGE"
	CodeUnavailable      = "UNAVAILABLE"
	CodeInternal         = "INTERNAL_ERROR"
)

// Envelope is the body of every JSON response.
type Envelope struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Meta    any        `json:"meta,omitempty"`
	Error   *ErrorBody `json:"error,omitempty"`
}

type ErrorBody struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Details map[string][]string `json:"details,omitempty"`
}

type messageBody struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// JSON sends a success envelope.
func JSON(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, Envelope{Success: true, Data: data})
}

// JSONList sends a success envelope with pagination meta.
func JSONList(w http.ResponseWriter, data, meta any) {
	writeJSON(w, http.StatusOK, Envelope{Success: true, Data: data, Meta: meta})
}

// JSONError sends an error envelope.
func JSONError(w http.ResponseWriter, status int, code, message string, details map[string][]string) {
	writeJSON(w, status, Envelope{Error: &ErrorBody{Code: code, Message: message, Details: details}})
}

// WriteError maps err onto a status code and error envelope. Store and
// internal failures are logged and answered with a generic message.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	var ae *apperr.Error
	if !errors.As(err, &ae) {
		slog.Error("request failed", "request_id", chimw.GetReqID(r.Context()), "path", r.URL.Path, "error", err)
		JSONError(w, http.StatusInternalServerError, CodeInternal, ErrMessageInternal, nil)
		return
	}
	switch ae.Kind {
	case apperr.KindValidation:
		JSONError(w, http.StatusBadRequest, CodeValidation, "Validation failed", ae.Details())
	case apperr.KindNotFound:
		JSONError(w, http.StatusNotFound, CodeNotFound, ae.Message, nil)
	case apperr.KindConflict:
		JSONError(w, http.StatusBadRequest, CodeConflict, ae.Message, nil)
	case apperr.KindUnavailable:
		slog.Error("store unavailable", "request_id", chimw.GetReqID(r.Context()), "path", r.URL.Path, "error", ae.Err)
		JSONError(w, http.StatusServiceUnavailable, CodeUnavailable, "Service temporarily unavailable", nil)
	default:
		slog.Error("request failed", "request_id", chimw.GetReqID(r.Context()), "path", r.URL.Path, "error", err)
		JSONError(w, http.StatusInternalServerError, CodeInternal, ErrMessageInternal, nil)
	}
}

// decode reads a JSON body into dst. Unknown fields are ignored. On failure
// it writes the error response and returns false.
func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil {
		return true
	}
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		JSONError(w, http.StatusRequestEntityTooLarge, CodePayloadTooLarge, "Request body too large", nil)
		return false
	}
	JSONError(w, http.StatusBadRequest, CodeBadRequest, "Invalid JSON body", nil)
	return false
}

// NotFound answers unmatched routes.
func NotFound(w http.ResponseWriter, r *http.Request) {
	JSONError(w, http.StatusNotFound, CodeNotFound, "Route not found", nil)
}

// MethodNotAllowed answers a known route hit with the wrong method.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	JSONError(w, http.StatusMethodNotAllowed, CodeMethodNotAllowed, "Method not allowed", nil)
}
