package handlers

import (
	"context"
	"net/http"
	"time"
)

// Version is reported by the info endpoint; set at build time with -ldflags.
var Version = "dev"

// Pinger is satisfied by the service and by *sql.DB.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	DB Pinger
}

// Health answers liveness checks without touching the database.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// Ready answers readiness checks: 200 when the database responds within two seconds.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()
	if err := h.DB.Ping(ctx); err != nil {
		JSONError(w, http.StatusServiceUnavailable, CodeUnavailable, "Database not ready", nil)
		return
	}
	JSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

var endpoints = []string{
	"GET /health",
	"GET /ready",
	"GET /metrics",
	"GET|POST /companies",
	"GET|PATCH|DELETE /companies/{id}",
	"GET|POST /companies/{id}/users",
	"DELETE /companies/{id}/users/{userID}",
	"GET|POST /users",
	"GET|PATCH|DELETE /users/{id}",
	"GET /users/{id}/companies",
	"GET /users/{id}/audit-logs",
	"GET|POST /assets",
	"GET|PATCH|DELETE /assets/{id}",
	"GET /audit-logs",
}

// Info describes the API at the root path.
func (h *HealthHandler) Info(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, map[string]any{
		"name":      "hci-inventory",
		"version":   Version,
		"endpoints": endpoints,
	})
}
