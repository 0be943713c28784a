package middleware

import (
	"encoding/json"
	"net/http"
)

// writeError sends the API error envelope. It mirrors handlers.JSONError so
// middleware failures look the same as handler failures.
func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{
		"success": false,
		"error":   map[string]string{"code": code, "message": message},
	})
}
