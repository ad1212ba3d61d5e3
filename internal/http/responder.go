package http

import (
	"encoding/json"
	"net/http"

	"cricket-data-service/internal/logging"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		if logger := logging.FromContext(r.Context(), nil); logger != nil {
			logger.Error("failed to encode response", "error", err)
		}
	}
}

// writeError emits the uniform {"error": ..., "requestId": ...} shape.
func writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	body := map[string]string{"error": message}
	if id := RequestIDFromContext(r.Context()); id != "" {
		body["requestId"] = id
	}
	writeJSON(w, r, status, body)
}
