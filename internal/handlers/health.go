package handlers

import (
	"net/http"
	"time"
)

// APIVersion отдаётся в /api/health.
const APIVersion = "1.0.0"

func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"message":   "Lumme API is running",
		"version":   APIVersion,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
