package handlers

import (
	"encoding/json"
	"net/http"
	"time"
)

// HealthHandler reports liveness
type HealthHandler struct {
	started time.Time
	demo    bool
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(demo bool) *HealthHandler {
	return &HealthHandler{started: time.Now(), demo: demo}
}

// Health answers with the process status as JSON
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":         "ok",
		"service":        "nikofree-web",
		"demo":           h.demo,
		"uptime_seconds": int(time.Since(h.started).Seconds()),
	})
}
