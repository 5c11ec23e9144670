package handler

import (
	"net/http"

	"github.com/msomdec/youth-portal/internal/flow"
	"github.com/msomdec/youth-portal/internal/session"
)

// HealthHandler reports liveness and how many clients are held in memory.
type HealthHandler struct {
	sessions *session.Registry
	flows    *flow.Registry
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(sessions *session.Registry, flows *flow.Registry) *HealthHandler {
	return &HealthHandler{sessions: sessions, flows: flows}
}

// HandleHealthz responds with a 200 OK and a JSON body indicating the server is healthy.
func (h *HealthHandler) HandleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":   "ok",
		"sessions": h.sessions.Len(),
		"flows":    h.flows.Len(),
	})
}
