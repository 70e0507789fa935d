// internal/adapters/in/http/handlers/health_handler.go
package handlers

import (
	"context"
	"net/http"
)

// Pinger is what the health endpoint needs from the database layer.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db Pinger
}

func NewHealthHandler(db Pinger) http.Handler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	status := "ok"
	dbStatus := "up"
	code := http.StatusOK
	if h.db == nil {
		dbStatus = "unconfigured"
	} else if err := h.db.Ping(r.Context()); err != nil {
		status = "error"
		dbStatus = "down"
		code = http.StatusServiceUnavailable
	}

	writeJSON(w, code, map[string]any{
		"status":   status,
		"database": dbStatus,
	})
}
