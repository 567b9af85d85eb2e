package http_handlers

import (
	"database/sql"
	"net/http"

	"github.com/unifiedcommerce/shop-service/internal/transport/http/response"
)

type healthStatus struct {
	Status  string `json:"status"`
	Backend string `json:"backend,omitempty"`
}

type HealthHandler struct {
	db      *sql.DB
	backend string
}

// NewHealthHandler accepts a nil db when the flat-file backend is active;
// readiness then reduces to liveness.
func NewHealthHandler(db *sql.DB, backend string) *HealthHandler {
	return &HealthHandler{db: db, backend: backend}
}

// Healthz handles GET /healthz
func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	response.OK(w, healthStatus{Status: "ok"})
}

// Readyz handles GET /readyz
func (h *HealthHandler) Readyz(w http.ResponseWriter, r *http.Request) {
	if h.db != nil {
		if err := h.db.PingContext(r.Context()); err != nil {
			response.WriteJSON(w, http.StatusServiceUnavailable, healthStatus{
				Status:  "unavailable",
				Backend: h.backend,
			})
			return
		}
	}
	response.OK(w, healthStatus{Status: "ready", Backend: h.backend})
}
