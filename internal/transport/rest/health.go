package rest

import (
	"context"
	"net/http"
	"time"
)

const pingTimeout = 3 * time.Second

type dbPinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves the liveness, readiness, and full health probes.
type HealthHandler struct {
	db      dbPinger
	version string
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(db dbPinger, version string) *HealthHandler {
	return &HealthHandler{db: db, version: version}
}

// HealthResponse is the JSON body of all three probes.
type HealthResponse struct {
	Status     string                     `json:"status"`
	Version    string                     `json:"version,omitempty"`
	Components map[string]ComponentStatus `json:"components,omitempty"`
	Timestamp  time.Time                  `json:"timestamp"`
}

// ComponentStatus reports one dependency.
type ComponentStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live reports process liveness. It never touches dependencies.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Ready reports whether the service can take traffic: 200 when the store
// answers a ping, 503 otherwise.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	status, code := "ok", http.StatusOK
	if db, _ := h.checkDatabase(r.Context()); db.Status != "ok" {
		status, code = "down", http.StatusServiceUnavailable
	}

	writeJSON(w, code, HealthResponse{
		Status:    status,
		Timestamp: time.Now(),
	})
}

// Health is the detailed probe: per-component status with ping latency plus
// the build version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	db, healthy := h.checkDatabase(r.Context())

	status, code := "ok", http.StatusOK
	if !healthy {
		status, code = "down", http.StatusServiceUnavailable
	}

	writeJSON(w, code, HealthResponse{
		Status:     status,
		Version:    h.version,
		Components: map[string]ComponentStatus{"database": db},
		Timestamp:  time.Now(),
	})
}

func (h *HealthHandler) checkDatabase(ctx context.Context) (ComponentStatus, bool) {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	start := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		return ComponentStatus{Status: "down"}, false
	}
	return ComponentStatus{Status: "ok", Latency: time.Since(start).String()}, true
}
