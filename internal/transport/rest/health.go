package rest

import (
	"context"
	"net/http"
	"time"
)

const pingTimeout = 3 * time.Second

// Overall states reported by the health endpoints.
const (
	statusOK       = "ok"
	statusDegraded = "degraded"
	statusDown     = "down"
)

type dbPinger interface {
	Ping(ctx context.Context) error
}

// snapshotState reports whether the in-memory glossary has been loaded.
type snapshotState interface {
	Ready() bool
}

// llmState reports the language model availability ("ok", "open",
// "half-open" or "disabled").
type llmState interface {
	Status() string
}

// HealthHandler serves the liveness, readiness and health endpoints.
type HealthHandler struct {
	db       dbPinger
	snapshot snapshotState
	llm      llmState
	version  string
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(db dbPinger, snapshot snapshotState, llm llmState, version string) *HealthHandler {
	return &HealthHandler{db: db, snapshot: snapshot, llm: llm, version: version}
}

// HealthResponse is the JSON body of /live, /ready and /health.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of a single dependency.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live always answers 200.
func (h *HealthHandler) Live(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: statusOK, Timestamp: time.Now()})
}

// Ready answers 200 once the database responds and the first glossary
// snapshot is loaded. An unavailable language model does not make the
// service unready.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	overall, _ := h.check(r.Context())
	writeJSON(w, httpStatus(overall), HealthResponse{Status: overall, Timestamp: time.Now()})
}

// Health reports every component together with the build version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	overall, components := h.check(r.Context())
	writeJSON(w, httpStatus(overall), HealthResponse{
		Status:     overall,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}

func (h *HealthHandler) check(ctx context.Context) (string, map[string]CompStatus) {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	components := make(map[string]CompStatus, 3)
	overall := statusOK

	start := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		components["database"] = CompStatus{Status: statusDown}
		overall = statusDown
	} else {
		components["database"] = CompStatus{Status: statusOK, Latency: time.Since(start).String()}
	}

	if h.snapshot.Ready() {
		components["snapshot"] = CompStatus{Status: statusOK}
	} else {
		components["snapshot"] = CompStatus{Status: "loading"}
		overall = statusDown
	}

	llm := h.llm.Status()
	components["llm"] = CompStatus{Status: llm}
	if overall == statusOK && (llm == "open" || llm == "half-open") {
		overall = statusDegraded
	}

	return overall, components
}

func httpStatus(overall string) int {
	if overall == statusDown {
		return http.StatusServiceUnavailable
	}
	return http.StatusOK
}
