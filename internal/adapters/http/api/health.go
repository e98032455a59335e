package api

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/okian/podium/pkg/metrics"
)

// HealthHandler handles health check and metrics requests.
type HealthHandler struct {
	data    DatasetProvider
	metrics http.Handler
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(data DatasetProvider) *HealthHandler {
	return &HealthHandler{
		data:    data,
		metrics: promhttp.HandlerFor(metrics.GetRegistry(), promhttp.HandlerOpts{}),
	}
}

type healthResponse struct {
	Status   string         `json:"status"`
	LoadedAt time.Time      `json:"loaded_at"`
	Rows     map[string]int `json:"rows"`
}

// HandleHealth handles GET /healthz requests.
// If the Accept header asks for "application/openmetrics-text" or
// "text/plain" it returns Prometheus metrics; otherwise a JSON status that
// is 503 until the dataset is loaded.
func (h *HealthHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	if wantsMetrics(r.Header.Get("Accept")) {
		h.metrics.ServeHTTP(w, r)
		return
	}
	ds, err := h.data.Snapshot()
	if err != nil {
		writeJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "loading"})
		return
	}
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", LoadedAt: ds.LoadedAt, Rows: ds.Counts()})
}

// HandleMetrics handles GET /metrics requests.
func (h *HealthHandler) HandleMetrics(w http.ResponseWriter, r *http.Request) {
	h.metrics.ServeHTTP(w, r)
}
