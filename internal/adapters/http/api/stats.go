// Package api declares HTTP contracts and route registration helpers.
package api

import "net/http"

// StatsHandler serves run statistics.
type StatsHandler struct {
	deps Dependencies
}

// NewStatsHandler creates a new stats handler.
func NewStatsHandler(deps Dependencies) *StatsHandler {
	return &StatsHandler{deps: deps}
}

// statsResponse mirrors the OpenAPI schema for GET /api/stats.
type statsResponse struct {
	TotalAnalyses      int            `json:"total_analyses"`
	AverageScore       float64        `json:"average_score"`
	AnalysesByStrategy map[string]int `json:"analyses_by_strategy"`
	ActiveStrategy     string         `json:"active_strategy"`
}

// HandleStats handles GET /api/stats requests.
func (h *StatsHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	stats := h.deps.GetStats(r.Context())
	writeJSON(w, http.StatusOK, statsResponse{
		TotalAnalyses:      stats.TotalAnalyses,
		AverageScore:       stats.AverageScore,
		AnalysesByStrategy: stats.ByStrategy,
		ActiveStrategy:     h.deps.StrategyName(),
	})
}
