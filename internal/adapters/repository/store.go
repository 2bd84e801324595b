// Package repository keeps in-process run statistics for the analysis
// service. Nothing here survives a restart; the engine does not persist data.
package repository

import "context"

// Stats is a snapshot of the run counters.
type Stats struct {
	TotalAnalyses int            `json:"total_analyses"`
	AverageScore  float64        `json:"average_score"`
	ByStrategy    map[string]int `json:"analyses_by_strategy"`
}

// StatsStore accumulates per-analysis observations and serves snapshots.
type StatsStore interface {
	// Record notes one completed analysis and its overall score.
	Record(ctx context.Context, strategy string, overallScore float64)

	// Stats returns a copy of the current counters.
	Stats(ctx context.Context) Stats
}
