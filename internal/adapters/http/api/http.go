// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/resumatch/resumatch/internal/adapters/repository"
	"github.com/resumatch/resumatch/internal/domain/model"
)

// defaultMaxUploadBytes caps document uploads when no limit is configured.
const defaultMaxUploadBytes = 10 << 20

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Analyze runs the full matching pipeline on a resume and job description.
	Analyze(ctx context.Context, resumeText, jobText string) (*model.AnalysisResult, error)

	// SkillCategories returns the active skill taxonomy.
	SkillCategories() map[string][]string

	// StrategyName returns the configured similarity strategy name.
	StrategyName() string

	// GetStats returns the run counters.
	GetStats(ctx context.Context) repository.Stats
}

// Server wires HTTP routes for the business API.
type Server struct {
	analyzeHandler *AnalyzeHandler
	uploadHandler  *UploadHandler
	skillsHandler  *SkillsHandler
	statsHandler   *StatsHandler
	healthHandler  *HealthHandler
}

// ServerOption applies a configuration option to the Server.
type ServerOption func(*Server)

// WithMaxUploadBytes caps accepted document uploads.
func WithMaxUploadBytes(n int64) ServerOption {
	return func(s *Server) {
		if n > 0 {
			s.uploadHandler.maxUploadBytes = n
		}
	}
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, opts ...ServerOption) *Server {
	s := &Server{
		analyzeHandler: NewAnalyzeHandler(deps),
		uploadHandler:  NewUploadHandler(deps),
		skillsHandler:  NewSkillsHandler(deps),
		statsHandler:   NewStatsHandler(deps),
		healthHandler:  NewHealthHandler(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/health", CORSMiddleware(MetricsMiddleware(s.healthHandler.HandleHealth, "health")))
	mux.HandleFunc("/metrics", MetricsMiddleware(s.healthHandler.HandleMetrics, "metrics"))
	mux.HandleFunc("/api/analyze", CORSMiddleware(MetricsMiddleware(s.analyzeHandler.HandleAnalyze, "analyze")))
	mux.HandleFunc("/api/analyze-file", CORSMiddleware(MetricsMiddleware(s.uploadHandler.HandleAnalyzeFile, "analyze_file")))
	mux.HandleFunc("/api/upload-resume", CORSMiddleware(MetricsMiddleware(s.uploadHandler.HandleUploadResume, "upload_resume")))
	mux.HandleFunc("/api/skills", CORSMiddleware(MetricsMiddleware(s.skillsHandler.HandleSkills, "skills")))
	mux.HandleFunc("/api/stats", CORSMiddleware(MetricsMiddleware(s.statsHandler.HandleStats, "stats")))
}

// analyzeRequest mirrors the OpenAPI schema for POST /api/analyze.
type analyzeRequest struct {
	ResumeText     string `json:"resume_text"`
	JobDescription string `json:"job_description"`
}

func (a analyzeRequest) validate() error {
	switch {
	case strings.TrimSpace(a.ResumeText) == "":
		return errors.New("missing resume_text")
	case strings.TrimSpace(a.JobDescription) == "":
		return errors.New("missing job_description")
	}
	return nil
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
