// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/giftbench/giftbench/internal/domain/donortable"
	"github.com/giftbench/giftbench/internal/domain/types"
)

// Analyzer runs one benchmark computation over one parsed table. Using an
// interface keeps the handler layer loosely coupled to the service package.
type Analyzer interface {
	Analyze(ctx context.Context, table *donortable.Table) (types.Report, error)
}

// StatsProvider defines the interface for getting service statistics.
type StatsProvider interface {
	GetStats() map[string]interface{}
}

// Server wires HTTP routes for the business API.
type Server struct {
	analyzeHandler   *AnalyzeHandler
	healthHandler    *HealthHandler
	statsHandler     *StatsHandler
	dashboardHandler *dashboardHandler
}

// NewServer creates a new API server with all handlers. maxUploadBytes
// bounds the accepted spreadsheet size on the analyze route.
func NewServer(analyzer Analyzer, statsProvider StatsProvider, maxUploadBytes int64) *Server {
	return &Server{
		analyzeHandler:   NewAnalyzeHandler(analyzer, maxUploadBytes),
		healthHandler:    NewHealthHandler(),
		statsHandler:     NewStatsHandler(statsProvider),
		dashboardHandler: newDashboardHandler(),
	}
}

// Register attaches all HTTP routes to the router.
func (s *Server) Register(_ context.Context, r chi.Router) {
	r.Get("/", s.dashboardHandler.HandleDashboard)
	r.Get("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	r.Get("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	r.Post("/analyze", MetricsMiddleware(s.analyzeHandler.HandleAnalyze, "analyze"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeJSON encodes before touching the response so an unencodable value
// becomes a clean 500 instead of a 200 with a truncated body.
func writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"code":"internal_error","message":"response encoding failed"}` + "\n"))
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(append(body, '\n'))
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
