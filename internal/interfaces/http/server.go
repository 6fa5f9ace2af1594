// Package http is the thin read-only inbound adapter for the scoring
// engine: POST /v1/score plus health and metrics. Authentication,
// billing and the web UI live in other services.
package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/tokensight/tokensight/internal/config"
	"github.com/tokensight/tokensight/internal/engine"
	"github.com/tokensight/tokensight/internal/model"
)

// Server serves the scoring API.
type Server struct {
	engine  *engine.Engine
	server  *http.Server
	metrics *MetricsRegistry
	cfg     config.ServerConfig
}

// NewServer wires the router, middleware and metrics around an engine.
func NewServer(cfg config.ServerConfig, eng *engine.Engine) *Server {
	metrics, registry := NewMetricsRegistry()
	eng.OnExternalDegrade(func(service string) {
		metrics.ExternalFailures.WithLabelValues(service).Inc()
	})

	s := &Server{engine: eng, metrics: metrics, cfg: cfg}

	router := mux.NewRouter()
	router.Use(s.requestMiddleware)
	router.HandleFunc("/v1/score", s.handleScore).Methods(http.MethodPost)
	router.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	s.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.ReadTimeoutSecs) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeoutSecs) * time.Second,
		IdleTimeout:  time.Duration(cfg.IdleTimeoutSecs) * time.Second,
	}
	return s
}

// Start blocks serving until the listener fails or Shutdown is called.
func (s *Server) Start() error {
	log.Info().Str("addr", s.server.Addr).Msg("scoring API listening")
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Server) requestMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", requestID)

		start := time.Now()
		next.ServeHTTP(w, r)

		log.Debug().
			Str("request_id", requestID).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("elapsed", time.Since(start)).
			Msg("request served")
	})
}

// ScoreRequest is the inbound scoring payload.
type ScoreRequest struct {
	Metrics  *model.TokenMetrics `json:"metrics"`
	Plan     model.Plan          `json:"plan"`
	Metadata *model.TokenMeta    `json:"metadata,omitempty"`
}

func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var req ScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, "score", http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Metrics == nil {
		s.writeError(w, "score", http.StatusBadRequest, "metrics is required")
		return
	}
	switch req.Plan {
	case model.PlanFree, model.PlanPremium:
	case "":
		req.Plan = model.PlanFree
	default:
		s.writeError(w, "score", http.StatusBadRequest, "plan must be free or premium")
		return
	}

	timer := prometheus.NewTimer(s.metrics.ScoreDuration)
	result, err := s.engine.Score(r.Context(), req.Metrics, req.Plan, req.Metadata)
	timer.ObserveDuration()
	if err != nil {
		s.writeError(w, "score", http.StatusInternalServerError, "scoring failed")
		return
	}

	s.metrics.ScoresTotal.WithLabelValues(string(result.Base().Level), string(result.Plan())).Inc()
	s.writeJSON(w, "score", http.StatusOK, result)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, "health", http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "tokensight",
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, endpoint string, status int, body any) {
	s.metrics.RequestsTotal.WithLabelValues(endpoint, strconv.Itoa(status)).Inc()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error().Err(err).Msg("response encode failed")
	}
}

func (s *Server) writeError(w http.ResponseWriter, endpoint string, status int, msg string) {
	s.writeJSON(w, endpoint, status, map[string]string{"error": msg})
}
