package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/bensethbell/domainwatch/internal/domain"
	"github.com/bensethbell/domainwatch/internal/store"
)

// StatusReader is the read side of the status artifact. The API never
// writes: the monitor loop is the only writer.
type StatusReader interface {
	Load() (domain.StatusSet, error)
}

// Server exposes the current status set and metrics for serve mode.
type Server struct {
	Logger   *zap.Logger
	Statuses StatusReader
	Registry *prometheus.Registry
}

func NewServer(l *zap.Logger, sr StatusReader, reg *prometheus.Registry) *Server {
	return &Server{Logger: l, Statuses: sr, Registry: reg}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(cors.AllowAll().Handler)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/api/status", s.handleStatus)
	r.Get("/api/status/{domain}", s.handleDomainStatus)

	if s.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.Registry, promhttp.HandlerOpts{}))
	}
	return r
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	set, err := s.Statuses.Load()
	if err != nil {
		s.Logger.Error("status_load_failed", zap.Error(err))
		if errors.Is(err, store.ErrCorruptStore) {
			http.Error(w, "status store corrupt", http.StatusInternalServerError)
			return
		}
		http.Error(w, "status unavailable", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(set)
}

func (s *Server) handleDomainStatus(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "domain")

	set, err := s.Statuses.Load()
	if err != nil {
		s.Logger.Error("status_load_failed", zap.Error(err))
		http.Error(w, "status unavailable", http.StatusInternalServerError)
		return
	}

	rec, ok := set[name]
	if !ok {
		http.Error(w, "domain not monitored", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"domain":       name,
		"status":       rec.Status,
		"last_checked": rec.LastChecked,
		"last_changed": rec.LastChanged,
	})
}
