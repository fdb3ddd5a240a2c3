// Package health provides HTTP health and stats endpoints for the demo binary.
package health

import (
	"context"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// Stats is the payload served on /stats.
type Stats struct {
	Ticks      uint64 `json:"ticks"`
	Components int    `json:"components"`
	Picks      uint64 `json:"picks"`
	Seed       uint64 `json:"seed"`
}

// Server provides health check endpoints.
type Server struct {
	port   int
	logger *zap.Logger
	server *http.Server
	ready  atomic.Bool
	stats  atomic.Pointer[Stats]
}

// NewServer creates a new health check server. It reports not ready until
// SetReady(true) is called, which the binary does once the engine runs.
func NewServer(port int, logger *zap.Logger) *Server {
	s := &Server{
		port:   port,
		logger: logger,
	}
	s.stats.Store(&Stats{})

	mux := http.NewServeMux()
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/ready", s.handleReady)
	mux.HandleFunc("/stats", s.handleStats)

	s.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           mux,
		ReadTimeout:       5 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      5 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return s
}

// PublishStats replaces the snapshot served on /stats. Safe to call from any
// goroutine.
func (s *Server) PublishStats(st Stats) {
	s.stats.Store(&st)
}

// Start begins serving health endpoints. This method blocks until the server
// is shut down, ctx is cancelled, or it encounters an error. A Start after
// Shutdown returns immediately.
func (s *Server) Start(ctx context.Context) error {
	stop := context.AfterFunc(ctx, func() {
		_ = s.server.Close()
	})
	defer stop()

	s.logger.Info("health server starting", zap.Int("port", s.port))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		s.logger.Error("health server error", zap.Error(err))
		return err
	}

	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.ready.Store(false)

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	s.logger.Info("health server shutting down")
	return s.server.Shutdown(shutdownCtx)
}

// SetReady updates the readiness status.
func (s *Server) SetReady(ready bool) {
	s.ready.Store(ready)
}

// IsReady returns the current readiness status.
func (s *Server) IsReady() bool {
	return s.ready.Load()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodGet {
		_, _ = w.Write([]byte("ok"))
	}
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")

	if s.ready.Load() {
		w.WriteHeader(http.StatusOK)
		if r.Method == http.MethodGet {
			_, _ = w.Write([]byte("ready"))
		}
	} else {
		w.WriteHeader(http.StatusServiceUnavailable)
		if r.Method == http.MethodGet {
			_, _ = w.Write([]byte("not ready"))
		}
	}
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	body, err := json.Marshal(s.stats.Load())
	if err != nil {
		s.logger.Error("stats encoding failed", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}
