package metrics

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/andrescamacho/craftsolver-go/internal/infrastructure/config"
)

// Server exposes the global registry over HTTP for Prometheus scraping
type Server struct {
	httpServer *http.Server
	listener   net.Listener
}

// NewServer binds the metrics endpoint described by cfg. InitRegistry must
// have been called first.
func NewServer(cfg *config.MetricsConfig) (*Server, error) {
	if Registry == nil {
		return nil, fmt.Errorf("metrics registry not initialized")
	}

	path := cfg.Path
	if path == "" {
		path = "/metrics"
	}

	mux := http.NewServeMux()
	mux.Handle(path, promhttp.HandlerFor(Registry, promhttp.HandlerOpts{Registry: Registry}))

	addr := net.JoinHostPort(cfg.Host, fmt.Sprintf("%d", cfg.Port))
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	return &Server{
		httpServer: &http.Server{
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
		listener: listener,
	}, nil
}

// Addr is the bound address
func (s *Server) Addr() string {
	return s.listener.Addr().String()
}

// Start serves in the background
func (s *Server) Start() {
	go func() {
		if err := s.httpServer.Serve(s.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Metrics server error: %v", err)
		}
	}()
}

// Shutdown stops the server, waiting for in-flight scrapes until ctx expires
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
