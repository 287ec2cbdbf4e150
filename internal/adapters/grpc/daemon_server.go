package grpc

import (
	"fmt"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"golang.org/x/time/rate"
	"google.golang.org/grpc"

	"github.com/andrescamacho/craftsolver-go/internal/application/common"
	"github.com/andrescamacho/craftsolver-go/internal/infrastructure/config"
)

// ServerOptions tune the daemon server
type ServerOptions struct {
	RateLimit       config.RateLimitConfig
	ShutdownTimeout time.Duration
	Logger          *common.StdLogger
}

// DaemonServer serves the CraftSolver service on a listener
// and stops gracefully on SIGINT/SIGTERM or Stop
type DaemonServer struct {
	listener        net.Listener
	grpcServer      *grpc.Server
	shutdownTimeout time.Duration

	// Shutdown coordination
	shutdownChan chan os.Signal
	done         chan struct{}
	stopOnce     sync.Once
}

// NewDaemonServer creates a daemon server listening on a unix socket
func NewDaemonServer(service CraftSolverServer, socketPath string, opts ServerOptions) (*DaemonServer, error) {
	// Remove existing socket file if present
	if err := os.RemoveAll(socketPath); err != nil {
		return nil, fmt.Errorf("failed to remove existing socket: %w", err)
	}

	listener, err := net.Listen("unix", socketPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create unix socket listener: %w", err)
	}

	// Set socket permissions (owner only)
	if err := os.Chmod(socketPath, 0600); err != nil {
		listener.Close()
		return nil, fmt.Errorf("failed to set socket permissions: %w", err)
	}

	server := NewDaemonServerWithListener(service, listener, opts)
	signal.Notify(server.shutdownChan, os.Interrupt, syscall.SIGTERM)
	return server, nil
}

// NewDaemonServerWithListener creates a daemon server on an existing listener.
// No signal handling is installed; use Stop.
func NewDaemonServerWithListener(service CraftSolverServer, listener net.Listener, opts ServerOptions) *DaemonServer {
	logger := opts.Logger
	if logger == nil {
		logger = common.NewStdLogger("info")
	}

	interceptors := []grpc.UnaryServerInterceptor{LoggingInterceptor(logger)}
	if opts.RateLimit.Requests > 0 {
		burst := opts.RateLimit.Burst
		if burst < 1 {
			burst = 1
		}
		limiter := rate.NewLimiter(rate.Limit(opts.RateLimit.Requests), burst)
		interceptors = append(interceptors, RateLimitInterceptor(limiter))
	}

	grpcServer := grpc.NewServer(grpc.ChainUnaryInterceptor(interceptors...))
	RegisterCraftSolverServer(grpcServer, service)

	return &DaemonServer{
		listener:        listener,
		grpcServer:      grpcServer,
		shutdownTimeout: opts.ShutdownTimeout,
		shutdownChan:    make(chan os.Signal, 1),
		done:            make(chan struct{}),
	}
}

// Start serves requests and blocks until shutdown
func (s *DaemonServer) Start() error {
	fmt.Printf("Daemon server listening on: %s\n", s.listener.Addr().String())

	go s.handleShutdown()

	errChan := make(chan error, 1)
	go func() {
		if err := s.grpcServer.Serve(s.listener); err != nil {
			errChan <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	select {
	case err := <-errChan:
		return err
	case <-s.done:
		fmt.Println("Initiating graceful shutdown of gRPC server...")
		s.gracefulStop()
		return nil
	}
}

// Stop requests shutdown
func (s *DaemonServer) Stop() {
	s.stopOnce.Do(func() { close(s.done) })
}

// handleShutdown turns a signal into a Stop
func (s *DaemonServer) handleShutdown() {
	select {
	case <-s.shutdownChan:
		fmt.Println("\nShutdown signal received, stopping daemon...")
		s.Stop()
	case <-s.done:
	}
}

// gracefulStop waits for in-flight calls, which may include a long solver
// build, up to the shutdown timeout before cutting them off
func (s *DaemonServer) gracefulStop() {
	if s.shutdownTimeout <= 0 {
		s.grpcServer.GracefulStop()
		return
	}

	stopped := make(chan struct{})
	go func() {
		s.grpcServer.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-time.After(s.shutdownTimeout):
		fmt.Println("Shutdown timeout reached, forcing stop")
		s.grpcServer.Stop()
	}
}
