package components

import (
	"context"
	stderrors "errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/octetpost/octetpost/src/internal/api"
	"github.com/octetpost/octetpost/src/internal/config"
	"github.com/octetpost/octetpost/src/internal/log"
)

var _ Component = (*APIServer)(nil)

// APIServer manages the HTTP API server
type APIServer struct {
	cfg        *config.Config
	httpServer *http.Server
	listener   net.Listener
	running    bool
	mu         sync.Mutex
	serveErr   chan error
}

// NewAPIServer creates a new API server component
func NewAPIServer(cfg *config.Config) *APIServer {
	return &APIServer{
		cfg: cfg,
	}
}

// Name returns the component name for logging
func (a *APIServer) Name() string {
	return "API server"
}

// Start binds the listener and serves in the background. Bind errors are
// returned immediately.
func (a *APIServer) Start() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.running {
		return fmt.Errorf("API server is already running")
	}

	var metrics *api.Metrics
	if a.cfg.Metrics.IsEnabled() {
		metrics = api.NewMetrics()
	}

	router, err := api.NewRouter(a.cfg, metrics)
	if err != nil {
		return fmt.Errorf("failed to create router: %w", err)
	}

	listener, err := net.Listen("tcp", a.cfg.Server.BindAddress)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", a.cfg.Server.BindAddress, err)
	}

	a.listener = listener
	a.httpServer = &http.Server{
		Handler:      router,
		ReadTimeout:  time.Duration(a.cfg.Server.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(a.cfg.Server.WriteTimeoutSeconds) * time.Second,
		IdleTimeout:  time.Duration(a.cfg.Server.IdleTimeoutSeconds) * time.Second,
	}
	a.serveErr = make(chan error, 1)

	log.Infof("API server listening on http://%s", listener.Addr())
	if metrics != nil {
		log.Infof("Metrics available at http://%s%s", listener.Addr(), a.cfg.Metrics.Path)
	}

	go func(srv *http.Server, errCh chan<- error) {
		err := srv.Serve(listener)
		if err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			log.Errorf("API server error: %v", err)
			errCh <- err
		}
		close(errCh)
	}(a.httpServer, a.serveErr)

	a.running = true
	return nil
}

// Stop gracefully shuts the server down within the configured timeout.
func (a *APIServer) Stop() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.running {
		return fmt.Errorf("API server is not running")
	}

	log.Infof("Stopping API server...")

	timeout := time.Duration(a.cfg.Server.ShutdownTimeoutSeconds) * time.Second
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	a.running = false
	if err := a.httpServer.Shutdown(ctx); err != nil {
		log.Errorf("Error shutting down HTTP server: %v", err)
		if closeErr := a.httpServer.Close(); closeErr != nil {
			return fmt.Errorf("failed to close server: %w", closeErr)
		}
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Infof("API server stopped")
	return nil
}

// IsRunning returns whether the API server is running
func (a *APIServer) IsRunning() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.running
}

// Addr returns the bound listener address, or nil before Start.
func (a *APIServer) Addr() net.Addr {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.listener == nil {
		return nil
	}
	return a.listener.Addr()
}

// Errors delivers a fatal serve error, if any. The channel is closed when
// the server stops serving.
func (a *APIServer) Errors() <-chan error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.serveErr
}
