package api

import (
	"fmt"
	"net/http"

	"github.com/octetpost/octetpost/src/internal/config"
	"github.com/octetpost/octetpost/src/internal/manifest"
)

// Handler serves every route. It only holds immutable settings and is
// shared by all requests.
type Handler struct {
	cfg     *config.Config
	parser  *manifest.Parser
	metrics *Metrics
}

// NewHandler creates a handler for cfg. metrics may be nil.
func NewHandler(cfg *config.Config, metrics *Metrics) (*Handler, error) {
	parser, err := manifest.NewParser(cfg.Manifest.LineTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to create manifest parser: %w", err)
	}

	return &Handler{
		cfg:     cfg,
		parser:  parser,
		metrics: metrics,
	}, nil
}

// Greeting returns the configured greeting.
// GET /
func (h *Handler) Greeting(w http.ResponseWriter, r *http.Request) {
	writeText(w, http.StatusOK, h.cfg.Greeting.Text)
}

// Redirect sends the client to the configured location.
// GET /redirect-example
func (h *Handler) Redirect(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Location", h.cfg.Redirect.Location)
	w.WriteHeader(h.cfg.Redirect.Status)
}

// Health reports liveness.
// GET /healthz
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeText(w, http.StatusOK, "OK")
}

// NotFound handles requests that match no route.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeText(w, http.StatusNotFound, "Not found")
}

// MethodNotAllowed handles requests with an unsupported method on a known path.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeText(w, http.StatusMethodNotAllowed, "Method not allowed")
}
