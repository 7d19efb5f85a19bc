package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/octetpost/octetpost/src/internal/config"
)

// route is one entry of the static route table.
type route struct {
	method  string
	pattern string
	handler http.HandlerFunc
}

// routes returns the route table. It is built once per router and never changes.
func (h *Handler) routes() []route {
	return []route{
		{http.MethodGet, "/", h.Greeting},
		{http.MethodGet, "/redirect-example", h.Redirect},
		{http.MethodGet, "/-1/seek", h.Redirect},

		{http.MethodGet, "/2/dest", h.addressHandler(destV4Route)},
		{http.MethodGet, "/2/key", h.addressHandler(keyV4Route)},
		{http.MethodGet, "/2/v6/dest", h.addressHandler(destV6Route)},
		{http.MethodGet, "/2/v6/key", h.addressHandler(keyV6Route)},

		{http.MethodPost, "/5/manifest", h.Manifest},

		{http.MethodGet, "/healthz", h.Health},
	}
}

// NewRouter creates a new HTTP router with all endpoints. metrics may be nil,
// in which case nothing is recorded and no metrics endpoint is served.
func NewRouter(cfg *config.Config, metrics *Metrics) (http.Handler, error) {
	h, err := NewHandler(cfg, metrics)
	if err != nil {
		return nil, err
	}

	return h.router(h.routes())
}

// router mounts routes behind the access log, metrics and panic recovery.
// Recovery sits innermost so a recovered 500 is still logged and counted.
func (h *Handler) router(routes []route) (http.Handler, error) {
	r := chi.NewRouter()

	r.Use(Logger)
	if h.metrics != nil {
		r.Use(h.metrics.Middleware)
	}
	r.Use(Recovery)

	for _, rt := range routes {
		r.Method(rt.method, rt.pattern, rt.handler)
	}

	if h.metrics != nil {
		path := h.cfg.Metrics.Path
		if path == "" {
			return nil, fmt.Errorf("metrics path is empty")
		}
		for _, rt := range routes {
			if rt.pattern == path {
				return nil, fmt.Errorf("metrics path %s collides with route %s %s", path, rt.method, rt.pattern)
			}
		}
		r.Method(http.MethodGet, path, h.metrics.Handler())
	}

	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)

	return r, nil
}
