package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/Silverados/sitenav/internal/httpserver/deps"
	"github.com/Silverados/sitenav/internal/httpserver/handlers"
)

func init() { Register("probes", registerProbes, Internal) }

// registerProbes mounts readiness and the Prometheus endpoint.
func registerProbes(r chi.Router, d deps.Deps) {
	r.Get("/readyz", handlers.Readyz(d))
	if d.Metrics != nil {
		r.Handle("/metrics", d.Metrics.Handler())
	}
}
