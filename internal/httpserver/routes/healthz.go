package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/Silverados/sitenav/internal/httpserver/deps"
	"github.com/Silverados/sitenav/internal/httpserver/handlers"
)

func init() { Register("healthz", registerHealthz, Public) }

// Liveness stays open to the orchestrator.
func registerHealthz(r chi.Router, d deps.Deps) {
	r.Get("/healthz", handlers.Healthz(d))
}
