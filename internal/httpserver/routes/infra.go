package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/Silverados/sitenav/internal/httpserver/deps"
	"github.com/Silverados/sitenav/internal/httpserver/handlers"
)

func init() { Register("admin", registerInfra, Admin) }

func registerInfra(r chi.Router, d deps.Deps) {
	r.Get("/infra", handlers.Infra(d))
	r.Post("/reload", handlers.Reload(d))
}
