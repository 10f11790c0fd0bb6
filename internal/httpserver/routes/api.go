package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/Silverados/sitenav/internal/httpserver/deps"
	"github.com/Silverados/sitenav/internal/httpserver/handlers"
	"github.com/Silverados/sitenav/internal/httpserver/mw"
)

func init() { Register("api", registerAPI, Public) }

// registerAPI mounts the public read API, rate limited per client.
func registerAPI(r chi.Router, d deps.Deps) {
	r.Route("/api", func(r chi.Router) {
		r.Use(mw.RateLimit(mw.RateLimitConfig{
			Burst:      d.RateLimitBurst,
			PerMinute:  d.RateLimitPerMin,
			TrustProxy: d.TrustProxy,
		}))

		r.Get("/config", handlers.Config(d))
		r.Get("/nav", handlers.Nav(d))
		r.Get("/sidebar", handlers.Sidebar(d))
		r.Get("/links", handlers.Links(d))
		r.Get("/export", handlers.Export(d))
	})
}
