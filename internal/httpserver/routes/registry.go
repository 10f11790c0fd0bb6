// Package routes mounts the HTTP endpoints. Each file registers its routes
// from init, in file order.
package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Silverados/sitenav/internal/httpserver/deps"
	"github.com/Silverados/sitenav/internal/httpserver/mw"
)

type (
	Registrar  func(r chi.Router, d deps.Deps)
	Middleware = func(http.Handler) http.Handler
)

// Guard builds the middlewares protecting a group of routes.
type Guard func(d deps.Deps) []Middleware

type entry struct {
	name  string
	reg   Registrar
	guard Guard
}

var registry []entry

// Register adds a group of routes behind an optional guard.
func Register(name string, reg Registrar, guard Guard) {
	registry = append(registry, entry{name: name, reg: reg, guard: guard})
}

// RegisterAll mounts every registered group on r and returns their names.
func RegisterAll(r chi.Router, d deps.Deps) []string {
	names := make([]string, 0, len(registry))
	for _, e := range registry {
		sub := r
		if e.guard != nil {
			if mws := e.guard(d); len(mws) > 0 {
				sub = r.With(mws...)
			}
		}
		e.reg(sub, d)
		names = append(names, e.name)
	}
	return names
}

// Public leaves routes open.
var Public Guard

// Internal restricts routes to the allowed CIDRs. Scrapers and probes
// address the pod by IP, so the Host header is not checked.
func Internal(d deps.Deps) []Middleware {
	return []Middleware{mw.AllowOnlyCIDRS(d.AllowedCIDRS, d.TrustProxy, d.Logger)}
}

// Admin restricts routes to the allowed CIDRs and hosts.
func Admin(d deps.Deps) []Middleware {
	return append(Internal(d), mw.EnforceHost(d.AllowedHosts, d.Logger))
}
