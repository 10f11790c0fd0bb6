package routes

import (
	"net/http"
	"net/http/httptest"
	"slices"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/Silverados/sitenav/internal/httpserver/deps"
	"github.com/Silverados/sitenav/internal/logger"
)

func TestRegisterAll(t *testing.T) {
	r := chi.NewRouter()
	groups := RegisterAll(r, deps.Deps{Logger: logger.Nop()})

	for _, want := range []string{"api", "healthz", "admin", "probes"} {
		if !slices.Contains(groups, want) {
			t.Errorf("group %q not mounted, got %v", want, groups)
		}
	}
}

func TestGuards(t *testing.T) {
	d := deps.Deps{
		Logger:       logger.Nop(),
		AllowedCIDRS: []string{"10.0.0.0/8"},
		AllowedHosts: []string{"admin.example.com"},
	}
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })

	chain := func(mws []Middleware) http.Handler {
		var h http.Handler = ok
		for i := len(mws) - 1; i >= 0; i-- {
			h = mws[i](h)
		}
		return h
	}

	tests := []struct {
		name   string
		guard  Guard
		remote string
		host   string
		want   int
	}{
		{"internal by ip", Internal, "10.1.2.3:80", "10.1.2.3", http.StatusOK},
		{"internal outside", Internal, "192.0.2.1:80", "10.1.2.3", http.StatusForbidden},
		{"admin right host", Admin, "10.1.2.3:80", "admin.example.com", http.StatusOK},
		{"admin wrong host", Admin, "10.1.2.3:80", "10.1.2.3", http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			req.Host = tt.host
			rec := httptest.NewRecorder()
			chain(tt.guard(d)).ServeHTTP(rec, req)
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}
