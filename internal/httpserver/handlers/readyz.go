package handlers

import (
	"net/http"

	"github.com/Silverados/sitenav/internal/httpserver/deps"
)

type readyzResponse struct {
	Ready  bool   `json:"ready"`
	Digest string `json:"digest,omitempty"`
}

// Readyz answers 503 until the first snapshot is published.
func Readyz(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store")

		snap := d.SiteIndex.Current()
		if snap == nil {
			writeJSON(w, http.StatusServiceUnavailable, readyzResponse{Ready: false})
			return
		}
		writeJSON(w, http.StatusOK, readyzResponse{
			Ready:  true,
			Digest: snap.Digest,
		})
	}
}
