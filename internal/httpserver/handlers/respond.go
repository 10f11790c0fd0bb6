package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/Silverados/sitenav/internal/domain"
	"github.com/Silverados/sitenav/internal/httpserver/deps"
	"github.com/Silverados/sitenav/internal/logger"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// currentSnapshot returns the published snapshot or answers 503.
func currentSnapshot(w http.ResponseWriter, d deps.Deps) (*domain.Snapshot, bool) {
	snap := d.SiteIndex.Current()
	if snap == nil || snap.Site == nil {
		d.Logger.Debug("request before first snapshot")
		writeError(w, http.StatusServiceUnavailable, "site not loaded yet")
		return nil, false
	}
	return snap, true
}

// etag quotes the digest, optionally suffixed with a variant.
func etag(digest, variant string) string {
	if variant != "" {
		digest += "-" + variant
	}
	return `"` + digest + `"`
}

// notModified sets the ETag and reports whether the client already has it.
// The caller must stop when it returns true.
func notModified(w http.ResponseWriter, r *http.Request, tag string) bool {
	w.Header().Set("ETag", tag)
	w.Header().Set("Cache-Control", "no-cache")

	inm := r.Header.Get("If-None-Match")
	if inm == "" {
		return false
	}
	for _, candidate := range strings.Split(inm, ",") {
		candidate = strings.TrimPrefix(strings.TrimSpace(candidate), "W/")
		if candidate == tag || candidate == "*" {
			w.WriteHeader(http.StatusNotModified)
			return true
		}
	}
	return false
}

func writeBody(w http.ResponseWriter, d deps.Deps, body []byte) {
	if _, err := w.Write(body); err != nil {
		d.Logger.Debug("failed to write response", logger.Error(err))
	}
}
