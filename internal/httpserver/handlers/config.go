package handlers

import (
	"net/http"

	"github.com/Silverados/sitenav/internal/domain"
	"github.com/Silverados/sitenav/internal/httpserver/deps"
)

// Config serves the whole document. The ETag is the snapshot digest.
func Config(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap, ok := currentSnapshot(w, d)
		if !ok {
			return
		}
		if notModified(w, r, etag(snap.Digest, "")) {
			return
		}
		writeJSON(w, http.StatusOK, snap.Site)
	}
}

// Nav serves the top navigation bar.
func Nav(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap, ok := currentSnapshot(w, d)
		if !ok {
			return
		}
		if notModified(w, r, etag(snap.Digest, "nav")) {
			return
		}
		nav := snap.Site.ThemeConfig.Nav
		if nav == nil {
			nav = []domain.NavItem{}
		}
		writeJSON(w, http.StatusOK, nav)
	}
}

type linksResponse struct {
	Digest string        `json:"digest"`
	Count  int           `json:"count"`
	Links  []domain.Link `json:"links"`
}

// Links serves every navigable link with its breadcrumb trail.
// ?area=nav or ?area=<sidebar key> narrows the list.
func Links(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap, ok := currentSnapshot(w, d)
		if !ok {
			return
		}

		links := snap.Site.AllLinks()
		if area := r.URL.Query().Get("area"); area != "" {
			filtered := links[:0:0]
			for _, l := range links {
				if l.Area == area {
					filtered = append(filtered, l)
				}
			}
			links = filtered
		}
		if links == nil {
			links = []domain.Link{}
		}

		writeJSON(w, http.StatusOK, linksResponse{
			Digest: snap.Digest,
			Count:  len(links),
			Links:  links,
		})
	}
}
