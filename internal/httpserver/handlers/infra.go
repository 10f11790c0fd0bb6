package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/Silverados/sitenav/internal/httpserver/deps"
)

type componentStatus struct {
	OK              bool   `json:"ok"`
	Source          string `json:"source,omitempty"`
	Digest          string `json:"digest,omitempty"`
	LoadedAt        string `json:"loaded_at,omitempty"`
	LastReload      string `json:"last_reload,omitempty"`
	Reloads         *int   `json:"reloads,omitempty"`
	SidebarSections *int   `json:"sidebar_sections,omitempty"`
	Links           *int   `json:"links,omitempty"`
	Mode            string `json:"mode,omitempty"`
	Impact          string `json:"impact,omitempty"`
	Error           string `json:"error,omitempty"`
}

type infraResponse struct {
	ServingMode string                     `json:"serving_mode"`
	Components  map[string]componentStatus `json:"components"`
}

// Infra reports the state of the document and of Redis.
func Infra(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		components := map[string]componentStatus{
			"site":  siteStatus(d),
			"redis": checkRedis(r.Context(), d),
		}

		writeJSON(w, http.StatusOK, infraResponse{
			ServingMode: determineServingMode(components),
			Components:  components,
		})
	}
}

func siteStatus(d deps.Deps) componentStatus {
	reloads := d.SiteIndex.Reloads()
	lastReload := "never"
	if t := d.SiteIndex.LastReload(); !t.IsZero() {
		lastReload = t.Format(time.RFC3339)
	}

	st := componentStatus{
		Source:     d.SourceName,
		LastReload: lastReload,
		Reloads:    &reloads,
	}

	snap := d.SiteIndex.Current()
	if snap == nil || snap.Site == nil {
		st.Error = "no snapshot published"
		return st
	}

	sections := len(snap.Site.ThemeConfig.Sidebar)
	links := len(snap.Site.AllLinks())
	st.OK = true
	st.Digest = snap.Digest
	st.LoadedAt = snap.LoadedAt.Format(time.RFC3339)
	st.SidebarSections = &sections
	st.Links = &links
	return st
}

func determineServingMode(components map[string]componentStatus) string {
	if site, exists := components["site"]; exists && !site.OK {
		return "critical" // nothing to serve
	}

	// Redis down = degraded (no persistence, no resolution cache)
	if redis, exists := components["redis"]; exists && !redis.OK && redis.Mode != "disabled" {
		return "degraded"
	}

	return "operational"
}

func checkRedis(ctx context.Context, d deps.Deps) componentStatus {
	if d.Cache == nil {
		return componentStatus{
			OK:     true,
			Mode:   "disabled",
			Impact: "memory-only",
		}
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := d.Cache.Ping(ctx); err != nil {
		return componentStatus{
			OK:     false,
			Mode:   "degraded",
			Impact: "persistence-and-cache-disabled",
			Error:  err.Error(),
		}
	}

	return componentStatus{
		OK:     true,
		Mode:   "optimal",
		Impact: "persistence-and-cache-enabled",
	}
}
