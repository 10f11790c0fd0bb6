package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"

	"github.com/Silverados/sitenav/internal/domain"
	"github.com/Silverados/sitenav/internal/httpserver/deps"
	"github.com/Silverados/sitenav/internal/logger"
)

type sidebarResponse struct {
	Key   string           `json:"key"`
	Path  string           `json:"path"`
	Items []domain.NavItem `json:"items"`
}

// Sidebar resolves ?path= to the sidebar section serving that page.
// Resolutions are cached in Redis per snapshot when a cache is configured.
func Sidebar(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pagePath := strings.TrimSpace(r.URL.Query().Get("path"))
		if pagePath == "" {
			writeError(w, http.StatusBadRequest, "missing path query parameter")
			return
		}

		snap, ok := currentSnapshot(w, d)
		if !ok {
			return
		}
		sb := snap.Site.ThemeConfig.Sidebar

		key := cachedKey(r.Context(), d, snap.Digest, pagePath)
		items, hit := sb[key]
		if key == "" || !hit {
			var found bool
			key, items, found = sb.Resolve(pagePath)
			if !found {
				writeError(w, http.StatusNotFound, "no sidebar for "+pagePath)
				return
			}
			storeKey(r.Context(), d, snap.Digest, pagePath, key)
		}

		// Keys are free text from the site file; only their hash goes in the header.
		variant := "sb-" + strconv.FormatUint(xxhash.Sum64String(key), 16)
		if notModified(w, r, etag(snap.Digest, variant)) {
			return
		}
		writeJSON(w, http.StatusOK, sidebarResponse{
			Key:   key,
			Path:  pagePath,
			Items: items,
		})
	}
}

// cachedKey returns the cached sidebar key, or "" on a miss or without cache.
func cachedKey(ctx context.Context, d deps.Deps, digest, pagePath string) string {
	if d.Cache == nil {
		return ""
	}
	key, err := d.Cache.GetCachedResolution(ctx, digest, pagePath)
	if err != nil {
		d.Logger.Debug("resolution cache unavailable", logger.Error(err))
		countCache(d, "error")
		return ""
	}
	if key == "" {
		countCache(d, "miss")
		return ""
	}
	countCache(d, "hit")
	return key
}

func storeKey(ctx context.Context, d deps.Deps, digest, pagePath, key string) {
	if d.Cache == nil {
		return
	}
	ttl := d.CacheTTL
	if ttl <= 0 {
		ttl = time.Hour
	}
	if err := d.Cache.CacheResolution(ctx, digest, pagePath, key, ttl); err != nil {
		d.Logger.Debug("failed to cache resolution", logger.Error(err))
	}
}

func countCache(d deps.Deps, outcome string) {
	if d.Metrics != nil {
		d.Metrics.CacheLookupsTotal.WithLabelValues(outcome).Inc()
	}
}
