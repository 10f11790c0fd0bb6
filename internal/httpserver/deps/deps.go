package deps

import (
	"context"
	"time"

	"github.com/Silverados/sitenav/internal/index"
	"github.com/Silverados/sitenav/internal/logger"
	"github.com/Silverados/sitenav/internal/metrics"
)

// ResolutionCache caches page path -> sidebar key resolutions. Implemented by
// the Redis store.
type ResolutionCache interface {
	Ping(ctx context.Context) error
	CacheResolution(ctx context.Context, digest, pagePath, sidebarKey string, ttl time.Duration) error
	GetCachedResolution(ctx context.Context, digest, pagePath string) (string, error)
}

// ReloadTrigger requests a reload; false means one is already pending.
type ReloadTrigger interface {
	Trigger() bool
}

type Deps struct {
	Logger          logger.Logger
	StartTime       time.Time
	Version         string
	Commit          string
	BuildDate       string
	GoVersion       string
	TimeNow         func() time.Time // for testing, defaults to time.Now
	AllowedHosts    []string         // Host headers allowed to access admin routes
	AllowedCIDRS    []string         // IPs allowed to access admin routes
	TrustProxy      bool             // true if running behind a trusted reverse proxy (e.g., cloudflared)
	CORSOrigins     []string         // origins allowed to read the API, "*" = any
	RateLimitBurst  int              // per-client burst on the read API
	RateLimitPerMin int              // per-client refill on the read API
	SiteIndex       *index.SiteIndex // published site snapshot
	SourceName      string           // where the document is loaded from
	Cache           ResolutionCache  // nil when redis is disabled
	CacheTTL        time.Duration    // TTL of cached resolutions
	Reloader        ReloadTrigger    // manual reload trigger
	Metrics         *metrics.Metrics // nil disables /metrics and request metrics
}

// Now returns the current time using TimeNow when set.
func (d Deps) Now() time.Time {
	if d.TimeNow != nil {
		return d.TimeNow()
	}
	return time.Now()
}
