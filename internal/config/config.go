package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/multierr"
)

type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s
	RequestTimeout  time.Duration // per-request timeout (ex: 2s)

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	SiteFile        string        // optional YAML site file, empty = built-in document
	ExportFile      string        // optional path rewritten on every published change
	ExportFormat    string        // "ts" | "json" | "yaml"
	ReloadInterval  time.Duration // interval to reload the site file (default: 1h)
	GCInterval      time.Duration // interval to prune snapshot history (default: 24h)
	RevisionHistory int           // snapshots kept in redis (default: 20)
	WatchSiteFile   bool          // reload as soon as the site file changes on disk
	WatchDebounce   time.Duration // quiet period before a watched change triggers a reload

	// Redis (optional, empty address = no persistence)
	RedisAddr           string        // ex: "localhost:6379"
	RedisUser           string        // optional
	RedisPassword       string        // optional
	RedisDB             int           // Redis DB number
	RedisDT             time.Duration // Redis dial timeout (ex: 5s)
	RedisRT             time.Duration // Redis read timeout (ex: 3s)
	RedisWT             time.Duration // Redis write timeout (ex: 3s)
	RedisMaxWait        time.Duration // max wait between retries (ex: 10s)
	RedisPingTimeout    time.Duration // timeout for each ping attempt (ex: 5s)
	RedisPoolSize       int           // Redis connection pool size
	RedisConnectTimeout time.Duration // Total time to retry connecting (ex: 30s)
	RedisRetryInterval  time.Duration // Initial wait between retries (ex: 2s, grows exponentially)
	RedisWarnThreshold  int           // warn after this many attempts
	ResolutionCacheTTL  time.Duration // TTL of cached page -> sidebar resolutions

	AllowedHosts []string // optional, restrict admin routes to specific Host headers
	AllowedCIDRS []string // optional, restrict admin routes to specific IPs/CIDRs
	TrustProxy   bool     // true => trust X-Forwarded-For headers (e.g. cloudflared)
	CORSOrigins  []string // allowed origins for the read API, "*" = any

	RateLimitBurst  int // requests a client may burst
	RateLimitPerMin int // sustained requests per client per minute
}

// Load reads the configuration from SITENAV_* environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		// Server settings
		ListenPort:      getenv("SITENAV_LISTEN_PORT", ":8080"),
		ShutdownTimeout: mustDuration("SITENAV_SHUTDOWN_TIMEOUT", 5*time.Second),
		RequestTimeout:  mustDuration("SITENAV_REQUEST_TIMEOUT", 2*time.Second),

		// Logging
		LogLevel:  getenv("SITENAV_LOG_LEVEL", "info"),
		PrettyLog: mustBool("SITENAV_PRETTY_LOG", true),

		// Document
		SiteFile:        getenv("SITENAV_SITE_FILE", ""),
		ExportFile:      getenv("SITENAV_EXPORT_FILE", ""),
		ExportFormat:    strings.ToLower(getenv("SITENAV_EXPORT_FORMAT", "ts")),
		ReloadInterval:  mustDuration("SITENAV_RELOAD_INTERVAL", time.Hour),
		GCInterval:      mustDuration("SITENAV_GC_INTERVAL", 24*time.Hour),
		RevisionHistory: getenvInt("SITENAV_REVISION_HISTORY", 20),
		WatchSiteFile:   mustBool("SITENAV_WATCH_SITE_FILE", true),
		WatchDebounce:   mustDuration("SITENAV_WATCH_DEBOUNCE", 500*time.Millisecond),

		// Redis settings
		RedisAddr:           getenv("SITENAV_REDIS_ADDR", ""),
		RedisUser:           getenv("SITENAV_REDIS_USERNAME", ""),
		RedisPassword:       getenv("SITENAV_REDIS_PASSWORD", ""),
		RedisDB:             getenvInt("SITENAV_REDIS_DB", 0),
		RedisDT:             mustDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
		RedisRT:             mustDuration("REDIS_READ_TIMEOUT", 3*time.Second),
		RedisWT:             mustDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		RedisMaxWait:        mustDuration("REDIS_MAX_WAIT", 10*time.Second),
		RedisPingTimeout:    mustDuration("REDIS_PING_TIMEOUT", 5*time.Second),
		RedisPoolSize:       getenvInt("REDIS_POOL_SIZE", 10),
		RedisConnectTimeout: mustDuration("REDIS_CONNECT_TIMEOUT", 30*time.Second),
		RedisRetryInterval:  mustDuration("REDIS_RETRY_INTERVAL", 2*time.Second),
		RedisWarnThreshold:  getenvInt("REDIS_WARN_THRESHOLD", 3),
		ResolutionCacheTTL:  mustDuration("SITENAV_RESOLUTION_CACHE_TTL", time.Hour),

		// Access restrictions
		AllowedHosts: splitAndTrim(getenv("SITENAV_ALLOWED_HOSTS", "")),
		AllowedCIDRS: parseAllowedIPs(getenv("SITENAV_ALLOWED_CIDRS", "")),
		TrustProxy:   mustBool("SITENAV_TRUST_PROXY", false),
		CORSOrigins:  splitAndTrim(getenv("SITENAV_CORS_ORIGINS", "*")),

		RateLimitBurst:  getenvInt("SITENAV_RATE_LIMIT_BURST", 60),
		RateLimitPerMin: getenvInt("SITENAV_RATE_LIMIT_PER_MIN", 120),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var err error
	switch c.ExportFormat {
	case "ts", "json", "yaml":
	default:
		err = multierr.Append(err, fmt.Errorf("SITENAV_EXPORT_FORMAT must be ts, json or yaml, got %q", c.ExportFormat))
	}
	if c.ReloadInterval <= 0 {
		err = multierr.Append(err, fmt.Errorf("SITENAV_RELOAD_INTERVAL must be > 0, got %v", c.ReloadInterval))
	}
	if c.GCInterval <= 0 {
		err = multierr.Append(err, fmt.Errorf("SITENAV_GC_INTERVAL must be > 0, got %v", c.GCInterval))
	}
	if c.WatchDebounce < 0 {
		err = multierr.Append(err, fmt.Errorf("SITENAV_WATCH_DEBOUNCE must be >= 0, got %v", c.WatchDebounce))
	}
	if c.RevisionHistory < 1 {
		err = multierr.Append(err, fmt.Errorf("SITENAV_REVISION_HISTORY must be >= 1, got %d", c.RevisionHistory))
	}
	if c.RedisAddr == "" && c.RedisPassword != "" {
		err = multierr.Append(err, fmt.Errorf("SITENAV_REDIS_PASSWORD is set but SITENAV_REDIS_ADDR is empty"))
	}
	return err
}

// RedisEnabled reports whether snapshots are persisted.
func (c *Config) RedisEnabled() bool {
	return c.RedisAddr != ""
}

// Redacted returns a copy safe to log.
func (c Config) Redacted() Config {
	if c.RedisPassword != "" {
		c.RedisPassword = "***REDACTED***"
	}
	if c.RedisUser != "" {
		c.RedisUser = "***REDACTED***"
	}
	return c
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func parseAllowedIPs(allowed string) []string {
	if allowed == "" {
		return nil
	}
	ips := make([]string, 0, 4)
	for _, ip := range splitAndTrim(allowed) {
		if ip != "" {
			ips = append(ips, ip)
		}
	}
	return ips
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		trimmed := strings.TrimSpace(part)
		// Remove surrounding quotes if present
		trimmed = strings.Trim(trimmed, `"'`)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
