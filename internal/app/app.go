package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/Silverados/sitenav/internal/config"
	"github.com/Silverados/sitenav/internal/export"
	"github.com/Silverados/sitenav/internal/httpserver"
	"github.com/Silverados/sitenav/internal/httpserver/deps"
	"github.com/Silverados/sitenav/internal/index"
	"github.com/Silverados/sitenav/internal/logger"
	"github.com/Silverados/sitenav/internal/metrics"
	"github.com/Silverados/sitenav/internal/redis"
	"github.com/Silverados/sitenav/internal/scheduler"
	"github.com/Silverados/sitenav/internal/site"
	"github.com/Silverados/sitenav/internal/sources/sitefile"
	redisstore "github.com/Silverados/sitenav/internal/store/redis"
	"github.com/Silverados/sitenav/internal/utils"
	"github.com/Silverados/sitenav/internal/version"
)

type App struct {
	cfg         *config.Config
	logger      logger.Logger
	server      *httpserver.Server
	redisClient *goredis.Client
	store       *redisstore.Store
	siteIndex   *index.SiteIndex
	reloader    *scheduler.SiteReloader
	collector   *scheduler.RevisionCollector
	watcher     *scheduler.SiteWatcher
}

// NewSource returns the file source for path, or the built-in document when
// path is empty.
func NewSource(path string) scheduler.Source {
	if path == "" {
		return site.Builtin{}
	}
	return sitefile.NewSource(path, site.Default)
}

// New wires the service. Redis is connected only when configured; failing to
// reach a configured Redis is fatal.
func New(ctx context.Context, cfg *config.Config, loggerClient logger.Logger) (*App, error) {
	a := &App{
		cfg:       cfg,
		logger:    loggerClient,
		siteIndex: index.NewSiteIndex(),
	}

	if cfg.RedisEnabled() {
		client, err := redis.Connect(ctx, redis.ConnectOptions{
			Addr:           cfg.RedisAddr,
			User:           cfg.RedisUser,
			Password:       cfg.RedisPassword,
			RedisDB:        cfg.RedisDB,
			DialTimeout:    cfg.RedisDT,
			ReadTimeout:    cfg.RedisRT,
			WriteTimeout:   cfg.RedisWT,
			PoolSize:       cfg.RedisPoolSize,
			ConnectTimeout: cfg.RedisConnectTimeout,
			RetryInterval:  cfg.RedisRetryInterval,
			MaxWait:        cfg.RedisMaxWait,
			PingTimeout:    cfg.RedisPingTimeout,
			WarnThreshold:  cfg.RedisWarnThreshold,
		}, loggerClient)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		a.redisClient = client
		a.store = redisstore.NewStore(client)
	} else {
		loggerClient.Info("redis not configured, snapshots are kept in memory only")
	}

	m := metrics.New(version.Version)
	source := NewSource(cfg.SiteFile)

	// Interfaces stay nil without redis.
	var (
		snapStore scheduler.SnapshotStore
		cache     deps.ResolutionCache
	)
	if a.store != nil {
		snapStore = a.store
		cache = a.store
		a.collector = scheduler.NewRevisionCollector(snapStore, loggerClient, cfg.GCInterval, cfg.RevisionHistory)
	}

	a.reloader = scheduler.NewSiteReloader(source, snapStore, a.siteIndex, m, loggerClient, cfg.ReloadInterval)
	if cfg.ExportFile != "" {
		format, err := export.ParseFormat(cfg.ExportFormat)
		if err != nil {
			return nil, err
		}
		a.reloader.ExportTo(cfg.ExportFile, format)
	}
	if cfg.SiteFile != "" && cfg.WatchSiteFile {
		a.watcher = scheduler.NewSiteWatcher(cfg.SiteFile, a.reloader, loggerClient, cfg.WatchDebounce)
	}

	d := deps.Deps{
		Logger:          loggerClient,
		StartTime:       time.Now(),
		Version:         version.Version,
		Commit:          version.Commit,
		BuildDate:       version.BuildDate,
		GoVersion:       version.GoVersion,
		TimeNow:         time.Now,
		AllowedHosts:    cfg.AllowedHosts,
		AllowedCIDRS:    cfg.AllowedCIDRS,
		TrustProxy:      cfg.TrustProxy,
		CORSOrigins:     cfg.CORSOrigins,
		RateLimitBurst:  cfg.RateLimitBurst,
		RateLimitPerMin: cfg.RateLimitPerMin,
		SiteIndex:       a.siteIndex,
		SourceName:      source.Name(),
		Cache:           cache,
		CacheTTL:        cfg.ResolutionCacheTTL,
		Reloader:        a.reloader,
		Metrics:         m,
	}

	a.server = httpserver.New(cfg, loggerClient, d)
	return a, nil
}

// Run serves until ctx is cancelled or SIGINT/SIGTERM arrives.
func (a *App) Run(ctx context.Context) error {
	a.logger.Info("starting "+version.String(), logger.String("listen", a.cfg.ListenPort))

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	defer a.closeRedis()

	// Warm the index so a broken site file at startup still serves the last good document.
	if a.store != nil {
		if err := scheduler.NewRedisSyncer(a.store, a.siteIndex, a.logger).Sync(ctx); err != nil {
			a.logger.Warn("failed to sync from redis on startup, will load from source",
				logger.Error(err))
		}
	}

	if err := a.reloader.Start(ctx); err != nil {
		if !a.siteIndex.Ready() {
			return fmt.Errorf("failed to start site reloader: %w", err)
		}
		a.logger.Error("initial reload failed, serving the snapshot restored from redis",
			logger.Error(err))
	}
	a.logger.Info("site reloader started",
		logger.Duration("interval", a.cfg.ReloadInterval))

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error { return a.reloader.Run(gctx) })

	if a.collector != nil {
		g.Go(func() error { return a.collector.Run(gctx) })
		a.logger.Info("revision collector started",
			logger.Duration("interval", a.cfg.GCInterval),
			logger.Int("keep", a.cfg.RevisionHistory))
	}

	if a.watcher != nil {
		// Losing the watcher only costs latency; the ticker still reloads.
		g.Go(func() error {
			if err := a.watcher.Run(gctx); err != nil {
				a.logger.Warn("site file watcher stopped", logger.Error(err))
			}
			return nil
		})
	}

	g.Go(func() error {
		if err := a.server.Start(); err != nil {
			return fmt.Errorf("http server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		a.logger.Info("shutting down gracefully...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
		defer cancel()
		if err := a.server.Stop(shutdownCtx); err != nil {
			return fmt.Errorf("failed to stop server: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	a.logger.Info("sitenav stopped cleanly")
	return nil
}

func (a *App) closeRedis() {
	if a.redisClient != nil {
		utils.CloseLogged(a.redisClient, "redis", a.logger)
	}
}
