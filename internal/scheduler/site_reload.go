package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/Silverados/sitenav/internal/domain"
	"github.com/Silverados/sitenav/internal/export"
	"github.com/Silverados/sitenav/internal/index"
	"github.com/Silverados/sitenav/internal/logger"
	"github.com/Silverados/sitenav/internal/metrics"
)

// SiteReloader loads the document from its source and publishes it.
//
// It is the only writer of the index. Reloads run on a ticker and on demand;
// an invalid document is reported and the previous snapshot stays published.
type SiteReloader struct {
	source   Source
	store    SnapshotStore
	index    *index.SiteIndex
	metrics  *metrics.Metrics
	logger   logger.Logger
	interval time.Duration
	trigger  chan struct{}

	exportPath   string
	exportFormat export.Format
}

// NewSiteReloader creates a new site reloader. store and m may be nil.
func NewSiteReloader(
	source Source,
	store SnapshotStore,
	idx *index.SiteIndex,
	m *metrics.Metrics,
	log logger.Logger,
	interval time.Duration,
) *SiteReloader {
	return &SiteReloader{
		source:   source,
		store:    store,
		index:    idx,
		metrics:  m,
		logger:   log.With(logger.String("source", source.Name())),
		interval: interval,
		trigger:  make(chan struct{}, 1),
	}
}

// ExportTo makes every published change rewrite path in format f.
func (sr *SiteReloader) ExportTo(path string, f export.Format) *SiteReloader {
	sr.exportPath = path
	sr.exportFormat = f
	return sr
}

// Trigger requests a reload. It returns false when one is already pending.
func (sr *SiteReloader) Trigger() bool {
	select {
	case sr.trigger <- struct{}{}:
		return true
	default:
		return false
	}
}

// Start performs the initial load, which must succeed.
func (sr *SiteReloader) Start(ctx context.Context) error {
	if _, err := sr.Reload(ctx); err != nil {
		return fmt.Errorf("initial reload failed: %w", err)
	}
	// The index may have been warmed with the same digest, in which case
	// Reload published nothing: gauges are still zero and the export file
	// may be missing.
	if current := sr.index.Current(); current != nil {
		sr.publishGauges(current)
		sr.export(current)
	}
	return nil
}

// Run reloads on every tick and trigger until ctx is done.
func (sr *SiteReloader) Run(ctx context.Context) error {
	ticker := time.NewTicker(sr.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			sr.reloadLogged(ctx)
		case <-sr.trigger:
			sr.logger.Info("manual reload triggered")
			sr.reloadLogged(ctx)
		case <-ctx.Done():
			return nil
		}
	}
}

func (sr *SiteReloader) reloadLogged(ctx context.Context) {
	if _, err := sr.Reload(ctx); err != nil {
		sr.logger.Error("failed to reload site", logger.Error(err))
	}
}

// Reload loads, validates and publishes the document. It reports whether a
// new snapshot was published.
func (sr *SiteReloader) Reload(ctx context.Context) (bool, error) {
	start := time.Now()
	defer sr.observeDuration(start)

	site, err := sr.source.Load()
	if err != nil {
		sr.count(metrics.ResultError)
		return false, fmt.Errorf("failed to load site: %w", err)
	}

	if err := domain.Validate(site); err != nil {
		sr.count(metrics.ResultInvalid)
		problems := domain.Problems(err)
		for _, p := range problems {
			sr.logger.Warn("invalid site document",
				logger.String("path", p.Path),
				logger.String("problem", p.Message))
		}
		return false, fmt.Errorf("site has %d problem(s): %w", len(problems), err)
	}

	snap, err := domain.NewSnapshot(site, sr.source.Name(), time.Now())
	if err != nil {
		sr.count(metrics.ResultError)
		return false, err
	}

	if !sr.index.Update(snap) {
		sr.count(metrics.ResultUnchanged)
		sr.logger.Debug("site unchanged", logger.String("digest", snap.Digest))
		return false, nil
	}

	sr.count(metrics.ResultChanged)
	sr.publishGauges(snap)
	sr.logger.Info("published site snapshot",
		logger.String("digest", snap.Digest),
		logger.Int("sidebar_sections", len(site.ThemeConfig.Sidebar)),
		logger.Int("links", len(site.AllLinks())))

	// Update Redis store (best effort)
	if sr.store != nil {
		if err := sr.store.SaveSnapshot(ctx, snap); err != nil {
			sr.logger.Warn("failed to save snapshot to redis", logger.Error(err))
		}
		if n, err := sr.store.FlushCache(ctx); err != nil {
			sr.logger.Warn("failed to flush resolution cache", logger.Error(err))
		} else if n > 0 {
			sr.logger.Debug("flushed resolution cache", logger.Int("keys", n))
		}
	}

	sr.export(snap)
	return true, nil
}

func (sr *SiteReloader) export(snap *domain.Snapshot) {
	if sr.exportPath == "" || snap == nil {
		return
	}
	if err := export.WriteFile(sr.exportPath, snap.Site, sr.exportFormat); err != nil {
		sr.logger.Error("failed to export site",
			logger.String("path", sr.exportPath),
			logger.Error(err))
		return
	}
	sr.logger.Info("exported site",
		logger.String("path", sr.exportPath),
		logger.String("format", string(sr.exportFormat)))
}

func (sr *SiteReloader) count(result string) {
	if sr.metrics != nil {
		sr.metrics.ReloadsTotal.WithLabelValues(result).Inc()
	}
}

func (sr *SiteReloader) observeDuration(start time.Time) {
	if sr.metrics != nil {
		sr.metrics.ReloadDurationSeconds.Observe(time.Since(start).Seconds())
	}
}

func (sr *SiteReloader) publishGauges(snap *domain.Snapshot) {
	if sr.metrics == nil {
		return
	}
	sr.metrics.SnapshotTimestamp.Set(float64(snap.LoadedAt.Unix()))
	sr.metrics.SidebarKeys.Set(float64(len(snap.Site.ThemeConfig.Sidebar)))
	sr.metrics.NavLinks.Set(float64(len(snap.Site.AllLinks())))
}
