package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/Silverados/sitenav/internal/logger"
)

const (
	// DefaultRevisionHistory is the number of snapshots kept when unset
	DefaultRevisionHistory = 20
)

// RevisionCollector prunes old snapshots from Redis
type RevisionCollector struct {
	store    SnapshotStore
	logger   logger.Logger
	interval time.Duration
	keep     int
}

// NewRevisionCollector creates a new revision collector
func NewRevisionCollector(
	store SnapshotStore,
	log logger.Logger,
	interval time.Duration,
	keep int,
) *RevisionCollector {
	if keep <= 0 {
		keep = DefaultRevisionHistory
	}

	return &RevisionCollector{
		store:    store,
		logger:   log,
		interval: interval,
		keep:     keep,
	}
}

// Run collects once immediately, then on every tick until ctx is done.
func (rc *RevisionCollector) Run(ctx context.Context) error {
	if err := rc.Collect(ctx); err != nil {
		rc.logger.Warn("initial revision collection failed",
			logger.Error(err))
	}

	ticker := time.NewTicker(rc.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if err := rc.Collect(ctx); err != nil {
				rc.logger.Error("revision collection failed",
					logger.Error(err))
			}
		case <-ctx.Done():
			return nil
		}
	}
}

// Collect removes the revisions beyond the configured history
func (rc *RevisionCollector) Collect(ctx context.Context) error {
	rc.logger.Debug("running revision collection", logger.Int("keep", rc.keep))

	deleted, err := rc.store.PruneRevisions(ctx, rc.keep)
	if err != nil {
		return fmt.Errorf("failed to prune revisions: %w", err)
	}

	if deleted > 0 {
		rc.logger.Info("revision collection completed",
			logger.Int("deleted", deleted),
			logger.Int("kept", rc.keep))
	} else {
		rc.logger.Debug("no revisions to collect")
	}

	return nil
}
