package scheduler

import (
	"context"
	"fmt"

	"github.com/Silverados/sitenav/internal/domain"
	"github.com/Silverados/sitenav/internal/index"
	"github.com/Silverados/sitenav/internal/logger"
)

// RedisSyncer warms the memory index from Redis on startup
type RedisSyncer struct {
	store  SnapshotStore
	index  *index.SiteIndex
	logger logger.Logger
}

// NewRedisSyncer creates a new Redis syncer
func NewRedisSyncer(
	store SnapshotStore,
	idx *index.SiteIndex,
	log logger.Logger,
) *RedisSyncer {
	return &RedisSyncer{
		store:  store,
		index:  idx,
		logger: log,
	}
}

// Sync publishes the snapshot stored in Redis, if any and if valid.
func (rs *RedisSyncer) Sync(ctx context.Context) error {
	rs.logger.Info("syncing site snapshot from redis to memory")

	snap, err := rs.store.CurrentSnapshot(ctx)
	if err != nil {
		return err
	}

	if snap == nil {
		rs.logger.Info("no snapshot found in redis")
		return nil
	}

	if err := domain.Validate(snap.Site); err != nil {
		return fmt.Errorf("stored snapshot %s is invalid: %w", snap.Digest, err)
	}

	rs.index.Update(snap)

	rs.logger.Info("synced snapshot from redis",
		logger.String("digest", snap.Digest),
		logger.String("source", snap.Source),
		logger.Time("loaded_at", snap.LoadedAt))

	return nil
}
