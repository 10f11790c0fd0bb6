package scheduler

import (
	"context"

	"github.com/Silverados/sitenav/internal/domain"
)

// Source yields the site document. Implemented by site.Builtin and
// sitefile.Source.
type Source interface {
	Name() string
	Load() (*domain.Site, error)
}

// SnapshotStore is the persistence the background jobs rely on.
// Implemented by the Redis store; a nil SnapshotStore disables persistence.
type SnapshotStore interface {
	SaveSnapshot(ctx context.Context, snap *domain.Snapshot) error
	CurrentSnapshot(ctx context.Context) (*domain.Snapshot, error)
	PruneRevisions(ctx context.Context, keep int) (int, error)
	FlushCache(ctx context.Context) (int, error)
}
