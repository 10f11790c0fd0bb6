package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Silverados/sitenav/internal/domain"
)

const (
	// DefaultCacheTTL is the default TTL for cached resolutions (1 hour)
	DefaultCacheTTL = time.Hour
)

// Revision is one entry of the snapshot history.
type Revision struct {
	Digest   string    `json:"digest"`
	LoadedAt time.Time `json:"loaded_at"`
}

// Store persists snapshots and the resolution cache in Redis
type Store struct {
	client redis.Cmdable
}

// NewStore creates a new Redis store
func NewStore(client redis.Cmdable) *Store {
	return &Store{
		client: client,
	}
}

// Ping checks the connection
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// SaveSnapshot stores snap, records it in the history and marks it current.
func (s *Store) SaveSnapshot(ctx context.Context, snap *domain.Snapshot) error {
	if snap == nil {
		return fmt.Errorf("failed to save snapshot: nil snapshot")
	}
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, RevisionKey(snap.Digest), data, 0)
		pipe.ZAdd(ctx, KeyRevisions, redis.Z{
			Score:  float64(snap.LoadedAt.UnixMilli()),
			Member: snap.Digest,
		})
		pipe.Set(ctx, KeyCurrent, snap.Digest, 0)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}

// CurrentSnapshot returns the snapshot marked current, or nil when Redis
// holds none.
func (s *Store) CurrentSnapshot(ctx context.Context) (*domain.Snapshot, error) {
	digest, err := s.client.Get(ctx, KeyCurrent).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get current digest: %w", err)
	}
	return s.Snapshot(ctx, digest)
}

// Snapshot returns the stored snapshot with digest, or nil when missing.
func (s *Store) Snapshot(ctx context.Context, digest string) (*domain.Snapshot, error) {
	data, err := s.client.Get(ctx, RevisionKey(digest)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get snapshot %s: %w", digest, err)
	}

	var snap domain.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot %s: %w", digest, err)
	}
	if snap.Site == nil {
		return nil, fmt.Errorf("snapshot %s has no site", digest)
	}
	return &snap, nil
}

// Revisions lists the history, newest first.
func (s *Store) Revisions(ctx context.Context) ([]Revision, error) {
	zs, err := s.client.ZRevRangeWithScores(ctx, KeyRevisions, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list revisions: %w", err)
	}
	return toRevisions(zs), nil
}

// PruneRevisions deletes all but the keep newest revisions and returns how
// many were removed. The current revision is never removed.
func (s *Store) PruneRevisions(ctx context.Context, keep int) (int, error) {
	if keep < 1 {
		return 0, fmt.Errorf("keep must be >= 1, got %d", keep)
	}

	revs, err := s.Revisions(ctx)
	if err != nil {
		return 0, err
	}
	current, err := s.client.Get(ctx, KeyCurrent).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return 0, fmt.Errorf("failed to get current digest: %w", err)
	}

	stale := pruneCandidates(revs, keep, current)
	if len(stale) == 0 {
		return 0, nil
	}

	pipe := s.client.Pipeline()
	members := make([]interface{}, 0, len(stale))
	for _, digest := range stale {
		pipe.Del(ctx, RevisionKey(digest))
		members = append(members, digest)
	}
	pipe.ZRem(ctx, KeyRevisions, members...)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("failed to prune revisions: %w", err)
	}
	return len(stale), nil
}

// pruneCandidates returns the digests beyond the keep newest, skipping current.
// revs must be sorted newest first.
func pruneCandidates(revs []Revision, keep int, current string) []string {
	if len(revs) <= keep {
		return nil
	}
	var out []string
	for _, r := range revs[keep:] {
		if r.Digest == current {
			continue
		}
		out = append(out, r.Digest)
	}
	return out
}

func toRevisions(zs []redis.Z) []Revision {
	out := make([]Revision, 0, len(zs))
	for _, z := range zs {
		digest, ok := z.Member.(string)
		if !ok {
			continue
		}
		out = append(out, Revision{
			Digest:   digest,
			LoadedAt: time.UnixMilli(int64(z.Score)).UTC(),
		})
	}
	return out
}
