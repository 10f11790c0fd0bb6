package scheduler

import (
	"context"
	"errors"
	"sync"

	"github.com/Silverados/sitenav/internal/domain"
)

type fakeSource struct {
	mu   sync.Mutex
	site *domain.Site
	err  error
}

func (f *fakeSource) Name() string { return "fake" }

func (f *fakeSource) Load() (*domain.Site, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return f.site.Clone(), nil
}

func (f *fakeSource) set(s *domain.Site, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.site, f.err = s, err
}

type fakeStore struct {
	mu       sync.Mutex
	saved    []*domain.Snapshot
	current  *domain.Snapshot
	flushes  int
	pruned   []int
	failSave bool
}

func (f *fakeStore) SaveSnapshot(_ context.Context, snap *domain.Snapshot) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failSave {
		return errors.New("redis down")
	}
	f.saved = append(f.saved, snap)
	f.current = snap
	return nil
}

func (f *fakeStore) CurrentSnapshot(context.Context) (*domain.Snapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.current, nil
}

func (f *fakeStore) PruneRevisions(_ context.Context, keep int) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pruned = append(f.pruned, keep)
	return 3, nil
}

func (f *fakeStore) FlushCache(context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.flushes++
	return 0, nil
}
