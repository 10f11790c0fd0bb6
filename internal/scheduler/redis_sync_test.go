package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/Silverados/sitenav/internal/domain"
	"github.com/Silverados/sitenav/internal/index"
	"github.com/Silverados/sitenav/internal/logger"
	"github.com/Silverados/sitenav/internal/site"
)

func TestRedisSyncer_Sync(t *testing.T) {
	snap, err := domain.NewSnapshot(site.Default(), "builtin", time.Now())
	if err != nil {
		t.Fatalf("NewSnapshot() error = %v", err)
	}
	store := &fakeStore{current: snap}
	idx := index.NewSiteIndex()

	if err := NewRedisSyncer(store, idx, logger.Nop()).Sync(context.Background()); err != nil {
		t.Fatalf("Sync() error = %v", err)
	}
	if idx.Current() != snap {
		t.Error("Sync() did not publish the stored snapshot")
	}
}

func TestRedisSyncer_SyncEmpty(t *testing.T) {
	idx := index.NewSiteIndex()
	if err := NewRedisSyncer(&fakeStore{}, idx, logger.Nop()).Sync(context.Background()); err != nil {
		t.Fatalf("Sync() error = %v", err)
	}
	if idx.Ready() {
		t.Error("empty store should leave the index empty")
	}
}

func TestRedisSyncer_SyncInvalid(t *testing.T) {
	broken := site.Default()
	broken.Title = ""
	snap, _ := domain.NewSnapshot(broken, "builtin", time.Now())

	idx := index.NewSiteIndex()
	if err := NewRedisSyncer(&fakeStore{current: snap}, idx, logger.Nop()).Sync(context.Background()); err == nil {
		t.Error("Sync() should reject an invalid stored snapshot")
	}
	if idx.Ready() {
		t.Error("invalid snapshot was published")
	}
}
