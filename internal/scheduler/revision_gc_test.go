package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/Silverados/sitenav/internal/logger"
)

func TestRevisionCollector_Collect(t *testing.T) {
	store := &fakeStore{}
	rc := NewRevisionCollector(store, logger.New("error", false), 24*time.Hour, 5)

	if err := rc.Collect(context.Background()); err != nil {
		t.Fatalf("Collect failed: %v", err)
	}
	if len(store.pruned) != 1 || store.pruned[0] != 5 {
		t.Errorf("PruneRevisions calls = %v, want [5]", store.pruned)
	}
}

func TestRevisionCollector_DefaultKeep(t *testing.T) {
	store := &fakeStore{}
	rc := NewRevisionCollector(store, logger.Nop(), time.Hour, 0)

	if err := rc.Collect(context.Background()); err != nil {
		t.Fatalf("Collect failed: %v", err)
	}
	if store.pruned[0] != DefaultRevisionHistory {
		t.Errorf("keep = %d, want %d", store.pruned[0], DefaultRevisionHistory)
	}
}

func TestRevisionCollector_RunStops(t *testing.T) {
	store := &fakeStore{}
	rc := NewRevisionCollector(store, logger.Nop(), time.Hour, 2)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- rc.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run() error = %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run() did not stop on cancel")
	}
	if len(store.pruned) != 1 {
		t.Errorf("Run() should collect once on start, got %d calls", len(store.pruned))
	}
}
