package index

import (
	"sync"
	"testing"
	"time"

	"github.com/Silverados/sitenav/internal/domain"
	"github.com/Silverados/sitenav/internal/navtree"
	"github.com/Silverados/sitenav/internal/site"
)

func newSnapshot(t *testing.T, s *domain.Site) *domain.Snapshot {
	t.Helper()
	snap, err := domain.NewSnapshot(s, "test", time.Now())
	if err != nil {
		t.Fatalf("NewSnapshot() error = %v", err)
	}
	return snap
}

func TestNewSiteIndex(t *testing.T) {
	idx := NewSiteIndex()
	if idx.Current() != nil {
		t.Error("NewSiteIndex() should start without a snapshot")
	}
	if idx.Ready() {
		t.Error("empty index should not be ready")
	}
	if _, _, ok := idx.ResolveSidebar("/misc/a"); ok {
		t.Error("empty index should resolve nothing")
	}
	if !idx.LastReload().IsZero() {
		t.Error("LastReload() should be zero before any update")
	}
}

func TestUpdate(t *testing.T) {
	idx := NewSiteIndex()

	if idx.Update(nil) {
		t.Error("Update(nil) should be ignored")
	}

	first := newSnapshot(t, site.Default())
	if !idx.Update(first) {
		t.Fatal("first Update() should publish")
	}
	if idx.Current() != first || !idx.Ready() {
		t.Error("Current() should return the published snapshot")
	}

	same := newSnapshot(t, site.Default())
	if idx.Update(same) {
		t.Error("Update() with an unchanged digest should report false")
	}
	if idx.Current() != first {
		t.Error("unchanged digest should keep the previous snapshot")
	}

	changed := site.Default()
	changed.Title = "Changed"
	if !idx.Update(newSnapshot(t, changed)) {
		t.Error("Update() with a new digest should publish")
	}

	if idx.Reloads() != 2 {
		t.Errorf("Reloads() = %d, want 2", idx.Reloads())
	}
	if idx.LastReload().IsZero() {
		t.Error("LastReload() should be set")
	}
}

func TestResolveSidebar(t *testing.T) {
	idx := NewSiteIndex()
	idx.Update(newSnapshot(t, site.Default()))

	key, items, ok := idx.ResolveSidebar("/java/netty/Netty_TLS")
	if !ok {
		t.Fatal("ResolveSidebar() found nothing")
	}
	if key != navtree.KeyJavaNetty {
		t.Errorf("key = %q, want %q", key, navtree.KeyJavaNetty)
	}
	if len(items) != len(navtree.SidebarNetty()) {
		t.Errorf("items = %d, want %d", len(items), len(navtree.SidebarNetty()))
	}
}

func TestConcurrentAccess(t *testing.T) {
	idx := NewSiteIndex()
	idx.Update(newSnapshot(t, site.Default()))

	snaps := make([]*domain.Snapshot, 10)
	for i := range snaps {
		s := site.Default()
		s.Description = string(rune('a' + i))
		snaps[i] = newSnapshot(t, s)
	}

	var wg sync.WaitGroup

	// Concurrent reads
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if idx.Current() == nil {
				t.Error("Current() returned nil during updates")
			}
			_, _, _ = idx.ResolveSidebar("/misc/x")
		}()
	}

	// Concurrent publishes
	for _, snap := range snaps {
		wg.Add(1)
		go func(s *domain.Snapshot) {
			defer wg.Done()
			idx.Update(s)
		}(snap)
	}

	wg.Wait()

	if idx.Reloads() != 11 {
		t.Errorf("Reloads() = %d, want 11", idx.Reloads())
	}
}
