package index

import (
	"sync"
	"time"

	"github.com/Silverados/sitenav/internal/domain"
)

// SiteIndex holds the published site snapshot in memory.
// It is written by the reloader and read by every request; snapshots are
// never mutated once stored.
type SiteIndex struct {
	mu         sync.RWMutex
	current    *domain.Snapshot
	lastReload time.Time // last Update call, changed or not
	reloads    int       // snapshots published
}

// NewSiteIndex creates an empty index
func NewSiteIndex() *SiteIndex {
	return &SiteIndex{}
}

// Update publishes snap and reports whether it replaced the current one.
// A snapshot with the current digest only refreshes the reload time.
func (idx *SiteIndex) Update(snap *domain.Snapshot) bool {
	if snap == nil {
		return false
	}

	idx.mu.Lock()
	defer idx.mu.Unlock()

	idx.lastReload = time.Now()
	if idx.current != nil && idx.current.Digest == snap.Digest {
		return false
	}
	idx.current = snap
	idx.reloads++
	return true
}

// Current returns the published snapshot, or nil before the first load.
func (idx *SiteIndex) Current() *domain.Snapshot {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return idx.current
}

// Ready reports whether a snapshot has been published.
func (idx *SiteIndex) Ready() bool {
	return idx.Current() != nil
}

// ResolveSidebar returns the sidebar section serving pagePath.
func (idx *SiteIndex) ResolveSidebar(pagePath string) (string, []domain.NavItem, bool) {
	snap := idx.Current()
	if snap == nil || snap.Site == nil {
		return "", nil, false
	}
	return snap.Site.ThemeConfig.Sidebar.Resolve(pagePath)
}

// LastReload returns the time of the last Update call
func (idx *SiteIndex) LastReload() time.Time {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return idx.lastReload
}

// Reloads returns how many snapshots have been published
func (idx *SiteIndex) Reloads() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return idx.reloads
}
