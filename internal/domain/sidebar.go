package domain

import (
	"sort"
	"strings"
)

// Keys returns the sidebar keys sorted lexically.
func (s Sidebar) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Resolve finds the sidebar shown on pagePath.
//
// Keys are tried deepest first (by segment count, ties broken lexically) and
// match when the page path equals the key or continues with "/" after it.
// Both sides are compared with a leading slash, so "java/netty" and
// "/java/netty" are the same key.
func (s Sidebar) Resolve(pagePath string) (key string, items []NavItem, ok bool) {
	if len(s) == 0 {
		return "", nil, false
	}
	page := normalizePagePath(pagePath)

	keys := s.Keys()
	sort.SliceStable(keys, func(i, j int) bool {
		return depth(keys[i]) > depth(keys[j])
	})

	for _, k := range keys {
		prefix := strings.TrimSuffix(ensureStartingSlash(k), "/")
		if prefix == "" {
			// root sidebar matches everything
			return k, s[k], true
		}
		if page == prefix || strings.HasPrefix(page, prefix+"/") {
			return k, s[k], true
		}
	}
	return "", nil, false
}

func normalizePagePath(p string) string {
	p = strings.TrimSpace(p)
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	return ensureStartingSlash(p)
}

func depth(key string) int {
	key = strings.Trim(key, "/")
	if key == "" {
		return 0
	}
	return strings.Count(key, "/") + 1
}
