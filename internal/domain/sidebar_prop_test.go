package domain

import (
	"strings"
	"testing"

	"pgregory.net/rapid"
)

var segment = rapid.SampledFrom([]string{"java", "netty", "misc", "algorithms", "sorts"})

func genKey() *rapid.Generator[string] {
	return rapid.Custom(func(t *rapid.T) string {
		return strings.Join(rapid.SliceOfN(segment, 1, 3).Draw(t, "segments"), "/")
	})
}

func underKey(page, key string) bool {
	prefix := "/" + key
	return page == prefix || strings.HasPrefix(page, prefix+"/")
}

// Resolution always returns the deepest key containing the page.
func TestSidebarResolveDeepest(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		keys := rapid.SliceOfNDistinct(genKey(), 1, 6, rapid.ID[string]).Draw(t, "keys")
		sb := make(Sidebar, len(keys))
		for _, k := range keys {
			sb[k] = []NavItem{{Text: k, Link: "/" + k}}
		}

		base := rapid.SampledFrom(keys).Draw(t, "base")
		tail := rapid.SliceOfN(segment, 0, 2).Draw(t, "tail")
		page := "/" + strings.Join(append([]string{base}, tail...), "/")

		got, items, ok := sb.Resolve(page)
		if !ok {
			t.Fatalf("Resolve(%q) found nothing, keys %v", page, keys)
		}
		if !underKey(page, got) {
			t.Fatalf("Resolve(%q) = %q, which does not contain the page", page, got)
		}
		if len(items) != 1 || items[0].Text != got {
			t.Fatalf("Resolve(%q) returned the items of another key", page)
		}
		for _, k := range keys {
			if underKey(page, k) && depth(k) > depth(got) {
				t.Fatalf("Resolve(%q) = %q, but %q is deeper", page, got, k)
			}
		}
	})
}
