package domain

import "strings"

// NavItem is a navigation-menu node.
//
// A node is either a leaf (Link set) or a group (Items set). Both may be
// present for clickable group headers, in which case the header links to Link
// and the children are rendered beneath it.
type NavItem struct {
	// Text is the label shown in the menu.
	Text string `json:"text" yaml:"text"`

	// Link is the root-relative page path, e.g. /java/netty/Netty_TLS.
	Link string `json:"link,omitempty" yaml:"link,omitempty"`

	// Items are the children of a group, in display order.
	Items []NavItem `json:"items,omitempty" yaml:"items,omitempty"`

	// ActiveMatch marks the entry as active for every page under this prefix
	// instead of only for Link itself.
	ActiveMatch string `json:"activeMatch,omitempty" yaml:"activeMatch,omitempty"`

	// Collapsed is tri-state: nil means the group is not collapsible,
	// false means collapsible and open, true means collapsible and closed.
	Collapsed *bool `json:"collapsed,omitempty" yaml:"collapsed,omitempty"`
}

// IsLeaf reports whether the node has no children.
func (n NavItem) IsLeaf() bool {
	return len(n.Items) == 0
}

// IsGroup reports whether the node has children.
func (n NavItem) IsGroup() bool {
	return len(n.Items) > 0
}

// Clone returns a deep copy of the node.
func (n NavItem) Clone() NavItem {
	out := n
	if n.Collapsed != nil {
		c := *n.Collapsed
		out.Collapsed = &c
	}
	out.Items = CloneItems(n.Items)
	return out
}

// CloneItems deep-copies a list of nodes. A nil list stays nil.
func CloneItems(items []NavItem) []NavItem {
	if items == nil {
		return nil
	}
	out := make([]NavItem, len(items))
	for i, it := range items {
		out[i] = it.Clone()
	}
	return out
}

// Sidebar maps a URL path prefix to the groups shown alongside every page
// under that prefix. Key order carries no meaning; item order does.
type Sidebar map[string][]NavItem

// Clone returns a deep copy of the sidebar.
func (s Sidebar) Clone() Sidebar {
	if s == nil {
		return nil
	}
	out := make(Sidebar, len(s))
	for k, v := range s {
		out[k] = CloneItems(v)
	}
	return out
}

// Link is a flattened leaf of a navigation tree together with the labels of
// the groups above it.
type Link struct {
	Text  string   `json:"text" yaml:"text"`
	Link  string   `json:"link" yaml:"link"`
	Trail []string `json:"trail,omitempty" yaml:"trail,omitempty"`
	// Area is "nav" or the sidebar key the link was found under.
	Area string `json:"area" yaml:"area"`
}

// Walk visits every node depth-first in display order. trail holds the texts
// of the ancestors of the visited node.
func Walk(items []NavItem, fn func(trail []string, item NavItem)) {
	walk(items, nil, fn)
}

func walk(items []NavItem, trail []string, fn func([]string, NavItem)) {
	for _, it := range items {
		fn(trail, it)
		if it.IsGroup() {
			next := make([]string, len(trail), len(trail)+1)
			copy(next, trail)
			walk(it.Items, append(next, it.Text), fn)
		}
	}
}

// Links flattens every node carrying a link, headers included.
func Links(area string, items []NavItem) []Link {
	var out []Link
	Walk(items, func(trail []string, it NavItem) {
		if it.Link == "" {
			return
		}
		out = append(out, Link{
			Text:  it.Text,
			Link:  it.Link,
			Trail: trail,
			Area:  area,
		})
	})
	return out
}

// ensureStartingSlash turns "java/netty" into "/java/netty".
func ensureStartingSlash(p string) string {
	if strings.HasPrefix(p, "/") {
		return p
	}
	return "/" + p
}
