package domain

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Site is the configuration document handed to the static-site framework.
//
// Field names follow the framework's site-config schema so the JSON encoding
// can be consumed as-is.
type Site struct {
	// ─────────────────────────────
	// Site metadata
	// ─────────────────────────────

	Title       string    `json:"title" yaml:"title"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	LastUpdated bool      `json:"lastUpdated" yaml:"lastUpdated"`
	Head        []HeadTag `json:"head,omitempty" yaml:"head,omitempty"`

	// ─────────────────────────────
	// Framework integration
	// ─────────────────────────────

	// Extends carries the blog theme options the document is layered on.
	Extends *BlogTheme   `json:"extends,omitempty" yaml:"extends,omitempty"`
	Vite    *ViteOptions `json:"vite,omitempty" yaml:"vite,omitempty"`

	// ─────────────────────────────
	// Theme
	// ─────────────────────────────

	ThemeConfig ThemeConfig `json:"themeConfig" yaml:"themeConfig"`
}

// ThemeConfig holds the default-theme options.
type ThemeConfig struct {
	Nav             []NavItem    `json:"nav,omitempty" yaml:"nav,omitempty"`
	Sidebar         Sidebar      `json:"sidebar,omitempty" yaml:"sidebar,omitempty"`
	SocialLinks     []SocialLink `json:"socialLinks,omitempty" yaml:"socialLinks,omitempty"`
	Footer          *Footer      `json:"footer,omitempty" yaml:"footer,omitempty"`
	EditLink        *EditLink    `json:"editLink,omitempty" yaml:"editLink,omitempty"`
	LastUpdatedText string       `json:"lastUpdatedText,omitempty" yaml:"lastUpdatedText,omitempty"`
	Search          *Search      `json:"search,omitempty" yaml:"search,omitempty"`
}

type SocialLink struct {
	Icon string `json:"icon" yaml:"icon"`
	Link string `json:"link" yaml:"link"`
}

type Footer struct {
	Message   string `json:"message,omitempty" yaml:"message,omitempty"`
	Copyright string `json:"copyright,omitempty" yaml:"copyright,omitempty"`
}

// EditLink points each page at its source. Pattern must contain ":path".
type EditLink struct {
	Pattern string `json:"pattern" yaml:"pattern"`
	Text    string `json:"text,omitempty" yaml:"text,omitempty"`
}

type Search struct {
	Provider string `json:"provider" yaml:"provider"`
}

// BlogTheme is the option set of the blog theme the site extends.
type BlogTheme struct {
	Author    string       `json:"author,omitempty" yaml:"author,omitempty"`
	Friend    []FriendLink `json:"friend,omitempty" yaml:"friend,omitempty"`
	Recommend *Recommend   `json:"recommend,omitempty" yaml:"recommend,omitempty"`
	// Search selects the offline full-text search backend, e.g. "pagefind".
	Search string `json:"search,omitempty" yaml:"search,omitempty"`
}

type FriendLink struct {
	Nickname string `json:"nickname" yaml:"nickname"`
	Des      string `json:"des,omitempty" yaml:"des,omitempty"`
	Avatar   string `json:"avatar,omitempty" yaml:"avatar,omitempty"`
	URL      string `json:"url" yaml:"url"`
}

type Recommend struct {
	ShowSelf bool `json:"showSelf" yaml:"showSelf"`
}

type ViteOptions struct {
	OptimizeDeps *OptimizeDeps `json:"optimizeDeps,omitempty" yaml:"optimizeDeps,omitempty"`
}

type OptimizeDeps struct {
	Include []string `json:"include,omitempty" yaml:"include,omitempty"`
	Exclude []string `json:"exclude,omitempty" yaml:"exclude,omitempty"`
}

// HeadTag is one extra element injected into <head>. It encodes as the
// framework's [tag, attrs] tuple.
type HeadTag struct {
	Tag   string
	Attrs map[string]string
}

func (h HeadTag) MarshalJSON() ([]byte, error) {
	attrs := h.Attrs
	if attrs == nil {
		attrs = map[string]string{}
	}
	return json.Marshal([]interface{}{h.Tag, attrs})
}

func (h *HeadTag) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("head tag must be a [tag, attrs] tuple: %w", err)
	}
	if len(raw) < 1 || len(raw) > 2 {
		return fmt.Errorf("head tag must have 1 or 2 elements, got %d", len(raw))
	}
	if err := json.Unmarshal(raw[0], &h.Tag); err != nil {
		return fmt.Errorf("head tag name: %w", err)
	}
	h.Attrs = nil
	if len(raw) == 2 {
		if err := json.Unmarshal(raw[1], &h.Attrs); err != nil {
			return fmt.Errorf("head tag attrs: %w", err)
		}
	}
	return nil
}

func (h HeadTag) MarshalYAML() (interface{}, error) {
	attrs := h.Attrs
	if attrs == nil {
		attrs = map[string]string{}
	}
	return []interface{}{h.Tag, attrs}, nil
}

func (h *HeadTag) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode {
		return fmt.Errorf("line %d: head tag must be a [tag, attrs] sequence", node.Line)
	}
	if len(node.Content) < 1 || len(node.Content) > 2 {
		return fmt.Errorf("line %d: head tag must have 1 or 2 elements, got %d", node.Line, len(node.Content))
	}
	if err := node.Content[0].Decode(&h.Tag); err != nil {
		return err
	}
	h.Attrs = nil
	if len(node.Content) == 2 {
		if err := node.Content[1].Decode(&h.Attrs); err != nil {
			return err
		}
	}
	return nil
}

// Clone returns a deep copy of the document.
func (s *Site) Clone() *Site {
	if s == nil {
		return nil
	}
	out := *s
	if s.Head != nil {
		out.Head = make([]HeadTag, len(s.Head))
		for i, h := range s.Head {
			out.Head[i] = HeadTag{Tag: h.Tag, Attrs: cloneStrings(h.Attrs)}
		}
	}
	if s.Extends != nil {
		ext := *s.Extends
		ext.Friend = append([]FriendLink(nil), s.Extends.Friend...)
		if s.Extends.Recommend != nil {
			r := *s.Extends.Recommend
			ext.Recommend = &r
		}
		out.Extends = &ext
	}
	if s.Vite != nil {
		v := *s.Vite
		if s.Vite.OptimizeDeps != nil {
			od := OptimizeDeps{
				Include: append([]string(nil), s.Vite.OptimizeDeps.Include...),
				Exclude: append([]string(nil), s.Vite.OptimizeDeps.Exclude...),
			}
			v.OptimizeDeps = &od
		}
		out.Vite = &v
	}
	out.ThemeConfig = s.ThemeConfig.clone()
	return &out
}

func (t ThemeConfig) clone() ThemeConfig {
	out := t
	out.Nav = CloneItems(t.Nav)
	out.Sidebar = t.Sidebar.Clone()
	out.SocialLinks = append([]SocialLink(nil), t.SocialLinks...)
	if t.Footer != nil {
		f := *t.Footer
		out.Footer = &f
	}
	if t.EditLink != nil {
		e := *t.EditLink
		out.EditLink = &e
	}
	if t.Search != nil {
		s := *t.Search
		out.Search = &s
	}
	return out
}

func cloneStrings(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// AllLinks flattens the nav and every sidebar section. Sidebar sections are
// visited in key order so the result is stable.
func (s *Site) AllLinks() []Link {
	out := Links("nav", s.ThemeConfig.Nav)
	for _, key := range s.ThemeConfig.Sidebar.Keys() {
		out = append(out, Links(key, s.ThemeConfig.Sidebar[key])...)
	}
	return out
}
