package domain

import (
	"fmt"
	"net/url"
	"strings"

	"go.uber.org/multierr"
)

// Problem is a single validation failure located inside the document.
type Problem struct {
	// Path locates the offending value, e.g. themeConfig.nav[0].items[2].
	Path    string
	Message string
}

func (p *Problem) Error() string {
	return fmt.Sprintf("%s: %s", p.Path, p.Message)
}

// Problems unpacks an error returned by Validate into its individual problems.
func Problems(err error) []*Problem {
	var out []*Problem
	for _, e := range multierr.Errors(err) {
		if p, ok := e.(*Problem); ok {
			out = append(out, p)
		}
	}
	return out
}

var searchProviders = map[string]bool{
	"local":   true,
	"algolia": true,
}

// Validate checks the whole document and reports every problem found.
// The returned error combines *Problem values (see Problems).
func Validate(s *Site) error {
	if s == nil {
		return &Problem{Path: "", Message: "document is nil"}
	}

	var err error
	if strings.TrimSpace(s.Title) == "" {
		err = multierr.Append(err, &Problem{Path: "title", Message: "must not be empty"})
	}
	for i, h := range s.Head {
		if h.Tag == "" {
			err = multierr.Append(err, &Problem{Path: fmt.Sprintf("head[%d]", i), Message: "tag must not be empty"})
		}
	}

	tc := s.ThemeConfig
	err = multierr.Append(err, ValidateItems("themeConfig.nav", tc.Nav))
	err = multierr.Append(err, ValidateSidebar("themeConfig.sidebar", tc.Sidebar))

	for i, sl := range tc.SocialLinks {
		p := fmt.Sprintf("themeConfig.socialLinks[%d]", i)
		if sl.Icon == "" {
			err = multierr.Append(err, &Problem{Path: p, Message: "icon must not be empty"})
		}
		if !isAbsoluteHTTP(sl.Link) {
			err = multierr.Append(err, &Problem{Path: p, Message: fmt.Sprintf("link %q must be an absolute http(s) URL", sl.Link)})
		}
	}
	if tc.EditLink != nil && !strings.Contains(tc.EditLink.Pattern, ":path") {
		err = multierr.Append(err, &Problem{Path: "themeConfig.editLink.pattern", Message: "must contain :path"})
	}
	if tc.Search != nil && !searchProviders[tc.Search.Provider] {
		err = multierr.Append(err, &Problem{
			Path:    "themeConfig.search.provider",
			Message: fmt.Sprintf("unknown provider %q (want local or algolia)", tc.Search.Provider),
		})
	}

	if s.Extends != nil {
		for i, f := range s.Extends.Friend {
			p := fmt.Sprintf("extends.friend[%d]", i)
			if f.Nickname == "" {
				err = multierr.Append(err, &Problem{Path: p, Message: "nickname must not be empty"})
			}
			if !isAbsoluteHTTP(f.URL) {
				err = multierr.Append(err, &Problem{Path: p, Message: fmt.Sprintf("url %q must be an absolute http(s) URL", f.URL)})
			}
		}
	}
	return err
}

// ValidateSidebar checks the keys and every section of a sidebar.
func ValidateSidebar(path string, sb Sidebar) error {
	var err error
	seen := make(map[string]string, len(sb))
	for _, key := range sb.Keys() {
		p := fmt.Sprintf("%s[%s]", path, key)
		if strings.TrimSpace(key) == "" {
			err = multierr.Append(err, &Problem{Path: p, Message: "key must not be empty"})
			continue
		}
		if strings.TrimSpace(key) != key {
			err = multierr.Append(err, &Problem{Path: p, Message: "key must not have surrounding whitespace"})
		}
		norm := strings.TrimSuffix(ensureStartingSlash(key), "/")
		if other, dup := seen[norm]; dup {
			err = multierr.Append(err, &Problem{Path: p, Message: fmt.Sprintf("key collides with %q", other)})
		} else {
			seen[norm] = key
		}
		err = multierr.Append(err, ValidateItems(p, sb[key]))
	}
	return err
}

// ValidateItems checks a list of sibling nodes and, recursively, their children.
func ValidateItems(path string, items []NavItem) error {
	var err error
	type pair struct{ text, link string }
	seen := make(map[pair]int, len(items))

	for i, it := range items {
		p := fmt.Sprintf("%s[%d]", path, i)

		if strings.TrimSpace(it.Text) == "" {
			err = multierr.Append(err, &Problem{Path: p, Message: "text must not be empty"})
		}
		if it.Items != nil && len(it.Items) == 0 {
			err = multierr.Append(err, &Problem{Path: p, Message: "group has no items"})
		}
		if it.Items == nil && it.Link == "" {
			err = multierr.Append(err, &Problem{Path: p, Message: "leaf must have a link"})
		}
		if it.Link != "" && !strings.HasPrefix(it.Link, "/") {
			err = multierr.Append(err, &Problem{Path: p, Message: fmt.Sprintf("link %q must start with /", it.Link)})
		}
		if it.ActiveMatch != "" && !strings.HasPrefix(it.ActiveMatch, "/") {
			err = multierr.Append(err, &Problem{Path: p, Message: fmt.Sprintf("activeMatch %q must start with /", it.ActiveMatch)})
		}

		key := pair{it.Text, it.Link}
		if first, dup := seen[key]; dup {
			err = multierr.Append(err, &Problem{
				Path:    p,
				Message: fmt.Sprintf("duplicates sibling %d (%q, %q)", first, it.Text, it.Link),
			})
		} else {
			seen[key] = i
		}

		if it.IsGroup() {
			err = multierr.Append(err, ValidateItems(p+".items", it.Items))
		}
	}
	return err
}

func isAbsoluteHTTP(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
