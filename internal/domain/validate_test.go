package domain

import (
	"strings"
	"testing"
)

func validSite() *Site {
	return &Site{
		Title: "blog",
		ThemeConfig: ThemeConfig{
			Nav: []NavItem{
				{Text: "Home", Link: "/"},
			},
			Sidebar: Sidebar{
				"guide": {
					{Text: "Guide", Items: []NavItem{{Text: "Intro", Link: "/guide/intro"}}},
				},
			},
			SocialLinks: []SocialLink{{Icon: "github", Link: "https://github.com/x/y"}},
			EditLink:    &EditLink{Pattern: "https://github.com/x/y/edit/main/docs/:path"},
			Search:      &Search{Provider: "local"},
		},
	}
}

func TestValidateValid(t *testing.T) {
	if err := Validate(validSite()); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
}

func TestValidateItems(t *testing.T) {
	tests := []struct {
		name    string
		items   []NavItem
		wantMsg string
		wantAt  string
	}{
		{
			name:    "relative link",
			items:   []NavItem{{Text: "A", Link: "a/b"}},
			wantMsg: "must start with /",
			wantAt:  "x[0]",
		},
		{
			name:    "leaf without link",
			items:   []NavItem{{Text: "A"}},
			wantMsg: "leaf must have a link",
			wantAt:  "x[0]",
		},
		{
			name:    "empty text",
			items:   []NavItem{{Link: "/a"}},
			wantMsg: "text must not be empty",
			wantAt:  "x[0]",
		},
		{
			name:    "empty group",
			items:   []NavItem{{Text: "G", Items: []NavItem{}}},
			wantMsg: "group has no items",
			wantAt:  "x[0]",
		},
		{
			name: "duplicate siblings",
			items: []NavItem{
				{Text: "A", Link: "/a"},
				{Text: "B", Link: "/b"},
				{Text: "A", Link: "/a"},
			},
			wantMsg: "duplicates sibling 0",
			wantAt:  "x[2]",
		},
		{
			name: "nested problem",
			items: []NavItem{
				{Text: "G", Items: []NavItem{{Text: "A", Link: "/a"}, {Text: "B", Link: "b"}}},
			},
			wantMsg: "must start with /",
			wantAt:  "x[0].items[1]",
		},
		{
			name:    "relative activeMatch",
			items:   []NavItem{{Text: "A", Link: "/a", ActiveMatch: "a/"}},
			wantMsg: "activeMatch",
			wantAt:  "x[0]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateItems("x", tt.items)
			if err == nil {
				t.Fatal("ValidateItems() should fail")
			}
			problems := Problems(err)
			if len(problems) != 1 {
				t.Fatalf("got %d problems, want 1: %v", len(problems), err)
			}
			if problems[0].Path != tt.wantAt {
				t.Errorf("path = %q, want %q", problems[0].Path, tt.wantAt)
			}
			if !strings.Contains(problems[0].Message, tt.wantMsg) {
				t.Errorf("message = %q, want it to contain %q", problems[0].Message, tt.wantMsg)
			}
		})
	}
}

func TestValidateSameTextDifferentLinkIsFine(t *testing.T) {
	items := []NavItem{
		{Text: "A", Link: "/a"},
		{Text: "A", Link: "/b"},
	}
	if err := ValidateItems("x", items); err != nil {
		t.Errorf("ValidateItems() error = %v", err)
	}
}

func TestValidateSidebarKeyCollision(t *testing.T) {
	sb := Sidebar{
		"misc":  {{Text: "A", Link: "/a"}},
		"/misc": {{Text: "B", Link: "/b"}},
	}
	err := ValidateSidebar("sidebar", sb)
	problems := Problems(err)
	if len(problems) != 1 || !strings.Contains(problems[0].Message, "collides") {
		t.Fatalf("want one collision problem, got %v", err)
	}
}

func TestValidateCollectsEverything(t *testing.T) {
	s := validSite()
	s.Title = ""
	s.ThemeConfig.Nav = append(s.ThemeConfig.Nav, NavItem{Text: "Bad", Link: "bad"})
	s.ThemeConfig.SocialLinks[0].Link = "github.com/x"
	s.ThemeConfig.EditLink.Pattern = "https://example.com/edit"
	s.ThemeConfig.Search.Provider = "pagefind"

	problems := Problems(Validate(s))
	if len(problems) != 5 {
		for _, p := range problems {
			t.Log(p)
		}
		t.Fatalf("got %d problems, want 5", len(problems))
	}
}

func TestValidateNil(t *testing.T) {
	if err := Validate(nil); err == nil {
		t.Error("Validate(nil) should fail")
	}
}
