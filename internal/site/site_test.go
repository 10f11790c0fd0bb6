package site

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/Silverados/sitenav/internal/domain"
)

func TestDefaultIsValid(t *testing.T) {
	if err := domain.Validate(Default()); err != nil {
		for _, p := range domain.Problems(err) {
			t.Errorf("problem: %v", p)
		}
		t.Fatalf("Default() should validate, got %v", err)
	}
}

func TestDefaultTopLevelFields(t *testing.T) {
	s := Default()

	if s.Title != "Silverados" {
		t.Errorf("Title = %q", s.Title)
	}
	if !s.LastUpdated {
		t.Error("LastUpdated should be true")
	}
	if s.ThemeConfig.Search == nil || s.ThemeConfig.Search.Provider != "local" {
		t.Errorf("Search = %+v, want local", s.ThemeConfig.Search)
	}
	if s.Extends == nil || s.Extends.Search != "pagefind" {
		t.Errorf("blog theme search = %+v, want pagefind", s.Extends)
	}
	if len(s.Extends.Friend) != 2 {
		t.Errorf("friend links = %d, want 2", len(s.Extends.Friend))
	}
	if !strings.HasSuffix(s.ThemeConfig.EditLink.Pattern, "/docs/:path") {
		t.Errorf("edit link pattern = %q", s.ThemeConfig.EditLink.Pattern)
	}
}

func TestDefaultJSONShape(t *testing.T) {
	data, err := json.Marshal(Default())
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	for _, key := range []string{"title", "description", "lastUpdated", "head", "themeConfig", "extends", "vite"} {
		if _, ok := raw[key]; !ok {
			t.Errorf("missing top-level field %q", key)
		}
	}

	head, ok := raw["head"].([]interface{})
	if !ok || len(head) != 1 {
		t.Fatalf("head = %v", raw["head"])
	}
	tuple, ok := head[0].([]interface{})
	if !ok || len(tuple) != 2 || tuple[0] != "link" {
		t.Errorf("head[0] should be a [tag, attrs] tuple, got %v", head[0])
	}

	theme := raw["themeConfig"].(map[string]interface{})
	for _, key := range []string{"nav", "sidebar", "socialLinks", "footer", "editLink", "search"} {
		if _, ok := theme[key]; !ok {
			t.Errorf("missing themeConfig field %q", key)
		}
	}
}

func TestDefaultReturnsFreshValues(t *testing.T) {
	a := Default()
	a.ThemeConfig.Nav[0].Text = "changed"
	a.Extends.Friend[0].Nickname = "changed"

	b := Default()
	if b.ThemeConfig.Nav[0].Text != "Java" {
		t.Error("nav shared between calls")
	}
	if b.Extends.Friend[0].Nickname != "粥里有勺糖" {
		t.Error("friend links shared between calls")
	}
}
