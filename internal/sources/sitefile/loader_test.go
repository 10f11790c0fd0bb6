package sitefile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "site.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to create test YAML file: %v", err)
	}
	return path
}

func TestLoaderLoad(t *testing.T) {
	path := writeFile(t, `
title: My Blog
head:
  - [link, {rel: icon, href: /favicon.ico}]
themeConfig:
  nav:
    - text: Guide
      link: /guide/
  sidebar:
    guide:
      - text: Start
        collapsed: true
        items:
          - text: Install
            link: /guide/install
`)

	file, err := NewLoader(path).Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if file.Title != "My Blog" {
		t.Errorf("Title = %q, want My Blog", file.Title)
	}
	if len(file.Head) != 1 || file.Head[0].Tag != "link" || file.Head[0].Attrs["href"] != "/favicon.ico" {
		t.Errorf("Head = %+v", file.Head)
	}
	if !file.UsesBuiltin() {
		t.Error("builtin should default to true")
	}
	group := file.ThemeConfig.Sidebar["guide"][0]
	if group.Collapsed == nil || !*group.Collapsed {
		t.Errorf("collapsed = %v, want true", group.Collapsed)
	}
	if len(group.Items) != 1 || group.Items[0].Link != "/guide/install" {
		t.Errorf("group items = %+v", group.Items)
	}
}

func TestLoaderLoadWithTemplateVariables(t *testing.T) {
	path := writeFile(t, `
title: "{{SITENAV_VAR_TITLE}}"
description: "{{ SITENAV_VAR_MISSING }}"
themeConfig:
  footer:
    message: "{{OTHER_VAR}}"
`)

	loader := NewLoader(path)
	loader.lookup = func(name string) (string, bool) {
		if name == "SITENAV_VAR_TITLE" {
			return "From Env", true
		}
		return "", false
	}

	file, err := loader.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if file.Title != "From Env" {
		t.Errorf("Title = %q, want From Env", file.Title)
	}
	if file.Description != "" {
		t.Errorf("Description = %q, want empty", file.Description)
	}
	if file.ThemeConfig.Footer.Message != "{{OTHER_VAR}}" {
		t.Errorf("foreign placeholders should be kept, got %q", file.ThemeConfig.Footer.Message)
	}
}

func TestLoaderTemplateValuesStayScalars(t *testing.T) {
	path := writeFile(t, `
title: "{{SITENAV_VAR_TITLE}}"
description: "{{SITENAV_VAR_DESC}}"
themeConfig:
  lastUpdatedText: 'at {{SITENAV_VAR_WHEN}}'
  footer:
    message: "{{SITENAV_VAR_FOOTER}}"
`)
	vars := map[string]string{
		"SITENAV_VAR_TITLE":  "My blog #1",
		"SITENAV_VAR_DESC":   "notes: java, netty",
		"SITENAV_VAR_WHEN":   "true",
		"SITENAV_VAR_FOOTER": "x\nbuiltin: false",
	}
	loader := NewLoader(path)
	loader.lookup = func(name string) (string, bool) {
		v, ok := vars[name]
		return v, ok
	}

	file, err := loader.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if file.Title != vars["SITENAV_VAR_TITLE"] {
		t.Errorf("Title = %q, a # in the value must not start a comment", file.Title)
	}
	if file.Description != vars["SITENAV_VAR_DESC"] {
		t.Errorf("Description = %q", file.Description)
	}
	if file.ThemeConfig.LastUpdatedText != "at true" {
		t.Errorf("LastUpdatedText = %q", file.ThemeConfig.LastUpdatedText)
	}
	if file.ThemeConfig.Footer.Message != vars["SITENAV_VAR_FOOTER"] {
		t.Errorf("Footer.Message = %q", file.ThemeConfig.Footer.Message)
	}
	if file.Builtin != nil {
		t.Error("a newline in a value must not add a top-level key")
	}
}

func TestLoaderErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{name: "empty", content: "", want: "empty"},
		{name: "unknown field", content: "titel: typo\n", want: "titel"},
		{name: "bad head", content: "head: link\n", want: "parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLoader(writeFile(t, tt.content)).Load()
			if err == nil {
				t.Fatal("Load() should fail")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q should mention %q", err, tt.want)
			}
		})
	}

	if _, err := NewLoader(filepath.Join(t.TempDir(), "missing.yaml")).Load(); err == nil {
		t.Error("Load() on a missing file should fail")
	}
}
