package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/Silverados/sitenav/internal/domain"
	"github.com/Silverados/sitenav/internal/site"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "ts", want: FormatTS},
		{in: "MTS", want: FormatTS},
		{in: "json", want: FormatJSON},
		{in: " yml ", want: FormatYAML},
		{in: "toml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestEncodeJSONRoundTrip(t *testing.T) {
	in := site.Default()
	data, err := Encode(in, FormatJSON)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	var out domain.Site
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	want, _ := domain.Digest(in)
	got, _ := domain.Digest(&out)
	if want != got {
		t.Errorf("round trip changed the document: %s != %s", got, want)
	}
	if !strings.Contains(string(data), "排序算法") {
		t.Error("json output should keep non-ASCII text unescaped")
	}
}

func TestEncodeYAMLRoundTrip(t *testing.T) {
	in := site.Default()
	data, err := Encode(in, FormatYAML)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	var out domain.Site
	if err := yaml.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	want, _ := domain.Digest(in)
	got, _ := domain.Digest(&out)
	if want != got {
		t.Errorf("round trip changed the document: %s != %s", got, want)
	}
}

func TestEncodeTS(t *testing.T) {
	data, err := Encode(site.Default(), FormatTS)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	out := string(data)

	for _, want := range []string{
		"import { getThemeConfig, defineConfig } from '@sugarat/theme/node'",
		"const blogTheme = getThemeConfig({",
		`"author": "Silverados"`,
		"export default defineConfig({\n  extends: blogTheme,\n  ...{",
		`"title": "Silverados"`,
		`"java/algorithms"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("ts output missing %q", want)
		}
	}
	if strings.Contains(out, `"extends"`) {
		t.Error("blog theme should not be repeated inside defineConfig")
	}
}

func TestEncodeNil(t *testing.T) {
	if _, err := Encode(nil, FormatJSON); err == nil {
		t.Error("Encode(nil) should fail")
	}
	if _, err := Encode(site.Default(), Format("toml")); err == nil {
		t.Error("Encode() with unknown format should fail")
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.json")

	if err := WriteFile(path, site.Default(), FormatJSON); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	first, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	changed := site.Default()
	changed.Title = "Other"
	if err := WriteFile(path, changed, FormatJSON); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	second, _ := os.ReadFile(path)
	if string(first) == string(second) {
		t.Error("second write did not replace the file")
	}

	entries, _ := os.ReadDir(filepath.Dir(path))
	if len(entries) != 1 {
		t.Errorf("temp files left behind: %d entries", len(entries))
	}
}
