// Package export renders the site document in the formats the static-site
// framework accepts.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Silverados/sitenav/internal/domain"
	"github.com/Silverados/sitenav/internal/utils"
)

type Format string

const (
	// FormatTS is an ES module for the framework's config.mts.
	FormatTS   Format = "ts"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ThemeModule is the package providing getThemeConfig and defineConfig.
const ThemeModule = "@sugarat/theme/node"

// ParseFormat accepts ts, mts, json, yaml and yml, case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ts", "mts":
		return FormatTS, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown export format %q (want ts, json or yaml)", s)
	}
}

// ContentType is the MIME type served for f.
func (f Format) ContentType() string {
	switch f {
	case FormatTS:
		return "text/typescript; charset=utf-8"
	case FormatYAML:
		return "application/yaml; charset=utf-8"
	default:
		return "application/json; charset=utf-8"
	}
}

// Encode renders site in format f.
func Encode(site *domain.Site, f Format) ([]byte, error) {
	if site == nil {
		return nil, fmt.Errorf("nothing to export: site is nil")
	}
	switch f {
	case FormatJSON:
		return encodeJSON(site, "")
	case FormatYAML:
		return encodeYAML(site)
	case FormatTS:
		return encodeTS(site)
	default:
		return nil, fmt.Errorf("unknown export format %q", f)
	}
}

func encodeJSON(v interface{}, prefix string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent(prefix, "  ")
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("failed to encode json: %w", err)
	}
	return buf.Bytes(), nil
}

func encodeYAML(site *domain.Site) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(site); err != nil {
		return nil, fmt.Errorf("failed to encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode yaml: %w", err)
	}
	return buf.Bytes(), nil
}

// encodeTS emits a module that builds the blog theme with getThemeConfig and
// spreads the remaining document into defineConfig.
func encodeTS(site *domain.Site) ([]byte, error) {
	theme := site.Extends
	if theme == nil {
		theme = &domain.BlogTheme{}
	}
	rest := *site
	rest.Extends = nil

	themeJSON, err := encodeJSON(theme, "")
	if err != nil {
		return nil, err
	}
	restJSON, err := encodeJSON(&rest, "  ")
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by sitenav. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "import { getThemeConfig, defineConfig } from '%s'\n\n", ThemeModule)
	fmt.Fprintf(&buf, "const blogTheme = getThemeConfig(%s)\n\n", bytes.TrimRight(themeJSON, "\n"))
	fmt.Fprintf(&buf, "export default defineConfig({\n  extends: blogTheme,\n  ...%s\n})\n", bytes.TrimRight(restJSON, "\n"))
	return buf.Bytes(), nil
}

// WriteFile encodes site and replaces path atomically: the content goes to a
// temporary file in the same directory which is then renamed over path.
func WriteFile(path string, site *domain.Site, f Format) error {
	data, err := Encode(site, f)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		_ = os.Remove(tmpName) // no-op after a successful rename
	}()

	if _, err := tmp.Write(data); err != nil {
		utils.Close(tmp)
		return fmt.Errorf("failed to write export: %w", err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		utils.Close(tmp)
		return fmt.Errorf("failed to chmod export: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close export: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}
