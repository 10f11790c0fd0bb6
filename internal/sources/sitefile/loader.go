package sitefile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// templateVar matches {{SITENAV_VAR_NAME}} placeholders.
var templateVar = regexp.MustCompile(`\{\{\s*(SITENAV_VAR_[A-Za-z0-9_]+)\s*\}\}`)

// Loader handles loading and parsing of a site YAML file
type Loader struct {
	filePath string
	lookup   func(string) (string, bool)
}

// NewLoader creates a loader that resolves placeholders from the environment.
func NewLoader(filePath string) *Loader {
	return &Loader{
		filePath: filePath,
		lookup:   os.LookupEnv,
	}
}

// Path returns the file the loader reads.
func (l *Loader) Path() string {
	return l.filePath
}

// Load reads and parses the site file. Unknown keys are rejected so typos
// surface instead of being silently dropped.
func (l *Loader) Load() (*File, error) {
	data, err := os.ReadFile(l.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read site file: %w", err)
	}

	var doc yaml.Node
	if err := yaml.NewDecoder(bytes.NewReader(data)).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("site file %s is empty", l.filePath)
		}
		return nil, fmt.Errorf("failed to parse site yaml: %w", err)
	}

	// Placeholders are substituted inside parsed scalars so a value can
	// never add keys or comments to the document.
	expandTemplateVariables(&doc, l.lookup)
	data, err = yaml.Marshal(&doc)
	if err != nil {
		return nil, fmt.Errorf("failed to re-encode site yaml: %w", err)
	}

	var file File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("failed to parse site yaml: %w", err)
	}

	return &file, nil
}

// expandTemplateVariables replaces {{SITENAV_VAR_X}} inside scalar values
// with the value of the variable; unset variables expand to the empty
// string. Mapping keys are left alone.
// Example: "{{SITENAV_VAR_REPO}}" -> https://github.com/me/blog
func expandTemplateVariables(n *yaml.Node, lookup func(string) (string, bool)) {
	switch n.Kind {
	case yaml.ScalarNode:
		expanded := templateVar.ReplaceAllStringFunc(n.Value, func(m string) string {
			v, _ := lookup(templateVar.FindStringSubmatch(m)[1])
			return v
		})
		if expanded == n.Value {
			return
		}
		n.Value = expanded
		if n.Style == 0 {
			// Let a plain scalar resolve from its new text.
			n.Tag = ""
		}
	case yaml.MappingNode:
		for i := 1; i < len(n.Content); i += 2 {
			expandTemplateVariables(n.Content[i], lookup)
		}
	case yaml.DocumentNode, yaml.SequenceNode:
		for _, c := range n.Content {
			expandTemplateVariables(c, lookup)
		}
	}
}
