package sitefile

import (
	"encoding/json"
	"reflect"

	"github.com/invopop/jsonschema"

	"github.com/Silverados/sitenav/internal/domain"
)

// Schema generates the JSON Schema (draft 2020-12, which prefixItems
// requires) of the site file, for editor completion.
func Schema() ([]byte, error) {
	r := &jsonschema.Reflector{
		// Unknown keys are rejected by the loader too.
		AllowAdditionalProperties: false,
		ExpandedStruct:            true,
		FieldNameTag:              "yaml",
		Mapper:                    mapType,
	}

	schema := r.Reflect(&File{})
	schema.Title = "sitenav site file"
	schema.Description = "Blog navigation and theme settings layered over the built-in document."
	// Every top-level key is optional; empty fields inherit.
	schema.Required = nil

	return json.MarshalIndent(schema, "", "  ")
}

var headTagType = reflect.TypeOf(domain.HeadTag{})

// mapType describes types with a custom YAML encoding.
func mapType(t reflect.Type) *jsonschema.Schema {
	if t != headTagType {
		return nil
	}
	return &jsonschema.Schema{
		Type:        "array",
		Description: "A [tag, attributes] pair, e.g. [link, {rel: icon, href: /favicon.ico}].",
		PrefixItems: []*jsonschema.Schema{
			{Type: "string"},
			{Type: "object", AdditionalProperties: &jsonschema.Schema{Type: "string"}},
		},
	}
}
