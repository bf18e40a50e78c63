package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"slices"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

//go:embed tools.yaml
var defaultResource []byte

// catalogFile is the on-disk shape of the catalog resource.
type catalogFile struct {
	Tools []ToolSpec `yaml:"tools"`
}

// Load parses the embedded default catalog.
func Load() (*Catalog, error) {
	return Parse(defaultResource)
}

// LoadFile parses a catalog from an external YAML file, for deployments
// that version the catalog separately from the binary.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes, normalizes, and compiles a YAML catalog. Any defect in
// the resource (duplicate or empty names, unknown required parameter,
// schema that does not compile) is fatal: the catalog is authored
// configuration, not runtime input.
func Parse(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(file.Tools) == 0 {
		return nil, fmt.Errorf("parse catalog: no tools defined")
	}

	cat := &Catalog{
		specs:      make(map[string]ToolSpec, len(file.Tools)),
		validators: make(map[string]*jsonschema.Schema, len(file.Tools)),
	}
	for i, spec := range file.Tools {
		if spec.Name == "" {
			return nil, fmt.Errorf("catalog tool #%d: empty name", i+1)
		}
		if _, dup := cat.specs[spec.Name]; dup {
			return nil, fmt.Errorf("catalog tool %q: duplicate name", spec.Name)
		}
		if spec.Description == "" {
			return nil, fmt.Errorf("catalog tool %q: empty description", spec.Name)
		}
		normalize(&spec)
		for _, req := range spec.Parameters.Required {
			if _, ok := spec.Parameters.Properties[req]; !ok {
				return nil, fmt.Errorf("catalog tool %q: required parameter %q has no property", spec.Name, req)
			}
		}
		schema, err := compile(spec)
		if err != nil {
			return nil, fmt.Errorf("catalog tool %q: %w", spec.Name, err)
		}
		cat.specs[spec.Name] = spec
		cat.validators[spec.Name] = schema
		cat.names = append(cat.names, spec.Name)
	}
	slices.Sort(cat.names)
	return cat, nil
}

// normalize fills nil collections so serialized specs carry {} and []
// instead of null, matching the descriptor format downstream consumers parse.
func normalize(spec *ToolSpec) {
	if spec.Parameters.Type == "" {
		spec.Parameters.Type = "object"
	}
	if spec.Parameters.Properties == nil {
		spec.Parameters.Properties = map[string]Property{}
	}
	if spec.Parameters.Required == nil {
		spec.Parameters.Required = []string{}
	}
}

// compile builds a validator from the spec's parameter object. The spec
// is round-tripped through JSON so the compiler sees the exact document
// that ends up in the training records.
func compile(spec ToolSpec) (*jsonschema.Schema, error) {
	raw, err := json.Marshal(spec.Parameters)
	if err != nil {
		return nil, fmt.Errorf("marshal parameter schema: %w", err)
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decode parameter schema: %w", err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource(spec.Name+".json", doc); err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}
	schema, err := c.Compile(spec.Name + ".json")
	if err != nil {
		return nil, fmt.Errorf("compile parameter schema: %w", err)
	}
	return schema, nil
}
