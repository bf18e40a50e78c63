// Package catalog holds the static registry of tool specifications the
// routing corpus is generated against. Specs are loaded once from a YAML
// resource, validated, compiled, and never mutated afterwards.
package catalog

import (
	"fmt"
	"slices"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// ToolSpec describes one callable tool: its name, a human-readable
// description, and a JSON-Schema-like parameter object. The JSON form is
// exactly what gets attached to every training record's "tools" array.
type ToolSpec struct {
	Name        string          `json:"name" yaml:"name"`
	Description string          `json:"description" yaml:"description"`
	Parameters  ParameterSchema `json:"parameters" yaml:"parameters"`
}

// ParameterSchema is the parameter object of a ToolSpec. Type is always
// "object". Properties and Required are never nil after load, so argless
// tools serialize as {} and [] rather than null.
type ParameterSchema struct {
	Type       string              `json:"type" yaml:"type"`
	Properties map[string]Property `json:"properties" yaml:"properties"`
	Required   []string            `json:"required" yaml:"required"`
}

// Property describes a single parameter.
type Property struct {
	Type        string    `json:"type" yaml:"type"`
	Enum        []string  `json:"enum,omitempty" yaml:"enum,omitempty"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	Items       *Property `json:"items,omitempty" yaml:"items,omitempty"`
}

// Catalog is an immutable set of tool specs with lookup by name and
// per-tool compiled argument validators.
type Catalog struct {
	specs      map[string]ToolSpec
	names      []string // sorted
	validators map[string]*jsonschema.Schema
}

// Get returns the spec with the given name. The error wraps
// ErrToolNotFound and can be checked with errors.Is.
func (c *Catalog) Get(name string) (ToolSpec, error) {
	spec, ok := c.specs[name]
	if !ok {
		return ToolSpec{}, fmt.Errorf("%q: %w", name, ErrToolNotFound)
	}
	return spec, nil
}

// All returns every spec sorted by name for deterministic order.
func (c *Catalog) All() []ToolSpec {
	out := make([]ToolSpec, 0, len(c.names))
	for _, name := range c.names {
		out = append(out, c.specs[name])
	}
	return out
}

// Names returns all tool names sorted ascending.
func (c *Catalog) Names() []string {
	return slices.Clone(c.names)
}

// Len returns the number of registered specs.
func (c *Catalog) Len() int { return len(c.specs) }

// ValidateArgs validates an argument value against the named tool's
// compiled parameter schema. args must come from a JSON decode (maps,
// slices, float64/json numbers), not hand-built Go values with exotic
// types. Returns ErrToolNotFound for unknown names and a wrapped
// ErrArgsInvalid on schema violations.
func (c *Catalog) ValidateArgs(name string, args any) error {
	schema, ok := c.validators[name]
	if !ok {
		return fmt.Errorf("%q: %w", name, ErrToolNotFound)
	}
	if err := schema.Validate(args); err != nil {
		return fmt.Errorf("%s: %w: %w", name, ErrArgsInvalid, err)
	}
	return nil
}
