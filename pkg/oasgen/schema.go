package oasgen

import (
	"bytes"

	json "github.com/goccy/go-json"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Schema is an OpenAPI schema object. When only Ref is set it acts as a
// bare reference into the registry rather than an owned schema.
type Schema struct {
	Ref           Reference      `json:"$ref,omitempty" yaml:"$ref,omitempty"`
	Type          string         `json:"type,omitempty" yaml:"type,omitempty"`
	Format        string         `json:"format,omitempty" yaml:"format,omitempty"`
	Description   string         `json:"description,omitempty" yaml:"description,omitempty"`
	Properties    *Properties    `json:"properties,omitempty" yaml:"properties,omitempty"`
	Required      []string       `json:"required,omitempty" yaml:"required,omitempty"`
	Items         *Schema        `json:"items,omitempty" yaml:"items,omitempty"`
	OneOf         []*Schema      `json:"oneOf,omitempty" yaml:"oneOf,omitempty"`
	AllOf         []*Schema      `json:"allOf,omitempty" yaml:"allOf,omitempty"`
	AnyOf         []*Schema      `json:"anyOf,omitempty" yaml:"anyOf,omitempty"`
	Not           *Schema        `json:"not,omitempty" yaml:"not,omitempty"`
	Discriminator *Discriminator `json:"discriminator,omitempty" yaml:"discriminator,omitempty"`
	Enum          []string       `json:"enum,omitempty" yaml:"enum,omitempty"`
	Example       any            `json:"example,omitempty" yaml:"example,omitempty"`
	Examples      []any          `json:"examples,omitempty" yaml:"examples,omitempty"`
}

// RefSchema wraps a Reference as a schema usable in property position.
func RefSchema(ref Reference) *Schema { return &Schema{Ref: ref} }

// Discriminator identifies which alternative of a oneOf list applies.
type Discriminator struct {
	PropertyName string               `json:"propertyName" yaml:"propertyName"`
	Mapping      map[string]Reference `json:"mapping,omitempty" yaml:"mapping,omitempty"`
}

// Properties is an ordered name to schema map. Field declaration order
// is preserved in both JSON and YAML output so generated documents are
// reproducible.
type Properties struct {
	names   []string
	schemas map[string]*Schema
}

// Set adds or replaces a property, keeping first-insertion order.
func (p *Properties) Set(name string, schema *Schema) {
	if p.schemas == nil {
		p.schemas = make(map[string]*Schema)
	}
	if _, ok := p.schemas[name]; !ok {
		p.names = append(p.names, name)
	}
	p.schemas[name] = schema
}

// Get returns the property schema registered under the given name.
func (p *Properties) Get(name string) (*Schema, bool) {
	schema, ok := p.schemas[name]
	return schema, ok
}

// Names returns the property names in insertion order.
func (p *Properties) Names() []string {
	if p == nil {
		return nil
	}
	return append([]string(nil), p.names...)
}

// Len returns the number of properties.
func (p *Properties) Len() int {
	if p == nil {
		return 0
	}
	return len(p.names)
}

func (p *Properties) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range p.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to marshal property name %q", name)
		}
		buf.Write(key)
		buf.WriteByte(':')
		value, err := json.Marshal(p.schemas[name])
		if err != nil {
			return nil, errors.Wrapf(err, "failed to marshal property %q", name)
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (p *Properties) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, name := range p.names {
		var key, value yaml.Node
		key.SetString(name)
		if err := value.Encode(p.schemas[name]); err != nil {
			return nil, errors.Wrapf(err, "failed to encode property %q", name)
		}
		node.Content = append(node.Content, &key, &value)
	}
	return node, nil
}
