package oasgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nieomylnieja/oasgen/pkg/typedesc"
)

func TestMapProperty(t *testing.T) {
	user := &typedesc.Descriptor{
		Name: "User",
		Kind: typedesc.KindComposite,
		Fields: []typedesc.Field{
			{Name: "name", Type: typedesc.PrimitiveRef(typedesc.PrimitiveString)},
		},
	}

	tests := []struct {
		name     string
		ref      typedesc.TypeRef
		expected *Schema
	}{
		{
			name:     "string",
			ref:      typedesc.PrimitiveRef(typedesc.PrimitiveString),
			expected: &Schema{Type: "string"},
		},
		{
			name:     "int32",
			ref:      typedesc.PrimitiveRef(typedesc.PrimitiveInt32),
			expected: &Schema{Type: "integer", Format: "int32"},
		},
		{
			name:     "int64",
			ref:      typedesc.PrimitiveRef(typedesc.PrimitiveInt64),
			expected: &Schema{Type: "integer", Format: "int64"},
		},
		{
			name:     "float32",
			ref:      typedesc.PrimitiveRef(typedesc.PrimitiveFloat32),
			expected: &Schema{Type: "number", Format: "float"},
		},
		{
			name:     "float64",
			ref:      typedesc.PrimitiveRef(typedesc.PrimitiveFloat64),
			expected: &Schema{Type: "number", Format: "double"},
		},
		{
			name:     "bool",
			ref:      typedesc.PrimitiveRef(typedesc.PrimitiveBool),
			expected: &Schema{Type: "boolean"},
		},
		{
			name:     "date-time",
			ref:      typedesc.PrimitiveRef(typedesc.PrimitiveDateTime),
			expected: &Schema{Type: "string", Format: "date-time"},
		},
		{
			name:     "array of strings",
			ref:      typedesc.ArrayOf(typedesc.PrimitiveRef(typedesc.PrimitiveString)),
			expected: &Schema{Type: "array", Items: &Schema{Type: "string"}},
		},
		{
			name:     "array of named type",
			ref:      typedesc.ArrayOf(typedesc.NamedRef(user)),
			expected: &Schema{Type: "array", Items: RefSchema(SchemaRef("User"))},
		},
		{
			name: "array of arrays",
			ref: typedesc.ArrayOf(
				typedesc.ArrayOf(typedesc.PrimitiveRef(typedesc.PrimitiveInt64))),
			expected: &Schema{
				Type:  "array",
				Items: &Schema{Type: "array", Items: &Schema{Type: "integer", Format: "int64"}},
			},
		},
		{
			name: "triply nested array leaves the innermost items untyped",
			ref: typedesc.ArrayOf(typedesc.ArrayOf(
				typedesc.ArrayOf(typedesc.PrimitiveRef(typedesc.PrimitiveString)))),
			expected: &Schema{
				Type:  "array",
				Items: &Schema{Type: "array"},
			},
		},
		{
			name:     "array of unresolved element has no items",
			ref:      typedesc.ArrayOf(typedesc.TypeRef{}),
			expected: &Schema{Type: "array"},
		},
		{
			name:     "unresolved type maps to an untyped schema",
			ref:      typedesc.TypeRef{},
			expected: &Schema{},
		},
		{
			name:     "named type maps to a reference",
			ref:      typedesc.NamedRef(user),
			expected: RefSchema(SchemaRef("User")),
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			registry := newTestRegistry(t)
			assert.Equal(t, test.expected, registry.mapProperty(test.ref))
			assert.Empty(t, registry.Diagnostics())
		})
	}
}

func TestMapProperty_WithoutArrayItems(t *testing.T) {
	registry := newTestRegistry(t, WithoutArrayItems())
	schema := registry.mapProperty(
		typedesc.ArrayOf(typedesc.PrimitiveRef(typedesc.PrimitiveString)))
	require.NotNil(t, schema)
	assert.Equal(t, "array", schema.Type)
	assert.Nil(t, schema.Items)
}

func TestMapProperty_ArrayOfNamedRegistersElement(t *testing.T) {
	user := &typedesc.Descriptor{
		Name: "User",
		Kind: typedesc.KindComposite,
		Fields: []typedesc.Field{
			{Name: "name", Type: typedesc.PrimitiveRef(typedesc.PrimitiveString)},
		},
	}
	registry := newTestRegistry(t)
	registry.mapProperty(typedesc.ArrayOf(typedesc.NamedRef(user)))
	_, ok := registry.Schema("User")
	assert.True(t, ok)
}
