package oasgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nieomylnieja/oasgen/pkg/typedesc"
)

func newTestRegistry(t *testing.T, opts ...Option) *Registry {
	t.Helper()
	registry, err := NewRegistry(opts...)
	require.NoError(t, err)
	return registry
}

func TestNewRegistry_InvalidConfig(t *testing.T) {
	_, err := NewRegistry(WithDiscriminatorProperty(""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "discriminatorPropertyName")
}

func TestRegistry_Register_SelfReferentialType(t *testing.T) {
	node := &typedesc.Descriptor{Name: "TreeNode", Kind: typedesc.KindComposite}
	node.Fields = []typedesc.Field{
		{Name: "label", Type: typedesc.PrimitiveRef(typedesc.PrimitiveString)},
		{Name: "children", Type: typedesc.ArrayOf(typedesc.NamedRef(node)), Nullable: true},
	}

	registry := newTestRegistry(t)
	ref := registry.Register(node)
	require.Equal(t, SchemaRef("TreeNode"), ref)

	schema, ok := registry.Schema("TreeNode")
	require.True(t, ok)
	children, ok := schema.Properties.Get("children")
	require.True(t, ok)
	assert.Equal(t, "array", children.Type)
	require.NotNil(t, children.Items)
	assert.Equal(t, SchemaRef("TreeNode"), children.Items.Ref)
	assert.Equal(t, []string{"label"}, schema.Required)
	assert.Equal(t, []string{"TreeNode"}, registry.Names())
}

func TestRegistry_Register_MutuallyReferentialTypes(t *testing.T) {
	a := &typedesc.Descriptor{Name: "Author", Kind: typedesc.KindComposite}
	b := &typedesc.Descriptor{Name: "Book", Kind: typedesc.KindComposite}
	a.Fields = []typedesc.Field{{Name: "latestBook", Type: typedesc.NamedRef(b), Nullable: true}}
	b.Fields = []typedesc.Field{{Name: "author", Type: typedesc.NamedRef(a)}}

	registry := newTestRegistry(t)
	registry.Register(a)

	author, ok := registry.Schema("Author")
	require.True(t, ok)
	book, ok := registry.Schema("Book")
	require.True(t, ok)

	latestBook, ok := author.Properties.Get("latestBook")
	require.True(t, ok)
	assert.Equal(t, SchemaRef("Book"), latestBook.Ref)
	authorProp, ok := book.Properties.Get("author")
	require.True(t, ok)
	assert.Equal(t, SchemaRef("Author"), authorProp.Ref)
	assert.Equal(t, []string{"author"}, book.Required)
}

func TestRegistry_Register_Idempotent(t *testing.T) {
	desc := &typedesc.Descriptor{
		Name: "User",
		Kind: typedesc.KindComposite,
		Fields: []typedesc.Field{
			{Name: "name", Type: typedesc.PrimitiveRef(typedesc.PrimitiveString)},
		},
	}
	registry := newTestRegistry(t)
	first := registry.Register(desc)
	firstSchema, ok := registry.Schema("User")
	require.True(t, ok)
	second := registry.Register(desc)
	secondSchema, ok := registry.Schema("User")
	require.True(t, ok)

	assert.Equal(t, first, second)
	assert.Same(t, firstSchema, secondSchema, "second registration must not re-synthesize")
	assert.Equal(t, []string{"User"}, registry.Names())
	assert.Empty(t, registry.Diagnostics())
}

func TestRegistry_Register_NoName(t *testing.T) {
	registry := newTestRegistry(t)
	assert.Empty(t, registry.Register(&typedesc.Descriptor{Kind: typedesc.KindComposite}))
	assert.Empty(t, registry.Register(nil))
	assert.Empty(t, registry.Names())
	assert.Len(t, registry.Diagnostics(), 2)
}

func TestRegistry_Register_NameCollision(t *testing.T) {
	first := &typedesc.Descriptor{
		Name: "Thing",
		Kind: typedesc.KindComposite,
		Fields: []typedesc.Field{
			{Name: "a", Type: typedesc.PrimitiveRef(typedesc.PrimitiveString)},
		},
	}
	second := &typedesc.Descriptor{
		Name: "Thing",
		Kind: typedesc.KindComposite,
		Fields: []typedesc.Field{
			{Name: "b", Type: typedesc.PrimitiveRef(typedesc.PrimitiveBool)},
		},
	}

	registry := newTestRegistry(t)
	registry.Register(first)
	ref := registry.Register(second)
	assert.Equal(t, SchemaRef("Thing"), ref)

	schema, ok := registry.Schema("Thing")
	require.True(t, ok)
	_, hasA := schema.Properties.Get("a")
	assert.True(t, hasA, "the first registration wins")
	require.Len(t, registry.Diagnostics(), 1)
	assert.Equal(t, "Thing", registry.Diagnostics()[0].Subject)
}

func TestReference_Name(t *testing.T) {
	assert.Equal(t, "TreeNode", SchemaRef("TreeNode").Name())
	assert.Equal(t, Reference("#/components/schemas/TreeNode"), SchemaRef("TreeNode"))
}
