package oasgen

import (
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestProperties_Set(t *testing.T) {
	props := new(Properties)
	props.Set("b", &Schema{Type: "string"})
	props.Set("a", &Schema{Type: "boolean"})
	props.Set("b", &Schema{Type: "integer"})

	assert.Equal(t, []string{"b", "a"}, props.Names(), "overwrite keeps the original position")
	assert.Equal(t, 2, props.Len())
	b, ok := props.Get("b")
	require.True(t, ok)
	assert.Equal(t, "integer", b.Type)
}

func TestProperties_Get_Missing(t *testing.T) {
	props := new(Properties)
	_, ok := props.Get("missing")
	assert.False(t, ok)

	var nilProps *Properties
	assert.Zero(t, nilProps.Len())
	assert.Empty(t, nilProps.Names())
}

func TestProperties_MarshalJSON(t *testing.T) {
	props := new(Properties)
	props.Set("zulu", &Schema{Type: "string"})
	props.Set("alpha", &Schema{Type: "boolean"})
	props.Set("mike", &Schema{Type: "integer", Format: "int64"})

	data, err := json.Marshal(props)
	require.NoError(t, err)
	assert.Equal(t,
		`{"zulu":{"type":"string"},"alpha":{"type":"boolean"},"mike":{"type":"integer","format":"int64"}}`,
		string(data))
}

func TestProperties_MarshalYAML(t *testing.T) {
	props := new(Properties)
	props.Set("zulu", &Schema{Type: "string"})
	props.Set("alpha", &Schema{Type: "boolean"})

	data, err := yaml.Marshal(props)
	require.NoError(t, err)
	rendered := string(data)
	assert.Contains(t, rendered, "zulu:")
	assert.Contains(t, rendered, "alpha:")
	assert.Less(t, strings.Index(rendered, "zulu:"), strings.Index(rendered, "alpha:"),
		"insertion order survives YAML rendering")
}

func TestSchema_MarshalJSON_OmitsEmpty(t *testing.T) {
	data, err := json.Marshal(&Schema{Type: "string"})
	require.NoError(t, err)
	assert.Equal(t, `{"type":"string"}`, string(data))

	data, err = json.Marshal(RefSchema(SchemaRef("User")))
	require.NoError(t, err)
	assert.Equal(t, `{"$ref":"#/components/schemas/User"}`, string(data))
}
