package oasgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Defaults(t *testing.T) {
	config := defaultConfig()
	assert.True(t, config.AutoGenerateArrayItems)
	assert.True(t, config.AutoGenerateEnumValues)
	assert.Equal(t, "type", config.DiscriminatorPropertyName)
	assert.NoError(t, config.validate())
}

func TestConfig_Options(t *testing.T) {
	config := defaultConfig()
	for _, opt := range []Option{
		WithoutArrayItems(),
		WithoutEnumValues(),
		WithDiscriminatorProperty("kind"),
	} {
		config = opt(config)
	}
	assert.False(t, config.AutoGenerateArrayItems)
	assert.False(t, config.AutoGenerateEnumValues)
	assert.Equal(t, "kind", config.DiscriminatorPropertyName)
}

func TestConfig_Validate(t *testing.T) {
	config := WithDiscriminatorProperty("")(defaultConfig())
	err := config.validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid generator config")
	assert.Contains(t, err.Error(), "discriminatorPropertyName")
}
