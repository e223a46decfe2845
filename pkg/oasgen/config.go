package oasgen

import (
	"github.com/nobl9/govy/pkg/govy"
	"github.com/nobl9/govy/pkg/rules"
	"github.com/pkg/errors"
)

// Config controls how schemas are synthesized.
type Config struct {
	// AutoGenerateArrayItems enables items inference for container fields.
	AutoGenerateArrayItems bool
	// AutoGenerateEnumValues enables emission of literal enum value lists.
	AutoGenerateEnumValues bool
	// DiscriminatorPropertyName is the property identifying the active
	// variant of a discriminated union.
	DiscriminatorPropertyName string
}

func defaultConfig() Config {
	return Config{
		AutoGenerateArrayItems:    true,
		AutoGenerateEnumValues:    true,
		DiscriminatorPropertyName: "type",
	}
}

// Option overrides a single [Config] setting for one build session.
type Option func(config Config) Config

// WithoutArrayItems disables items inference for container fields;
// containers are emitted as untyped arrays.
func WithoutArrayItems() Option {
	return func(config Config) Config {
		config.AutoGenerateArrayItems = false
		return config
	}
}

// WithoutEnumValues suppresses literal enum value lists; enumerations
// are emitted as bare string schemas.
func WithoutEnumValues() Option {
	return func(config Config) Config {
		config.AutoGenerateEnumValues = false
		return config
	}
}

// WithDiscriminatorProperty overrides the discriminator property name
// used for variant set schemas.
func WithDiscriminatorProperty(name string) Option {
	return func(config Config) Config {
		config.DiscriminatorPropertyName = name
		return config
	}
}

var configValidator = govy.New(
	govy.For(func(c Config) string { return c.DiscriminatorPropertyName }).
		WithName("discriminatorPropertyName").
		Required().
		Rules(rules.StringNotEmpty()),
).WithName("Config")

func (c Config) validate() error {
	return errors.Wrap(configValidator.Validate(c), "invalid generator config")
}
