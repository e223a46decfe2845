package oasgen

import (
	"slices"

	"github.com/nieomylnieja/oasgen/pkg/typedesc"
)

// synthesize classifies the descriptor and drives exactly one of the
// three generation paths.
func (r *Registry) synthesize(desc *typedesc.Descriptor) *Schema {
	switch desc.Kind {
	case typedesc.KindEnumeration:
		return r.synthesizeEnum(desc)
	case typedesc.KindVariantSet:
		return r.synthesizeVariantSet(desc)
	default:
		return r.synthesizeComposite(desc)
	}
}

func (r *Registry) synthesizeEnum(desc *typedesc.Descriptor) *Schema {
	schema := &Schema{Type: "string", Description: desc.Description}
	if r.cfg.AutoGenerateEnumValues && len(desc.Values) > 0 {
		schema.Enum = slices.Clone(desc.Values)
	}
	return schema
}

func (r *Registry) synthesizeComposite(desc *typedesc.Descriptor) *Schema {
	schema := &Schema{Type: "object", Description: desc.Description}
	if len(desc.Fields) == 0 {
		return schema
	}
	properties := &Properties{}
	required := make(map[string]bool, len(desc.Fields))
	for _, field := range desc.Fields {
		property := r.mapProperty(field.Type)
		// A $ref carries no siblings; descriptions stay on inline schemas.
		if field.Description != "" && property.Ref == "" {
			property.Description = field.Description
		}
		properties.Set(field.Name, property)
		required[field.Name] = !field.Nullable
	}
	schema.Properties = properties
	// Fold field requiredness into the entry in declared order right
	// before it is finalized. A reference property carries no nullability
	// of its own, so requiredness always comes from the field declaration.
	for _, field := range desc.Fields {
		if required[field.Name] {
			schema.Required = append(schema.Required, field.Name)
			delete(required, field.Name)
		}
	}
	return schema
}
