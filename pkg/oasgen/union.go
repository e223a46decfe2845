package oasgen

import "github.com/nieomylnieja/oasgen/pkg/typedesc"

// synthesizeVariantSet registers every variant through the registry and
// assembles the discriminated union over them.
func (r *Registry) synthesizeVariantSet(desc *typedesc.Descriptor) *Schema {
	if len(desc.Variants) == 0 {
		r.report(desc.Name, "variant set has no variants, emitting a bare object schema")
		return &Schema{Type: "object", Description: desc.Description}
	}
	union := newUnionBuilder(r.cfg.DiscriminatorPropertyName)
	for _, variant := range desc.Variants {
		ref := r.Register(variant)
		if ref == "" {
			r.report(desc.Name, "skipping variant without a name")
			continue
		}
		union.add(variant.Name, ref)
	}
	schema := union.schema()
	schema.Description = desc.Description
	return schema
}

// unionBuilder assembles a oneOf list and a discriminator mapping from
// an ordered variant list.
type unionBuilder struct {
	propertyName string
	oneOf        []*Schema
	mapping      map[string]Reference
}

func newUnionBuilder(propertyName string) *unionBuilder {
	return &unionBuilder{
		propertyName: propertyName,
		mapping:      make(map[string]Reference),
	}
}

// add appends a variant to the union. A variant sharing its simple name
// with an earlier one overwrites the earlier mapping entry.
func (u *unionBuilder) add(name string, ref Reference) {
	u.oneOf = append(u.oneOf, RefSchema(ref))
	u.mapping[name] = ref
}

func (u *unionBuilder) schema() *Schema {
	if len(u.oneOf) == 0 {
		return &Schema{Type: "object"}
	}
	return &Schema{
		OneOf: u.oneOf,
		Discriminator: &Discriminator{
			PropertyName: u.propertyName,
			Mapping:      u.mapping,
		},
	}
}
