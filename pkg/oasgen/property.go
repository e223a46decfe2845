package oasgen

import "github.com/nieomylnieja/oasgen/pkg/typedesc"

// mapProperty maps a declared field type to a schema property: a
// primitive, a reference to a named schema, or an array with at most one
// level of nested containers resolved. Named types are never inlined;
// they are registered recursively and referenced.
func (r *Registry) mapProperty(ref typedesc.TypeRef) *Schema {
	return r.mapPropertyAtDepth(ref, 0)
}

func (r *Registry) mapPropertyAtDepth(ref typedesc.TypeRef, depth int) *Schema {
	switch {
	case ref.Primitive != typedesc.PrimitiveInvalid:
		return primitiveSchema(ref.Primitive)
	case ref.Elem != nil:
		schema := &Schema{Type: "array"}
		if !r.cfg.AutoGenerateArrayItems {
			return schema
		}
		elem := *ref.Elem
		switch {
		case elem.Primitive != typedesc.PrimitiveInvalid:
			schema.Items = primitiveSchema(elem.Primitive)
		case elem.Named != nil:
			if named := r.Register(elem.Named); named != "" {
				schema.Items = RefSchema(named)
			}
		case elem.Elem != nil && depth == 0:
			schema.Items = r.mapPropertyAtDepth(elem, depth+1)
		}
		// Deeper nesting and unresolved element types leave items unset.
		return schema
	case ref.Named != nil:
		if named := r.Register(ref.Named); named != "" {
			return RefSchema(named)
		}
		return &Schema{}
	default:
		return &Schema{}
	}
}

func primitiveSchema(p typedesc.Primitive) *Schema {
	switch p {
	case typedesc.PrimitiveString:
		return &Schema{Type: "string"}
	case typedesc.PrimitiveInt32:
		return &Schema{Type: "integer", Format: "int32"}
	case typedesc.PrimitiveInt64:
		return &Schema{Type: "integer", Format: "int64"}
	case typedesc.PrimitiveFloat32:
		return &Schema{Type: "number", Format: "float"}
	case typedesc.PrimitiveFloat64:
		return &Schema{Type: "number", Format: "double"}
	case typedesc.PrimitiveBool:
		return &Schema{Type: "boolean"}
	case typedesc.PrimitiveDateTime:
		return &Schema{Type: "string", Format: "date-time"}
	default:
		return &Schema{}
	}
}
