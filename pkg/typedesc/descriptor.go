package typedesc

// Kind classifies a described type into one of the three shapes the
// schema synthesizer understands.
type Kind int

const (
	// KindComposite is a structured type with named, ordered fields.
	KindComposite Kind = iota + 1
	// KindEnumeration is a string type with a closed list of constant values.
	KindEnumeration
	// KindVariantSet is a type whose value is exactly one of a fixed
	// list of alternative composite types.
	KindVariantSet
)

func (k Kind) String() string {
	switch k {
	case KindComposite:
		return "composite"
	case KindEnumeration:
		return "enumeration"
	case KindVariantSet:
		return "variant set"
	default:
		return "unknown"
	}
}

// Primitive identifies a scalar type in the schema primitive mapping table.
type Primitive int

const (
	PrimitiveInvalid Primitive = iota
	PrimitiveString
	PrimitiveInt32
	PrimitiveInt64
	PrimitiveFloat32
	PrimitiveFloat64
	PrimitiveBool
	PrimitiveDateTime
)

// Descriptor is an immutable description of a model type.
// It is produced either by [Describe] or constructed directly,
// and consumed by the schema synthesis engine.
//
// Fields is populated for KindComposite, Values for KindEnumeration
// and Variants for KindVariantSet. Descriptor graphs may be cyclic;
// the consuming registry is responsible for cycle safety.
type Descriptor struct {
	Name        string
	Kind        Kind
	Description string
	Fields      []Field
	Values      []string
	Variants    []*Descriptor
}

// Field is a single declared field of a composite type.
type Field struct {
	Name        string
	Type        TypeRef
	Nullable    bool
	Description string
}

// TypeRef describes a field's declared type.
// Exactly one of Primitive, Elem or Named is set;
// the zero TypeRef marks an unresolvable type.
type TypeRef struct {
	// Primitive is set for scalar types.
	Primitive Primitive
	// Elem is set for one-dimensional containers and points at the element type.
	Elem *TypeRef
	// Named is set for named composite, enumeration and variant set types.
	Named *Descriptor
}

// PrimitiveRef returns a TypeRef for a scalar type.
func PrimitiveRef(p Primitive) TypeRef { return TypeRef{Primitive: p} }

// ArrayOf returns a TypeRef for a container of the given element type.
func ArrayOf(elem TypeRef) TypeRef { return TypeRef{Elem: &elem} }

// NamedRef returns a TypeRef pointing at a named type's descriptor.
func NamedRef(d *Descriptor) TypeRef { return TypeRef{Named: d} }
