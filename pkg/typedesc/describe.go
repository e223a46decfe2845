package typedesc

import (
	"reflect"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/nieomylnieja/oasgen/internal/godoc"
)

type describeOptions struct {
	variantDecls []variantDecl
	enumDecls    []enumDecl
	withDocs     bool
}

type variantDecl struct {
	iface any
	impls []any
}

type enumDecl struct {
	value  any
	values []string
}

// DescribeOption configures the behavior of [Describe].
type DescribeOption func(options describeOptions) describeOptions

// WithVariants declares the closed set of types implementing an interface
// for the duration of a single [Describe] call. The iface argument must be
// a nil pointer to the interface type, e.g. (*Shape)(nil).
func WithVariants(iface any, impls ...any) DescribeOption {
	return func(options describeOptions) describeOptions {
		options.variantDecls = append(options.variantDecls, variantDecl{iface: iface, impls: impls})
		return options
	}
}

// WithEnumValues declares the constant values of an enumerated type
// for the duration of a single [Describe] call.
func WithEnumValues(value any, values ...string) DescribeOption {
	return func(options describeOptions) describeOptions {
		options.enumDecls = append(options.enumDecls, enumDecl{value: value, values: values})
		return options
	}
}

// WithGoDoc enriches descriptors with documentation extracted from the
// module's source code: type and field descriptions, and enum constant
// values in declaration order for enumerations described without
// explicit values.
func WithGoDoc() DescribeOption {
	return func(options describeOptions) describeOptions {
		options.withDocs = true
		return options
	}
}

// Describe derives a [Descriptor] tree from a Go type.
//
// Structs become composites with fields in declaration order, named with
// their json tag when present. A field is nullable if it is a pointer or
// carries the omitempty tag option. Named string types become
// enumerations and named interfaces become variant sets; both take their
// values and variants from the per-call options first, falling back to
// the process-wide registrations (see [RegisterVariants] and
// [RegisterEnumValues]).
//
// Descriptors are memoized per type, so self-referential and mutually
// referential types yield cyclic descriptor graphs rather than infinite
// trees.
func Describe(typ reflect.Type, opts ...DescribeOption) (*Descriptor, error) {
	if typ == nil {
		return nil, errors.New("cannot describe a nil type")
	}
	options := describeOptions{}
	for _, opt := range opts {
		options = opt(options)
	}
	d := &describer{seen: make(map[reflect.Type]*Descriptor)}
	if err := d.applyOptions(options); err != nil {
		return nil, err
	}
	root, err := d.descriptor(typ)
	if err != nil {
		return nil, err
	}
	if options.withDocs {
		if err = d.mergeDocs(); err != nil {
			return nil, err
		}
	}
	return root, nil
}

type describer struct {
	variants map[reflect.Type][]reflect.Type
	enums    map[reflect.Type][]string
	seen     map[reflect.Type]*Descriptor
}

func (d *describer) applyOptions(options describeOptions) error {
	d.variants = make(map[reflect.Type][]reflect.Type, len(options.variantDecls))
	d.enums = make(map[reflect.Type][]string, len(options.enumDecls))
	for _, decl := range options.variantDecls {
		ifaceType, err := interfaceType(decl.iface)
		if err != nil {
			return err
		}
		for _, impl := range decl.impls {
			t := reflect.TypeOf(impl)
			if t == nil || !t.Implements(ifaceType) {
				return errors.Errorf("%v does not implement %s", reflect.TypeOf(impl), ifaceType)
			}
			d.variants[ifaceType] = append(d.variants[ifaceType], t)
		}
	}
	for _, decl := range options.enumDecls {
		t := reflect.TypeOf(decl.value)
		if t == nil || t.PkgPath() == "" {
			return errors.Errorf("%v is not a named type", reflect.TypeOf(decl.value))
		}
		d.enums[t] = decl.values
	}
	return nil
}

func (d *describer) descriptor(typ reflect.Type) (*Descriptor, error) {
	if typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
	}
	if existing, ok := d.seen[typ]; ok {
		return existing, nil
	}
	if typ.Name() == "" {
		return nil, errors.Errorf("cannot describe unnamed type %s", typ)
	}
	switch typ.Kind() {
	case reflect.Struct:
		return d.composite(typ), nil
	case reflect.Interface:
		return d.variantSet(typ)
	case reflect.String:
		return d.enumeration(typ), nil
	default:
		return nil, errors.Errorf("cannot describe %s type %s", typ.Kind(), typ)
	}
}

func (d *describer) composite(typ reflect.Type) *Descriptor {
	desc := &Descriptor{Name: typ.Name(), Kind: KindComposite}
	// Memoized before fields are walked so self references
	// resolve to this very descriptor.
	d.seen[typ] = desc
	for _, field := range reflect.VisibleFields(typ) {
		if field.Anonymous {
			continue // promoted fields are visited on their own
		}
		name, omitEmpty := fieldName(field)
		if name == "" {
			continue
		}
		desc.Fields = append(desc.Fields, Field{
			Name:     name,
			Type:     d.typeRef(field.Type),
			Nullable: field.Type.Kind() == reflect.Ptr || omitEmpty,
		})
	}
	return desc
}

func (d *describer) enumeration(typ reflect.Type) *Descriptor {
	desc := &Descriptor{Name: typ.Name(), Kind: KindEnumeration}
	d.seen[typ] = desc
	values := d.enums[typ]
	if len(values) == 0 {
		values = global.valuesOf(typ)
	}
	desc.Values = values
	return desc
}

func (d *describer) variantSet(typ reflect.Type) (*Descriptor, error) {
	desc := &Descriptor{Name: typ.Name(), Kind: KindVariantSet}
	d.seen[typ] = desc
	impls := d.variants[typ]
	if len(impls) == 0 {
		// An interface described without explicit variants falls back to
		// the process-wide registrations. The result depends on what the
		// program registered before this call.
		impls = global.variantsOf(typ)
	}
	for _, impl := range impls {
		variant, err := d.descriptor(impl)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to describe variant %s of %s", impl, typ)
		}
		desc.Variants = append(desc.Variants, variant)
	}
	return desc, nil
}

var timeType = reflect.TypeOf(time.Time{})

// typeRef maps a declared field type to a TypeRef. Types with no schema
// representation (maps, channels, functions, unnamed structs) yield the
// zero TypeRef and stay untyped in the generated schema.
func (d *describer) typeRef(typ reflect.Type) TypeRef {
	if typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
	}
	if typ == timeType {
		return PrimitiveRef(PrimitiveDateTime)
	}
	switch typ.Kind() {
	case reflect.String:
		if typ.PkgPath() != "" {
			return d.namedRef(typ)
		}
		return PrimitiveRef(PrimitiveString)
	case reflect.Bool:
		return PrimitiveRef(PrimitiveBool)
	case reflect.Int8, reflect.Int16, reflect.Int32,
		reflect.Uint8, reflect.Uint16, reflect.Uint32:
		return PrimitiveRef(PrimitiveInt32)
	case reflect.Int, reflect.Int64, reflect.Uint, reflect.Uint64:
		return PrimitiveRef(PrimitiveInt64)
	case reflect.Float32:
		return PrimitiveRef(PrimitiveFloat32)
	case reflect.Float64:
		return PrimitiveRef(PrimitiveFloat64)
	case reflect.Slice, reflect.Array:
		return ArrayOf(d.typeRef(typ.Elem()))
	case reflect.Struct, reflect.Interface:
		return d.namedRef(typ)
	default:
		return TypeRef{}
	}
}

func (d *describer) namedRef(typ reflect.Type) TypeRef {
	if typ.Name() == "" {
		return TypeRef{}
	}
	named, err := d.descriptor(typ)
	if err != nil {
		return TypeRef{}
	}
	return NamedRef(named)
}

func (d *describer) mergeDocs() error {
	parser, err := godoc.NewParser()
	if err != nil {
		return err
	}
	for typ, desc := range d.seen {
		doc, err := parser.ParseType(typ)
		if err != nil {
			// Types declared outside the loadable module keep their bare descriptors.
			continue
		}
		desc.Description = doc.Doc
		for i := range desc.Fields {
			if fieldDoc, ok := doc.Fields[desc.Fields[i].Name]; ok {
				desc.Fields[i].Description = fieldDoc
			}
		}
		if desc.Kind == KindEnumeration && len(desc.Values) == 0 {
			desc.Values = doc.Constants
		}
	}
	return nil
}

// fieldName resolves a struct field's schema name from its json tag,
// falling back to the Go field name. An empty name means the field is
// skipped entirely.
func fieldName(field reflect.StructField) (name string, omitEmpty bool) {
	if !field.IsExported() {
		return "", false
	}
	tag := field.Tag.Get("json")
	if tag == "" {
		return field.Name, false
	}
	parts := strings.Split(tag, ",")
	name = parts[0]
	if name == "-" {
		return "", false
	}
	if name == "" {
		name = field.Name
	}
	for _, part := range parts[1:] {
		if part == "omitempty" {
			omitEmpty = true
		}
	}
	return name, omitEmpty
}
