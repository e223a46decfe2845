// Package oasgen synthesizes OpenAPI 3.0 schema components from type
// descriptors and assembles them into complete API documents.
//
// The engine is driven by [typedesc.Descriptor] trees, usually derived
// from Go types with [typedesc.Describe]. Synthesis is a pure,
// single-threaded recursive descent over descriptor data: composites
// become object schemas, enumerations become string schemas with literal
// value lists, and closed variant sets become discriminated unions.
//
// # Basic Usage
//
// Register a type with a fresh registry:
//
//	desc, err := typedesc.Describe(reflect.TypeOf(TreeNode{}))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	registry, err := oasgen.NewRegistry()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	ref := registry.Register(desc)
//
// Nested named types are registered recursively and referenced with
// "#/components/schemas/<Name>" paths. Self-referential and mutually
// referential type graphs terminate: a name whose synthesis is already
// in progress resolves to a Reference instead of recursing.
//
// # Documents
//
// Builder accumulates a full document around a registry:
//
//	b, err := oasgen.NewBuilder("Pet Store", "1.0.0")
//	shapeRef := b.AddSchema(shapeDesc)
//	b.AddOperation("get", "/shapes", oasgen.NewOperation("listShapes").
//	    WithJSONResponse("200", "All shapes.", oasgen.RefSchema(shapeRef)))
//	doc, err := b.Build()
//	data, err := doc.YAML()
//
// # Error containment
//
// Defects are contained to the schema, field or value under
// construction: they surface as [Diagnostic] values on the registry and
// builder, and never abort a build.
//
// # Configuration Options
//
// Options adjust synthesis per session:
//
//	oasgen.NewRegistry(
//	    oasgen.WithoutEnumValues(),
//	    oasgen.WithDiscriminatorProperty("kind"),
//	)
package oasgen
