// Package typedesc models types as plain descriptor data and derives
// such descriptors from Go types via reflection.
//
// A [Descriptor] describes a composite (struct), an enumeration (named
// string type) or a closed variant set (interface with a declared list
// of implementations). Descriptors are plain data: deriving them is a
// separate step from schema synthesis, so the synthesis engine never
// reflects at generation time.
//
// Go has no sum types, so variant sets and enum values are declared
// explicitly: per call with [WithVariants] and [WithEnumValues], or
// process-wide with [RegisterVariants] and [RegisterEnumValues]. With
// [WithGoDoc], descriptors are enriched with doc comments and enum
// constants extracted from the module's source code.
package typedesc
