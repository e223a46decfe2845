package oasgen

import (
	"strings"

	"github.com/nieomylnieja/oasgen/pkg/typedesc"
)

const schemaRefPrefix = "#/components/schemas/"

// Reference is a path pointing at a named schema in the registry,
// of the form "#/components/schemas/<Name>".
type Reference string

// SchemaRef builds a Reference to a named schema.
func SchemaRef(name string) Reference { return Reference(schemaRefPrefix + name) }

// Name returns the schema name the reference points at.
func (r Reference) Name() string { return strings.TrimPrefix(string(r), schemaRefPrefix) }

// Diagnostic describes a recoverable defect encountered while building a
// document. Defects are contained to the schema, field or value under
// construction and never abort the build.
type Diagnostic struct {
	// Subject names what the diagnostic applies to:
	// a schema name, a path, or a value path.
	Subject string
	Message string
}

// Registry is the name-keyed table of finalized schemas for one document
// build session. It is not safe for concurrent use; give each build its
// own instance.
type Registry struct {
	cfg      Config
	schemas  map[string]*Schema
	names    []string
	sources  map[string]*typedesc.Descriptor
	inFlight map[string]struct{}
	diags    []Diagnostic
}

// NewRegistry creates an empty registry for a single build session.
func NewRegistry(opts ...Option) (*Registry, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		cfg = opt(cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Registry{
		cfg:      cfg,
		schemas:  make(map[string]*Schema),
		sources:  make(map[string]*typedesc.Descriptor),
		inFlight: make(map[string]struct{}),
	}, nil
}

// Register synthesizes a schema for the descriptor and returns a
// Reference to it.
//
// Registration is idempotent: a name is synthesized at most once per
// session, and registering it again returns the existing Reference
// without re-synthesis. If synthesis of the same name is already on the
// call stack (a self reference or a cycle in the descriptor graph), the
// Reference is returned immediately without recursing further; this is
// the only mechanism preventing infinite recursion on cyclic type
// graphs. A descriptor without a name cannot be registered and yields an
// empty Reference plus a diagnostic.
func (r *Registry) Register(desc *typedesc.Descriptor) Reference {
	if desc == nil || desc.Name == "" {
		r.report("", "cannot register a schema without a name")
		return ""
	}
	name := desc.Name
	if _, done := r.schemas[name]; done {
		if r.sources[name] != desc {
			r.report(name, "name already registered from a different descriptor, keeping the first entry")
		}
		return SchemaRef(name)
	}
	if _, building := r.inFlight[name]; building {
		return SchemaRef(name)
	}
	r.inFlight[name] = struct{}{}
	defer delete(r.inFlight, name)
	schema := r.synthesize(desc)
	r.schemas[name] = schema
	r.sources[name] = desc
	r.names = append(r.names, name)
	return SchemaRef(name)
}

// Schema returns the finalized schema registered under the given name.
func (r *Registry) Schema(name string) (*Schema, bool) {
	schema, ok := r.schemas[name]
	return schema, ok
}

// Names returns the registered schema names in registration order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.names...)
}

// Schemas returns a snapshot of the registered schemas keyed by name.
func (r *Registry) Schemas() map[string]*Schema {
	snapshot := make(map[string]*Schema, len(r.schemas))
	for name, schema := range r.schemas {
		snapshot[name] = schema
	}
	return snapshot
}

// Diagnostics returns the defects recorded during registration.
func (r *Registry) Diagnostics() []Diagnostic {
	return append([]Diagnostic(nil), r.diags...)
}

func (r *Registry) report(subject, message string) {
	r.diags = append(r.diags, Diagnostic{Subject: subject, Message: message})
}
