package oasgen

import (
	"strings"

	"github.com/nobl9/govy/pkg/govy"
	"github.com/nobl9/govy/pkg/rules"
	"github.com/pkg/errors"

	"github.com/nieomylnieja/oasgen/pkg/typedesc"
)

// Document is an OpenAPI 3.0 document.
type Document struct {
	OpenAPI    string               `json:"openapi" yaml:"openapi"`
	Info       Info                 `json:"info" yaml:"info"`
	Servers    []Server             `json:"servers,omitempty" yaml:"servers,omitempty"`
	Tags       []Tag                `json:"tags,omitempty" yaml:"tags,omitempty"`
	Paths      map[string]*PathItem `json:"paths" yaml:"paths"`
	Components *Components          `json:"components,omitempty" yaml:"components,omitempty"`
}

// Info contains API metadata.
type Info struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Version     string `json:"version" yaml:"version"`
}

// Server defines an API server.
type Server struct {
	URL         string `json:"url" yaml:"url"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Tag defines an API tag.
type Tag struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Components holds the reusable schemas synthesized during the build.
type Components struct {
	Schemas map[string]*Schema `json:"schemas,omitempty" yaml:"schemas,omitempty"`
}

// PathItem describes the operations available on a path.
type PathItem struct {
	Get    *Operation `json:"get,omitempty" yaml:"get,omitempty"`
	Put    *Operation `json:"put,omitempty" yaml:"put,omitempty"`
	Post   *Operation `json:"post,omitempty" yaml:"post,omitempty"`
	Delete *Operation `json:"delete,omitempty" yaml:"delete,omitempty"`
	Patch  *Operation `json:"patch,omitempty" yaml:"patch,omitempty"`
}

// Operation describes a single API operation on a path.
type Operation struct {
	OperationID string               `json:"operationId,omitempty" yaml:"operationId,omitempty"`
	Summary     string               `json:"summary,omitempty" yaml:"summary,omitempty"`
	Description string               `json:"description,omitempty" yaml:"description,omitempty"`
	Tags        []string             `json:"tags,omitempty" yaml:"tags,omitempty"`
	Parameters  []*Parameter         `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	RequestBody *RequestBody         `json:"requestBody,omitempty" yaml:"requestBody,omitempty"`
	Responses   map[string]*Response `json:"responses" yaml:"responses"`
}

// Parameter describes a single operation parameter.
type Parameter struct {
	Name        string  `json:"name" yaml:"name"`
	In          string  `json:"in" yaml:"in"`
	Description string  `json:"description,omitempty" yaml:"description,omitempty"`
	Required    bool    `json:"required,omitempty" yaml:"required,omitempty"`
	Schema      *Schema `json:"schema,omitempty" yaml:"schema,omitempty"`
}

// RequestBody describes a request body.
type RequestBody struct {
	Description string                `json:"description,omitempty" yaml:"description,omitempty"`
	Required    bool                  `json:"required,omitempty" yaml:"required,omitempty"`
	Content     map[string]*MediaType `json:"content,omitempty" yaml:"content,omitempty"`
}

// Response describes a single response of an operation.
type Response struct {
	Description string                `json:"description" yaml:"description"`
	Content     map[string]*MediaType `json:"content,omitempty" yaml:"content,omitempty"`
}

// MediaType holds the schema and example for one media type.
type MediaType struct {
	Schema  *Schema `json:"schema,omitempty" yaml:"schema,omitempty"`
	Example any     `json:"example,omitempty" yaml:"example,omitempty"`
}

const jsonMediaType = "application/json"

// NewOperation starts a fluent operation definition.
func NewOperation(operationID string) *Operation {
	return &Operation{
		OperationID: operationID,
		Responses:   make(map[string]*Response),
	}
}

func (o *Operation) WithSummary(summary string) *Operation {
	o.Summary = summary
	return o
}

func (o *Operation) WithDescription(description string) *Operation {
	o.Description = description
	return o
}

func (o *Operation) WithTags(tags ...string) *Operation {
	o.Tags = append(o.Tags, tags...)
	return o
}

func (o *Operation) WithParameter(name, in, description string, required bool, schema *Schema) *Operation {
	o.Parameters = append(o.Parameters, &Parameter{
		Name:        name,
		In:          in,
		Description: description,
		Required:    required,
		Schema:      schema,
	})
	return o
}

// WithJSONRequest sets an application/json request body.
func (o *Operation) WithJSONRequest(schema *Schema, required bool) *Operation {
	o.RequestBody = &RequestBody{
		Required: required,
		Content:  map[string]*MediaType{jsonMediaType: {Schema: schema}},
	}
	return o
}

// WithJSONResponse adds a response under the given status code with an
// application/json body. A nil schema adds a body-less response.
func (o *Operation) WithJSONResponse(status, description string, schema *Schema) *Operation {
	response := &Response{Description: description}
	if schema != nil {
		response.Content = map[string]*MediaType{jsonMediaType: {Schema: schema}}
	}
	o.Responses[status] = response
	return o
}

// Builder accumulates a document: info, servers, tags, paths and the
// schema components synthesized through its registry. Like the registry
// it is scoped to exactly one build session and is not safe for
// concurrent use.
type Builder struct {
	doc      *Document
	registry *Registry
	diags    []Diagnostic
}

// NewBuilder starts a document build session with its own schema registry.
func NewBuilder(title, version string, opts ...Option) (*Builder, error) {
	registry, err := NewRegistry(opts...)
	if err != nil {
		return nil, err
	}
	return &Builder{
		doc: &Document{
			OpenAPI: "3.0.3",
			Info:    Info{Title: title, Version: version},
			Paths:   make(map[string]*PathItem),
		},
		registry: registry,
	}, nil
}

// Registry exposes the session's schema registry.
func (b *Builder) Registry() *Registry { return b.registry }

func (b *Builder) SetDescription(description string) *Builder {
	b.doc.Info.Description = description
	return b
}

func (b *Builder) AddServer(url, description string) *Builder {
	b.doc.Servers = append(b.doc.Servers, Server{URL: url, Description: description})
	return b
}

func (b *Builder) AddTag(name, description string) *Builder {
	b.doc.Tags = append(b.doc.Tags, Tag{Name: name, Description: description})
	return b
}

// AddSchema registers the descriptor with the session registry and
// returns a Reference usable in operation schemas.
func (b *Builder) AddSchema(desc *typedesc.Descriptor) Reference {
	return b.registry.Register(desc)
}

// AddOperation attaches an operation under the given method and path.
// Unknown methods are recorded as diagnostics and skipped.
func (b *Builder) AddOperation(method, path string, op *Operation) *Builder {
	item := b.doc.Paths[path]
	if item == nil {
		item = &PathItem{}
	}
	switch strings.ToLower(method) {
	case "get":
		item.Get = op
	case "put":
		item.Put = op
	case "post":
		item.Post = op
	case "delete":
		item.Delete = op
	case "patch":
		item.Patch = op
	default:
		b.report(path, "unsupported method "+method)
		return b
	}
	b.doc.Paths[path] = item
	return b
}

// SetRequestExample converts the value and embeds it as the JSON request
// example of the given operation. Conversion defects are recorded as
// diagnostics; a value that cannot be converted at all leaves the
// example unset so the document still serializes.
func (b *Builder) SetRequestExample(method, path string, value any) *Builder {
	op := b.operation(method, path)
	if op == nil || op.RequestBody == nil || op.RequestBody.Content[jsonMediaType] == nil {
		b.report(path, "no JSON request body to attach an example to")
		return b
	}
	if converted, ok := b.convert(value); ok {
		op.RequestBody.Content[jsonMediaType].Example = converted
	}
	return b
}

// SetResponseExample converts the value and embeds it as the JSON
// example of the given response. It follows the same containment rules
// as [Builder.SetRequestExample].
func (b *Builder) SetResponseExample(method, path, status string, value any) *Builder {
	op := b.operation(method, path)
	if op == nil || op.Responses[status] == nil || op.Responses[status].Content[jsonMediaType] == nil {
		b.report(path, "no JSON response body to attach an example to")
		return b
	}
	if converted, ok := b.convert(value); ok {
		op.Responses[status].Content[jsonMediaType].Example = converted
	}
	return b
}

func (b *Builder) convert(value any) (any, bool) {
	converted, ok, diags := convertExample(value)
	b.diags = append(b.diags, diags...)
	return converted, ok
}

func (b *Builder) operation(method, path string) *Operation {
	item := b.doc.Paths[path]
	if item == nil {
		return nil
	}
	switch strings.ToLower(method) {
	case "get":
		return item.Get
	case "put":
		return item.Put
	case "post":
		return item.Post
	case "delete":
		return item.Delete
	case "patch":
		return item.Patch
	default:
		return nil
	}
}

var documentValidator = govy.New(
	govy.For(func(d Document) string { return d.OpenAPI }).
		WithName("openapi").
		Required().
		Rules(rules.StringNotEmpty()),
	govy.For(func(d Document) string { return d.Info.Title }).
		WithName("info.title").
		Required().
		Rules(rules.StringNotEmpty()),
	govy.For(func(d Document) string { return d.Info.Version }).
		WithName("info.version").
		Required().
		Rules(rules.StringNotEmpty()),
).WithName("Document")

// Build validates the accumulated document, snapshots the registry into
// the components section and returns the result. The builder can keep
// accumulating afterwards; each Build takes a fresh snapshot.
func (b *Builder) Build() (*Document, error) {
	doc := *b.doc
	if schemas := b.registry.Schemas(); len(schemas) > 0 {
		doc.Components = &Components{Schemas: schemas}
	}
	if err := documentValidator.Validate(doc); err != nil {
		return nil, errors.Wrap(err, "invalid document")
	}
	return &doc, nil
}

// Diagnostics returns the defects recorded by the builder and its registry.
func (b *Builder) Diagnostics() []Diagnostic {
	return append(b.registry.Diagnostics(), b.diags...)
}

func (b *Builder) report(subject, message string) {
	b.diags = append(b.diags, Diagnostic{Subject: subject, Message: message})
}
