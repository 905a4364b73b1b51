package jsonschema

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-json-experiment/json"
	"github.com/goccy/go-yaml"
)

// registeredDocument is one raw parsed schema document the compiler holds
// onto for the lifetime of a Compile call (or longer, for documents handed
// back by a RefHandler), so resolver.resolveInDocument can navigate a
// JSON Pointer into locations ordinary keyword traversal never visits.
type registeredDocument struct {
	raw   interface{}
	draft string
}

// RefHandler fetches the raw JSON Schema document for an out-of-document
// $ref target URI. Reference: spec §5 ("Ref handler interface").
type RefHandler func(uri string) (interface{}, error)

// DefaultFunc generates a dynamic default value at validation time, named
// and invoked via the "name(args...)" call syntax default_funcs.go parses
// out of a schema's "default" string.
type DefaultFunc func(args ...interface{}) (interface{}, error)

// Compiler turns raw JSON Schema documents into CompiledSchemas. A single
// Compiler can compile many schemas; format registrations, default
// functions and the ref handler are shared across all of them.
//
// Grounded on the teacher's Compiler (compiler.go): the same
// mutex-protected registries and NewCompiler/With*/Register* surface,
// narrowed to this architecture's resolver-per-compile model instead of a
// compiler-wide schema cache, since the schema IR here is a throwaway tree
// of schemaNodes rather than a long-lived *Schema graph.
type Compiler struct {
	mu sync.RWMutex

	// documents holds the raw parsed form of every document this compiler
	// has seen, keyed by base URI, so a $ref target unreachable by ordinary
	// keyword traversal (an unreferenced "$defs" entry) can still be found.
	documents map[string]registeredDocument

	DefaultBaseURI string // Reference: spec §5 ("compile(schema, ...)").
	AssertFormat   bool

	jsonEncoder func(v interface{}) ([]byte, error)
	jsonDecoder func(data []byte, v interface{}) error

	formats      *formatRegistry
	defaultFuncs map[string]DefaultFunc
	refHandler   RefHandler
}

// NewCompiler creates a Compiler with the default format set, the
// go-json-experiment JSON codec, and no ref handler registered (making
// out-of-document $refs a definition-time error until SetRefHandler is
// called, per spec §5).
func NewCompiler() *Compiler {
	return &Compiler{
		documents:    make(map[string]registeredDocument),
		defaultFuncs: make(map[string]DefaultFunc),
		formats:      newFormatRegistry(),
		jsonEncoder:  func(v interface{}) ([]byte, error) { return json.Marshal(v) },
		jsonDecoder:  func(data []byte, v interface{}) error { return json.Unmarshal(data, v) },
	}
}

// WithEncoderJSON overrides the JSON encoder used when a DefaultFunc or
// other extension point needs to serialize a value.
func (c *Compiler) WithEncoderJSON(encoder func(v interface{}) ([]byte, error)) *Compiler {
	c.jsonEncoder = encoder
	return c
}

// WithDecoderJSON overrides the JSON decoder Compile uses to parse a raw
// schema document's bytes.
func (c *Compiler) WithDecoderJSON(decoder func(data []byte, v interface{}) error) *Compiler {
	c.jsonDecoder = decoder
	return c
}

// SetDefaultBaseURI sets the base URI assumed for a schema document that
// declares no $id/id of its own.
func (c *Compiler) SetDefaultBaseURI(baseURI string) *Compiler {
	c.DefaultBaseURI = baseURI
	return c
}

// SetAssertFormat toggles whether the "format" keyword rejects values that
// fail a recognized format, or is advisory-only (the draft-04/06/07
// default: format is an annotation, not an assertion, unless the
// implementation opts in).
func (c *Compiler) SetAssertFormat(assert bool) *Compiler {
	c.AssertFormat = assert
	return c
}

// SetRefHandler registers the function used to fetch schema documents
// referenced by an out-of-document $ref. Reference: spec §5 ("Ref handler
// interface ... absence makes such refs a definition-time error").
func (c *Compiler) SetRefHandler(fn RefHandler) *Compiler {
	c.refHandler = fn
	return c
}

// RegisterFormat adds or replaces a named format checker. replace must be
// true to overwrite a built-in or previously registered format of the same
// name, guarding against an accidental silent override.
func (c *Compiler) RegisterFormat(name string, fn FormatFunc, replace bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.formats.register(name, fn, replace)
}

// RegisterDefaultFunc registers a named dynamic default-value generator,
// invocable from a schema's "default" via the "name(args...)" call syntax
// default_funcs.go parses.
func (c *Compiler) RegisterDefaultFunc(name string, fn DefaultFunc) *Compiler {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.defaultFuncs[name] = fn
	return c
}

func (c *Compiler) getDefaultFunc(name string) (DefaultFunc, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	fn, ok := c.defaultFuncs[name]
	return fn, ok
}

// Compile parses raw as a JSON Schema document and compiles it into a
// CompiledSchema. uri, if given, seeds the document's base URI when the
// schema itself declares no $id/id. Reference: spec §5
// ("compile(schema, formats?, handlers?) -> validator").
func (c *Compiler) Compile(raw []byte, uri ...string) (*CompiledSchema, error) {
	var parsed interface{}
	if err := c.jsonDecoder(raw, &parsed); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrJSONUnmarshal, err)
	}
	return c.compileParsed(parsed, uri...)
}

// CompileYAML parses raw as YAML (permitting the common practice of
// authoring JSON Schema documents in YAML for readability) and compiles
// it exactly as Compile does.
func (c *Compiler) CompileYAML(raw []byte, uri ...string) (*CompiledSchema, error) {
	var parsed interface{}
	if err := yaml.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrYAMLUnmarshal, err)
	}
	parsed = normalizeYAMLValue(parsed)
	return c.compileParsed(parsed, uri...)
}

func (c *Compiler) compileParsed(parsed interface{}, uri ...string) (*CompiledSchema, error) {
	baseURI := c.DefaultBaseURI
	if len(uri) > 0 && uri[0] != "" {
		baseURI = uri[0]
	}

	switch parsed.(type) {
	case bool, map[string]interface{}:
	default:
		return nil, ErrInvalidSchemaType
	}

	r := newResolver(c)
	node, err := c.parseAndRegister(r, parsed, baseURI)
	if err != nil {
		return nil, err
	}

	validator, err := buildValidator(node, r)
	if err != nil {
		return nil, err
	}
	return &CompiledSchema{validator: validator, node: node, compiler: c}, nil
}

// parseAndRegister builds the root schemaNode for one document, records
// its raw form under baseURI in c.documents so resolver.resolveInDocument
// can navigate into it later, and resolves the node's own $id/id against
// baseURI the same way any nested schema would.
func (c *Compiler) parseAndRegister(r *resolver, raw interface{}, baseURI string) (*schemaNode, error) {
	draft := determineDraft(raw)

	c.mu.Lock()
	c.documents[baseURI] = registeredDocument{raw: raw, draft: draft}
	c.mu.Unlock()

	node, err := childNode(schemaContext{baseURI: baseURI, draft: draft, compiler: c, resolver: r}, raw)
	if err != nil {
		return nil, err
	}
	if _, exists := r.byURI[baseURI]; !exists {
		r.byURI[baseURI] = node
	}
	return node, nil
}

// determineDraft inspects a raw schema document's "$schema" keyword to
// pick which of draft-04/06/07's quirks apply, defaulting to draft-04 when
// absent. Reference: spec §5 ("Supported schema dialects ... recognized by
// $schema; defaults to draft-04 when absent").
func determineDraft(raw interface{}) string {
	obj, ok := raw.(map[string]interface{})
	if !ok {
		return "draft-04"
	}
	schemaURI, _ := obj["$schema"].(string)
	switch {
	case strings.Contains(schemaURI, "draft-07"):
		return "draft-07"
	case strings.Contains(schemaURI, "draft-06"):
		return "draft-06"
	default:
		return "draft-04"
	}
}

// normalizeYAMLValue recurses through a YAML-decoded value converting any
// map[interface{}]interface{} to map[string]interface{}, guarding against
// YAML decoders (unlike goccy/go-yaml's default mode) that still produce
// the non-string-keyed form.
func normalizeYAMLValue(v interface{}) interface{} {
	switch t := v.(type) {
	case map[string]interface{}:
		for k, val := range t {
			t[k] = normalizeYAMLValue(val)
		}
		return t
	case map[interface{}]interface{}:
		out := make(map[string]interface{}, len(t))
		for k, val := range t {
			out[fmt.Sprint(k)] = normalizeYAMLValue(val)
		}
		return out
	case []interface{}:
		for i, val := range t {
			t[i] = normalizeYAMLValue(val)
		}
		return t
	default:
		return v
	}
}
