package jsonschema

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/kaptinlin/jsonpointer"
)

// resolver owns the reference-resolution state for one Compile call:
// the stable URI->name table, the scoped base-URI stack, and the
// cycle-breaking memo that lets recursive schemas compile to recursive
// validator closures instead of looping forever.
//
// Reference: spec §4.A ("Reference resolver").
type resolver struct {
	compiler *Compiler

	// byURI maps an absolute URI (possibly with a JSON Pointer fragment) to
	// the schemaNode registered at it, populated as $id/$anchor/document
	// structure is walked.
	byURI map[string]*schemaNode

	// names assigns each schemaNode a stable, human-readable name derived
	// from its URI fragment, disambiguated on collision. Never affects
	// validation behavior; CompileToCode names its functions through its
	// own codeGenerator.nameFor instead.
	names      map[*schemaNode]string
	nameCounts map[string]int

	// baseStack is the scoped base-URI stack: looking up a $ref pushes the
	// referring schema's base URI for the duration of the lookup, and
	// inScope guarantees the pop even on panic/early-return.
	baseStack []string

	// compiled memoizes the validator built for each node, breaking cycles:
	// a node re-entered while still being built gets a forwarding closure
	// over the not-yet-populated entry, rather than infinite recursion.
	compiled map[*schemaNode]*compiledEntry
}

type compiledEntry struct {
	validator Validator
	err       error
	ready     bool
}

func newResolver(c *Compiler) *resolver {
	return &resolver{
		compiler:   c,
		byURI:      make(map[string]*schemaNode),
		names:      make(map[*schemaNode]string),
		nameCounts: make(map[string]int),
		compiled:   make(map[*schemaNode]*compiledEntry),
	}
}

// register associates a node with every absolute URI it can be reached by
// (its $id, its JSON Pointer location under the document base, and each
// $anchor), so resolveRef can find it later regardless of which form a
// $ref in the document uses.
func (r *resolver) register(uri string, node *schemaNode) {
	if uri == "" {
		return
	}
	if _, exists := r.byURI[uri]; !exists {
		r.byURI[uri] = node
	}
}

// inScope pushes baseURI onto the scope stack for the duration of fn and
// guarantees the pop runs even if fn panics, so a malformed nested schema
// can never leave the resolver's scope stack unbalanced.
func (r *resolver) inScope(baseURI string, fn func()) {
	r.baseStack = append(r.baseStack, baseURI)
	defer func() {
		r.baseStack = r.baseStack[:len(r.baseStack)-1]
	}()
	fn()
}

// currentBaseURI returns the innermost scope's base URI, or the
// compiler's DefaultBaseURI if the stack is empty.
func (r *resolver) currentBaseURI() string {
	if len(r.baseStack) == 0 {
		return r.compiler.DefaultBaseURI
	}
	return r.baseStack[len(r.baseStack)-1]
}

// resolveRef resolves a $ref string against the current scope, returning
// the target node. Absolute refs, scope-relative refs, and plain JSON
// Pointer fragments ("#/definitions/foo") are all supported; $anchor-style
// fragments ("#Foo") are looked up directly in byURI.
func (r *resolver) resolveRef(ref string) (*schemaNode, error) {
	if ref == "#" {
		root, ok := r.byURI[r.currentBaseURI()]
		if ok {
			return root, nil
		}
	}

	base, fragment := splitRef(ref)
	absBase := base
	if absBase == "" {
		absBase = r.currentBaseURI()
	} else if !isAbsoluteURI(absBase) {
		absBase = resolveRelativeURI(r.currentBaseURI(), absBase)
	}

	lookupURI := absBase
	if fragment != "" {
		lookupURI = absBase + "#" + fragment
	}
	if node, ok := r.byURI[lookupURI]; ok {
		return node, nil
	}
	if fragment != "" && !isJSONPointerFragment(fragment) {
		// plain $anchor name, tried without the base URI too (anchors are
		// frequently registered without their document's URI prefix)
		if node, ok := r.byURI["#"+fragment]; ok {
			return node, nil
		}
	}
	if node, ok := r.byURI[absBase]; ok && fragment == "" {
		return node, nil
	}

	if node, err, handled := r.resolveInDocument(absBase, fragment, lookupURI); handled {
		return node, err
	}

	return r.resolveOutOfDocument(absBase, fragment)
}

// resolveInDocument navigates a JSON Pointer fragment directly into a
// document the compiler already holds the raw parsed form of (the root
// document being compiled, or one fetched earlier by the ref handler),
// covering the case ordinary keyword traversal never visits: a $ref
// pointing at a "$defs"/"definitions" entry nothing else references.
// handled is false when absBase names a document the resolver has no raw
// form for, so the caller should fall through to resolveOutOfDocument.
func (r *resolver) resolveInDocument(absBase, fragment, lookupURI string) (*schemaNode, error, bool) {
	doc, ok := r.compiler.documents[absBase]
	if !ok {
		return nil, nil, false
	}
	raw, err := navigateJSONPointer(doc.raw, fragment)
	if err != nil {
		return nil, newDefinitionError("", "cannot resolve $ref %q: %v", lookupURI, err), true
	}
	node, err := childNode(schemaContext{baseURI: absBase, draft: doc.draft, compiler: r.compiler, resolver: r}, raw)
	if err != nil {
		return nil, err, true
	}
	r.register(lookupURI, node)
	return node, nil, true
}

// navigateJSONPointer walks a generic JSON value (as decoded into
// map[string]interface{}/[]interface{}/scalars) following a JSON Pointer,
// percent-decoding each segment the way ref URIs encode them before
// jsonpointer's own "~1"/"~0" unescaping is applied.
func navigateJSONPointer(root interface{}, fragment string) (interface{}, error) {
	if fragment == "" || fragment == "/" {
		return root, nil
	}
	segments := jsonpointer.Parse(fragment)
	current := root
	for _, segment := range segments {
		decoded, err := url.PathUnescape(segment)
		if err != nil {
			return nil, err
		}
		switch node := current.(type) {
		case map[string]interface{}:
			next, ok := node[decoded]
			if !ok {
				return nil, newDefinitionError("", "no such property %q", decoded)
			}
			current = next
		case []interface{}:
			idx, err := strconv.Atoi(decoded)
			if err != nil || idx < 0 || idx >= len(node) {
				return nil, newDefinitionError("", "no such array index %q", decoded)
			}
			current = node[idx]
		default:
			return nil, newDefinitionError("", "cannot navigate into %s at %q", pythonTypeName(current), decoded)
		}
	}
	return current, nil
}

// resolveOutOfDocument asks the compiler's registered ref handler to fetch
// and compile a schema living outside the current document. Returns
// ErrRefHandlerMissing if none is registered, matching spec §7's
// requirement that out-of-document refs fail closed by default.
func (r *resolver) resolveOutOfDocument(baseURI, fragment string) (*schemaNode, error) {
	if r.compiler.refHandler == nil {
		return nil, ErrRefHandlerMissing
	}
	raw, err := r.compiler.refHandler(baseURI)
	if err != nil {
		return nil, err
	}
	node, err := r.compiler.parseAndRegister(r, raw, baseURI)
	if err != nil {
		return nil, err
	}
	if fragment == "" {
		return node, nil
	}
	return r.resolveRef(baseURI + "#" + fragment)
}

// nameFor returns node's stable codegen name, generating one on first use
// from its registration URI's fragment (e.g. "#/$defs/Foo" -> "Foo"),
// substituting "_" for path separators and disambiguating collisions with
// a numeric suffix.
func (r *resolver) nameFor(node *schemaNode, hintURI string) string {
	if name, ok := r.names[node]; ok {
		return name
	}
	base := nameFromURI(hintURI)
	name := base
	if n := r.nameCounts[base]; n > 0 {
		name = base + "_" + strconv.Itoa(n)
	}
	r.nameCounts[base]++
	r.names[node] = name
	return name
}

func nameFromURI(uri string) string {
	_, fragment := splitRef(uri)
	if fragment == "" {
		return "root"
	}
	fragment = strings.TrimPrefix(fragment, "/")
	if fragment == "" {
		return "root"
	}
	name := strings.ReplaceAll(fragment, "/", "_")
	name = strings.ReplaceAll(name, "~1", "_")
	name = strings.ReplaceAll(name, "~0", "_")
	return name
}

// compileNode returns the memoized validator for node, building it via
// build on first request. A node re-entered while its own build is still
// in progress (a schema that $refs itself, directly or through a cycle)
// gets a closure that forwards to the entry once it is populated, which by
// the time it is ever invoked at runtime always is.
func (r *resolver) compileNode(node *schemaNode, build func(*schemaNode) (Validator, error)) (Validator, error) {
	if entry, ok := r.compiled[node]; ok {
		if entry.ready {
			return entry.validator, entry.err
		}
		return func(vc *vctx, value interface{}, path Path) (interface{}, *Diagnostic) {
			if entry.validator == nil {
				return nil, newDiagnostic("", "schema failed to compile", value, path, nil)
			}
			return entry.validator(vc, value, path)
		}, nil
	}
	entry := &compiledEntry{}
	r.compiled[node] = entry
	v, err := build(node)
	entry.validator = v
	entry.err = err
	entry.ready = true
	return v, err
}
