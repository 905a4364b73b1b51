package jsonschema

import (
	"regexp"
)

// knownSchemaFields contains every keyword this compiler understands,
// across draft-04, draft-06 and draft-07. Anything else found on a schema
// object is an extension field and is preserved verbatim but never
// interpreted.
//
// Reference: spec §1 ("supported keyword set"), Non-goals (2019-09/2020-12
// keywords are intentionally absent).
var knownSchemaFields = map[string]struct{}{
	"$id":         {}, // draft-06+; draft-04 used "id" instead, see resolveNodeID
	"id":          {},
	"$schema":     {},
	"$ref":        {},
	"$comment":    {},
	"definitions": {},
	"$defs":       {}, // draft-07 compatibility alias some documents use early

	"allOf":                {},
	"anyOf":                {},
	"oneOf":                {},
	"not":                  {},
	"items":                {},
	"additionalItems":      {},
	"properties":           {},
	"patternProperties":    {},
	"additionalProperties": {},
	"propertyNames":        {}, // draft-06+
	"dependencies":         {},

	"type":  {},
	"enum":  {},
	"const": {}, // draft-06+

	"multipleOf":       {},
	"maximum":          {},
	"exclusiveMaximum": {},
	"minimum":          {},
	"exclusiveMinimum": {},

	"maxLength": {},
	"minLength": {},
	"pattern":   {},
	"format":    {},

	"maxItems":    {},
	"minItems":    {},
	"uniqueItems": {},

	"maxProperties": {},
	"minProperties": {},
	"required":      {},

	"title":       {},
	"description": {},
	"default":     {},
	"examples":    {}, // draft-06+
}

// schemaNode is the compiler's in-memory representation of one JSON Schema
// object (or boolean), after draft normalization. Component B of the spec.
//
// Grounded on the teacher's Schema struct (schema.go): the same
// baseURI/compiler back-references and map-of-subschema shape, pruned to
// the draft-04/06/07 keyword surface and a raw-keyword map instead of one
// typed Go field per keyword, since the compiler here consumes keywords
// through one compile_*.go pass per family rather than through direct
// struct field access.
type schemaNode struct {
	raw     map[string]interface{} // nil for boolean schemas
	boolean *bool                  // non-nil for `true`/`false` schemas

	id       string // resolved $id / id, absolute
	baseURI  string // base URI in effect for resolving nested $ref/$id
	draft    string // "draft-04", "draft-06", or "draft-07"
	compiler *Compiler

	// Normalized by normalize(), see normalize.go.
	typeSet            map[string]bool
	requiredAdditional *requiredAdditionalRule
	exclusiveMinimum   *float64
	exclusiveMaximum   *float64

	// exclusiveMinimumFromBool/exclusiveMaximumFromBool record which of the
	// two "exclusiveMinimum"/"exclusiveMaximum" forms produced the bound
	// above: true for the draft-04 boolean form (the bound itself lives on
	// the sibling "minimum"/"maximum" keyword, so a violation is reported
	// under that keyword's rule name), false for the draft-06+ standalone
	// numeric form (reported under its own rule name). See compile_numeric.go.
	exclusiveMinimumFromBool bool
	exclusiveMaximumFromBool bool

	compiledPattern *regexp.Regexp // cache for the "pattern" keyword's regexp
}

// requiredAdditionalRule is the fused form of "required" +
// "additionalProperties": false, the single combined diagnostic spec §4.B
// calls for instead of independent per-keyword failures.
type requiredAdditionalRule struct {
	required             []string
	additionalDisallowed bool
}

// get returns the raw value of a keyword, or nil if absent or the node is
// boolean.
func (n *schemaNode) get(keyword string) interface{} {
	if n.raw == nil {
		return nil
	}
	return n.raw[keyword]
}

func (n *schemaNode) has(keyword string) bool {
	if n.raw == nil {
		return false
	}
	_, ok := n.raw[keyword]
	return ok
}

// schemaContext is the inherited state a nested schema value needs to
// become a schemaNode: the scope it was found in, and the resolver that
// registers its $id (if any) for later $ref lookups.
type schemaContext struct {
	baseURI  string
	draft    string
	compiler *Compiler
	resolver *resolver
}

// ctx captures n's own scope as a schemaContext, for compiling n's
// children.
func (n *schemaNode) ctx(r *resolver) schemaContext {
	return schemaContext{baseURI: n.baseURI, draft: n.draft, compiler: n.compiler, resolver: r}
}

// childNode builds a schemaNode for a nested raw schema value, inheriting
// baseURI/draft/compiler from ctx and resolving its own $id if present.
func childNode(ctx schemaContext, value interface{}) (*schemaNode, error) {
	switch v := value.(type) {
	case bool:
		b := v
		return &schemaNode{boolean: &b, baseURI: ctx.baseURI, draft: ctx.draft, compiler: ctx.compiler}, nil
	case map[string]interface{}:
		n := &schemaNode{raw: v, baseURI: ctx.baseURI, draft: ctx.draft, compiler: ctx.compiler}
		if err := resolveNodeID(n, ctx.resolver); err != nil {
			return nil, err
		}
		if err := normalize(n); err != nil {
			return nil, err
		}
		return n, nil
	case nil:
		return nil, nil
	default:
		return nil, newDefinitionError("", "schema must be an object or boolean, got %s", pythonTypeName(value))
	}
}

// resolveNodeID resolves this node's own $id (draft-06+) or id (draft-04)
// against the enclosing baseURI, updating baseURI for its own subschemas
// and registering it with r (component A) so a later $ref can find it by
// that id regardless of whether normal keyword traversal ever reaches
// this node again.
func resolveNodeID(n *schemaNode, r *resolver) error {
	idValue := n.get("$id")
	if idValue == nil {
		idValue = n.get("id")
	}
	id, ok := idValue.(string)
	if !ok || id == "" {
		return nil
	}
	anchorOnly := len(id) > 0 && id[0] == '#'

	resolved := id
	if !anchorOnly && !isAbsoluteURI(id) && n.baseURI != "" {
		resolved = resolveRelativeURI(n.baseURI, id)
	} else if anchorOnly {
		resolved = n.baseURI + id
	}
	n.id = resolved
	if r != nil {
		r.register(resolved, n)
	}
	if !anchorOnly {
		n.baseURI = getBaseURI(resolved)
	}
	return nil
}
