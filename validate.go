package jsonschema

// Validator is the executable form one schema node compiles to: a function
// that checks value (found at path under root) and returns either the
// value (possibly augmented with inserted defaults) or the first
// Diagnostic raised while checking it.
//
// Each compile_*.go keyword family wraps a Validator around the "next"
// validator in the chain for its node, mirroring the way the corpus this
// compiler generalizes from emits one sequential check per keyword: the
// first failing check in keyword order is the one the caller sees.
//
// Reference: spec §4.C ("Validator emitter").
type Validator func(vc *vctx, value interface{}, path Path) (interface{}, *Diagnostic)

// vctx carries the per-call state every Validator needs but that would
// otherwise have to be threaded as extra arguments: the root value (for
// path rendering and special-fields context), the special-fields
// extractor, and the owning compiler (for format assertion and registered
// default functions).
type vctx struct {
	root      interface{}
	extractor SpecialFieldsExtractor
	compiler  *Compiler
}

// CompiledSchema is the product of Compiler.Compile: a ready-to-run
// validator plus the schema node it was built from, retained so
// CompiledSchema.CompileToCode can render it afterward.
type CompiledSchema struct {
	validator Validator
	node      *schemaNode
	compiler  *Compiler
}

// ValidateOption customizes one Validate call. Reference: spec §6
// ("validator(value, *, root_value?=value, root_path?=[],
// special_fields_extractor?=None)").
type ValidateOption func(*vctx, *Path)

// WithRootValue overrides the value special-fields context and path
// rendering are computed against; it defaults to the value being
// validated.
func WithRootValue(root interface{}) ValidateOption {
	return func(vc *vctx, _ *Path) { vc.root = root }
}

// WithRootPath prefixes every rendered diagnostic path with prefix,
// useful when validating a fragment of a larger document but wanting
// diagnostics that read as if validation started at the document root.
func WithRootPath(prefix Path) ValidateOption {
	return func(_ *vctx, path *Path) { *path = append(append(Path{}, prefix...), *path...) }
}

// WithSpecialFieldsExtractor supplies the function used to annotate
// rendered paths with tag/discriminator/identification context and to
// drive the anyOf arbiter's field-based heuristics.
func WithSpecialFieldsExtractor(fn SpecialFieldsExtractor) ValidateOption {
	return func(vc *vctx, _ *Path) { vc.extractor = fn }
}

// Validate runs the compiled validator against value, returning the
// (possibly default-augmented) value on success or a *Diagnostic on
// failure. Reference: spec §6 ("Validator API").
func (cs *CompiledSchema) Validate(value interface{}, opts ...ValidateOption) (interface{}, error) {
	vc := &vctx{root: value, compiler: cs.compiler}
	path := Path{}
	for _, opt := range opts {
		opt(vc, &path)
	}

	out, diag := cs.validator(vc, value, path)
	if diag != nil {
		diag.withContext(vc.root, vc.extractor)
		if diag.SchemaSubtree == nil {
			diag.SchemaSubtree = cs.node.raw
		}
		return nil, diag
	}
	return out, nil
}

// IsValid is a convenience wrapper for callers that only care whether
// value conforms, not what the default-augmented value or diagnostic was.
func (cs *CompiledSchema) IsValid(value interface{}, opts ...ValidateOption) bool {
	_, err := cs.Validate(value, opts...)
	return err == nil
}
