package jsonschema

// acceptValidator is the base of every validator chain: it accepts any
// value unconditionally. Keyword compilers wrap successively tighter
// checks around it.
func acceptValidator(_ *vctx, value interface{}, _ Path) (interface{}, *Diagnostic) {
	return value, nil
}

// rejectValidator implements the boolean schema `false`: no value is ever
// valid against it.
func rejectValidator(_ *vctx, value interface{}, path Path) (interface{}, *Diagnostic) {
	return nil, newDiagnostic("false-schema", "no value satisfies a false schema", value, path, nil)
}

// buildValidator compiles one schemaNode into its Validator, composing
// every applicable keyword family in spec §4.C's dispatch order: type,
// enum, const, not, allOf, oneOf, anyOf, the numeric keywords, the string
// keywords, then the array or object keywords (an instance is only ever
// one of those two kinds, so both may be compiled and each will simply
// pass non-matching instances through untouched).
//
// A $ref short-circuits every other keyword on its node, matching
// draft-04/06/07 semantics where sibling keywords next to $ref are
// ignored.
func buildValidator(n *schemaNode, r *resolver) (Validator, error) {
	if n == nil {
		return acceptValidator, nil
	}
	if n.boolean != nil {
		if *n.boolean {
			return acceptValidator, nil
		}
		return rejectValidator, nil
	}

	if ref, ok := n.get("$ref").(string); ok && ref != "" {
		return compileRef(n, r, ref)
	}

	v := acceptValidator
	var err error

	if v, err = compileObject(n, r, v); err != nil {
		return nil, err
	}
	if v, err = compileArray(n, r, v); err != nil {
		return nil, err
	}
	if v, err = compileString(n, v); err != nil {
		return nil, err
	}
	if v, err = compileNumeric(n, v); err != nil {
		return nil, err
	}
	if v, err = compileAnyOf(n, r, v); err != nil {
		return nil, err
	}
	if v, err = compileOneOf(n, r, v); err != nil {
		return nil, err
	}
	if v, err = compileAllOf(n, r, v); err != nil {
		return nil, err
	}
	if v, err = compileNot(n, r, v); err != nil {
		return nil, err
	}
	v = compileConst(n, v)
	v = compileEnum(n, v)
	v = compileType(n, v)

	return v, nil
}

// compileRef compiles a $ref keyword: resolve the target node once at
// compile time (not per-validation-call), then defer entirely to its
// validator. Reference: spec §4.A, draft-04 Core §7.
func compileRef(n *schemaNode, r *resolver, ref string) (Validator, error) {
	var target *schemaNode
	var resolveErr error
	r.inScope(n.baseURI, func() {
		target, resolveErr = r.resolveRef(ref)
	})
	if resolveErr != nil {
		return nil, resolveErr
	}
	if target == nil {
		return nil, ErrRefNotFound
	}
	return r.compileNode(target, func(node *schemaNode) (Validator, error) {
		return buildValidator(node, r)
	})
}
