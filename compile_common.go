package jsonschema

import "fmt"

// compileEnum wraps next with a check of the "enum" keyword: the instance
// must be structurally equal to one of the listed values.
//
// Reference: spec §4.C, draft-04 Validation §5.5.1.
func compileEnum(n *schemaNode, next Validator) Validator {
	raw, ok := n.get("enum").([]interface{})
	if !ok || len(raw) == 0 {
		return next
	}
	return func(vc *vctx, value interface{}, path Path) (interface{}, *Diagnostic) {
		for _, candidate := range raw {
			if structuralEqual(value, candidate) {
				return next(vc, value, path)
			}
		}
		return nil, newDiagnostic("enum", "is not one of the allowed values", value, path, n.raw)
	}
}

// compileConst wraps next with a check of the "const" keyword (draft-06+):
// the instance must be structurally equal to the single listed value.
//
// Reference: spec §4.C, draft-06 Validation §6.21.
func compileConst(n *schemaNode, next Validator) Validator {
	if !n.has("const") {
		return next
	}
	want := n.get("const")
	return func(vc *vctx, value interface{}, path Path) (interface{}, *Diagnostic) {
		if !structuralEqual(value, want) {
			return nil, newDiagnostic("const", "does not match the constant value", value, path, n.raw)
		}
		return next(vc, value, path)
	}
}

// compileNot wraps next with a check of the "not" keyword: validation
// against the sub-schema must fail for the instance to pass.
//
// Reference: spec §4.C, draft-04 Validation §5.5.6.
func compileNot(n *schemaNode, r *resolver, next Validator) (Validator, error) {
	raw := n.get("not")
	if raw == nil {
		return next, nil
	}
	sub, err := childNode(n.ctx(r), raw)
	if err != nil {
		return nil, err
	}
	subValidator, err := r.compileNode(sub, func(node *schemaNode) (Validator, error) {
		return buildValidator(node, r)
	})
	if err != nil {
		return nil, err
	}
	return func(vc *vctx, value interface{}, path Path) (interface{}, *Diagnostic) {
		if _, diag := subValidator(vc, value, path); diag == nil {
			return nil, newDiagnostic("not", "must not match the schema given in \"not\"", value, path, n.raw)
		}
		return next(vc, value, path)
	}, nil
}

// compileAllOf wraps next with a check of the "allOf" keyword: the
// instance must validate against every listed sub-schema, in order, with
// the first failing sub-schema's diagnostic being the one that escapes.
//
// Reference: spec §4.C, draft-04 Validation §5.5.3.
func compileAllOf(n *schemaNode, r *resolver, next Validator) (Validator, error) {
	raw, ok := n.get("allOf").([]interface{})
	if !ok || len(raw) == 0 {
		return next, nil
	}
	validators := make([]Validator, 0, len(raw))
	for _, item := range raw {
		sub, err := childNode(n.ctx(r), item)
		if err != nil {
			return nil, err
		}
		sv, err := r.compileNode(sub, func(node *schemaNode) (Validator, error) {
			return buildValidator(node, r)
		})
		if err != nil {
			return nil, err
		}
		validators = append(validators, sv)
	}
	return func(vc *vctx, value interface{}, path Path) (interface{}, *Diagnostic) {
		for _, v := range validators {
			if _, diag := v(vc, value, path); diag != nil {
				return nil, diag
			}
		}
		return next(vc, value, path)
	}, nil
}

// compileOneOf wraps next with a check of the "oneOf" keyword: the
// instance must validate against exactly one of the listed sub-schemas.
//
// Reference: spec §4.C, draft-04 Validation §5.5.4.
func compileOneOf(n *schemaNode, r *resolver, next Validator) (Validator, error) {
	raw, ok := n.get("oneOf").([]interface{})
	if !ok || len(raw) == 0 {
		return next, nil
	}
	validators := make([]Validator, 0, len(raw))
	for _, item := range raw {
		sub, err := childNode(n.ctx(r), item)
		if err != nil {
			return nil, err
		}
		sv, err := r.compileNode(sub, func(node *schemaNode) (Validator, error) {
			return buildValidator(node, r)
		})
		if err != nil {
			return nil, err
		}
		validators = append(validators, sv)
	}
	return func(vc *vctx, value interface{}, path Path) (interface{}, *Diagnostic) {
		matches := 0
		for _, v := range validators {
			if _, diag := v(vc, value, path); diag == nil {
				matches++
			}
		}
		if matches != 1 {
			msg := fmt.Sprintf("must match exactly one schema in \"oneOf\", matched %d", matches)
			return nil, newDiagnostic("oneOf", msg, value, path, n.raw)
		}
		return next(vc, value, path)
	}, nil
}
