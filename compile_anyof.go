package jsonschema

// compileAnyOf wraps next with a check of the "anyOf" keyword: the
// instance must validate against at least one listed sub-schema. When
// every branch fails, the branch diagnostic surfaced to the caller is
// chosen by the arbiter (component E) rather than simply the first or
// last branch, so tagged/discriminated unions report the error against
// the branch the object was actually attempting to be.
//
// Reference: spec §4.C/§4.E, draft-04 Validation §5.5.5.
func compileAnyOf(n *schemaNode, r *resolver, next Validator) (Validator, error) {
	raw, ok := n.get("anyOf").([]interface{})
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
		var branchErrors []*Diagnostic
		for _, v := range validators {
			_, diag := v(vc, value, path)
			if diag == nil {
				return next(vc, value, path)
			}
			branchErrors = append(branchErrors, diag)
		}
		best := arbitrateAnyOf(value, path, branchErrors, vc.extractor, n.raw)
		return nil, best
	}, nil
}
