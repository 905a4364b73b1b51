package jsonschema

import "math/big"

// compileNumeric wraps next with checks for the five numeric keywords:
// multipleOf, minimum, maximum, and the draft-normalized exclusiveMinimum/
// exclusiveMaximum. Non-numeric instances always pass through, since
// "type" is responsible for rejecting them.
//
// Reference: spec §4.C, draft-04 Validation §5.1.
func compileNumeric(n *schemaNode, next Validator) (Validator, error) {
	var multipleOf *big.Rat
	if raw := n.get("multipleOf"); raw != nil {
		r, ok := newRat(raw)
		if !ok || r.Sign() <= 0 {
			return nil, newDefinitionError("", "multipleOf must be a number greater than 0")
		}
		multipleOf = r
	}

	var minimum, maximum *big.Rat
	if raw := n.get("minimum"); raw != nil {
		if r, ok := newRat(raw); ok {
			minimum = r
		}
	}
	if raw := n.get("maximum"); raw != nil {
		if r, ok := newRat(raw); ok {
			maximum = r
		}
	}

	// n.exclusiveMinimum/n.exclusiveMaximum already hold the draft-06+
	// numeric form after normalize(); in the draft-04 boolean form they
	// were copied from the sibling minimum/maximum value, so checking both
	// here is redundant but harmless, never incorrect. In the draft-06+
	// form minimum/maximum and exclusiveMinimum/exclusiveMaximum are
	// independent bounds and both must be enforced.
	var exclusiveMin, exclusiveMax *big.Rat
	if n.exclusiveMinimum != nil {
		exclusiveMin, _ = newRat(*n.exclusiveMinimum)
	}
	if n.exclusiveMaximum != nil {
		exclusiveMax, _ = newRat(*n.exclusiveMaximum)
	}

	if multipleOf == nil && minimum == nil && maximum == nil && exclusiveMin == nil && exclusiveMax == nil {
		return next, nil
	}

	return func(vc *vctx, value interface{}, path Path) (interface{}, *Diagnostic) {
		r, ok := newRat(value)
		if !ok {
			return next(vc, value, path)
		}

		if multipleOf != nil && !isMultipleOf(r, multipleOf) {
			msg := replace("must be a multiple of {divisor}", map[string]interface{}{"divisor": formatRat(multipleOf)})
			return nil, newDiagnostic("multipleOf", msg, value, path, n.raw)
		}

		// exclusiveMin/exclusiveMax are checked ahead of the inclusive
		// bound when they came from the draft-04 boolean form, since then
		// they report under the same "minimum"/"maximum" rule the sibling
		// keyword owns (its value is what RuleDefinition should surface),
		// just with the stricter "<" / ">" comparison and wording.
		if exclusiveMin != nil && n.exclusiveMinimumFromBool {
			if r.Cmp(exclusiveMin) <= 0 {
				msg := replace("must be bigger than {minimum}", map[string]interface{}{"minimum": formatRat(exclusiveMin)})
				return nil, newDiagnostic("minimum", msg, value, path, n.raw)
			}
		} else if minimum != nil && r.Cmp(minimum) < 0 {
			msg := replace("must be bigger than or equal to {minimum}", map[string]interface{}{"minimum": formatRat(minimum)})
			return nil, newDiagnostic("minimum", msg, value, path, n.raw)
		}

		if exclusiveMax != nil && n.exclusiveMaximumFromBool {
			if r.Cmp(exclusiveMax) >= 0 {
				msg := replace("must be smaller than {maximum}", map[string]interface{}{"maximum": formatRat(exclusiveMax)})
				return nil, newDiagnostic("maximum", msg, value, path, n.raw)
			}
		} else if maximum != nil && r.Cmp(maximum) > 0 {
			msg := replace("must be smaller than or equal to {maximum}", map[string]interface{}{"maximum": formatRat(maximum)})
			return nil, newDiagnostic("maximum", msg, value, path, n.raw)
		}

		if exclusiveMin != nil && !n.exclusiveMinimumFromBool && r.Cmp(exclusiveMin) <= 0 {
			msg := replace("must be bigger than {minimum}", map[string]interface{}{"minimum": formatRat(exclusiveMin)})
			return nil, newDiagnostic("exclusiveMinimum", msg, value, path, n.raw)
		}
		if exclusiveMax != nil && !n.exclusiveMaximumFromBool && r.Cmp(exclusiveMax) >= 0 {
			msg := replace("must be smaller than {maximum}", map[string]interface{}{"maximum": formatRat(exclusiveMax)})
			return nil, newDiagnostic("exclusiveMaximum", msg, value, path, n.raw)
		}

		return next(vc, value, path)
	}, nil
}
