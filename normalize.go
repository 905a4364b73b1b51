package jsonschema

// normalize applies the draft-quirk normalizations spec §4.B requires so
// every later compile_*.go pass can treat a schemaNode's keywords
// uniformly, regardless of which of draft-04/06/07 it was written against.
func normalize(n *schemaNode) error {
	if n.raw == nil {
		return nil
	}
	normalizeType(n)
	if err := normalizeExclusive(n); err != nil {
		return err
	}
	normalizeRequiredAdditional(n)
	return nil
}

// normalizeType expands the "type" keyword, which may be a single string or
// an array of strings, into a set so compile_type.go has one shape to
// check against regardless of which form the schema author used.
func normalizeType(n *schemaNode) {
	raw := n.get("type")
	if raw == nil {
		return
	}
	set := make(map[string]bool)
	switch t := raw.(type) {
	case string:
		set[t] = true
	case []interface{}:
		for _, v := range t {
			if s, ok := v.(string); ok {
				set[s] = true
			}
		}
	}
	n.typeSet = set
}

// normalizeExclusive reconciles the two incompatible "exclusiveMinimum"/
// "exclusiveMaximum" forms across drafts:
//
//   - draft-04: boolean, modifying the meaning of the sibling
//     "minimum"/"maximum" keyword (exclusiveMinimum: true means minimum is
//     exclusive rather than inclusive).
//   - draft-06+: a number in its own right, entirely replacing
//     "minimum"/"maximum" for the exclusive bound.
//
// After this runs, n.exclusiveMinimum/n.exclusiveMaximum hold the
// draft-06+ numeric form uniformly; compile_numeric.go never needs to
// branch on draft version again.
func normalizeExclusive(n *schemaNode) error {
	if err := normalizeExclusiveBound(n, "exclusiveMinimum", "minimum", &n.exclusiveMinimum, &n.exclusiveMinimumFromBool); err != nil {
		return err
	}
	return normalizeExclusiveBound(n, "exclusiveMaximum", "maximum", &n.exclusiveMaximum, &n.exclusiveMaximumFromBool)
}

func normalizeExclusiveBound(n *schemaNode, exclusiveKey, boundKey string, out **float64, fromBool *bool) error {
	exclusiveRaw := n.get(exclusiveKey)
	if exclusiveRaw == nil {
		return nil
	}
	switch v := exclusiveRaw.(type) {
	case bool:
		if !v {
			return nil
		}
		boundRaw := n.get(boundKey)
		f, ok := toFloat64(boundRaw)
		if !ok {
			return newDefinitionError("", "%s: true requires a sibling %q", exclusiveKey, boundKey)
		}
		*out = &f
		*fromBool = true
	default:
		f, ok := toFloat64(v)
		if !ok {
			return newDefinitionError("", "%s must be a number or boolean", exclusiveKey)
		}
		*out = &f
	}
	return nil
}

// normalizeRequiredAdditional fuses "required" with
// "additionalProperties: false" into one rule so the compiled validator
// reports a single combined diagnostic ("is missing required properties:
// ...; additional properties are not allowed: ...") instead of two
// independent ones, per spec §4.B / §4.F.
func normalizeRequiredAdditional(n *schemaNode) {
	requiredRaw, hasRequired := n.raw["required"]
	additionalRaw, hasAdditional := n.raw["additionalProperties"]
	if !hasRequired && !hasAdditional {
		return
	}

	rule := &requiredAdditionalRule{}
	if hasRequired {
		if arr, ok := requiredRaw.([]interface{}); ok {
			for _, v := range arr {
				if s, ok := v.(string); ok {
					rule.required = append(rule.required, s)
				}
			}
		}
	}
	if hasAdditional {
		if b, ok := additionalRaw.(bool); ok && !b {
			rule.additionalDisallowed = true
		}
	}
	n.requiredAdditional = rule
}
