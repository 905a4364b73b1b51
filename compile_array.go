package jsonschema

import "fmt"

// compileArray wraps next with every array keyword the draft-04/06/07
// common subset defines: items (either a single schema applied to every
// element, or a tuple of per-position schemas), additionalItems (governing
// elements past the end of a tuple), maxItems, minItems, and uniqueItems.
// Non-array instances always pass through; "type" rejects them.
//
// Reference: spec §4.C, draft-04 Validation §5.3, Core §8.2.
func compileArray(n *schemaNode, r *resolver, next Validator) (Validator, error) {
	itemsRaw := n.get("items")
	additionalItemsRaw := n.get("additionalItems")

	var itemValidator Validator
	var tupleValidators []Validator
	switch v := itemsRaw.(type) {
	case []interface{}:
		for _, item := range v {
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
			tupleValidators = append(tupleValidators, sv)
		}
	case map[string]interface{}, bool:
		sub, err := childNode(n.ctx(r), v)
		if err != nil {
			return nil, err
		}
		itemValidator, err = r.compileNode(sub, func(node *schemaNode) (Validator, error) {
			return buildValidator(node, r)
		})
		if err != nil {
			return nil, err
		}
	}

	var additionalItemsValidator Validator
	additionalItemsForbidden := false
	if tupleValidators != nil && additionalItemsRaw != nil {
		if b, ok := additionalItemsRaw.(bool); ok {
			additionalItemsForbidden = !b
		} else {
			sub, err := childNode(n.ctx(r), additionalItemsRaw)
			if err != nil {
				return nil, err
			}
			additionalItemsValidator, err = r.compileNode(sub, func(node *schemaNode) (Validator, error) {
				return buildValidator(node, r)
			})
			if err != nil {
				return nil, err
			}
		}
	}

	maxItems, hasMax := toFloat64(n.get("maxItems"))
	minItems, hasMin := toFloat64(n.get("minItems"))
	uniqueItems, _ := n.get("uniqueItems").(bool)

	if itemValidator == nil && tupleValidators == nil && !hasMax && !hasMin && !uniqueItems {
		return next, nil
	}

	return func(vc *vctx, value interface{}, path Path) (interface{}, *Diagnostic) {
		arr, ok := value.([]interface{})
		if !ok {
			return next(vc, value, path)
		}

		if hasMax && float64(len(arr)) > maxItems {
			msg := replace("should have at most {max} items", map[string]interface{}{"max": int(maxItems)})
			return nil, newDiagnostic("maxItems", msg, value, path, n.raw)
		}
		if hasMin && float64(len(arr)) < minItems {
			msg := replace("should have at least {min} items", map[string]interface{}{"min": int(minItems)})
			return nil, newDiagnostic("minItems", msg, value, path, n.raw)
		}
		if uniqueItems {
			for i := 0; i < len(arr); i++ {
				for j := i + 1; j < len(arr); j++ {
					if structuralEqual(arr[i], arr[j]) {
						msg := fmt.Sprintf("items at index %d and %d are not unique", i, j)
						return nil, newDiagnostic("uniqueItems", msg, value, path, n.raw)
					}
				}
			}
		}

		if tupleValidators != nil {
			for i, item := range arr {
				if i < len(tupleValidators) {
					if _, diag := tupleValidators[i](vc, item, path.With(i)); diag != nil {
						return nil, diag
					}
					continue
				}
				if additionalItemsForbidden {
					msg := fmt.Sprintf("no additional items are allowed past index %d", len(tupleValidators)-1)
					return nil, newDiagnostic("additionalItems", msg, value, path, n.raw)
				}
				if additionalItemsValidator != nil {
					if _, diag := additionalItemsValidator(vc, item, path.With(i)); diag != nil {
						return nil, diag
					}
				}
			}
		} else if itemValidator != nil {
			for i, item := range arr {
				if _, diag := itemValidator(vc, item, path.With(i)); diag != nil {
					return nil, diag
				}
			}
		}

		return next(vc, value, path)
	}, nil
}
