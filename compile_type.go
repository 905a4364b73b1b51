package jsonschema

import "strings"

// compileType wraps next with a check of the "type" keyword: the instance's
// JSON kind (null/boolean/string/number/integer/array/object) must be a
// member of the type set normalize() expanded from the schema's "type"
// keyword, whether it was written as a single string or an array.
//
// "integer" is treated as a JSON number with no fractional part, so a type
// set of just "number" still accepts 3 as well as 3.5.
//
// Reference: spec §4.C, draft-04 Validation §5.1.
func compileType(n *schemaNode, next Validator) Validator {
	if len(n.typeSet) == 0 {
		return next
	}
	types := n.typeSet
	wanted := joinSortedKeys(types)
	return func(vc *vctx, value interface{}, path Path) (interface{}, *Diagnostic) {
		kind := jsonKind(value)
		if !typeSetAccepts(types, kind) {
			msg := replace("must be {types}, but is a: {actual}", map[string]interface{}{
				"types":  wanted,
				"actual": pythonTypeName(value),
			})
			return nil, newDiagnostic("type", msg, value, path, n.raw)
		}
		return next(vc, value, path)
	}
}

func typeSetAccepts(types map[string]bool, kind string) bool {
	if types[kind] {
		return true
	}
	return kind == "integer" && types["number"]
}

func joinSortedKeys(set map[string]bool) string {
	return strings.Join(sortedKeys(set), " or ")
}
