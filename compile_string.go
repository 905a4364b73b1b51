package jsonschema

import (
	"regexp"
	"unicode/utf8"
)

// compileString wraps next with the string keywords maxLength, minLength,
// pattern, and format. Length is counted in Unicode code points per
// draft-04 Validation §5.2's definition, not bytes. Non-string instances
// always pass through; "type" rejects them.
//
// Reference: spec §4.C, draft-04 Validation §5.2.
func compileString(n *schemaNode, next Validator) (Validator, error) {
	maxLength, hasMax := toFloat64(n.get("maxLength"))
	minLength, hasMin := toFloat64(n.get("minLength"))

	var pattern *regexp.Regexp
	if raw, ok := n.get("pattern").(string); ok {
		re, err := regexp.Compile(raw)
		if err != nil {
			return nil, newDefinitionError("/pattern", "invalid regular expression %q: %v", raw, err)
		}
		pattern = re
	}

	var format string
	if raw, ok := n.get("format").(string); ok {
		format = raw
	}

	if !hasMax && !hasMin && pattern == nil && format == "" {
		return next, nil
	}

	return func(vc *vctx, value interface{}, path Path) (interface{}, *Diagnostic) {
		s, ok := value.(string)
		if !ok {
			return next(vc, value, path)
		}

		length := utf8.RuneCountInString(s)
		if hasMax && float64(length) > maxLength {
			msg := replace("should be at most {max} characters", map[string]interface{}{"max": int(maxLength)})
			return nil, newDiagnostic("maxLength", msg, value, path, n.raw)
		}
		if hasMin && float64(length) < minLength {
			msg := replace("should be at least {min} characters", map[string]interface{}{"min": int(minLength)})
			return nil, newDiagnostic("minLength", msg, value, path, n.raw)
		}
		if pattern != nil && !pattern.MatchString(s) {
			msg := replace("does not match pattern {pattern}", map[string]interface{}{"pattern": pattern.String()})
			return nil, newDiagnostic("pattern", msg, value, path, n.raw)
		}
		if format != "" && vc.compiler.AssertFormat {
			if fn, ok := vc.compiler.formats.lookup(format); ok && !fn(s) {
				msg := replace("is not a valid {format}", map[string]interface{}{"format": format})
				return nil, newDiagnostic("format", msg, value, path, n.raw)
			}
		}
		return next(vc, value, path)
	}, nil
}
