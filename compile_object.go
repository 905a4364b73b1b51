package jsonschema

import (
	"regexp"
)

// compileObject wraps next with every object keyword the draft-04/06/07
// common subset defines: properties, patternProperties,
// additionalProperties (fused with required when additionalProperties is
// exactly `false`, per spec §4.B), propertyNames, maxProperties,
// minProperties, and dependencies (property or schema form). Default
// values declared on a property's sub-schema are inserted into a shallow
// copy of the object (each inserted default is itself deep-copied) before
// property validators run, so a validated default is itself validated.
//
// Reference: spec §4.C, draft-04 Validation §5.4, Core §8.3/8.4.
func compileObject(n *schemaNode, r *resolver, next Validator) (Validator, error) {
	properties, _ := n.get("properties").(map[string]interface{})
	propertyValidators := make(map[string]Validator, len(properties))
	propertyDefaults := make(map[string]interface{})
	for name, raw := range properties {
		sub, err := childNode(n.ctx(r), raw)
		if err != nil {
			return nil, err
		}
		sv, err := r.compileNode(sub, func(node *schemaNode) (Validator, error) {
			return buildValidator(node, r)
		})
		if err != nil {
			return nil, err
		}
		propertyValidators[name] = sv
		if sub != nil && sub.has("default") {
			propertyDefaults[name] = sub.get("default")
		}
	}

	patternProperties, _ := n.get("patternProperties").(map[string]interface{})
	type patternEntry struct {
		re *regexp.Regexp
		v  Validator
	}
	var patternValidators []patternEntry
	for pattern, raw := range patternProperties {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, newDefinitionError("/patternProperties", "invalid regular expression %q: %v", pattern, err)
		}
		sub, err := childNode(n.ctx(r), raw)
		if err != nil {
			return nil, err
		}
		sv, err := r.compileNode(sub, func(node *schemaNode) (Validator, error) {
			return buildValidator(node, r)
		})
		if err != nil {
			return nil, err
		}
		patternValidators = append(patternValidators, patternEntry{re, sv})
	}

	var additionalValidator Validator
	additionalForbidden := false
	if n.requiredAdditional != nil && n.requiredAdditional.additionalDisallowed {
		additionalForbidden = true
	} else if additionalRaw := n.get("additionalProperties"); additionalRaw != nil {
		if b, ok := additionalRaw.(bool); ok {
			additionalForbidden = !b
		} else {
			sub, err := childNode(n.ctx(r), additionalRaw)
			if err != nil {
				return nil, err
			}
			additionalValidator, err = r.compileNode(sub, func(node *schemaNode) (Validator, error) {
				return buildValidator(node, r)
			})
			if err != nil {
				return nil, err
			}
		}
	}

	var plainRequired []string
	if n.requiredAdditional == nil || !n.requiredAdditional.additionalDisallowed {
		if arr, ok := n.get("required").([]interface{}); ok {
			for _, v := range arr {
				if s, ok := v.(string); ok {
					plainRequired = append(plainRequired, s)
				}
			}
		}
	}

	var propertyNamesValidator Validator
	if raw := n.get("propertyNames"); raw != nil {
		sub, err := childNode(n.ctx(r), raw)
		if err != nil {
			return nil, err
		}
		propertyNamesValidator, err = r.compileNode(sub, func(node *schemaNode) (Validator, error) {
			return buildValidator(node, r)
		})
		if err != nil {
			return nil, err
		}
	}

	depValidators, depRequired, err := compileDependencies(n, r)
	if err != nil {
		return nil, err
	}

	maxProperties, hasMax := toFloat64(n.get("maxProperties"))
	minProperties, hasMin := toFloat64(n.get("minProperties"))

	return func(vc *vctx, value interface{}, path Path) (interface{}, *Diagnostic) {
		object, ok := value.(map[string]interface{})
		if !ok {
			return next(vc, value, path)
		}

		if len(propertyDefaults) > 0 {
			object = applyDefaults(vc.compiler, object, propertyDefaults)
		}

		if hasMax && float64(len(object)) > maxProperties {
			msg := replace("should have at most {max} properties", map[string]interface{}{"max": int(maxProperties)})
			return nil, newDiagnostic("maxProperties", msg, value, path, n.raw)
		}
		if hasMin && float64(len(object)) < minProperties {
			msg := replace("should have at least {min} properties", map[string]interface{}{"min": int(minProperties)})
			return nil, newDiagnostic("minProperties", msg, value, path, n.raw)
		}

		if n.requiredAdditional != nil && n.requiredAdditional.additionalDisallowed {
			if diag := checkRequiredAdditional(n, object, path); diag != nil {
				return nil, diag
			}
		} else if len(plainRequired) > 0 {
			var missing []string
			for _, name := range plainRequired {
				if _, ok := object[name]; !ok {
					missing = append(missing, name)
				}
			}
			if len(missing) > 0 {
				d := newDiagnostic("required-additionalProperties", "", value, path, n.raw)
				d.MissingFields = missing
				return nil, d
			}
		}

		matched := make(map[string]bool, len(object))
		for name, prop := range object {
			if pv, ok := propertyValidators[name]; ok {
				matched[name] = true
				if _, diag := pv(vc, prop, path.With(name)); diag != nil {
					return nil, diag
				}
			}
			for _, pe := range patternValidators {
				if pe.re.MatchString(name) {
					matched[name] = true
					if _, diag := pe.v(vc, prop, path.With(name)); diag != nil {
						return nil, diag
					}
				}
			}
		}

		if additionalForbidden || additionalValidator != nil {
			for name, prop := range object {
				if matched[name] {
					continue
				}
				if additionalForbidden {
					d := newDiagnostic("required-additionalProperties", "", value, path, n.raw)
					d.ExtraFields = []string{name}
					return nil, d
				}
				if _, diag := additionalValidator(vc, prop, path.With(name)); diag != nil {
					return nil, diag
				}
			}
		}

		if propertyNamesValidator != nil {
			for name := range object {
				if _, diag := propertyNamesValidator(vc, name, path.With(name)); diag != nil {
					return nil, diag
				}
			}
		}

		for name, required := range depRequired {
			if _, present := object[name]; !present {
				continue
			}
			var missing []string
			for _, req := range required {
				if _, ok := object[req]; !ok {
					missing = append(missing, req)
				}
			}
			if len(missing) > 0 {
				msg := replace("requires properties {missing} when {name} is present", map[string]interface{}{
					"missing": quoteList(missing),
					"name":    name,
				})
				return nil, newDiagnostic("dependencies", msg, value, path, n.raw)
			}
		}
		for name, depValidator := range depValidators {
			if _, present := object[name]; !present {
				continue
			}
			if _, diag := depValidator(vc, object, path); diag != nil {
				return nil, diag
			}
		}

		return next(vc, object, path)
	}, nil
}

// applyDefaults returns a copy of object with any absent property that has
// a schema-declared default filled in, so the returned value never aliases
// the schema's own literal. A string default of the form "name(args...)"
// invokes compiler's registered DefaultFunc of that name instead of being
// taken literally; an unregistered or unparseable call falls back to the
// literal string, matching the teacher's dynamic-defaults example.
func applyDefaults(compiler *Compiler, object map[string]interface{}, defaults map[string]interface{}) map[string]interface{} {
	needsCopy := false
	for name := range defaults {
		if _, present := object[name]; !present {
			needsCopy = true
			break
		}
	}
	if !needsCopy {
		return object
	}
	out := make(map[string]interface{}, len(object))
	for k, v := range object {
		out[k] = v
	}
	for name, def := range defaults {
		if _, present := out[name]; !present {
			out[name] = resolveDefaultValue(compiler, def)
		}
	}
	return out
}

// resolveDefaultValue evaluates one schema-declared "default" value,
// dispatching a "name(args...)"-shaped string to compiler's matching
// registered DefaultFunc and deep-copying every other value so the
// returned value never aliases the schema's own literal.
func resolveDefaultValue(compiler *Compiler, def interface{}) interface{} {
	s, ok := def.(string)
	if !ok {
		return deepCopyJSON(def)
	}
	call, err := parseFunctionCall(s)
	if err != nil || call == nil {
		return s
	}
	fn, ok := compiler.getDefaultFunc(call.Name)
	if !ok {
		return s
	}
	value, err := fn(call.Args...)
	if err != nil {
		return s
	}
	return value
}

// checkRequiredAdditional implements the fused "required" +
// "additionalProperties": false rule: missing required fields and
// disallowed extra fields are collected together and reported as one
// Diagnostic instead of two.
func checkRequiredAdditional(n *schemaNode, object map[string]interface{}, path Path) *Diagnostic {
	rule := n.requiredAdditional
	var missing []string
	for _, name := range rule.required {
		if _, ok := object[name]; !ok {
			missing = append(missing, name)
		}
	}

	allowed := make(map[string]bool, len(rule.required))
	for _, name := range rule.required {
		allowed[name] = true
	}
	if properties, ok := n.get("properties").(map[string]interface{}); ok {
		for name := range properties {
			allowed[name] = true
		}
	}
	var patterns []*regexp.Regexp
	if patternProperties, ok := n.get("patternProperties").(map[string]interface{}); ok {
		for pattern := range patternProperties {
			if re, err := regexp.Compile(pattern); err == nil {
				patterns = append(patterns, re)
			}
		}
	}

	var extra []string
	for name := range object {
		if allowed[name] {
			continue
		}
		matchedByPattern := false
		for _, re := range patterns {
			if re.MatchString(name) {
				matchedByPattern = true
				break
			}
		}
		if !matchedByPattern {
			extra = append(extra, name)
		}
	}

	if len(missing) == 0 && len(extra) == 0 {
		return nil
	}
	d := newDiagnostic("required-additionalProperties", "", object, path, n.raw)
	d.MissingFields = missing
	d.ExtraFields = extra
	return d
}

// compileDependencies compiles the unified draft-04/06/07 "dependencies"
// keyword, splitting each entry into either a property-dependency (value
// is an array of required property names) or a schema-dependency (value
// is a schema applied to the whole object when the key is present).
func compileDependencies(n *schemaNode, r *resolver) (map[string]Validator, map[string][]string, error) {
	raw, ok := n.get("dependencies").(map[string]interface{})
	if !ok {
		return nil, nil, nil
	}
	schemaDeps := make(map[string]Validator)
	propertyDeps := make(map[string][]string)
	for name, depRaw := range raw {
		switch v := depRaw.(type) {
		case []interface{}:
			var names []string
			for _, item := range v {
				if s, ok := item.(string); ok {
					names = append(names, s)
				}
			}
			propertyDeps[name] = names
		default:
			sub, err := childNode(n.ctx(r), v)
			if err != nil {
				return nil, nil, err
			}
			sv, err := r.compileNode(sub, func(node *schemaNode) (Validator, error) {
				return buildValidator(node, r)
			})
			if err != nil {
				return nil, nil, err
			}
			schemaDeps[name] = sv
		}
	}
	return schemaDeps, propertyDeps, nil
}
