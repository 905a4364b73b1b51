package jsonschema

// isAnyFieldError reports whether diag is related to some field of the
// object at rootPath, rather than to the object as a whole: a diagnostic
// whose path descends past rootPath, or one raised by the fused
// required/additionalProperties rule, or by propertyNames.
//
// Ported from raise_best_anyof_error's is_any_field_error, the exact
// heuristic this system's anyOf arbiter was distilled from.
func isAnyFieldError(rootPath Path, diag *Diagnostic) bool {
	if len(diag.Path) > len(rootPath) {
		return true
	}
	if diag.Rule == "required-additionalProperties" {
		return true
	}
	if diag.Rule == "propertyNames" {
		return true
	}
	return false
}

// isSpecificFieldError reports whether diag concerns field specifically.
// When existenceOnly is true, only a missing/extra-field diagnostic about
// field counts (not a diagnostic about its value); when false, a
// diagnostic about the field's value also counts.
func isSpecificFieldError(rootPath Path, diag *Diagnostic, field string, existenceOnly bool) bool {
	if !existenceOnly {
		if len(diag.Path) > len(rootPath) {
			if seg, ok := diag.Path[len(rootPath)].(string); ok && seg == field {
				return true
			}
		}
	}
	if diag.Rule == "required-additionalProperties" {
		for _, m := range diag.MissingFields {
			if m == field {
				return true
			}
		}
		for _, e := range diag.ExtraFields {
			if e == field {
				return true
			}
		}
	}
	return false
}

// isFundamentalError reports whether diag is NOT field related (a type
// mismatch against the whole instance, for example).
func isFundamentalError(rootPath Path, diag *Diagnostic) bool {
	return !isAnyFieldError(rootPath, diag)
}

// deepestDiagnostic returns the diagnostic whose path descends furthest
// (the first such one on ties), used to pick the most specific diagnostic
// when no special-fields heuristic applies.
func deepestDiagnostic(diags []*Diagnostic) *Diagnostic {
	best := diags[0]
	for _, d := range diags[1:] {
		if len(d.Path) > len(best.Path) {
			best = d
		}
	}
	return best
}

// arbitrateAnyOf picks the "most relevant" branch diagnostic out of the
// one diagnostic produced per failing anyOf branch, or synthesizes an
// unknownTags/badDiscriminators diagnostic when every branch disagrees
// with the object's tag/discriminator fields.
//
// Component E; ported from raise_best_anyof_error. Reference: spec §4.E.
func arbitrateAnyOf(data interface{}, rootPath Path, diags []*Diagnostic, extractor SpecialFieldsExtractor, subtree map[string]interface{}) *Diagnostic {
	object, isObject := data.(map[string]interface{})
	if extractor == nil || !isObject {
		return deepestDiagnostic(diags)
	}

	tagFields, discriminatorFields, _ := extractor(object)
	if len(tagFields)+len(discriminatorFields) == 0 {
		return deepestDiagnostic(diags)
	}

	for _, diag := range diags {
		if isFundamentalError(rootPath, diag) {
			continue
		}

		if len(tagFields) > 0 {
			allAllowed := true
			for _, tag := range tagFields {
				if isSpecificFieldError(rootPath, diag, tag, true) {
					allAllowed = false
					break
				}
			}
			if allAllowed {
				return diag
			}
		}

		if len(discriminatorFields) > 0 {
			allAllowed := true
			for _, d := range discriminatorFields {
				if isSpecificFieldError(rootPath, diag, d, false) {
					allAllowed = false
					break
				}
			}
			if allAllowed {
				return diag
			}
		}
	}

	if len(tagFields) > 0 {
		d := newDiagnostic("unknownTags", "tag fields not recognized", data, rootPath, subtree)
		return d
	}
	if len(discriminatorFields) > 0 {
		d := newDiagnostic("badDiscriminators", "discriminator fields not recognized", data, rootPath, subtree)
		return d
	}

	return deepestDiagnostic(diags)
}
