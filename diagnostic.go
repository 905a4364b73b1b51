package jsonschema

import (
	"fmt"

	"github.com/kaptinlin/go-i18n"
)

// DefinitionError is raised at compile time for a malformed schema. It is
// never recoverable per-sub-schema: the whole compilation fails.
//
// Reference: spec §7 ("Definition errors").
type DefinitionError struct {
	Message string
	// Path is the JSON Pointer into the schema document where the
	// malformed construct was found, e.g. "/properties/foo".
	Path string
}

func (e *DefinitionError) Error() string {
	if e.Path == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

func newDefinitionError(path string, format string, args ...interface{}) *DefinitionError {
	return &DefinitionError{Message: fmt.Sprintf(format, args...), Path: path}
}

// Diagnostic is the structured failure a validator throws when a value does
// not conform to a schema. Reference: spec §3 ("Diagnostic") and §4.F.
//
// Path rendering is lazy: RenderedPath is only computed, and cached, the
// first time it is requested, so callers who discard a branch's diagnostic
// without formatting it never pay for rendering.
type Diagnostic struct {
	Message       string
	Value         interface{}
	Path          Path
	Rule          string
	SchemaSubtree map[string]interface{}
	MissingFields []string
	ExtraFields   []string

	rootValue    interface{}
	extractor    SpecialFieldsExtractor
	renderedPath string
	pathRendered bool
}

// newDiagnostic builds a Diagnostic for an ordinary rule violation.
func newDiagnostic(rule, message string, value interface{}, path Path, subtree map[string]interface{}) *Diagnostic {
	return &Diagnostic{
		Rule:          rule,
		Message:       message,
		Value:         value,
		Path:          path,
		SchemaSubtree: subtree,
	}
}

// withContext attaches the root value and special-fields extractor that the
// path renderer needs; set once, at the point a diagnostic is about to
// escape a top-level Validate call.
func (d *Diagnostic) withContext(root interface{}, extractor SpecialFieldsExtractor) *Diagnostic {
	d.rootValue = root
	d.extractor = extractor
	return d
}

// Error implements the error interface per the presentation contract of
// spec §4.F: "<rendered_path> <message>", with a dedicated form for the
// fused required/additionalProperties rule.
func (d *Diagnostic) Error() string {
	if d.Rule == "required-additionalProperties" {
		msg := d.RenderedPath()
		if len(d.MissingFields) > 0 {
			msg += " is missing required properties: " + quoteList(d.MissingFields)
		}
		if len(d.ExtraFields) > 0 && len(d.MissingFields) > 0 {
			msg += ";"
		}
		if len(d.ExtraFields) > 0 {
			msg += " additional properties are not allowed: " + quoteList(d.ExtraFields)
		}
		return msg
	}
	return fmt.Sprintf("%s %s", d.RenderedPath(), d.Message)
}

// RenderedPath returns the human-readable rendering of Path against
// RootValue, using the special-fields extractor if one was supplied.
// Component D; see path.go for the grammar.
func (d *Diagnostic) RenderedPath() string {
	if !d.pathRendered {
		d.renderedPath = renderPath(d.rootValue, d.Path, d.extractor)
		d.pathRendered = true
	}
	return d.renderedPath
}

// RuleDefinition returns SchemaSubtree[Rule], or nil if either is unset.
func (d *Diagnostic) RuleDefinition() interface{} {
	if d.Rule == "" || d.SchemaSubtree == nil {
		return nil
	}
	return d.SchemaSubtree[d.Rule]
}

// Localize renders the diagnostic's message through an i18n bundle keyed by
// Rule, falling back to Error() when no localizer is supplied.
func (d *Diagnostic) Localize(localizer *i18n.Localizer) string {
	if localizer == nil {
		return d.Error()
	}
	vars := map[string]interface{}{
		"path":    d.RenderedPath(),
		"message": d.Message,
	}
	if d.Rule == "required-additionalProperties" {
		vars["missing"] = quoteList(d.MissingFields)
		vars["extra"] = quoteList(d.ExtraFields)
	}
	return localizer.Get(d.Rule, i18n.Vars(vars))
}
