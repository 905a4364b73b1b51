package jsonschema

import (
	"fmt"
	"math/big"
	"net/url"
	"path"
	"sort"
	"strings"
)

// replace substitutes {placeholder} tokens in a message template with actual
// parameter values. Used to render Diagnostic messages.
func replace(template string, params map[string]interface{}) string {
	for key, value := range params {
		placeholder := "{" + key + "}"
		template = strings.ReplaceAll(template, placeholder, fmt.Sprint(value))
	}
	return template
}

// pythonTypeName maps a decoded JSON value to the type name used in
// diagnostic messages, matching the corpus this system's messages were
// ported from ("must be boolean, but is a: int").
func pythonTypeName(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return "NoneType"
	case bool:
		return "bool"
	case string:
		return "str"
	case float64:
		if isIntegerValue(val) {
			return "int"
		}
		return "float"
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return "int"
	case []interface{}:
		return "list"
	case map[string]interface{}:
		return "dict"
	default:
		return "unknown"
	}
}

// isIntegerValue reports whether f has no fractional part.
func isIntegerValue(f float64) bool {
	return f == float64(int64(f))
}

// jsonKind classifies a decoded JSON value into one of the schema type-set
// primitives: null, boolean, integer, number, string, array, object.
func jsonKind(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case string:
		return "string"
	case []interface{}:
		return "array"
	case map[string]interface{}:
		return "object"
	case float64:
		if isIntegerValue(val) {
			return "integer"
		}
		return "number"
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return "integer"
	default:
		return "unknown"
	}
}

// deepCopyJSON recursively copies a decoded JSON value so inserted defaults
// never alias the schema's own literal.
func deepCopyJSON(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(val))
		for k, e := range val {
			out[k] = deepCopyJSON(e)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, e := range val {
			out[i] = deepCopyJSON(e)
		}
		return out
	default:
		return val
	}
}

// structuralEqual compares two decoded JSON values by structural equality,
// as required for enum/const comparison and uniqueItems detection.
func structuralEqual(a, b interface{}) bool {
	switch av := a.(type) {
	case map[string]interface{}:
		bv, ok := b.(map[string]interface{})
		if !ok || len(av) != len(bv) {
			return false
		}
		for k, e := range av {
			be, ok := bv[k]
			if !ok || !structuralEqual(e, be) {
				return false
			}
		}
		return true
	case []interface{}:
		bv, ok := b.([]interface{})
		if !ok || len(av) != len(bv) {
			return false
		}
		for i, e := range av {
			if !structuralEqual(e, bv[i]) {
				return false
			}
		}
		return true
	case float64:
		bv, ok := toFloat64(b)
		return ok && av == bv
	default:
		if bf, ok := toFloat64(b); ok {
			if af, ok2 := toFloat64(a); ok2 {
				return af == bf
			}
		}
		return a == b
	}
}

func toFloat64(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

// sortedKeys returns the keys of a string-keyed map in sorted order, used
// whenever a stable, deterministic field list is needed for diagnostics.
func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// getURLScheme extracts the scheme component of a URL string.
func getURLScheme(urlStr string) string {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return ""
	}
	return parsed.Scheme
}

// isValidURI verifies if the provided string is a valid URI.
func isValidURI(s string) bool {
	_, err := url.ParseRequestURI(s)
	return err == nil
}

// isAbsoluteURI checks if the given URL is absolute.
func isAbsoluteURI(urlStr string) bool {
	u, err := url.Parse(urlStr)
	return err == nil && u.Scheme != "" && u.Host != ""
}

// resolveRelativeURI resolves a relative URI against a base URI.
func resolveRelativeURI(baseURI, relativeURL string) string {
	if isAbsoluteURI(relativeURL) {
		return relativeURL
	}
	base, err := url.Parse(baseURI)
	if err != nil || (base.Scheme == "" && base.Path == "") {
		return relativeURL
	}
	rel, err := url.Parse(relativeURL)
	if err != nil {
		return relativeURL
	}
	return base.ResolveReference(rel).String()
}

// getBaseURI derives a base URI (for resolving nested relative $ids) from an
// $id/$ref target, trimming the final path segment.
func getBaseURI(id string) string {
	if id == "" {
		return ""
	}
	u, err := url.Parse(id)
	if err != nil {
		return ""
	}
	if strings.HasSuffix(u.Path, "/") {
		return u.String()
	}
	u.Path = path.Dir(u.Path)
	if u.Path == "." || u.Path == "" {
		u.Path = "/"
	}
	if u.Path != "/" && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	u.Fragment = ""
	return u.String()
}

// splitRef separates a URI into its base URI and fragment/anchor parts.
func splitRef(ref string) (baseURI string, anchor string) {
	parts := strings.SplitN(ref, "#", 2)
	if len(parts) == 2 {
		return parts[0], parts[1]
	}
	return ref, ""
}

// isJSONPointerFragment reports whether a fragment is a JSON Pointer
// (starts with "/") as opposed to a plain $anchor name.
func isJSONPointerFragment(s string) bool {
	return strings.HasPrefix(s, "/")
}

func quoteList(items []string) string {
	quoted := make([]string, len(items))
	for i, it := range items {
		quoted[i] = fmt.Sprintf("[%s]", it)
	}
	return strings.Join(quoted, ", ")
}
