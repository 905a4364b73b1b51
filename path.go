package jsonschema

import (
	"fmt"
	"strings"
)

// Path is an ordered sequence of array indices (int) and object property
// names (string) describing a location under the root value being
// validated. Reference: spec §3 ("Runtime path").
//
// A Path is threaded through every recursive validator call by
// concatenation; With never mutates the receiver, so sibling branches that
// share a prefix never observe each other's appended segments.
type Path []interface{}

// With returns a new Path with seg appended, leaving the receiver untouched.
func (p Path) With(seg interface{}) Path {
	out := make(Path, len(p)+1)
	copy(out, p)
	out[len(p)] = seg
	return out
}

// SpecialFieldsExtractor classifies an object's keys into three disjoint,
// ordered roles used to annotate rendered paths for tagged/discriminated
// unions. Reference: spec §3 ("Special-fields classification") and §4.D.
type SpecialFieldsExtractor func(object map[string]interface{}) (tagFields, discriminatorFields, identificationFields []string)

// renderPath renders root/path/extractor into the dotted/bracketed display
// form described by spec §4.D:
//
//	data<T1,T2,...>.prop[idx]<D1=v1,I1=v1>...
//
// Rendering is purely a function of its three arguments: it never mutates
// root and is safe to call repeatedly (idempotent).
func renderPath(root interface{}, path Path, extractor SpecialFieldsExtractor) string {
	var b strings.Builder
	b.WriteString("data")

	current := root
	appendContext(&b, current, extractor)
	for _, seg := range path {
		switch s := seg.(type) {
		case int:
			fmt.Fprintf(&b, "[%d]", s)
			if arr, ok := current.([]interface{}); ok && s >= 0 && s < len(arr) {
				current = arr[s]
			} else {
				current = nil
			}
		case string:
			fmt.Fprintf(&b, ".%s", s)
			if obj, ok := current.(map[string]interface{}); ok {
				current = obj[s]
			} else {
				current = nil
			}
		default:
			fmt.Fprintf(&b, ".%v", s)
			current = nil
		}
		appendContext(&b, current, extractor)
	}
	return b.String()
}

// appendContext appends the "<...>" discriminator annotation for the
// current object, if the extractor yields any tag, discriminator, or
// identification fields for it.
func appendContext(b *strings.Builder, value interface{}, extractor SpecialFieldsExtractor) {
	if extractor == nil {
		return
	}
	object, ok := value.(map[string]interface{})
	if !ok {
		return
	}

	tagFields, discriminatorFields, identificationFields := extractor(object)
	if len(tagFields)+len(discriminatorFields)+len(identificationFields) == 0 {
		return
	}

	parts := make([]string, 0, len(tagFields)+len(discriminatorFields)+len(identificationFields))
	parts = append(parts, tagFields...)
	for _, f := range discriminatorFields {
		parts = append(parts, fmt.Sprintf("%s=%v", f, object[f]))
	}
	for _, f := range identificationFields {
		parts = append(parts, fmt.Sprintf("%s=%v", f, object[f]))
	}

	b.WriteByte('<')
	b.WriteString(strings.Join(parts, ","))
	b.WriteByte('>')
}
