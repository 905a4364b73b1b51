package jsonschema

// Keyword mutates a schema-in-progress, letting constructor.go's type
// builders (Object, String, Array, ...) take an arbitrary mix of keyword
// options the way functional-option constructors elsewhere in this corpus
// do. Pruned to the draft-04/06/07 keyword surface schema.go recognizes;
// no 2019-09/2020-12-only keyword (prefixItems, unevaluatedProperties,
// dependentSchemas, $anchor, ...) gets a builder.
type Keyword func(map[string]interface{})

// ===============================
// String keywords
// ===============================

// MinLen sets the minLength keyword.
func MinLen(min int) Keyword {
	return func(s map[string]interface{}) { s["minLength"] = min }
}

// MaxLen sets the maxLength keyword.
func MaxLen(max int) Keyword {
	return func(s map[string]interface{}) { s["maxLength"] = max }
}

// Pattern sets the pattern keyword.
func Pattern(pattern string) Keyword {
	return func(s map[string]interface{}) { s["pattern"] = pattern }
}

// Format sets the format keyword.
func Format(format string) Keyword {
	return func(s map[string]interface{}) { s["format"] = format }
}

// ===============================
// Number keywords
// ===============================

// Min sets the minimum keyword.
func Min(min float64) Keyword {
	return func(s map[string]interface{}) { s["minimum"] = min }
}

// Max sets the maximum keyword.
func Max(max float64) Keyword {
	return func(s map[string]interface{}) { s["maximum"] = max }
}

// ExclusiveMin sets the exclusiveMinimum keyword in its draft-06+ numeric
// form. It enforces the same strict bound as a draft-04 document that pairs
// "minimum" with "exclusiveMinimum": true, but a violation is reported
// under the "exclusiveMinimum" rule rather than "minimum".
func ExclusiveMin(min float64) Keyword {
	return func(s map[string]interface{}) { s["exclusiveMinimum"] = min }
}

// ExclusiveMax sets the exclusiveMaximum keyword in its draft-06+ numeric
// form.
func ExclusiveMax(max float64) Keyword {
	return func(s map[string]interface{}) { s["exclusiveMaximum"] = max }
}

// MultipleOf sets the multipleOf keyword.
func MultipleOf(multiple float64) Keyword {
	return func(s map[string]interface{}) { s["multipleOf"] = multiple }
}

// ===============================
// Array keywords
// ===============================

// Items sets the items keyword to a single schema applied to every
// element. For the tuple (ordered-sequence) form, assign an []interface{}
// of schemas to the returned map's "items" key directly.
func Items(itemSchema map[string]interface{}) Keyword {
	return func(s map[string]interface{}) { s["items"] = itemSchema }
}

// MinItems sets the minItems keyword.
func MinItems(min int) Keyword {
	return func(s map[string]interface{}) { s["minItems"] = min }
}

// MaxItems sets the maxItems keyword.
func MaxItems(max int) Keyword {
	return func(s map[string]interface{}) { s["maxItems"] = max }
}

// UniqueItems sets the uniqueItems keyword.
func UniqueItems(unique bool) Keyword {
	return func(s map[string]interface{}) { s["uniqueItems"] = unique }
}

// AdditionalItems sets the additionalItems keyword to a schema governing
// tuple elements past the end of a tuple's "items" array.
func AdditionalItems(schema map[string]interface{}) Keyword {
	return func(s map[string]interface{}) { s["additionalItems"] = schema }
}

// AdditionalItemsAllowed sets the additionalItems keyword to a boolean.
func AdditionalItemsAllowed(allowed bool) Keyword {
	return func(s map[string]interface{}) { s["additionalItems"] = allowed }
}

// ===============================
// Object keywords
// ===============================

// Required sets the required keyword.
func Required(fields ...string) Keyword {
	return func(s map[string]interface{}) {
		arr := make([]interface{}, len(fields))
		for i, f := range fields {
			arr[i] = f
		}
		s["required"] = arr
	}
}

// AdditionalProps sets the additionalProperties keyword to a boolean.
func AdditionalProps(allowed bool) Keyword {
	return func(s map[string]interface{}) { s["additionalProperties"] = allowed }
}

// AdditionalPropsSchema sets the additionalProperties keyword to a schema.
func AdditionalPropsSchema(schema map[string]interface{}) Keyword {
	return func(s map[string]interface{}) { s["additionalProperties"] = schema }
}

// MinProps sets the minProperties keyword.
func MinProps(min int) Keyword {
	return func(s map[string]interface{}) { s["minProperties"] = min }
}

// MaxProps sets the maxProperties keyword.
func MaxProps(max int) Keyword {
	return func(s map[string]interface{}) { s["maxProperties"] = max }
}

// PatternProps sets the patternProperties keyword.
func PatternProps(patterns map[string]map[string]interface{}) Keyword {
	return func(s map[string]interface{}) {
		raw := make(map[string]interface{}, len(patterns))
		for k, v := range patterns {
			raw[k] = v
		}
		s["patternProperties"] = raw
	}
}

// PropertyNames sets the propertyNames keyword (draft-06+).
func PropertyNames(schema map[string]interface{}) Keyword {
	return func(s map[string]interface{}) { s["propertyNames"] = schema }
}

// PropertyDependency adds a property-list dependency to the "dependencies"
// keyword: when name is present, every field in requires must be too.
func PropertyDependency(name string, requires ...string) Keyword {
	return func(s map[string]interface{}) {
		deps := dependenciesMap(s)
		arr := make([]interface{}, len(requires))
		for i, r := range requires {
			arr[i] = r
		}
		deps[name] = arr
	}
}

// SchemaDependency adds a schema dependency to the "dependencies" keyword:
// when name is present, the whole object must also validate against
// schema.
func SchemaDependency(name string, schema map[string]interface{}) Keyword {
	return func(s map[string]interface{}) {
		deps := dependenciesMap(s)
		deps[name] = schema
	}
}

func dependenciesMap(s map[string]interface{}) map[string]interface{} {
	deps, ok := s["dependencies"].(map[string]interface{})
	if !ok {
		deps = make(map[string]interface{})
		s["dependencies"] = deps
	}
	return deps
}

// ===============================
// Annotation keywords
// ===============================

// Title sets the title keyword.
func Title(title string) Keyword {
	return func(s map[string]interface{}) { s["title"] = title }
}

// Description sets the description keyword.
func Description(desc string) Keyword {
	return func(s map[string]interface{}) { s["description"] = desc }
}

// Default sets the default keyword.
func Default(value interface{}) Keyword {
	return func(s map[string]interface{}) { s["default"] = value }
}

// Examples sets the examples keyword (draft-06+).
func Examples(examples ...interface{}) Keyword {
	return func(s map[string]interface{}) { s["examples"] = examples }
}

// ===============================
// Core identifier keywords
// ===============================

// ID sets the $id keyword (draft-06+; use IDDraft04 for "id" instead).
func ID(id string) Keyword {
	return func(s map[string]interface{}) { s["$id"] = id }
}

// IDDraft04 sets the draft-04 "id" keyword.
func IDDraft04(id string) Keyword {
	return func(s map[string]interface{}) { s["id"] = id }
}

// SchemaURI sets the $schema keyword, determining which of
// draft-04/06/07's quirks apply to the document it appears at the root of.
func SchemaURI(schemaURI string) Keyword {
	return func(s map[string]interface{}) { s["$schema"] = schemaURI }
}

// Ref sets the $ref keyword. Per draft-04/06/07 semantics every sibling
// keyword is ignored once $ref is present, so Ref is usually the only
// Keyword passed to its constructor.
func Ref(ref string) Keyword {
	return func(s map[string]interface{}) { s["$ref"] = ref }
}

// Defs sets the "definitions" keyword, the common draft-04/06/07 home for
// sub-schemas only ever reached via $ref.
func Defs(defs map[string]map[string]interface{}) Keyword {
	return func(s map[string]interface{}) {
		raw := make(map[string]interface{}, len(defs))
		for k, v := range defs {
			raw[k] = v
		}
		s["definitions"] = raw
	}
}

// ===============================
// Format constants
// ===============================

const (
	FormatEmail               = "email"
	FormatDateTime            = "date-time"
	FormatDate                = "date"
	FormatTime                = "time"
	FormatURI                 = "uri"
	FormatURIRef              = "uri-reference"
	FormatUUID                = "uuid"
	FormatHostname            = "hostname"
	FormatIPv4                = "ipv4"
	FormatIPv6                = "ipv6"
	FormatRegex               = "regex"
	FormatIRI                 = "iri"
	FormatIRIRef              = "iri-reference"
	FormatURITemplate         = "uri-template"
	FormatJSONPointer         = "json-pointer"
	FormatRelativeJSONPointer = "relative-json-pointer"
	FormatDuration            = "duration"
)

// ===============================
// Convenience schema functions
// ===============================

// Email creates an email-format string schema.
func Email() map[string]interface{} { return String(Format(FormatEmail)) }

// DateTime creates a date-time-format string schema.
func DateTime() map[string]interface{} { return String(Format(FormatDateTime)) }

// Date creates a date-format string schema.
func Date() map[string]interface{} { return String(Format(FormatDate)) }

// Time creates a time-format string schema.
func Time() map[string]interface{} { return String(Format(FormatTime)) }

// URI creates a uri-format string schema.
func URI() map[string]interface{} { return String(Format(FormatURI)) }

// URIRef creates a uri-reference-format string schema.
func URIRef() map[string]interface{} { return String(Format(FormatURIRef)) }

// UUID creates a uuid-format string schema.
func UUID() map[string]interface{} { return String(Format(FormatUUID)) }

// Hostname creates a hostname-format string schema.
func Hostname() map[string]interface{} { return String(Format(FormatHostname)) }

// IPv4 creates an ipv4-format string schema.
func IPv4() map[string]interface{} { return String(Format(FormatIPv4)) }

// IPv6 creates an ipv6-format string schema.
func IPv6() map[string]interface{} { return String(Format(FormatIPv6)) }

// IRI creates an iri-format string schema.
func IRI() map[string]interface{} { return String(Format(FormatIRI)) }

// IRIRef creates an iri-reference-format string schema.
func IRIRef() map[string]interface{} { return String(Format(FormatIRIRef)) }

// URITemplate creates a uri-template-format string schema.
func URITemplate() map[string]interface{} { return String(Format(FormatURITemplate)) }

// JSONPointer creates a json-pointer-format string schema.
func JSONPointer() map[string]interface{} { return String(Format(FormatJSONPointer)) }

// RelativeJSONPointer creates a relative-json-pointer-format string schema.
func RelativeJSONPointer() map[string]interface{} { return String(Format(FormatRelativeJSONPointer)) }

// Duration creates a duration-format string schema.
func Duration() map[string]interface{} { return String(Format(FormatDuration)) }

// Regex creates a regex-format string schema.
func Regex() map[string]interface{} { return String(Format(FormatRegex)) }

// PositiveInt creates a positive-integer schema.
func PositiveInt() map[string]interface{} { return Integer(Min(1)) }

// NonNegativeInt creates a non-negative-integer schema.
func NonNegativeInt() map[string]interface{} { return Integer(Min(0)) }

// NegativeInt creates a negative-integer schema.
func NegativeInt() map[string]interface{} { return Integer(Max(-1)) }

// NonPositiveInt creates a non-positive-integer schema.
func NonPositiveInt() map[string]interface{} { return Integer(Max(0)) }
