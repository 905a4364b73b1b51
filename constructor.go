package jsonschema

// Property represents one named entry in an Object schema's "properties".
type Property struct {
	Name   string
	Schema map[string]interface{}
}

// Prop creates a property definition for use with Object.
func Prop(name string, schema map[string]interface{}) Property {
	return Property{Name: name, Schema: schema}
}

// Object builds an object schema from a mix of Property entries (for
// "properties") and Keyword options (for every other object/annotation
// keyword), the fluent counterpart to hand-writing the equivalent raw
// schema map.
func Object(items ...interface{}) map[string]interface{} {
	s := map[string]interface{}{"type": "object"}

	var properties []Property
	var keywords []Keyword
	for _, item := range items {
		switch v := item.(type) {
		case Property:
			properties = append(properties, v)
		case Keyword:
			keywords = append(keywords, v)
		}
	}

	if len(properties) > 0 {
		props := make(map[string]interface{}, len(properties))
		for _, p := range properties {
			props[p.Name] = p.Schema
		}
		s["properties"] = props
	}
	for _, k := range keywords {
		k(s)
	}
	return s
}

// String builds a string schema.
func String(keywords ...Keyword) map[string]interface{} {
	return typedSchema("string", keywords)
}

// Integer builds an integer schema.
func Integer(keywords ...Keyword) map[string]interface{} {
	return typedSchema("integer", keywords)
}

// Number builds a number schema.
func Number(keywords ...Keyword) map[string]interface{} {
	return typedSchema("number", keywords)
}

// Boolean builds a boolean schema.
func Boolean(keywords ...Keyword) map[string]interface{} {
	return typedSchema("boolean", keywords)
}

// Null builds a null schema.
func Null(keywords ...Keyword) map[string]interface{} {
	return typedSchema("null", keywords)
}

// Array builds an array schema.
func Array(keywords ...Keyword) map[string]interface{} {
	return typedSchema("array", keywords)
}

// Any builds a schema without a "type" restriction.
func Any(keywords ...Keyword) map[string]interface{} {
	s := make(map[string]interface{})
	for _, k := range keywords {
		k(s)
	}
	return s
}

func typedSchema(typeName string, keywords []Keyword) map[string]interface{} {
	s := map[string]interface{}{"type": typeName}
	for _, k := range keywords {
		k(s)
	}
	return s
}

// ConstSchema builds a "const" schema (draft-06+).
func ConstSchema(value interface{}) map[string]interface{} {
	return map[string]interface{}{"const": value}
}

// EnumSchema builds an "enum" schema.
func EnumSchema(values ...interface{}) map[string]interface{} {
	return map[string]interface{}{"enum": values}
}

// OneOfSchema builds a "oneOf" combination schema.
func OneOfSchema(schemas ...map[string]interface{}) map[string]interface{} {
	return combinator("oneOf", schemas)
}

// AnyOfSchema builds an "anyOf" combination schema.
func AnyOfSchema(schemas ...map[string]interface{}) map[string]interface{} {
	return combinator("anyOf", schemas)
}

// AllOfSchema builds an "allOf" combination schema.
func AllOfSchema(schemas ...map[string]interface{}) map[string]interface{} {
	return combinator("allOf", schemas)
}

func combinator(keyword string, schemas []map[string]interface{}) map[string]interface{} {
	arr := make([]interface{}, len(schemas))
	for i, s := range schemas {
		arr[i] = s
	}
	return map[string]interface{}{keyword: arr}
}

// NotSchema builds a "not" schema.
func NotSchema(schema map[string]interface{}) map[string]interface{} {
	return map[string]interface{}{"not": schema}
}

// RefSchema builds a schema consisting only of "$ref".
func RefSchema(ref string) map[string]interface{} {
	return map[string]interface{}{"$ref": ref}
}
