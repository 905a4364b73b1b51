package jsonschema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScenarioTypeMismatch(t *testing.T) {
	compiler := NewCompiler()
	schema, err := compiler.Compile([]byte(`{"type":"boolean"}`))
	require.NoError(t, err)

	_, err = schema.Validate(0)
	require.Error(t, err)

	diag, ok := err.(*Diagnostic)
	require.True(t, ok)
	assert.Equal(t, "type", diag.Rule)
	assert.Equal(t, "data", diag.RenderedPath())
	assert.Equal(t, "must be boolean, but is a: int", diag.Message)
}

func TestScenarioExclusiveMaximumBoolFormReportsUnderMaximum(t *testing.T) {
	compiler := NewCompiler()
	schema, err := compiler.Compile([]byte(`{
		"type": "array",
		"items": [
			{"type":"number","maximum":10,"exclusiveMaximum":true},
			{"type":"string","enum":["hello","world"]}
		]
	}`))
	require.NoError(t, err)

	_, err = schema.Validate([]interface{}{float64(10), "world"})
	require.Error(t, err)

	diag, ok := err.(*Diagnostic)
	require.True(t, ok)
	assert.Equal(t, "maximum", diag.Rule)
	assert.Equal(t, Path{0}, diag.Path)
	assert.Equal(t, "must be smaller than 10", diag.Message)
}

func TestScenarioDefaultInsertion(t *testing.T) {
	compiler := NewCompiler()
	schema, err := compiler.Compile([]byte(`{
		"type": "object",
		"required": ["a","b"],
		"properties": {
			"a": {"type":"string"},
			"b": {"type":"string"},
			"c": {"type":"string","default":"abc"}
		},
		"additionalProperties": {"type":"string"}
	}`))
	require.NoError(t, err)

	out, err := schema.Validate(map[string]interface{}{"a": "a", "b": "b", "d": "d"})
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"a": "a", "b": "b", "c": "abc", "d": "d"}, out)
}

func TestScenarioRequiredAdditionalPropertiesFused(t *testing.T) {
	compiler := NewCompiler()
	schema, err := compiler.Compile([]byte(`{
		"type": "object",
		"required": ["a","b"],
		"properties": {
			"a": {"type":"string"},
			"b": {"type":"string"},
			"c": {"type":"string","default":"abc"}
		},
		"additionalProperties": {"type":"string"}
	}`))
	require.NoError(t, err)

	_, err = schema.Validate(map[string]interface{}{"a": "a", "x": "x", "y": "y"})
	require.Error(t, err)

	diag, ok := err.(*Diagnostic)
	require.True(t, ok)
	assert.Equal(t, "required-additionalProperties", diag.Rule)
	assert.Equal(t, []string{"b"}, diag.MissingFields)
	assert.Empty(t, diag.ExtraFields)
}

func taggedVariant(tag string) map[string]interface{} {
	return map[string]interface{}{
		"type":     "object",
		"required": []interface{}{tag, "value"},
		"properties": map[string]interface{}{
			tag:     map[string]interface{}{},
			"value": map[string]interface{}{},
		},
		"additionalProperties": false,
	}
}

func tagExtractor(object map[string]interface{}) (tagFields, discriminatorFields, identificationFields []string) {
	for key := range object {
		if len(key) > 0 && key[0] == '$' {
			tagFields = append(tagFields, key)
		}
	}
	return tagFields, nil, nil
}

func TestScenarioAnyOfUnknownTags(t *testing.T) {
	compiler := NewCompiler()
	raw := AnyOfSchema(taggedVariant("$tagOne"), taggedVariant("$tagTwo"), taggedVariant("$tagThree"))
	compiled, err := compiler.Compile(mustMarshal(t, raw))
	require.NoError(t, err)

	value := map[string]interface{}{"$tagInvalid": "str", "value": float64(1)}
	_, err = compiled.Validate(value, WithSpecialFieldsExtractor(tagExtractor))
	require.Error(t, err)

	diag, ok := err.(*Diagnostic)
	require.True(t, ok)
	assert.Equal(t, "unknownTags", diag.Rule)
	assert.Equal(t, "data<$tagInvalid>", diag.RenderedPath())
}

func discriminatorExtractor(object map[string]interface{}) (tagFields, discriminatorFields, identificationFields []string) {
	if _, ok := object["kind"]; ok {
		discriminatorFields = append(discriminatorFields, "kind")
	}
	return nil, discriminatorFields, nil
}

func TestScenarioDiscriminatedAnyOfTypeMismatch(t *testing.T) {
	compiler := NewCompiler()
	variant := func(kind string, valueType string) map[string]interface{} {
		return Object(
			Prop("kind", EnumSchema(kind)),
			Prop("value", map[string]interface{}{"type": valueType}),
		)
	}
	raw := AnyOfSchema(
		variant("one", "number"),
		variant("two", "string"),
		variant("three", "boolean"),
	)
	compiled, err := compiler.Compile(mustMarshal(t, raw))
	require.NoError(t, err)

	value := map[string]interface{}{"kind": "one", "value": "str"}
	_, err = compiled.Validate(value, WithSpecialFieldsExtractor(discriminatorExtractor))
	require.Error(t, err)

	diag, ok := err.(*Diagnostic)
	require.True(t, ok)
	assert.Equal(t, "type", diag.Rule)
	assert.Equal(t, "data<kind=one>.value", diag.RenderedPath())
	assert.Equal(t, "must be number, but is a: str", diag.Message)
}

func TestCompileBooleanSchemas(t *testing.T) {
	compiler := NewCompiler()

	trueSchema, err := compiler.Compile([]byte(`true`))
	require.NoError(t, err)
	assert.True(t, trueSchema.IsValid("anything"))

	falseSchema, err := compiler.Compile([]byte(`false`))
	require.NoError(t, err)
	assert.False(t, falseSchema.IsValid("anything"))
}

func TestCompileRejectsInvalidTopLevelType(t *testing.T) {
	compiler := NewCompiler()
	_, err := compiler.Compile([]byte(`"not a schema"`))
	require.ErrorIs(t, err, ErrInvalidSchemaType)
}

func TestCompileYAML(t *testing.T) {
	compiler := NewCompiler()
	schema, err := compiler.CompileYAML([]byte(`
type: object
required: [name]
properties:
  name:
    type: string
`))
	require.NoError(t, err)

	assert.True(t, schema.IsValid(map[string]interface{}{"name": "ok"}))
	assert.False(t, schema.IsValid(map[string]interface{}{}))
}

func TestDetermineDraft(t *testing.T) {
	assert.Equal(t, "draft-04", determineDraft(map[string]interface{}{}))
	assert.Equal(t, "draft-06", determineDraft(map[string]interface{}{"$schema": "http://json-schema.org/draft-06/schema#"}))
	assert.Equal(t, "draft-07", determineDraft(map[string]interface{}{"$schema": "http://json-schema.org/draft-07/schema#"}))
}

func mustMarshal(t *testing.T, v interface{}) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}
