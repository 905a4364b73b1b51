package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefIntoUnreferencedDefs(t *testing.T) {
	compiler := NewCompiler()
	schema, err := compiler.Compile([]byte(`{
		"type": "object",
		"properties": {
			"name": {"$ref": "#/$defs/nonEmptyString"}
		},
		"$defs": {
			"nonEmptyString": {"type": "string", "minLength": 1}
		}
	}`))
	require.NoError(t, err)

	assert.True(t, schema.IsValid(map[string]interface{}{"name": "ok"}))
	assert.False(t, schema.IsValid(map[string]interface{}{"name": ""}))
}

func TestRefIntoDefinitionsDraft04Style(t *testing.T) {
	compiler := NewCompiler()
	schema, err := compiler.Compile([]byte(`{
		"definitions": {
			"positiveInt": {"type": "integer", "minimum": 0, "exclusiveMinimum": true}
		},
		"type": "array",
		"items": {"$ref": "#/definitions/positiveInt"}
	}`))
	require.NoError(t, err)

	assert.True(t, schema.IsValid([]interface{}{float64(1), float64(2)}))
	assert.False(t, schema.IsValid([]interface{}{float64(0)}))
}

func TestRefCycleDoesNotInfiniteLoop(t *testing.T) {
	compiler := NewCompiler()
	schema, err := compiler.Compile([]byte(`{
		"$id": "http://example.com/tree",
		"type": "object",
		"properties": {
			"value": {"type": "number"},
			"children": {
				"type": "array",
				"items": {"$ref": "http://example.com/tree"}
			}
		}
	}`))
	require.NoError(t, err)

	tree := map[string]interface{}{
		"value": float64(1),
		"children": []interface{}{
			map[string]interface{}{
				"value":    float64(2),
				"children": []interface{}{},
			},
		},
	}
	assert.True(t, schema.IsValid(tree))

	bad := map[string]interface{}{
		"value": float64(1),
		"children": []interface{}{
			map[string]interface{}{"value": "not a number", "children": []interface{}{}},
		},
	}
	_, err = schema.Validate(bad)
	require.Error(t, err)
	diag := err.(*Diagnostic)
	assert.Equal(t, "type", diag.Rule)
	assert.Equal(t, Path{"children", 0, "value"}, diag.Path)
}

func TestRefSelfCycleThroughRootAnchor(t *testing.T) {
	compiler := NewCompiler()
	schema, err := compiler.Compile([]byte(`{
		"type": "object",
		"properties": {
			"next": {"$ref": "#"}
		}
	}`))
	require.NoError(t, err)

	assert.True(t, schema.IsValid(map[string]interface{}{
		"next": map[string]interface{}{
			"next": map[string]interface{}{},
		},
	}))
}

func TestRefOutOfDocumentWithoutHandlerFails(t *testing.T) {
	compiler := NewCompiler()
	schema, err := compiler.Compile([]byte(`{"$ref": "https://example.com/other.json"}`))
	require.ErrorIs(t, err, ErrRefHandlerMissing)
	require.Nil(t, schema)
}

func TestRefOutOfDocumentWithHandler(t *testing.T) {
	compiler := NewCompiler()
	compiler.SetRefHandler(func(uri string) (interface{}, error) {
		assert.Equal(t, "https://example.com/other.json", uri)
		return map[string]interface{}{"type": "string"}, nil
	})
	schema, err := compiler.Compile([]byte(`{"$ref": "https://example.com/other.json"}`))
	require.NoError(t, err)

	assert.True(t, schema.IsValid("ok"))
	assert.False(t, schema.IsValid(float64(1)))
}
