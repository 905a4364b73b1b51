package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPythonTypeName(t *testing.T) {
	assert.Equal(t, "NoneType", pythonTypeName(nil))
	assert.Equal(t, "bool", pythonTypeName(true))
	assert.Equal(t, "str", pythonTypeName("x"))
	assert.Equal(t, "int", pythonTypeName(float64(3)))
	assert.Equal(t, "float", pythonTypeName(3.5))
	assert.Equal(t, "list", pythonTypeName([]interface{}{}))
	assert.Equal(t, "dict", pythonTypeName(map[string]interface{}{}))
}

func TestJSONKind(t *testing.T) {
	assert.Equal(t, "null", jsonKind(nil))
	assert.Equal(t, "boolean", jsonKind(false))
	assert.Equal(t, "integer", jsonKind(float64(3)))
	assert.Equal(t, "number", jsonKind(3.5))
	assert.Equal(t, "string", jsonKind("x"))
	assert.Equal(t, "array", jsonKind([]interface{}{}))
	assert.Equal(t, "object", jsonKind(map[string]interface{}{}))
}

func TestDeepCopyJSONDoesNotAliasNestedContainers(t *testing.T) {
	original := map[string]interface{}{
		"a": []interface{}{float64(1), float64(2)},
	}
	copied := deepCopyJSON(original).(map[string]interface{})
	copied["a"].([]interface{})[0] = float64(99)

	assert.Equal(t, float64(1), original["a"].([]interface{})[0])
}

func TestStructuralEqual(t *testing.T) {
	assert.True(t, structuralEqual(float64(1), 1))
	assert.True(t, structuralEqual(
		map[string]interface{}{"a": float64(1)},
		map[string]interface{}{"a": float64(1)},
	))
	assert.False(t, structuralEqual(
		[]interface{}{float64(1), float64(2)},
		[]interface{}{float64(1)},
	))
}

func TestQuoteList(t *testing.T) {
	assert.Equal(t, "[a], [b]", quoteList([]string{"a", "b"}))
	assert.Equal(t, "", quoteList(nil))
}

func TestResolveRelativeURI(t *testing.T) {
	assert.Equal(t, "http://example.com/schemas/child.json",
		resolveRelativeURI("http://example.com/schemas/parent.json", "child.json"))
	assert.Equal(t, "http://other.com/x.json",
		resolveRelativeURI("http://example.com/schemas/parent.json", "http://other.com/x.json"))
}

func TestGetBaseURI(t *testing.T) {
	assert.Equal(t, "http://example.com/schemas/", getBaseURI("http://example.com/schemas/child.json"))
}

func TestSplitRef(t *testing.T) {
	base, anchor := splitRef("http://example.com/schema.json#/definitions/foo")
	assert.Equal(t, "http://example.com/schema.json", base)
	assert.Equal(t, "/definitions/foo", anchor)

	base, anchor = splitRef("#/definitions/foo")
	assert.Equal(t, "", base)
	assert.Equal(t, "/definitions/foo", anchor)
}
