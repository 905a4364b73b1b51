package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnumAcceptsListedValuesOnly(t *testing.T) {
	compiler := NewCompiler()
	schema, err := compiler.Compile([]byte(`{"enum":["red","green","blue"]}`))
	require.NoError(t, err)

	assert.True(t, schema.IsValid("red"))
	assert.False(t, schema.IsValid("purple"))
}

func TestConstRequiresExactMatch(t *testing.T) {
	compiler := NewCompiler()
	schema, err := compiler.Compile([]byte(`{"const":42}`))
	require.NoError(t, err)

	assert.True(t, schema.IsValid(float64(42)))
	assert.False(t, schema.IsValid(float64(43)))
}

func TestNotRequiresSchemaToFail(t *testing.T) {
	compiler := NewCompiler()
	schema, err := compiler.Compile([]byte(`{"not":{"type":"string"}}`))
	require.NoError(t, err)

	assert.True(t, schema.IsValid(float64(1)))
	assert.False(t, schema.IsValid("x"))
}

func TestAllOfRequiresEveryBranch(t *testing.T) {
	compiler := NewCompiler()
	schema, err := compiler.Compile([]byte(`{"allOf":[{"type":"number"},{"minimum":0}]}`))
	require.NoError(t, err)

	assert.True(t, schema.IsValid(float64(5)))
	assert.False(t, schema.IsValid(float64(-5)))
	assert.False(t, schema.IsValid("not a number"))
}

func TestOneOfRequiresExactlyOneMatch(t *testing.T) {
	compiler := NewCompiler()
	schema, err := compiler.Compile([]byte(`{"oneOf":[{"type":"number","multipleOf":5},{"type":"number","multipleOf":3}]}`))
	require.NoError(t, err)

	assert.True(t, schema.IsValid(float64(5)))  // only multiple of 5
	assert.True(t, schema.IsValid(float64(9)))  // only multiple of 3
	assert.False(t, schema.IsValid(float64(15))) // matches both
	assert.False(t, schema.IsValid(float64(7)))  // matches neither
}

func TestAnyOfRequiresAtLeastOneMatch(t *testing.T) {
	compiler := NewCompiler()
	schema, err := compiler.Compile([]byte(`{"anyOf":[{"type":"string"},{"type":"number"}]}`))
	require.NoError(t, err)

	assert.True(t, schema.IsValid("x"))
	assert.True(t, schema.IsValid(float64(1)))
	assert.False(t, schema.IsValid(true))
}
