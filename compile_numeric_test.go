package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumericMultipleOfPrecision(t *testing.T) {
	compiler := NewCompiler()
	schema, err := compiler.Compile([]byte(`{"type":"number","multipleOf":0.0001}`))
	require.NoError(t, err)

	assert.True(t, schema.IsValid(0.0075))
	assert.False(t, schema.IsValid(0.00751))
}

func TestNumericInclusiveBounds(t *testing.T) {
	compiler := NewCompiler()
	schema, err := compiler.Compile([]byte(`{"type":"number","minimum":1,"maximum":10}`))
	require.NoError(t, err)

	assert.True(t, schema.IsValid(float64(1)))
	assert.True(t, schema.IsValid(float64(10)))

	_, err = schema.Validate(float64(0))
	require.Error(t, err)
	diag := err.(*Diagnostic)
	assert.Equal(t, "minimum", diag.Rule)
	assert.Equal(t, "must be bigger than or equal to 1", diag.Message)

	_, err = schema.Validate(float64(11))
	require.Error(t, err)
	diag = err.(*Diagnostic)
	assert.Equal(t, "maximum", diag.Rule)
	assert.Equal(t, "must be smaller than or equal to 10", diag.Message)
}

func TestNumericExclusiveBoundsDraft06Form(t *testing.T) {
	compiler := NewCompiler()
	schema, err := compiler.Compile([]byte(`{"type":"number","exclusiveMinimum":1,"exclusiveMaximum":10}`))
	require.NoError(t, err)

	_, err = schema.Validate(float64(1))
	require.Error(t, err)
	diag := err.(*Diagnostic)
	assert.Equal(t, "exclusiveMinimum", diag.Rule)
	assert.Equal(t, "must be bigger than 1", diag.Message)

	_, err = schema.Validate(float64(10))
	require.Error(t, err)
	diag = err.(*Diagnostic)
	assert.Equal(t, "exclusiveMaximum", diag.Rule)
	assert.Equal(t, "must be smaller than 10", diag.Message)

	assert.True(t, schema.IsValid(float64(5)))
}

func TestNumericExclusiveMinimumBoolFormReportsUnderMinimum(t *testing.T) {
	compiler := NewCompiler()
	schema, err := compiler.Compile([]byte(`{"type":"number","minimum":1,"exclusiveMinimum":true}`))
	require.NoError(t, err)

	_, err = schema.Validate(float64(1))
	require.Error(t, err)
	diag := err.(*Diagnostic)
	assert.Equal(t, "minimum", diag.Rule)
	assert.Equal(t, "must be bigger than 1", diag.Message)

	assert.True(t, schema.IsValid(float64(1.1)))
}

func TestNumericExclusiveMinimumBoolFormFalseIsInclusive(t *testing.T) {
	compiler := NewCompiler()
	schema, err := compiler.Compile([]byte(`{"type":"number","minimum":1,"exclusiveMinimum":false}`))
	require.NoError(t, err)

	assert.True(t, schema.IsValid(float64(1)))
}

func TestNumericNonNumberInstancesPassThrough(t *testing.T) {
	compiler := NewCompiler()
	schema, err := compiler.Compile([]byte(`{"minimum":5}`))
	require.NoError(t, err)

	assert.True(t, schema.IsValid("not a number"))
}

func TestNumericMultipleOfMustBePositive(t *testing.T) {
	compiler := NewCompiler()
	_, err := compiler.Compile([]byte(`{"type":"number","multipleOf":0}`))
	require.Error(t, err)
	var defErr *DefinitionError
	require.ErrorAs(t, err, &defErr)
}
