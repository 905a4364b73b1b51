package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringLengthCountsCodePointsNotBytes(t *testing.T) {
	compiler := NewCompiler()
	schema, err := compiler.Compile([]byte(`{"type":"string","minLength":3,"maxLength":3}`))
	require.NoError(t, err)

	// "héllo"[:3 runes] style check: three multi-byte runes still count as 3.
	assert.True(t, schema.IsValid("日本語"))
	assert.False(t, schema.IsValid("日本"))
}

func TestStringPattern(t *testing.T) {
	compiler := NewCompiler()
	schema, err := compiler.Compile([]byte(`{"type":"string","pattern":"^[a-z]+$"}`))
	require.NoError(t, err)

	assert.True(t, schema.IsValid("abc"))
	assert.False(t, schema.IsValid("ABC"))
}

func TestStringInvalidPatternIsDefinitionError(t *testing.T) {
	compiler := NewCompiler()
	_, err := compiler.Compile([]byte(`{"type":"string","pattern":"(unterminated"}`))
	require.Error(t, err)
	var defErr *DefinitionError
	require.ErrorAs(t, err, &defErr)
}

func TestStringFormatIsAdvisoryByDefault(t *testing.T) {
	compiler := NewCompiler()
	schema, err := compiler.Compile([]byte(`{"type":"string","format":"email"}`))
	require.NoError(t, err)

	assert.True(t, schema.IsValid("not-an-email"))
}

func TestStringFormatIsAssertedWhenEnabled(t *testing.T) {
	compiler := NewCompiler().SetAssertFormat(true)
	schema, err := compiler.Compile([]byte(`{"type":"string","format":"email"}`))
	require.NoError(t, err)

	assert.True(t, schema.IsValid("person@example.com"))
	assert.False(t, schema.IsValid("not-an-email"))
}

func TestStringUnknownFormatIsImplicitlyValid(t *testing.T) {
	compiler := NewCompiler().SetAssertFormat(true)
	schema, err := compiler.Compile([]byte(`{"type":"string","format":"made-up-format"}`))
	require.NoError(t, err)

	assert.True(t, schema.IsValid("anything"))
}
