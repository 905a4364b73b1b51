package jsonschema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compileRaw(t *testing.T, raw map[string]interface{}) *CompiledSchema {
	t.Helper()
	b, err := json.Marshal(raw)
	require.NoError(t, err)
	schema, err := NewCompiler().Compile(b)
	require.NoError(t, err)
	return schema
}

func TestConstructorObjectWithPropertiesAndRequired(t *testing.T) {
	raw := Object(
		Prop("name", String(MinLen(1))),
		Prop("age", Integer(Min(0))),
		Required("name"),
		AdditionalProps(false),
	)
	schema := compileRaw(t, raw)

	assert.True(t, schema.IsValid(map[string]interface{}{"name": "a", "age": float64(1)}))
	assert.False(t, schema.IsValid(map[string]interface{}{"age": float64(1)}))
	assert.False(t, schema.IsValid(map[string]interface{}{"name": "a", "extra": true}))
}

func TestConstructorStringKeywords(t *testing.T) {
	raw := String(MinLen(2), MaxLen(4), Pattern("^[a-z]+$"))
	schema := compileRaw(t, raw)

	assert.True(t, schema.IsValid("abcd"))
	assert.False(t, schema.IsValid("a"))
	assert.False(t, schema.IsValid("abcde"))
	assert.False(t, schema.IsValid("ABCD"))
}

func TestConstructorNumberKeywords(t *testing.T) {
	raw := Number(Min(0), Max(100), MultipleOf(5))
	schema := compileRaw(t, raw)

	assert.True(t, schema.IsValid(float64(50)))
	assert.False(t, schema.IsValid(float64(51)))
	assert.False(t, schema.IsValid(float64(-5)))
}

func TestConstructorArrayItemsViaRawAssignment(t *testing.T) {
	raw := Array(MinItems(1), UniqueItems(true))
	raw["items"] = String()
	schema := compileRaw(t, raw)

	assert.True(t, schema.IsValid([]interface{}{"a", "b"}))
	assert.False(t, schema.IsValid([]interface{}{}))
	assert.False(t, schema.IsValid([]interface{}{"a", "a"}))
}

func TestConstructorCombinators(t *testing.T) {
	oneOf := compileRaw(t, OneOfSchema(Number(MultipleOf(5)), Number(MultipleOf(3))))
	assert.True(t, oneOf.IsValid(float64(5)))
	assert.False(t, oneOf.IsValid(float64(15)))

	allOf := compileRaw(t, AllOfSchema(Number(Min(0)), Number(Max(10))))
	assert.True(t, allOf.IsValid(float64(5)))
	assert.False(t, allOf.IsValid(float64(-1)))

	anyOf := compileRaw(t, AnyOfSchema(String(), Number()))
	assert.True(t, anyOf.IsValid("x"))
	assert.True(t, anyOf.IsValid(float64(1)))
	assert.False(t, anyOf.IsValid(true))

	not := compileRaw(t, NotSchema(String()))
	assert.True(t, not.IsValid(float64(1)))
	assert.False(t, not.IsValid("x"))
}

func TestConstructorConstAndEnum(t *testing.T) {
	constSchema := compileRaw(t, ConstSchema("fixed"))
	assert.True(t, constSchema.IsValid("fixed"))
	assert.False(t, constSchema.IsValid("other"))

	enumSchema := compileRaw(t, EnumSchema("a", "b", "c"))
	assert.True(t, enumSchema.IsValid("b"))
	assert.False(t, enumSchema.IsValid("d"))
}

func TestConstructorRefSchema(t *testing.T) {
	raw := Object(
		Prop("child", RefSchema("#/definitions/named")),
		Defs(map[string]map[string]interface{}{
			"named": String(MinLen(1)),
		}),
	)
	schema := compileRaw(t, raw)

	assert.True(t, schema.IsValid(map[string]interface{}{"child": "x"}))
	assert.False(t, schema.IsValid(map[string]interface{}{"child": ""}))
}

func TestConstructorDependencies(t *testing.T) {
	raw := Object(PropertyDependency("creditCard", "billingAddress"))
	schema := compileRaw(t, raw)

	assert.True(t, schema.IsValid(map[string]interface{}{}))
	assert.False(t, schema.IsValid(map[string]interface{}{"creditCard": "x"}))
	assert.True(t, schema.IsValid(map[string]interface{}{"creditCard": "x", "billingAddress": "y"}))
}

func TestConstructorConvenienceFormatSchemas(t *testing.T) {
	compiler := NewCompiler().SetAssertFormat(true)
	b, err := json.Marshal(Email())
	require.NoError(t, err)
	schema, err := compiler.Compile(b)
	require.NoError(t, err)

	assert.True(t, schema.IsValid("a@b.com"))
	assert.False(t, schema.IsValid("not-an-email"))
}

func TestConstructorPositiveIntHelper(t *testing.T) {
	schema := compileRaw(t, PositiveInt())
	assert.True(t, schema.IsValid(float64(1)))
	assert.False(t, schema.IsValid(float64(0)))
}
