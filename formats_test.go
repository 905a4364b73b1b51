package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsDateTime(t *testing.T) {
	assert.True(t, IsDateTime("2023-01-15T10:30:00Z"))
	assert.False(t, IsDateTime("2023-01-15"))
	assert.True(t, IsDateTime(42)) // non-strings are not this format's concern
}

func TestIsDate(t *testing.T) {
	assert.True(t, IsDate("2023-01-15"))
	assert.False(t, IsDate("2023-13-01"))
}

func TestIsTime(t *testing.T) {
	assert.True(t, IsTime("10:30:00Z"))
	assert.True(t, IsTime("10:30:00+02:00"))
	assert.False(t, IsTime("25:00:00Z"))
}

func TestIsEmail(t *testing.T) {
	assert.True(t, IsEmail("person@example.com"))
	assert.False(t, IsEmail("not-an-email"))
}

func TestIsIPV4(t *testing.T) {
	assert.True(t, IsIPV4("192.168.1.1"))
	assert.False(t, IsIPV4("not.an.ip"))
	assert.False(t, IsIPV4("::1"))
}

func TestIsIPV6(t *testing.T) {
	assert.True(t, IsIPV6("::1"))
	assert.False(t, IsIPV6("192.168.1.1"))
}

func TestIsUUID(t *testing.T) {
	assert.True(t, IsUUID("123e4567-e89b-12d3-a456-426614174000"))
	assert.False(t, IsUUID("not-a-uuid"))
}

func TestIsHostname(t *testing.T) {
	assert.True(t, IsHostname("example.com"))
	assert.False(t, IsHostname(""))
}

func TestIsURI(t *testing.T) {
	assert.True(t, IsURI("https://example.com/path"))
	assert.False(t, IsURI("not a uri"))
}

func TestFormatRegistryRegisterGuardsBuiltins(t *testing.T) {
	c := NewCompiler()
	err := c.RegisterFormat("email", func(interface{}) bool { return true }, false)
	assert.ErrorIs(t, err, ErrFormatAlreadyRegistered)

	err = c.RegisterFormat("email", func(interface{}) bool { return true }, true)
	assert.NoError(t, err)
}

func TestFormatRegistryRegisterNewName(t *testing.T) {
	c := NewCompiler()
	err := c.RegisterFormat("always-valid", func(interface{}) bool { return true }, false)
	assert.NoError(t, err)

	schema, err := c.SetAssertFormat(true).Compile([]byte(`{"type":"string","format":"always-valid"}`))
	assert.NoError(t, err)
	assert.True(t, schema.IsValid("anything at all"))
}
