package jsonschema

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFunctionCallNoArgs(t *testing.T) {
	call, err := parseFunctionCall("now()")
	require.NoError(t, err)
	require.NotNil(t, call)
	assert.Equal(t, "now", call.Name)
	assert.Empty(t, call.Args)
}

func TestParseFunctionCallWithArgs(t *testing.T) {
	call, err := parseFunctionCall("clamp(1, 2.5, hello)")
	require.NoError(t, err)
	require.NotNil(t, call)
	assert.Equal(t, "clamp", call.Name)
	assert.Equal(t, []any{int64(1), 2.5, "hello"}, call.Args)
}

func TestParseFunctionCallRejectsPlainStrings(t *testing.T) {
	call, err := parseFunctionCall("just a literal default")
	require.NoError(t, err)
	assert.Nil(t, call)
}

func TestDefaultNowFuncDefaultFormat(t *testing.T) {
	out, err := DefaultNowFunc()
	require.NoError(t, err)
	s, ok := out.(string)
	require.True(t, ok)
	_, err = time.Parse(time.RFC3339, s)
	assert.NoError(t, err)
}

func TestDefaultNowFuncCustomFormat(t *testing.T) {
	out, err := DefaultNowFunc("2006-01-02")
	require.NoError(t, err)
	s, ok := out.(string)
	require.True(t, ok)
	_, err = time.Parse("2006-01-02", s)
	assert.NoError(t, err)
}

func TestDefaultUUIDFuncProducesDistinctValues(t *testing.T) {
	a, err := DefaultUUIDFunc()
	require.NoError(t, err)
	b, err := DefaultUUIDFunc()
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
	assert.Len(t, a.(string), 36)
}
