package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPathWithNeverMutatesReceiver(t *testing.T) {
	base := Path{"a"}
	branch1 := base.With("b")
	branch2 := base.With("c")

	assert.Equal(t, Path{"a"}, base)
	assert.Equal(t, Path{"a", "b"}, branch1)
	assert.Equal(t, Path{"a", "c"}, branch2)
}

func TestRenderPathPlain(t *testing.T) {
	root := map[string]interface{}{
		"items": []interface{}{
			map[string]interface{}{"kind": "one"},
		},
	}
	path := Path{"items", 0, "kind"}
	assert.Equal(t, "data.items[0].kind", renderPath(root, path, nil))
}

func TestRenderPathWithDiscriminatorContext(t *testing.T) {
	root := map[string]interface{}{"kind": "one", "value": "str"}
	path := Path{"value"}
	got := renderPath(root, path, discriminatorExtractor)
	assert.Equal(t, "data<kind=one>.value", got)
}

func TestRenderPathWithTagContext(t *testing.T) {
	root := map[string]interface{}{"$tagInvalid": "str", "value": float64(1)}
	got := renderPath(root, Path{}, tagExtractor)
	assert.Equal(t, "data<$tagInvalid>", got)
}

func TestRenderPathOutOfBoundsIndexStopsDescent(t *testing.T) {
	root := []interface{}{"only"}
	got := renderPath(root, Path{5, "name"}, nil)
	assert.Equal(t, "data[5].name", got)
}
