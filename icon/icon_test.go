package icon

import (
	"testing"

	"github.com/getseabird/materia/internal/dom"
	"github.com/stretchr/testify/assert"
)

func TestNode(t *testing.T) {
	el := Node("add")
	assert.Equal(t, dom.TagIcon, el.Tag)
	assert.True(t, el.HasClass(Class))

	name, ok := Name(el)
	assert.True(t, ok)
	assert.Equal(t, "add", name)
}

func TestNameRejectsOtherElements(t *testing.T) {
	_, ok := Name(&dom.Element{Tag: dom.TagIcon, Children: []dom.Node{dom.Text("add")}})
	assert.False(t, ok)

	_, ok = Name(&dom.Element{Tag: dom.TagSpan, Class: Class})
	assert.False(t, ok)

	_, ok = Name(nil)
	assert.False(t, ok)
}

func TestSymbolic(t *testing.T) {
	assert.Equal(t, "list-add-symbolic", Symbolic("add"))
	assert.Equal(t, "document-edit-symbolic", Symbolic("mode_edit"))
	assert.Equal(t, "camera-photo-symbolic", Symbolic("camera_photo"))
	assert.Equal(t, "image-missing-symbolic", Symbolic(""))
}
