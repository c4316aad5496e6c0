package widget

import (
	"fmt"
	"testing"

	"github.com/getseabird/materia/icon"
	"github.com/getseabird/materia/internal/dom"
	"github.com/getseabird/materia/internal/idgen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slices"
)

func TestRenderDefaultNode(t *testing.T) {
	el := Render(Props{})
	assert.Equal(t, dom.TagButton, el.Tag)
	assert.Equal(t, "btn", el.Class)
	assert.False(t, el.Disabled)
	assert.Empty(t, el.Children)
}

func TestRenderNode(t *testing.T) {
	for _, node := range []Node{NodeButton, NodeAnchor, NodeDiv, NodeSpan} {
		el := Render(Props{Node: node})
		assert.Equal(t, dom.Tag(node), el.Tag)
	}

	el := Render(Props{Node: "table"})
	assert.Equal(t, dom.TagButton, el.Tag, "unknown nodes fall back to button")
}

func TestRenderPassThrough(t *testing.T) {
	clicks := 0
	el := Render(Props{
		Node:      NodeAnchor,
		ClassName: "red",
		Disabled:  true,
		Tooltip:   "Save",
		Attrs:     map[string]string{"id": "save", "href": "#save"},
		OnClick:   func() { clicks++ },
		Children:  []dom.Node{dom.Text("Save")},
	})

	assert.Equal(t, "save", el.ID)
	assert.Equal(t, "#save", el.Attr("href"))
	assert.Equal(t, "Save", el.Attr(AttrTooltip))
	assert.NotContains(t, el.Attrs, "id")
	assert.True(t, el.Disabled)
	assert.Equal(t, "btn disabled red", el.Class)
	assert.Equal(t, []dom.Node{dom.Text("Save")}, el.Children)

	require.NotNil(t, el.OnClick)
	el.OnClick()
	assert.Equal(t, 1, clicks)
}

func TestRenderDoesNotMutateAttrs(t *testing.T) {
	attrs := map[string]string{"id": "a"}
	Render(Props{Attrs: attrs, Tooltip: "tip"})
	assert.Equal(t, map[string]string{"id": "a"}, attrs)
}

func TestRenderNoTooltipAttr(t *testing.T) {
	el := Render(Props{})
	assert.NotContains(t, el.Attrs, AttrTooltip)

	fab := Render(Props{Fab: FabVertical})
	assert.NotContains(t, fab.Attrs, AttrTooltip)
}

func TestClassesWaves(t *testing.T) {
	classes := Classes(Props{Waves: WavesTeal})
	assert.True(t, classes.Has("waves-effect"))
	assert.True(t, classes.Has("waves-teal"))

	classes = Classes(Props{})
	assert.False(t, classes.Has("waves-effect"))

	classes = Classes(Props{Waves: "blue"})
	assert.True(t, classes.Has("waves-effect"), "any waves value enables the effect")
	assert.False(t, classes.Has("waves-blue"))
}

func TestClassesStyles(t *testing.T) {
	el := Render(Props{Flat: true, Large: true, Waves: WavesLight})
	assert.Equal(t, "btn waves-effect waves-light btn-flat btn-large", el.Class)

	el = Render(Props{Floating: true})
	assert.Equal(t, "btn btn-floating", el.Class)
}

func TestClassesModal(t *testing.T) {
	classes := Classes(Props{Modal: ModalConfirm})
	assert.True(t, classes.Has("modal-action"))
	assert.True(t, classes.Has("modal-confirm"))

	classes = Classes(Props{Modal: ModalClose})
	assert.True(t, classes.Has("modal-close"))
	assert.False(t, classes.Has("modal-confirm"))

	assert.False(t, Classes(Props{}).Has("modal-action"))
}

func TestRenderIcon(t *testing.T) {
	el := Render(Props{Icon: "add", Children: []dom.Node{dom.Text("Add")}})
	require.Len(t, el.Children, 2)
	name, ok := icon.Name(el.Children[0].(*dom.Element))
	assert.True(t, ok)
	assert.Equal(t, "add", name)
	assert.Equal(t, dom.Text("Add"), el.Children[1])

	el = Render(Props{Children: []dom.Node{dom.Text("Add")}})
	assert.Empty(t, dom.Find(el, dom.ByClass(icon.Class)))
}

func TestRenderCustomIcon(t *testing.T) {
	r := Renderer{Icon: func(name string) dom.Node { return dom.Text("[" + name + "]") }}
	el := r.Render(Props{Icon: "add"})
	assert.Equal(t, []dom.Node{dom.Text("[add]")}, el.Children)
}

func TestRenderSkipsNilChildren(t *testing.T) {
	el := Render(Props{Children: []dom.Node{nil, dom.Text("a"), nil}})
	assert.Equal(t, []dom.Node{dom.Text("a")}, el.Children)
}

func TestRenderOwnsAttributes(t *testing.T) {
	el := Render(Props{Attrs: map[string]string{
		"disabled":   "false",
		"class":      "extra",
		AttrTooltip:  "stale",
		"aria-label": "Save",
	}})
	out, err := dom.HTML(el)
	require.NoError(t, err)
	assert.Equal(t, `<button class="btn" aria-label="Save"></button>`, out)

	el = Render(Props{Disabled: true, Tooltip: "Save", Attrs: map[string]string{"disabled": "false", AttrTooltip: "stale"}})
	out, err = dom.HTML(el)
	require.NoError(t, err)
	assert.Equal(t, `<button class="btn disabled" disabled="" data-tooltip="Save"></button>`, out)
}

func TestRenderFab(t *testing.T) {
	r := Renderer{Key: idgen.Sequence("action")}
	clicked := false
	el := r.Render(Props{
		Fab:       FabVertical,
		Icon:      "mode_edit",
		Large:     true,
		ClassName: "red",
		Disabled:  true,
		Tooltip:   "Edit",
		Attrs:     map[string]string{"id": "edit", "href": "#"},
		OnClick:   func() { clicked = true },
		Children: []dom.Node{
			Render(Props{Floating: true, Icon: "insert_chart"}),
			Render(Props{Floating: true, Icon: "format_quote"}),
			nil,
			Render(Props{Floating: true, Icon: "publish"}),
		},
	})

	assert.Equal(t, dom.TagDiv, el.Tag)
	assert.Equal(t, "vertical fixed-action-btn", el.Class)
	assert.True(t, el.Disabled)
	assert.Equal(t, "Edit", el.Attr(AttrTooltip))
	assert.Nil(t, el.OnClick)

	children := el.Elements()
	require.Len(t, children, 2)

	anchor := children[0]
	assert.Equal(t, dom.TagAnchor, anchor.Tag)
	assert.Equal(t, "edit", anchor.ID)
	assert.Empty(t, anchor.Attrs)
	assert.Nil(t, anchor.OnClick)
	assert.Equal(t, "btn disabled btn-large red", anchor.Class)
	require.Len(t, anchor.Children, 1)
	name, _ := icon.Name(anchor.Children[0].(*dom.Element))
	assert.Equal(t, "mode_edit", name)

	list := children[1]
	assert.Equal(t, dom.TagList, list.Tag)
	items := list.Elements()
	require.Len(t, items, 4)
	for i, item := range items {
		assert.Equal(t, fmt.Sprintf("action-%d", i+1), item.Key)
	}
	assert.Empty(t, items[2].Children)
	for _, item := range slices.Delete(items, 2, 3) {
		assert.Equal(t, dom.TagItem, item.Tag)
		require.Len(t, item.Children, 1)
		action := item.Children[0].(*dom.Element)
		assert.True(t, action.HasClass("btn-floating"))
		assert.False(t, action.Disabled)
		assert.Nil(t, action.OnClick)
	}

	assert.False(t, clicked)
}

func TestRenderFabKeysAreFreshPerRender(t *testing.T) {
	props := Props{Fab: FabHorizontal, Children: []dom.Node{dom.Text("a"), dom.Text("b")}}

	keys := map[string]bool{}
	for i := 0; i < 3; i++ {
		for _, item := range dom.Find(Render(props), dom.ByTag(dom.TagItem)) {
			assert.NotEmpty(t, item.Key)
			assert.False(t, keys[item.Key], "key %s reused", item.Key)
			keys[item.Key] = true
		}
	}
	assert.Len(t, keys, 6)
}

func TestRenderFabClickOnly(t *testing.T) {
	el := Render(Props{Fab: FabHorizontal, FabClickOnly: true})
	assert.Equal(t, "horizontal click-to-toggle fixed-action-btn", el.Class)
	assert.True(t, el.HasClass(ClassClickToToggle))

	el = Render(Props{Fab: FabHorizontal})
	assert.False(t, el.HasClass(ClassClickToToggle))

	el = Render(Props{FabClickOnly: true})
	assert.False(t, el.HasClass(ClassClickToToggle), "only fabs toggle")
}

func TestRenderFabWithoutIcon(t *testing.T) {
	el := Render(Props{Fab: FabVertical})
	anchor := el.Elements()[0]
	assert.Empty(t, anchor.Children)
	assert.Empty(t, el.Elements()[1].Children)
}

func TestRenderHTML(t *testing.T) {
	out, err := dom.HTML(Render(Props{
		Waves:    WavesLight,
		Icon:     "cloud",
		Children: []dom.Node{dom.Text("Upload")},
	}))
	require.NoError(t, err)
	assert.Equal(t, `<button class="btn waves-effect waves-light"><i class="material-icons">cloud</i>Upload</button>`, out)
}

func TestRootTag(t *testing.T) {
	for _, p := range []Props{
		{},
		{Node: NodeSpan},
		{Node: "table"},
		{Fab: FabVertical, Node: NodeSpan},
	} {
		assert.Equal(t, Render(p).Tag, RootTag(p))
	}
}
