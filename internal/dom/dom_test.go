package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tree() *Element {
	return &Element{
		Tag:   TagDiv,
		Class: "horizontal fixed-action-btn",
		Children: []Node{
			&Element{Tag: TagAnchor, Class: "btn btn-large", Children: []Node{
				&Element{Tag: TagIcon, Class: "material-icons", Children: []Node{Text("mode_edit")}},
			}},
			&Element{Tag: TagList, Children: []Node{
				&Element{Tag: TagItem, Key: "a", Children: []Node{Text("one")}},
				&Element{Tag: TagItem, Key: "b", Children: []Node{Text("two")}},
			}},
		},
	}
}

func TestFind(t *testing.T) {
	root := tree()

	items := Find(root, ByTag(TagItem))
	require.Len(t, items, 2)
	assert.Equal(t, "a", items[0].Key)
	assert.Equal(t, "two", items[1].Text())

	assert.Len(t, Find(root, ByClass("fixed-action-btn")), 1)
	assert.Empty(t, Find(root, ByClass("fixed")))
}

func TestWalkSkipsChildren(t *testing.T) {
	var tags []Tag
	Walk(tree(), func(n Node) bool {
		el, ok := n.(*Element)
		if ok {
			tags = append(tags, el.Tag)
		}
		return !ok || el.Tag != TagList
	})
	assert.Equal(t, []Tag{TagDiv, TagAnchor, TagIcon, TagList}, tags)
}

func TestElements(t *testing.T) {
	el := &Element{Tag: TagButton, Children: []Node{Text("x"), &Element{Tag: TagIcon}}}
	require.Len(t, el.Elements(), 1)
	assert.Equal(t, TagIcon, el.Elements()[0].Tag)
	assert.Equal(t, "x", el.Text())
}

func TestHTML(t *testing.T) {
	el := &Element{
		Tag:      TagButton,
		ID:       "save",
		Class:    "btn disabled",
		Disabled: true,
		Attrs:    map[string]string{"type": "submit", "data-tooltip": "Save <now>"},
		Children: []Node{Text("Save")},
	}

	out, err := HTML(el)
	require.NoError(t, err)
	assert.Equal(t, `<button id="save" class="btn disabled" disabled="" data-tooltip="Save &lt;now&gt;" type="submit">Save</button>`, out)
}

func TestHTMLNested(t *testing.T) {
	out, err := HTML(tree())
	require.NoError(t, err)
	assert.Equal(t, `<div class="horizontal fixed-action-btn"><a class="btn btn-large"><i class="material-icons">mode_edit</i></a><ul><li>one</li><li>two</li></ul></div>`, out)
}

func TestPretty(t *testing.T) {
	out, err := Pretty(tree())
	require.NoError(t, err)
	assert.Equal(t, `<div class="horizontal fixed-action-btn">
  <a class="btn btn-large">
    <i class="material-icons">mode_edit</i>
  </a>
  <ul>
    <li>one</li>
    <li>two</li>
  </ul>
</div>
`, out)
}

func TestPrettyLeaf(t *testing.T) {
	out, err := Pretty(&Element{Tag: TagButton, Class: "btn", Children: []Node{Text("Go"), nil}})
	require.NoError(t, err)
	assert.Equal(t, "<button class=\"btn\">Go</button>\n", out)

	out, err = Pretty(Text("a < b"))
	require.NoError(t, err)
	assert.Equal(t, "a &lt; b\n", out)
}

func TestNilElement(t *testing.T) {
	var missing *Element
	el := &Element{Tag: TagList, Children: []Node{missing, &Element{Tag: TagItem, Children: []Node{missing}}}}

	out, err := HTML(el)
	require.NoError(t, err)
	assert.Equal(t, "<ul><li></li></ul>", out)

	out, err = Pretty(el)
	require.NoError(t, err)
	assert.Equal(t, "<ul>\n  <li></li>\n</ul>\n", out)

	require.Len(t, el.Elements(), 1)
	assert.Len(t, Find(el, ByTag(TagItem)), 1)

	out, err = HTML(missing)
	require.NoError(t, err)
	assert.Equal(t, "<!--nil-->", out)
}

func TestDiff(t *testing.T) {
	out, err := Diff(tree(), tree())
	require.NoError(t, err)
	assert.Empty(t, out)

	after := tree()
	after.Elements()[0].Class = "btn btn-large red"

	out, err = Diff(tree(), after)
	require.NoError(t, err)
	assert.Contains(t, out, "--- before\n+++ after\n")
	assert.Contains(t, out, "-  <a class=\"btn btn-large\">\n")
	assert.Contains(t, out, "+  <a class=\"btn btn-large red\">\n")
}
