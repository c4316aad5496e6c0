package dom

import (
	"bytes"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTML serializes the tree. Keys and click handlers have no markup and are
// left out.
func HTML(n Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, toHTML(n)); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func toHTML(n Node) *html.Node {
	switch n := n.(type) {
	case Text:
		return &html.Node{Type: html.TextNode, Data: string(n)}
	case *Element:
		if n == nil {
			break
		}
		node := &html.Node{
			Type:     html.ElementNode,
			Data:     string(n.Tag),
			DataAtom: atom.Lookup([]byte(n.Tag)),
		}
		if n.ID != "" {
			node.Attr = append(node.Attr, html.Attribute{Key: "id", Val: n.ID})
		}
		if n.Class != "" {
			node.Attr = append(node.Attr, html.Attribute{Key: "class", Val: n.Class})
		}
		if n.Disabled {
			node.Attr = append(node.Attr, html.Attribute{Key: "disabled"})
		}
		keys := maps.Keys(n.Attrs)
		slices.Sort(keys)
		for _, key := range keys {
			node.Attr = append(node.Attr, html.Attribute{Key: key, Val: n.Attrs[key]})
		}
		for _, child := range n.Children {
			if !empty(child) {
				node.AppendChild(toHTML(child))
			}
		}
		return node
	}
	return &html.Node{Type: html.CommentNode, Data: "nil"}
}
