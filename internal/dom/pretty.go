package dom

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"
	"golang.org/x/net/html"
)

// Pretty serializes the tree with one element per line. Elements holding
// only text stay on a single line.
func Pretty(n Node) (string, error) {
	var buf bytes.Buffer
	if err := pretty(&buf, n, 0); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func pretty(buf *bytes.Buffer, n Node, depth int) error {
	indent := strings.Repeat("  ", depth)

	el, ok := n.(*Element)
	if !ok || el == nil || textOnly(el) {
		out, err := HTML(n)
		if err != nil {
			return err
		}
		fmt.Fprintf(buf, "%s%s\n", indent, out)
		return nil
	}

	// render the bare element and split it around its closing tag
	shallow := *el
	shallow.Children = nil
	var tag bytes.Buffer
	if err := html.Render(&tag, toHTML(&shallow)); err != nil {
		return err
	}
	closing := fmt.Sprintf("</%s>", el.Tag)
	fmt.Fprintf(buf, "%s%s\n", indent, strings.TrimSuffix(tag.String(), closing))

	for _, child := range el.Children {
		if empty(child) {
			continue
		}
		if err := pretty(buf, child, depth+1); err != nil {
			return err
		}
	}
	fmt.Fprintf(buf, "%s%s\n", indent, closing)
	return nil
}

func textOnly(el *Element) bool {
	for _, child := range el.Children {
		if _, ok := child.(Text); !ok && !empty(child) {
			return false
		}
	}
	return true
}

// Diff returns a unified diff between the pretty forms of two trees, or ""
// when they serialize the same.
func Diff(before, after Node) (string, error) {
	a, err := Pretty(before)
	if err != nil {
		return "", err
	}
	b, err := Pretty(after)
	if err != nil {
		return "", err
	}
	edits := myers.ComputeEdits(span.URIFromPath("button.html"), a, b)
	return fmt.Sprint(gotextdiff.ToUnified("before", "after", a, edits)), nil
}
