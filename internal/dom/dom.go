// Package dom describes host-neutral element trees produced by widgets.
//
// Trees are plain values: a widget renders one, a host (the GTK reconciler,
// an HTML serializer, a test) consumes it.
package dom

import (
	"strings"
)

type Tag string

const (
	TagButton Tag = "button"
	TagAnchor Tag = "a"
	TagDiv    Tag = "div"
	TagSpan   Tag = "span"
	TagList   Tag = "ul"
	TagItem   Tag = "li"
	TagIcon   Tag = "i"
)

// Node is either an *Element or a Text.
type Node interface {
	node()
}

type Text string

func (Text) node() {}

type Element struct {
	Tag Tag
	// Key identifies the element among its siblings. It is never rendered.
	Key      string
	ID       string
	Class    string
	Disabled bool
	// Attrs holds any other attributes, e.g. href or data-tooltip.
	Attrs    map[string]string
	OnClick  func()
	Children []Node
}

func (*Element) node() {}

// empty reports whether n is nil, including a nil *Element.
func empty(n Node) bool {
	el, ok := n.(*Element)
	return n == nil || ok && el == nil
}

func (e *Element) Attr(key string) string {
	return e.Attrs[key]
}

func (e *Element) HasClass(name string) bool {
	for _, c := range strings.Fields(e.Class) {
		if c == name {
			return true
		}
	}
	return false
}

// Elements returns the element children, skipping text.
func (e *Element) Elements() []*Element {
	var elements []*Element
	for _, child := range e.Children {
		if el, ok := child.(*Element); ok && el != nil {
			elements = append(elements, el)
		}
	}
	return elements
}

// Text returns the concatenated text of all descendants.
func (e *Element) Text() string {
	var b strings.Builder
	Walk(e, func(n Node) bool {
		if t, ok := n.(Text); ok {
			b.WriteString(string(t))
		}
		return true
	})
	return b.String()
}

// Walk visits n and its descendants depth first. Returning false from fn
// skips the children of the visited node.
func Walk(n Node, fn func(Node) bool) {
	if empty(n) || !fn(n) {
		return
	}
	if el, ok := n.(*Element); ok {
		for _, child := range el.Children {
			Walk(child, fn)
		}
	}
}

// Find returns all elements under root, root included, that match.
func Find(root Node, match func(*Element) bool) []*Element {
	var found []*Element
	Walk(root, func(n Node) bool {
		if el, ok := n.(*Element); ok && match(el) {
			found = append(found, el)
		}
		return true
	})
	return found
}

func ByTag(tag Tag) func(*Element) bool {
	return func(e *Element) bool {
		return e.Tag == tag
	}
}

func ByClass(name string) func(*Element) bool {
	return func(e *Element) bool {
		return e.HasClass(name)
	}
}
