package reactive

import (
	"strings"

	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/getseabird/materia/icon"
	"github.com/getseabird/materia/internal/dom"
	"github.com/getseabird/materia/widget"
)

// FromDOM maps an element tree onto GTK models. Classes become CSS classes,
// the element id or key becomes the widget name.
func FromDOM(n dom.Node) Model {
	switch n := n.(type) {
	case dom.Text:
		return &Label{Label: string(n)}
	case *dom.Element:
		return fromElement(n)
	}
	return nil
}

func fromElement(el *dom.Element) Model {
	base := Widget{
		Name:       el.ID,
		CSSClasses: strings.Fields(el.Class),
		Disabled:   el.Disabled,
	}
	if base.Name == "" {
		base.Name = el.Key
	}

	if name, ok := icon.Name(el); ok {
		return &Image{Widget: base, IconName: icon.Symbolic(name)}
	}

	switch el.Tag {
	case dom.TagButton:
		m := &Button{Widget: base, Child: content(el.Children)}
		if onClick := el.OnClick; onClick != nil {
			m.Clicked = func(*gtk.Button) { onClick() }
		}
		return m
	case dom.TagAnchor:
		m := &LinkButton{Widget: base, URI: el.Attr("href"), Child: content(el.Children)}
		if onClick := el.OnClick; onClick != nil {
			m.Clicked = func(*gtk.LinkButton) { onClick() }
		}
		return m
	case dom.TagDiv:
		if el.HasClass(widget.ClassFixedActionButton) {
			return fromFab(base, el)
		}
		return &Box{Widget: base, Orientation: gtk.OrientationVertical, Children: children(el.Children), Pressed: el.OnClick}
	default:
		return &Box{Widget: base, Orientation: gtk.OrientationHorizontal, Spacing: 6, Children: children(el.Children), Pressed: el.OnClick}
	}
}

// fromFab expects the trigger anchor followed by the list of actions. Only
// the trigger is made insensitive, through its disabled class, so the
// actions stay usable.
func fromFab(base Widget, el *dom.Element) Model {
	base.Disabled = false
	m := &Fab{
		Widget:      base,
		Orientation: gtk.OrientationVertical,
		ClickOnly:   el.HasClass(widget.ClassClickToToggle),
	}
	if el.HasClass(string(widget.FabHorizontal)) {
		m.Orientation = gtk.OrientationHorizontal
	}

	for _, child := range el.Elements() {
		switch child.Tag {
		case dom.TagAnchor:
			trigger := fromElement(child)
			if w, ok := trigger.(*LinkButton); ok {
				w.Disabled = w.Disabled || child.HasClass("disabled")
			}
			m.Trigger = trigger
		case dom.TagList:
			for _, item := range child.Elements() {
				m.Actions = append(m.Actions, fromElement(item))
			}
		}
	}
	return m
}

func children(nodes []dom.Node) []Model {
	var models []Model
	for _, n := range nodes {
		if m := FromDOM(n); m != nil {
			models = append(models, m)
		}
	}
	return models
}

// content is the single child slot of a button. Several nodes are laid out
// in a row.
func content(nodes []dom.Node) Model {
	models := children(nodes)
	switch len(models) {
	case 0:
		return nil
	case 1:
		return models[0]
	}
	return &Box{Orientation: gtk.OrientationHorizontal, Spacing: 6, Children: models}
}
