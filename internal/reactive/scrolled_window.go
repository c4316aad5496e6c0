package reactive

import (
	"context"
	"reflect"

	"github.com/diamondburned/gotk4/pkg/gtk/v4"
)

type ScrolledWindow struct {
	Widget
	PropagateNaturalHeight bool           `gtk:"propagate-natural-height"`
	HScrollbarPolicy       gtk.PolicyType `gtk:"hscrollbar-policy"`
	// Child is wrapped in a viewport unless it scrolls itself.
	Child Model
}

func (m *ScrolledWindow) Type() reflect.Type {
	return reflect.TypeFor[*gtk.ScrolledWindow]()
}

func (m *ScrolledWindow) Create(ctx context.Context) gtk.Widgetter {
	w := gtk.NewScrolledWindow()
	m.Update(ctx, w)
	return w
}

func (m *ScrolledWindow) Update(ctx context.Context, wi gtk.Widgetter) {
	w := wi.(*gtk.ScrolledWindow)
	m.update(ctx, m, w, &m.Widget, gtk.BaseWidget(w))
	setChild(ctx, m.Child, func() gtk.Widgetter {
		child := w.Child()
		if viewport, ok := child.(*gtk.Viewport); ok {
			return viewport.Child()
		}
		return child
	}, w.SetChild)
}
