package reactive

import (
	"context"
	"reflect"

	"github.com/diamondburned/gotk4/pkg/gtk/v4"
)

type Button struct {
	Widget
	Label    string                   `gtk:"label"`
	IconName string                   `gtk:"icon-name"`
	Child    Model                    `gtk:"child"`
	Clicked  func(button *gtk.Button) `gtk:"clicked,signal"`
}

func (m *Button) Type() reflect.Type {
	return reflect.TypeFor[*gtk.Button]()
}

func (m *Button) Create(ctx context.Context) gtk.Widgetter {
	w := gtk.NewButton()
	m.Update(ctx, w)
	return w
}

func (m *Button) Update(ctx context.Context, w gtk.Widgetter) {
	m.update(ctx, m, w, &m.Widget, gtk.BaseWidget(w))
}

// LinkButton opens URI when clicked. Without a URI only Clicked runs.
type LinkButton struct {
	Widget
	URI     string                       `gtk:"uri"`
	Child   Model                        `gtk:"child"`
	Clicked func(button *gtk.LinkButton) `gtk:"clicked,signal"`
}

func (m *LinkButton) Type() reflect.Type {
	return reflect.TypeFor[*gtk.LinkButton]()
}

func (m *LinkButton) Create(ctx context.Context) gtk.Widgetter {
	w := gtk.NewLinkButton(m.URI)
	w.ConnectActivateLink(func() bool {
		// handled, unless there is somewhere to go
		return w.URI() == "" || w.URI() == "#" || w.URI() == "#!"
	})
	m.Update(ctx, w)
	return w
}

func (m *LinkButton) Update(ctx context.Context, w gtk.Widgetter) {
	m.update(ctx, m, w, &m.Widget, gtk.BaseWidget(w))
}
