package reactive

import (
	"context"
	"reflect"

	"github.com/diamondburned/gotk4-sourceview/pkg/gtksource/v5"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
)

type SourceView struct {
	Widget
	// Buffer text is edited directly, not through the model.
	Buffer          *gtksource.Buffer
	Editable        bool         `gtk:"editable"`
	ShowLineNumbers bool         `gtk:"show-line-numbers"`
	Monospace       bool         `gtk:"monospace"`
	WrapMode        gtk.WrapMode `gtk:"wrap-mode"`
}

func (m *SourceView) Type() reflect.Type {
	return reflect.TypeFor[*gtksource.View]()
}

func (m *SourceView) Create(ctx context.Context) gtk.Widgetter {
	w := gtksource.NewViewWithBuffer(m.Buffer)
	m.Update(ctx, w)
	return w
}

func (m *SourceView) Update(ctx context.Context, wi gtk.Widgetter) {
	w := wi.(*gtksource.View)
	m.update(ctx, m, w, &m.Widget, gtk.BaseWidget(w))
	// no-op while the buffer is unchanged
	w.SetBuffer(&m.Buffer.TextBuffer)
	// zero values are skipped by update
	w.SetEditable(m.Editable)
}
