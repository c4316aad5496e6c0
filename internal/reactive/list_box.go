package reactive

import (
	"context"
	"reflect"

	"github.com/diamondburned/gotk4/pkg/gtk/v4"
)

type ListBox struct {
	Widget
	RowSelected   func(listBox *gtk.ListBox, listBoxRow *gtk.ListBoxRow) `gtk:"row-selected,signal"`
	SelectionMode gtk.SelectionMode                                      `gtk:"selection-mode"`
	// Children should be ListBoxRow models; GTK wraps anything else in a
	// row, which breaks reconciliation.
	Children []Model
}

func (m *ListBox) Type() reflect.Type {
	return reflect.TypeFor[*gtk.ListBox]()
}

func (m *ListBox) Create(ctx context.Context) gtk.Widgetter {
	w := gtk.NewListBox()
	m.Update(ctx, w)
	return w
}

func (m *ListBox) Update(ctx context.Context, w gtk.Widgetter) {
	m.update(ctx, m, w, &m.Widget, gtk.BaseWidget(w))
	box := w.(*gtk.ListBox)
	reconcile(ctx, box, m.Children, box.Append, box.Remove)
}

type ListBoxRow struct {
	Widget
	Activatable bool  `gtk:"activatable"`
	Selectable  bool  `gtk:"selectable"`
	Child       Model `gtk:"child"`
}

func (m *ListBoxRow) Type() reflect.Type {
	return reflect.TypeFor[*gtk.ListBoxRow]()
}

func (model *ListBoxRow) Create(ctx context.Context) gtk.Widgetter {
	w := gtk.NewListBoxRow()
	model.Update(ctx, w)
	return w
}

func (model *ListBoxRow) Update(ctx context.Context, w gtk.Widgetter) {
	model.update(ctx, model, w, &model.Widget, gtk.BaseWidget(w))
}
