package reactive

import (
	"context"
	"reflect"

	"github.com/diamondburned/gotk4-adwaita/pkg/adw"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/getseabird/materia/internal/ctxt"
)

type Window struct {
	Widget
	Title         string `gtk:"title"`
	IconName      string `gtk:"icon-name"`
	Child         Model
	DefaultHeight int `gtk:"default-height"`
	DefaultWidth  int `gtk:"default-width"`
}

func (m *Window) Type() reflect.Type {
	return reflect.TypeFor[*gtk.Window]()
}

func (model *Window) Create(ctx context.Context) gtk.Widgetter {
	w := gtk.NewWindow()
	model.Update(ctx, w)
	return w
}

func (model *Window) Update(ctx context.Context, wi gtk.Widgetter) {
	w := wi.(*gtk.Window)
	model.update(ctx, model, w, &model.Widget, gtk.BaseWidget(w))
	setChild(ctxt.With(ctx, w), model.Child, w.Child, w.SetChild)
}

type ApplicationWindow struct {
	Window      `gtk:",parent"`
	Application *gtk.Application
}

func (m *ApplicationWindow) Type() reflect.Type {
	return reflect.TypeFor[*gtk.ApplicationWindow]()
}

func (m *ApplicationWindow) Create(ctx context.Context) gtk.Widgetter {
	w := gtk.NewApplicationWindow(m.Application)
	m.Update(ctx, w)
	return w
}

func (m *ApplicationWindow) Update(ctx context.Context, w gtk.Widgetter) {
	m.update(ctx, m, w, &m.Window, &w.(*gtk.ApplicationWindow).Window)
}

type AdwApplicationWindow struct {
	ApplicationWindow `gtk:",parent"`
	Content           Model
}

func (m *AdwApplicationWindow) Type() reflect.Type {
	return reflect.TypeFor[*adw.ApplicationWindow]()
}

func (m *AdwApplicationWindow) Create(ctx context.Context) gtk.Widgetter {
	w := adw.NewApplicationWindow(m.Application)
	m.Update(ctx, w)
	return w
}

func (m *AdwApplicationWindow) Update(ctx context.Context, wi gtk.Widgetter) {
	w := wi.(*adw.ApplicationWindow)
	m.update(ctx, m, w, &m.ApplicationWindow, &w.ApplicationWindow)
	setChild(ctxt.With(ctx, &w.ApplicationWindow.Window), m.Content, w.Content, w.SetContent)
}

// setChild updates the single child slot of a container, replacing the
// widget when the model type changed.
func setChild(ctx context.Context, model Model, get func() gtk.Widgetter, set func(gtk.Widgetter)) {
	if model == nil {
		return
	}
	if child := get(); sameType(model, child) {
		updateChild(child, model)
	} else {
		if child != nil {
			removeChild(child)
		}
		set(createChild(ctx, model))
	}
}
