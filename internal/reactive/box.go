package reactive

import (
	"context"
	"reflect"

	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/getseabird/materia/internal/ctxt"
)

type Box struct {
	Widget
	Orientation gtk.Orientation
	Spacing     int `gtk:"spacing"`
	Children    []Model
	// Pressed is called when the box is clicked.
	Pressed func()
}

func (m *Box) Type() reflect.Type {
	return reflect.TypeFor[*gtk.Box]()
}

func (model *Box) Create(ctx context.Context) gtk.Widgetter {
	w := gtk.NewBox(model.Orientation, model.Spacing)

	if model.Pressed != nil {
		node := ctxt.MustFrom[*Node](ctx)
		click := gtk.NewGestureClick()
		click.ConnectReleased(func(nPress int, x, y float64) {
			if node.pressed != nil {
				node.pressed()
			}
		})
		w.AddController(click)
	}

	model.Update(ctx, w)
	return w
}

func (model *Box) Update(ctx context.Context, w gtk.Widgetter) {
	model.update(ctx, model, w, &model.Widget, gtk.BaseWidget(w))

	ctxt.MustFrom[*Node](ctx).pressed = model.Pressed

	box := w.(*gtk.Box)
	box.SetOrientation(model.Orientation)
	reconcile(ctx, box, model.Children, box.Append, box.Remove)
}
