package reactive

import (
	"context"
	"reflect"

	"github.com/diamondburned/gotk4-adwaita/pkg/adw"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
)

type AdwHeaderBar struct {
	Widget
	TitleWidget Model
	// End is packed once, at creation.
	End []Model
}

func (m *AdwHeaderBar) Type() reflect.Type {
	return reflect.TypeFor[*adw.HeaderBar]()
}

func (model *AdwHeaderBar) Create(ctx context.Context) gtk.Widgetter {
	w := adw.NewHeaderBar()
	for _, end := range model.End {
		w.PackEnd(createChild(ctx, end))
	}
	model.Update(ctx, w)
	return w
}

func (model *AdwHeaderBar) Update(ctx context.Context, wi gtk.Widgetter) {
	w := wi.(*adw.HeaderBar)
	model.update(ctx, model, w, &model.Widget, gtk.BaseWidget(w))
	setChild(ctx, model.TitleWidget, w.TitleWidget, w.SetTitleWidget)
}
