package reactive

import (
	"context"
	"reflect"

	"github.com/diamondburned/gotk4-adwaita/pkg/adw"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/getseabird/materia/internal/ctxt"
)

type AdwToastOverlay struct {
	*Ref[*adw.ToastOverlay] `gtk:",ref"`
	Widget
	Child Model
}

func (m *AdwToastOverlay) Type() reflect.Type {
	return reflect.TypeFor[*adw.ToastOverlay]()
}

func (model *AdwToastOverlay) Create(ctx context.Context) gtk.Widgetter {
	w := adw.NewToastOverlay()
	model.Update(ctx, w)
	return w
}

func (model *AdwToastOverlay) Update(ctx context.Context, wi gtk.Widgetter) {
	w := wi.(*adw.ToastOverlay)
	model.update(ctx, model, w, &model.Widget, gtk.BaseWidget(w))
	setChild(ctxt.With(ctx, w), model.Child, w.Child, w.SetChild)
}

// AddToast shows a toast on the nearest overlay above ctx.
func AddToast(ctx context.Context, toast *adw.Toast) {
	if to, ok := ctxt.From[*adw.ToastOverlay](ctx); ok {
		to.AddToast(toast)
	}
}
