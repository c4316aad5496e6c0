package reactive

import (
	"context"
	"reflect"

	"github.com/diamondburned/gotk4/pkg/core/glib"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/getseabird/materia/internal/ctxt"
)

// Fab is a trigger button whose actions slide out while it is hovered, or on
// click when ClickOnly is set. Vertical fabs open upwards, horizontal ones to
// the left of the trigger.
type Fab struct {
	Widget
	Orientation gtk.Orientation
	ClickOnly   bool
	Trigger     Model
	Actions     []Model
}

func (m *Fab) Type() reflect.Type {
	return reflect.TypeFor[*gtk.Grid]()
}

func (m *Fab) Create(ctx context.Context) gtk.Widgetter {
	node := ctxt.MustFrom[*Node](ctx)

	w := gtk.NewGrid()
	revealer := gtk.NewRevealer()
	revealer.SetChild(gtk.NewBox(m.Orientation, 8))
	w.Attach(revealer, 0, 0, 1, 1)

	motion := gtk.NewEventControllerMotion()
	motion.ConnectEnter(func(x, y float64) {
		if !node.clickOnly {
			revealer.SetRevealChild(true)
		}
	})
	motion.ConnectLeave(func() {
		if !node.clickOnly {
			revealer.SetRevealChild(false)
		}
	})
	w.AddController(motion)

	m.Update(ctx, w)
	return w
}

func (m *Fab) Update(ctx context.Context, wi gtk.Widgetter) {
	w := wi.(*gtk.Grid)
	m.update(ctx, m, w, &m.Widget, gtk.BaseWidget(w))

	node := ctxt.MustFrom[*Node](ctx)
	node.clickOnly = m.ClickOnly

	revealer := gtk.BaseWidget(w).FirstChild().(*gtk.Revealer)
	if m.Orientation == gtk.OrientationHorizontal {
		revealer.SetTransitionType(gtk.RevealerTransitionTypeSlideLeft)
	} else {
		revealer.SetTransitionType(gtk.RevealerTransitionTypeSlideUp)
	}

	actions := revealer.Child().(*gtk.Box)
	actions.SetOrientation(m.Orientation)
	reconcile(ctx, actions, m.Actions, actions.Append, actions.Remove)

	m.updateTrigger(ctx, node, w, revealer)
}

func (m *Fab) updateTrigger(ctx context.Context, node *Node, w *gtk.Grid, revealer *gtk.Revealer) {
	column, row := 0, 1
	if m.Orientation == gtk.OrientationHorizontal {
		column, row = 1, 0
	}

	trigger := gtk.BaseWidget(revealer).NextSibling()
	switch {
	case m.Trigger == nil:
		return
	case sameType(m.Trigger, trigger):
		updateChild(trigger, m.Trigger)
	default:
		if trigger != nil {
			removeChild(trigger)
			w.Remove(trigger)
		}
		trigger = createChild(ctx, m.Trigger)
		if button, ok := trigger.(interface {
			ConnectClicked(func()) glib.SignalHandle
		}); ok {
			button.ConnectClicked(func() {
				if node.clickOnly {
					revealer.SetRevealChild(!revealer.RevealChild())
				}
			})
		}
		w.Attach(trigger, column, row, 1, 1)
		return
	}

	if c, r, _, _ := w.QueryChild(trigger); c != column || r != row {
		w.Remove(trigger)
		w.Attach(trigger, column, row, 1, 1)
	}
}
