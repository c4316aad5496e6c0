// Package tooltip shows Materialize style tooltips as popovers anchored to
// the hovered widget.
package tooltip

import (
	"fmt"
	"time"

	"github.com/diamondburned/gotk4/pkg/core/glib"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/getseabird/materia/widget"
	"github.com/go-logr/logr"
)

const DefaultDelay = 350 * time.Millisecond

var _ widget.TooltipActivator = (*Activator)(nil)

type Activator struct {
	log logr.Logger
}

func New(log logr.Logger) *Activator {
	return &Activator{log: log}
}

// ActivateTooltip attaches a hover controller to host, which must be a GTK
// widget. The tooltip text is fixed at activation.
func (a *Activator) ActivateTooltip(host any, opts widget.TooltipOptions) (func(), error) {
	w, ok := host.(gtk.Widgetter)
	if !ok {
		return nil, fmt.Errorf("tooltip host %T is not a widget", host)
	}
	base := gtk.BaseWidget(w)

	label := gtk.NewLabel("")
	if opts.HTML {
		label.SetMarkup(opts.Tooltip)
	} else {
		label.SetText(opts.Tooltip)
	}

	popover := gtk.NewPopover()
	popover.SetChild(label)
	popover.SetAutohide(false)
	popover.SetHasArrow(false)
	popover.SetCanTarget(false)
	popover.SetPosition(position(opts.Position))
	popover.AddCSSClass("material-tooltip")
	popover.SetParent(w)

	delay := DefaultDelay
	if opts.Delay > 0 {
		delay = time.Duration(opts.Delay) * time.Millisecond
	}

	var pending glib.SourceHandle
	cancel := func() {
		if pending != 0 {
			glib.SourceRemove(pending)
			pending = 0
		}
	}

	motion := gtk.NewEventControllerMotion()
	motion.ConnectEnter(func(x, y float64) {
		cancel()
		pending = glib.TimeoutAdd(uint(delay.Milliseconds()), func() bool {
			pending = 0
			popover.Popup()
			return false
		})
	})
	motion.ConnectLeave(func() {
		cancel()
		popover.Popdown()
	})
	base.AddController(motion)

	a.log.V(4).Info("tooltip activated", "widget", base.Name(), "text", opts.Tooltip, "delay", delay)

	return func() {
		cancel()
		base.RemoveController(motion)
		popover.Unparent()
		a.log.V(4).Info("tooltip released", "widget", base.Name())
	}, nil
}

func position(p widget.TooltipPosition) gtk.PositionType {
	switch p {
	case widget.TooltipTop:
		return gtk.PosTop
	case widget.TooltipRight:
		return gtk.PosRight
	case widget.TooltipLeft:
		return gtk.PosLeft
	default:
		return gtk.PosBottom
	}
}
