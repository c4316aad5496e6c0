package component

import (
	"context"

	"github.com/diamondburned/gotk4/pkg/core/glib"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/getseabird/materia/internal/ctxt"
	r "github.com/getseabird/materia/internal/reactive"
	"github.com/getseabird/materia/widget"
	"k8s.io/klog/v2"
)

// Button renders widget.Props as GTK widgets. The tooltip is activated once,
// when the button is first shown, and released when it is removed.
type Button struct {
	r.BaseComponent[*Button]
	widget.Props
	lifecycle widget.Lifecycle
	activator widget.TooltipActivator
}

func (c *Button) Init(ctx context.Context) {
	c.activator, _ = ctxt.From[widget.TooltipActivator](ctx)

	if done := ctx.Done(); done != nil {
		go func() {
			<-done
			glib.IdleAdd(c.lifecycle.Unmount)
		}()
	}
}

func (c *Button) View(ctx context.Context) r.Model {
	widget.Warn(c.Props)
	return r.FromDOM(widget.Render(c.Props))
}

func (c *Button) On(hook r.Hook, w gtk.Widgetter) {
	switch hook {
	case r.HookCreate:
		if err := c.lifecycle.Mount(w, c.Props, c.activator); err != nil {
			klog.Warningf("button tooltip: %v", err)
		}
	}
}

func (c *Button) Compatible(next r.Component) bool {
	n := next.(*Button)
	return (c.Fab != "") == (n.Fab != "") && widget.RootTag(c.Props) == widget.RootTag(n.Props)
}

func (c *Button) Reconcile(next r.Component) {
	c.Props = next.(*Button).Props
}
