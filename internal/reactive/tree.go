package reactive

import (
	"context"

	"github.com/diamondburned/gotk4/pkg/core/glib"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/getseabird/materia/internal/ctxt"
	"golang.org/x/exp/slices"
)

// NewTree creates the widget for model and starts delivering broadcast
// messages to its components until ctx is done.
func NewTree(ctx context.Context, model Model) gtk.Widgetter {
	root := &Node{
		ch:  make(chan any),
		ctx: ctx,
	}
	root.ctx = ctxt.With[*Node](ctx, root)

	root.component = model.Component()
	root.widget = model.Create(root.ctx)

	glib.Bind[*Node](root.widget, root)

	go func() {
		for {
			select {
			case msg := <-root.ch:
				glib.IdleAdd(func() {
					root.message(msg, true)
				})
			case <-ctx.Done():
				return
			}
		}
	}()

	return root.widget
}

// Node ties a widget to the model state that outlives single renders.
type Node struct {
	ch             chan any
	parent         *Node
	ctx            context.Context
	cancel         context.CancelFunc
	widget         gtk.Widgetter
	component      Component
	children       []*Node
	signalHandlers map[string]glib.SignalHandle
	cssClasses     []string
	// pressed is the click handler of widgets without a clicked signal.
	pressed func()
	// clickOnly stops a fab from opening on hover.
	clickOnly bool
}

func (n *Node) CreateChild(ctx context.Context, model Model) gtk.Widgetter {
	child := &Node{parent: n, ch: n.ch}
	child.ctx, child.cancel = context.WithCancel(ctxt.With[*Node](ctx, child))

	// bound before components see their widget in hooks
	child.component = model.Component()
	child.widget = model.Create(child.ctx)
	glib.Bind[*Node](child.widget, child)
	n.children = append(n.children, child)

	return child.widget
}

// RemoveChild detaches the node bound to widget and cancels its context,
// which unmounts the components below it.
func (n *Node) RemoveChild(widget gtk.Widgetter) {
	node := *glib.Bounded[*Node](widget)
	node.cancel()
	if p := node.parent; p != nil {
		p.children = slices.DeleteFunc(p.children, func(c *Node) bool {
			return c == node
		})
	}
}

func (n *Node) message(msg any, rerender bool) {
	if n.component != nil {
		if n.component.Update(n.ctx, msg) && rerender {
			rerender = false
			(&ComponentModel{component: n.component}).Update(n.ctx, n.widget)
		}
	}
	for _, c := range n.children {
		c.message(msg, rerender)
	}
}
