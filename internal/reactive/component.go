package reactive

import (
	"context"
	"reflect"

	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/getseabird/materia/internal/ctxt"
)

type Hook int

const (
	// HookCreate runs once, after the component's widget was created.
	HookCreate Hook = iota
	HookUpdate
)

func CreateComponent(component Component) Model {
	return &ComponentModel{component: component}
}

type Component interface {
	Init(ctx context.Context)
	Update(ctx context.Context, message any) bool
	View(ctx context.Context) Model
	On(hook Hook, widget gtk.Widgetter)
}

// Reconciler is implemented by components that keep their instance when a
// parent renders them again. Reconcile receives the freshly built component
// and copies its props. Compatible reports false when next renders a
// different widget type, in which case the component is replaced.
type Reconciler interface {
	Compatible(next Component) bool
	Reconcile(next Component)
}

type BaseComponent[T any] struct {
}

func (c *BaseComponent[T]) Init(ctx context.Context) {}
func (c *BaseComponent[T]) Update(ctx context.Context, message any) bool {
	return false
}
func (c *BaseComponent[T]) On(hook Hook, widget gtk.Widgetter) {}

func (c *BaseComponent[T]) SetState(ctx context.Context, updater func(component T)) {
	node := ctxt.MustFrom[*Node](ctx)
	updater(node.component.(T))
	(&ComponentModel{component: node.component}).Update(ctx, node.widget)
}

func (m *BaseComponent[T]) Broadcast(ctx context.Context, message any) {
	node := ctxt.MustFrom[*Node](ctx)
	node.ch <- message
}

type ComponentModel struct {
	Widget
	component Component
}

func (m *ComponentModel) Type() reflect.Type {
	return reflect.TypeFor[Component]()
}

func (m *ComponentModel) Create(ctx context.Context) gtk.Widgetter {
	m.component.Init(ctx)
	w := m.component.View(ctx).Create(ctx)
	m.component.On(HookCreate, w)
	return w
}

func (m *ComponentModel) Update(ctx context.Context, w gtk.Widgetter) {
	m.component.View(ctx).Update(ctx, w)
	m.component.On(HookUpdate, w)
}

func (m *ComponentModel) Component() Component {
	return m.component
}
