package reactive

import (
	"context"
	"fmt"
	"reflect"

	"github.com/diamondburned/gotk4/pkg/core/glib"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/fatih/structtag"
	"github.com/getseabird/materia/internal/ctxt"
	"golang.org/x/exp/slices"
)

type Model interface {
	Type() reflect.Type
	Create(ctx context.Context) gtk.Widgetter
	Update(ctx context.Context, widget gtk.Widgetter)
	Component() Component
	Connect(string, any)
}

type Widget struct {
	// margin top end bottom start
	Margin  [4]int
	VExpand bool      `gtk:"vexpand"`
	HExpand bool      `gtk:"hexpand"`
	HAlign  gtk.Align `gtk:"halign"`
	VAlign  gtk.Align `gtk:"valign"`
	Name    string    `gtk:"name"`
	Opacity float64   `gtk:"opacity"`
	// Disabled makes the widget insensitive. Always applied, unlike tagged
	// fields which skip zero values.
	Disabled bool
	// Classes from the previous update that are missing here are removed.
	CSSClasses []string
	Signals    map[string]any
}

func (m *Widget) Type() reflect.Type {
	return nil
}

func (m *Widget) Create(ctx context.Context) gtk.Widgetter {
	return nil
}

func (m *Widget) Update(ctx context.Context, w gtk.Widgetter) {
	m.update(ctx, m, w, nil, nil)

	node := ctxt.MustFrom[*Node](ctx)
	base := gtk.BaseWidget(w)

	w.SetObjectProperty("margin-top", m.Margin[0])
	w.SetObjectProperty("margin-end", m.Margin[1])
	w.SetObjectProperty("margin-bottom", m.Margin[2])
	w.SetObjectProperty("margin-start", m.Margin[3])
	base.SetSensitive(!m.Disabled)

	if node.signalHandlers == nil {
		node.signalHandlers = map[string]glib.SignalHandle{}
	}

	for signal, callback := range m.Signals {
		callback := callback
		if handler, ok := node.signalHandlers[signal]; ok {
			w.HandlerDisconnect(handler)
		}
		if connect := reflect.ValueOf(w).MethodByName("Connect"); connect.IsValid() {
			// pass widget reference to callbacks
			cb := reflect.TypeOf(callback)
			var in []reflect.Type
			for i := 1; i < cb.NumIn(); i++ {
				in = append(in, cb.In(i))
			}
			var out []reflect.Type
			for i := 0; i < cb.NumOut(); i++ {
				out = append(out, cb.Out(i))
			}
			ret := connect.Call(
				[]reflect.Value{reflect.ValueOf(signal),
					reflect.MakeFunc(reflect.FuncOf(in, out, false), func(args []reflect.Value) (results []reflect.Value) {
						return reflect.ValueOf(callback).Call(append([]reflect.Value{reflect.ValueOf(node.widget)}, args...))
					}),
				})
			node.signalHandlers[signal] = ret[0].Interface().(glib.SignalHandle)
		}
	}

	for _, class := range node.cssClasses {
		if !slices.Contains(m.CSSClasses, class) {
			base.RemoveCSSClass(class)
		}
	}
	for _, class := range m.CSSClasses {
		base.AddCSSClass(class)
	}
	node.cssClasses = slices.Clone(m.CSSClasses)
}

func (m *Widget) Component() Component {
	return nil
}

func (m *Widget) Connect(s string, h any) {
	if m.Signals == nil {
		m.Signals = map[string]any{}
	}
	m.Signals[s] = h
}

func createChild(ctx context.Context, model Model) gtk.Widgetter {
	node := ctxt.MustFrom[*Node](ctx)
	return node.CreateChild(ctx, model)
}

// updateChild applies model to an existing widget. A component bound to the
// widget survives when model carries a component of the same type that it
// can reconcile with.
func updateChild(widget gtk.Widgetter, model Model) {
	node := *glib.Bounded[*Node](widget)
	if next := model.Component(); next != nil && node.component != nil {
		if r, ok := node.component.(Reconciler); ok && reflect.TypeOf(next) == reflect.TypeOf(node.component) {
			r.Reconcile(next)
			(&ComponentModel{component: node.component}).Update(node.ctx, widget)
			return
		}
	}
	model.Update(node.ctx, widget)
}

func removeChild(widget gtk.Widgetter) {
	if node := glib.Bounded[*Node](widget); node != nil && (*node).parent != nil {
		(*node).parent.RemoveChild(widget)
	}
}

// sameType reports whether widget can be updated with model instead of
// being replaced.
func sameType(model Model, widget gtk.Widgetter) bool {
	if widget == nil {
		return false
	}
	if c := model.Component(); c != nil {
		node := glib.Bounded[*Node](widget)
		if node == nil || reflect.TypeOf((*node).component) != reflect.TypeOf(c) {
			return false
		}
		if r, ok := (*node).component.(Reconciler); ok {
			return r.Compatible(c)
		}
		return true
	}
	return model.Type() == reflect.TypeOf(widget)
}

func (m *Widget) update(ctx context.Context, model Model, w gtk.Widgetter, parent Model, parentW gtk.Widgetter) {
	if parent != nil {
		defer parent.Update(ctx, parentW)
	}

	val := reflect.Indirect(reflect.ValueOf(model))
	typ := val.Type()
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		tags, err := structtag.Parse(string(field.Tag))
		if err != nil {
			panic(err)
		}

		tag, err := tags.Get("gtk")
		if err != nil {
			continue
		}

		if val.Field(i).IsZero() {
			continue
		}

		if slices.Contains(tag.Options, "ref") {
			val.Field(i).Elem().FieldByName("Ref").Set(reflect.ValueOf(w))
			continue
		}

		if slices.Contains(tag.Options, "signal") {
			model.Connect(tag.Name, val.Field(i).Interface())
			continue
		}

		if slices.Contains(tag.Options, "parent") {
			continue
		}

		if val.Field(i).Type() == reflect.TypeFor[Model]() {
			model := val.Field(i).Interface().(Model)
			var current gtk.Widgetter
			if val := reflect.ValueOf(w).MethodByName(field.Name).Call([]reflect.Value{}); val[0].IsValid() && !val[0].IsNil() {
				current = val[0].Interface().(gtk.Widgetter)
			}
			if sameType(model, current) {
				updateChild(current, model)
			} else {
				if current != nil {
					removeChild(current)
				}
				val := reflect.ValueOf(createChild(ctx, model))
				reflect.ValueOf(w).MethodByName(fmt.Sprintf("Set%v", field.Name)).Call([]reflect.Value{val})
			}
		} else {
			val := val.Field(i).Interface()
			w.SetObjectProperty(tag.Name, val)
		}
	}
}

// reconcile makes the children of parent match models. Widgets are reused
// in place while their type matches; from the first mismatch on, the rest
// is created again.
func reconcile(ctx context.Context, parent gtk.Widgetter, models []Model, add func(gtk.Widgetter), remove func(gtk.Widgetter)) {
	next := gtk.BaseWidget(parent).FirstChild()
	for _, child := range models {
		if next != nil && !sameType(child, next) {
			truncate(next, remove)
			next = nil
		}
		if next == nil {
			add(createChild(ctx, child))
			continue
		}
		updateChild(next, child)
		next = gtk.BaseWidget(next).NextSibling()
	}
	truncate(next, remove)
}

// truncate removes from and all of its following siblings.
func truncate(from gtk.Widgetter, remove func(gtk.Widgetter)) {
	for from != nil {
		sibling := gtk.BaseWidget(from).NextSibling()
		removeChild(from)
		remove(from)
		from = sibling
	}
}
