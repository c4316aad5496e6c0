package component

import (
	"context"
	"fmt"
	"time"

	"github.com/diamondburned/gotk4-adwaita/pkg/adw"
	"github.com/diamondburned/gotk4-sourceview/pkg/gtksource/v5"
	"github.com/diamondburned/gotk4/pkg/core/glib"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/getseabird/materia/internal/dom"
	"github.com/getseabird/materia/internal/pubsub"
	r "github.com/getseabird/materia/internal/reactive"
	"github.com/getseabird/materia/internal/style"
	"github.com/getseabird/materia/state"
	"github.com/getseabird/materia/widget"
	"github.com/zmwangx/debounce"
	"golang.org/x/exp/slices"
	"k8s.io/klog/v2"
)

// Showcase lists the configured buttons next to an editor for the selected
// one.
type Showcase struct {
	r.BaseComponent[*Showcase]
	*adw.Application
	Path   string
	Config pubsub.Property[*state.Config]

	config   *state.Config
	search   string
	selected string
	// baseline is the selected entry as it was when selected.
	baseline  state.Entry
	parseErr  error
	toast     *r.Ref[*adw.ToastOverlay]
	source    *gtksource.Buffer
	html      *gtksource.Buffer
	diff      *gtksource.Buffer
	applyEdit func()
}

func (c *Showcase) Init(ctx context.Context) {
	c.toast = &r.Ref[*adw.ToastOverlay]{}
	c.config = c.Config.Value()

	languages := gtksource.LanguageManagerGetDefault()
	c.source = gtksource.NewBufferWithLanguage(languages.Language("yaml"))
	c.html = gtksource.NewBufferWithLanguage(languages.Language("html"))
	c.diff = gtksource.NewBufferWithLanguage(languages.Language("diff"))
	style.Load()
	style.FollowScheme(c.source, c.html, c.diff)

	c.applyEdit, _ = debounce.Debounce(func() {
		glib.IdleAdd(func() {
			c.edit(ctx)
		})
	}, 500*time.Millisecond, debounce.WithMaxWait(2*time.Second))
	c.source.ConnectChanged(c.applyEdit)

	c.Config.Sub(ctx, func(config *state.Config) {
		if config == c.config {
			return
		}
		c.SetState(ctx, func(c *Showcase) {
			c.config = config
		})
	})
}

func (c *Showcase) View(ctx context.Context) r.Model {
	return &r.AdwApplicationWindow{
		ApplicationWindow: r.ApplicationWindow{
			Application: &c.Application.Application,
			Window: r.Window{
				Title:         "Materia",
				DefaultHeight: 640,
				DefaultWidth:  960,
			},
		},
		Content: &r.AdwToastOverlay{
			Ref: c.toast,
			Child: &r.Box{
				Orientation: gtk.OrientationVertical,
				Children: []r.Model{
					&r.AdwHeaderBar{
						TitleWidget: &r.SearchEntry{
							PlaceholderText: "Search buttons",
							SearchChanged: func(entry *gtk.SearchEntry) {
								c.SetState(ctx, func(c *Showcase) {
									c.search = entry.Text()
								})
							},
						},
						End: []r.Model{
							&r.Button{
								IconName: "document-save-symbolic",
								Clicked: func(*gtk.Button) {
									c.save()
								},
							},
						},
					},
					&r.Paned{
						Widget:         r.Widget{VExpand: true},
						Position:       420,
						ResizeEndChild: true,
						WideHandle:     true,
						StartChild:     c.list(ctx),
						EndChild:       c.editor(),
					},
				},
			},
		},
	}
}

func (c *Showcase) list(ctx context.Context) r.Model {
	return &r.ScrolledWindow{
		Widget:           r.Widget{VExpand: true},
		HScrollbarPolicy: gtk.PolicyNever,
		Child: &r.ListBox{
			Widget:        r.Widget{CSSClasses: []string{"navigation-sidebar"}},
			SelectionMode: gtk.SelectionSingle,
			RowSelected: func(listBox *gtk.ListBox, row *gtk.ListBoxRow) {
				if row == nil {
					return
				}
				c.selectEntry(row.Name())
			},
			Children: r.Map(c.config.Search(c.search), func(entry state.Entry) r.Model {
				return r.CreateComponent(&Row{Entry: entry, Clicked: c.clicked})
			}),
		},
	}
}

func (c *Showcase) editor() r.Model {
	children := []r.Model{
		&r.ScrolledWindow{
			Widget: r.Widget{VExpand: true},
			Child: &r.SourceView{
				Buffer:          c.source,
				Editable:        true,
				ShowLineNumbers: true,
				Monospace:       true,
			},
		},
	}
	if c.parseErr != nil {
		children = append(children, &r.Label{
			Widget: r.Widget{CSSClasses: []string{"error"}, Margin: [4]int{6, 6, 6, 6}, HAlign: gtk.AlignStart},
			Label:  c.parseErr.Error(),
		})
	}
	for _, buf := range []*gtksource.Buffer{c.html, c.diff} {
		children = append(children, &r.ScrolledWindow{
			Widget: r.Widget{VExpand: true},
			Child: &r.SourceView{
				Buffer:    buf,
				Monospace: true,
			},
		})
	}

	return &r.Box{
		Orientation: gtk.OrientationVertical,
		Spacing:     6,
		Children:    children,
	}
}

func (c *Showcase) selectEntry(name string) {
	entry, ok := c.config.Find(name)
	if !ok {
		return
	}
	text, err := entry.YAML()
	if err != nil {
		klog.Errorf("encoding %q: %v", name, err)
		return
	}

	c.selected = name
	c.baseline = entry
	c.source.SetText(text)
	c.html.SetText(pretty(entry))
	c.diff.SetText("")
}

// edit applies the editor contents to the selected entry.
func (c *Showcase) edit(ctx context.Context) {
	if c.selected == "" {
		return
	}

	text := c.source.Text(c.source.StartIter(), c.source.EndIter(), false)
	entry, err := state.ParseEntry([]byte(text))
	if err == nil {
		err = widget.Validate(entry.Props)
	}
	if err != nil {
		c.SetState(ctx, func(c *Showcase) {
			c.parseErr = err
		})
		return
	}

	next := &state.Config{Buttons: slices.Clone(c.config.Buttons)}
	if !next.Replace(c.selected, entry) {
		return
	}
	c.selected = entry.Name

	c.html.SetText(pretty(entry))
	diff, err := dom.Diff(render(c.baseline), render(entry))
	if err != nil {
		klog.Errorf("diffing %q: %v", entry.Name, err)
	}
	c.diff.SetText(diff)

	c.SetState(ctx, func(c *Showcase) {
		c.parseErr = nil
	})
	c.Config.Pub(next)
}

func (c *Showcase) save() {
	if err := c.Config.Value().Save(c.Path); err != nil {
		klog.Errorf("saving %s: %v", c.Path, err)
		c.toast.Ref.AddToast(adw.NewToast(fmt.Sprintf("Saving failed: %v", err)))
		return
	}
	c.toast.Ref.AddToast(adw.NewToast(fmt.Sprintf("Saved to %s", c.Path)))
}

func (c *Showcase) clicked(name string) {
	klog.V(2).Infof("clicked %q", name)
	toast := adw.NewToast(fmt.Sprintf("%s clicked", name))
	toast.SetTimeout(2)
	c.toast.Ref.AddToast(toast)
}

func render(entry state.Entry) dom.Node {
	return widget.Render(entry.ButtonProps(nil))
}

func pretty(entry state.Entry) string {
	out, err := dom.Pretty(render(entry))
	if err != nil {
		klog.Errorf("rendering %q: %v", entry.Name, err)
	}
	return out
}

// Row shows one entry. Rows of different entries are never reused for one
// another, so every button mounts with its own tooltip.
type Row struct {
	r.BaseComponent[*Row]
	Entry   state.Entry
	Clicked func(name string)
}

func (c *Row) View(ctx context.Context) r.Model {
	return &r.ListBoxRow{
		Widget:      r.Widget{Name: c.Entry.Name},
		Activatable: true,
		Selectable:  true,
		Child: &r.Box{
			Widget:      r.Widget{Margin: [4]int{12, 12, 12, 12}},
			Orientation: gtk.OrientationHorizontal,
			Spacing:     12,
			Children: []r.Model{
				&r.Label{
					Widget: r.Widget{HExpand: true, HAlign: gtk.AlignStart, CSSClasses: []string{"materia-showcase-name"}},
					Label:  c.Entry.Name,
				},
				r.CreateComponent(&Button{Props: c.Entry.ButtonProps(c.Clicked)}),
			},
		},
	}
}

func (c *Row) Compatible(next r.Component) bool {
	return c.Entry.Name == next.(*Row).Entry.Name
}

func (c *Row) Reconcile(next r.Component) {
	n := next.(*Row)
	c.Entry = n.Entry
	c.Clicked = n.Clicked
}
