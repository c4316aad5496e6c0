// Package widget renders Materialize styled buttons into host-neutral
// element trees.
package widget

import (
	"github.com/getseabird/materia/icon"
	"github.com/getseabird/materia/internal/classnames"
	"github.com/getseabird/materia/internal/dom"
	"github.com/getseabird/materia/internal/idgen"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Node selects the root element of a non-fab button.
type Node string

const (
	NodeButton Node = "button"
	NodeAnchor Node = "a"
	NodeDiv    Node = "div"
	NodeSpan   Node = "span"
)

// Fab turns the button into a fixed action button opening in the given
// direction.
type Fab string

const (
	FabVertical   Fab = "vertical"
	FabHorizontal Fab = "horizontal"
)

type Modal string

const (
	ModalClose   Modal = "close"
	ModalConfirm Modal = "confirm"
)

// Waves is the color of the click ripple.
type Waves string

const (
	WavesLight  Waves = "light"
	WavesRed    Waves = "red"
	WavesYellow Waves = "yellow"
	WavesOrange Waves = "orange"
	WavesPurple Waves = "purple"
	WavesGreen  Waves = "green"
	WavesTeal   Waves = "teal"
)

type TooltipPosition string

const (
	TooltipTop    TooltipPosition = "top"
	TooltipRight  TooltipPosition = "right"
	TooltipBottom TooltipPosition = "bottom"
	TooltipLeft   TooltipPosition = "left"
)

var (
	nodes            = []Node{NodeButton, NodeAnchor, NodeDiv, NodeSpan}
	fabs             = []Fab{FabVertical, FabHorizontal}
	modals           = []Modal{ModalClose, ModalConfirm}
	wavesColors      = []Waves{WavesLight, WavesRed, WavesYellow, WavesOrange, WavesPurple, WavesGreen, WavesTeal}
	tooltipPositions = []TooltipPosition{TooltipTop, TooltipRight, TooltipBottom, TooltipLeft}
)

const (
	ClassFixedActionButton = "fixed-action-btn"
	ClassClickToToggle     = "click-to-toggle"
	AttrTooltip            = "data-tooltip"
)

type TooltipOptions struct {
	// Delay before showing, in milliseconds.
	Delay    int             `yaml:"delay,omitempty"`
	Position TooltipPosition `yaml:"position,omitempty"`
	Tooltip  string          `yaml:"tooltip,omitempty"`
	// HTML interprets Tooltip as markup.
	HTML bool `yaml:"html,omitempty"`
}

// Props configures a Button. A zero Props renders a plain "btn" button.
type Props struct {
	Node      Node   `yaml:"node,omitempty"`
	ClassName string `yaml:"className,omitempty"`
	Disabled  bool   `yaml:"disabled,omitempty"`
	Flat      bool   `yaml:"flat,omitempty"`
	Floating  bool   `yaml:"floating,omitempty"`
	Large     bool   `yaml:"large,omitempty"`
	// Fab renders children as the actions of a fixed action button. OnClick
	// is not wired in that case.
	Fab          Fab    `yaml:"fab,omitempty"`
	FabClickOnly bool   `yaml:"fabClickOnly,omitempty"`
	Icon         string `yaml:"icon,omitempty"`
	Modal        Modal  `yaml:"modal,omitempty"`
	Waves        Waves  `yaml:"waves,omitempty"`
	Tooltip      string `yaml:"tooltip,omitempty"`
	// TooltipOptions non-nil requests tooltip activation even without Tooltip.
	TooltipOptions *TooltipOptions `yaml:"tooltipOptions,omitempty"`
	// Attrs are passed through to the root element. On a fab only "id" is
	// used, on the inner anchor.
	Attrs    map[string]string `yaml:"attrs,omitempty"`
	OnClick  func()            `yaml:"-"`
	Children []dom.Node        `yaml:"-"`
	// Tooltipper overrides the tooltip activator found in the context.
	Tooltipper TooltipActivator `yaml:"-"`
}

// Renderer holds the collaborators used while rendering.
type Renderer struct {
	Icon func(name string) dom.Node
	Key  idgen.Generator
}

var DefaultRenderer = Renderer{
	Icon: func(name string) dom.Node { return icon.Node(name) },
	Key:  idgen.UUID,
}

func Render(p Props) *dom.Element {
	return DefaultRenderer.Render(p)
}

// Classes composes the class set of the interactive element.
func Classes(p Props) *classnames.Set {
	classes := classnames.New().
		Add("btn", true).
		Add("disabled", p.Disabled).
		Add("waves-effect", p.Waves != "")

	if slices.Contains(wavesColors, p.Waves) {
		classes.Add("waves-"+string(p.Waves), true)
	}

	for _, style := range []struct {
		name string
		on   bool
	}{
		{"flat", p.Flat},
		{"floating", p.Floating},
		{"large", p.Large},
	} {
		classes.Add("btn-"+style.name, style.on)
	}

	if p.Modal != "" {
		classes.Add("modal-action", true)
		classes.Add("modal-"+string(p.Modal), true)
	}

	return classes
}

// Render builds the element tree for p. Fab children each get a list item,
// nil children an empty one.
func (r Renderer) Render(p Props) *dom.Element {
	if p.Fab != "" {
		return r.renderFab(p)
	}

	attrs := maps.Clone(p.Attrs)
	if attrs == nil {
		attrs = map[string]string{}
	}
	id := attrs["id"]
	// owned by the component, never taken from pass-through attributes
	for _, key := range []string{"id", "class", "disabled", AttrTooltip} {
		delete(attrs, key)
	}
	if p.Tooltip != "" {
		attrs[AttrTooltip] = p.Tooltip
	}

	var children []dom.Node
	if ic := r.renderIcon(p); ic != nil {
		children = append(children, ic)
	}
	for _, child := range p.Children {
		if child != nil {
			children = append(children, child)
		}
	}

	return &dom.Element{
		Tag:      rootTag(p.Node),
		ID:       id,
		Class:    classnames.Join(Classes(p), p.ClassName),
		Disabled: p.Disabled,
		Attrs:    attrs,
		OnClick:  p.OnClick,
		Children: children,
	}
}

func (r Renderer) renderFab(p Props) *dom.Element {
	toggle := ""
	if p.FabClickOnly {
		toggle = ClassClickToToggle
	}

	anchor := &dom.Element{
		Tag:   dom.TagAnchor,
		ID:    p.Attrs["id"],
		Class: classnames.Join(Classes(p), p.ClassName),
	}
	if ic := r.renderIcon(p); ic != nil {
		anchor.Children = []dom.Node{ic}
	}

	key := r.Key
	if key == nil {
		key = idgen.UUID
	}
	list := &dom.Element{Tag: dom.TagList}
	for _, child := range p.Children {
		item := &dom.Element{Tag: dom.TagItem, Key: key()}
		if child != nil {
			item.Children = []dom.Node{child}
		}
		list.Children = append(list.Children, item)
	}

	container := &dom.Element{
		Tag:      dom.TagDiv,
		Class:    classnames.Join(nil, string(p.Fab), toggle, ClassFixedActionButton),
		Disabled: p.Disabled,
		Children: []dom.Node{anchor, list},
	}
	if p.Tooltip != "" {
		container.Attrs = map[string]string{AttrTooltip: p.Tooltip}
	}

	return container
}

func (r Renderer) renderIcon(p Props) dom.Node {
	if p.Icon == "" {
		return nil
	}
	if r.Icon == nil {
		return icon.Node(p.Icon)
	}
	return r.Icon(p.Icon)
}

// RootTag returns the tag of the element Render returns for p.
func RootTag(p Props) dom.Tag {
	if p.Fab != "" {
		return dom.TagDiv
	}
	return rootTag(p.Node)
}

func rootTag(node Node) dom.Tag {
	if node == "" || !slices.Contains(nodes, node) {
		return dom.TagButton
	}
	return dom.Tag(node)
}
