package state

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/getseabird/materia/internal/dom"
	"github.com/getseabird/materia/widget"
	"gopkg.in/yaml.v2"
	"k8s.io/utils/ptr"
)

// DefaultPath is where the showcase catalogue lives unless overridden.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "materia", "showcase.yaml"), nil
}

type Config struct {
	Buttons []Entry `yaml:"buttons"`
}

// Entry is one showcased button.
type Entry struct {
	Name         string `yaml:"name"`
	Label        string `yaml:"label,omitempty"`
	widget.Props `yaml:",inline"`
	// Actions become the children of a fab.
	Actions []Entry `yaml:"actions,omitempty"`
	Hidden  *bool   `yaml:"hidden,omitempty"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			var config Config
			config.Defaults()
			return &config, nil
		}
		return nil, err
	}

	config, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return config, nil
}

func ParseConfig(data []byte) (*Config, error) {
	var config Config
	if err := yaml.UnmarshalStrict(data, &config); err != nil {
		return nil, err
	}
	config.Defaults()
	return &config, nil
}

func (c *Config) Defaults() {
	if len(c.Buttons) > 0 {
		return
	}

	c.Buttons = []Entry{
		{Name: "Raised", Label: "Button", Props: widget.Props{Waves: widget.WavesLight}},
		{Name: "Raised with icon", Label: "Upload", Props: widget.Props{Waves: widget.WavesLight, Icon: "cloud"}},
		{Name: "Floating", Props: widget.Props{Floating: true, Large: true, Waves: widget.WavesLight, Icon: "add", ClassName: "red"}},
		{Name: "Flat", Label: "Button", Props: widget.Props{Flat: true, Waves: widget.WavesTeal}},
		{Name: "Large", Label: "Button", Props: widget.Props{Large: true, Waves: widget.WavesLight}},
		{Name: "Disabled", Label: "Button", Props: widget.Props{Disabled: true}},
		{Name: "Tooltip", Label: "Hover me", Props: widget.Props{
			Tooltip:        "I am a tooltip",
			TooltipOptions: &widget.TooltipOptions{Position: widget.TooltipTop, Delay: 50},
		}},
		{Name: "Modal confirm", Label: "Agree", Props: widget.Props{Flat: true, Modal: widget.ModalConfirm, Waves: widget.WavesGreen}},
		{Name: "Fab", Props: widget.Props{Fab: widget.FabVertical, Large: true, Floating: true, Icon: "mode_edit", ClassName: "red"}, Actions: []Entry{
			{Name: "Chart", Props: widget.Props{Floating: true, Icon: "insert_chart", ClassName: "red"}},
			{Name: "Quote", Props: widget.Props{Floating: true, Icon: "format_quote", ClassName: "yellow darken-1"}},
			{Name: "Publish", Props: widget.Props{Floating: true, Icon: "publish", ClassName: "green"}},
			{Name: "Attach", Props: widget.Props{Floating: true, Icon: "attach_file", ClassName: "blue"}},
		}},
		{Name: "Fab click only", Props: widget.Props{Fab: widget.FabHorizontal, FabClickOnly: true, Large: true, Floating: true, Icon: "menu"}, Actions: []Entry{
			{Name: "Search", Props: widget.Props{Floating: true, Icon: "search"}},
			{Name: "Settings", Props: widget.Props{Floating: true, Icon: "settings"}},
		}},
	}
}

func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Visible returns the entries that are not hidden.
func (c *Config) Visible() []Entry {
	var entries []Entry
	for _, e := range c.Buttons {
		if !ptr.Deref(e.Hidden, false) {
			entries = append(entries, e)
		}
	}
	return entries
}

func (c *Config) Find(name string) (Entry, bool) {
	for _, e := range c.Buttons {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

// ButtonProps returns the props of e with its label and actions rendered
// as children. onClick is attached to e and every action.
func (e Entry) ButtonProps(onClick func(name string)) widget.Props {
	props := e.Props
	props.Children = nil
	if onClick != nil {
		name := e.Name
		props.OnClick = func() { onClick(name) }
	}
	if e.Label != "" {
		props.Children = append(props.Children, dom.Text(e.Label))
	}
	for _, action := range e.Actions {
		props.Children = append(props.Children, widget.Render(action.ButtonProps(onClick)))
	}
	return props
}

// YAML encodes e alone, for display.
func (e Entry) YAML() (string, error) {
	data, err := yaml.Marshal(e)
	return string(data), err
}

// ParseEntry decodes a single entry as produced by Entry.YAML.
func ParseEntry(data []byte) (Entry, error) {
	var e Entry
	if err := yaml.UnmarshalStrict(data, &e); err != nil {
		return Entry{}, err
	}
	if e.Name == "" {
		return Entry{}, errors.New("entry has no name")
	}
	return e, nil
}

// Replace swaps the entry called name for e. It reports false when no
// entry of that name exists.
func (c *Config) Replace(name string, e Entry) bool {
	for i := range c.Buttons {
		if c.Buttons[i].Name == name {
			c.Buttons[i] = e
			return true
		}
	}
	return false
}
