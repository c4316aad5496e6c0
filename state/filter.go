package state

import (
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// Filter matches entries against a search text. Terms prefixed with "icon:"
// match the icon name, all other terms match the entry name.
type Filter struct {
	Name []string
	Icon []string
}

func NewFilter(text string) Filter {
	var filter Filter
	for _, term := range strings.Fields(strings.ToLower(text)) {
		if strings.HasPrefix(term, "icon:") {
			filter.Icon = append(filter.Icon, strings.TrimPrefix(term, "icon:"))
		} else {
			filter.Name = append(filter.Name, term)
		}
	}
	return filter
}

func (f Filter) Test(e Entry) bool {
	for _, term := range f.Icon {
		if !strings.Contains(e.Icon, term) {
			return false
		}
	}

	name := strings.ToLower(e.Name)
	for _, term := range f.Name {
		trimmed := strings.Trim(term, "\"")
		if strings.Contains(name, trimmed) {
			continue
		}
		// quoted terms match exactly
		if term != trimmed || !similar(name, term) {
			return false
		}
	}

	return true
}

func similar(name, term string) bool {
	for _, word := range strings.Fields(name) {
		if strutil.Similarity(word, term, metrics.NewHamming()) > 0.5 {
			return true
		}
	}
	return false
}

// Search returns the visible entries matching text.
func (c *Config) Search(text string) []Entry {
	filter := NewFilter(text)
	var entries []Entry
	for _, e := range c.Visible() {
		if filter.Test(e) {
			entries = append(entries, e)
		}
	}
	return entries
}
