// Package classnames builds CSS class strings from conditional class sets.
package classnames

import (
	"strings"

	"k8s.io/apimachinery/pkg/util/sets"
)

// Set maps class names to whether they are applied. Names keep the
// position of their first insertion so joined output is stable.
type Set struct {
	order []string
	on    map[string]bool
}

func New() *Set {
	return &Set{on: map[string]bool{}}
}

// Add sets name to on. Adding an existing name overwrites its value.
func (s *Set) Add(name string, on bool) *Set {
	if name == "" {
		return s
	}
	if _, ok := s.on[name]; !ok {
		s.order = append(s.order, name)
	}
	s.on[name] = on
	return s
}

func (s *Set) Has(name string) bool {
	return s.on[name]
}

// Names returns the enabled class names.
func (s *Set) Names() []string {
	var names []string
	for _, name := range s.order {
		if s.on[name] {
			names = append(names, name)
		}
	}
	return names
}

// Join merges the enabled names of set with extra class strings. Extra
// strings may hold several space separated classes; duplicates are dropped.
func Join(set *Set, extra ...string) string {
	var names []string
	if set != nil {
		names = set.Names()
	}
	seen := sets.New(names...)
	for _, e := range extra {
		for _, name := range strings.Fields(e) {
			if !seen.Has(name) {
				seen.Insert(name)
				names = append(names, name)
			}
		}
	}
	return strings.Join(names, " ")
}
