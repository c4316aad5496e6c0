package state

import (
	"testing"

	"github.com/getseabird/materia/widget"
	"github.com/stretchr/testify/assert"
	"k8s.io/utils/ptr"
)

func TestNewFilter(t *testing.T) {
	filter := NewFilter("Fab  icon:menu click")
	assert.Equal(t, []string{"fab", "click"}, filter.Name)
	assert.Equal(t, []string{"menu"}, filter.Icon)
}

func TestFilterTest(t *testing.T) {
	fab := Entry{Name: "Fab click only", Props: widget.Props{Icon: "menu"}}

	assert.True(t, NewFilter("").Test(fab))
	assert.True(t, NewFilter("click").Test(fab))
	assert.True(t, NewFilter("FAB").Test(fab))
	assert.True(t, NewFilter("icon:men").Test(fab))
	assert.False(t, NewFilter("icon:add").Test(fab))
	assert.False(t, NewFilter("raised").Test(fab))

	// one substitution
	assert.True(t, NewFilter("clack").Test(fab))
	assert.False(t, NewFilter(`"clack"`).Test(fab))
}

func TestConfigSearch(t *testing.T) {
	config := Config{Buttons: []Entry{
		{Name: "Raised"},
		{Name: "Flat"},
		{Name: "Flat hidden", Hidden: ptr.To(true)},
	}}

	assert.Len(t, config.Search(""), 2)

	found := config.Search("flat")
	if assert.Len(t, found, 1) {
		assert.Equal(t, "Flat", found[0].Name)
	}
}
