package classnames

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoinKeepsInsertionOrder(t *testing.T) {
	set := New().
		Add("btn", true).
		Add("disabled", false).
		Add("waves-effect", true).
		Add("btn-flat", true)

	assert.Equal(t, "btn waves-effect btn-flat", Join(set))
}

func TestAddOverwrites(t *testing.T) {
	set := New().Add("btn", true).Add("large", true).Add("btn", false)

	assert.False(t, set.Has("btn"))
	assert.Equal(t, []string{"large"}, set.Names())

	set.Add("btn", true)
	assert.Equal(t, "btn large", Join(set), "re-enabled class keeps its first position")
}

func TestJoinExtra(t *testing.T) {
	set := New().Add("btn", true)

	assert.Equal(t, "btn red lighten-2", Join(set, "red  lighten-2"))
	assert.Equal(t, "btn", Join(set, "", "btn"))
	assert.Equal(t, "a b", Join(nil, "a", "b"))
}

func TestEmptyNameIgnored(t *testing.T) {
	set := New().Add("", true)
	assert.Empty(t, set.Names())
	assert.Equal(t, "", Join(set))
}
