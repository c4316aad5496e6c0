package widget

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/klog/v2"
)

func TestValidateAcceptsEnumeratedValues(t *testing.T) {
	assert.NoError(t, Validate(Props{}))
	assert.NoError(t, Validate(Props{
		Node:           NodeSpan,
		Fab:            FabHorizontal,
		Modal:          ModalClose,
		Waves:          WavesPurple,
		TooltipOptions: &TooltipOptions{Position: TooltipLeft, Delay: 50},
	}))
}

func TestValidateRejectsUnknownValues(t *testing.T) {
	err := Validate(Props{Waves: "tea", Fab: "diagonal", Modal: "open"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidProp))

	errs := check(Props{Waves: "tea", Fab: "diagonal", Modal: "open"})
	require.Len(t, errs, 3)

	byProp := map[string]*PropError{}
	for _, e := range errs {
		byProp[e.Prop] = e
	}
	assert.Equal(t, "teal", byProp["waves"].Suggestion)
	assert.Equal(t, []string{"vertical", "horizontal"}, byProp["fab"].Expected)
	assert.Equal(t, "open", byProp["modal"].Value)
}

func TestPropErrorMessage(t *testing.T) {
	var perr *PropError
	require.True(t, errors.As(Validate(Props{Fab: "verticle"}), &perr))
	assert.Equal(t, `invalid prop `+"`fab`"+` of value `+"`verticle`"+` supplied to `+"`Button`"+`, expected one of ["vertical" "horizontal"], did you mean "vertical"?`, perr.Error())
}

func TestSuggestNeedsSimilarity(t *testing.T) {
	assert.Equal(t, "", suggest("xyz", []string{"red", "teal"}))
	assert.Equal(t, "confirm", suggest("confirn", []string{"close", "confirm"}))
}

func TestValidateTooltipOptions(t *testing.T) {
	errs := check(Props{TooltipOptions: &TooltipOptions{Position: "center", Delay: -1}})
	require.Len(t, errs, 2)
	assert.Equal(t, "tooltipOptions.position", errs[0].Prop)
	assert.Equal(t, "tooltipOptions.delay", errs[1].Prop)
}

func TestValidateNode(t *testing.T) {
	errs := check(Props{Node: "buton"})
	require.Len(t, errs, 1)
	assert.Equal(t, "button", errs[0].Suggestion)
}

func TestWarnOnce(t *testing.T) {
	var buf bytes.Buffer
	klog.LogToStderr(false)
	klog.SetOutput(&buf)
	t.Cleanup(func() {
		klog.SetOutput(os.Stderr)
		klog.LogToStderr(true)
	})

	p := Props{Waves: "turquoise-warn-once"}
	Warn(p)
	klog.Flush()
	logged := strings.Count(buf.String(), "turquoise-warn-once")
	require.Positive(t, logged)

	Warn(p)
	klog.Flush()
	assert.Equal(t, logged, strings.Count(buf.String(), "turquoise-warn-once"))
}
