package widget

import (
	"errors"
	"fmt"
	"sync"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"golang.org/x/exp/slices"
	"k8s.io/klog/v2"
)

var ErrInvalidProp = errors.New("invalid prop")

// PropError reports a prop value outside its enumerated set.
type PropError struct {
	Prop     string
	Value    string
	Expected []string
	// Suggestion is the closest expected value, if any is close enough.
	Suggestion string
}

func (e *PropError) Error() string {
	msg := fmt.Sprintf("invalid prop `%s` of value `%s` supplied to `Button`, expected one of %q", e.Prop, e.Value, e.Expected)
	if e.Suggestion != "" {
		msg += fmt.Sprintf(", did you mean %q?", e.Suggestion)
	}
	return msg
}

func (e *PropError) Unwrap() error {
	return ErrInvalidProp
}

// Validate checks the enumerated props. Empty values are always valid.
func Validate(p Props) error {
	var errs []error
	for _, err := range check(p) {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

var warned sync.Map

// Warn logs every violation found by Validate. Each distinct message is
// logged once per process.
func Warn(p Props) {
	for _, err := range check(p) {
		msg := err.Error()
		if _, loaded := warned.LoadOrStore(msg, struct{}{}); !loaded {
			klog.Warning(msg)
		}
	}
}

func check(p Props) []*PropError {
	var errs []*PropError
	add := func(err *PropError) {
		if err != nil {
			errs = append(errs, err)
		}
	}

	add(oneOf("node", p.Node, nodes))
	add(oneOf("fab", p.Fab, fabs))
	add(oneOf("modal", p.Modal, modals))
	add(oneOf("waves", p.Waves, wavesColors))
	if p.TooltipOptions != nil {
		add(oneOf("tooltipOptions.position", p.TooltipOptions.Position, tooltipPositions))
		if p.TooltipOptions.Delay < 0 {
			add(&PropError{Prop: "tooltipOptions.delay", Value: fmt.Sprint(p.TooltipOptions.Delay), Expected: []string{">= 0"}})
		}
	}

	return errs
}

func oneOf[T ~string](prop string, value T, allowed []T) *PropError {
	if value == "" || slices.Contains(allowed, value) {
		return nil
	}

	expected := make([]string, len(allowed))
	for i, a := range allowed {
		expected[i] = string(a)
	}

	return &PropError{
		Prop:       prop,
		Value:      string(value),
		Expected:   expected,
		Suggestion: suggest(string(value), expected),
	}
}

func suggest(value string, candidates []string) string {
	var (
		best  string
		score float64
	)
	for _, c := range candidates {
		if s := strutil.Similarity(value, c, metrics.NewLevenshtein()); s > score {
			best, score = c, s
		}
	}
	if score < 0.5 {
		return ""
	}
	return best
}
