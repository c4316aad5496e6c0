// Package idgen generates unique identifiers used as list keys.
package idgen

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator returns a fresh identifier on every call.
type Generator func() string

// UUID is the default generator.
func UUID() string {
	return uuid.NewString()
}

// Sequence returns a generator producing prefix-1, prefix-2, ...
func Sequence(prefix string) Generator {
	var n atomic.Uint64
	return func() string {
		return fmt.Sprintf("%s-%d", prefix, n.Add(1))
	}
}
