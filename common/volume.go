package common

import (
	"math"
	"sync/atomic"
)

// Volume is the shared "current volume" cell. Audio callbacks and socket
// handlers overwrite it; the render tick reads it once per frame. The zero
// value holds 0.
type Volume struct {
	bits atomic.Uint64
}

// Store overwrites the current value. Last write wins.
func (v *Volume) Store(level float64) {
	v.bits.Store(math.Float64bits(level))
}

// Load returns the most recently stored value.
func (v *Volume) Load() float64 {
	return math.Float64frombits(v.bits.Load())
}

// Level returns the current value so a Volume can feed the scene directly.
func (v *Volume) Level() float64 {
	return v.Load()
}
