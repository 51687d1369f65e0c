package staticcell

import (
	"sync/atomic"

	"github.com/llxisdsh/staticcell/internal/opt"
)

// ConstCell is process-wide storage whose value exists from program start
// and is taken at runtime.
//
// The zero value holds the zero T, so a zero-filled buffer declared as
//
//	var dma staticcell.ConstCell[[4096]byte]
//
// lives in BSS and never takes stack space to build. NewConstCell builds a
// cell holding any other value during package initialization.
//
// The first Take hands out the only handle; the cell is taken forever after.
type ConstCell[T any] struct {
	_     noCopy
	state atomic.Uint32
	_     opt.StatePad_
	value T
}

// NewConstCell returns an untaken cell holding v.
//
// The cell is built on the heap during package initialization; only the zero
// value form is placed at image layout time.
func NewConstCell[T any](v T) *ConstCell[T] {
	return &ConstCell[T]{value: v}
}

// Take returns the handle to the value.
//
// panic with ErrAlreadyTaken if the cell was taken before.
func (c *ConstCell[T]) Take() *T {
	if p, ok := c.TryTake(); ok {
		return p
	}
	fatal[T](constCellName, "Take", c.state.Load(), ErrAlreadyTaken)
	return nil
}

// TryTake is like Take but returns nil, false if the cell was taken before.
func (c *ConstCell[T]) TryTake() (*T, bool) {
	if !c.state.CompareAndSwap(stateHeld, stateClaimed) {
		return nil, false
	}
	return &c.value, true
}

// IsTaken reports whether the handle has been handed out.
func (c *ConstCell[T]) IsTaken() bool {
	return c.state.Load() != stateHeld
}
