package staticcell

// ReclaimCell is a LateCell whose value can be returned and checked out
// again, so it behaves as a single-holder token after initialization.
//
// States:
//   - empty: never initialized (zero value).
//   - claimed: exactly one holder owns the handle.
//   - initialized: the value rests in the cell.
//
// Init and friends move empty -> claimed in one step; initialized is only
// reached through Return. Checkout moves initialized -> claimed.
//
// Writes made by a holder before Return are visible to the next holder
// after Checkout.
type ReclaimCell[T any] struct {
	lateCell[T, reclaimKind]
}

// NewReclaimCell returns a cell that already rests in the initialized state
// holding v, ready for Checkout.
//
// The cell is built on the heap during package initialization; only the zero
// value form is placed at image layout time.
func NewReclaimCell[T any](v T) *ReclaimCell[T] {
	c := &ReclaimCell[T]{}
	c.slot.value = v
	c.state.Store(stateInitialized)
	return c
}

// Checkout takes the handle to the resting value.
//
// panic with ErrAlreadyCheckedOut if another holder has it, or with
// ErrNotInitialized if the cell was never initialized.
func (c *ReclaimCell[T]) Checkout() *T {
	if p, ok := c.TryCheckout(); ok {
		return p
	}
	fatal[T](reclaimCellName, "Checkout", stateClaimed, ErrAlreadyCheckedOut)
	return nil
}

// TryCheckout is like Checkout but returns nil, false if another holder has
// the value. It still panics with ErrNotInitialized on an empty cell.
func (c *ReclaimCell[T]) TryCheckout() (*T, bool) {
	if c.state.CompareAndSwap(stateInitialized, stateClaimed) {
		return &c.slot.value, true
	}
	// empty is never re-entered, so observing it now means it was empty at
	// the failed swap too.
	if c.state.Load() == stateEmpty {
		fatal[T](reclaimCellName, "Checkout", stateEmpty, ErrNotInitialized)
	}
	return nil, false
}

// Return gives the handle back to the cell. h must be the pointer this cell
// handed out; the caller must not use it afterwards.
//
// panic with ErrForeignHandle if h belongs elsewhere (the state is left
// untouched), ErrNotInitialized if the cell is empty, or ErrNotCheckedOut if
// the value already rests in the cell.
func (c *ReclaimCell[T]) Return(h *T) {
	if h != &c.slot.value {
		fatal[T](reclaimCellName, "Return", c.state.Load(), ErrForeignHandle)
	}
	if c.state.CompareAndSwap(stateClaimed, stateInitialized) {
		return
	}
	s := c.state.Load()
	if s == stateEmpty {
		fatal[T](reclaimCellName, "Return", s, ErrNotInitialized)
	}
	fatal[T](reclaimCellName, "Return", s, ErrNotCheckedOut)
}

// IsCheckedOut reports whether a holder currently owns the handle.
func (c *ReclaimCell[T]) IsCheckedOut() bool {
	return c.state.Load() == stateClaimed
}

// IsInitialized reports whether the value rests in the cell, ready for
// Checkout.
func (c *ReclaimCell[T]) IsInitialized() bool {
	return c.state.Load() == stateInitialized
}
