package staticcell

// MaybeUninit is the raw storage of a LateCell or ReclaimCell, handed out by
// Uninit before any value has been written.
//
// Go memory is always zeroed, so reading it early yields the zero T rather
// than garbage; the value is still not meaningful until one of the write
// methods, or an external protocol working through Ptr, has run.
type MaybeUninit[T any] struct {
	value T
}

// Write stores v into the slot and returns the long-lived handle.
//
// The value typically transits the caller's stack; prefer WriteWith for
// large T.
func (m *MaybeUninit[T]) Write(v T) *T {
	m.value = v
	return &m.value
}

// WriteWith lets build construct the value directly inside the slot.
func (m *MaybeUninit[T]) WriteWith(build func(*T)) *T {
	build(&m.value)
	return &m.value
}

// Ptr returns the address of the storage for external construction.
func (m *MaybeUninit[T]) Ptr() *T {
	return &m.value
}

// AssumeInit returns the handle once the caller has finished initializing
// the storage through Ptr.
func (m *MaybeUninit[T]) AssumeInit() *T {
	return &m.value
}
