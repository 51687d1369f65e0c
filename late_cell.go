// Package staticcell provides cells for one-shot initialization of
// process-wide storage.
//
// A cell is declared as a package-level variable; its zero value needs no
// runtime work, and cells of zero-filled types land in BSS. At runtime a
// single claim atomically hands out an exclusive *T that stays valid for the
// rest of the program:
//
//	var buf staticcell.LateCell[[4096]byte]
//
//	func setup() {
//		b := buf.InitInPlace(func(b *[4096]byte) { b[0] = 0x7f })
//		_ = b // exclusively ours from now on
//	}
//
// Claims are a single compare-and-swap: they never block, spin, or allocate.
package staticcell

import (
	"sync/atomic"

	"github.com/llxisdsh/staticcell/internal/opt"
)

type cellKind interface {
	name() string
}

type lateKind struct{}

func (lateKind) name() string { return lateCellName }

type reclaimKind struct{}

func (reclaimKind) name() string { return reclaimCellName }

// lateCell implements the claim operations shared by LateCell and
// ReclaimCell. K only names the variant in diagnostics.
//
// The slot stays last so that the handle of a zero-sized T still points
// inside the cell.
type lateCell[T any, K cellKind] struct {
	_     noCopy
	state atomic.Uint32
	_     opt.StatePad_
	slot  MaybeUninit[T]
}

// LateCell is process-wide storage for one T, initialized at runtime.
//
// It is created empty (zero-value usable). The first successful Init,
// InitWith, InitInPlace or Uninit permanently claims it and returns the only
// handle to the stored value. Later claims panic, or report false for the
// Try variants.
//
// A LateCell must not be copied after first use.
//
// Size: 4 bytes of state (a full cache line on padded targets) + sizeof(T).
type LateCell[T any] struct {
	lateCell[T, lateKind]
}

// NewLateCell returns an empty LateCell for use outside package-level
// declarations.
func NewLateCell[T any]() *LateCell[T] {
	return &LateCell[T]{}
}

// Init claims the cell, stores v and returns the handle.
//
// v is usually built on the caller's stack and then copied into the cell;
// for large T use InitInPlace.
//
// panic with ErrAlreadyClaimed if the cell was claimed before.
func (c *lateCell[T, K]) Init(v T) *T {
	return c.claim("Init").Write(v)
}

// InitWith claims the cell and stores the result of build. build runs only
// after the claim has succeeded.
//
// panic with ErrAlreadyClaimed if the cell was claimed before.
func (c *lateCell[T, K]) InitWith(build func() T) *T {
	m := c.claim("InitWith")
	return m.Write(build())
}

// InitInPlace claims the cell and lets build construct the value directly in
// the slot. No copy of T is ever made on a goroutine stack.
//
// panic with ErrAlreadyClaimed if the cell was claimed before.
func (c *lateCell[T, K]) InitInPlace(build func(*T)) *T {
	return c.claim("InitInPlace").WriteWith(build)
}

// Uninit claims the cell and returns its raw storage.
//
// panic with ErrAlreadyClaimed if the cell was claimed before.
func (c *lateCell[T, K]) Uninit() *MaybeUninit[T] {
	return c.claim("Uninit")
}

func (c *lateCell[T, K]) claim(op string) *MaybeUninit[T] {
	if m, ok := c.TryUninit(); ok {
		return m
	}
	var k K
	fatal[T](k.name(), op, c.state.Load(), ErrAlreadyClaimed)
	return nil
}

// TryInit is like Init but returns nil, false if the cell was claimed before.
func (c *lateCell[T, K]) TryInit(v T) (*T, bool) {
	m, ok := c.TryUninit()
	if !ok {
		return nil, false
	}
	return m.Write(v), true
}

// TryInitWith is like InitWith but returns nil, false if the cell was
// claimed before. build is not called in that case.
func (c *lateCell[T, K]) TryInitWith(build func() T) (*T, bool) {
	m, ok := c.TryUninit()
	if !ok {
		return nil, false
	}
	return m.Write(build()), true
}

// TryInitInPlace is like InitInPlace but returns nil, false if the cell was
// claimed before. build is not called in that case.
func (c *lateCell[T, K]) TryInitInPlace(build func(*T)) (*T, bool) {
	m, ok := c.TryUninit()
	if !ok {
		return nil, false
	}
	return m.WriteWith(build), true
}

// TryUninit is like Uninit but returns nil, false if the cell was claimed
// before.
func (c *lateCell[T, K]) TryUninit() (*MaybeUninit[T], bool) {
	if !c.state.CompareAndSwap(stateEmpty, stateClaimed) {
		return nil, false
	}
	return &c.slot, true
}

// IsClaimed reports whether a claim has succeeded on the cell.
func (c *lateCell[T, K]) IsClaimed() bool {
	return c.state.Load() != stateEmpty
}
