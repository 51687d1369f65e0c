package staticcell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"testing"
	"unsafe"

	"github.com/sirupsen/logrus"

	"github.com/llxisdsh/staticcell/internal/opt"
)

func TestMain(m *testing.M) {
	quiet := logrus.New()
	quiet.SetOutput(io.Discard)
	SetLogger(quiet)
	os.Exit(m.Run())
}

// panicErr runs f and returns the error it panicked with, or nil.
func panicErr(f func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
				return
			}
			err = fmt.Errorf("non-error panic: %v", r)
		}
	}()
	f()
	return nil
}

func expectPanic(t *testing.T, want error, f func()) {
	t.Helper()
	err := panicErr(f)
	if err == nil {
		t.Fatalf("expected panic with %v, got none", want)
	}
	if !errors.Is(err, want) {
		t.Fatalf("panic = %v, want %v", err, want)
	}
}

func TestCellSize(t *testing.T) {
	// 4 byte state rounded up to the slot's alignment.
	align := unsafe.Alignof(uint64(0))
	statePart := (4 + align - 1) &^ (align - 1)
	if opt.PadState_ {
		statePart = opt.CacheLineSize_
	}
	if size := unsafe.Sizeof(LateCell[uint64]{}); size != statePart+8 {
		t.Errorf("LateCell[uint64] size = %d, want %d", size, statePart+8)
	}
	if size := unsafe.Sizeof(ReclaimCell[uint64]{}); size != statePart+8 {
		t.Errorf("ReclaimCell[uint64] size = %d, want %d", size, statePart+8)
	}
	if size := unsafe.Sizeof(ConstCell[uint64]{}); size != statePart+8 {
		t.Errorf("ConstCell[uint64] size = %d, want %d", size, statePart+8)
	}
}

func TestSlotIsLastField(t *testing.T) {
	var c LateCell[[3]byte]
	off := unsafe.Offsetof(c.slot)
	if off+unsafe.Sizeof(c.slot) > unsafe.Sizeof(c) {
		t.Fatalf("slot [%d, %d) overruns cell size %d", off, off+unsafe.Sizeof(c.slot), unsafe.Sizeof(c))
	}
	if off < unsafe.Sizeof(c.state) {
		t.Fatalf("slot offset %d overlaps state", off)
	}
}

func TestStateName(t *testing.T) {
	cases := []struct {
		cell  string
		state uint32
		want  string
	}{
		{lateCellName, stateEmpty, "empty"},
		{lateCellName, stateClaimed, "claimed"},
		{reclaimCellName, stateInitialized, "initialized"},
		{constCellName, stateHeld, "held"},
		{constCellName, stateClaimed, "claimed"},
		{lateCellName, 7, "invalid"},
	}
	for _, c := range cases {
		if got := stateName(c.cell, c.state); got != c.want {
			t.Errorf("stateName(%s, %d) = %q, want %q", c.cell, c.state, got, c.want)
		}
	}
}

var errBoom = errors.New("boom")
