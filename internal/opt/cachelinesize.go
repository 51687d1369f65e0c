//go:build !staticcell_cachelinesize_32 && !staticcell_cachelinesize_64 && !staticcell_cachelinesize_128 && !staticcell_cachelinesize_256

package opt

import (
	"unsafe"

	"golang.org/x/sys/cpu"
)

// CacheLineSize_ is used to pad a cell's state word away from its slot.
// It's automatically calculated using the `golang.org/x/sys` package.
const CacheLineSize_ = unsafe.Sizeof(cpu.CacheLinePad{})
