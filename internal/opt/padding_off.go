//go:build (amd64 || 386 || arm || mips || mipsle || wasm) && !staticcell_disable_padding && !staticcell_enable_padding

package opt

// PadState_ reports whether cells pad their state word to a full cache line.
// Padding is disabled by default for:
// - amd64
// - 32-bit architectures (386, arm, mips, mipsle, wasm)
const PadState_ = false

// StatePad_ sits between a cell's state word and its slot.
type StatePad_ struct{}
