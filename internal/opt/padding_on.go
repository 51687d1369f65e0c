//go:build !(amd64 || 386 || arm || mips || mipsle || wasm) && !staticcell_disable_padding && !staticcell_enable_padding

package opt

// PadState_ reports whether cells pad their state word to a full cache line.
// Padding is automatically enabled for architectures that are NOT:
// - amd64 (x86_64): Hardware optimizations often make padding less critical
// - 32-bit architectures (386, arm, mips, mipsle, wasm): Smaller cache lines/memory constraints
//
// Enabled for: arm64, s390x, ppc64, ppc64le, riscv64, loong64, mips64, mips64le, etc.
const PadState_ = true

// StatePad_ fills the rest of the cache line that holds the 4-byte state word,
// so writes into the slot never share a line with claim traffic.
type StatePad_ [CacheLineSize_ - 4]byte
