//go:build staticcell_enable_padding

package opt

// PadState_ is force-enabled via the staticcell_enable_padding build tag.
// Use: go build -tags=staticcell_enable_padding
const PadState_ = true

// StatePad_ fills the rest of the cache line that holds the 4-byte state word.
type StatePad_ [CacheLineSize_ - 4]byte
