//go:build staticcell_disable_padding

package opt

// PadState_ is force-disabled via the staticcell_disable_padding build tag.
// Use: go build -tags=staticcell_disable_padding
const PadState_ = false

// StatePad_ sits between a cell's state word and its slot.
type StatePad_ struct{}
