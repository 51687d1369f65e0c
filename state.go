package staticcell

// Claim-state encodings. The zero value of every cell is its fresh state, so
// a package-level cell needs no runtime initialization.
//
//	LateCell:    empty -> claimed
//	ConstCell:   held  -> claimed
//	ReclaimCell: empty -> claimed <-> initialized
const (
	stateEmpty       uint32 = 0
	stateHeld        uint32 = 0
	stateClaimed     uint32 = 1
	stateInitialized uint32 = 2
)

const (
	lateCellName    = "LateCell"
	reclaimCellName = "ReclaimCell"
	constCellName   = "ConstCell"
)

func stateName(cell string, s uint32) string {
	switch s {
	case stateEmpty:
		if cell == constCellName {
			return "held"
		}
		return "empty"
	case stateClaimed:
		return "claimed"
	case stateInitialized:
		return "initialized"
	}
	return "invalid"
}

// noCopy may be added to structs which must not be copied
// after the first use.
//
// See https://golang.org/issues/8005#issuecomment-190753527
// for details.
type noCopy struct{}

// Lock is a no-op used by -copylocks checker from `go vet`.
func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
