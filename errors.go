package staticcell

import (
	"errors"
	"reflect"

	"github.com/sirupsen/logrus"
	"github.com/zeebo/errs/v2"
)

// Errors carried by the panics of the non-Try operations. A recovered panic
// value is an error that wraps exactly one of these, so callers can branch
// with errors.Is.
var (
	// ErrAlreadyClaimed: a LateCell or ReclaimCell was initialized twice.
	ErrAlreadyClaimed = errors.New("staticcell: cell is already claimed, it can't be initialized twice")
	// ErrAlreadyTaken: a ConstCell was taken twice.
	ErrAlreadyTaken = errors.New("staticcell: cell is already taken, it can't be taken twice")
	// ErrAlreadyCheckedOut: Checkout while another holder has the value.
	ErrAlreadyCheckedOut = errors.New("staticcell: cell is already checked out")
	// ErrNotInitialized: Checkout or Return on a ReclaimCell that was never initialized.
	ErrNotInitialized = errors.New("staticcell: cell is not initialized")
	// ErrNotCheckedOut: Return while the value is held by the cell.
	ErrNotCheckedOut = errors.New("staticcell: cell is not checked out")
	// ErrForeignHandle: Return with a pointer that did not come from this cell.
	ErrForeignHandle = errors.New("staticcell: handle does not belong to this cell")
)

// fatal logs one diagnostic and panics with an error wrapping sentinel.
// sentinel may itself wrap one of the errors above to add detail.
// The state is not touched; every caller has already failed its transition.
func fatal[T any](cell, op string, state uint32, sentinel error) {
	typ := reflect.TypeFor[T]().String()
	name := stateName(cell, state)
	err := errs.Errorf("%w (%s[%s].%s in state %s)", sentinel, cell, typ, op, name)
	Logger().WithFields(logrus.Fields{
		"cell":  cell,
		"type":  typ,
		"op":    op,
		"state": name,
		"error": sentinel.Error(),
	}).Error("staticcell: fatal cell operation")
	panic(err)
}
