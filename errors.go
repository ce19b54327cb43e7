package listdiff

import (
	"errors"
	"fmt"
)

// ErrNilCallback is returned by CalculateDiff when no callback is given.
var ErrNilCallback = errors.New("listdiff: nil callback")

// SizeError reports a callback that returned a negative list size.
type SizeError struct {
	Old int
	New int
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("listdiff: invalid list sizes (old: %d, new: %d)", e.Old, e.New)
}

// PositionError reports a position outside of the list it was looked up in.
type PositionError struct {
	List  string // "old" or "new"
	Index int
	Size  int
}

func (e *PositionError) Error() string {
	return fmt.Sprintf("listdiff: index out of bounds: %d is not in the %s list of size %d", e.Index, e.List, e.Size)
}
