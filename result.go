package listdiff

import "github.com/rs/zerolog"

// NoPosition is returned by the position conversions of DiffResult for items
// that have no counterpart in the other list.
const NoPosition = -1

// Item status flags. A status slot holds one of these in its low bits and
// the index of the matching item in the other list above flagOffset. A zero
// status means the item was removed (old list) or inserted (new list).
const (
	flagNotChanged = 1 << iota
	flagChanged
	flagMovedChanged
	flagMovedNotChanged

	flagMoved  = flagMovedChanged | flagMovedNotChanged
	flagOffset = 4
	flagMask   = 1<<flagOffset - 1
)

// DiffResult holds the outcome of CalculateDiff.
//
// Invariants:
//   - every old and new index is either unmatched (status 0) or points at
//     its counterpart, which points back at it with the same flag
//   - diagonals are sorted by X, start with a diagonal at (0,0) and end with
//     an empty diagonal at (oldSize, newSize)
type DiffResult struct {
	cb              Callback
	diagonals       []Diagonal
	oldItemStatuses []int
	newItemStatuses []int
	oldSize         int
	newSize         int
	detectMoves     bool
	logger          zerolog.Logger
}

// newDiffResult builds the status tables for the given sorted diagonals.
func newDiffResult(cb Callback, diagonals []Diagonal, oldSize, newSize int, detectMoves bool, logger zerolog.Logger) *DiffResult {
	r := &DiffResult{
		cb:              cb,
		diagonals:       diagonals,
		oldItemStatuses: make([]int, oldSize),
		newItemStatuses: make([]int, newSize),
		oldSize:         oldSize,
		newSize:         newSize,
		detectMoves:     detectMoves,
		logger:          logger,
	}
	r.addEdgeDiagonals()
	r.findMatchingItems()
	return r
}

// addEdgeDiagonals adds empty diagonals at both ends of the edit graph so
// that every traversal can treat the gap before a diagonal the same way.
func (r *DiffResult) addEdgeDiagonals() {
	if len(r.diagonals) == 0 || r.diagonals[0].X != 0 || r.diagonals[0].Y != 0 {
		r.diagonals = append([]Diagonal{{X: 0, Y: 0, Size: 0}}, r.diagonals...)
	}
	r.diagonals = append(r.diagonals, Diagonal{X: r.oldSize, Y: r.newSize, Size: 0})
}

// findMatchingItems fills the status tables from the diagonals and, when
// enabled, from move detection.
func (r *DiffResult) findMatchingItems() {
	for _, d := range r.diagonals {
		for offset := 0; offset < d.Size; offset++ {
			x := d.X + offset
			y := d.Y + offset
			flag := flagChanged
			if r.cb.AreContentsTheSame(x, y) {
				flag = flagNotChanged
			}
			r.oldItemStatuses[x] = y<<flagOffset | flag
			r.newItemStatuses[y] = x<<flagOffset | flag
		}
	}
	if r.detectMoves {
		r.findMoveMatches()
	}
}

// findMoveMatches pairs every removed item with the first inserted item,
// in new list order, that is the same item. Removed items are visited in
// old list order. This greedy matching is not globally optimal.
func (r *DiffResult) findMoveMatches() {
	x := 0
	for _, d := range r.diagonals {
		for ; x < d.X; x++ {
			if r.oldItemStatuses[x] == 0 {
				r.findMatchingAddition(x)
			}
		}
		x = d.EndX()
	}
}

// findMatchingAddition looks for an unmatched inserted item that is the same
// item as old[x] and records the pair as a move.
func (r *DiffResult) findMatchingAddition(x int) {
	y := 0
	for _, d := range r.diagonals {
		for ; y < d.Y; y++ {
			if r.newItemStatuses[y] != 0 || !r.cb.AreItemsTheSame(x, y) {
				continue
			}
			flag := flagMovedChanged
			if r.cb.AreContentsTheSame(x, y) {
				flag = flagMovedNotChanged
			}
			r.oldItemStatuses[x] = y<<flagOffset | flag
			r.newItemStatuses[y] = x<<flagOffset | flag
			return
		}
		y = d.EndY()
	}
}

// moveCount returns the number of items matched as moves.
func (r *DiffResult) moveCount() int {
	n := 0
	for _, status := range r.oldItemStatuses {
		if status&flagMoved != 0 {
			n++
		}
	}
	return n
}

// OldListSize returns the size of the old list.
func (r *DiffResult) OldListSize() int {
	return r.oldSize
}

// NewListSize returns the size of the new list.
func (r *DiffResult) NewListSize() int {
	return r.newSize
}

// DetectMoves reports whether moves were detected when computing r.
func (r *DiffResult) DetectMoves() bool {
	return r.detectMoves
}

// Diagonals returns a copy of the matched runs, including the empty
// diagonals at both ends.
func (r *DiffResult) Diagonals() []Diagonal {
	out := make([]Diagonal, len(r.diagonals))
	copy(out, r.diagonals)
	return out
}

// ConvertOldPositionToNew returns the position of old[oldPos] in the new
// list, or NoPosition if it was removed.
func (r *DiffResult) ConvertOldPositionToNew(oldPos int) (int, error) {
	if oldPos < 0 || oldPos >= r.oldSize {
		return NoPosition, &PositionError{List: "old", Index: oldPos, Size: r.oldSize}
	}
	status := r.oldItemStatuses[oldPos]
	if status&flagMask == 0 {
		return NoPosition, nil
	}
	return status >> flagOffset, nil
}

// ConvertNewPositionToOld returns the position of new[newPos] in the old
// list, or NoPosition if it was inserted.
func (r *DiffResult) ConvertNewPositionToOld(newPos int) (int, error) {
	if newPos < 0 || newPos >= r.newSize {
		return NoPosition, &PositionError{List: "new", Index: newPos, Size: r.newSize}
	}
	status := r.newItemStatuses[newPos]
	if status&flagMask == 0 {
		return NoPosition, nil
	}
	return status >> flagOffset, nil
}
