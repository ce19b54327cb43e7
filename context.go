package listdiff

import "github.com/rs/zerolog"

// centeredArray is an int buffer indexed by diagonal number k, which can be
// negative. Index k is stored at data[k+mid].
type centeredArray struct {
	data []int
	mid  int
}

func newCenteredArray(size int) *centeredArray {
	return &centeredArray{
		data: make([]int, size),
		mid:  size / 2,
	}
}

func (a *centeredArray) get(k int) int {
	return a.data[k+a.mid]
}

func (a *centeredArray) set(k, value int) {
	a.data[k+a.mid] = value
}

// diffContext holds algorithm state for one CalculateDiff call.
type diffContext struct {
	cb       Callback
	oldSize  int
	newSize  int
	forward  *centeredArray // furthest x reached per k-line, forward search
	backward *centeredArray // smallest x reached per k-line, backward search
	logger   zerolog.Logger
}

// newDiffContext creates a context for comparing the lists behind cb.
func newDiffContext(cb Callback, oldSize, newSize int, logger zerolog.Logger) *diffContext {
	// Both arrays are sized for the whole problem and shared by every range:
	// a sub-range never needs more than maxD diagonals on either side.
	maxD := (oldSize + newSize + 1) / 2
	return &diffContext{
		cb:       cb,
		oldSize:  oldSize,
		newSize:  newSize,
		forward:  newCenteredArray(maxD*2 + 1),
		backward: newCenteredArray(maxD*2 + 1),
		logger:   logger,
	}
}

// sameItem reports whether old[x] and new[y] are the same item.
func (ctx *diffContext) sameItem(x, y int) bool {
	return ctx.cb.AreItemsTheSame(x, y)
}
