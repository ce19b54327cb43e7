package listdiff

import "sort"

// diffRange is a sub-problem [oldStart, oldEnd) x [newStart, newEnd) of the
// edit graph.
type diffRange struct {
	oldStart, oldEnd int
	newStart, newEnd int
}

func (r *diffRange) oldSize() int {
	return r.oldEnd - r.oldStart
}

func (r *diffRange) newSize() int {
	return r.newEnd - r.newStart
}

// computeDiagonals runs the divide-and-conquer part of the Myers algorithm.
// Ranges are processed from an explicit stack: each range is split around
// its middle snake into a left and a right range which are pushed back.
// The returned diagonals are sorted by their start in the old list.
func (ctx *diffContext) computeDiagonals() []Diagonal {
	var diagonals []Diagonal
	stack := []*diffRange{{oldStart: 0, oldEnd: ctx.oldSize, newStart: 0, newEnd: ctx.newSize}}
	var pool []*diffRange

	for len(stack) > 0 {
		r := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		s, ok := ctx.midPoint(r)
		if !ok {
			pool = append(pool, r)
			continue
		}

		if s.diagonalSize() > 0 {
			diagonals = append(diagonals, s.toDiagonal())
		}

		var left *diffRange
		if n := len(pool); n > 0 {
			left = pool[n-1]
			pool = pool[:n-1]
		} else {
			left = &diffRange{}
		}
		left.oldStart = r.oldStart
		left.newStart = r.newStart
		left.oldEnd = s.startX
		left.newEnd = s.startY

		// The popped range is reused as the right half.
		right := r
		right.oldStart = s.endX
		right.newStart = s.endY

		ctx.logger.Trace().
			Int("snake_start_x", s.startX).
			Int("snake_start_y", s.startY).
			Int("snake_end_x", s.endX).
			Int("snake_end_y", s.endY).
			Bool("reverse", s.reverse).
			Msg("range split")

		stack = append(stack, left, right)
	}

	sort.SliceStable(diagonals, func(i, j int) bool {
		return diagonals[i].X < diagonals[j].X
	})
	return diagonals
}
