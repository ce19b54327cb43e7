package listdiff

// The middle snake search follows Myers 1986, "An O(ND) Difference Algorithm
// and Its Variations", section 4b: a forward and a backward breadth-first
// search over increasing edit distance d that stop as soon as the two
// frontiers overlap on some diagonal.

// snake is a run of matches found by the middle snake search, possibly
// preceded by a single insertion or removal step.
type snake struct {
	startX, startY int
	endX, endY     int
	// reverse is true when the snake was found by the backward search. The
	// non-diagonal step then sits at the end of the snake instead of the
	// start.
	reverse bool
}

func (s snake) hasAdditionOrRemoval() bool {
	return s.endY-s.startY != s.endX-s.startX
}

func (s snake) isAddition() bool {
	return s.endY-s.startY > s.endX-s.startX
}

// diagonalSize returns the number of matches in the snake.
func (s snake) diagonalSize() int {
	return min(s.endX-s.startX, s.endY-s.startY)
}

// toDiagonal drops the non-diagonal step of the snake, if any.
func (s snake) toDiagonal() Diagonal {
	if !s.hasAdditionOrRemoval() {
		return Diagonal{X: s.startX, Y: s.startY, Size: s.endX - s.startX}
	}
	if s.reverse {
		return Diagonal{X: s.startX, Y: s.startY, Size: s.diagonalSize()}
	}
	if s.isAddition() {
		return Diagonal{X: s.startX, Y: s.startY + 1, Size: s.diagonalSize()}
	}
	return Diagonal{X: s.startX + 1, Y: s.startY, Size: s.diagonalSize()}
}

// midPoint finds the middle snake of r. It reports false when either side
// of r is empty or the two sides have nothing in common.
func (ctx *diffContext) midPoint(r *diffRange) (snake, bool) {
	if r.oldSize() < 1 || r.newSize() < 1 {
		return snake{}, false
	}

	maxD := (r.oldSize() + r.newSize() + 1) / 2
	// Only the starting slots need resetting: every other slot read at
	// distance d was written at distance d-1.
	ctx.forward.set(1, r.oldStart)
	ctx.backward.set(1, r.oldEnd)

	for d := 0; d < maxD; d++ {
		if s, ok := ctx.forwardStep(r, d); ok {
			return s, true
		}
		if s, ok := ctx.backwardStep(r, d); ok {
			return s, true
		}
	}
	return snake{}, false
}

// forwardStep extends every k-line of the forward search by one edit at
// distance d. When the size difference of r is odd, overlap with the
// backward search of distance d-1 can only be seen here.
func (ctx *diffContext) forwardStep(r *diffRange, d int) (snake, bool) {
	forward := ctx.forward
	backward := ctx.backward
	delta := r.oldSize() - r.newSize()
	checkForSnake := abs(delta)%2 == 1

	for k := -d; k <= d; k += 2 {
		var startX, x int
		if k == -d || (k != d && forward.get(k+1) > forward.get(k-1)) {
			// Coming from k+1: a step down, y grows.
			startX = forward.get(k + 1)
			x = startX
		} else {
			// Coming from k-1: a step right, x grows.
			startX = forward.get(k - 1)
			x = startX + 1
		}
		y := r.newStart + (x - r.oldStart) - k
		startY := y
		if d != 0 && x == startX {
			startY = y - 1
		}

		for x < r.oldEnd && y < r.newEnd && ctx.sameItem(x, y) {
			x++
			y++
		}
		forward.set(k, x)

		if checkForSnake {
			backwardK := delta - k
			if backwardK >= -d+1 && backwardK <= d-1 && backward.get(backwardK) <= x {
				return snake{
					startX: startX,
					startY: startY,
					endX:   x,
					endY:   y,
				}, true
			}
		}
	}
	return snake{}, false
}

// backwardStep is the mirror of forwardStep, walking from the end of r
// toward its start. It sees overlaps when the size difference of r is even.
func (ctx *diffContext) backwardStep(r *diffRange, d int) (snake, bool) {
	forward := ctx.forward
	backward := ctx.backward
	delta := r.oldSize() - r.newSize()
	checkForSnake := delta%2 == 0

	for k := -d; k <= d; k += 2 {
		var startX, x int
		if k == -d || (k != d && backward.get(k+1) < backward.get(k-1)) {
			// Coming from k+1: a step up, y shrinks.
			startX = backward.get(k + 1)
			x = startX
		} else {
			// Coming from k-1: a step left, x shrinks.
			startX = backward.get(k - 1)
			x = startX - 1
		}
		y := r.newEnd - ((r.oldEnd - x) - k)
		startY := y
		if d != 0 && x == startX {
			startY = y + 1
		}

		for x > r.oldStart && y > r.newStart && ctx.sameItem(x-1, y-1) {
			x--
			y--
		}
		backward.set(k, x)

		if checkForSnake {
			forwardK := delta - k
			if forwardK >= -d && forwardK <= d && forward.get(forwardK) >= x {
				return snake{
					startX:  x,
					startY:  y,
					endX:    startX,
					endY:    startY,
					reverse: true,
				}, true
			}
		}
	}
	return snake{}, false
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
