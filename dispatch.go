package listdiff

// ListUpdateCallback receives the updates dispatched by a DiffResult.
type ListUpdateCallback interface {
	// UseFinalPosition selects the coordinates reported to OnMoved and
	// OnChanged. When false, positions are those of the list as it is being
	// updated. When true, OnMoved gets the old list index and the new list
	// index of the item and OnChanged gets the new list index.
	UseFinalPosition() bool
	// OnInserted is called when count items are inserted at position.
	OnInserted(position, count int)
	// OnRemoved is called when count items are removed from position.
	OnRemoved(position, count int)
	// OnMoved is called when an item moves from fromPosition to toPosition.
	OnMoved(fromPosition, toPosition int)
	// OnChanged is called when count items at position changed contents.
	// isMove is true when the changed item was also moved.
	OnChanged(position, count int, isMove bool)
}

// postponedUpdate is one half of a move whose other half has not been seen
// yet while walking the lists from the end.
type postponedUpdate struct {
	// posInOwnerList is the index in the list the update was seen in: the
	// old list for removals and the new list for insertions.
	posInOwnerList int
	// currentPos is the distance from the end of the list being updated.
	currentPos int
	removal    bool
}

// DispatchUpdatesTo replays the diff as a sequence of list updates to cb.
//
// Updates are computed from the end of both lists toward the start, so a
// position reported to cb is never shifted by an update reported later on.
// Consecutive updates of the same kind are batched.
func (r *DiffResult) DispatchUpdatesTo(cb ListUpdateCallback) {
	batching := NewBatchingCallback(cb)
	final := batching.UseFinalPosition()

	currentListSize := r.oldSize
	var postponed []*postponedUpdate
	x := r.oldSize
	y := r.newSize
	dispatched := 0

	for i := len(r.diagonals) - 1; i >= 0; i-- {
		d := r.diagonals[i]
		endX := d.EndX()
		endY := d.EndY()

		// Removals first, then additions, so that an insertion lands where
		// the removed items were without shifting anything else.
		for x > endX {
			x--
			status := r.oldItemStatuses[x]
			if status&flagMoved == 0 {
				batching.OnRemoved(x, 1)
				currentListSize--
				dispatched++
				continue
			}
			newPos := status >> flagOffset
			var update *postponedUpdate
			postponed, update = takePostponedUpdate(postponed, newPos, false)
			if update == nil {
				// The insertion half comes later.
				postponed = append(postponed, &postponedUpdate{
					posInOwnerList: x,
					currentPos:     currentListSize - x - 1,
					removal:        true,
				})
				continue
			}
			updatedNewPos := currentListSize - update.currentPos - 1
			if final {
				batching.OnMoved(x, newPos)
			} else {
				batching.OnMoved(x, updatedNewPos)
			}
			dispatched++
			if status&flagMovedChanged != 0 {
				if final {
					batching.OnChanged(newPos, 1, true)
				} else {
					batching.OnChanged(updatedNewPos, 1, true)
				}
				dispatched++
			}
		}

		for y > endY {
			y--
			status := r.newItemStatuses[y]
			if status&flagMoved == 0 {
				batching.OnInserted(x, 1)
				currentListSize++
				dispatched++
				continue
			}
			oldPos := status >> flagOffset
			var update *postponedUpdate
			postponed, update = takePostponedUpdate(postponed, oldPos, true)
			if update == nil {
				// The removal half comes later.
				postponed = append(postponed, &postponedUpdate{
					posInOwnerList: y,
					currentPos:     currentListSize - x,
					removal:        false,
				})
				continue
			}
			updatedOldPos := currentListSize - update.currentPos - 1
			if final {
				batching.OnMoved(oldPos, y)
			} else {
				batching.OnMoved(updatedOldPos, x)
			}
			dispatched++
			if status&flagMovedChanged != 0 {
				if final {
					batching.OnChanged(y, 1, true)
				} else {
					batching.OnChanged(x, 1, true)
				}
				dispatched++
			}
		}

		// Changes inside the diagonal.
		for offset := 0; offset < d.Size; offset++ {
			if r.oldItemStatuses[d.X+offset]&flagMask != flagChanged {
				continue
			}
			if final {
				batching.OnChanged(d.Y+offset, 1, false)
			} else {
				batching.OnChanged(d.X+offset, 1, false)
			}
			dispatched++
		}

		x = d.X
		y = d.Y
	}
	batching.DispatchLastEvent()
	r.logger.Debug().
		Int("updates", dispatched).
		Int("unmatched_moves", len(postponed)).
		Bool("final_positions", final).
		Msg("updates dispatched")
}

// takePostponedUpdate removes and returns the first postponed update for
// posInList on the given side. Every update queued after it is shifted by
// one, since the item it stood for is now accounted for.
func takePostponedUpdate(updates []*postponedUpdate, posInList int, removal bool) ([]*postponedUpdate, *postponedUpdate) {
	for i, u := range updates {
		if u.posInOwnerList != posInList || u.removal != removal {
			continue
		}
		for _, rest := range updates[i+1:] {
			if removal {
				rest.currentPos--
			} else {
				rest.currentPos++
			}
		}
		updates = append(updates[:i], updates[i+1:]...)
		return updates, u
	}
	return updates, nil
}
