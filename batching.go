package listdiff

// Event types tracked by BatchingCallback.
const (
	eventNone = iota
	eventInsert
	eventRemove
	eventChange
)

// BatchingCallback wraps a ListUpdateCallback and merges consecutive
// inserts, removes and changes that touch adjacent positions into single
// calls. Moves are never merged.
//
// Call DispatchLastEvent once the last update was sent, otherwise the
// pending batch is lost. DiffResult.DispatchUpdatesTo does this itself.
type BatchingCallback struct {
	wrapped       ListUpdateCallback
	lastEventType int
	lastPosition  int
	lastCount     int
	lastIsMove    bool
}

// NewBatchingCallback returns a BatchingCallback forwarding to cb. If cb is
// already a BatchingCallback it is returned as is.
func NewBatchingCallback(cb ListUpdateCallback) *BatchingCallback {
	if b, ok := cb.(*BatchingCallback); ok {
		return b
	}
	return &BatchingCallback{
		wrapped:       cb,
		lastEventType: eventNone,
		lastPosition:  -1,
		lastCount:     -1,
	}
}

// UseFinalPosition forwards to the wrapped callback.
func (b *BatchingCallback) UseFinalPosition() bool {
	return b.wrapped.UseFinalPosition()
}

// DispatchLastEvent sends the pending batch, if any, to the wrapped callback.
func (b *BatchingCallback) DispatchLastEvent() {
	switch b.lastEventType {
	case eventNone:
		return
	case eventInsert:
		b.wrapped.OnInserted(b.lastPosition, b.lastCount)
	case eventRemove:
		b.wrapped.OnRemoved(b.lastPosition, b.lastCount)
	case eventChange:
		b.wrapped.OnChanged(b.lastPosition, b.lastCount, b.lastIsMove)
	}
	b.lastEventType = eventNone
	b.lastIsMove = false
}

// OnInserted merges the insert into the pending one when position falls
// inside or right after it.
func (b *BatchingCallback) OnInserted(position, count int) {
	if b.lastEventType == eventInsert && position >= b.lastPosition && position <= b.lastPosition+b.lastCount {
		b.lastCount += count
		b.lastPosition = min(position, b.lastPosition)
		return
	}
	b.DispatchLastEvent()
	b.lastPosition = position
	b.lastCount = count
	b.lastEventType = eventInsert
}

// OnRemoved merges the removal into the pending one when the pending
// removal starts inside or right after the removed range.
func (b *BatchingCallback) OnRemoved(position, count int) {
	if b.lastEventType == eventRemove && b.lastPosition >= position && b.lastPosition <= position+count {
		b.lastCount += count
		b.lastPosition = position
		return
	}
	b.DispatchLastEvent()
	b.lastPosition = position
	b.lastCount = count
	b.lastEventType = eventRemove
}

// OnMoved flushes the pending batch and forwards the move.
func (b *BatchingCallback) OnMoved(fromPosition, toPosition int) {
	b.DispatchLastEvent()
	b.wrapped.OnMoved(fromPosition, toPosition)
}

// OnChanged merges the change into the pending one when the ranges overlap
// or touch and both have the same isMove.
func (b *BatchingCallback) OnChanged(position, count int, isMove bool) {
	if b.lastEventType == eventChange &&
		!(position > b.lastPosition+b.lastCount || position+count < b.lastPosition || b.lastIsMove != isMove) {
		previousEnd := b.lastPosition + b.lastCount
		b.lastPosition = min(position, b.lastPosition)
		b.lastCount = max(previousEnd, position+count) - b.lastPosition
		return
	}
	b.DispatchLastEvent()
	b.lastPosition = position
	b.lastCount = count
	b.lastIsMove = isMove
	b.lastEventType = eventChange
}
