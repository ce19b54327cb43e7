package listdiff

import "fmt"

// OpType identifies the kind of a list update.
type OpType int

const (
	// Insert means items were inserted.
	Insert OpType = iota
	// Remove means items were removed.
	Remove
	// Move means one item moved.
	Move
	// Change means items changed contents in place.
	Change
)

// String returns a string representation of the OpType.
func (t OpType) String() string {
	switch t {
	case Insert:
		return "Insert"
	case Remove:
		return "Remove"
	case Move:
		return "Move"
	case Change:
		return "Change"
	default:
		return "Unknown"
	}
}

// Update is one dispatched list update.
type Update struct {
	Type     OpType
	Position int  // Insert, Remove, Change
	Count    int  // Insert, Remove, Change
	From     int  // Move
	To       int  // Move
	IsMove   bool // Change: the changed item was also moved
}

// String returns a compact representation such as "Insert(2,3)" or
// "Move(0->4)".
func (u Update) String() string {
	switch u.Type {
	case Move:
		return fmt.Sprintf("%s(%d->%d)", u.Type, u.From, u.To)
	case Change:
		if u.IsMove {
			return fmt.Sprintf("%s(%d,%d,move)", u.Type, u.Position, u.Count)
		}
		return fmt.Sprintf("%s(%d,%d)", u.Type, u.Position, u.Count)
	default:
		return fmt.Sprintf("%s(%d,%d)", u.Type, u.Position, u.Count)
	}
}

// UpdateRecorder is a ListUpdateCallback that records every update.
type UpdateRecorder struct {
	FinalPositions bool
	Updates        []Update
}

// UseFinalPosition returns r.FinalPositions.
func (r *UpdateRecorder) UseFinalPosition() bool {
	return r.FinalPositions
}

func (r *UpdateRecorder) OnInserted(position, count int) {
	r.Updates = append(r.Updates, Update{Type: Insert, Position: position, Count: count})
}

func (r *UpdateRecorder) OnRemoved(position, count int) {
	r.Updates = append(r.Updates, Update{Type: Remove, Position: position, Count: count})
}

func (r *UpdateRecorder) OnMoved(fromPosition, toPosition int) {
	r.Updates = append(r.Updates, Update{Type: Move, From: fromPosition, To: toPosition})
}

func (r *UpdateRecorder) OnChanged(position, count int, isMove bool) {
	r.Updates = append(r.Updates, Update{Type: Change, Position: position, Count: count, IsMove: isMove})
}

// Updates dispatches r into a recorder using rolling positions and returns
// the recorded updates.
func (r *DiffResult) Updates() []Update {
	rec := &UpdateRecorder{}
	r.DispatchUpdatesTo(rec)
	return rec.Updates
}
