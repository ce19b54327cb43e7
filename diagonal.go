package listdiff

// Diagonal is a run of Size matched items starting at old index X and new
// index Y.
type Diagonal struct {
	X    int
	Y    int
	Size int
}

// EndX returns the old index right after the run.
func (d Diagonal) EndX() int {
	return d.X + d.Size
}

// EndY returns the new index right after the run.
func (d Diagonal) EndY() int {
	return d.Y + d.Size
}
