package listdiff

// Element is a list item that knows how to compare itself with another.
type Element interface {
	// SameItem reports whether this element and other represent the same
	// item, e.g. because they share an id.
	SameItem(other Element) bool
	// Equal reports whether this element has the same contents as other.
	Equal(other Element) bool
}

// StringElement is the common case for line or word lists. Identity and
// contents are both the string itself.
type StringElement string

// SameItem reports whether s equals other.
// Returns false if other is not a StringElement.
func (s StringElement) SameItem(other Element) bool {
	return s.Equal(other)
}

// Equal reports whether s equals other.
// Returns false if other is not a StringElement.
func (s StringElement) Equal(other Element) bool {
	o, ok := other.(StringElement)
	if !ok {
		return false
	}
	return s == o
}

// toElements converts a slice of strings to a slice of Elements.
func toElements(strs []string) []Element {
	elems := make([]Element, len(strs))
	for i, s := range strs {
		elems[i] = StringElement(s)
	}
	return elems
}

// SliceCallback is a Callback over two slices.
type SliceCallback[T any] struct {
	Old         []T
	New         []T
	SameItem    func(a, b T) bool
	SameContent func(a, b T) bool
}

// OldSize returns len(c.Old).
func (c *SliceCallback[T]) OldSize() int { return len(c.Old) }

// NewSize returns len(c.New).
func (c *SliceCallback[T]) NewSize() int { return len(c.New) }

// AreItemsTheSame calls c.SameItem on the two items.
func (c *SliceCallback[T]) AreItemsTheSame(oldIndex, newIndex int) bool {
	return c.SameItem(c.Old[oldIndex], c.New[newIndex])
}

// AreContentsTheSame calls c.SameContent on the two items. A nil
// SameContent treats every pair of same items as unchanged.
func (c *SliceCallback[T]) AreContentsTheSame(oldIndex, newIndex int) bool {
	if c.SameContent == nil {
		return true
	}
	return c.SameContent(c.Old[oldIndex], c.New[newIndex])
}

// Diff compares two string slices.
func Diff(a, b []string, opts ...Option) (*DiffResult, error) {
	return DiffElements(toElements(a), toElements(b), opts...)
}

// DiffElements compares arbitrary Element slices.
func DiffElements(a, b []Element, opts ...Option) (*DiffResult, error) {
	return DiffSlices(a, b,
		func(x, y Element) bool { return x.SameItem(y) },
		func(x, y Element) bool { return x.Equal(y) },
		opts...)
}

// DiffSlices compares two slices using sameItem for identity and
// sameContent for contents. sameContent may be nil.
func DiffSlices[T any](a, b []T, sameItem, sameContent func(x, y T) bool, opts ...Option) (*DiffResult, error) {
	return CalculateDiff(&SliceCallback[T]{
		Old:         a,
		New:         b,
		SameItem:    sameItem,
		SameContent: sameContent,
	}, opts...)
}

// DiffComparable compares two slices of comparable values with ==. Equal
// values are the same item with the same contents, so the result never
// holds changes.
func DiffComparable[T comparable](a, b []T, opts ...Option) (*DiffResult, error) {
	eq := func(x, y T) bool { return x == y }
	return DiffSlices(a, b, eq, eq, opts...)
}
