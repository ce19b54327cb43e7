package listdiff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringElement_Equal(t *testing.T) {
	tests := []struct {
		name string
		a    StringElement
		b    Element
		want bool
	}{
		{"equal strings", "hello", StringElement("hello"), true},
		{"different strings", "hello", StringElement("world"), false},
		{"empty strings", "", StringElement(""), true},
		{"empty vs non-empty", "", StringElement("x"), false},
		{"different type", "hello", otherElement{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
			if got := tt.a.SameItem(tt.b); got != tt.want {
				t.Errorf("SameItem() = %v, want %v", got, tt.want)
			}
		})
	}
}

type otherElement struct{}

func (otherElement) SameItem(Element) bool { return false }
func (otherElement) Equal(Element) bool    { return false }

func TestToElements(t *testing.T) {
	elems := toElements([]string{"a", "b"})
	require.Len(t, elems, 2)
	assert.Equal(t, StringElement("a"), elems[0])
	assert.Equal(t, StringElement("b"), elems[1])
	assert.Empty(t, toElements(nil))
}

func TestSliceCallback(t *testing.T) {
	cb := &SliceCallback[int]{
		Old:      []int{1, 2, 3},
		New:      []int{3, 4},
		SameItem: func(a, b int) bool { return a == b },
	}
	assert.Equal(t, 3, cb.OldSize())
	assert.Equal(t, 2, cb.NewSize())
	assert.True(t, cb.AreItemsTheSame(2, 0))
	assert.False(t, cb.AreItemsTheSame(0, 1))
	// A nil SameContent treats matched items as unchanged.
	assert.True(t, cb.AreContentsTheSame(2, 0))

	cb.SameContent = func(a, b int) bool { return false }
	assert.False(t, cb.AreContentsTheSame(2, 0))
}

// record is an Element with an id and a payload.
type record struct {
	id   int
	name string
}

func (r record) SameItem(other Element) bool {
	o, ok := other.(record)
	return ok && o.id == r.id
}

func (r record) Equal(other Element) bool {
	o, ok := other.(record)
	return ok && o == r
}

func TestDiffElements(t *testing.T) {
	old := []Element{record{1, "Alice"}, record{2, "Bob"}, record{3, "Charlie"}}
	new := []Element{record{1, "Alice Smith"}, record{4, "David"}, record{3, "Charlie"}}

	result, err := DiffElements(old, new)
	require.NoError(t, err)
	assert.Equal(t, []Update{
		{Type: Remove, Position: 1, Count: 1},
		{Type: Insert, Position: 1, Count: 1},
		{Type: Change, Position: 0, Count: 1},
	}, result.Updates())
}

func TestDiffComparable_NeverChanges(t *testing.T) {
	result, err := DiffComparable([]int{1, 2, 3, 4}, []int{4, 1, 3, 5})
	require.NoError(t, err)
	for _, u := range result.Updates() {
		assert.NotEqual(t, Change, u.Type, "unexpected %s", u)
	}
}
