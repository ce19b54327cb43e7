package listdiff

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// diffKeyed compares strings by their first byte for identity and by the
// whole string for contents, so "A1" and "A2" are the same item with
// different contents.
func diffKeyed(t *testing.T, old, new []string, opts ...Option) *DiffResult {
	t.Helper()
	result, err := DiffSlices(old, new,
		func(a, b string) bool { return a[0] == b[0] },
		func(a, b string) bool { return a == b },
		opts...)
	require.NoError(t, err)
	return result
}

func TestDiffResult_EdgeDiagonals(t *testing.T) {
	tests := []struct {
		name     string
		old, new []string
		want     []Diagonal
	}{
		{
			name: "first diagonal at origin",
			old:  []string{"a", "b"},
			new:  []string{"a", "c"},
			want: []Diagonal{{X: 0, Y: 0, Size: 1}, {X: 2, Y: 2, Size: 0}},
		},
		{
			name: "origin sentinel added",
			old:  []string{"x", "a"},
			new:  []string{"a"},
			want: []Diagonal{{X: 0, Y: 0, Size: 0}, {X: 1, Y: 0, Size: 1}, {X: 2, Y: 1, Size: 0}},
		},
		{
			name: "no matches",
			old:  []string{"a"},
			new:  []string{"b", "c"},
			want: []Diagonal{{X: 0, Y: 0, Size: 0}, {X: 1, Y: 2, Size: 0}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Diff(tt.old, tt.new)
			require.NoError(t, err)
			assert.Equal(t, tt.want, result.Diagonals())
		})
	}
}

func TestDiffResult_Diagonals_ReturnsCopy(t *testing.T) {
	result, err := Diff([]string{"a"}, []string{"a"})
	require.NoError(t, err)
	d := result.Diagonals()
	d[0].Size = 100
	assert.Equal(t, 1, result.Diagonals()[0].Size)
}

func TestDiffResult_ConvertPositions(t *testing.T) {
	result, err := Diff([]string{"a", "b", "c"}, []string{"a", "c", "d"})
	require.NoError(t, err)

	oldToNew := []int{0, NoPosition, 1}
	for oldPos, want := range oldToNew {
		got, err := result.ConvertOldPositionToNew(oldPos)
		require.NoError(t, err)
		assert.Equal(t, want, got, "old position %d", oldPos)
	}

	newToOld := []int{0, 2, NoPosition}
	for newPos, want := range newToOld {
		got, err := result.ConvertNewPositionToOld(newPos)
		require.NoError(t, err)
		assert.Equal(t, want, got, "new position %d", newPos)
	}
}

func TestDiffResult_ConvertPositions_OutOfBounds(t *testing.T) {
	result, err := Diff([]string{"a", "b"}, []string{"a"})
	require.NoError(t, err)

	tests := []struct {
		name    string
		convert func(int) (int, error)
		index   int
		list    string
		size    int
	}{
		{"old negative", result.ConvertOldPositionToNew, -1, "old", 2},
		{"old past end", result.ConvertOldPositionToNew, 2, "old", 2},
		{"new negative", result.ConvertNewPositionToOld, -3, "new", 1},
		{"new past end", result.ConvertNewPositionToOld, 1, "new", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, err := tt.convert(tt.index)
			assert.Equal(t, NoPosition, pos)

			var posErr *PositionError
			require.True(t, errors.As(err, &posErr))
			assert.Equal(t, tt.index, posErr.Index)
			assert.Equal(t, tt.size, posErr.Size)
			assert.Equal(t, tt.list, posErr.List)
			assert.Contains(t, err.Error(), "out of bounds")
		})
	}
}

func TestDiffResult_StatusFlags(t *testing.T) {
	// A1 moves behind Z1 and changes to A2. B1 is removed, A3 is inserted.
	result := diffKeyed(t, []string{"A1", "B1", "Z1"}, []string{"Z1", "A2", "A3"})

	assert.Equal(t, 1<<flagOffset|flagMovedChanged, result.oldItemStatuses[0])
	assert.Equal(t, 0, result.oldItemStatuses[1])
	assert.Equal(t, 0<<flagOffset|flagNotChanged, result.oldItemStatuses[2])

	assert.Equal(t, 2<<flagOffset|flagNotChanged, result.newItemStatuses[0])
	assert.Equal(t, 0<<flagOffset|flagMovedChanged, result.newItemStatuses[1])
	assert.Equal(t, 0, result.newItemStatuses[2])
	assert.Equal(t, 1, result.moveCount())
}

func TestDiffResult_MoveMatchingIsGreedy(t *testing.T) {
	// Old A1 is paired with the first A in the new list even though either
	// would do.
	result := diffKeyed(t, []string{"A1", "B1", "Z1"}, []string{"Z1", "A1", "A3"})

	newPos, err := result.ConvertOldPositionToNew(0)
	require.NoError(t, err)
	assert.Equal(t, 1, newPos)

	oldPos, err := result.ConvertNewPositionToOld(2)
	require.NoError(t, err)
	assert.Equal(t, NoPosition, oldPos)
}

func TestDiffResult_WithoutMoveDetection(t *testing.T) {
	result := diffKeyed(t, []string{"A1", "B1", "Z1"}, []string{"Z1", "A2", "A3"}, WithDetectMoves(false))
	assert.False(t, result.DetectMoves())
	assert.Equal(t, 0, result.moveCount())

	newPos, err := result.ConvertOldPositionToNew(0)
	require.NoError(t, err)
	assert.Equal(t, NoPosition, newPos)
}

func TestDiffResult_Sizes(t *testing.T) {
	result, err := Diff([]string{"a", "b", "c"}, []string{"a"})
	require.NoError(t, err)
	assert.Equal(t, 3, result.OldListSize())
	assert.Equal(t, 1, result.NewListSize())
	assert.True(t, result.DetectMoves())
}
