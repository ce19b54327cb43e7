package listdiff

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBatchingCallback(t *testing.T) {
	tests := []struct {
		name  string
		calls func(b *BatchingCallback)
		want  []Update
	}{
		{
			name: "inserts at same position",
			calls: func(b *BatchingCallback) {
				b.OnInserted(3, 1)
				b.OnInserted(3, 2)
			},
			want: []Update{{Type: Insert, Position: 3, Count: 3}},
		},
		{
			name: "insert right after previous",
			calls: func(b *BatchingCallback) {
				b.OnInserted(3, 2)
				b.OnInserted(5, 1)
			},
			want: []Update{{Type: Insert, Position: 3, Count: 3}},
		},
		{
			name: "non adjacent inserts",
			calls: func(b *BatchingCallback) {
				b.OnInserted(3, 1)
				b.OnInserted(1, 1)
			},
			want: []Update{
				{Type: Insert, Position: 3, Count: 1},
				{Type: Insert, Position: 1, Count: 1},
			},
		},
		{
			name: "removals walking backwards",
			calls: func(b *BatchingCallback) {
				b.OnRemoved(4, 1)
				b.OnRemoved(3, 1)
				b.OnRemoved(1, 2)
			},
			want: []Update{{Type: Remove, Position: 1, Count: 4}},
		},
		{
			name: "non adjacent removals",
			calls: func(b *BatchingCallback) {
				b.OnRemoved(4, 1)
				b.OnRemoved(1, 1)
			},
			want: []Update{
				{Type: Remove, Position: 4, Count: 1},
				{Type: Remove, Position: 1, Count: 1},
			},
		},
		{
			name: "overlapping changes",
			calls: func(b *BatchingCallback) {
				b.OnChanged(2, 2, false)
				b.OnChanged(1, 2, false)
				b.OnChanged(4, 1, false)
			},
			want: []Update{{Type: Change, Position: 1, Count: 4}},
		},
		{
			name: "changes with different move flags",
			calls: func(b *BatchingCallback) {
				b.OnChanged(2, 1, false)
				b.OnChanged(3, 1, true)
			},
			want: []Update{
				{Type: Change, Position: 2, Count: 1},
				{Type: Change, Position: 3, Count: 1, IsMove: true},
			},
		},
		{
			name: "moves are never merged",
			calls: func(b *BatchingCallback) {
				b.OnInserted(0, 1)
				b.OnMoved(1, 2)
				b.OnMoved(2, 3)
				b.OnInserted(0, 1)
			},
			want: []Update{
				{Type: Insert, Position: 0, Count: 1},
				{Type: Move, From: 1, To: 2},
				{Type: Move, From: 2, To: 3},
				{Type: Insert, Position: 0, Count: 1},
			},
		},
		{
			name: "type switch flushes",
			calls: func(b *BatchingCallback) {
				b.OnRemoved(2, 1)
				b.OnInserted(2, 1)
				b.OnChanged(2, 1, false)
			},
			want: []Update{
				{Type: Remove, Position: 2, Count: 1},
				{Type: Insert, Position: 2, Count: 1},
				{Type: Change, Position: 2, Count: 1},
			},
		},
		{
			name:  "nothing pending",
			calls: func(b *BatchingCallback) {},
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &UpdateRecorder{}
			b := NewBatchingCallback(rec)
			tt.calls(b)
			b.DispatchLastEvent()
			assert.Equal(t, tt.want, rec.Updates)
		})
	}
}

func TestBatchingCallback_HoldsUntilFlushed(t *testing.T) {
	rec := &UpdateRecorder{}
	b := NewBatchingCallback(rec)
	b.OnInserted(0, 1)
	assert.Empty(t, rec.Updates)
	b.DispatchLastEvent()
	assert.Len(t, rec.Updates, 1)
	b.DispatchLastEvent()
	assert.Len(t, rec.Updates, 1)
}

func TestNewBatchingCallback(t *testing.T) {
	rec := &UpdateRecorder{FinalPositions: true}
	b := NewBatchingCallback(rec)
	assert.True(t, b.UseFinalPosition())
	assert.Same(t, b, NewBatchingCallback(b))
}
