package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gridmark/pkg/grid"
)

// marker builds a distinguishable Enter event; the column doubles as a label.
func marker(label int) grid.Event {
	return grid.Event{Phase: grid.Enter, Token: grid.NewToken(grid.KindData, grid.Position{Offset: label, Line: 1, Column: label + 1})}
}

func labels(events []grid.Event) []int {
	out := make([]int, 0, len(events))
	for _, event := range events {
		out = append(out, event.Token.Start.Offset)
	}
	return out
}

func originals(count int) []grid.Event {
	events := make([]grid.Event, count)
	for idx := range events {
		events[idx] = marker(idx)
	}
	return events
}

func TestLedgerApply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		count int
		setup func(l *grid.Ledger)
		want  []int
	}{
		{
			name:  "no operations",
			count: 3,
			setup: func(*grid.Ledger) {},
			want:  []int{0, 1, 2},
		},
		{
			name:  "insert before index",
			count: 3,
			setup: func(l *grid.Ledger) { l.Add(1, 0, marker(10)) },
			want:  []int{0, 10, 1, 2},
		},
		{
			name:  "same index keeps registration order",
			count: 2,
			setup: func(l *grid.Ledger) {
				l.Add(1, 0, marker(10))
				l.Add(1, 0, marker(11), marker(12))
			},
			want: []int{0, 10, 11, 12, 1},
		},
		{
			name:  "operations registered out of order",
			count: 4,
			setup: func(l *grid.Ledger) {
				l.Add(3, 0, marker(13))
				l.Add(0, 0, marker(10))
				l.Add(2, 0, marker(12))
			},
			want: []int{10, 0, 1, 12, 2, 13, 3},
		},
		{
			name:  "append at length",
			count: 2,
			setup: func(l *grid.Ledger) {
				l.Add(2, 0, marker(10))
				l.Add(2, 0, marker(11))
			},
			want: []int{0, 1, 10, 11},
		},
		{
			name:  "replace a span",
			count: 5,
			setup: func(l *grid.Ledger) { l.Add(1, 3, marker(10), marker(11)) },
			want:  []int{0, 10, 11, 4},
		},
		{
			name:  "insert inside removed span is still emitted",
			count: 4,
			setup: func(l *grid.Ledger) {
				l.Add(0, 3)
				l.Add(1, 0, marker(10))
			},
			want: []int{10, 3},
		},
		{
			name:  "adjacent removals",
			count: 4,
			setup: func(l *grid.Ledger) {
				l.Add(2, 2, marker(11))
				l.Add(0, 2, marker(10))
			},
			want: []int{10, 11},
		},
		{
			name:  "operations on empty sequence",
			count: 0,
			setup: func(l *grid.Ledger) { l.Add(0, 0, marker(10)) },
			want:  []int{10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var ledger grid.Ledger
			tt.setup(&ledger)

			got, err := ledger.Apply(originals(tt.count))
			require.NoError(t, err)
			assert.Equal(t, tt.want, labels(got))
		})
	}
}

func TestLedgerApplyErrors(t *testing.T) {
	t.Parallel()

	t.Run("remove past end", func(t *testing.T) {
		t.Parallel()

		var ledger grid.Ledger
		ledger.Add(2, 2)

		got, err := ledger.Apply(originals(3))
		require.Error(t, err)
		assert.Nil(t, got)

		var rangeErr *grid.RangeError
		require.ErrorAs(t, err, &rangeErr)
		assert.Equal(t, 2, rangeErr.Index)
		assert.Equal(t, 3, rangeErr.Len)
	})

	t.Run("negative index", func(t *testing.T) {
		t.Parallel()

		var ledger grid.Ledger
		ledger.Add(-1, 0, marker(1))

		_, err := ledger.Apply(originals(3))
		var rangeErr *grid.RangeError
		require.ErrorAs(t, err, &rangeErr)
	})

	t.Run("overlapping removals", func(t *testing.T) {
		t.Parallel()

		var ledger grid.Ledger
		ledger.Add(0, 3)
		ledger.Add(2, 1)

		_, err := ledger.Apply(originals(4))
		var overlapErr *grid.OverlapError
		require.ErrorAs(t, err, &overlapErr)
		assert.Equal(t, 2, overlapErr.Index)
		assert.Equal(t, 3, overlapErr.PrevEnd)
	})

	t.Run("applied twice", func(t *testing.T) {
		t.Parallel()

		var ledger grid.Ledger
		ledger.Add(0, 0, marker(1))

		_, err := ledger.Apply(originals(1))
		require.NoError(t, err)

		_, err = ledger.Apply(originals(1))
		require.ErrorIs(t, err, grid.ErrLedgerConsumed)
	})
}

func TestLedgerApplyDoesNotModifyInput(t *testing.T) {
	t.Parallel()

	events := originals(3)
	var ledger grid.Ledger
	ledger.Add(0, 2, marker(10))

	_, err := ledger.Apply(events)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, labels(events))
}
