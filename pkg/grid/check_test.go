package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gridmark/pkg/grid"
)

func at(offset int) grid.Position {
	return grid.Position{Offset: offset, Line: 1, Column: offset + 1}
}

func span(kind grid.Kind, start, end int) *grid.Token {
	tok := grid.NewToken(kind, at(start))
	tok.Finalize(at(end))
	return tok
}

func TestCheckBalance(t *testing.T) {
	t.Parallel()

	row := span(grid.KindRow, 0, 4)
	cell := span(grid.KindCell, 0, 4)

	tests := []struct {
		name    string
		events  []grid.Event
		wantErr bool
	}{
		{name: "empty", events: nil},
		{
			name: "nested",
			events: []grid.Event{
				{Phase: grid.Enter, Token: row},
				{Phase: grid.Enter, Token: cell},
				{Phase: grid.Exit, Token: cell},
				{Phase: grid.Exit, Token: row},
			},
		},
		{
			name: "crossed",
			events: []grid.Event{
				{Phase: grid.Enter, Token: row},
				{Phase: grid.Enter, Token: cell},
				{Phase: grid.Exit, Token: row},
				{Phase: grid.Exit, Token: cell},
			},
			wantErr: true,
		},
		{
			name:    "exit without enter",
			events:  []grid.Event{{Phase: grid.Exit, Token: row}},
			wantErr: true,
		},
		{
			name:    "left open",
			events:  []grid.Event{{Phase: grid.Enter, Token: row}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := grid.CheckBalance(tt.events)
			if tt.wantErr {
				var balanceErr *grid.BalanceError
				require.ErrorAs(t, err, &balanceErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestCheckMonotonic(t *testing.T) {
	t.Parallel()

	late := span(grid.KindData, 5, 6)
	early := span(grid.KindData, 1, 2)

	err := grid.CheckMonotonic([]grid.Event{
		{Phase: grid.Enter, Token: late},
		{Phase: grid.Exit, Token: late},
		{Phase: grid.Enter, Token: early},
	})
	var balanceErr *grid.BalanceError
	require.ErrorAs(t, err, &balanceErr)
	assert.Equal(t, 2, balanceErr.Index)
}

func TestCheckCoverage(t *testing.T) {
	t.Parallel()

	t.Run("table shorter than rows", func(t *testing.T) {
		t.Parallel()

		table := span(grid.KindTable, 0, 3)
		row := span(grid.KindRow, 0, 4)
		err := grid.CheckCoverage([]grid.Event{
			{Phase: grid.Enter, Token: table},
			{Phase: grid.Enter, Token: row},
			{Phase: grid.Exit, Token: row},
			{Phase: grid.Exit, Token: table},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "does not span")
	})

	t.Run("cell outside row", func(t *testing.T) {
		t.Parallel()

		row := span(grid.KindRow, 0, 4)
		cell := span(grid.KindCell, 2, 6)
		err := grid.CheckCoverage([]grid.Event{
			{Phase: grid.Enter, Token: row},
			{Phase: grid.Enter, Token: cell},
			{Phase: grid.Exit, Token: cell},
			{Phase: grid.Exit, Token: row},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "outside its row")
	})
}

func TestDecode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want string
	}{
		{raw: "Am", want: "Am"},
		{raw: `A\|B`, want: "A|B"},
		{raw: `a\\`, want: `a\`},
		{raw: `a\b`, want: `a\b`},
		{raw: `\`, want: `\`},
		{raw: `\\\|`, want: `\|`},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			t.Parallel()

			raw := []byte(tt.raw)
			assert.Equal(t, tt.want, string(grid.Decode(raw)))
			assert.Equal(t, tt.raw, string(raw))
			// Decoding the same slice again gives the same text.
			assert.Equal(t, tt.want, string(grid.Decode(raw)))
		})
	}
}

func TestLineIndexPosition(t *testing.T) {
	t.Parallel()

	index := grid.NewLineIndex([]byte("ab\r\ncd\n"))

	tests := []struct {
		offset int
		want   grid.Position
	}{
		{offset: 0, want: grid.Position{Offset: 0, Line: 1, Column: 1}},
		{offset: 2, want: grid.Position{Offset: 2, Line: 1, Column: 3}},
		{offset: 4, want: grid.Position{Offset: 4, Line: 2, Column: 1}},
		{offset: 7, want: grid.Position{Offset: 7, Line: 3, Column: 1}},
		{offset: 99, want: grid.Position{Offset: 7, Line: 3, Column: 1}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, index.Position(tt.offset), "offset %d", tt.offset)
	}
	assert.Len(t, index.Lines(), 3)
}

func TestKindString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "grid", grid.KindTable.String())
	assert.Equal(t, "gridContent", grid.KindCellContent.String())
	assert.Equal(t, "Kind(42)", grid.Kind(42).String())
	assert.True(t, grid.KindCell.Structural())
	assert.False(t, grid.KindBarMarker.Structural())
}
