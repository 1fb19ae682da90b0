package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gridmark/pkg/grid"
)

// describe renders events as "phase kind" strings.
func describe(events []grid.Event) []string {
	out := make([]string, 0, len(events))
	for _, event := range events {
		out = append(out, event.Phase.String()+" "+event.Token.Kind.String())
	}
	return out
}

// dataTexts returns the raw source of every data token in the log.
func dataTexts(log *grid.Log) []string {
	var out []string
	for _, event := range log.Events() {
		if event.Is(grid.Exit, grid.KindData) {
			out = append(out, string(log.Slice(event.Token)))
		}
	}
	return out
}

func TestRecognizeSingleRow(t *testing.T) {
	t.Parallel()

	log := grid.Scan([]byte("|| Am ||"))

	assert.Equal(t, []string{
		"enter gridRow",
		"enter gridBarMarker", "exit gridBarMarker",
		"enter gridBarMarker", "exit gridBarMarker",
		"enter whitespace", "exit whitespace",
		"enter data", "exit data",
		"enter whitespace", "exit whitespace",
		"enter gridBarMarker", "exit gridBarMarker",
		"enter gridBarMarker", "exit gridBarMarker",
		"exit gridRow",
	}, describe(log.Events()))
	assert.Equal(t, []string{"Am"}, dataTexts(log))
	assert.Zero(t, log.Open())
}

func TestRecognizeDataRuns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "escaped bar stays in data", input: `||A\|B||`, want: []string{`A\|B`}},
		{name: "escaped backslash ends before bar", input: `|a\\|b|`, want: []string{`a\\`, "b"}},
		{name: "other escapes are literal", input: `| a\b |`, want: []string{`a\b`}},
		{name: "trailing backslash", input: "|a\\\n", want: []string{`a\`}},
		{name: "whitespace splits data", input: "| A  B\t|", want: []string{"A", "B"}},
		{name: "no closing bar", input: "|| Am", want: []string{"Am"}},
		{name: "bars only", input: "||||", want: nil},
		{name: "multiple cells", input: "|| Am | B | C7 | D ||", want: []string{"Am", "B", "C7", "D"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			log := grid.Scan([]byte(tt.input))
			assert.Equal(t, tt.want, dataTexts(log))
			require.NoError(t, grid.CheckBalance(log.Events()))
			require.NoError(t, grid.CheckMonotonic(log.Events()))
		})
	}
}

func TestRecognizeRejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		lazy  bool
	}{
		{name: "does not start with bar", input: "Am || C ||"},
		{name: "empty line", input: ""},
		{name: "lazy continuation", input: "|| Am ||", lazy: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			source := []byte(tt.input)
			log := grid.NewLog(source)
			tape := grid.NewLineTape(log, grid.NewLineIndex(source), 0, len(source), tt.lazy)

			assert.False(t, grid.Recognize(tape))
			assert.Zero(t, log.Len())
			assert.Zero(t, tape.Offset())
		})
	}
}

func TestRecognizeStopsAtLineEnding(t *testing.T) {
	t.Parallel()

	source := []byte("|| A ||\r\nnext")
	log := grid.NewLog(source)
	tape := grid.NewLineTape(log, grid.NewLineIndex(source), 0, len(source), false)

	require.True(t, grid.Recognize(tape))
	assert.Equal(t, 7, tape.Offset())

	events := log.Events()
	row := events[len(events)-1]
	require.True(t, row.Is(grid.Exit, grid.KindRow))
	assert.Equal(t, grid.Position{Offset: 0, Line: 1, Column: 1}, row.Token.Start)
	assert.Equal(t, grid.Position{Offset: 7, Line: 1, Column: 8}, row.Token.End())
}

func TestScanSkipsOtherLines(t *testing.T) {
	t.Parallel()

	log := grid.Scan([]byte("# Song\n\n  || Am ||\ntext\n"))

	var rows []grid.Position
	for _, event := range log.Events() {
		if event.Is(grid.Enter, grid.KindRow) {
			rows = append(rows, event.Token.Start)
		}
	}

	require.Len(t, rows, 1)
	assert.Equal(t, grid.Position{Offset: 10, Line: 3, Column: 3}, rows[0])
}
