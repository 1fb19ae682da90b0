// Package grid recognizes bar-delimited grid rows (songbook chord grids such as
// "|| Am | C7 ||") and resolves the flat recognizer events into a nested
// table/section/row/cell/content structure.
//
// The package is host-agnostic: a Tape feeds characters to Recognize, which
// appends Enter/Exit events to a Log. Once every row of a container has been
// recognized, Resolve rewrites the flat sequence through a single Ledger pass.
package grid

import (
	"fmt"
	"sort"
)

// Position is a point in the source text.
type Position struct {
	// Offset is the byte index into the source.
	Offset int

	// Line is the 1-based line number.
	Line int

	// Column is the 1-based column, counted in bytes.
	Column int
}

// String formats the position as "line:column".
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// IsValid reports whether the position carries line information.
func (p Position) IsValid() bool {
	return p.Line > 0 && p.Column > 0 && p.Offset >= 0
}

// LineInfo describes the byte span of one source line.
type LineInfo struct {
	// StartOffset is the byte index of the first character of the line.
	StartOffset int

	// NewlineStart is the byte index where the line ending begins
	// (len(source) when the last line has no ending).
	NewlineStart int

	// EndOffset is the byte index just past the line ending.
	EndOffset int
}

// LineIndex maps byte offsets to line/column positions.
type LineIndex struct {
	size  int
	lines []LineInfo
}

// NewLineIndex builds the line table for source. LF and CRLF endings are
// both recognized.
func NewLineIndex(source []byte) *LineIndex {
	var lines []LineInfo
	lineStart := 0

	for idx, char := range source {
		if char != '\n' {
			continue
		}
		newlineStart := idx
		if idx > 0 && source[idx-1] == '\r' {
			newlineStart = idx - 1
		}
		lines = append(lines, LineInfo{
			StartOffset:  lineStart,
			NewlineStart: newlineStart,
			EndOffset:    idx + 1,
		})
		lineStart = idx + 1
	}

	// The last line may be empty or lack a line ending.
	lines = append(lines, LineInfo{
		StartOffset:  lineStart,
		NewlineStart: len(source),
		EndOffset:    len(source),
	})

	return &LineIndex{size: len(source), lines: lines}
}

// Lines returns the line table.
func (x *LineIndex) Lines() []LineInfo {
	return x.lines
}

// Position converts a byte offset into a Position. Offsets past the end of the
// source are clamped to the end.
func (x *LineIndex) Position(offset int) Position {
	if offset < 0 {
		offset = 0
	}
	if offset > x.size {
		offset = x.size
	}

	lineIdx := sort.Search(len(x.lines), func(i int) bool {
		return x.lines[i].EndOffset > offset
	})
	if lineIdx >= len(x.lines) {
		lineIdx = len(x.lines) - 1
	}

	line := x.lines[lineIdx]
	return Position{
		Offset: offset,
		Line:   lineIdx + 1,
		Column: offset - line.StartOffset + 1,
	}
}
