// Package gridext plugs the grid recognizer and resolver into goldmark.
package gridext

import (
	"fmt"
	"strconv"

	"github.com/yuin/goldmark/ast"

	"github.com/yaklabco/gridmark/pkg/grid"
)

// KindRow is the node kind of a grid row.
var KindRow = ast.NewNodeKind("GridRow")

// Row is a block holding one recognized grid line. After the document is
// transformed, Events holds the row's share of the resolved table: the first
// row of a table also carries the table's Enter and the last row its Exit.
type Row struct {
	ast.BaseBlock

	Events []grid.Event

	grid *Grid
}

// Kind implements ast.Node.
func (n *Row) Kind() ast.NodeKind {
	return KindRow
}

// IsRaw keeps goldmark from parsing the row's text as inline markdown.
func (n *Row) IsRaw() bool {
	return true
}

// Grid returns the table the row belongs to.
func (n *Row) Grid() *Grid {
	return n.grid
}

// Dump implements ast.Node.
func (n *Row) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{
		"Events": strconv.Itoa(len(n.Events)),
	}, nil)
}

// Grid is a run of adjacent sibling rows. Rows of one grid share an event log
// and resolve into one table.
type Grid struct {
	// Log holds the flat recognizer events of every row.
	Log *grid.Log

	// Rows are the row nodes in document order.
	Rows []*Row

	// Events is the resolved sequence; nil until resolved or when resolution failed.
	Events []grid.Event

	// Err is the resolution failure, if any.
	Err error
}

// resolve runs the structural resolver and hands each row its events.
func (g *Grid) resolve() error {
	resolved, err := grid.Resolve(g.Log.Events())
	if err != nil {
		g.Err = err
		return err
	}

	rowStart, lastStart := 0, 0
	next := 0
	for idx, event := range resolved {
		if !event.Is(grid.Exit, grid.KindSection) {
			continue
		}
		if next >= len(g.Rows) {
			return g.fail(&grid.ConsistencyError{Index: idx, Message: "more sections than rows"})
		}
		g.Rows[next].Events = resolved[rowStart : idx+1]
		lastStart, rowStart = rowStart, idx+1
		next++
	}
	if next == 0 || next != len(g.Rows) {
		return g.fail(&grid.ConsistencyError{
			Index:   len(resolved),
			Message: fmt.Sprintf("%d sections for %d rows", next, len(g.Rows)),
		})
	}

	// The table exit follows the last section.
	g.Rows[next-1].Events = resolved[lastStart:]
	g.Events = resolved
	return nil
}

func (g *Grid) fail(err error) error {
	for _, row := range g.Rows {
		row.Events = nil
	}
	g.Err = err
	return err
}

// Line returns the 1-based line of the grid's first row.
func (g *Grid) Line() int {
	events := g.Log.Events()
	if len(events) == 0 {
		return 0
	}
	return events[0].Token.Start.Line
}
