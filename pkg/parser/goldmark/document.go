package goldmark

import (
	"fmt"
	"io"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"

	"github.com/yaklabco/gridmark/pkg/grid"
	"github.com/yaklabco/gridmark/pkg/grid/gridext"
)

// Document is a parsed Markdown file.
type Document struct {
	// Path is the file path (used for diagnostics).
	Path string

	// Content is a private copy of the parsed bytes.
	Content []byte

	// Root is the goldmark syntax tree.
	Root ast.Node

	// Grids holds every resolved grid in document order.
	Grids []*gridext.Grid

	renderer renderer.Renderer
}

// Render writes the document as HTML.
func (d *Document) Render(w io.Writer) error {
	return d.renderer.Render(w, d.Content, d.Root)
}

// Flat returns the recognizer events of all grids, grid by grid.
func (d *Document) Flat() []grid.Event {
	var out []grid.Event
	for _, g := range d.Grids {
		out = append(out, g.Log.Events()...)
	}
	return out
}

// Events returns the resolved events of all grids, grid by grid.
func (d *Document) Events() []grid.Event {
	var out []grid.Event
	for _, g := range d.Grids {
		out = append(out, g.Events...)
	}
	return out
}

// Tables folds every grid into its table tree.
func (d *Document) Tables() ([]*grid.Table, error) {
	tables := make([]*grid.Table, 0, len(d.Grids))
	for _, g := range d.Grids {
		built, err := grid.Build(g.Events, d.Content)
		if err != nil {
			return nil, fmt.Errorf("grid at line %d: %w", g.Line(), err)
		}
		tables = append(tables, built...)
	}
	return tables, nil
}

// Check runs the structural checks on every grid.
func (d *Document) Check() error {
	for _, g := range d.Grids {
		for _, check := range []func([]grid.Event) error{
			grid.CheckBalance,
			grid.CheckMonotonic,
			grid.CheckCoverage,
		} {
			if err := check(g.Events); err != nil {
				return fmt.Errorf("%s: grid at line %d: %w", d.Path, g.Line(), err)
			}
		}
	}
	return nil
}

// Counts returns the number of tables, rows and cells in the document.
func (d *Document) Counts() (int, int, int) {
	var rows, cells int
	for _, g := range d.Grids {
		rows += len(g.Rows)
		for _, event := range g.Events {
			if event.Is(grid.Enter, grid.KindCell) {
				cells++
			}
		}
	}
	return len(d.Grids), rows, cells
}
