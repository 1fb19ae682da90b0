package grid

import "fmt"

// Table is a resolved grid folded into a tree.
type Table struct {
	Start, End Position
	Rows       []*Row
}

// Row is one row of a Table; each row has its own section.
type Row struct {
	Start, End Position
	Cells      []Cell
}

// Cell is one cell of a Row. Text is decoded; Empty is set when the cell has
// no content at all.
type Cell struct {
	Start, End Position
	Text       string
	Empty      bool
}

// Build folds a resolved event sequence into tables. Events outside the
// structural kinds are ignored.
func Build(events []Event, source []byte) ([]*Table, error) {
	var (
		tables []*Table
		table  *Table
		row    *Row
		cell   *Cell
	)

	for idx, event := range events {
		tok := event.Token
		switch {
		case event.Is(Enter, KindTable):
			table = &Table{Start: tok.Start}
		case event.Is(Exit, KindTable):
			if table == nil {
				return nil, &BalanceError{Index: idx, Message: "table exit without enter"}
			}
			table.End = tok.End()
			tables = append(tables, table)
			table = nil
		case event.Is(Enter, KindRow):
			if table == nil {
				return nil, &BalanceError{Index: idx, Message: "row outside a table"}
			}
			row = &Row{Start: tok.Start}
		case event.Is(Exit, KindRow):
			if row == nil {
				return nil, &BalanceError{Index: idx, Message: "row exit without enter"}
			}
			row.End = tok.End()
			table.Rows = append(table.Rows, row)
			row = nil
		case event.Is(Enter, KindCell):
			if row == nil {
				return nil, &BalanceError{Index: idx, Message: "cell outside a row"}
			}
			cell = &Cell{Start: tok.Start, Empty: true}
		case event.Is(Exit, KindCell):
			if cell == nil {
				return nil, &BalanceError{Index: idx, Message: "cell exit without enter"}
			}
			cell.End = tok.End()
			row.Cells = append(row.Cells, *cell)
			cell = nil
		case event.Is(Enter, KindText):
			if cell == nil {
				return nil, &BalanceError{Index: idx, Message: fmt.Sprintf("text at %s outside a cell", tok.Start)}
			}
			cell.Text += Text(source, tok)
			cell.Empty = false
		}
	}

	if table != nil {
		return nil, &BalanceError{Index: len(events), Message: "table not exited"}
	}
	return tables, nil
}

// Cells returns the cell texts of every row of t.
func (t *Table) Cells() [][]string {
	out := make([][]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		texts := make([]string, 0, len(row.Cells))
		for _, cell := range row.Cells {
			texts = append(texts, cell.Text)
		}
		out = append(out, texts)
	}
	return out
}
