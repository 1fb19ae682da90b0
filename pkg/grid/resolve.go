package grid

import "fmt"

// Range is the pending cell of the row being resolved. Fields are indices into
// the original event sequence; zero means unset, which is safe because index
// zero always holds the first row's Enter.
type Range struct {
	// Boundary is where the previous cell closes, set for every cell but the
	// first of a row.
	Boundary int
	// Start is where this cell opens.
	Start int
	// DataStart is the Enter of the first data run of the cell.
	DataStart int
	// DataEnd is the Exit of the last data run of the cell.
	DataEnd int
}

// resolver holds the state of a single Resolve pass.
type resolver struct {
	events []Event
	ledger Ledger

	table       *Token
	lastRowExit int

	inRow    bool
	section  *Token
	pending  Range
	boundary int
	cell     *Token
}

// Resolve turns the flat events of one container into nested structure: all
// rows form one table, each row sits in its own section, and each row is
// split into cells. Cell text is merged into one text token wrapped in cell
// content; data and whitespace events inside it are dropped.
//
// A cell is a maximal run of data separated only by whitespace; runs of bars
// separate cells. A row without data has exactly one empty cell.
//
// The input is not modified. The returned error is a *ConsistencyError,
// *RangeError or *OverlapError when the events cannot be structured.
func Resolve(events []Event) ([]Event, error) {
	r := &resolver{events: events, lastRowExit: -1}

	for idx, event := range events {
		if err := r.step(idx, event); err != nil {
			return nil, err
		}
	}

	if r.inRow {
		return nil, &ConsistencyError{Index: len(events), Message: "row not exited"}
	}
	if r.table != nil {
		r.table.Finalize(r.point(r.lastRowExit))
		r.ledger.Add(r.lastRowExit+1, 0, Event{Phase: Exit, Token: r.table})
	}

	return r.ledger.Apply(events)
}

func (r *resolver) step(idx int, event Event) error {
	if event.Is(Enter, KindRow) {
		return r.enterRow(idx, event)
	}
	if !r.inRow {
		return &ConsistencyError{
			Index:   idx,
			Message: fmt.Sprintf("%s %s outside a row", event.Phase, event.Token.Kind),
		}
	}

	switch {
	case event.Is(Enter, KindBarMarker):
		if r.pending.DataStart != 0 && r.boundary == 0 {
			r.boundary = idx
		}
	case event.Is(Enter, KindData):
		switch {
		case r.pending.DataStart == 0:
			r.pending.DataStart = idx
		case r.boundary != 0:
			if err := r.flush(r.pending, -1); err != nil {
				return err
			}
			r.pending = Range{Boundary: r.boundary, Start: r.boundary, DataStart: idx}
			r.boundary = 0
		}
	case event.Is(Exit, KindData):
		r.pending.DataEnd = idx
	case event.Is(Exit, KindRow):
		return r.exitRow(idx, event)
	}

	return nil
}

func (r *resolver) enterRow(idx int, event Event) error {
	if r.inRow {
		return &ConsistencyError{Index: idx, Message: "row entered inside a row"}
	}

	start := event.Token.Start
	if r.table == nil {
		r.table = NewToken(KindTable, start)
		r.ledger.Add(idx, 0, Event{Phase: Enter, Token: r.table})
	}
	r.section = NewToken(KindSection, start)
	r.ledger.Add(idx, 0, Event{Phase: Enter, Token: r.section})

	r.inRow = true
	r.pending = Range{Start: idx + 1}
	r.boundary = 0
	r.cell = nil
	return nil
}

func (r *resolver) exitRow(idx int, event Event) error {
	if err := r.flush(r.pending, idx); err != nil {
		return err
	}

	r.section.Finalize(event.Token.End())
	r.ledger.Add(idx+1, 0, Event{Phase: Exit, Token: r.section})

	r.inRow = false
	r.lastRowExit = idx
	return nil
}

// flush emits the pending cell. When rowEnd is non-negative the cell is the
// last of its row and closes at rowEnd; otherwise it stays open until the
// next boundary.
func (r *resolver) flush(pending Range, rowEnd int) error {
	if pending.Boundary != 0 {
		if r.cell == nil {
			return &ConsistencyError{Index: pending.Boundary, Message: "cell boundary without an open cell"}
		}
		r.cell.Finalize(r.point(pending.Boundary))
		r.ledger.Add(pending.Boundary, 0, Event{Phase: Exit, Token: r.cell})
		r.cell = nil
	}

	cell := NewToken(KindCell, r.point(pending.Start))
	r.ledger.Add(pending.Start, 0, Event{Phase: Enter, Token: cell})

	if pending.DataStart != 0 {
		if pending.DataEnd < pending.DataStart {
			return &ConsistencyError{Index: pending.DataStart, Message: "data run not exited"}
		}
		start := r.events[pending.DataStart].Token.Start
		end := r.events[pending.DataEnd].Token.End()

		content := NewToken(KindCellContent, start)
		content.ContentKind = ContentText
		content.Finalize(end)
		text := NewToken(KindText, start)
		text.ContentKind = ContentText
		text.Finalize(end)

		r.ledger.Add(pending.DataStart, pending.DataEnd-pending.DataStart+1,
			Event{Phase: Enter, Token: content},
			Event{Phase: Enter, Token: text},
			Event{Phase: Exit, Token: text},
			Event{Phase: Exit, Token: content},
		)
	}

	if rowEnd < 0 {
		r.cell = cell
		return nil
	}
	cell.Finalize(r.point(rowEnd))
	r.ledger.Add(rowEnd, 0, Event{Phase: Exit, Token: cell})
	return nil
}

func (r *resolver) point(idx int) Position {
	return r.events[idx].Point()
}
