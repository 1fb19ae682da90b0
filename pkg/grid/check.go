package grid

import "fmt"

// CheckBalance verifies that every Exit closes the innermost open token and
// that no token is left open.
func CheckBalance(events []Event) error {
	var stack []*Token

	for idx, event := range events {
		if event.Phase == Enter {
			stack = append(stack, event.Token)
			continue
		}
		if len(stack) == 0 {
			return &BalanceError{Index: idx, Message: fmt.Sprintf("exit %s with nothing open", event.Token.Kind)}
		}
		top := stack[len(stack)-1]
		if top != event.Token {
			return &BalanceError{
				Index:   idx,
				Message: fmt.Sprintf("exit %s while %s is open", event.Token.Kind, top.Kind),
			}
		}
		stack = stack[:len(stack)-1]
	}

	if len(stack) > 0 {
		return &BalanceError{
			Index:   len(events),
			Message: fmt.Sprintf("%d tokens left open, innermost %s", len(stack), stack[len(stack)-1].Kind),
		}
	}
	return nil
}

// CheckMonotonic verifies that event positions never move backwards.
func CheckMonotonic(events []Event) error {
	for idx := 1; idx < len(events); idx++ {
		prev, cur := events[idx-1].Point(), events[idx].Point()
		if cur.Offset < prev.Offset {
			return &BalanceError{
				Index:   idx,
				Message: fmt.Sprintf("%s at %s precedes %s", events[idx], cur, prev),
			}
		}
	}
	return nil
}

// CheckCoverage verifies the spans of resolved structure: a table runs from
// the start of its first row to the end of its last row, a section covers
// exactly its row, and cells lie inside their row. The events must balance.
func CheckCoverage(events []Event) error {
	if err := CheckBalance(events); err != nil {
		return err
	}

	var (
		stack    []*Token
		firstRow *Token
		lastRow  *Token
	)

	for idx, event := range events {
		tok := event.Token
		if event.Phase == Enter {
			stack = append(stack, tok)
			continue
		}
		stack = stack[:len(stack)-1]

		var parent *Token
		if len(stack) > 0 {
			parent = stack[len(stack)-1]
		}

		switch tok.Kind {
		case KindRow:
			if firstRow == nil {
				firstRow = tok
			}
			lastRow = tok
			if parent != nil && parent.Kind == KindSection && !sameSpan(parent, tok) {
				return &BalanceError{Index: idx, Message: fmt.Sprintf("section %s-%s does not cover its row", parent.Start, parent.End())}
			}
		case KindCell:
			if parent == nil || parent.Kind != KindRow {
				return &BalanceError{Index: idx, Message: "cell outside a row"}
			}
			if tok.Start.Offset < parent.Start.Offset || tok.End().Offset > parent.End().Offset {
				return &BalanceError{Index: idx, Message: fmt.Sprintf("cell %s-%s outside its row", tok.Start, tok.End())}
			}
		case KindTable:
			if firstRow == nil {
				return &BalanceError{Index: idx, Message: "table without rows"}
			}
			if tok.Start.Offset != firstRow.Start.Offset || tok.End().Offset != lastRow.End().Offset {
				return &BalanceError{Index: idx, Message: fmt.Sprintf("table %s-%s does not span its rows", tok.Start, tok.End())}
			}
			firstRow, lastRow = nil, nil
		}
	}

	return nil
}

func sameSpan(a, b *Token) bool {
	return a.Start.Offset == b.Start.Offset && a.End().Offset == b.End().Offset
}
