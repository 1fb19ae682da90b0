package grid

// stateFn is one state of the row recognizer. It returns the next state, or
// nil once the row is complete.
type stateFn func(t Tape) stateFn

// Recognize attempts to read one grid row from t. It returns false without
// recording anything when the line is a lazy paragraph continuation or does
// not start with '|'. Otherwise it records the row and returns true; a row
// ends at the first line ending or EOF.
func Recognize(t Tape) bool {
	if t.Lazy() || t.Peek() != '|' {
		return false
	}

	t.Enter(KindRow)
	for state := stateFn(barOrContent); state != nil; {
		state = state(t)
	}

	return true
}

func barOrContent(t Tape) stateFn {
	char := t.Peek()

	switch {
	case char == EOF || isLineEnding(char):
		t.Exit(KindRow)
		return nil
	case char == '|':
		t.Enter(KindBarMarker)
		t.Exit(KindBarMarker)
		t.Consume()
		return barOrContent
	case isSpace(char):
		t.Enter(KindWhitespace)
		for isSpace(t.Peek()) {
			t.Consume()
		}
		t.Exit(KindWhitespace)
		return barOrContent
	default:
		t.Enter(KindData)
		return cellData
	}
}

func cellData(t Tape) stateFn {
	char := t.Peek()
	if char == EOF || char == '|' || isLineEnding(char) || isSpace(char) {
		t.Exit(KindData)
		return barOrContent
	}

	t.Consume()
	if char == '\\' {
		return cellEscape
	}
	return cellData
}

// cellEscape keeps an escaped bar or backslash inside the data run.
func cellEscape(t Tape) stateFn {
	if char := t.Peek(); char == '\\' || char == '|' {
		t.Consume()
	}
	return cellData
}

func isSpace(char int) bool {
	return char == ' ' || char == '\t'
}

func isLineEnding(char int) bool {
	return char == '\n' || char == '\r'
}
