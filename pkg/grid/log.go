package grid

import "fmt"

// Log is the append-only event sequence recognized in one flow container.
// Every Enter is matched by an Exit of the same kind before the log is resolved.
type Log struct {
	source []byte
	events []Event
	open   []*Token
}

// NewLog creates an empty log over source. Positions recorded in the log are
// offsets into source.
func NewLog(source []byte) *Log {
	return &Log{source: source}
}

// Source returns the text the log's positions refer to.
func (l *Log) Source() []byte {
	return l.source
}

// Events returns the recorded events. The slice is owned by the log.
func (l *Log) Events() []Event {
	return l.events
}

// Len returns the number of recorded events.
func (l *Log) Len() int {
	return len(l.events)
}

// Open returns the number of tokens entered but not yet exited.
func (l *Log) Open() int {
	return len(l.open)
}

// Enter opens a token of kind at pos and records its Enter event.
func (l *Log) Enter(kind Kind, pos Position) *Token {
	tok := NewToken(kind, pos)
	if kind == KindData {
		tok.ContentKind = ContentRaw
	}
	l.open = append(l.open, tok)
	l.events = append(l.events, Event{Phase: Enter, Token: tok})
	return tok
}

// Exit closes the innermost open token at pos and records its Exit event.
// Exiting a kind other than the innermost open one is a recognizer defect and
// panics.
func (l *Log) Exit(kind Kind, pos Position) *Token {
	if len(l.open) == 0 {
		panic(fmt.Sprintf("grid: exit %s at %s with no open token", kind, pos))
	}
	tok := l.open[len(l.open)-1]
	if tok.Kind != kind {
		panic(fmt.Sprintf("grid: exit %s at %s while %s is open", kind, pos, tok.Kind))
	}
	l.open = l.open[:len(l.open)-1]
	tok.Finalize(pos)
	l.events = append(l.events, Event{Phase: Exit, Token: tok})
	return tok
}

// Slice returns the source bytes spanned by tok.
func (l *Log) Slice(tok *Token) []byte {
	return Slice(l.source, tok)
}

// Slice returns the bytes of source spanned by tok, or nil when the token does
// not fit inside source.
func Slice(source []byte, tok *Token) []byte {
	start, end := tok.Start.Offset, tok.End().Offset
	if start < 0 || end > len(source) || start > end {
		return nil
	}
	return source[start:end]
}
