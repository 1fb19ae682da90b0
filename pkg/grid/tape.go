package grid

// EOF is returned by Tape.Peek past the end of the input.
const EOF = -1

// Tape is the character stream a host scanner offers to Recognize. Enter and
// Exit record events at the current position.
type Tape interface {
	// Peek returns the current byte, or EOF.
	Peek() int
	// Consume advances past the current byte.
	Consume()
	// Now returns the current position.
	Now() Position
	// Lazy reports whether the line is a lazy continuation of a paragraph
	// opened in an enclosing container.
	Lazy() bool
	Enter(kind Kind) *Token
	Exit(kind Kind) *Token
}

// LineTape is a Tape over one line of a Log's source.
type LineTape struct {
	log   *Log
	index *LineIndex
	pos   int
	limit int
	lazy  bool
}

// NewLineTape returns a tape reading source[start:limit] of log. The limit
// normally includes the line ending so the recognizer sees it.
func NewLineTape(log *Log, index *LineIndex, start, limit int, lazy bool) *LineTape {
	if limit > len(log.source) {
		limit = len(log.source)
	}
	return &LineTape{log: log, index: index, pos: start, limit: limit, lazy: lazy}
}

func (t *LineTape) Peek() int {
	if t.pos >= t.limit {
		return EOF
	}
	return int(t.log.source[t.pos])
}

func (t *LineTape) Consume() {
	if t.pos < t.limit {
		t.pos++
	}
}

func (t *LineTape) Now() Position {
	return t.index.Position(t.pos)
}

func (t *LineTape) Lazy() bool {
	return t.lazy
}

func (t *LineTape) Enter(kind Kind) *Token {
	return t.log.Enter(kind, t.Now())
}

func (t *LineTape) Exit(kind Kind) *Token {
	return t.log.Exit(kind, t.Now())
}

// Offset returns the byte offset of the next unread byte.
func (t *LineTape) Offset() int {
	return t.pos
}

// Scan recognizes every line of source that starts (after indentation) with a
// bar. Lines are never lazy, so the result is the event log of a document
// without container structure.
func Scan(source []byte) *Log {
	log := NewLog(source)
	index := NewLineIndex(source)

	for _, line := range index.Lines() {
		start := line.StartOffset
		for start < line.NewlineStart && isSpace(int(source[start])) {
			start++
		}
		Recognize(NewLineTape(log, index, start, line.EndOffset, false))
	}

	return log
}
