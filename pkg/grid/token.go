package grid

import "fmt"

// Kind classifies a token in the grid event stream.
type Kind uint8

// Recognizer kinds come first; the remaining kinds are produced only by Resolve.
const (
	KindRow        Kind = iota // one source line of grid syntax
	KindBarMarker              // zero-width marker at each '|'
	KindData                   // a run of cell text
	KindWhitespace             // spaces or tabs between bars and text
	KindTable                  // consecutive rows of one container
	KindSection                // wraps exactly one row
	KindCell                   // one cell, tiling the row
	KindCellContent            // wraps the text of a non-empty cell
	KindText                   // merged cell text
)

var kindNames = [...]string{
	KindRow:         "gridRow",
	KindBarMarker:   "gridBarMarker",
	KindData:        "data",
	KindWhitespace:  "whitespace",
	KindTable:       "grid",
	KindSection:     "gridSection",
	KindCell:        "gridCell",
	KindCellContent: "gridContent",
	KindText:        "text",
}

// String returns the stable name used in event dumps.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Structural reports whether the kind is rendered by a serializer.
func (k Kind) Structural() bool {
	switch k {
	case KindTable, KindSection, KindRow, KindCell, KindCellContent, KindText:
		return true
	default:
		return false
	}
}

// ContentKind tells a serializer how to decode the text a token spans.
type ContentKind uint8

const (
	ContentNone ContentKind = iota
	ContentRaw
	ContentText
)

func (c ContentKind) String() string {
	switch c {
	case ContentRaw:
		return "raw"
	case ContentText:
		return "text"
	default:
		return ""
	}
}

// Token is a typed span of source. Its end is provisional until Finalize is
// called; tokens are shared by their Enter and Exit events.
type Token struct {
	Kind        Kind
	Start       Position
	ContentKind ContentKind

	end   Position
	final bool
}

// NewToken creates an open token whose provisional end equals its start.
func NewToken(kind Kind, start Position) *Token {
	return &Token{Kind: kind, Start: start, end: start}
}

// End returns the end position, which may still be provisional.
func (t *Token) End() Position {
	return t.end
}

// Final reports whether Finalize has been called.
func (t *Token) Final() bool {
	return t.final
}

// Finalize fixes the end position. Finalizing a token twice is a defect in
// the caller and panics.
func (t *Token) Finalize(end Position) {
	if t.final {
		panic(fmt.Sprintf("grid: %s token at %s finalized twice", t.Kind, t.Start))
	}
	t.end = end
	t.final = true
}

// Phase distinguishes the opening and closing event of a token.
type Phase uint8

const (
	Enter Phase = iota
	Exit
)

func (p Phase) String() string {
	if p == Enter {
		return "enter"
	}
	return "exit"
}

// Event is one entry of the event stream.
type Event struct {
	Phase Phase
	Token *Token
}

// Point returns the position the event stands at: the token start for Enter
// and the token end for Exit.
func (e Event) Point() Position {
	if e.Phase == Enter {
		return e.Token.Start
	}
	return e.Token.End()
}

// Is reports whether the event has the given phase and kind.
func (e Event) Is(phase Phase, kind Kind) bool {
	return e.Phase == phase && e.Token.Kind == kind
}

func (e Event) String() string {
	return fmt.Sprintf("%s %s %s", e.Phase, e.Token.Kind, e.Point())
}
