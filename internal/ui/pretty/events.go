package pretty

import (
	"strconv"
	"strings"

	"github.com/yaklabco/gridmark/pkg/grid"
)

const eventIndent = "  "

// EventFormatter prints event streams one event per line, indented by
// nesting depth. Tokens with text show it quoted after their span.
type EventFormatter struct {
	styles *Styles
	source []byte
}

// NewEventFormatter creates a formatter over the document source.
func NewEventFormatter(styles *Styles, source []byte) *EventFormatter {
	return &EventFormatter{styles: styles, source: source}
}

// Format renders events. An unbalanced stream is printed as far as it goes;
// depth never drops below zero.
func (f *EventFormatter) Format(events []grid.Event) string {
	var builder strings.Builder
	depth := 0

	for _, event := range events {
		if event.Phase == grid.Exit && depth > 0 {
			depth--
		}

		builder.WriteString(strings.Repeat(eventIndent, depth))
		builder.WriteString(f.line(event))
		builder.WriteString("\n")

		if event.Phase == grid.Enter {
			depth++
		}
	}
	return builder.String()
}

func (f *EventFormatter) line(event grid.Event) string {
	tok := event.Token

	phase := f.styles.Enter.Render(event.Phase.String())
	if event.Phase == grid.Exit {
		phase = f.styles.Exit.Render(event.Phase.String())
	}

	parts := []string{
		phase,
		f.styles.Kind.Render(tok.Kind.String()),
		f.styles.Location.Render(tok.Start.String() + "-" + tok.End().String()),
	}

	if event.Phase == grid.Enter && hasText(tok.Kind) && tok.Final() {
		parts = append(parts, f.styles.Data.Render(strconv.Quote(grid.Text(f.source, tok))))
	}
	return strings.Join(parts, " ")
}

func hasText(kind grid.Kind) bool {
	return kind == grid.KindData || kind == grid.KindText
}
