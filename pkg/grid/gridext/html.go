package gridext

import (
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"

	"github.com/yaklabco/gridmark/pkg/grid"
)

// DefaultDataAs is the default value of the table's data-as attribute.
const DefaultDataAs = "songbook-grid"

// HTMLRenderer renders Row nodes as HTML table markup.
type HTMLRenderer struct {
	dataAs string
}

// NewHTMLRenderer returns a renderer that marks tables with data-as="dataAs".
// An empty dataAs omits the attribute.
func NewHTMLRenderer(dataAs string) renderer.NodeRenderer {
	return &HTMLRenderer{dataAs: dataAs}
}

// RegisterFuncs implements renderer.NodeRenderer.
func (r *HTMLRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(KindRow, r.renderRow)
}

func (r *HTMLRenderer) renderRow(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}

	row, ok := node.(*Row)
	if !ok {
		return ast.WalkContinue, nil
	}
	if row.Events == nil {
		renderUnresolved(w, source, row)
		return ast.WalkSkipChildren, nil
	}

	out := lineWriter{w: w, atLineStart: true}
	for _, event := range row.Events {
		r.renderEvent(&out, source, event)
	}
	out.lineEndingIfNeeded()

	return ast.WalkSkipChildren, nil
}

func (r *HTMLRenderer) renderEvent(out *lineWriter, source []byte, event grid.Event) {
	enter := event.Phase == grid.Enter

	switch event.Token.Kind {
	case grid.KindTable:
		out.lineEndingIfNeeded()
		if !enter {
			out.write("</table>")
			return
		}
		if r.dataAs == "" {
			out.write("<table>")
			return
		}
		out.write(`<table data-as="`)
		out.writeBytes(util.EscapeHTML([]byte(r.dataAs)))
		out.write(`">`)
	case grid.KindSection:
		out.lineEndingIfNeeded()
		out.tag("tbody", enter)
	case grid.KindRow:
		out.lineEndingIfNeeded()
		out.tag("tr", enter)
	case grid.KindCell:
		if enter {
			out.lineEndingIfNeeded()
		}
		out.tag("td", enter)
	case grid.KindText:
		if enter {
			out.writeBytes(util.EscapeHTML(grid.Decode(grid.Slice(source, event.Token))))
		}
	default:
		// Bar markers, data and whitespace are syntax only.
	}
}

// renderUnresolved writes the source of a row whose grid failed to resolve.
func renderUnresolved(w util.BufWriter, source []byte, row *Row) {
	_, _ = w.WriteString("<p>")
	lines := row.Lines()
	for idx := range lines.Len() {
		segment := lines.At(idx)
		_, _ = w.Write(util.EscapeHTML(segment.Value(source)))
	}
	_, _ = w.WriteString("</p>\n")
}

// lineWriter tracks whether output sits at the start of a line so structural
// tags are separated by exactly one line ending.
type lineWriter struct {
	w           util.BufWriter
	atLineStart bool
}

func (l *lineWriter) lineEndingIfNeeded() {
	if l.atLineStart {
		return
	}
	_ = l.w.WriteByte('\n')
	l.atLineStart = true
}

func (l *lineWriter) tag(name string, enter bool) {
	if enter {
		l.write("<" + name + ">")
		return
	}
	l.write("</" + name + ">")
}

func (l *lineWriter) write(s string) {
	if s == "" {
		return
	}
	_, _ = l.w.WriteString(s)
	l.atLineStart = s[len(s)-1] == '\n'
}

func (l *lineWriter) writeBytes(b []byte) {
	if len(b) == 0 {
		return
	}
	_, _ = l.w.Write(b)
	l.atLineStart = b[len(b)-1] == '\n'
}
