package gridext

import (
	"errors"

	"github.com/charmbracelet/log"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/yaklabco/gridmark/pkg/grid"
)

var stateKey = parser.NewContextKey()

// documentState is the per-parse grid state kept in the parser context.
type documentState struct {
	index *grid.LineIndex
	grids []*Grid
}

func stateOf(pc parser.Context, source []byte) *documentState {
	if state, ok := pc.Get(stateKey).(*documentState); ok {
		return state
	}
	state := &documentState{index: grid.NewLineIndex(source)}
	pc.Set(stateKey, state)
	return state
}

// Grids returns the grids recognized in the document parsed with pc, in
// document order.
func Grids(pc parser.Context) []*Grid {
	state, ok := pc.Get(stateKey).(*documentState)
	if !ok {
		return nil
	}
	return state.grids
}

// ResolveError returns the joined resolution failures of the document parsed
// with pc, or nil.
func ResolveError(pc parser.Context) error {
	var errs []error
	for _, g := range Grids(pc) {
		if g.Err != nil {
			errs = append(errs, g.Err)
		}
	}
	return errors.Join(errs...)
}

type rowParser struct{}

// NewRowParser returns a block parser that opens a Row for every line
// beginning with '|'. Rows never have children and close after one line.
func NewRowParser() parser.BlockParser {
	return &rowParser{}
}

func (p *rowParser) Trigger() []byte {
	return []byte{'|'}
}

func (p *rowParser) Open(parent ast.Node, reader text.Reader, pc parser.Context) (ast.Node, parser.State) {
	line, segment := reader.PeekLine()
	pos := pc.BlockOffset()
	if pos < 0 || pos >= len(line) || line[pos] != '|' {
		return nil, parser.NoChildren
	}

	source := reader.Source()
	state := stateOf(pc, source)

	// A row directly after another row of the same container extends its grid.
	group, extends := parent.LastChild().(*Row)
	target := &Grid{Log: grid.NewLog(source)}
	if extends {
		target = group.grid
	}

	start := max(segment.Start+pos-segment.Padding, segment.Start)
	tape := grid.NewLineTape(target.Log, state.index, start, segment.Stop, isLazy(parent, pc))
	if !grid.Recognize(tape) {
		return nil, parser.NoChildren
	}

	if !extends {
		state.grids = append(state.grids, target)
	}
	node := &Row{grid: target}
	node.Lines().Append(text.NewSegment(start, tape.Offset()))
	target.Rows = append(target.Rows, node)

	reader.Advance(tape.Offset() - segment.Start)
	return node, parser.NoChildren
}

func (p *rowParser) Continue(ast.Node, text.Reader, parser.Context) parser.State {
	return parser.Close
}

func (p *rowParser) Close(ast.Node, text.Reader, parser.Context) {}

func (p *rowParser) CanInterruptParagraph() bool {
	return true
}

func (p *rowParser) CanAcceptIndentedLine() bool {
	return false
}

// isLazy reports whether the current line would continue a paragraph that
// lives in a container other than parent.
func isLazy(parent ast.Node, pc parser.Context) bool {
	last := pc.LastOpenedBlock().Node
	return last != nil && last.Kind() == ast.KindParagraph && last.Parent() != parent
}

type resolveTransformer struct {
	logger *log.Logger
}

// NewTransformer returns the AST transformer that resolves every grid of the
// document once all rows have been recognized.
func NewTransformer(logger *log.Logger) parser.ASTTransformer {
	return &resolveTransformer{logger: logger}
}

func (t *resolveTransformer) Transform(_ *ast.Document, _ text.Reader, pc parser.Context) {
	for _, g := range Grids(pc) {
		if err := g.resolve(); err != nil {
			t.logger.Warn("grid not resolved", "line", g.Line(), "error", err)
			continue
		}
		t.logger.Debug("grid resolved", "line", g.Line(), "rows", len(g.Rows), "events", len(g.Events))
	}
}
