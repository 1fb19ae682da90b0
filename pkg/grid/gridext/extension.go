package gridext

import (
	"github.com/charmbracelet/log"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"
)

// Priorities relative to goldmark's built-in parsers (lower runs first).
const (
	rowParserPriority   = 100
	transformerPriority = 100
	rendererPriority    = 500
)

// Option configures the extension.
type Option func(*extension)

// WithDataAs sets the data-as attribute of rendered tables. An empty value
// omits the attribute.
func WithDataAs(value string) Option {
	return func(e *extension) {
		e.dataAs = value
	}
}

// WithLogger sets the logger used for resolution diagnostics.
func WithLogger(logger *log.Logger) Option {
	return func(e *extension) {
		if logger != nil {
			e.logger = logger
		}
	}
}

type extension struct {
	dataAs string
	logger *log.Logger
}

// Extension is the grid extension with default options.
//
//nolint:gochecknoglobals // Mirrors goldmark's extension.GFM.
var Extension = New()

// New returns a goldmark extension for grid rows.
//
//nolint:ireturn // goldmark.Extender is the interface callers register.
func New(opts ...Option) goldmark.Extender {
	ext := &extension{dataAs: DefaultDataAs, logger: log.Default()}
	for _, opt := range opts {
		opt(ext)
	}
	return ext
}

// Extend implements goldmark.Extender.
func (e *extension) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(
		parser.WithBlockParsers(util.Prioritized(NewRowParser(), rowParserPriority)),
		parser.WithASTTransformers(util.Prioritized(NewTransformer(e.logger), transformerPriority)),
	)
	m.Renderer().AddOptions(
		renderer.WithNodeRenderers(util.Prioritized(NewHTMLRenderer(e.dataAs), rendererPriority)),
	)
}
