// Package goldmark parses Markdown documents with grid rows using the goldmark library.
package goldmark

import (
	"bytes"
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"

	"github.com/yaklabco/gridmark/pkg/grid/gridext"
)

// Flavor identifies the Markdown flavor supported by the parser.
const (
	FlavorCommonMark = "commonmark"
	FlavorGFM        = "gfm"
)

// Parser parses Markdown with the grid extension enabled.
type Parser struct {
	flavor string
	md     goldmark.Markdown
}

type settings struct {
	dataAs    string
	unsafe    bool
	xhtml     bool
	hardWraps bool
	logger    *log.Logger
}

// Option configures a Parser.
type Option func(*settings)

// WithDataAs sets the data-as attribute of rendered grid tables.
func WithDataAs(value string) Option {
	return func(s *settings) { s.dataAs = value }
}

// WithUnsafe renders raw HTML found in the document.
func WithUnsafe(enabled bool) Option {
	return func(s *settings) { s.unsafe = enabled }
}

// WithXHTML renders XHTML-style void elements.
func WithXHTML(enabled bool) Option {
	return func(s *settings) { s.xhtml = enabled }
}

// WithHardWraps renders soft line breaks as <br>.
func WithHardWraps(enabled bool) Option {
	return func(s *settings) { s.hardWraps = enabled }
}

// WithLogger sets the logger the grid extension reports to.
func WithLogger(logger *log.Logger) Option {
	return func(s *settings) { s.logger = logger }
}

// New creates a new goldmark-based parser for the given flavor.
// Supported flavors are "commonmark" and "gfm".
// Invalid flavors default to "commonmark".
func New(flavor string, opts ...Option) *Parser {
	f := flavorOrDefault(flavor)
	s := settings{dataAs: gridext.DefaultDataAs, logger: log.Default()}
	for _, opt := range opts {
		opt(&s)
	}
	return &Parser{
		flavor: f,
		md:     newGoldmarkInstance(f, s),
	}
}

// Flavor returns the configured Markdown flavor.
func (p *Parser) Flavor() string {
	return p.flavor
}

// Parse parses content and resolves every grid in it.
//
// Returns nil and an error if the context is cancelled or a grid cannot be
// resolved.
func (p *Parser) Parse(ctx context.Context, path string, content []byte) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse cancelled: %w", err)
	}

	doc := &Document{
		Path:     path,
		Content:  copyContent(content),
		renderer: p.md.Renderer(),
	}

	pc := parser.NewContext()
	doc.Root = p.md.Parser().Parse(text.NewReader(doc.Content), parser.WithContext(pc))

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse cancelled: %w", err)
	}

	if err := gridext.ResolveError(pc); err != nil {
		return nil, fmt.Errorf("resolve grids in %s: %w", path, err)
	}
	doc.Grids = gridext.Grids(pc)

	return doc, nil
}

// Convert parses content and renders it as HTML.
func (p *Parser) Convert(ctx context.Context, path string, content []byte) ([]byte, error) {
	doc, err := p.Parse(ctx, path, content)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := doc.Render(&buf); err != nil {
		return nil, fmt.Errorf("render %s: %w", path, err)
	}
	return buf.Bytes(), nil
}

// flavorOrDefault returns the flavor if valid, otherwise defaults to CommonMark.
func flavorOrDefault(flavor string) string {
	switch flavor {
	case FlavorCommonMark, FlavorGFM:
		return flavor
	default:
		return FlavorCommonMark
	}
}

// newGoldmarkInstance creates a configured goldmark.Markdown instance.
//
//nolint:ireturn // goldmark.Markdown is an external interface type
func newGoldmarkInstance(flavor string, s settings) goldmark.Markdown {
	extensions := []goldmark.Extender{
		gridext.New(gridext.WithDataAs(s.dataAs), gridext.WithLogger(s.logger)),
	}
	if flavor == FlavorGFM {
		extensions = append(extensions, extension.GFM)
	}

	var htmlOpts []renderer.Option
	if s.unsafe {
		htmlOpts = append(htmlOpts, html.WithUnsafe())
	}
	if s.xhtml {
		htmlOpts = append(htmlOpts, html.WithXHTML())
	}
	if s.hardWraps {
		htmlOpts = append(htmlOpts, html.WithHardWraps())
	}

	return goldmark.New(
		goldmark.WithExtensions(extensions...),
		goldmark.WithRendererOptions(htmlOpts...),
	)
}

// copyContent creates a copy of the content slice to ensure immutability.
func copyContent(content []byte) []byte {
	if content == nil {
		return nil
	}
	cp := make([]byte, len(content))
	copy(cp, content)
	return cp
}
