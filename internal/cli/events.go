package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gridmark/internal/ui/pretty"
	"github.com/yaklabco/gridmark/pkg/config"
	"github.com/yaklabco/gridmark/pkg/fsutil"
	"github.com/yaklabco/gridmark/pkg/grid"
	"github.com/yaklabco/gridmark/pkg/parser/goldmark"
	"github.com/yaklabco/gridmark/pkg/runner"
)

// stdinName is the path argument that reads the document from stdin.
const stdinName = "-"

type eventsFlags struct {
	flavor string
	format string
	flat   bool
}

func newEventsCommand() *cobra.Command {
	var cfg config.Config
	flags := &eventsFlags{}

	cmd := &cobra.Command{
		Use:   "events <file>",
		Short: "Print the grid event stream of a Markdown file",
		Long: `Print the events of every grid in a Markdown file, one event per line and
indented by nesting depth.

The resolved stream shows tables, sections, rows, cells and their content.
With --flat, the recognizer's flat stream is printed instead, with the bar
markers, whitespace and data runs as they were scanned. Use "-" to read
from stdin.`,
		Example: `  gridmark events verse.md
  gridmark events --flat verse.md
  echo '|| Am | C ||' | gridmark events --format json -`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEvents(cmd, args[0], &cfg, flags)
		},
	}

	cmd.Flags().StringVar(&flags.flavor, "flavor", "", "Markdown flavor: commonmark, gfm (default commonmark)")
	cmd.Flags().StringVar(&flags.format, "format", "", "output format: text, json (default text)")
	cmd.Flags().BoolVar(&flags.flat, "flat", false, "print the unresolved recognizer events")

	return cmd
}

func runEvents(cmd *cobra.Command, path string, cliCfg *config.Config, flags *eventsFlags) error {
	cliCfg.Flavor = config.Flavor(flags.flavor)
	cliCfg.Format = config.OutputFormat(flags.format)

	sess, err := newSession(cmd, cliCfg)
	if err != nil {
		return err
	}

	doc, err := parseInput(cmd, sess, path)
	if err != nil {
		return err
	}

	events := doc.Events()
	if flags.flat {
		events = doc.Flat()
	}

	out := cmd.OutOrStdout()
	if sess.cfg.Format == config.FormatJSON {
		return writeEventsJSON(out, doc.Content, events)
	}
	fmt.Fprint(out, pretty.NewEventFormatter(sess.styles, doc.Content).Format(events))
	return nil
}

// parseInput reads and parses the document named by path, or stdin for "-".
func parseInput(cmd *cobra.Command, sess *session, path string) (*goldmark.Document, error) {
	var content []byte
	name := path

	if path == stdinName {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		content, name = data, "<stdin>"
	} else {
		data, _, err := fsutil.ReadSource(sess.ctx, path)
		if err != nil {
			return nil, err
		}
		content = data
	}

	doc, err := runner.NewParser(sess.cfg, sess.logger).Parse(sess.ctx, name, content)
	if err != nil {
		return nil, err
	}
	if err := doc.Check(); err != nil {
		return nil, err
	}
	return doc, nil
}

type positionJSON struct {
	Offset int `json:"offset"`
	Line   int `json:"line"`
	Column int `json:"column"`
}

type eventJSON struct {
	Phase   string       `json:"phase"`
	Kind    string       `json:"kind"`
	Start   positionJSON `json:"start"`
	End     positionJSON `json:"end"`
	Content string       `json:"content,omitempty"`
	Text    *string      `json:"text,omitempty"`
}

func toPositionJSON(p grid.Position) positionJSON {
	return positionJSON{Offset: p.Offset, Line: p.Line, Column: p.Column}
}

// writeEventsJSON writes events as a JSON array. Enter events of data and
// text tokens carry the decoded text.
func writeEventsJSON(w io.Writer, source []byte, events []grid.Event) error {
	out := make([]eventJSON, 0, len(events))
	for _, event := range events {
		tok := event.Token
		entry := eventJSON{
			Phase:   event.Phase.String(),
			Kind:    tok.Kind.String(),
			Start:   toPositionJSON(tok.Start),
			End:     toPositionJSON(tok.End()),
			Content: tok.ContentKind.String(),
		}
		if event.Phase == grid.Enter && (tok.Kind == grid.KindData || tok.Kind == grid.KindText) && tok.Final() {
			text := grid.Text(source, tok)
			entry.Text = &text
		}
		out = append(out, entry)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode events: %w", err)
	}
	return nil
}
