package runner

import (
	"bytes"
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/gridmark/internal/logging"
	"github.com/yaklabco/gridmark/pkg/config"
	"github.com/yaklabco/gridmark/pkg/fsutil"
	"github.com/yaklabco/gridmark/pkg/parser/goldmark"
)

// Runner renders files with a shared parser.
type Runner struct {
	Parser *goldmark.Parser
	Logger *log.Logger
}

// New creates a Runner. A nil logger uses the package default.
func New(parser *goldmark.Parser, logger *log.Logger) *Runner {
	if logger == nil {
		logger = logging.Default()
	}
	return &Runner{Parser: parser, Logger: logger}
}

// NewParser builds the parser described by cfg.
func NewParser(cfg *config.Config, logger *log.Logger) *goldmark.Parser {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	opts := []goldmark.Option{
		goldmark.WithDataAs(cfg.HTML.Attribute()),
		goldmark.WithUnsafe(cfg.HTML.Unsafe),
		goldmark.WithXHTML(cfg.HTML.XHTML),
		goldmark.WithHardWraps(cfg.HTML.HardWraps),
	}
	if logger != nil {
		opts = append(opts, goldmark.WithLogger(logger))
	}
	return goldmark.New(string(cfg.Flavor), opts...)
}

// Run discovers files under opts.Paths and processes them concurrently.
// Outcomes are returned in path order whatever order workers finish in.
// A file that fails does not stop the run; see Result.Err.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{Files: make([]FileOutcome, 0, len(files))}
	result.Stats.FilesDiscovered = len(files)
	r.Logger.Debug("discovered files", logging.FieldFilesDiscovered, len(files))

	if len(files) == 0 {
		return result, nil
	}

	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	jobs = min(jobs, len(files))

	workCh := make(chan string)
	outCh := make(chan FileOutcome)

	var wg sync.WaitGroup
	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.worker(ctx, workCh, outCh, workDir, opts)
		}()
	}

	go func() {
		defer close(workCh)
		for _, path := range files {
			select {
			case <-ctx.Done():
				return
			case workCh <- path:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outCh)
	}()

	outcomes := make(map[string]FileOutcome, len(files))
	for outcome := range outCh {
		outcomes[outcome.Path] = outcome
	}

	for _, path := range files {
		if outcome, ok := outcomes[path]; ok {
			result.accumulate(outcome)
		}
	}

	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}
	return result, nil
}

func (r *Runner) worker(
	ctx context.Context,
	workCh <-chan string,
	outCh chan<- FileOutcome,
	workDir string,
	opts Options,
) {
	for path := range workCh {
		if ctx.Err() != nil {
			return
		}

		outcome := r.process(ctx, path, workDir, opts)
		if outcome.Error != nil {
			r.Logger.Warn("file failed", logging.FieldPath, path, logging.FieldError, outcome.Error)
		}

		select {
		case <-ctx.Done():
			return
		case outCh <- outcome:
		}
	}
}

// process parses and renders one file, then writes it when asked to.
func (r *Runner) process(ctx context.Context, path, workDir string, opts Options) FileOutcome {
	outcome := FileOutcome{Path: path}

	content, src, err := fsutil.ReadSource(ctx, path)
	if err != nil {
		outcome.Error = err
		return outcome
	}

	doc, err := r.Parser.Parse(ctx, path, content)
	if err != nil {
		outcome.Error = err
		return outcome
	}
	if err := doc.Check(); err != nil {
		outcome.Error = err
		return outcome
	}
	outcome.Document = doc
	outcome.Tables, outcome.Rows, outcome.Cells = doc.Counts()

	if !opts.Write && !opts.KeepHTML {
		return outcome
	}

	var buf bytes.Buffer
	if err := doc.Render(&buf); err != nil {
		outcome.Error = fmt.Errorf("render %s: %w", path, err)
		return outcome
	}
	if opts.KeepHTML {
		outcome.HTML = buf.Bytes()
	}
	if !opts.Write {
		return outcome
	}

	changed, err := src.Changed(ctx)
	if err != nil {
		outcome.Error = err
		return outcome
	}
	if changed {
		outcome.Skipped = true
		r.Logger.Warn("source changed while rendering; skipped", logging.FieldPath, path)
		return outcome
	}

	outcome.Output = OutputPath(path, workDir, opts.config().Output)
	outcome.Written, err = fsutil.WriteOutput(ctx, outcome.Output, buf.Bytes(), 0)
	if err != nil {
		outcome.Error = fmt.Errorf("write %s: %w", outcome.Output, err)
		return outcome
	}

	r.Logger.Debug("rendered",
		logging.FieldPath, path,
		logging.FieldOutput, outcome.Output,
		logging.FieldTables, outcome.Tables,
		logging.FieldRows, outcome.Rows,
		logging.FieldCells, outcome.Cells,
	)
	return outcome
}
