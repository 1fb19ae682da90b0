package runner

import (
	"go.uber.org/multierr"

	"github.com/yaklabco/gridmark/pkg/parser/goldmark"
)

// FileOutcome is what happened to one file.
type FileOutcome struct {
	// Path is the source file.
	Path string

	// Output is where the HTML went, empty when nothing was written.
	Output string

	// Document is the parsed file. Nil when Error is set.
	Document *goldmark.Document

	// HTML is the rendered output, kept only with Options.KeepHTML.
	HTML []byte

	// Tables, Rows and Cells count the grids of the document.
	Tables, Rows, Cells int

	// Written is true if Output was created or changed.
	Written bool

	// Skipped is true if the source changed while it was rendered.
	Skipped bool

	// Error is set if the file could not be processed.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	FilesDiscovered int
	FilesProcessed  int
	FilesWritten    int
	FilesSkipped    int
	FilesFailed     int

	Tables int
	Rows   int
	Cells  int
}

// Result is the overall runner result.
type Result struct {
	// Files are ordered by path.
	Files []FileOutcome

	Stats Stats
}

// HasFailures reports whether any file failed.
func (r *Result) HasFailures() bool {
	return r != nil && r.Stats.FilesFailed > 0
}

// Err combines the errors of all failed files, or returns nil.
func (r *Result) Err() error {
	if r == nil {
		return nil
	}
	var err error
	for _, file := range r.Files {
		err = multierr.Append(err, file.Error)
	}
	return err
}

func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesFailed++
		return
	}

	r.Stats.FilesProcessed++
	if outcome.Skipped {
		r.Stats.FilesSkipped++
	}
	if outcome.Written {
		r.Stats.FilesWritten++
	}
	r.Stats.Tables += outcome.Tables
	r.Stats.Rows += outcome.Rows
	r.Stats.Cells += outcome.Cells
}
