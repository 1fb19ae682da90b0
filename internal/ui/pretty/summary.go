package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/gridmark/pkg/runner"
)

const summaryDividerWidth = 40

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "3 files, 2 grids (3 rows, 4 cells), 2 written".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	if stats.FilesDiscovered == 0 {
		return s.Dim.Render("No Markdown files found") + "\n"
	}

	parts := []string{
		fmt.Sprintf("%d %s", stats.FilesProcessed, plural(stats.FilesProcessed, "file", "files")),
		fmt.Sprintf("%d %s (%d %s, %d %s)",
			stats.Tables, plural(stats.Tables, "grid", "grids"),
			stats.Rows, plural(stats.Rows, "row", "rows"),
			stats.Cells, plural(stats.Cells, "cell", "cells")),
	}
	if stats.FilesWritten > 0 {
		parts = append(parts, s.Success.Render(fmt.Sprintf("%d written", stats.FilesWritten)))
	}
	if stats.FilesSkipped > 0 {
		parts = append(parts, s.Warning.Render(fmt.Sprintf("%d skipped", stats.FilesSkipped)))
	}
	if stats.FilesFailed > 0 {
		parts = append(parts, s.Failure.Render(fmt.Sprintf("%d failed", stats.FilesFailed)))
	}
	return strings.Join(parts, ", ") + "\n"
}

// FormatSummary formats run statistics as a summary block.
func (s *Styles) FormatSummary(stats runner.Stats) string {
	var builder strings.Builder

	line := func(label string, value int, style func(...string) string) {
		builder.WriteString(fmt.Sprintf("  %-18s %s\n", label+":", style(strconv.Itoa(value))))
	}

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	line("Files processed", stats.FilesProcessed, s.SummaryValue.Render)
	if stats.FilesWritten > 0 {
		line("Files written", stats.FilesWritten, s.Success.Render)
	}
	if stats.FilesSkipped > 0 {
		line("Files skipped", stats.FilesSkipped, s.Warning.Render)
	}
	if stats.FilesFailed > 0 {
		line("Files failed", stats.FilesFailed, s.Failure.Render)
	}

	builder.WriteString("\n")
	line("Grids", stats.Tables, s.SummaryValue.Render)
	line("Rows", stats.Rows, s.SummaryValue.Render)
	line("Cells", stats.Cells, s.SummaryValue.Render)
	builder.WriteString("\n")

	if stats.FilesFailed > 0 {
		builder.WriteString(s.Failure.Render("Completed with failures"))
	} else {
		builder.WriteString(s.Success.Render("All files rendered"))
	}
	builder.WriteString("\n")

	return builder.String()
}
