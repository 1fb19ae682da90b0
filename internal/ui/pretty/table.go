package pretty

import (
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/yaklabco/gridmark/pkg/grid"
)

const (
	defaultTermWidth = 100
	minCellWidth     = 3
	cellPadding      = 1
	emptyMarker      = "-"
	ellipsis         = "..."
)

// TerminalWidth returns the width of the terminal behind f, or the default
// width when f is not a terminal.
func TerminalWidth(f *os.File) int {
	if f == nil {
		return defaultTermWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return defaultTermWidth
	}
	return width
}

// GridFormatter draws grid tables as boxes of aligned columns. Widths are
// display widths, so wide and combining characters line up.
type GridFormatter struct {
	styles    *Styles
	termWidth int
}

// NewGridFormatter creates a formatter that keeps lines within termWidth.
func NewGridFormatter(styles *Styles, termWidth int) *GridFormatter {
	if termWidth <= 0 {
		termWidth = defaultTermWidth
	}
	return &GridFormatter{styles: styles, termWidth: termWidth}
}

// Format draws one table. Rows may have different cell counts; short rows
// are padded with blank cells.
func (g *GridFormatter) Format(table *grid.Table) string {
	cells := table.Cells()
	if len(cells) == 0 {
		return ""
	}

	widths := g.columnWidths(table)

	var builder strings.Builder
	builder.WriteString(g.border(widths, "┌", "┬", "┐"))
	for i, row := range table.Rows {
		if i > 0 {
			builder.WriteString(g.border(widths, "├", "┼", "┤"))
		}
		builder.WriteString(g.row(row, widths))
	}
	builder.WriteString(g.border(widths, "└", "┴", "┘"))
	return builder.String()
}

// columnWidths returns the display width of every column, shrunk evenly
// when the table would overflow the terminal.
func (g *GridFormatter) columnWidths(table *grid.Table) []int {
	var widths []int
	for _, row := range table.Rows {
		for col, cell := range row.Cells {
			if col == len(widths) {
				widths = append(widths, minCellWidth)
			}
			widths[col] = max(widths[col], runewidth.StringWidth(cell.Text))
		}
	}

	for total(widths) > g.termWidth {
		widest := 0
		for col, width := range widths {
			if width > widths[widest] {
				widest = col
			}
		}
		if widths[widest] <= minCellWidth {
			break
		}
		widths[widest]--
	}
	return widths
}

// total is the printed width of a row with the given column widths.
func total(widths []int) int {
	sum := 1
	for _, width := range widths {
		sum += width + 2*cellPadding + 1
	}
	return sum
}

func (g *GridFormatter) border(widths []int, left, middle, right string) string {
	parts := make([]string, len(widths))
	for i, width := range widths {
		parts[i] = strings.Repeat("─", width+2*cellPadding)
	}
	return g.styles.TableBorder.Render(left+strings.Join(parts, middle)+right) + "\n"
}

func (g *GridFormatter) row(row *grid.Row, widths []int) string {
	bar := g.styles.TableBorder.Render("│")
	pad := strings.Repeat(" ", cellPadding)

	var builder strings.Builder
	builder.WriteString(bar)
	for col, width := range widths {
		text, style := "", g.styles.SummaryValue
		if col < len(row.Cells) {
			cell := row.Cells[col]
			text = cell.Text
			if cell.Empty {
				text, style = emptyMarker, g.styles.EmptyCell
			}
		}
		fitted := runewidth.FillRight(runewidth.Truncate(text, width, ellipsis), width)
		builder.WriteString(pad + style.Render(fitted) + pad + bar)
	}
	builder.WriteString("\n")
	return builder.String()
}
