// Package pretty provides Lipgloss-based styled output utilities.
package pretty

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Styles contains all styled renderers for CLI output.
type Styles struct {
	// Messages
	Error   lipgloss.Style
	Warning lipgloss.Style

	// Locations
	FilePath lipgloss.Style
	Location lipgloss.Style

	// Event dumps
	Enter lipgloss.Style
	Exit  lipgloss.Style
	Kind  lipgloss.Style
	Data  lipgloss.Style

	// Summary styles
	SummaryTitle lipgloss.Style
	SummaryValue lipgloss.Style
	Success      lipgloss.Style
	Failure      lipgloss.Style

	// Grid previews
	TableHeader lipgloss.Style
	TableBorder lipgloss.Style
	EmptyCell   lipgloss.Style

	Dim  lipgloss.Style
	Bold lipgloss.Style
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return newNoColorStyles()
	}
	return newColorStyles()
}

func newColorStyles() *Styles {
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	return &Styles{
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),

		FilePath: lipgloss.NewStyle().Bold(true),
		Location: dim,

		Enter: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Exit:  lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
		Kind:  lipgloss.NewStyle().Bold(true),
		Data:  lipgloss.NewStyle().Foreground(lipgloss.Color("14")),

		SummaryTitle: lipgloss.NewStyle().Bold(true),
		SummaryValue: lipgloss.NewStyle(),
		Success:      lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Failure:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),

		TableHeader: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7")),
		TableBorder: dim,
		EmptyCell:   dim.Italic(true),

		Dim:  dim,
		Bold: lipgloss.NewStyle().Bold(true),
	}
}

func newNoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		Error:        plain,
		Warning:      plain,
		FilePath:     plain,
		Location:     plain,
		Enter:        plain,
		Exit:         plain,
		Kind:         plain,
		Data:         plain,
		SummaryTitle: plain,
		SummaryValue: plain,
		Success:      plain,
		Failure:      plain,
		TableHeader:  plain,
		TableBorder:  plain,
		EmptyCell:    plain,
		Dim:          plain,
		Bold:         plain,
	}
}

// IsColorEnabled determines if color should be enabled based on mode and writer.
// Mode values: "auto" (default), "always", "never".
// In auto mode, color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		// https://no-color.org/
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}

// FormatFailure formats a file that could not be processed.
func (s *Styles) FormatFailure(path string, err error) string {
	return s.FilePath.Render(path) + "  " + s.Error.Render("error") + "  " + err.Error() + "\n"
}

// FormatFileHeader formats a file header for grouped output.
func (s *Styles) FormatFileHeader(path string, tables int) string {
	header := s.FilePath.Render(path)
	switch tables {
	case 0:
		header += s.Dim.Render(" (no grids)")
	case 1:
		header += s.Dim.Render(" (1 grid)")
	default:
		header += s.Dim.Render(fmt.Sprintf(" (%d grids)", tables))
	}
	return header
}
