package pretty

import (
	"strings"

	diff "github.com/shogoki/gotextdiff"
)

// FormatDiff formats a unified diff from oldContent to newContent under
// the given name. It returns an empty string when the contents match.
func (s *Styles) FormatDiff(name string, oldContent, newContent []byte) string {
	if string(oldContent) == string(newContent) {
		return ""
	}

	text := string(diff.Diff(name, oldContent, name, newContent))
	if text == "" {
		return ""
	}

	var builder strings.Builder
	for line := range strings.SplitSeq(strings.TrimSuffix(text, "\n"), "\n") {
		switch {
		case strings.HasPrefix(line, "--- "), strings.HasPrefix(line, "+++ "), strings.HasPrefix(line, "diff "):
			builder.WriteString(s.FilePath.Render(line))
		case strings.HasPrefix(line, "@@"):
			builder.WriteString(s.Location.Render(line))
		case strings.HasPrefix(line, "+"):
			builder.WriteString(s.Success.Render(line))
		case strings.HasPrefix(line, "-"):
			builder.WriteString(s.Error.Render(line))
		default:
			builder.WriteString(line)
		}
		builder.WriteString("\n")
	}
	return builder.String()
}
