package pretty_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/gridmark/internal/ui/pretty"
)

func TestFormatDiff(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)

	t.Run("identical", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, styles.FormatDiff("verse.html", []byte("<p>a</p>\n"), []byte("<p>a</p>\n")))
	})

	t.Run("changed line", func(t *testing.T) {
		t.Parallel()

		got := styles.FormatDiff("verse.html",
			[]byte("<table>\n<td>Am</td>\n</table>\n"),
			[]byte("<table>\n<td data-as=\"chord\">Am</td>\n</table>\n"))

		assert.Contains(t, got, "verse.html")
		assert.Contains(t, got, "-<td>Am</td>\n")
		assert.Contains(t, got, "+<td data-as=\"chord\">Am</td>\n")
		assert.Contains(t, got, "@@")
	})

	t.Run("new file", func(t *testing.T) {
		t.Parallel()

		got := styles.FormatDiff("verse.html", nil, []byte("<p>a</p>\n"))
		assert.Contains(t, got, "+<p>a</p>\n")
	})
}
