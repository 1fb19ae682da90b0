package goldmark

import (
	"bytes"
	"context"
	"testing"
)

// FuzzParse fuzzes the full parse, check and render path.
func FuzzParse(f *testing.F) {
	seeds := []string{
		"",
		"Hello, world!",
		"|| Am ||",
		"|| Am | C7 ||\n|| G ||\n",
		"Verse\n|| Am ||\n",
		"> || Am ||\n> || C ||\n",
		"- || Am ||\n  || C ||\n",
		"> Verse\n|| Am ||\n",
		"    || not a grid ||\n",
		"|| Am ||\n\nChorus\n\n|| C ||\n",
		"| a | b |\n| - | - |\n",
		`||A\|B||`,
		"||||",
		"```\n|| fenced ||\n```\n",
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	commonmark := New(FlavorCommonMark)
	gfm := New(FlavorGFM)

	f.Fuzz(func(t *testing.T, input string) {
		for _, parser := range []*Parser{commonmark, gfm} {
			doc, err := parser.Parse(context.Background(), "fuzz.md", []byte(input))
			if err != nil {
				t.Fatalf("Parse(%q) with %s: %v", input, parser.Flavor(), err)
			}

			if err := doc.Check(); err != nil {
				t.Fatalf("Check(%q) with %s: %v", input, parser.Flavor(), err)
			}

			tables, rows, cells := doc.Counts()
			if tables != len(doc.Grids) || rows < tables || cells < rows {
				t.Errorf("Counts(%q) = %d, %d, %d with %d grids", input, tables, rows, cells, len(doc.Grids))
			}

			var buf bytes.Buffer
			if err := doc.Render(&buf); err != nil {
				t.Fatalf("Render(%q) with %s: %v", input, parser.Flavor(), err)
			}
		}
	})
}
