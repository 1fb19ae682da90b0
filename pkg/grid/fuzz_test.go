package grid_test

import (
	"testing"

	"github.com/yaklabco/gridmark/pkg/grid"
)

func FuzzScanResolve(f *testing.F) {
	f.Add("")
	f.Add("|| Am ||")
	f.Add("|| Am | C ||\n|| G ||\n")
	f.Add("||||")
	f.Add(`||A\|B||`)
	f.Add(`| a\\ |`)
	f.Add("| a |\ntext\n| b |\n")
	f.Add("   |x|y|")
	f.Add("|\t|")

	f.Fuzz(func(t *testing.T, input string) {
		source := []byte(input)
		flat := grid.Scan(source).Events()

		// The flat stream is balanced on its own.
		if err := grid.CheckBalance(flat); err != nil {
			t.Fatalf("flat stream of %q: %v", input, err)
		}

		resolved, err := grid.Resolve(flat)
		if err != nil {
			t.Fatalf("Resolve(%q): %v", input, err)
		}

		for _, check := range []func([]grid.Event) error{
			grid.CheckBalance,
			grid.CheckMonotonic,
			grid.CheckCoverage,
		} {
			if err := check(resolved); err != nil {
				t.Fatalf("resolved stream of %q: %v", input, err)
			}
		}

		if _, err := grid.Build(resolved, source); err != nil {
			t.Fatalf("Build(%q): %v", input, err)
		}
	})
}
