package checkrun

import (
	"fmt"
	"io"
)

// PrintResults writes a summary of a completed run: totals, plus every
// failure with its recorded errors.
func PrintResults(w io.Writer, results Results) {
	if results.OK() {
		fmt.Fprintf(w, "All %d checks passed\n", len(results.Checks))
		return
	}

	fmt.Fprintf(w, "%d checks ran, %d failed:\n", len(results.Checks), len(results.Failures))
	for _, failure := range results.Failures {
		fmt.Fprintf(w, "  %s\n", failure.CheckID)
		for _, err := range failure.Errors {
			fmt.Fprintf(w, "    %s\n", err)
		}
	}
}
