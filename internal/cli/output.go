// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     Examples: [DisplayThreadCount], [DisplayRun], [DisplaySummary].
//
//   - Format* functions return a formatted string without performing I/O.
//     Examples: [FormatRunLine], [FormatSweepRow].

package cli

import (
	"fmt"
	"io"

	"github.com/agbru/fpsum/internal/format"
	"github.com/agbru/fpsum/internal/stats"
)

// DisplayThreadCount prints the worker count header followed by a blank line.
func DisplayThreadCount(workers int, out io.Writer) {
	fmt.Fprintf(out, "Number of threads:\t %d\n\n", workers)
}

// FormatRunLine returns the line printed for one run, without the newline.
// The run number is right-aligned to two columns.
func FormatRunLine(run int, value float64) string {
	return fmt.Sprintf("Result for run: %2d:\t %s", run, format.FormatScientific(value))
}

// DisplayRun prints the result of a single run.
func DisplayRun(run int, value float64, out io.Writer) {
	fmt.Fprintln(out, FormatRunLine(run, value))
}

// DisplaySummary prints the mean and standard deviation block, preceded by a
// blank line.
func DisplaySummary(summary stats.Summary, out io.Writer) {
	fmt.Fprintf(out, "\nMean:\t\t\t %s\n", format.FormatScientific(summary.Mean))
	fmt.Fprintf(out, "Standard deviation:\t %s\n", format.FormatScientific(summary.StdDev))
}
