package cli

import (
	"fmt"
	"io"

	"github.com/agbru/fpsum/internal/format"
	"github.com/agbru/fpsum/internal/orchestration"
	"github.com/agbru/fpsum/internal/stats"
)

// CLIRunPresenter implements orchestration.RunReporter and
// orchestration.SweepPresenter for plain-text standard output.
type CLIRunPresenter struct{}

// Verify interface compliance.
var (
	_ orchestration.RunReporter    = CLIRunPresenter{}
	_ orchestration.SweepPresenter = CLIRunPresenter{}
)

// ReportWorkers prints the worker count header.
func (CLIRunPresenter) ReportWorkers(workers int, out io.Writer) {
	DisplayThreadCount(workers, out)
}

// ReportRun prints one result line.
func (CLIRunPresenter) ReportRun(result orchestration.RunResult, out io.Writer) {
	DisplayRun(result.Run, result.Value, out)
}

// ReportSummary prints the mean and standard deviation.
func (CLIRunPresenter) ReportSummary(summary stats.Summary, out io.Writer) {
	DisplaySummary(summary, out)
}

// sweep table column headers
const (
	headerWorkers  = "Threads"
	headerMean     = "Mean"
	headerStdDev   = "Std. deviation"
	headerDistinct = "Distinct"
	headerStable   = "Stable"
	headerDuration = "Duration"
)

func stableMarker(row orchestration.SweepResult) string {
	if row.Deterministic() {
		return "yes"
	}
	return "no"
}

// FormatSweepRow renders one sweep row with fixed-width columns matching the
// header printed by PresentSweep.
func FormatSweepRow(row orchestration.SweepResult) string {
	duration := format.FormatExecutionDuration(row.Duration)
	if row.Duration == 0 {
		duration = "< 1µs"
	}
	return fmt.Sprintf("%-7d   %-10s   %-14s   %-8d   %-6s   %s",
		row.Workers,
		format.FormatScientific(row.Summary.Mean),
		format.FormatScientific(row.Summary.StdDev),
		row.Distinct,
		stableMarker(row),
		duration)
}

// PresentSweep prints a table with one row per worker count.
func (CLIRunPresenter) PresentSweep(results []orchestration.SweepResult, out io.Writer) {
	fmt.Fprintf(out, "--- Thread Sweep ---\n")
	fmt.Fprintf(out, "%-7s   %-10s   %-14s   %-8s   %-6s   %s\n",
		headerWorkers, headerMean, headerStdDev, headerDistinct, headerStable, headerDuration)
	for _, row := range results {
		fmt.Fprintln(out, FormatSweepRow(row))
	}
}
