//go:generate mockgen -destination=mocks/mock_orchestration.go -package=mocks github.com/agbru/fpsum/internal/orchestration Summer,RunObserver

package orchestration

import (
	"context"
	"io"
	"time"

	"github.com/agbru/fpsum/internal/stats"
)

// Summer computes one instance of the sum. *summation.Engine implements it.
type Summer interface {
	Sum(ctx context.Context) (float64, error)
}

// SummerFactory builds a Summer for the given worker count. It is used by
// Sweep to visit several worker counts.
type SummerFactory func(workers int) (Summer, error)

// RunResult is the outcome of a single summation run.
type RunResult struct {
	// Run is the 1-based run number.
	Run int
	// Value is the computed sum.
	Value float64
	// Duration is the wall-clock time of the run.
	Duration time.Duration
}

// RunReporter presents the experiment as it progresses. The three methods
// are called in order: once ReportWorkers, once ReportRun per run, once
// ReportSummary.
type RunReporter interface {
	ReportWorkers(workers int, out io.Writer)
	ReportRun(result RunResult, out io.Writer)
	ReportSummary(summary stats.Summary, out io.Writer)
}

// SweepPresenter renders the results of a worker-count sweep.
type SweepPresenter interface {
	PresentSweep(results []SweepResult, out io.Writer)
}

// RunObserver is notified after every successful run. Implementations record
// metrics and must not block.
type RunObserver interface {
	ObserveRun(workers int, result RunResult)
}

// NullRunReporter is a no-op implementation of RunReporter.
type NullRunReporter struct{}

func (NullRunReporter) ReportWorkers(int, io.Writer) {}
func (NullRunReporter) ReportRun(RunResult, io.Writer) {}
func (NullRunReporter) ReportSummary(stats.Summary, io.Writer) {}

// NullRunObserver is a no-op implementation of RunObserver.
type NullRunObserver struct{}

func (NullRunObserver) ObserveRun(int, RunResult) {}
