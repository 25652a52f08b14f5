package orchestration

import (
	"context"
	"io"
	"time"

	apperrors "github.com/agbru/fpsum/internal/errors"
	"github.com/agbru/fpsum/internal/stats"
)

// ExecuteRuns calls summer exactly runs times, one call after another, and
// returns the results indexed by run-1. Each result is handed to observer
// and reporter as soon as it exists.
//
// Parameters:
//   - ctx: The context for managing cancellation and deadlines.
//   - summer: The engine computing one sum per call.
//   - runs: The number of runs.
//   - workers: The worker count, forwarded to the observer.
//   - observer: Receives every successful run (use NullRunObserver to ignore).
//   - reporter: Presents every run (use NullRunReporter for silence).
//   - out: The io.Writer handed to the reporter.
//
// Returns:
//   - []RunResult: The results of the completed runs.
//   - error: An apperrors.RunError wrapping the first failure.
func ExecuteRuns(ctx context.Context, summer Summer, runs, workers int, observer RunObserver, reporter RunReporter, out io.Writer) ([]RunResult, error) {
	results := make([]RunResult, 0, runs)
	for i := range runs {
		run := i + 1
		start := time.Now()
		value, err := summer.Sum(ctx)
		if err != nil {
			return results, apperrors.RunError{Run: run, Cause: err}
		}
		res := RunResult{Run: run, Value: value, Duration: time.Since(start)}
		results = append(results, res)
		observer.ObserveRun(workers, res)
		reporter.ReportRun(res, out)
	}
	return results, nil
}

// Values projects results onto their computed sums, preserving order.
func Values(results []RunResult) []float64 {
	values := make([]float64, len(results))
	for i, r := range results {
		values[i] = r.Value
	}
	return values
}

// Experiment is the outcome of RunExperiment.
type Experiment struct {
	Workers int
	Results []RunResult
	Summary stats.Summary
}

// RunExperiment is the complete driver: it reports the worker count, runs
// the sum runs times, then reports the sample mean and standard deviation.
func RunExperiment(ctx context.Context, summer Summer, runs, workers int, observer RunObserver, reporter RunReporter, out io.Writer) (Experiment, error) {
	reporter.ReportWorkers(workers, out)

	results, err := ExecuteRuns(ctx, summer, runs, workers, observer, reporter, out)
	if err != nil {
		return Experiment{Workers: workers, Results: results}, err
	}

	summary, err := stats.MeanAndStdDev(Values(results))
	if err != nil {
		return Experiment{Workers: workers, Results: results}, apperrors.WrapError(err, "summarising %d runs", len(results))
	}
	reporter.ReportSummary(summary, out)

	return Experiment{Workers: workers, Results: results, Summary: summary}, nil
}
