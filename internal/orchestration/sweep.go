package orchestration

import (
	"context"
	"io"
	"time"

	apperrors "github.com/agbru/fpsum/internal/errors"
	"github.com/agbru/fpsum/internal/stats"
)

// SweepResult summarises the experiment at one worker count.
type SweepResult struct {
	Workers  int
	Summary  stats.Summary
	Distinct int
	Duration time.Duration
}

// Deterministic reports whether every run at this worker count produced the
// same bits.
func (r SweepResult) Deterministic() bool {
	return r.Distinct == 1
}

// Sweep repeats the experiment for every worker count in [1, maxWorkers],
// building a fresh Summer for each through factory. Runs are reported only
// through observer; the caller presents the returned rows.
func Sweep(ctx context.Context, factory SummerFactory, maxWorkers, runs int, observer RunObserver) ([]SweepResult, error) {
	if maxWorkers < 1 {
		return nil, apperrors.ValidationError{Field: "sweep-max", Message: "must be at least 1"}
	}

	rows := make([]SweepResult, 0, maxWorkers)
	for workers := 1; workers <= maxWorkers; workers++ {
		summer, err := factory(workers)
		if err != nil {
			return rows, apperrors.WrapError(err, "building summer for %d workers", workers)
		}

		start := time.Now()
		exp, err := RunExperiment(ctx, summer, runs, workers, observer, NullRunReporter{}, io.Discard)
		if err != nil {
			return rows, apperrors.WrapError(err, "sweep at %d workers", workers)
		}
		rows = append(rows, SweepResult{
			Workers:  workers,
			Summary:  exp.Summary,
			Distinct: stats.Distinct(Values(exp.Results)),
			Duration: time.Since(start),
		})
	}
	return rows, nil
}
