package app

import (
	"context"
	"io"

	"github.com/agbru/fpsum/internal/cli"
	apperrors "github.com/agbru/fpsum/internal/errors"
	"github.com/agbru/fpsum/internal/logging"
	"github.com/agbru/fpsum/internal/orchestration"
)

// runExperiment computes the sum Config.Runs times with the resolved worker
// count and prints every result followed by the mean and standard deviation.
func (a *Application) runExperiment(ctx context.Context, out io.Writer) int {
	summer, err := a.Factory(a.Config.Workers)
	if err != nil {
		a.Logger.Error("building summation engine failed", err)
		return apperrors.HandleRunError(err, a.Config.Timeout, a.ErrWriter)
	}

	exp, err := orchestration.RunExperiment(ctx, summer, a.Config.Runs, a.Config.Workers, a.Metrics, cli.CLIRunPresenter{}, out)
	if err != nil {
		a.logFailure("experiment", err, logging.Int("completed_runs", len(exp.Results)))
		return apperrors.HandleRunError(err, a.Config.Timeout, a.ErrWriter)
	}

	a.Logger.Info("experiment complete",
		logging.Int("workers", exp.Workers),
		logging.Float64("mean", exp.Summary.Mean),
		logging.Float64("stddev", exp.Summary.StdDev),
	)
	return apperrors.ExitSuccess
}

// runSweep repeats the experiment for every worker count up to
// Config.SweepMax and prints one table row per count.
func (a *Application) runSweep(ctx context.Context, out io.Writer) int {
	rows, err := orchestration.Sweep(ctx, a.Factory, a.Config.SweepMax, a.Config.Runs, a.Metrics)
	if err != nil {
		a.logFailure("sweep", err, logging.Int("completed_rows", len(rows)))
		return apperrors.HandleRunError(err, a.Config.Timeout, a.ErrWriter)
	}

	cli.CLIRunPresenter{}.PresentSweep(rows, out)
	return apperrors.ExitSuccess
}

// logFailure logs an interruption (deadline or signal) as a warning and
// anything else as an error.
func (a *Application) logFailure(what string, err error, fields ...logging.Field) {
	if apperrors.IsContextError(err) {
		a.Logger.Warn(what+" interrupted", append(fields, logging.Err(err))...)
		return
	}
	a.Logger.Error(what+" failed", err, fields...)
}
