// Package config holds the application configuration and its resolution from
// command-line flags, FPSUM_* environment variables and runtime defaults.
package config

import (
	"flag"
	"fmt"
	"io"
	"time"

	apperrors "github.com/agbru/fpsum/internal/errors"
	"github.com/agbru/fpsum/internal/logging"
	"github.com/agbru/fpsum/internal/summation"
)

// EnvPrefix is prepended to every environment override key.
const EnvPrefix = "FPSUM_"

const (
	// DefaultRuns is the number of repeated summation runs.
	DefaultRuns = 6
	// DefaultTimeout bounds the whole experiment.
	DefaultTimeout = time.Minute
	// DefaultLogLevel keeps stderr quiet unless something goes wrong.
	DefaultLogLevel = "warn"
)

// AppConfig aggregates the application's configuration parameters.
type AppConfig struct {
	// Runs is the number of times the sum is computed.
	Runs int
	// N is the nominal term count; the summed range is [-N/2, N/2].
	N int
	// Workers is the number of summation workers. Zero means "resolve from
	// the Go runtime" and is replaced by ParseConfig.
	Workers int
	// Schedule is the chunk assignment policy name.
	Schedule string
	// ChunkSize is the chunk size of the dynamic and guided schedules.
	ChunkSize int
	// Timeout bounds the whole run (or sweep).
	Timeout time.Duration
	// Sweep repeats the experiment for every worker count in [1, SweepMax].
	Sweep bool
	// SweepMax is the largest worker count visited by a sweep.
	SweepMax int
	// LogLevel is the zerolog level name for stderr logging.
	LogLevel string
	// Verbose forces debug logging.
	Verbose bool
}

// Terms returns the summed range described by the configuration.
func (c AppConfig) Terms() summation.TermRange {
	return summation.CenteredRange(c.N, summation.DefaultScale)
}

// EngineOptions converts the configuration into summation engine options for
// the given worker count.
func (c AppConfig) EngineOptions(workers int) ([]summation.Option, error) {
	sched, err := summation.ParseSchedule(c.Schedule)
	if err != nil {
		return nil, err
	}
	return []summation.Option{
		summation.WithWorkers(workers),
		summation.WithSchedule(sched),
		summation.WithChunkSize(c.ChunkSize),
		summation.WithTerms(c.Terms()),
	}, nil
}

// Validate checks the semantic validity of the configuration.
func (c AppConfig) Validate() error {
	if c.Runs < 2 {
		return apperrors.NewConfigError("-runs must be at least 2 to compute a standard deviation, got %d", c.Runs)
	}
	if c.N < 0 {
		return apperrors.NewConfigError("-n must not be negative, got %d", c.N)
	}
	if c.Workers < 0 {
		return apperrors.NewConfigError("-workers must not be negative, got %d", c.Workers)
	}
	if c.ChunkSize < 1 {
		return apperrors.NewConfigError("-chunk must be at least 1, got %d", c.ChunkSize)
	}
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("-timeout must be positive, got %s", c.Timeout)
	}
	if c.SweepMax < 0 {
		return apperrors.NewConfigError("-sweep-max must not be negative, got %d", c.SweepMax)
	}
	if _, err := summation.ParseSchedule(c.Schedule); err != nil {
		return apperrors.NewConfigError("invalid -schedule: %v", err)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return apperrors.NewConfigError("invalid -log-level: %v", err)
	}
	return nil
}

// ParseConfig parses command-line arguments, applies environment overrides
// for flags that were not set explicitly, resolves runtime defaults and
// validates the result.
//
// Parameters:
//   - programName: The program name used in usage output.
//   - args: The command-line arguments without the program name.
//   - errorWriter: Where usage and parse errors are written.
//
// Returns:
//   - AppConfig: The resolved configuration.
//   - error: flag.ErrHelp for -h/--help, or a ConfigError.
func ParseConfig(programName string, args []string, errorWriter io.Writer) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorWriter)

	config := AppConfig{}
	fs.IntVar(&config.Runs, "runs", DefaultRuns, "Number of repeated summation runs (at least 2).")
	fs.IntVar(&config.N, "n", summation.DefaultTermCount, "Nominal term count; the range summed is [-n/2, n/2].")
	fs.IntVar(&config.Workers, "workers", 0, "Number of summation workers (0 = GOMAXPROCS).")
	fs.StringVar(&config.Schedule, "schedule", summation.DefaultSchedule.String(), "Chunk schedule: static, dynamic or guided.")
	fs.IntVar(&config.ChunkSize, "chunk", summation.DefaultChunkSize, "Chunk size for the dynamic and guided schedules.")
	fs.DurationVar(&config.Timeout, "timeout", DefaultTimeout, "Maximum duration of the whole experiment.")
	fs.BoolVar(&config.Sweep, "sweep", false, "Repeat the experiment for every worker count from 1 to -sweep-max.")
	fs.IntVar(&config.SweepMax, "sweep-max", 0, "Largest worker count of a sweep (0 = GOMAXPROCS).")
	fs.StringVar(&config.LogLevel, "log-level", DefaultLogLevel, "Log level for stderr: debug, info, warn, error or disabled.")
	fs.BoolVar(&config.Verbose, "v", false, "Shorthand for -log-level=debug.")

	fs.Usage = func() {
		fmt.Fprintf(errorWriter, "Usage: %s [options]\n\n", programName)
		fmt.Fprintf(errorWriter, "Sums i*0.1 for i in [-n/2, n/2] with parallel workers, repeats it and\n")
		fmt.Fprintf(errorWriter, "reports the run-to-run mean and standard deviation.\n\n")
		fmt.Fprintf(errorWriter, "The default worker count follows the GOMAXPROCS environment variable.\n")
		fmt.Fprintf(errorWriter, "Every option can also be set through %s<NAME> (e.g. %sRUNS).\n\nOptions:\n", EnvPrefix, EnvPrefix)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}
	if fs.NArg() > 0 {
		err := apperrors.NewConfigError("unexpected arguments: %v", fs.Args())
		fmt.Fprintln(errorWriter, err)
		return AppConfig{}, err
	}

	applyEnvOverrides(&config, fs)
	if config.Verbose {
		config.LogLevel = "debug"
	}

	if err := config.Validate(); err != nil {
		fmt.Fprintln(errorWriter, err)
		return AppConfig{}, err
	}
	return ResolveWorkers(config), nil
}
