package app

import (
	"context"
	"errors"
	"flag"
	"io"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/agbru/fpsum/internal/config"
	"github.com/agbru/fpsum/internal/logging"
	"github.com/agbru/fpsum/internal/metrics"
	"github.com/agbru/fpsum/internal/orchestration"
	"github.com/agbru/fpsum/internal/summation"
	"github.com/agbru/fpsum/internal/sysmon"
)

// Application represents the fpsum application instance.
type Application struct {
	Config    config.AppConfig
	Factory   orchestration.SummerFactory
	ErrWriter io.Writer
	Logger    logging.Logger
	Metrics   *metrics.Recorder
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithFactory sets a custom SummerFactory for the application.
func WithFactory(f orchestration.SummerFactory) AppOption {
	return func(a *Application) { a.Factory = f }
}

// WithLogger sets the logger instead of the stderr console logger.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// New creates a new Application instance by parsing command-line arguments.
// args[0] is the program name.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}

	programName := "fpsum"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}
	app.Config = cfg

	if app.Logger == nil {
		// Validated by ParseConfig.
		lvl, _ := logging.ParseLevel(cfg.LogLevel)
		app.Logger = logging.NewConsoleLogger(errWriter, "fpsum", lvl)
	}
	if app.Metrics == nil {
		app.Metrics = metrics.NewRecorder()
	}
	if app.Factory == nil {
		app.Factory = app.engineFactory()
	}
	return app, nil
}

// engineFactory builds summation engines from the resolved configuration.
func (a *Application) engineFactory() orchestration.SummerFactory {
	return func(workers int) (orchestration.Summer, error) {
		opts, err := a.Config.EngineOptions(workers)
		if err != nil {
			return nil, err
		}
		opts = append(opts, summation.WithLogger(a.Logger))
		return summation.New(opts...)
	}
}

// Run executes the application based on the configured mode and returns the
// process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	a.logHost()
	defer a.logMetrics()

	if a.Config.Sweep {
		return a.runSweep(ctx, out)
	}
	return a.runExperiment(ctx, out)
}

func (a *Application) logHost() {
	h := sysmon.Host()
	a.Logger.Debug("host",
		logging.Int("logical_cores", h.LogicalCores),
		logging.Int("physical_cores", h.PhysicalCores),
		logging.Int("gomaxprocs", h.GOMAXPROCS),
		logging.String("arch", h.Arch),
		logging.Bool("fma", h.HasFMA),
	)
	a.Logger.Debug("configuration",
		logging.Int("runs", a.Config.Runs),
		logging.Int("n", a.Config.N),
		logging.Int("workers", a.Config.Workers),
		logging.String("schedule", a.Config.Schedule),
		logging.Int("chunk", a.Config.ChunkSize),
		logging.Duration("timeout", a.Config.Timeout),
		logging.Bool("sweep", a.Config.Sweep),
	)
}

func (a *Application) logMetrics() {
	s, err := a.Metrics.Snapshot()
	if err != nil {
		a.Logger.Warn("gathering metrics failed", logging.Err(err))
		return
	}
	st := sysmon.Sample()
	a.Logger.Debug("metrics",
		logging.Uint64("runs", s.Runs),
		logging.Duration("total_duration", s.TotalDuration),
		logging.Uint64("heap_alloc", s.HeapAlloc),
		logging.Int("goroutines", s.Goroutines),
		logging.Float64("cpu_percent", st.CPUPercent),
		logging.Float64("mem_percent", st.MemPercent),
	)
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}

// LogLevel reports the level the console logger was built with.
func (a *Application) LogLevel() zerolog.Level {
	lvl, err := logging.ParseLevel(a.Config.LogLevel)
	if err != nil {
		return zerolog.NoLevel
	}
	return lvl
}
