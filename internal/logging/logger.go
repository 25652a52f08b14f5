package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Logger is the logging contract used across the application.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, err error, fields ...Field)
	Printf(format string, args ...any)
	Println(args ...any)
}

// Field is a typed key/value pair attached to a log entry.
type Field struct {
	Key   string
	Value any
}

// String creates a string field.
func String(key, value string) Field { return Field{Key: key, Value: value} }

// Int creates an int field.
func Int(key string, value int) Field { return Field{Key: key, Value: value} }

// Uint64 creates a uint64 field.
func Uint64(key string, value uint64) Field { return Field{Key: key, Value: value} }

// Float64 creates a float64 field.
func Float64(key string, value float64) Field { return Field{Key: key, Value: value} }

// Bool creates a bool field.
func Bool(key string, value bool) Field { return Field{Key: key, Value: value} }

// Duration creates a time.Duration field.
func Duration(key string, value time.Duration) Field { return Field{Key: key, Value: value} }

// Err creates a field under the conventional "error" key.
func Err(err error) Field { return Field{Key: "error", Value: err} }

// ZerologAdapter implements Logger on top of a zerolog.Logger.
type ZerologAdapter struct {
	logger zerolog.Logger
}

// NewZerologAdapter wraps an existing zerolog logger.
func NewZerologAdapter(logger zerolog.Logger) *ZerologAdapter {
	return &ZerologAdapter{logger: logger}
}

// NewDefaultLogger returns a JSON logger on stderr with timestamps.
func NewDefaultLogger() *ZerologAdapter {
	return NewZerologAdapter(zerolog.New(os.Stderr).With().Timestamp().Logger())
}

// NewLogger returns a JSON logger writing to w, tagged with the component name.
func NewLogger(w io.Writer, component string) *ZerologAdapter {
	zl := zerolog.New(w).With().Timestamp().Str("component", component).Logger()
	return NewZerologAdapter(zl)
}

// NewConsoleLogger returns a human-readable logger writing to w at the given
// level. It is what the command-line application uses for stderr.
func NewConsoleLogger(w io.Writer, component string, level zerolog.Level) *ZerologAdapter {
	cw := zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen, NoColor: os.Getenv("NO_COLOR") != ""}
	zl := zerolog.New(cw).Level(level).With().Timestamp().Str("component", component).Logger()
	return NewZerologAdapter(zl)
}

// ParseLevel maps a level name ("debug", "info", "warn", "error", "disabled")
// to a zerolog level. Matching is case-insensitive.
func ParseLevel(name string) (zerolog.Level, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(name)))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("unknown log level %q", name)
	}
	if lvl == zerolog.NoLevel {
		return zerolog.NoLevel, fmt.Errorf("unknown log level %q", name)
	}
	return lvl, nil
}

// Debug logs at debug level.
func (a *ZerologAdapter) Debug(msg string, fields ...Field) {
	applyFields(a.logger.Debug(), fields).Msg(msg)
}

// Info logs at info level.
func (a *ZerologAdapter) Info(msg string, fields ...Field) {
	applyFields(a.logger.Info(), fields).Msg(msg)
}

// Warn logs at warn level.
func (a *ZerologAdapter) Warn(msg string, fields ...Field) {
	applyFields(a.logger.Warn(), fields).Msg(msg)
}

// Error logs at error level. A nil err is still recorded under the "error" key.
func (a *ZerologAdapter) Error(msg string, err error, fields ...Field) {
	applyFields(a.logger.Error().AnErr("error", err), fields).Msg(msg)
}

// Printf logs a formatted message at info level.
func (a *ZerologAdapter) Printf(format string, args ...any) {
	a.logger.Info().Msgf(format, args...)
}

// Println logs its arguments, space separated, at info level.
func (a *ZerologAdapter) Println(args ...any) {
	a.logger.Info().Msg(strings.TrimSuffix(fmt.Sprintln(args...), "\n"))
}

func applyFields(e *zerolog.Event, fields []Field) *zerolog.Event {
	for _, f := range fields {
		switch v := f.Value.(type) {
		case string:
			e = e.Str(f.Key, v)
		case int:
			e = e.Int(f.Key, v)
		case int64:
			e = e.Int64(f.Key, v)
		case uint64:
			e = e.Uint64(f.Key, v)
		case float64:
			e = e.Float64(f.Key, v)
		case bool:
			e = e.Bool(f.Key, v)
		case time.Duration:
			e = e.Dur(f.Key, v)
		case error:
			e = e.AnErr(f.Key, v)
		default:
			e = e.Interface(f.Key, v)
		}
	}
	return e
}

// NopLogger discards everything. Useful for tests and quiet library use.
type NopLogger struct{}

func (NopLogger) Debug(string, ...Field) {}
func (NopLogger) Info(string, ...Field) {}
func (NopLogger) Warn(string, ...Field) {}
func (NopLogger) Error(string, error, ...Field) {}
func (NopLogger) Printf(string, ...any) {}
func (NopLogger) Println(...any) {}
