package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

// TestFieldHelpers tests the Field constructor functions.
func TestFieldHelpers(t *testing.T) {
	testErr := errors.New("test error")
	tests := []struct {
		name      string
		field     Field
		wantKey   string
		wantValue any
	}{
		{"String", String("schedule", "dynamic"), "schedule", "dynamic"},
		{"Int", Int("workers", 4), "workers", 4},
		{"Uint64", Uint64("terms", 1001), "terms", uint64(1001)},
		{"Float64", Float64("value", -1.99e-13), "value", -1.99e-13},
		{"Bool", Bool("fma", true), "fma", true},
		{"Duration", Duration("elapsed", time.Millisecond), "elapsed", time.Millisecond},
		{"Err", Err(testErr), "error", testErr},
		{"Err nil", Err(nil), "error", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.field.Key != tt.wantKey {
				t.Errorf("Key = %q, want %q", tt.field.Key, tt.wantKey)
			}
			if tt.field.Value != tt.wantValue {
				t.Errorf("Value = %v, want %v", tt.field.Value, tt.wantValue)
			}
		})
	}
}

// TestNewZerologAdapter tests the ZerologAdapter constructor.
func TestNewZerologAdapter(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewZerologAdapter(zerolog.New(&buf))

	adapter.Info("test message")
	if !strings.Contains(buf.String(), "test message") {
		t.Errorf("NewZerologAdapter logger not working, output: %s", buf.String())
	}
}

// TestNewDefaultLogger tests the default logger constructor.
func TestNewDefaultLogger(t *testing.T) {
	if NewDefaultLogger() == nil {
		t.Fatal("NewDefaultLogger returned nil")
	}
}

// TestNewLogger tests the component-tagged logger constructor.
func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "summation")
	logger.Info("hello")

	output := buf.String()
	if !strings.Contains(output, "summation") {
		t.Errorf("NewLogger should include component field, got: %s", output)
	}
	if !strings.Contains(output, "hello") {
		t.Errorf("NewLogger should include message, got: %s", output)
	}
}

// TestNewConsoleLogger checks the level filter of the console logger.
func TestNewConsoleLogger(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	var buf bytes.Buffer
	logger := NewConsoleLogger(&buf, "app", zerolog.WarnLevel)

	logger.Debug("hidden debug")
	logger.Info("hidden info")
	logger.Warn("visible warning", Int("runs", 1))

	output := buf.String()
	if strings.Contains(output, "hidden") {
		t.Errorf("messages below warn should be filtered, got: %s", output)
	}
	if !strings.Contains(output, "visible warning") || !strings.Contains(output, "runs=1") {
		t.Errorf("warn message with field expected, got: %s", output)
	}
}

// TestZerologAdapter_Levels tests each level method.
func TestZerologAdapter_Levels(t *testing.T) {
	tests := []struct {
		name     string
		log      func(l Logger)
		contains []string
	}{
		{
			name:     "debug",
			log:      func(l Logger) { l.Debug("engine ready", Int("workers", 2)) },
			contains: []string{"engine ready", `"workers":2`, "debug"},
		},
		{
			name:     "info",
			log:      func(l Logger) { l.Info("run done", Float64("value", 0.5)) },
			contains: []string{"run done", "0.5", "info"},
		},
		{
			name:     "warn",
			log:      func(l Logger) { l.Warn("slow host") },
			contains: []string{"slow host", "warn"},
		},
		{
			name:     "error with cause",
			log:      func(l Logger) { l.Error("run failed", errors.New("deadline"), Int("run", 3)) },
			contains: []string{"run failed", "deadline", `"run":3`, "error"},
		},
		{
			name:     "error with nil cause",
			log:      func(l Logger) { l.Error("warning", nil) },
			contains: []string{"warning", "error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.log(NewLogger(&buf, "test"))

			output := buf.String()
			for _, want := range tt.contains {
				if !strings.Contains(output, want) {
					t.Errorf("output should contain %q, got: %s", want, output)
				}
			}
		})
	}
}

// TestZerologAdapter_PrintfPrintln tests the printf-style helpers.
func TestZerologAdapter_PrintfPrintln(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "test")

	logger.Printf("formatted %s %d", "message", 42)
	logger.Println("hello", "world")

	output := buf.String()
	if !strings.Contains(output, "formatted message 42") {
		t.Errorf("Printf should format message, got: %s", output)
	}
	if !strings.Contains(output, "hello world") {
		t.Errorf("Println should join arguments, got: %s", output)
	}
}

// TestZerologAdapter_applyFields tests field application with all supported types.
func TestZerologAdapter_applyFields(t *testing.T) {
	tests := []struct {
		name     string
		field    Field
		contains string
	}{
		{"string field", Field{Key: "str", Value: "hello"}, "hello"},
		{"int field", Field{Key: "num", Value: 42}, "42"},
		{"int64 field", Field{Key: "big", Value: int64(9223372036854775807)}, "9223372036854775807"},
		{"uint64 field", Field{Key: "huge", Value: uint64(18446744073709551615)}, "18446744073709551615"},
		{"float64 field", Field{Key: "pi", Value: 3.14}, "3.14"},
		{"error field", Field{Key: "err", Value: errors.New("oops")}, "oops"},
		{"bool field", Field{Key: "flag", Value: true}, "true"},
		{"duration field", Field{Key: "d", Value: 1500 * time.Millisecond}, "1500"},
		{"interface field", Field{Key: "data", Value: struct{ X int }{X: 1}}, "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			NewLogger(&buf, "test").Info("test", tt.field)

			if !strings.Contains(buf.String(), tt.contains) {
				t.Errorf("applyFields should handle %s, output: %s", tt.name, buf.String())
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    zerolog.Level
		wantErr bool
	}{
		{"debug", zerolog.DebugLevel, false},
		{"WARN", zerolog.WarnLevel, false},
		{" info ", zerolog.InfoLevel, false},
		{"disabled", zerolog.Disabled, false},
		{"", zerolog.NoLevel, true},
		{"loud", zerolog.NoLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

// TestLoggerInterface verifies the implementations satisfy Logger.
func TestLoggerInterface(t *testing.T) {
	var buf bytes.Buffer
	var _ Logger = NewLogger(&buf, "test")
	var _ Logger = NopLogger{}
}
