package format

import (
	"math"
	"regexp"
	"strconv"
	"testing"
	"time"
)

func TestFormatExecutionDuration(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   time.Duration
		want string
	}{
		{750 * time.Nanosecond, "750ns"},
		{42 * time.Microsecond, "42\u00b5s"},
		{15 * time.Millisecond, "15ms"},
		{2500 * time.Millisecond, "2.5s"},
	}
	for _, tt := range tests {
		if got := FormatExecutionDuration(tt.in); got != tt.want {
			t.Errorf("FormatExecutionDuration(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

var scientificPattern = regexp.MustCompile(`^([ -])(\d)\.(\d{3})e([+-]\d{2,3})$`)

func TestFormatScientific(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		in       float64
		sign     string
		mantissa float64
		exponent string
	}{
		{"negative mean", -0.000123456, "-", 1.235, "-04"},
		{"positive stddev", 0.0000321, " ", 3.210, "-05"},
		{"tiny run result", -1.9895196601282805e-13, "-", 1.990, "-13"},
		{"zero", 0, " ", 0, "+00"},
		{"large", 12525, " ", 1.253, "+04"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := FormatScientific(tt.in)
			m := scientificPattern.FindStringSubmatch(got)
			if m == nil {
				t.Fatalf("FormatScientific(%g) = %q does not match %s", tt.in, got, scientificPattern)
			}
			if m[1] != tt.sign {
				t.Errorf("sign of %q = %q, want %q", got, m[1], tt.sign)
			}
			if m[4] != tt.exponent {
				t.Errorf("exponent of %q = %q, want %q", got, m[4], tt.exponent)
			}
			mantissa, err := strconv.ParseFloat(m[2]+"."+m[3], 64)
			if err != nil {
				t.Fatalf("mantissa of %q: %v", got, err)
			}
			if math.Abs(mantissa-tt.mantissa) > 0.0015 {
				t.Errorf("mantissa of %q = %.3f, want %.3f", got, mantissa, tt.mantissa)
			}
		})
	}
}

func TestFormatScientific_Exact(t *testing.T) {
	t.Parallel()
	if got := FormatScientific(-0.000123456); got != "-1.235e-04" {
		t.Errorf("FormatScientific(-0.000123456) = %q", got)
	}
	if got := FormatScientific(0.0000321); got != " 3.210e-05" {
		t.Errorf("FormatScientific(0.0000321) = %q", got)
	}
}
