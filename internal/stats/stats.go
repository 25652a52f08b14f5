// Package stats summarises the results of repeated summation runs.
//
// Every accumulation here is a single left-to-right pass, so a fixed input
// sequence always yields the same Summary. Run-to-run variation belongs to
// the summation engine alone.
package stats

import (
	"fmt"
	"math"

	apperrors "github.com/agbru/fpsum/internal/errors"
)

// MinSamples is the smallest sample size for which the N-1 standard
// deviation is defined.
const MinSamples = 2

// Summary holds the sample mean and the sample standard deviation.
type Summary struct {
	Mean   float64
	StdDev float64
}

// Mean returns Σ values / N. It returns NaN for an empty slice.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// MeanAndStdDev computes the sample mean and the Bessel-corrected standard
// deviation sqrt(Σ(x-mean)²/(N-1)) of values.
//
// Fewer than MinSamples values are rejected with an apperrors.ValidationError
// instead of dividing by zero.
func MeanAndStdDev(values []float64) (Summary, error) {
	if len(values) < MinSamples {
		return Summary{}, apperrors.ValidationError{
			Field:   "values",
			Message: fmt.Sprintf("need at least %d samples, got %d", MinSamples, len(values)),
		}
	}

	mean := Mean(values)
	sq := 0.0
	for _, v := range values {
		d := v - mean
		sq += d * d
	}
	return Summary{
		Mean:   mean,
		StdDev: math.Sqrt(sq / float64(len(values)-1)),
	}, nil
}

// Distinct counts the bit-distinct values in values. Two runs that agree in
// every bit count once; -0 and +0 count as two.
func Distinct(values []float64) int {
	seen := make(map[uint64]struct{}, len(values))
	for _, v := range values {
		seen[math.Float64bits(v)] = struct{}{}
	}
	return len(seen)
}
