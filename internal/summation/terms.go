package summation

import "fmt"

const (
	// DefaultTermCount is the nominal number of steps in the default range.
	// The range itself is inclusive, so it holds DefaultTermCount+1 terms.
	DefaultTermCount = 1000
	// DefaultScale multiplies every index. 0.1 has no exact binary
	// representation, which keeps even the sequential result off zero.
	DefaultScale = 1e-1
)

// TermRange describes the inclusive index range [Lo, Hi] and the scale
// applied to each index.
type TermRange struct {
	Lo    int
	Hi    int
	Scale float64
}

// DefaultTerms returns the range [-500, 500] with scale 0.1.
func DefaultTerms() TermRange {
	return CenteredRange(DefaultTermCount, DefaultScale)
}

// CenteredRange returns [-n/2, n/2] (integer division) with the given scale.
func CenteredRange(n int, scale float64) TermRange {
	return TermRange{Lo: -n / 2, Hi: n / 2, Scale: scale}
}

// Len returns the number of terms in the range.
func (r TermRange) Len() int {
	if r.Hi < r.Lo {
		return 0
	}
	return r.Hi - r.Lo + 1
}

// Term returns the value of the i-th index.
func (r TermRange) Term(i int) float64 {
	return float64(i) * r.Scale
}

// String implements fmt.Stringer.
func (r TermRange) String() string {
	return fmt.Sprintf("[%d, %d]×%g", r.Lo, r.Hi, r.Scale)
}

// accumulate adds the terms of the half-open index span [lo, hi) to sum in
// increasing index order.
func (r TermRange) accumulate(sum float64, lo, hi int) float64 {
	for i := lo; i < hi; i++ {
		sum += r.Term(i)
	}
	return sum
}

// SequentialSum is the single-threaded reference: one left-to-right pass
// over the whole range.
func SequentialSum(r TermRange) float64 {
	return r.accumulate(0, r.Lo, r.Hi+1)
}
