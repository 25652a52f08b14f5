// Package summation computes the ill-conditioned sum
//
//	S = Σ_{i=Lo}^{Hi} i × Scale
//
// with a fork-join group of workers. With the default range [-500, 500] and
// Scale 0.1 the sum is analytically zero, but the terms span several orders
// of magnitude and change sign, so the rounded result depends on which terms
// each worker accumulates and on the order in which the partial sums are
// combined.
//
// The Engine does not hide that dependency. Under the dynamic and guided
// schedules the Go scheduler decides which worker receives which chunk, and
// partials are folded into the total in the order workers finish. With a
// single worker every schedule reduces to one pass in index order and the
// result equals SequentialSum bit for bit.
package summation
