// Package orchestration drives the experiment: it runs the summation engine a
// fixed number of times, strictly one run after another, collects the results
// and summarises them. It decouples that control flow from presentation via
// the RunReporter and SweepPresenter interfaces, and from instrumentation via
// RunObserver.
package orchestration
