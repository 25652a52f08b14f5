package config

import "runtime"

// Worker count resolution chain (highest priority first):
//   1. CLI flag -workers
//   2. Environment variable FPSUM_WORKERS
//   3. runtime.GOMAXPROCS(0), which the Go runtime derives from the
//      GOMAXPROCS environment variable at start-up or, when that is absent
//      or invalid, from the number of usable CPUs.

// DefaultWorkers returns the worker count the Go runtime exposes.
func DefaultWorkers() int {
	return runtime.GOMAXPROCS(0)
}

// ResolveWorkers replaces zero Workers and SweepMax values with
// DefaultWorkers, preserving explicit overrides.
func ResolveWorkers(cfg AppConfig) AppConfig {
	if cfg.Workers == 0 {
		cfg.Workers = DefaultWorkers()
	}
	if cfg.SweepMax == 0 {
		cfg.SweepMax = DefaultWorkers()
	}
	return cfg
}
