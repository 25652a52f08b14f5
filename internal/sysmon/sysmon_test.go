package sysmon

import (
	"runtime"
	"testing"
)

func TestHost(t *testing.T) {
	h := Host()
	if h.LogicalCores < 1 {
		t.Errorf("LogicalCores = %d, want >= 1", h.LogicalCores)
	}
	if h.PhysicalCores < 0 || h.PhysicalCores > h.LogicalCores {
		t.Errorf("PhysicalCores = %d, want in [0, %d]", h.PhysicalCores, h.LogicalCores)
	}
	if h.GOMAXPROCS != runtime.GOMAXPROCS(0) {
		t.Errorf("GOMAXPROCS = %d, want %d", h.GOMAXPROCS, runtime.GOMAXPROCS(0))
	}
	if h.Arch != runtime.GOARCH {
		t.Errorf("Arch = %q, want %q", h.Arch, runtime.GOARCH)
	}
}

func TestHasFMA_UnknownArchDefaultsFalse(t *testing.T) {
	if runtime.GOARCH == "wasm" && hasFMA() {
		t.Error("wasm should not report FMA")
	}
}

func TestSample_ReturnsValidRanges(t *testing.T) {
	s := Sample()
	if s.CPUPercent < 0 || s.CPUPercent > 100 {
		t.Errorf("CPUPercent out of range: %f", s.CPUPercent)
	}
	if s.MemPercent < 0 || s.MemPercent > 100 {
		t.Errorf("MemPercent out of range: %f", s.MemPercent)
	}
}
