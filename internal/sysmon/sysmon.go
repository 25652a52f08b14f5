// Package sysmon reports host facts that influence a floating-point run:
// how many cores the workers can spread over, and whether the CPU fuses
// multiply-add (which changes rounding of a*b+c).
package sysmon

import (
	"runtime"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
	xcpu "golang.org/x/sys/cpu"
)

// HostInfo is a snapshot of the host as seen by the process.
type HostInfo struct {
	LogicalCores  int
	PhysicalCores int // 0 when the platform does not report it
	GOMAXPROCS    int
	Arch          string
	HasFMA        bool
}

// Host collects HostInfo. Core counts fall back to runtime.NumCPU (logical)
// and 0 (physical) when gopsutil cannot read them.
func Host() HostInfo {
	h := HostInfo{
		GOMAXPROCS: runtime.GOMAXPROCS(0),
		Arch:       runtime.GOARCH,
		HasFMA:     hasFMA(),
	}
	if n, err := cpu.Counts(true); err == nil && n > 0 {
		h.LogicalCores = n
	} else {
		h.LogicalCores = runtime.NumCPU()
	}
	if n, err := cpu.Counts(false); err == nil {
		h.PhysicalCores = n
	}
	return h
}

func hasFMA() bool {
	switch runtime.GOARCH {
	case "amd64", "386":
		return xcpu.X86.HasFMA
	case "arm64":
		// FMADD is part of the base AArch64 FP instruction set.
		return xcpu.ARM64.HasFP
	case "ppc64", "ppc64le", "s390x":
		return true
	default:
		return false
	}
}

// Stats holds a single snapshot of system-wide resource usage.
type Stats struct {
	CPUPercent float64 // 0.0 .. 100.0
	MemPercent float64 // 0.0 .. 100.0
}

// Sample collects a single system-wide CPU and memory snapshot.
// CPU uses interval=0 (delta since last call). Returns zero values on error.
func Sample() Stats {
	var s Stats
	cpuPcts, err := cpu.Percent(0, false)
	if err == nil && len(cpuPcts) > 0 {
		s.CPUPercent = cpuPcts[0]
	}
	vmem, err := mem.VirtualMemory()
	if err == nil && vmem != nil {
		s.MemPercent = vmem.UsedPercent
	}
	return s
}
