// Package sysmon samples system-wide CPU and memory usage. The figures are
// reported by the health endpoint and printed before calibration, where a
// loaded machine skews the measured crossovers.
package sysmon

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// BusyCPUPercent is the load above which calibration results are flagged
// as unreliable.
const BusyCPUPercent = 50.0

// Stats holds a single snapshot of system-wide resource usage.
type Stats struct {
	CPUPercent   float64 `json:"cpu_percent"`   // 0.0 .. 100.0
	MemPercent   float64 `json:"mem_percent"`   // 0.0 .. 100.0
	MemTotal     uint64  `json:"mem_total"`     // bytes
	MemAvailable uint64  `json:"mem_available"` // bytes
}

// Sample collects a system-wide CPU and memory snapshot. CPU usage is the
// delta since the previous call (interval 0). Fields that cannot be read
// stay zero and the first failure is returned.
func Sample(ctx context.Context) (Stats, error) {
	var (
		s        Stats
		firstErr error
	)
	if pcts, err := cpu.PercentWithContext(ctx, 0, false); err != nil {
		firstErr = fmt.Errorf("cpu usage: %w", err)
	} else if len(pcts) > 0 {
		s.CPUPercent = pcts[0]
	}
	if vm, err := mem.VirtualMemoryWithContext(ctx); err != nil {
		if firstErr == nil {
			firstErr = fmt.Errorf("memory usage: %w", err)
		}
	} else if vm != nil {
		s.MemPercent = vm.UsedPercent
		s.MemTotal = vm.Total
		s.MemAvailable = vm.Available
	}
	return s, firstErr
}

// Busy reports whether the CPU load exceeds BusyCPUPercent.
func (s Stats) Busy() bool { return s.CPUPercent > BusyCPUPercent }
