package utils

import (
	"context"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// SystemSnapshot is reported by the health endpoint
type SystemSnapshot struct {
	CPUPercent    float64 `json:"cpuPercent"`
	MemoryPercent float64 `json:"memoryPercent"`
}

// GetSystemSnapshot samples CPU over a short interval. Sampling errors yield zeros.
func GetSystemSnapshot(ctx context.Context) SystemSnapshot {
	var snap SystemSnapshot

	percentage, err := cpu.PercentWithContext(ctx, 200*time.Millisecond, false)
	if err != nil {
		Log().Warn().Err(err).Msg("Error getting CPU usage")
	} else if len(percentage) > 0 {
		snap.CPUPercent = percentage[0]
	}

	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		Log().Warn().Err(err).Msg("Error getting memory usage")
	} else {
		snap.MemoryPercent = vm.UsedPercent
	}

	return snap
}
