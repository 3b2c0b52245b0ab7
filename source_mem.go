package main

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v3/mem"
)

const bytesPerGB = 1 << 30

type memorySource struct{}

func (memorySource) Name() string { return "memory" }

func (memorySource) Sample(ctx context.Context, snap *Snapshot) error {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return unavailable("memory", fmt.Errorf("virtual memory: %w", err))
	}
	sw, err := mem.SwapMemoryWithContext(ctx)
	if err != nil {
		return unavailable("memory", fmt.Errorf("swap: %w", err))
	}
	snap.Memory = &MemoryMetrics{
		UsedPercent:     vm.UsedPercent,
		AvailableGB:     round2(float64(vm.Available) / bytesPerGB),
		SwapUsedPercent: sw.UsedPercent,
		SwapFreeGB:      round2(float64(sw.Free) / bytesPerGB),
	}
	return nil
}
