package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/load"
)

// cpuUtilizationWindow is the sampling window for instantaneous CPU
// utilization. Every collection blocks for at least this long.
const cpuUtilizationWindow = 1 * time.Second

type cpuSource struct{}

func (cpuSource) Name() string { return "cpu" }

func (cpuSource) Sample(ctx context.Context, snap *Snapshot) error {
	avg, err := load.AvgWithContext(ctx)
	if err != nil {
		return unavailable("cpu", fmt.Errorf("load averages: %w", err))
	}
	cores, err := cpu.CountsWithContext(ctx, true)
	if err != nil {
		return unavailable("cpu", fmt.Errorf("core count: %w", err))
	}
	if cores < 1 {
		cores = 1
	}
	pct, err := cpu.PercentWithContext(ctx, cpuUtilizationWindow, false)
	if err != nil {
		return unavailable("cpu", fmt.Errorf("utilization: %w", err))
	}
	if len(pct) == 0 {
		return unavailable("cpu", errors.New("utilization: empty sample"))
	}

	m := &CPUMetrics{
		UtilizationPercent: round2(pct[0]),
		Load1Min:           round2(avg.Load1 / float64(cores) * 100),
		Load5Min:           round2(avg.Load5 / float64(cores) * 100),
		Load15Min:          round2(avg.Load15 / float64(cores) * 100),
	}
	// Clock frequency is best-effort; some kernels expose no cpufreq data.
	if info, err := cpu.InfoWithContext(ctx); err == nil && len(info) > 0 {
		m.FrequencyMHz = info[0].Mhz
	}
	snap.CPU = m
	return nil
}
