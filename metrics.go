package main

import (
	"math"
	"time"
)

// Snapshot is one point-in-time bundle of all sampled metrics. A nil field
// means the source failed on this tick — "unknown" is distinct from a
// measured zero. Snapshots are built by the collector, consumed by the
// evaluator and sink, and discarded; nothing retains them across ticks.
type Snapshot struct {
	Timestamp          time.Time
	CPU                *CPUMetrics
	Memory             *MemoryMetrics
	TemperatureCelsius *float64
	Services           map[string]bool
}

// CPUMetrics holds processor telemetry for one snapshot. Load averages are
// normalized by logical core count and expressed as percent, so they can
// exceed 100 on an overloaded box; they are never clamped.
type CPUMetrics struct {
	UtilizationPercent float64
	Load1Min           float64
	Load5Min           float64
	Load15Min          float64
	FrequencyMHz       float64 // 0 when the platform does not report it
}

// MemoryMetrics holds RAM and swap figures. GB values use 1024-based units.
type MemoryMetrics struct {
	UsedPercent     float64
	AvailableGB     float64
	SwapUsedPercent float64
	SwapFreeGB      float64
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
