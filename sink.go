package main

import (
	"fmt"
	"log"
	"strings"
)

// logSink is the fire-and-log ReportSink: one summary line per snapshot,
// one warning line per alert.
type logSink struct {
	logger *log.Logger
}

func newLogSink(logger *log.Logger) *logSink {
	return &logSink{logger: logger}
}

func (s *logSink) Report(snap Snapshot, alerts []Alert) {
	s.logger.Printf("metrics: %s", formatSnapshot(snap))
	for _, a := range alerts {
		s.logger.Printf("WARNING: [%s] %s", a.Kind, a.Message)
	}
}

// formatSnapshot renders one compact line; "n/a" marks fields whose source
// failed this tick.
func formatSnapshot(snap Snapshot) string {
	var b strings.Builder

	if c := snap.CPU; c != nil {
		fmt.Fprintf(&b, "cpu %.2f%% load %.2f/%.2f/%.2f freq %.0fMHz",
			c.UtilizationPercent, c.Load1Min, c.Load5Min, c.Load15Min, c.FrequencyMHz)
	} else {
		b.WriteString("cpu n/a")
	}

	if m := snap.Memory; m != nil {
		fmt.Fprintf(&b, " | mem %.2f%% used, %.2fGB avail, swap %.2f%% used, %.2fGB free",
			m.UsedPercent, m.AvailableGB, m.SwapUsedPercent, m.SwapFreeGB)
	} else {
		b.WriteString(" | mem n/a")
	}

	if t := snap.TemperatureCelsius; t != nil {
		fmt.Fprintf(&b, " | temp %.2f°C", *t)
	} else {
		b.WriteString(" | temp n/a")
	}

	if len(snap.Services) > 0 {
		up := 0
		for _, active := range snap.Services {
			if active {
				up++
			}
		}
		fmt.Fprintf(&b, " | services %d/%d active", up, len(snap.Services))
	}

	return b.String()
}
