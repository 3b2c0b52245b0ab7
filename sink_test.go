package main

import (
	"bytes"
	"log"
	"strings"
	"testing"
	"time"
)

func TestFormatSnapshotMarksAbsentFields(t *testing.T) {
	line := formatSnapshot(Snapshot{Timestamp: time.Now()})
	for _, want := range []string{"cpu n/a", "mem n/a", "temp n/a"} {
		if !strings.Contains(line, want) {
			t.Errorf("expected %q in %q", want, line)
		}
	}
}

func TestFormatSnapshotRendersValues(t *testing.T) {
	snap := Snapshot{
		Timestamp:          time.Now(),
		CPU:                &CPUMetrics{UtilizationPercent: 12.34, Load1Min: 110.5, Load5Min: 90.25, Load15Min: 80, FrequencyMHz: 1500},
		Memory:             &MemoryMetrics{UsedPercent: 41.2, AvailableGB: 1.75, SwapUsedPercent: 3.5, SwapFreeGB: 0.5},
		TemperatureCelsius: floatPtr(51.27),
		Services:           map[string]bool{"ssh": true, "docker": false},
	}

	line := formatSnapshot(snap)
	for _, want := range []string{"12.34%", "110.50", "51.27°C", "1/2 active", "1500MHz"} {
		if !strings.Contains(line, want) {
			t.Errorf("expected %q in %q", want, line)
		}
	}
}

func TestLogSinkWritesOneWarningPerAlert(t *testing.T) {
	var buf bytes.Buffer
	sink := newLogSink(log.New(&buf, "", 0))

	now := time.Now()
	sink.Report(Snapshot{Timestamp: now}, []Alert{
		{Kind: AlertServiceDown, Severity: SeverityWarning, Message: "service docker is not running", Timestamp: now},
		{Kind: AlertHighMemory, Severity: SeverityWarning, Message: "high memory usage detected: 95.00%", Timestamp: now},
	})

	out := buf.String()
	if got := strings.Count(out, "WARNING"); got != 2 {
		t.Errorf("expected 2 warning lines, got %d:\n%s", got, out)
	}
	if !strings.Contains(out, "metrics:") {
		t.Errorf("expected a snapshot summary line:\n%s", out)
	}
}
