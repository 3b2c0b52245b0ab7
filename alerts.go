package main

import (
	"fmt"
	"sort"
	"time"
)

// AlertKind identifies which threshold rule fired.
type AlertKind string

const (
	AlertHighTemperature AlertKind = "high_temperature"
	AlertHighMemory      AlertKind = "high_memory"
	AlertServiceDown     AlertKind = "service_down"
)

type Severity string

const (
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// Alert is a rule-triggered notification derived from one Snapshot. Alerts
// live for a single tick: produced, reported, discarded.
type Alert struct {
	Kind      AlertKind
	Severity  Severity
	Message   string
	Timestamp time.Time
}

// Rules holds the alert thresholds and the declared service order. Both
// numeric comparisons are strict: a value exactly at the threshold does
// not fire. The rule set itself is fixed; only the numbers are data.
type Rules struct {
	TemperatureCelsius float64
	MemoryUsedPercent  float64
	ServiceOrder       []string
}

func defaultRules() Rules {
	return Rules{
		TemperatureCelsius: 80.0,
		MemoryUsedPercent:  90.0,
	}
}

// evaluateAlerts applies the rule set to one snapshot. It is a pure
// function: no hidden state, same snapshot in, same alerts out. Rules are
// independent and all applicable ones fire. Absent fields skip their rule.
func evaluateAlerts(snap Snapshot, rules Rules) []Alert {
	var alerts []Alert

	if t := snap.TemperatureCelsius; t != nil && *t > rules.TemperatureCelsius {
		alerts = append(alerts, Alert{
			Kind:      AlertHighTemperature,
			Severity:  SeverityWarning,
			Message:   fmt.Sprintf("high temperature detected: %.2f°C", *t),
			Timestamp: snap.Timestamp,
		})
	}
	if m := snap.Memory; m != nil && m.UsedPercent > rules.MemoryUsedPercent {
		alerts = append(alerts, Alert{
			Kind:      AlertHighMemory,
			Severity:  SeverityWarning,
			Message:   fmt.Sprintf("high memory usage detected: %.2f%%", m.UsedPercent),
			Timestamp: snap.Timestamp,
		})
	}
	for _, name := range serviceOrdering(snap.Services, rules.ServiceOrder) {
		if !snap.Services[name] {
			alerts = append(alerts, Alert{
				Kind:      AlertServiceDown,
				Severity:  SeverityWarning,
				Message:   fmt.Sprintf("service %s is not running", name),
				Timestamp: snap.Timestamp,
			})
		}
	}
	return alerts
}

// serviceOrdering walks the declared order first, then any checked service
// the declaration does not mention, sorted so the output stays
// deterministic.
func serviceOrdering(status map[string]bool, order []string) []string {
	names := make([]string, 0, len(status))
	seen := make(map[string]bool, len(status))
	for _, name := range order {
		if _, ok := status[name]; ok && !seen[name] {
			names = append(names, name)
			seen[name] = true
		}
	}
	var rest []string
	for name := range status {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	return append(names, rest...)
}
