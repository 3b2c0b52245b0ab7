package main

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"
)

// LoopState tracks the monitor's lifecycle.
type LoopState string

const (
	LoopIdle    LoopState = "idle"
	LoopRunning LoopState = "running"
	LoopStopped LoopState = "stopped"
	LoopFailed  LoopState = "failed"
)

// ReportSink receives the snapshot and alerts of each tick. The only
// contract is that it does not block the loop indefinitely.
type ReportSink interface {
	Report(snap Snapshot, alerts []Alert)
}

// MonitorLoop drives one collect → evaluate → report cycle per tick.
type MonitorLoop struct {
	collector *SnapshotCollector
	sink      ReportSink
	logger    *log.Logger

	mu    sync.Mutex
	state LoopState
	rules Rules

	stopOnce sync.Once
	stopCh   chan struct{}
	done     chan struct{}
}

func newMonitorLoop(collector *SnapshotCollector, sink ReportSink, rules Rules, logger *log.Logger) *MonitorLoop {
	return &MonitorLoop{
		collector: collector,
		sink:      sink,
		logger:    logger,
		state:     LoopIdle,
		rules:     rules,
		stopCh:    make(chan struct{}),
		done:      make(chan struct{}),
	}
}

// SetRules swaps the alert thresholds; the change applies from the next
// tick.
func (m *MonitorLoop) SetRules(rules Rules) {
	m.mu.Lock()
	m.rules = rules
	m.mu.Unlock()
}

func (m *MonitorLoop) State() LoopState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Start blocks and runs the loop until Stop or context cancellation. Each
// cycle sleeps for interval after finishing its own work, so the actual
// period is interval plus collection time; the cadence is deliberately not
// drift-corrected.
func (m *MonitorLoop) Start(ctx context.Context, interval time.Duration) error {
	m.mu.Lock()
	if m.state != LoopIdle {
		state := m.state
		m.mu.Unlock()
		return fmt.Errorf("monitor loop is %s, not idle", state)
	}
	if interval <= 0 {
		m.state = LoopFailed
		m.mu.Unlock()
		return fmt.Errorf("invalid monitor interval %v", interval)
	}
	m.state = LoopRunning
	m.mu.Unlock()

	defer close(m.done)
	defer m.setState(LoopStopped)

	for {
		m.tick(ctx)
		select {
		case <-m.stopCh:
			return nil
		case <-ctx.Done():
			return nil
		case <-time.After(interval):
		}
	}
}

// Stop signals the loop to exit and waits for the in-flight tick to
// finish. Safe to call more than once and before Start.
func (m *MonitorLoop) Stop() {
	m.stopOnce.Do(func() { close(m.stopCh) })
	m.mu.Lock()
	wait := m.state == LoopRunning
	m.mu.Unlock()
	if wait {
		<-m.done
	}
}

func (m *MonitorLoop) setState(s LoopState) {
	m.mu.Lock()
	m.state = s
	m.mu.Unlock()
}

// tick runs one full cycle. A panic escaping the collector, evaluator or
// sink is logged and swallowed: the loop is meant to run indefinitely, and
// only an explicit stop ends it. Catch-log-continue, never catch-and-hide.
func (m *MonitorLoop) tick(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			m.logger.Printf("ERROR: tick aborted: %v", r)
		}
	}()

	snap := m.collector.Collect(ctx)

	m.mu.Lock()
	rules := m.rules
	m.mu.Unlock()

	m.sink.Report(snap, evaluateAlerts(snap, rules))
}
