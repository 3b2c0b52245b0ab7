package main

import (
	"os"
	"testing"
	"time"
)

func TestConfigWatcherReloadsOnWrite(t *testing.T) {
	path := writeConfig(t, "thresholds: {temperature_celsius: 80, memory_used_percent: 90}\n")

	applied := make(chan *Config, 8)
	cw, err := newConfigWatcher(path, quietLogger(), func(cfg *Config) {
		applied <- cfg
	})
	if err != nil {
		t.Fatalf("newConfigWatcher: %v", err)
	}
	defer cw.Stop()

	if err := os.WriteFile(path, []byte("thresholds: {temperature_celsius: 70, memory_used_percent: 90}\n"), 0644); err != nil {
		t.Fatalf("rewriting config: %v", err)
	}

	select {
	case cfg := <-applied:
		if cfg.Thresholds.TemperatureCelsius != 70 {
			t.Errorf("expected the new threshold, got %v", cfg.Thresholds.TemperatureCelsius)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("config change was never applied")
	}
}

func TestConfigWatcherKeepsRunningOnBadConfig(t *testing.T) {
	path := writeConfig(t, "interval: 60\n")

	applied := make(chan *Config, 8)
	cw, err := newConfigWatcher(path, quietLogger(), func(cfg *Config) {
		applied <- cfg
	})
	if err != nil {
		t.Fatalf("newConfigWatcher: %v", err)
	}
	defer cw.Stop()

	// An invalid rewrite must be ignored...
	if err := os.WriteFile(path, []byte("interval: 0\n"), 0644); err != nil {
		t.Fatalf("rewriting config: %v", err)
	}
	// ...and a later valid one still applied.
	time.Sleep(100 * time.Millisecond)
	if err := os.WriteFile(path, []byte("interval: 30\n"), 0644); err != nil {
		t.Fatalf("rewriting config: %v", err)
	}

	deadline := time.After(3 * time.Second)
	for {
		select {
		case cfg := <-applied:
			if cfg.IntervalSeconds == 0 {
				t.Fatal("an invalid config must never be applied")
			}
			if cfg.IntervalSeconds == 30 {
				return
			}
		case <-deadline:
			t.Fatal("valid config change was never applied")
		}
	}
}
