package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
)

var version = "dev"

func main() {
	configPath := flag.String("config", "", "Path to config file")
	intervalFlag := flag.Duration("interval", 0, "Override monitoring interval (e.g. 30s)")
	once := flag.Bool("once", false, "Collect and report a single snapshot, then exit")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println("devmon", version)
		return
	}

	// Determine config path
	cfgPath := *configPath
	if cfgPath == "" {
		home, _ := os.UserHomeDir()
		cfgPath = filepath.Join(home, ".devmon", "devmon.yaml")
	}

	config, err := loadConfig(cfgPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Apply flag overrides
	interval := config.GetInterval()
	if *intervalFlag > 0 {
		interval = *intervalFlag
	}

	logger, closeLog, err := openLogger(config.LogFile)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	defer closeLog()

	// Wire up the pipeline: sources → collector → evaluator → sink.
	services := newServiceSource(config.Services, config.GetCheckTimeout(), logger)
	collector := newSnapshotCollector(logger,
		cpuSource{},
		memorySource{},
		newTemperatureSource(config.TemperaturePath),
		services,
	)
	sink := newLogSink(logger)
	monitor := newMonitorLoop(collector, sink, config.GetRules(), logger)

	if *once {
		snap := collector.Collect(context.Background())
		sink.Report(snap, evaluateAlerts(snap, config.GetRules()))
		return
	}

	// Threshold and service-list changes apply without a restart.
	watcher, err := newConfigWatcher(cfgPath, logger, func(cfg *Config) {
		monitor.SetRules(cfg.GetRules())
		services.setServices(cfg.Services)
	})
	if err != nil {
		logger.Printf("WARNING: config watch disabled: %v", err)
	} else {
		defer watcher.Stop()
	}

	// Graceful shutdown: the in-flight tick finishes before the loop exits.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Println("Shutting down...")
		monitor.Stop()
	}()

	logger.Printf("devmon %s monitoring every %v (services: %v)", version, interval, config.Services)
	if err := monitor.Start(context.Background(), interval); err != nil {
		log.Fatalf("Monitor: %v", err)
	}
	logger.Println("Monitoring stopped")
}

func openLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(os.Stderr, "", log.LstdFlags), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening %s: %w", path, err)
	}
	logger := log.New(io.MultiWriter(f, os.Stderr), "", log.LstdFlags)
	return logger, func() { f.Close() }, nil
}
