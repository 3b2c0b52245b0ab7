package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ThresholdConfig holds the alert thresholds as written in the config file.
type ThresholdConfig struct {
	TemperatureCelsius float64 `yaml:"temperature_celsius"`
	MemoryUsedPercent  float64 `yaml:"memory_used_percent"`
}

type Config struct {
	IntervalSeconds     int             `yaml:"interval"`
	LogFile             string          `yaml:"log_file"`
	TemperaturePath     string          `yaml:"temperature_path"`
	Services            []string        `yaml:"services"`
	CheckTimeoutSeconds int             `yaml:"service_check_timeout"`
	Thresholds          ThresholdConfig `yaml:"thresholds"`
}

func defaultConfig() *Config {
	return &Config{
		IntervalSeconds:     60,
		LogFile:             "dev_monitor.log",
		TemperaturePath:     defaultTemperaturePath,
		Services:            []string{"ssh", "docker", "nginx", "postgresql"},
		CheckTimeoutSeconds: 3,
		Thresholds: ThresholdConfig{
			TemperatureCelsius: 80.0,
			MemoryUsedPercent:  90.0,
		},
	}
}

// loadConfig reads a yaml config file on top of the defaults. A missing
// file is not an error: the defaults are a complete configuration.
func loadConfig(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.IntervalSeconds <= 0 {
		return fmt.Errorf("interval must be positive, got %d", c.IntervalSeconds)
	}
	if c.CheckTimeoutSeconds <= 0 {
		return fmt.Errorf("service_check_timeout must be positive, got %d", c.CheckTimeoutSeconds)
	}
	if c.Thresholds.TemperatureCelsius <= 0 {
		return fmt.Errorf("thresholds.temperature_celsius must be positive, got %v", c.Thresholds.TemperatureCelsius)
	}
	if c.Thresholds.MemoryUsedPercent <= 0 || c.Thresholds.MemoryUsedPercent > 100 {
		return fmt.Errorf("thresholds.memory_used_percent must be in (0,100], got %v", c.Thresholds.MemoryUsedPercent)
	}
	return nil
}

func (c *Config) GetInterval() time.Duration {
	return time.Duration(c.IntervalSeconds) * time.Second
}

func (c *Config) GetCheckTimeout() time.Duration {
	return time.Duration(c.CheckTimeoutSeconds) * time.Second
}

// GetRules translates the configured thresholds and service list into the
// evaluator's rule values.
func (c *Config) GetRules() Rules {
	return Rules{
		TemperatureCelsius: c.Thresholds.TemperatureCelsius,
		MemoryUsedPercent:  c.Thresholds.MemoryUsedPercent,
		ServiceOrder:       append([]string(nil), c.Services...),
	}
}
