package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// defaultTemperaturePath is where the Raspberry Pi kernel exposes the SoC
// temperature, in milli-degrees Celsius.
const defaultTemperaturePath = "/sys/class/thermal/thermal_zone0/temp"

// temperatureSource reads a single integer from a sysfs file. The file is
// absent on non-matching hardware; that is an expected failure and must
// never take down the loop.
type temperatureSource struct {
	path string
}

func newTemperatureSource(path string) *temperatureSource {
	if path == "" {
		path = defaultTemperaturePath
	}
	return &temperatureSource{path: path}
}

func (s *temperatureSource) Name() string { return "temperature" }

func (s *temperatureSource) Sample(_ context.Context, snap *Snapshot) error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return unavailable("temperature", err)
	}
	milli, err := strconv.ParseFloat(strings.TrimSpace(string(data)), 64)
	if err != nil {
		return unavailable("temperature", fmt.Errorf("parsing %s: %w", s.path, err))
	}
	celsius := round2(milli / 1000)
	snap.TemperatureCelsius = &celsius
	return nil
}
