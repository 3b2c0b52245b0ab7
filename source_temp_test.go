package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "temp")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func TestTemperatureConversion(t *testing.T) {
	src := newTemperatureSource(writeTempFile(t, "45678\n"))

	var snap Snapshot
	if err := src.Sample(context.Background(), &snap); err != nil {
		t.Fatalf("Sample: %v", err)
	}
	if snap.TemperatureCelsius == nil {
		t.Fatal("temperature should be present")
	}
	if got := *snap.TemperatureCelsius; got != 45.68 {
		t.Errorf("expected 45.68, got %v", got)
	}
}

func TestTemperatureMissingFileIsUnavailable(t *testing.T) {
	src := newTemperatureSource(filepath.Join(t.TempDir(), "nope"))

	var snap Snapshot
	err := src.Sample(context.Background(), &snap)
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
	var srcErr *SourceError
	if !errors.As(err, &srcErr) {
		t.Fatalf("expected *SourceError, got %T", err)
	}
	if srcErr.Kind != ErrUnavailable {
		t.Errorf("expected %s, got %s", ErrUnavailable, srcErr.Kind)
	}
	if snap.TemperatureCelsius != nil {
		t.Error("failed sample must leave the field absent")
	}
}

func TestTemperatureGarbageIsUnavailable(t *testing.T) {
	src := newTemperatureSource(writeTempFile(t, "not a number"))

	var snap Snapshot
	err := src.Sample(context.Background(), &snap)
	var srcErr *SourceError
	if !errors.As(err, &srcErr) || srcErr.Kind != ErrUnavailable {
		t.Fatalf("expected unavailable, got %v", err)
	}
	if snap.TemperatureCelsius != nil {
		t.Error("failed sample must leave the field absent")
	}
}

func TestTemperatureDefaultPath(t *testing.T) {
	src := newTemperatureSource("")
	if src.path != defaultTemperaturePath {
		t.Fatalf("expected %s, got %s", defaultTemperaturePath, src.path)
	}
}
