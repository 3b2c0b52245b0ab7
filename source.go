package main

import (
	"context"
	"fmt"
)

// MetricSource produces one metric category. Implementations either fully
// populate their Snapshot fields or return a *SourceError and leave the
// snapshot untouched; they never partially write.
type MetricSource interface {
	Name() string
	Sample(ctx context.Context, snap *Snapshot) error
}

// ErrKind classifies source failures. Neither kind is fatal to the loop;
// the collector maps every failure to an absent snapshot field.
type ErrKind string

const (
	// ErrUnavailable: the platform facility is missing or unreadable.
	// Expected on non-matching hardware and recoverable.
	ErrUnavailable ErrKind = "unavailable"
	// ErrTimeout: an external check exceeded its bound.
	ErrTimeout ErrKind = "timeout"
)

// SourceError is the only error type a MetricSource returns.
type SourceError struct {
	Source string
	Kind   ErrKind
	Err    error
}

func (e *SourceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %s: %v", e.Source, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s %s", e.Source, e.Kind)
}

func (e *SourceError) Unwrap() error { return e.Err }

func unavailable(source string, err error) *SourceError {
	return &SourceError{Source: source, Kind: ErrUnavailable, Err: err}
}
