package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os/exec"
	"strings"
	"sync"
	"time"
)

const defaultServiceCheckTimeout = 3 * time.Second

// probeFunc asks the init system whether one service is active and returns
// the raw status output. Injected so tests never shell out to systemctl.
type probeFunc func(ctx context.Context, service string) (string, error)

func systemctlProbe(ctx context.Context, service string) (string, error) {
	out, err := exec.CommandContext(ctx, "systemctl", "is-active", service).Output()
	return string(out), err
}

// serviceSource checks an ordered list of services, one bounded external
// invocation each. Checks are independent: a failing probe records false
// for its own service only. A probe that could not run at all collapses to
// false as well, same as a genuinely inactive service — the error is still
// logged so the distinction survives in the log stream.
type serviceSource struct {
	mu       sync.Mutex
	services []string

	timeout time.Duration
	probe   probeFunc
	logger  *log.Logger
}

func newServiceSource(services []string, timeout time.Duration, logger *log.Logger) *serviceSource {
	if timeout <= 0 {
		timeout = defaultServiceCheckTimeout
	}
	return &serviceSource{
		services: services,
		timeout:  timeout,
		probe:    systemctlProbe,
		logger:   logger,
	}
}

func (s *serviceSource) Name() string { return "services" }

// setServices replaces the monitored list; the change applies from the
// next collection.
func (s *serviceSource) setServices(services []string) {
	s.mu.Lock()
	s.services = services
	s.mu.Unlock()
}

// Sample never fails: every listed service gets an entry, true only when
// the init system reported it active.
func (s *serviceSource) Sample(ctx context.Context, snap *Snapshot) error {
	s.mu.Lock()
	services := append([]string(nil), s.services...)
	s.mu.Unlock()

	status := make(map[string]bool, len(services))
	for _, name := range services {
		active, err := s.check(ctx, name)
		if err != nil {
			s.logger.Printf("WARNING: %v", err)
		}
		status[name] = active
	}
	snap.Services = status
	return nil
}

// check runs one status query with its own deadline. A non-zero exit is a
// normal answer (systemctl prints "inactive" and exits 3); only a query
// that failed to run or timed out is reported as an error.
func (s *serviceSource) check(ctx context.Context, name string) (bool, error) {
	cctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	out, err := s.probe(cctx, name)
	if err != nil {
		// A killed process also surfaces as *exec.ExitError, so the
		// deadline has to be checked first.
		if cctx.Err() != nil {
			return false, &SourceError{
				Source: "services",
				Kind:   ErrTimeout,
				Err:    fmt.Errorf("checking %s: %w", name, err),
			}
		}
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return false, &SourceError{
				Source: "services",
				Kind:   ErrUnavailable,
				Err:    fmt.Errorf("checking %s: %w", name, err),
			}
		}
	}
	return strings.TrimSpace(out) == "active", nil
}
