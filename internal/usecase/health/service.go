package health

import (
	"context"

	"go.uber.org/zap"
)

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all probes passed.
	Healthy Status = "ok"
	// Degraded indicates some probes failed.
	Degraded Status = "degraded"
	// Unhealthy indicates every probe failed.
	Unhealthy Status = "error"
)

// CheckResult represents an individual probe outcome.
type CheckResult string

const (
	// CheckOK indicates a passing probe.
	CheckOK CheckResult = "ok"
	// CheckError indicates a failing probe.
	CheckError CheckResult = "error"
)

// Report aggregates probe results.
type Report struct {
	Status Status
	Checks map[string]CheckResult
}

// Service runs self-check probes.
type Service struct {
	probes []Prober
	logger *zap.Logger
}

// New creates a Service. With no probes, DefaultProbes() is used.
func New(logger *zap.Logger, probes ...Prober) *Service {
	if len(probes) == 0 {
		probes = DefaultProbes()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{probes: probes, logger: logger}
}

// Check runs every probe.
func (s *Service) Check(ctx context.Context) Report {
	checks := make(map[string]CheckResult, len(s.probes))
	failed := 0

	for _, p := range s.probes {
		if err := p.Probe(ctx); err != nil {
			checks[p.Name()] = CheckError
			failed++
			s.logger.Error("Self-check failed", zap.String("probe", p.Name()), zap.Error(err))
			continue
		}
		checks[p.Name()] = CheckOK
	}

	status := Healthy
	switch {
	case failed == 0:
	case failed == len(s.probes):
		status = Unhealthy
	default:
		status = Degraded
	}

	return Report{Status: status, Checks: checks}
}
