package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/linkprotect/linkprotect/internal/check"
	"github.com/linkprotect/linkprotect/internal/model"
)

// Verdict strings owned by the engine rather than any single check.
const (
	// SafePreamble is prepended to the advisory text of a safe verdict.
	SafePreamble = "The link passed all safety checks.\n"

	// GenericHazardKind and GenericHazardConsequence are the fields of
	// the fail-closed verdict returned when the engine itself fails.
	// They are deliberately non-specific: internal failure detail never
	// reaches the caller.
	GenericHazardKind        = "Scan error"
	GenericHazardConsequence = "The link could not be fully checked. Treat it as unsafe."

	// genericAdvisory is the advisory text of the fail-closed verdict.
	genericAdvisory = "The safety check could not be completed.\n"
)

// Engine runs all registered checks against one request and merges their
// outcomes into a verdict. One Engine serves all requests; it holds no
// per-scan state.
type Engine struct {
	registry *check.Registry
	logger   *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets a custom logger for the engine.
// If not set, slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// New creates a new Engine over the given registry.
func New(registry *check.Registry, opts ...Option) *Engine {
	e := &Engine{registry: registry}

	for _, opt := range opts {
		opt(e)
	}

	if e.logger == nil {
		e.logger = slog.Default()
	}

	return e
}

// Scan evaluates the request against every registered check concurrently
// and returns the aggregated verdict. It never returns an error: any
// internal failure becomes the generic fail-closed verdict.
func (e *Engine) Scan(ctx context.Context, req *model.ScanRequest) (verdict *model.ScanVerdict) {
	logger := e.logger.With("scan_id", uuid.NewString(), "url", req.URL)

	// Aggregation is the engine boundary: whatever goes wrong below must
	// come out as a well-formed verdict, not a panic or an error.
	defer func() {
		if r := recover(); r != nil {
			logger.Error("scan aggregation panicked", "panic", fmt.Sprint(r))
			verdict = failureVerdict()
		}
	}()

	checkers := e.registry.Checkers()
	outcomes := make([]check.Outcome, len(checkers))

	logger.Debug("fanning out", "checks", len(checkers))

	// Plain errgroup, no WithContext: a veto must not cancel in-flight
	// siblings, and check goroutines report problems through their
	// outcome slot rather than an error return.
	var g errgroup.Group
	for i, c := range checkers {
		g.Go(func() error {
			defer func() {
				if r := recover(); r != nil {
					outcomes[i] = check.Fail(fmt.Errorf("check %s panicked: %v", c.Name(), r))
				}
			}()
			outcomes[i] = c.Check(ctx, req)
			return nil
		})
	}
	_ = g.Wait() //nolint:errcheck // Goroutines always return nil

	return e.aggregate(logger, checkers, outcomes)
}

// aggregate merges the collected outcomes, in registry order, into a
// verdict.
//
// Design decision: When several checks veto concurrently, the FIRST veto
// in registry order supplies the hazard fields. Completion order never
// matters because outcomes are already re-sorted by construction; picking
// the first makes the tie-break an explicit contract instead of an
// accident of scheduling.
func (e *Engine) aggregate(logger *slog.Logger, checkers []check.Checker, outcomes []check.Outcome) *model.ScanVerdict {
	var advisory strings.Builder
	var veto *check.Outcome

	for i, out := range outcomes {
		name := checkers[i].Name()

		switch out.Status {
		case check.StatusFail:
			// An operational failure in any check aborts the scan:
			// we cannot claim the URL is safe when part of the
			// evidence is missing. Fail-closed.
			logger.Error("check failed, failing scan closed", "check", name, "error", out.Err)
			return failureVerdict()

		case check.StatusVeto:
			// A veto is a finding, not an error; log accordingly.
			logger.Debug("check vetoed", "check", name, "hazard", out.HazardKind)
			if veto == nil {
				veto = &outcomes[i]
			}

		case check.StatusAdvisory:
			advisory.WriteString(out.Advisory)
			advisory.WriteByte('\n')

		case check.StatusPass:
			// No opinion.
		}
	}

	if veto != nil {
		return model.NewUnsafeVerdict(veto.HazardKind, veto.HazardConsequence, advisory.String())
	}
	return model.NewSafeVerdict(SafePreamble + advisory.String())
}

// failureVerdict returns the fixed fail-closed verdict for engine failures.
func failureVerdict() *model.ScanVerdict {
	return model.NewUnsafeVerdict(GenericHazardKind, GenericHazardConsequence, genericAdvisory)
}
