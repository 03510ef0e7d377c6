package check

import (
	"context"

	"github.com/linkprotect/linkprotect/internal/config"
	"github.com/linkprotect/linkprotect/internal/fetch"
	"github.com/linkprotect/linkprotect/internal/model"
)

// Checker defines the interface for individual safety checks.
// Each check focuses on a single heuristic.
//
// Design decision: We use an interface rather than concrete types because:
//  1. The engine can treat all checks uniformly during fan-out
//  2. Enables testing the engine with stub checks
//  3. Allows deployments to register additional checks at startup
type Checker interface {
	// Name returns the check's name for logging and reporting.
	Name() string

	// Check evaluates the request and returns an Outcome.
	// It may suspend on network I/O (the content check) or return
	// immediately. Implementations must not mutate the request and must
	// respect context cancellation when they block.
	Check(ctx context.Context, req *model.ScanRequest) Outcome
}

// Registry is the ordered, immutable-after-startup list of enabled checks.
// The order is significant: the engine aggregates outcomes in registry
// order, so veto precedence and advisory concatenation are deterministic
// regardless of which check finishes first.
type Registry struct {
	checkers []Checker
}

// NewRegistry creates a Registry with all built-in checks registered in
// their fixed order. The fetcher is injected into the one check that
// performs network I/O.
//
// Returns an error if a user-supplied script signature in the rules does
// not compile; a broken rules file must fail startup, not individual scans.
func NewRegistry(rules *config.Rules, fetcher *fetch.Client) (*Registry, error) {
	content, err := NewContentCheck(rules, fetcher)
	if err != nil {
		return nil, err
	}

	r := &Registry{checkers: make([]Checker, 0, 8)}
	r.Register(NewTransportCheck())
	r.Register(NewZoneCheck())
	r.Register(NewTrustedCheck(rules))
	r.Register(NewIPHostCheck())
	r.Register(NewTLDCheck(rules))
	r.Register(NewShortenerCheck(rules))
	r.Register(NewBrandCheck(rules))
	r.Register(content)

	return r, nil
}

// Register appends a check to the registry.
// Registration happens during process startup only; the registry must not
// change once scans are being served.
func (r *Registry) Register(c Checker) {
	r.checkers = append(r.checkers, c)
}

// Checkers returns the registered checks in registry order.
func (r *Registry) Checkers() []Checker {
	return r.checkers
}

// Len returns the number of registered checks.
func (r *Registry) Len() int {
	return len(r.checkers)
}

// Names returns the names of all checks in registry order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.checkers))
	for i, c := range r.checkers {
		names[i] = c.Name()
	}
	return names
}
