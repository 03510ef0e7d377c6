package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and Rules.Validate() and
// provide specific information about what is wrong.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate(). This allows callers to use
// errors.Is() for programmatic error handling while still providing
// human-readable messages.
var (
	// ErrEmptyAddr is returned when the HTTP listen address is empty.
	ErrEmptyAddr = errors.New("empty listen address: provide host:port or :port")

	// ErrInvalidFetchTimeout is returned when the deep-check fetch timeout
	// is not positive. A zero timeout would make every content fetch fail.
	ErrInvalidFetchTimeout = errors.New("invalid fetch timeout: must be positive")

	// ErrInvalidMaxBodySize is returned when the max fetch body size is
	// not positive.
	ErrInvalidMaxBodySize = errors.New("invalid max body size: must be positive")

	// ErrInvalidConcurrency is returned when the CLI scan concurrency is
	// not positive. Zero would mean no URLs are ever scanned.
	ErrInvalidConcurrency = errors.New("invalid scan concurrency: must be positive")

	// ErrNilRules is returned when the rule lists are missing entirely.
	ErrNilRules = errors.New("nil rules: heuristic rule lists are required")

	// ErrNoTrustedDomains is returned when the trusted-domain list is
	// empty. The brand-impersonation check needs at least one legitimate
	// domain to compare against.
	ErrNoTrustedDomains = errors.New("no trusted domains configured")

	// ErrRulesNotFound is returned when the rules file does not exist.
	ErrRulesNotFound = errors.New("rules file not found")
)
