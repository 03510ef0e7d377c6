package config

import (
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values.
// These mirror the behavior of the original LinkProtect service where
// applicable and stay conservative everywhere else.
const (
	// DefaultAddr is the listen address of the HTTP API.
	DefaultAddr = ":8080"

	// DefaultFetchTimeout bounds the page-content fetch performed by the
	// deep check. 4 seconds keeps worst-case scan latency acceptable for
	// interactive clients (browser extensions, messengers) while still
	// allowing most pages to load.
	DefaultFetchTimeout = 4 * time.Second

	// DefaultMaxBodySize limits how much of a fetched page is read.
	// 1MB covers the <head> and inline scripts of virtually any page
	// while preventing memory exhaustion from hostile responses.
	DefaultMaxBodySize = 1 * 1024 * 1024

	// DefaultReadTimeout is the HTTP server read timeout.
	DefaultReadTimeout = 10 * time.Second

	// DefaultWriteTimeout is the HTTP server write timeout. It must
	// exceed DefaultFetchTimeout so a deep scan can finish writing its
	// response.
	DefaultWriteTimeout = 15 * time.Second

	// DefaultShutdownTimeout bounds graceful shutdown on SIGINT/SIGTERM.
	DefaultShutdownTimeout = 10 * time.Second

	// DefaultScanConcurrency is the number of URLs scanned in parallel
	// by the one-shot CLI scan command.
	DefaultScanConcurrency = 4

	// AppName is the application name used for XDG directory paths.
	AppName = "linkprotect"

	// LogLevelEnv is the environment variable that selects log verbosity.
	// Recognized values: debug, info, warn, error.
	LogLevelEnv = "LINKPROTECT_LOG_LEVEL"
)

// Config holds all configuration options for LinkProtect.
//
// Design decision: We use a single flat struct instead of nested structs
// (e.g., ServerConfig, FetchConfig) for simplicity. The number of options
// is manageable, and nesting would add complexity without significant
// benefit.
type Config struct {
	// Addr is the HTTP listen address in "host:port" or ":port" format.
	Addr string

	// FetchTimeout is the per-request timeout for the deep-content fetch.
	// This is the only network timeout in the scan path; all other checks
	// are pure and complete near-instantly.
	FetchTimeout time.Duration

	// MaxBodySize is the maximum fetched response body size in bytes.
	// Responses larger than this are truncated.
	MaxBodySize int64

	// ReadTimeout and WriteTimeout are applied to the HTTP server.
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// ShutdownTimeout bounds graceful server shutdown.
	ShutdownTimeout time.Duration

	// ScanConcurrency is the parallelism of the CLI scan command when
	// given multiple URLs. It does not affect the HTTP API, which scans
	// one URL per request.
	ScanConcurrency int

	// Verbose enables debug-level log output. The LINKPROTECT_LOG_LEVEL
	// environment variable takes precedence when set.
	Verbose bool

	// RulesFilePath is an explicit path to the YAML rules file.
	// If empty, the default search order is used (see FindRulesFile).
	RulesFilePath string

	// Rules holds the heuristic rule lists the checks are built from.
	// Populated with built-in defaults by NewConfig and optionally
	// replaced from the rules file.
	Rules *Rules
}

// NewConfig creates a new Config with default values.
// All fields are set to safe, sensible defaults that work out of the box.
// Callers override specific values from flags after creation.
func NewConfig() *Config {
	return &Config{
		Addr:            DefaultAddr,
		FetchTimeout:    DefaultFetchTimeout,
		MaxBodySize:     DefaultMaxBodySize,
		ReadTimeout:     DefaultReadTimeout,
		WriteTimeout:    DefaultWriteTimeout,
		ShutdownTimeout: DefaultShutdownTimeout,
		ScanConcurrency: DefaultScanConcurrency,
		Rules:           DefaultRules(),
	}
}

// XDGConfigDir returns the XDG config directory for LinkProtect.
// On Linux: ~/.config/linkprotect
// On macOS: ~/Library/Application Support/linkprotect
// On Windows: %APPDATA%\linkprotect
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns a specific sentinel error describing what is invalid.
//
// Design decision: We validate once after flag parsing rather than at each
// point of use to fail fast with a clear message. The first error found is
// returned because fixing one error often makes others irrelevant.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return ErrEmptyAddr
	}

	// Zero or negative timeout would make every deep check fail closed.
	if c.FetchTimeout <= 0 {
		return ErrInvalidFetchTimeout
	}

	if c.MaxBodySize <= 0 {
		return ErrInvalidMaxBodySize
	}

	if c.ScanConcurrency <= 0 {
		return ErrInvalidConcurrency
	}

	if c.Rules == nil {
		return ErrNilRules
	}

	return c.Rules.Validate()
}
