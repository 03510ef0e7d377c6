package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/linkprotect/linkprotect/internal/check"
	"github.com/linkprotect/linkprotect/internal/config"
	"github.com/linkprotect/linkprotect/internal/engine"
	"github.com/linkprotect/linkprotect/internal/fetch"
	"github.com/linkprotect/linkprotect/internal/log"
	"github.com/linkprotect/linkprotect/internal/server"
)

// NewServeCmd creates the serve command.
func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the LinkProtect HTTP API server",
		Long: `Serve starts the LinkProtect HTTP API.

Endpoints:
  POST /scan    evaluate a URL and return a verdict
  GET  /health  liveness probe
  GET  /        welcome page

Examples:
  # Start with defaults on :8080
  linkprotect serve

  # Custom address and a stricter fetch timeout
  linkprotect serve --addr :9000 --fetch-timeout 2s

  # Load heuristic rule lists from a YAML file
  linkprotect serve --rules ./rules.yaml

Rules file (.linkprotect.yaml) example:
  trustedDomains:
    - yandex.ru
    - gov.ru
  suspiciousTLDs:
    - tk
    - zip
  shorteners:
    - bit.ly
  protectedBrands:
    - yandex`,
		Args: cobra.NoArgs,
		RunE: runServeCmd,
	}

	cmd.Flags().StringP("addr", "a", config.DefaultAddr,
		"HTTP listen address")
	cmd.Flags().DurationP("fetch-timeout", "t", config.DefaultFetchTimeout,
		"Timeout for the deep-content page fetch")
	cmd.Flags().Int64P("max-body-size", "s", config.DefaultMaxBodySize,
		"Maximum fetched page size in bytes")
	cmd.Flags().StringP("rules", "r", "",
		"Rules file path (default: .linkprotect.yaml in current or config directory)")

	return cmd
}

// runServeCmd executes the serve command.
func runServeCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildServeConfig(cmd)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := log.NewLogger(os.Stderr, log.LevelFromEnv(getVerboseFlag(cmd)))
	slog.SetDefault(logger)

	eng, err := newEngine(cfg, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.New(cfg, eng, logger).ListenAndServe(ctx)
}

// buildServeConfig creates a Config from serve command flags.
func buildServeConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error

	cfg.Addr, err = cmd.Flags().GetString("addr")
	if err != nil {
		return nil, err
	}

	cfg.FetchTimeout, err = cmd.Flags().GetDuration("fetch-timeout")
	if err != nil {
		return nil, err
	}

	cfg.MaxBodySize, err = cmd.Flags().GetInt64("max-body-size")
	if err != nil {
		return nil, err
	}

	cfg.RulesFilePath, err = cmd.Flags().GetString("rules")
	if err != nil {
		return nil, err
	}

	if err := applyRules(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyRules loads heuristic rule lists from the rules file into cfg.
// If the user explicitly specified a rules path, a missing file is an error.
// If no path was specified and no file is found, the built-in defaults stay.
func applyRules(cfg *config.Config) error {
	explicit := cfg.RulesFilePath != ""
	path := config.FindRulesFile(cfg.RulesFilePath)

	if path == "" {
		if explicit {
			return fmt.Errorf("rules file not found: %s", cfg.RulesFilePath)
		}
		return nil
	}

	rules, err := config.LoadRulesFile(path)
	if err != nil {
		return fmt.Errorf("failed to load rules file %s: %w", path, err)
	}
	cfg.Rules = rules

	return nil
}

// newEngine wires the fetch client, check registry and scan engine from cfg.
func newEngine(cfg *config.Config, logger *slog.Logger) (*engine.Engine, error) {
	fetcher := fetch.NewClient(
		fetch.WithTimeout(cfg.FetchTimeout),
		fetch.WithMaxBodySize(cfg.MaxBodySize),
	)

	registry, err := check.NewRegistry(cfg.Rules, fetcher)
	if err != nil {
		return nil, fmt.Errorf("failed to build check registry: %w", err)
	}

	return engine.New(registry, engine.WithLogger(logger)), nil
}
