package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/linkprotect/linkprotect/internal/config"
	"github.com/linkprotect/linkprotect/internal/log"
	"github.com/linkprotect/linkprotect/internal/model"
	"github.com/linkprotect/linkprotect/internal/report"
)

// NewScanCmd creates the scan command.
func NewScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan <url> [<url>...]",
		Short: "Scan links for safety issues from the command line",
		Long: `Scan evaluates one or more URLs against the safety heuristics and prints
a verdict for each, without starting the HTTP server.

Examples:
  # Scan a single link
  linkprotect scan https://example.com

  # Scan several links in parallel
  linkprotect scan https://a.example https://b.example https://c.example

  # Enable the deep content check (fetches each page)
  linkprotect scan --deep https://example.com

  # Output JSON report
  linkprotect scan --json https://example.com

  # Write a Markdown report to a file
  linkprotect scan --markdown --output report.md https://example.com`,
		Args: cobra.MinimumNArgs(1),
		RunE: runScanCmd,
	}

	cmd.Flags().BoolP("deep", "d", false,
		"Fetch each page and inspect its content for obfuscated scripts")
	cmd.Flags().Bool("allow-fetch", true,
		"Permit page-content fetching; --deep has no effect when disabled")
	cmd.Flags().DurationP("fetch-timeout", "t", config.DefaultFetchTimeout,
		"Timeout for the deep-content page fetch")
	cmd.Flags().IntP("concurrency", "b", config.DefaultScanConcurrency,
		"Number of URLs scanned in parallel")
	cmd.Flags().StringP("rules", "r", "",
		"Rules file path (default: .linkprotect.yaml in current or config directory)")

	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")

	cmd.MarkFlagsMutuallyExclusive("json", "markdown")

	return cmd
}

// runScanCmd executes the scan command.
func runScanCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildScanConfig(cmd)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	verbose := getVerboseFlag(cmd)
	logger := log.NewLogger(os.Stderr, log.LevelFromEnv(verbose))
	slog.SetDefault(logger)

	eng, err := newEngine(cfg, logger)
	if err != nil {
		return err
	}

	deep, err := cmd.Flags().GetBool("deep")
	if err != nil {
		return err
	}
	allowFetch, err := cmd.Flags().GetBool("allow-fetch")
	if err != nil {
		return err
	}

	// Scan all URLs in parallel, bounded by the configured concurrency.
	// Results are written to indexed slots so output order matches the
	// argument order regardless of completion order.
	reports := make([]*report.Report, len(args))
	var g errgroup.Group
	g.SetLimit(cfg.ScanConcurrency)

	for i, rawURL := range args {
		g.Go(func() error {
			req := &model.ScanRequest{
				URL: rawURL,
				Settings: model.UserSettings{
					AllowContentFetch: allowFetch,
					DeepCheck:         deep,
				},
			}

			start := time.Now()
			verdict := eng.Scan(cmd.Context(), req)
			reports[i] = report.New(rawURL, verdict, start, time.Since(start))
			return nil
		})
	}
	_ = g.Wait() //nolint:errcheck // Scan never returns an error; failures become verdicts

	return outputReports(cmd, reports, verbose)
}

// buildScanConfig creates a Config from scan command flags.
func buildScanConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error

	cfg.FetchTimeout, err = cmd.Flags().GetDuration("fetch-timeout")
	if err != nil {
		return nil, err
	}

	cfg.ScanConcurrency, err = cmd.Flags().GetInt("concurrency")
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

// outputReports writes all scan reports in the requested format.
func outputReports(cmd *cobra.Command, reports []*report.Report, verbose bool) error {
	output, closeOutput, err := openOutput(cmd)
	if err != nil {
		return err
	}
	defer closeOutput()

	writer, err := newReportWriter(cmd, output, verbose)
	if err != nil {
		return err
	}

	for _, r := range reports {
		if _, err := writer.Write(r); err != nil {
			return fmt.Errorf("failed to write report for %s: %w", r.URL, err)
		}
	}

	return nil
}

// openOutput returns the report destination: the --output file if given,
// stdout otherwise.
func openOutput(cmd *cobra.Command) (io.Writer, func(), error) {
	path, err := cmd.Flags().GetString("output")
	if err != nil {
		return nil, nil, err
	}
	if path == "" {
		return cmd.OutOrStdout(), func() {}, nil
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	// Reports repeat the scanned URLs, which may carry tokens; keep the
	// file readable by the owner only.
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600) //nolint:gosec // User-provided output path is intentional
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, func() { f.Close() }, nil
}

// newReportWriter selects the report format from flags.
func newReportWriter(cmd *cobra.Command, output io.Writer, verbose bool) (report.Writer, error) {
	jsonOut, err := cmd.Flags().GetBool("json")
	if err != nil {
		return nil, err
	}
	markdownOut, err := cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}

	switch {
	case jsonOut:
		return report.NewJSONWriter(output, report.WithPrettyPrint()), nil
	case markdownOut:
		return report.NewMarkdownWriter(output), nil
	default:
		return report.NewSimpleWriter(output, report.WithVerbose(verbose)), nil
	}
}
