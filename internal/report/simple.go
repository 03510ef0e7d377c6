package report

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// SimpleWriter outputs human-readable text reports.
//
// Design decision: We use plain text with ASCII formatting rather than
// ANSI colors by default because:
//  1. It works in all terminals without compatibility issues
//  2. It's easier to pipe to files or other tools
type SimpleWriter struct {
	baseWriter

	// verbose enables additional detail in the output.
	verbose bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithVerbose enables verbose output with scan timing details.
func WithVerbose(verbose bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.verbose = verbose
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the report in human-readable format.
func (w *SimpleWriter) Write(report *Report) (int, error) {
	var sb strings.Builder

	sb.WriteString("URL: " + report.URL + "\n")

	if report.Verdict.Safe {
		sb.WriteString("Verdict: SAFE\n")
	} else {
		sb.WriteString("Verdict: UNSAFE\n")
		if report.Verdict.HazardKind != nil {
			sb.WriteString("Hazard:  " + *report.Verdict.HazardKind + "\n")
		}
		if report.Verdict.HazardConsequence != nil {
			sb.WriteString("Risk:    " + *report.Verdict.HazardConsequence + "\n")
		}
	}

	if advisory := strings.TrimRight(report.Verdict.Advisory, "\n"); advisory != "" {
		sb.WriteString("Notes:\n")
		for _, line := range strings.Split(advisory, "\n") {
			sb.WriteString("  - " + line + "\n")
		}
	}

	if w.verbose {
		sb.WriteString(fmt.Sprintf("Scanned: %s (%s)\n",
			report.ScannedAt.Format("2006-01-02 15:04:05 MST"), report.Duration.Round(time.Millisecond)))
	}
	sb.WriteString("\n")

	return w.output.Write([]byte(sb.String()))
}
