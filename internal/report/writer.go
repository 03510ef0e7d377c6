package report

import (
	"io"
	"time"

	"github.com/linkprotect/linkprotect/internal/model"
)

// Report pairs a verdict with the scan metadata the CLI shows alongside it.
type Report struct {
	// URL is the scanned link.
	URL string `json:"url"`

	// Verdict is the aggregated scan result.
	Verdict *model.ScanVerdict `json:"verdict"`

	// ScannedAt is when the scan was performed.
	ScannedAt time.Time `json:"scanned_at"`

	// Duration is how long the scan took.
	Duration time.Duration `json:"duration"`
}

// New creates a Report for the given URL and verdict.
func New(url string, verdict *model.ScanVerdict, scannedAt time.Time, duration time.Duration) *Report {
	return &Report{
		URL:       url,
		Verdict:   verdict,
		ScannedAt: scannedAt,
		Duration:  duration,
	}
}

// Writer defines the interface for report output.
// Implementations render a scan report in one format.
//
// Design decision: We use an interface to allow different output formats
// and destinations. This enables writing to files, stdout, or network
// connections with the same API.
type Writer interface {
	// Write outputs the report to the configured destination.
	// Returns the number of bytes written and any error encountered.
	Write(report *Report) (int, error)
}

// MultiWriter writes to multiple Writers simultaneously.
// This is useful for outputting to both terminal and file.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that writes to all provided Writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// Write outputs the report to all configured Writers.
// Returns the total bytes written across all writers.
// Stops on first error encountered.
func (m *MultiWriter) Write(report *Report) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.Write(report)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}
