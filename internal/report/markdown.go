package report

import (
	"io"
	"strings"
	"time"

	"github.com/nao1215/markdown"
)

// MarkdownWriter outputs reports in GitHub Flavored Markdown.
// Useful for pasting scan results into issues, pull requests or chat.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs the report in Markdown format.
func (w *MarkdownWriter) Write(report *Report) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("LinkProtect Report")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"URL", "`" + report.URL + "`"},
			{"Verdict", w.verdictText(report)},
			{"Scanned", report.ScannedAt.Format("2006-01-02 15:04:05 MST")},
			{"Duration", report.Duration.Round(time.Millisecond).String()},
		},
	})
	md.PlainText("")

	if !report.Verdict.Safe && report.Verdict.HazardKind != nil {
		md.H2("Hazard")
		md.PlainText("")
		md.PlainText("**" + *report.Verdict.HazardKind + "**")
		if report.Verdict.HazardConsequence != nil {
			md.PlainText("")
			md.PlainText(*report.Verdict.HazardConsequence)
		}
		md.PlainText("")
	}

	if advisory := strings.TrimRight(report.Verdict.Advisory, "\n"); advisory != "" {
		md.H2("Notes")
		md.PlainText("")
		md.BulletList(strings.Split(advisory, "\n")...)
		md.PlainText("")
	}

	return len(md.String()), md.Build()
}

// verdictText returns the verdict cell for the summary table.
func (w *MarkdownWriter) verdictText(report *Report) string {
	if report.Verdict.Safe {
		return "✅ Safe"
	}
	return "❌ Unsafe"
}
