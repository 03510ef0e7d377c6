// Package report renders scan verdicts for the one-shot CLI.
//
// Three formats are provided: a human-readable text report for terminal
// use, JSON for tool integration, and GitHub Flavored Markdown for pasting
// into issues or chat. All formats implement the same Writer interface, so
// the CLI picks one (or several via MultiWriter) without caring which.
//
// The HTTP API does not use this package; it serializes the verdict
// directly.
package report
