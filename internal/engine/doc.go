// Package engine orchestrates a scan: it fans out one goroutine per
// registered check, collects the outcomes, and aggregates them into a
// single ScanVerdict.
//
// Ordering guarantee: outcomes are collected into a slice indexed by
// registry position and aggregated in that order, so veto precedence and
// advisory concatenation never depend on goroutine completion order.
//
// Failure policy is fail-closed: a check that reports an infrastructure
// failure, or a panic anywhere in the scan, produces the generic
// engine-failure verdict (unsafe, generic hazard) instead of propagating.
// Uncertainty is reported as unsafe, never as safe — and never as a raw
// error to the caller.
//
// There is no cross-check cancellation: a veto from one check does not
// cancel in-flight siblings. All checks complete (or time out on their
// own) before the verdict is produced, so the advisory text is identical
// across runs.
package engine
