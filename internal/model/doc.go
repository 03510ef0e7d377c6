// Package model defines the core data structures used throughout LinkProtect.
//
// This package contains the following main types:
//   - ScanRequest: A URL submitted for evaluation plus the caller's settings
//   - ScanVerdict: The aggregated safety verdict returned to the caller
//   - HealthStatus: The health-check response body
//
// Design decision: We separate models into their own package to avoid circular
// dependencies. Multiple packages (check, engine, server, report) need to use
// these types, so centralizing them prevents import cycles.
//
// The models are designed to be serializable to JSON for the HTTP API and
// report output. The wire field names (result, additional_info, virus_type,
// virus_consequences) are part of the client contract and must not change.
package model
