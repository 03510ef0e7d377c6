// Package fetch provides the shared HTTP client used to retrieve the
// content of scanned links.
//
// One Client instance lives for the whole process and is shared by all
// concurrent scans; only the deep-content check uses it. The underlying
// http.Client is built lazily on first use, guarded against concurrent
// double-initialization, and never torn down.
//
// Design decision: We wrap http.Client rather than exposing it directly
// because every caller must get the same safety envelope: a mandatory
// bounded per-call timeout, a response body size cap, and a redirect limit.
// Forgetting any of these against attacker-controlled URLs would turn the
// scanner itself into a denial-of-service target.
package fetch
