// Package server provides the HTTP surface of LinkProtect.
//
// The surface is deliberately thin glue over the scan engine:
//
//	POST /scan    evaluate a URL, returns a ScanVerdict
//	GET  /health  liveness probe
//	GET  /        welcome page pointing at the API
//
// The scan handler always answers with a well-formed verdict object for
// valid requests; internal error detail never reaches the client. CORS is
// wide open because the callers are browser extensions and web clients on
// arbitrary origins.
package server
