// Package main provides the entry point for the LinkProtect CLI.
//
// LinkProtect checks links for phishing and malware indicators before the
// user opens them. It runs either as an HTTP API server or as a one-shot
// scanner from the command line.
//
// Usage:
//
//	linkprotect serve
//	linkprotect scan <url> [<url>...]
//
// See --help for all available options.
package main

// main is the entry point for LinkProtect.
func main() {
	Execute()
}
