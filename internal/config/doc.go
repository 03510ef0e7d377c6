// Package config holds the LinkProtect runtime configuration.
//
// The Config struct is populated from CLI flags and the environment and
// passed through the application via dependency injection rather than
// global state. Heuristic rule lists (trusted domains, abused TLDs, known
// URL shorteners, protected brands) ship with built-in defaults and can be
// overridden per deployment with a YAML rules file.
//
// Design decision: The rules file is optional. The built-in lists make the
// binary useful out of the box; operators who maintain their own lists
// point --rules at a file or drop .linkprotect.yaml into the working or
// XDG config directory.
package config
