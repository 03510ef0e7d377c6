package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultRulesFile is the default rules file name.
const DefaultRulesFile = ".linkprotect.yaml"

// LoadRulesFile loads heuristic rule lists from a YAML file.
// If the file does not exist, it returns ErrRulesNotFound so callers can
// distinguish "no file" (fall back to defaults) from a broken file.
//
// Lists present in the file replace the corresponding defaults entirely;
// omitted lists keep their built-in values. Replacing rather than merging
// lets an operator remove a default entry, not only add new ones.
func LoadRulesFile(path string) (*Rules, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided rules path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrRulesNotFound
		}
		return nil, err
	}

	var loaded Rules
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return nil, err
	}

	rules := DefaultRules()
	if loaded.TrustedDomains != nil {
		rules.TrustedDomains = loaded.TrustedDomains
	}
	if loaded.SuspiciousTLDs != nil {
		rules.SuspiciousTLDs = loaded.SuspiciousTLDs
	}
	if loaded.Shorteners != nil {
		rules.Shorteners = loaded.Shorteners
	}
	if loaded.ProtectedBrands != nil {
		rules.ProtectedBrands = loaded.ProtectedBrands
	}
	rules.ScriptSignatures = loaded.ScriptSignatures

	return rules, nil
}

// FindRulesFile searches for the rules file in the following order:
//  1. If rulesPath is specified, use it directly
//  2. Look for .linkprotect.yaml in the current directory
//  3. Look for .linkprotect.yaml in the XDG config directory
//
// Returns the path to the rules file if found, or empty string if not found.
func FindRulesFile(rulesPath string) string {
	// If explicit path is provided, use it
	if rulesPath != "" {
		if _, err := os.Stat(rulesPath); err == nil {
			return rulesPath
		}
		return ""
	}

	// Check current directory
	cwd, err := os.Getwd()
	if err == nil {
		cwdRules := filepath.Join(cwd, DefaultRulesFile)
		if _, err := os.Stat(cwdRules); err == nil {
			return cwdRules
		}
	}

	// Check XDG config directory
	xdgRules := filepath.Join(XDGConfigDir(), DefaultRulesFile)
	if _, err := os.Stat(xdgRules); err == nil {
		return xdgRules
	}

	return ""
}
