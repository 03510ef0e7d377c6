package check

import (
	"context"

	"github.com/linkprotect/linkprotect/internal/config"
	"github.com/linkprotect/linkprotect/internal/model"
)

// TLDCheck vetoes links under top-level domains with a documented history
// of bulk phishing registrations.
type TLDCheck struct {
	tlds []string
}

// NewTLDCheck creates a TLDCheck from the configured rule lists.
func NewTLDCheck(rules *config.Rules) *TLDCheck {
	return &TLDCheck{tlds: rules.SuspiciousTLDs}
}

// Name returns the check name.
func (c *TLDCheck) Name() string {
	return "tld"
}

// Check vetoes hosts sitting under a listed zone.
func (c *TLDCheck) Check(_ context.Context, req *model.ScanRequest) Outcome {
	host, ok := hostname(req.URL)
	if !ok {
		return Pass()
	}

	for _, tld := range c.tlds {
		if hasTLD(host, tld) {
			return Veto(HazardSuspiciousTLD, HazardSuspiciousTLDConsequence)
		}
	}
	return Pass()
}
