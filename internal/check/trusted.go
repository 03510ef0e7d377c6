package check

import (
	"context"

	"github.com/linkprotect/linkprotect/internal/config"
	"github.com/linkprotect/linkprotect/internal/model"
)

// TrustedCheck adds a reassuring note when the host is on the static list
// of known trusted domains. It never vetoes: trust is advisory, a trusted
// host can still be vetoed by another check (e.g., served over plain HTTP).
type TrustedCheck struct {
	domains []string
}

// NewTrustedCheck creates a TrustedCheck from the configured rule lists.
func NewTrustedCheck(rules *config.Rules) *TrustedCheck {
	return &TrustedCheck{domains: rules.TrustedDomains}
}

// Name returns the check name.
func (c *TrustedCheck) Name() string {
	return "trusted"
}

// Check adds the trusted-domain note when the host is (a subdomain of) a
// trusted domain.
func (c *TrustedCheck) Check(_ context.Context, req *model.ScanRequest) Outcome {
	host, ok := hostname(req.URL)
	if !ok {
		return Pass()
	}

	for _, domain := range c.domains {
		if matchesDomain(host, domain) {
			return Advise(AdvisoryTrusted)
		}
	}
	return Pass()
}
