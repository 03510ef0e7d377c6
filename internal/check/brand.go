package check

import (
	"context"
	"strings"

	"github.com/linkprotect/linkprotect/internal/config"
	"github.com/linkprotect/linkprotect/internal/model"
)

// BrandCheck vetoes hostnames that contain a protected brand name without
// belonging to that brand — the classic typosquatting/phishing pattern
// (yandex-login.tk, secure-sberbank.top).
//
// The hostname is folded before matching: punycode labels are decoded and
// NFKC-normalized so internationalized lookalikes cannot hide the brand
// substring from a plain byte comparison.
type BrandCheck struct {
	brands  []string
	trusted []string
}

// NewBrandCheck creates a BrandCheck from the configured rule lists.
// The trusted-domain list doubles as the exemption list: a host that is
// (a subdomain of) a trusted domain is allowed to carry the brand name.
func NewBrandCheck(rules *config.Rules) *BrandCheck {
	return &BrandCheck{
		brands:  rules.ProtectedBrands,
		trusted: rules.TrustedDomains,
	}
}

// Name returns the check name.
func (c *BrandCheck) Name() string {
	return "brand"
}

// Check vetoes hosts containing a protected brand substring unless the
// host is a trusted domain or one of its subdomains.
func (c *BrandCheck) Check(_ context.Context, req *model.ScanRequest) Outcome {
	host, ok := hostname(req.URL)
	if !ok {
		return Pass()
	}

	for _, domain := range c.trusted {
		if matchesDomain(host, domain) {
			return Pass()
		}
	}

	folded := foldHost(host)
	for _, brand := range c.brands {
		if strings.Contains(folded, strings.ToLower(brand)) {
			return Veto(HazardBrandImpersonation, HazardBrandImpersonationConsequence)
		}
	}
	return Pass()
}
