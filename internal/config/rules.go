package config

// Rules holds the heuristic rule lists the built-in checks are configured
// from. All entries are matched case-insensitively; domain entries match on
// suffix label boundaries, so a subdomain of a listed domain counts as that
// domain.
type Rules struct {
	// TrustedDomains are hostnames known to be legitimate. A trusted host
	// earns an advisory note and is exempt from the brand-impersonation
	// check.
	TrustedDomains []string `yaml:"trustedDomains,omitempty"`

	// SuspiciousTLDs are low-cost top-level domains heavily abused for
	// phishing. A host under one of these zones is vetoed.
	// Entries are bare labels without the leading dot (e.g., "tk").
	SuspiciousTLDs []string `yaml:"suspiciousTLDs,omitempty"`

	// Shorteners are known URL-shortener hosts. A shortened link hides
	// its destination, which earns an advisory note but no veto.
	Shorteners []string `yaml:"shorteners,omitempty"`

	// ProtectedBrands are brand names commonly impersonated in phishing
	// hostnames. A host that contains one of these substrings without
	// being a trusted domain is vetoed.
	ProtectedBrands []string `yaml:"protectedBrands,omitempty"`

	// ScriptSignatures are regular expressions matched against script
	// text by the deep-content check, in addition to the built-in
	// signatures. Invalid patterns are rejected at startup.
	ScriptSignatures []string `yaml:"scriptSignatures,omitempty"`
}

// DefaultRules returns the built-in rule lists.
//
// The trusted-domain list matches the original LinkProtect deployment; the
// remaining lists are conservative defaults that operators extend via the
// rules file.
func DefaultRules() *Rules {
	return &Rules{
		TrustedDomains: []string{
			"yandex.ru",
			"ozon.ru",
			"mail.ru",
			"rutube.ru",
			"gov.ru",
		},
		SuspiciousTLDs: []string{
			// Freenom zones, historically the cheapest phishing real estate.
			"tk", "ml", "ga", "cf", "gq",
			// Low-cost zones with disproportionate abuse rates.
			"top", "icu", "zip",
		},
		Shorteners: []string{
			"bit.ly",
			"tinyurl.com",
			"t.co",
			"goo.gl",
			"is.gd",
			"ow.ly",
			"clck.ru",
			"vk.cc",
		},
		ProtectedBrands: []string{
			"yandex",
			"ozon",
			"rutube",
			"sberbank",
			"gosuslugi",
			"vkontakte",
			"wildberries",
		},
	}
}

// Validate checks that the rule lists are usable.
func (r *Rules) Validate() error {
	if len(r.TrustedDomains) == 0 {
		return ErrNoTrustedDomains
	}
	return nil
}
