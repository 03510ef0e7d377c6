package check

import (
	"net/url"
	"strings"

	"golang.org/x/net/idna"
	"golang.org/x/text/unicode/norm"
)

// hostname extracts the lowercase hostname from a raw URL, without port or
// brackets. The second return value is false when the URL has no parseable
// hostname; host-dependent checks treat that as "no opinion", not as an
// error — scheme-only and relative inputs are the transport check's problem.
func hostname(rawURL string) (string, bool) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", false
	}
	host := strings.ToLower(u.Hostname())
	if host == "" {
		return "", false
	}
	return host, true
}

// matchesDomain reports whether host is domain or a subdomain of it.
// Comparison is case-insensitive and respects label boundaries:
// login.yandex.ru matches yandex.ru, notyandex.ru does not.
func matchesDomain(host, domain string) bool {
	host = strings.ToLower(strings.TrimSuffix(host, "."))
	domain = strings.ToLower(strings.TrimSuffix(domain, "."))
	if domain == "" {
		return false
	}
	return host == domain || strings.HasSuffix(host, "."+domain)
}

// hasTLD reports whether host sits under the given top-level domain.
// The tld is a bare label ("tk"), matched on a label boundary.
func hasTLD(host, tld string) bool {
	return matchesDomain(host, strings.TrimPrefix(tld, "."))
}

// foldHost returns a normalized form of host for substring matching:
// punycode labels are decoded to Unicode and the result is NFKC-folded and
// lowercased. This keeps the brand check effective against
// internationalized lookalike domains (xn--yndex-...).
func foldHost(host string) string {
	uni, err := idna.ToUnicode(host)
	if err != nil {
		uni = host
	}
	return strings.ToLower(norm.NFKC.String(uni))
}
