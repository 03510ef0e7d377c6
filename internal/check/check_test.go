package check

import (
	"context"
	"testing"

	"github.com/linkprotect/linkprotect/internal/config"
	"github.com/linkprotect/linkprotect/internal/fetch"
	"github.com/linkprotect/linkprotect/internal/model"
)

func request(url string) *model.ScanRequest {
	return &model.ScanRequest{URL: url}
}

// TestTransportCheck tests the secure-transport heuristic.
func TestTransportCheck(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		url  string
		want Status
	}{
		{"https passes", "https://example.com", StatusPass},
		{"https uppercase passes", "HTTPS://example.com", StatusPass},
		{"http is vetoed", "http://example.com", StatusVeto},
		{"ftp is vetoed", "ftp://example.com", StatusVeto},
		{"schemeless is vetoed", "example.com/path", StatusVeto},
		{"unparseable is vetoed", "https://exa mple.com/%zz", StatusVeto},
	}

	c := NewTransportCheck()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := c.Check(context.Background(), request(tt.url))
			if got.Status != tt.want {
				t.Errorf("Check(%q) = %v, want %v", tt.url, got.Status, tt.want)
			}
			if got.Status == StatusVeto && got.HazardKind != HazardInsecureTransport {
				t.Errorf("unexpected hazard kind %q", got.HazardKind)
			}
		})
	}
}

// TestZoneCheck tests the domain-zone classifier.
func TestZoneCheck(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		url          string
		wantStatus   Status
		wantAdvisory string
	}{
		{"ru zone", "https://yandex.ru", StatusAdvisory, AdvisoryRuZone},
		{"ru subdomain", "https://mail.yandex.ru/inbox", StatusAdvisory, AdvisoryRuZone},
		{"com zone", "https://example.com", StatusAdvisory, AdvisoryComZone},
		{"other zone", "https://example.org", StatusAdvisory, AdvisoryOtherZone},
		{"no hostname yields pass", "https://", StatusPass, ""},
		{"notru is not ru", "https://notru", StatusAdvisory, AdvisoryOtherZone},
	}

	c := NewZoneCheck()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := c.Check(context.Background(), request(tt.url))
			if got.Status != tt.wantStatus {
				t.Fatalf("Check(%q) = %v, want %v", tt.url, got.Status, tt.wantStatus)
			}
			if got.Advisory != tt.wantAdvisory {
				t.Errorf("advisory = %q, want %q", got.Advisory, tt.wantAdvisory)
			}
		})
	}
}

// TestTrustedCheck tests the known-trusted allow list.
func TestTrustedCheck(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		url  string
		want Status
	}{
		{"trusted domain", "https://yandex.ru", StatusAdvisory},
		{"trusted subdomain", "https://mail.yandex.ru", StatusAdvisory},
		{"case insensitive", "https://YANDEX.RU", StatusAdvisory},
		{"lookalike suffix is not trusted", "https://notyandex.ru", StatusPass},
		{"unknown domain", "https://example.com", StatusPass},
		{"no hostname", "https://", StatusPass},
	}

	c := NewTrustedCheck(config.DefaultRules())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := c.Check(context.Background(), request(tt.url))
			if got.Status != tt.want {
				t.Errorf("Check(%q) = %v, want %v", tt.url, got.Status, tt.want)
			}
		})
	}
}

// TestIPHostCheck tests the raw-IP hostname heuristic.
func TestIPHostCheck(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		url  string
		want Status
	}{
		{"ipv4 literal", "https://203.0.113.5/login", StatusVeto},
		{"ipv4 with port", "https://203.0.113.5:8443/", StatusVeto},
		{"ipv6 literal", "https://[2001:db8::1]/", StatusVeto},
		{"domain name", "https://example.com", StatusPass},
		{"dotted but not ip", "https://1.2.3.4.5.example.com", StatusPass},
		{"no hostname", "https://", StatusPass},
	}

	c := NewIPHostCheck()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := c.Check(context.Background(), request(tt.url))
			if got.Status != tt.want {
				t.Errorf("Check(%q) = %v, want %v", tt.url, got.Status, tt.want)
			}
			if got.Status == StatusVeto && got.HazardKind != HazardIPHost {
				t.Errorf("unexpected hazard kind %q", got.HazardKind)
			}
		})
	}
}

// TestTLDCheck tests the abused-TLD heuristic.
func TestTLDCheck(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		url  string
		want Status
	}{
		{"tk zone", "https://free-prizes.tk", StatusVeto},
		{"subdomain in tk zone", "https://login.free-prizes.tk", StatusVeto},
		{"uppercase", "https://FREE-PRIZES.TK", StatusVeto},
		{"tk inside label is fine", "https://tkshop.ru", StatusPass},
		{"ordinary com", "https://example.com", StatusPass},
		{"no hostname", "https://", StatusPass},
	}

	c := NewTLDCheck(config.DefaultRules())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := c.Check(context.Background(), request(tt.url))
			if got.Status != tt.want {
				t.Errorf("Check(%q) = %v, want %v", tt.url, got.Status, tt.want)
			}
		})
	}
}

// TestShortenerCheck tests the URL-shortener notice.
func TestShortenerCheck(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		url  string
		want Status
	}{
		{"bit.ly", "https://bit.ly/3xyzzy", StatusAdvisory},
		{"clck.ru", "https://clck.ru/abc", StatusAdvisory},
		{"not a shortener", "https://example.com/bit.ly", StatusPass},
		{"no hostname", "https://", StatusPass},
	}

	c := NewShortenerCheck(config.DefaultRules())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := c.Check(context.Background(), request(tt.url))
			if got.Status != tt.want {
				t.Errorf("Check(%q) = %v, want %v", tt.url, got.Status, tt.want)
			}
			if got.Status == StatusAdvisory && got.Advisory != AdvisoryShortener {
				t.Errorf("unexpected advisory %q", got.Advisory)
			}
		})
	}
}

// TestBrandCheck tests the brand-impersonation heuristic.
func TestBrandCheck(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		url  string
		want Status
	}{
		{"typosquat in abused zone", "https://yandex-login.tk", StatusVeto},
		{"brand inside host", "https://secure.sberbank-id.top", StatusVeto},
		{"real trusted domain is exempt", "https://yandex.ru", StatusPass},
		{"trusted subdomain is exempt", "https://passport.yandex.ru", StatusPass},
		{"unrelated host", "https://example.com", StatusPass},
		{"no hostname", "https://", StatusPass},
	}

	c := NewBrandCheck(config.DefaultRules())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := c.Check(context.Background(), request(tt.url))
			if got.Status != tt.want {
				t.Errorf("Check(%q) = %v, want %v", tt.url, got.Status, tt.want)
			}
			if got.Status == StatusVeto && got.HazardKind != HazardBrandImpersonation {
				t.Errorf("unexpected hazard kind %q", got.HazardKind)
			}
		})
	}
}

// TestNewRegistry tests registry construction and ordering.
func TestNewRegistry(t *testing.T) {
	t.Parallel()

	t.Run("registers built-ins in fixed order", func(t *testing.T) {
		t.Parallel()

		r, err := NewRegistry(config.DefaultRules(), fetch.NewClient())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := []string{"transport", "zone", "trusted", "iphost", "tld", "shortener", "brand", "content"}
		got := r.Names()
		if len(got) != len(want) {
			t.Fatalf("expected %d checks, got %d (%v)", len(want), len(got), got)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("position %d: expected %q, got %q", i, want[i], got[i])
			}
		}
	})

	t.Run("rejects invalid extra signatures", func(t *testing.T) {
		t.Parallel()

		rules := config.DefaultRules()
		rules.ScriptSignatures = []string{"(unclosed"}

		if _, err := NewRegistry(rules, fetch.NewClient()); err == nil {
			t.Error("expected error for invalid signature")
		}
	})
}

// TestMatchesDomain tests suffix-boundary domain matching.
func TestMatchesDomain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		host   string
		domain string
		want   bool
	}{
		{"yandex.ru", "yandex.ru", true},
		{"mail.yandex.ru", "yandex.ru", true},
		{"notyandex.ru", "yandex.ru", false},
		{"YANDEX.RU", "yandex.ru", true},
		{"yandex.ru.", "yandex.ru", true},
		{"yandex.ru", "", false},
		{"ru", "yandex.ru", false},
	}

	for _, tt := range tests {
		t.Run(tt.host+"/"+tt.domain, func(t *testing.T) {
			t.Parallel()

			if got := matchesDomain(tt.host, tt.domain); got != tt.want {
				t.Errorf("matchesDomain(%q, %q) = %v, want %v", tt.host, tt.domain, got, tt.want)
			}
		})
	}
}
