package check

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/net/html"

	"github.com/linkprotect/linkprotect/internal/config"
	"github.com/linkprotect/linkprotect/internal/fetch"
	"github.com/linkprotect/linkprotect/internal/model"
)

// builtinSignatures are the crude malicious-script patterns the content
// check always looks for. They target the obfuscation wrappers credential
// stealers and drive-by payloads hide behind, not any specific malware.
var builtinSignatures = []*regexp.Regexp{
	// eval over encoded strings
	regexp.MustCompile(`eval\s*\(`),
	regexp.MustCompile(`unescape\s*\(`),
	regexp.MustCompile(`eval\s*\(\s*(atob|unescape|decodeURIComponent|String\.fromCharCode)`),

	// document.write with encoded content
	regexp.MustCompile(`document\.write\s*\(\s*(unescape|atob|decodeURIComponent)`),

	// Long escaped payloads
	regexp.MustCompile(`(\\x[0-9a-fA-F]{2}){10,}`),

	// Suspicious function constructor
	regexp.MustCompile(`new\s+Function\s*\(\s*['"][^'"]{50,}['"]\s*\)`),

	// Packed JavaScript
	regexp.MustCompile(`eval\s*\(\s*function\s*\(\s*p\s*,\s*a\s*,\s*c\s*,\s*k\s*,\s*e\s*,\s*[dr]\s*\)`),

	// Bulk character-code decoding
	regexp.MustCompile(`String\.fromCharCode\s*\([^)]{50,}\)`),
}

// ContentCheck fetches the linked page and scans its script content for
// malicious signatures. It is the only check that performs network I/O and
// the only one gated on user settings: it runs when the user both allows
// content fetching and asks for a deep check.
//
// The check degrades itself: when the fetch or parse fails it contributes
// an advisory saying so instead of failing the scan. A page that cannot be
// inspected is not evidence of danger, and the remaining seven heuristics
// still apply.
type ContentCheck struct {
	fetcher    *fetch.Client
	signatures []*regexp.Regexp
}

// NewContentCheck creates a ContentCheck using the shared fetch client.
// Extra signatures from the rules file are compiled here so a broken
// pattern surfaces at startup.
func NewContentCheck(rules *config.Rules, fetcher *fetch.Client) (*ContentCheck, error) {
	signatures := make([]*regexp.Regexp, 0, len(builtinSignatures)+len(rules.ScriptSignatures))
	signatures = append(signatures, builtinSignatures...)

	for _, expr := range rules.ScriptSignatures {
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("compile script signature %q: %w", expr, err)
		}
		signatures = append(signatures, re)
	}

	return &ContentCheck{
		fetcher:    fetcher,
		signatures: signatures,
	}, nil
}

// Name returns the check name.
func (c *ContentCheck) Name() string {
	return "content"
}

// Check fetches the page and scans its scripts.
// Without both settings flags it returns Pass immediately and performs no
// network I/O at all.
func (c *ContentCheck) Check(ctx context.Context, req *model.ScanRequest) Outcome {
	if !req.Settings.AllowContentFetch || !req.Settings.DeepCheck {
		return Pass()
	}

	body, err := c.fetcher.Fetch(ctx, req.URL)
	if err != nil {
		return Advise(AdvisoryDeepFailed)
	}

	if c.matches(scriptText(body)) {
		return Veto(HazardMaliciousContent, HazardMaliciousContentConsequence)
	}
	return Pass()
}

// matches reports whether any signature matches the given text.
func (c *ContentCheck) matches(text string) bool {
	for _, re := range c.signatures {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

// scriptText extracts the executable parts of an HTML document: inline
// <script> bodies, on* event-handler attributes and javascript: URLs.
// If the document does not parse as HTML the raw body is returned so the
// signatures still get a chance — hostile pages are under no obligation to
// be well-formed.
func scriptText(body string) string {
	root, err := html.Parse(strings.NewReader(body))
	if err != nil {
		return body
	}

	var sb strings.Builder
	for node := range root.Descendants() {
		switch node.Type {
		case html.ElementNode:
			if node.Data == "script" {
				for child := node.FirstChild; child != nil; child = child.NextSibling {
					if child.Type == html.TextNode {
						sb.WriteString(child.Data)
						sb.WriteByte('\n')
					}
				}
			}
			for _, attr := range node.Attr {
				if strings.HasPrefix(attr.Key, "on") || strings.HasPrefix(strings.ToLower(attr.Val), "javascript:") {
					sb.WriteString(attr.Val)
					sb.WriteByte('\n')
				}
			}
		default:
		}
	}

	if sb.Len() == 0 {
		// No script content found; scan the raw body as a fallback so
		// signatures inside busted markup are still caught.
		return body
	}
	return sb.String()
}
