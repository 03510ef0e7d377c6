package check

import (
	"context"

	"github.com/linkprotect/linkprotect/internal/config"
	"github.com/linkprotect/linkprotect/internal/model"
)

// ShortenerCheck notes when the link goes through a known URL shortener.
// Shorteners are legitimate, so this never vetoes, but the real
// destination is hidden from every other heuristic — worth telling the
// user about.
type ShortenerCheck struct {
	hosts []string
}

// NewShortenerCheck creates a ShortenerCheck from the configured rule lists.
func NewShortenerCheck(rules *config.Rules) *ShortenerCheck {
	return &ShortenerCheck{hosts: rules.Shorteners}
}

// Name returns the check name.
func (c *ShortenerCheck) Name() string {
	return "shortener"
}

// Check adds the shortener note when the host matches a known shortener.
func (c *ShortenerCheck) Check(_ context.Context, req *model.ScanRequest) Outcome {
	host, ok := hostname(req.URL)
	if !ok {
		return Pass()
	}

	for _, shortener := range c.hosts {
		if matchesDomain(host, shortener) {
			return Advise(AdvisoryShortener)
		}
	}
	return Pass()
}
