package check

import (
	"context"
	"net/url"
	"strings"

	"github.com/linkprotect/linkprotect/internal/model"
)

// TransportCheck vetoes links that are not served over secure transport.
// This is the cheapest and most decisive heuristic: a plain-HTTP link is
// unsafe to follow no matter what the rest of the URL looks like.
type TransportCheck struct{}

// NewTransportCheck creates a new TransportCheck.
func NewTransportCheck() *TransportCheck {
	return &TransportCheck{}
}

// Name returns the check name.
func (c *TransportCheck) Name() string {
	return "transport"
}

// Check vetoes any URL whose scheme is not https.
// A URL that does not parse at all has no secure scheme either, so it is
// vetoed the same way rather than reported as an infrastructure failure.
func (c *TransportCheck) Check(_ context.Context, req *model.ScanRequest) Outcome {
	u, err := url.Parse(req.URL)
	if err != nil || !strings.EqualFold(u.Scheme, "https") {
		return Veto(HazardInsecureTransport, HazardInsecureTransportConsequence)
	}
	return Pass()
}
