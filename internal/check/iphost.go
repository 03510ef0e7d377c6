package check

import (
	"context"
	"net/netip"

	"github.com/linkprotect/linkprotect/internal/model"
)

// IPHostCheck vetoes links whose hostname is a raw IP address.
// Phishing campaigns use IP-literal links to sidestep domain reputation
// and takedown systems; legitimate consumer-facing sites do not.
type IPHostCheck struct{}

// NewIPHostCheck creates a new IPHostCheck.
func NewIPHostCheck() *IPHostCheck {
	return &IPHostCheck{}
}

// Name returns the check name.
func (c *IPHostCheck) Name() string {
	return "iphost"
}

// Check vetoes hostnames that parse as IPv4 or IPv6 literals.
// url.Hostname() already strips the brackets from IPv6 literals, so
// netip.ParseAddr covers both families.
func (c *IPHostCheck) Check(_ context.Context, req *model.ScanRequest) Outcome {
	host, ok := hostname(req.URL)
	if !ok {
		return Pass()
	}

	if _, err := netip.ParseAddr(host); err == nil {
		return Veto(HazardIPHost, HazardIPHostConsequence)
	}
	return Pass()
}
