package check

import (
	"context"

	"github.com/linkprotect/linkprotect/internal/model"
)

// ZoneCheck reports which top-level zone category the link's domain sits
// in. It never vetoes; the note gives client applications context they can
// surface to the user.
type ZoneCheck struct{}

// NewZoneCheck creates a new ZoneCheck.
func NewZoneCheck() *ZoneCheck {
	return &ZoneCheck{}
}

// Name returns the check name.
func (c *ZoneCheck) Name() string {
	return "zone"
}

// Check classifies the host's zone as .ru, .com or other.
func (c *ZoneCheck) Check(_ context.Context, req *model.ScanRequest) Outcome {
	host, ok := hostname(req.URL)
	if !ok {
		return Pass()
	}

	switch {
	case hasTLD(host, "ru"):
		return Advise(AdvisoryRuZone)
	case hasTLD(host, "com"):
		return Advise(AdvisoryComZone)
	default:
		return Advise(AdvisoryOtherZone)
	}
}
