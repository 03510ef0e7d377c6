package model

// ScanVerdict is the aggregated result of one scan.
// It is constructed exactly once per scan by the engine from the merged
// check outcomes and returned verbatim by the HTTP layer.
//
// Invariants:
//   - Safe is false iff at least one check vetoed the URL (or the engine
//     itself failed and reported the generic fail-closed verdict).
//   - HazardKind and HazardConsequence are set iff Safe is false, and
//     reflect exactly one vetoing check: the first one in registry order.
type ScanVerdict struct {
	// Safe reports whether the URL passed all checks.
	Safe bool `json:"result"`

	// Advisory is human-readable commentary collected from the checks,
	// newline-terminated per note, in registry order. When the URL is
	// safe a fixed preamble is prepended.
	Advisory string `json:"additional_info"`

	// HazardKind names the kind of hazard found, nil when safe.
	HazardKind *string `json:"virus_type"`

	// HazardConsequence describes what following the link could do to
	// the user, nil when safe.
	HazardConsequence *string `json:"virus_consequences"`
}

// NewSafeVerdict returns a verdict for a URL that no check vetoed.
func NewSafeVerdict(advisory string) *ScanVerdict {
	return &ScanVerdict{
		Safe:     true,
		Advisory: advisory,
	}
}

// NewUnsafeVerdict returns a verdict carrying the winning veto's hazard
// fields plus any advisory text collected from the other checks.
func NewUnsafeVerdict(kind, consequence, advisory string) *ScanVerdict {
	return &ScanVerdict{
		Safe:              false,
		Advisory:          advisory,
		HazardKind:        &kind,
		HazardConsequence: &consequence,
	}
}
