package check

// Status is the tag of an Outcome variant.
type Status int

const (
	// StatusPass means the check has no opinion about the URL.
	StatusPass Status = iota

	// StatusAdvisory means the check permits the URL but adds a note.
	StatusAdvisory

	// StatusVeto means the check disallows the URL.
	StatusVeto

	// StatusFail means the check itself failed for operational reasons
	// (network error, malformed input it could not tolerate). A Fail is
	// never a safety finding.
	StatusFail
)

// String returns a human-readable representation of the status.
func (s Status) String() string {
	switch s {
	case StatusPass:
		return "pass"
	case StatusAdvisory:
		return "advisory"
	case StatusVeto:
		return "veto"
	case StatusFail:
		return "fail"
	default:
		return "unknown"
	}
}

// Outcome is the result of one check against one request.
// Exactly the fields implied by Status are populated; the constructors
// below are the only intended way to build one.
type Outcome struct {
	// Status selects the variant.
	Status Status

	// Advisory is the note contributed by an Advisory outcome.
	Advisory string

	// HazardKind and HazardConsequence describe a Veto.
	HazardKind        string
	HazardConsequence string

	// Err is the operational error of a Fail outcome.
	Err error
}

// Pass returns a no-opinion outcome.
func Pass() Outcome {
	return Outcome{Status: StatusPass}
}

// Advise returns an advisory outcome with the given note.
func Advise(note string) Outcome {
	return Outcome{Status: StatusAdvisory, Advisory: note}
}

// Veto returns a veto outcome with the given hazard kind and consequence.
func Veto(kind, consequence string) Outcome {
	return Outcome{Status: StatusVeto, HazardKind: kind, HazardConsequence: consequence}
}

// Fail returns an infrastructure-failure outcome wrapping err.
func Fail(err error) Outcome {
	return Outcome{Status: StatusFail, Err: err}
}
