package model

// UserSettings carries the per-request permissions granted by the end user.
// Checks consult these flags to decide whether they are allowed to run.
type UserSettings struct {
	// AllowContentFetch indicates the user permits fetching the link's
	// remote content for inspection. Without it no network I/O is
	// performed on the submitted URL.
	AllowContentFetch bool `json:"allowContentFetch"`

	// DeepCheck enables the slower, more precise checks (currently the
	// page-content check). Both AllowContentFetch and DeepCheck must be
	// set for the content check to run.
	DeepCheck bool `json:"deepCheck"`
}

// ScanRequest is a single URL evaluation request.
// It is immutable for the duration of a scan: the engine passes the same
// instance by pointer to every check and no check may modify it.
type ScanRequest struct {
	// URL is the link to evaluate, as submitted by the client.
	// It is not pre-validated; checks that need a parsed form parse it
	// themselves and treat unparseable hosts as "no opinion".
	URL string `json:"url"`

	// Settings are the user's permissions for this scan.
	Settings UserSettings `json:"settings"`
}
