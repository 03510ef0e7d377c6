package check

// Hazard kinds and consequences reported by vetoing checks, and the
// advisory notes contributed by the permissive ones. These strings are
// user-visible through the HTTP API and the CLI reports.
const (
	// Transport check.
	HazardInsecureTransport            = "Insecure connection"
	HazardInsecureTransportConsequence = "The link is not served over HTTPS. Anything sent or received through it can be read and altered in transit, including passwords and payment data."

	// IP-literal host check.
	HazardIPHost            = "Raw IP address link"
	HazardIPHostConsequence = "The link points at a bare IP address instead of a domain name. Legitimate sites almost never do this; phishing pages use it to dodge domain-based blocking."

	// Suspicious-TLD check.
	HazardSuspiciousTLD            = "Suspicious domain zone"
	HazardSuspiciousTLDConsequence = "The domain sits in a zone that is practically free to register and is overwhelmingly used for phishing and malware distribution."

	// Brand-impersonation check.
	HazardBrandImpersonation            = "Brand impersonation"
	HazardBrandImpersonationConsequence = "The address imitates a well-known brand without belonging to it. Credentials or card details entered there go straight to an attacker."

	// Deep-content check.
	HazardMaliciousContent            = "Malicious page content"
	HazardMaliciousContentConsequence = "The page contains obfuscated script patterns typical of credential stealers and drive-by payloads."

	// Advisory notes.
	AdvisoryRuZone     = "The link leads to a domain in the .ru zone."
	AdvisoryComZone    = "The link leads to a domain in the .com zone."
	AdvisoryOtherZone  = "The link leads to a domain in a foreign or uncommon zone."
	AdvisoryTrusted    = "The domain is on the list of known trusted sites."
	AdvisoryShortener  = "The link goes through a URL shortener; the real destination is hidden."
	AdvisoryDeepFailed = "The page content could not be retrieved for deep inspection; the verdict is based on the remaining checks only."
)
