// Package check contains the heuristic safety checks a URL is evaluated
// against, and the registry that holds them in a fixed order.
//
// Each check implements the Checker interface: one Check operation over an
// immutable ScanRequest returning an Outcome. An Outcome is one of four
// tagged variants:
//   - Pass: the check has no opinion about the URL
//   - Advisory: the check permits the URL but contributes a note
//   - Veto: the check disallows the URL, carrying a hazard kind and
//     consequence
//   - Fail: an infrastructure problem inside the check (not a safety
//     finding)
//
// Design decision: Vetoes are values, not errors or panics. Propagating
// safety findings as data instead of stack unwinding keeps concurrent
// fan-in trivial and makes the difference between "this URL is dangerous"
// and "this check broke" impossible to confuse.
//
// Checks never mutate the request, never talk to each other, and — with
// the single exception of the content check — never touch the network.
package check
