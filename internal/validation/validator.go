// Package validation decides whether a candidate password satisfies the
// fixed character-composition rules.
package validation

// Result is the outcome of checking one candidate
type Result struct {
	Valid    bool
	Failures []Rule
	Counts   Counts
}

// FailureNames returns the names of the failed rules in order
func (r Result) FailureNames() []string {
	names := make([]string, 0, len(r.Failures))
	for _, f := range r.Failures {
		names = append(names, f.Name)
	}
	return names
}

// Count scans the candidate once and tallies each character class.
// The candidate is only read, never modified.
func Count(candidate string) Counts {
	var c Counts
	for _, r := range candidate {
		c.Length++
		switch Classify(r) {
		case Upper:
			c.Upper++
		case Lower:
			c.Lower++
		case Digit:
			c.Digit++
		case Special:
			c.Special++
		default:
			c.Other++
		}
	}
	return c
}

// Check evaluates every rule against the candidate and reports which ones failed
func Check(candidate string) Result {
	counts := Count(candidate)

	var failures []Rule
	for _, rule := range rules {
		if !rule.Holds(counts) {
			failures = append(failures, rule)
		}
	}

	return Result{
		Valid:    len(failures) == 0,
		Failures: failures,
		Counts:   counts,
	}
}

// IsValid reports whether the candidate satisfies all rules.
// Any string is a legal input; empty or overlong strings are simply invalid.
func IsValid(candidate string) bool {
	return Check(candidate).Valid
}
