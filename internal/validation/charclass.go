package validation

// CharClass identifies which part of the allowed alphabet a character falls in
type CharClass int

const (
	// Other is any character outside the allowed alphabet
	Other CharClass = iota
	Upper
	Lower
	Digit
	Special
)

// SpecialChars is the set of accepted special characters
const SpecialChars = "!@#$%^&*"

// Classify reports the class of a single character.
// Membership is checked against explicit ASCII ranges so the result never
// depends on locale or Unicode tables.
func Classify(r rune) CharClass {
	switch {
	case r >= 'A' && r <= 'Z':
		return Upper
	case r >= 'a' && r <= 'z':
		return Lower
	case r >= '0' && r <= '9':
		return Digit
	case isSpecial(r):
		return Special
	default:
		return Other
	}
}

func isSpecial(r rune) bool {
	switch r {
	case '!', '@', '#', '$', '%', '^', '&', '*':
		return true
	}
	return false
}

// String returns the lowercase name of the class
func (c CharClass) String() string {
	switch c {
	case Upper:
		return "upper"
	case Lower:
		return "lower"
	case Digit:
		return "digit"
	case Special:
		return "special"
	default:
		return "other"
	}
}
