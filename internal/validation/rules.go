package validation

import "fmt"

const (
	MinUpper   = 1
	MinSpecial = 2
	MinDigit   = 2
	MinLower   = 4
	MinLength  = 1
	MaxLength  = 12
)

// Counts holds the per-class tallies gathered from a single scan of a candidate
type Counts struct {
	Upper   int
	Lower   int
	Digit   int
	Special int
	Other   int
	// Length is the number of characters (runes), not bytes
	Length int
}

// Rule is a named predicate over the counts of a candidate
type Rule struct {
	Name        string
	Description string
	holds       func(Counts) bool
}

// Holds reports whether the rule is satisfied by the given counts
func (r Rule) Holds(c Counts) bool {
	return r.holds(c)
}

func (r Rule) String() string {
	return fmt.Sprintf("%s: %s", r.Name, r.Description)
}

// rules is the fixed rule set, in the order failures are reported
var rules = []Rule{
	{
		Name:        "uppercase",
		Description: fmt.Sprintf("at least %d uppercase letter (A-Z)", MinUpper),
		holds:       func(c Counts) bool { return c.Upper >= MinUpper },
	},
	{
		Name:        "special",
		Description: fmt.Sprintf("at least %d special characters (%s)", MinSpecial, SpecialChars),
		holds:       func(c Counts) bool { return c.Special >= MinSpecial },
	},
	{
		Name:        "digit",
		Description: fmt.Sprintf("at least %d digits (0-9)", MinDigit),
		holds:       func(c Counts) bool { return c.Digit >= MinDigit },
	},
	{
		Name:        "lowercase",
		Description: fmt.Sprintf("at least %d lowercase letters (a-z)", MinLower),
		holds:       func(c Counts) bool { return c.Lower >= MinLower },
	},
	{
		Name:        "alphabet",
		Description: fmt.Sprintf("only letters, digits and %s", SpecialChars),
		holds:       func(c Counts) bool { return c.Other == 0 },
	},
	{
		Name:        "length",
		Description: fmt.Sprintf("between %d and %d characters", MinLength, MaxLength),
		holds:       func(c Counts) bool { return c.Length >= MinLength && c.Length <= MaxLength },
	},
}

// Rules returns a copy of the fixed rule set
func Rules() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}
