package validation

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		input    rune
		expected CharClass
	}{
		{'A', Upper},
		{'Z', Upper},
		{'a', Lower},
		{'z', Lower},
		{'0', Digit},
		{'9', Digit},
		{'!', Special},
		{'*', Special},
		{'^', Special},
		{'-', Other},
		{'?', Other},
		{' ', Other},
		{'É', Other},
		{'ß', Other},
		{'٣', Other},
		{'�', Other},
	}

	for _, tt := range tests {
		t.Run(string(tt.input), func(t *testing.T) {
			if got := Classify(tt.input); got != tt.expected {
				t.Errorf("Classify(%q) = %s, expected %s", tt.input, got, tt.expected)
			}
		})
	}
}

func TestClassify_SpecialChars(t *testing.T) {
	for _, r := range SpecialChars {
		if Classify(r) != Special {
			t.Errorf("Classify(%q) is not Special", r)
		}
	}
}
