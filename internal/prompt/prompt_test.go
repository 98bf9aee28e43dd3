package prompt

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestReadLine(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"unix newline", "Ab12!@cdef\n", "Ab12!@cdef"},
		{"windows newline", "Ab12!@cdef\r\n", "Ab12!@cdef"},
		{"no terminator", "Ab12!@cdef", "Ab12!@cdef"},
		{"only first line", "first\nsecond\n", "first"},
		{"empty input", "", ""},
		{"empty line", "\n", ""},
		{"leading and trailing spaces kept", "  Ab12!@cdef \n", "  Ab12!@cdef "},
		{"lone carriage return kept inside", "a\rb\n", "a\rb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadLine(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("Expected no error, got: %v", err)
			}
			if got != tt.expected {
				t.Errorf("ReadLine(%q) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("stdin closed")
}

func TestReadLine_Error(t *testing.T) {
	_, err := ReadLine(failingReader{})
	if err == nil {
		t.Fatal("Expected error from failing reader, got nil")
	}
	if !strings.Contains(err.Error(), "stdin closed") {
		t.Errorf("Expected wrapped error, got: %v", err)
	}
}

func TestAsk(t *testing.T) {
	var out bytes.Buffer
	got, err := Ask(strings.NewReader("Ab12!@cdef\n"), &out)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if got != "Ab12!@cdef" {
		t.Errorf("Ask() = %q, expected %q", got, "Ab12!@cdef")
	}
	if out.String() != "Enter a password: " {
		t.Errorf("Prompt = %q, expected %q", out.String(), "Enter a password: ")
	}
}

func TestReport(t *testing.T) {
	tests := []struct {
		valid    bool
		expected string
	}{
		{true, "Password is valid!\n"},
		{false, "Password is invalid!\n"},
	}

	for _, tt := range tests {
		var out bytes.Buffer
		if err := Report(&out, tt.valid); err != nil {
			t.Fatalf("Expected no error, got: %v", err)
		}
		if out.String() != tt.expected {
			t.Errorf("Report(%v) wrote %q, expected %q", tt.valid, out.String(), tt.expected)
		}
	}
}
