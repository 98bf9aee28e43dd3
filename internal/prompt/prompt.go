// Package prompt reads a candidate password from a stream and reports the verdict
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	// Prompt is written before the candidate is read
	Prompt = "Enter a password: "

	ValidMessage   = "Password is valid!"
	InvalidMessage = "Password is invalid!"
)

// ReadLine reads one line from r and strips only the line terminator.
// Reaching end of input is not an error; whatever was read so far is returned.
func ReadLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}

// Ask writes the prompt to w and reads one line from r
func Ask(r io.Reader, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, Prompt); err != nil {
		return "", fmt.Errorf("failed to write prompt: %w", err)
	}
	return ReadLine(r)
}

// Message returns the verdict line for a validation result
func Message(valid bool) string {
	if valid {
		return ValidMessage
	}
	return InvalidMessage
}

// Report writes the verdict line to w
func Report(w io.Writer, valid bool) error {
	if _, err := fmt.Fprintln(w, Message(valid)); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	return nil
}
