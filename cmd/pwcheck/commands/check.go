package commands

import (
	"fmt"
	"log/slog"

	"github.com/mrled/suns/pwcheck/internal/prompt"
	"github.com/mrled/suns/pwcheck/internal/validation"
	"github.com/spf13/cobra"
)

// runCheck prompts for a candidate, validates it and writes the verdict.
// With explain set, each failed rule is listed under the verdict.
func runCheck(cmd *cobra.Command, log *slog.Logger, explain bool) error {
	in := cmd.InOrStdin()
	out := cmd.OutOrStdout()

	candidate, err := prompt.Ask(in, out)
	if err != nil {
		return ExitWithCode(1, err)
	}

	result := validation.Check(candidate)
	if log != nil {
		// Never log the candidate itself
		log.Debug("Checked password",
			slog.Bool("valid", result.Valid),
			slog.Int("length", result.Counts.Length),
			slog.Any("failures", result.FailureNames()))
	}

	if err := prompt.Report(out, result.Valid); err != nil {
		return ExitWithCode(1, err)
	}

	if explain {
		for _, rule := range result.Failures {
			if _, err := fmt.Fprintf(out, "  - %s\n", rule); err != nil {
				return ExitWithCode(1, fmt.Errorf("failed to write result: %w", err))
			}
		}
	}

	return nil
}
