package commands

import (
	"log/slog"

	"github.com/spf13/cobra"
)

func newExplainCmd(log func() *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "explain",
		Short: "Check a password and list the rules it breaks",
		Long: `Prompt for a password, print the verdict, then list every rule the
password does not satisfy, one per line.

Example:
  echo 'A1!bcde' | pwcheck explain`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, log(), true)
		},
	}
}
