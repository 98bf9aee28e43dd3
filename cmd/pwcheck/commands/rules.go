package commands

import (
	"fmt"

	"github.com/mrled/suns/pwcheck/internal/validation"
	"github.com/spf13/cobra"
)

func newRulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the password rules",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, rule := range validation.Rules() {
				if _, err := fmt.Fprintln(out, rule); err != nil {
					return ExitWithCode(1, err)
				}
			}
			return nil
		},
	}
}
