package commands

import (
	"log/slog"

	"github.com/mrled/suns/pwcheck/internal/logger"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the pwcheck command tree.
// Running the root command with no arguments prompts for a password and prints the verdict.
func NewRootCmd() *cobra.Command {
	var log *slog.Logger

	rootCmd := &cobra.Command{
		Use:           "pwcheck",
		Short:         "Check a password against the composition rules",
		SilenceUsage:  true,
		SilenceErrors: true,
		Long: `Prompt for a password on standard input and report whether it is valid.

A valid password has:
  - at least 1 uppercase letter (A-Z)
  - at least 2 special characters (!@#$%^&*)
  - at least 2 digits (0-9)
  - at least 4 lowercase letters (a-z)
  - no characters outside those sets
  - between 1 and 12 characters`,
		Args: noArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Logs go to stderr so stdout only carries the prompt and verdict
			cfg, err := logger.LoadConfig(logger.Config{
				Level:  "warn",
				Format: "json",
				Output: cmd.ErrOrStderr(),
			})
			log = logger.WithExecutable(logger.NewLogger(cfg), "pwcheck")
			if err != nil {
				// A bad logging setting must not stop the check
				log.Warn("Using default logger configuration", slog.String("error", err.Error()))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, log, false)
		},
	}

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &UsageError{err}
	})

	rootCmd.AddCommand(newExplainCmd(func() *slog.Logger { return log }))
	rootCmd.AddCommand(newRulesCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}

func noArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.NoArgs(cmd, args); err != nil {
		return &UsageError{err}
	}
	return nil
}
