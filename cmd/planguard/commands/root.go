package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
)

// Execute runs the root command
func Execute(ctx context.Context, version, commit, buildDate string) error {
	rootCmd := newRootCommand(version, commit, buildDate)
	return rootCmd.ExecuteContext(ctx)
}

func newRootCommand(version, commit, buildDate string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "planguard",
		Short: "planguard - policy checks for Terraform plans",
		Long: `planguard evaluates policy-as-code checks against Terraform plan JSON.

It walks nested resource attributes, classifies resources as compliant
or violating against simple predicates, and reports every violation
with a human-readable message. Runs can be persisted to a local SQLite
database for audit.`,
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildDate),
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(newCheckCommand())
	rootCmd.AddCommand(newRunsCommand())

	return rootCmd
}
