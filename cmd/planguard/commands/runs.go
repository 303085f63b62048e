package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/planguard/planguard/pkg/stores"
)

func newRunsCommand() *cobra.Command {
	var (
		dbPath string
		limit  int
		runID  string
	)

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List persisted check runs",
		Long: `List check runs persisted by "planguard check --db", most recent
first, or show the violations of a single run with --id.`,
		Example: `  # List recent runs
  planguard runs --db runs.db

  # Show the violations of one run
  planguard runs --db runs.db --id 5f8a...`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := stores.NewSQLiteStore(stores.Config{Path: dbPath})
			if err != nil {
				return err
			}
			if err := store.Init(ctx); err != nil {
				return err
			}
			defer store.Close()
			if err := store.Migrate(ctx); err != nil {
				return err
			}

			if runID != "" {
				violations, err := store.ListViolations(ctx, runID)
				if err != nil {
					return err
				}
				for _, v := range violations {
					fmt.Printf("%s  %s  %s\n", v.CheckName, v.Address, v.Message)
				}
				return nil
			}

			runs, err := store.ListRuns(ctx, limit, 0)
			if err != nil {
				return err
			}
			for _, run := range runs {
				fmt.Printf("%s  %s  checks=%d violations=%d  %s\n",
					run.ID, run.SuiteName, run.Checks, run.Violations,
					run.StartedAt.Format("2006-01-02 15:04:05"))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite database path (required)")
	cmd.Flags().IntVar(&limit, "limit", 20, "maximum runs to list")
	cmd.Flags().StringVar(&runID, "id", "", "show violations for this run")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}
