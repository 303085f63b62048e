package commands

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/planguard/planguard/pkg/policy"
	"github.com/planguard/planguard/pkg/stores"
	"github.com/planguard/planguard/pkg/tfplan"
)

func newCheckCommand() *cobra.Command {
	var (
		planPath   string
		checksPath string
		dbPath     string
		quiet      bool
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Run policy checks against a Terraform plan",
		Long: `Run a check suite against Terraform plan JSON.

Loads the plan (terraform show -json output), evaluates every check of
the suite, and prints one message per violating resource. Exits with
status 1 when violations are found.`,
		Example: `  # Run a suite against a plan
  planguard check --plan plan.json --checks checks.yaml

  # Run the built-in baseline checks and persist the run
  planguard check --plan plan.json --db runs.db`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			logger := log.Logger
			if verbose {
				logger = logger.Level(zerolog.DebugLevel)
			}

			plan, err := tfplan.ParseFile(planPath)
			if err != nil {
				return err
			}

			suite := policy.BuiltinSuite()
			if checksPath != "" {
				loader := policy.NewLoader(logger)
				suite, err = loader.LoadFromFile(ctx, checksPath)
				if err != nil {
					return err
				}
			}

			engine := policy.NewEngine(policy.NewWriterReporter(os.Stdout), logger)
			runner := policy.NewRunner(engine, logger)
			run := runner.Run(plan, suite, !quiet)

			if dbPath != "" {
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
				if err := store.SaveRun(ctx, run, planPath); err != nil {
					return err
				}
				log.Info().Str("run_id", run.ID).Str("db", dbPath).Msg("Run persisted")
			}

			if !run.Passed() {
				return fmt.Errorf("%d violation(s) found", run.Violations)
			}

			fmt.Printf("All %d check(s) passed\n", len(run.Results))
			return nil
		},
	}

	cmd.Flags().StringVar(&planPath, "plan", "", "Terraform plan JSON file (required)")
	cmd.Flags().StringVar(&checksPath, "checks", "", "check suite YAML file (default: built-in checks)")
	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite database for persisting runs")
	cmd.Flags().BoolVar(&quiet, "quiet", false, "suppress live violation output")
	_ = cmd.MarkFlagRequired("plan")

	return cmd
}
