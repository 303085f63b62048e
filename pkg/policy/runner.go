package policy

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/planguard/planguard/pkg/tfplan"
)

// PlanSource is the subset of the plan the runner needs: a provider of
// resource collections by type. *tfplan.Plan satisfies it.
type PlanSource interface {
	FindResources(resourceType string) map[string]*tfplan.ResourceChange
}

// Runner executes check suites against a plan.
type Runner struct {
	engine *Engine
	logger zerolog.Logger
}

// NewRunner creates a runner backed by the given engine.
func NewRunner(engine *Engine, logger zerolog.Logger) *Runner {
	return &Runner{
		engine: engine,
		logger: logger.With().Str("component", "suite-runner").Logger(),
	}
}

// Run executes every check of the suite against the plan and returns a
// run report. When report is true, violation messages are emitted live
// through the engine's reporter as each check scans.
//
// Run never fails: unknown resource types simply scan zero resources,
// and resolution problems surface as violations (loaders reject
// non-numeric greater_than thresholds up front).
func (r *Runner) Run(plan PlanSource, suite *Suite, report bool) *RunReport {
	run := &RunReport{
		ID:        uuid.NewString(),
		SuiteName: suite.Name,
		StartedAt: time.Now(),
		Results:   make([]CheckResult, 0, len(suite.Checks)),
	}

	for _, check := range suite.Checks {
		resources := plan.FindResources(check.ResourceType)

		var rep *Report
		switch check.Op {
		case OpGreaterThan:
			threshold, _ := toNumber(check.Value)
			rep = r.engine.FilterAttributeGreaterThanValue(resources, check.Attribute, threshold, report)
		default:
			rep = r.engine.FilterAttributeIsNotValue(resources, check.Attribute, check.Value, report)
		}

		run.Results = append(run.Results, CheckResult{
			Check:      check,
			Report:     rep,
			Scanned:    len(resources),
			Violations: rep.Count(),
			Passed:     rep.Empty(),
		})
		run.Violations += rep.Count()

		r.logger.Debug().
			Str("check", check.Name).
			Int("scanned", len(resources)).
			Int("violations", rep.Count()).
			Msg("Check completed")
	}

	run.CompletedAt = time.Now()

	r.logger.Info().
		Str("run_id", run.ID).
		Str("suite", suite.Name).
		Int("checks", len(suite.Checks)).
		Int("violations", run.Violations).
		Msg("Suite run completed")

	return run
}
