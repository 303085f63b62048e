// Package policy implements compliance checks over Terraform plan
// resource changes.
//
// The package has four main parts:
//
//  1. Engine - evaluates attribute predicates over resource collections
//     and builds violation reports
//  2. Loader - loads YAML check suites from files and directories
//  3. Runner - executes a suite against a plan and produces a run report
//  4. Built-in checks - a small default suite for common requirements
//
// # Usage
//
// Filtering resources directly:
//
//	engine := policy.NewEngine(policy.NewWriterReporter(os.Stdout), logger)
//	resources := plan.FindResources("aws_s3_bucket")
//	report := engine.FilterAttributeIsNotValue(resources, "acl", "private", true)
//	if !report.Empty() {
//	    // report.Resources and report.Messages hold the violators
//	}
//
// Running a suite:
//
//	suite, err := loader.LoadFromFile(ctx, "checks.yaml")
//	if err != nil {
//	    log.Fatal().Err(err).Msg("load failed")
//	}
//	run := runner.Run(plan, suite, true)
package policy
