package policy

import (
	"sort"
	"time"

	"github.com/planguard/planguard/pkg/tfplan"
)

// Severity represents the severity level of a check.
type Severity string

const (
	// SeverityInfo is for informational findings.
	SeverityInfo Severity = "info"

	// SeverityWarning is for findings that should be reviewed.
	SeverityWarning Severity = "warning"

	// SeverityError is for findings that should block a change.
	SeverityError Severity = "error"
)

// Op selects the predicate a check applies to the resolved attribute.
type Op string

const (
	// OpNotEqual flags resources whose attribute differs from the
	// expected value, or is null or unresolvable.
	OpNotEqual Op = "not_equal"

	// OpGreaterThan flags resources whose attribute exceeds a numeric
	// threshold, or cannot be coerced to a number.
	OpGreaterThan Op = "greater_than"
)

// Check is a single compliance rule: a predicate over one attribute of
// every resource of one type.
type Check struct {
	// Name is the unique name of the check.
	Name string `yaml:"name" validate:"required"`

	// Description provides a human-readable description.
	Description string `yaml:"description,omitempty"`

	// ResourceType selects the resources the check applies to.
	ResourceType string `yaml:"resource_type" validate:"required"`

	// Attribute is the dot-delimited path into the post-change
	// attributes; numeric segments index into lists.
	Attribute string `yaml:"attribute" validate:"required"`

	// Op is the predicate to apply.
	Op Op `yaml:"op" validate:"required,oneof=not_equal greater_than"`

	// Value is the expected value (not_equal) or numeric threshold
	// (greater_than).
	Value any `yaml:"value" validate:"required"`

	// Severity defaults to error when empty.
	Severity Severity `yaml:"severity,omitempty" validate:"omitempty,oneof=info warning error"`
}

// Suite is a named collection of checks, typically one YAML document.
type Suite struct {
	// Name is the suite name.
	Name string `yaml:"name" validate:"required"`

	// Description provides a human-readable description.
	Description string `yaml:"description,omitempty"`

	// Checks are the checks to run, in order.
	Checks []Check `yaml:"checks" validate:"required,min=1,dive"`
}

// Report pairs the violating resources with one message per violator.
// Both maps are keyed by resource address and always have identical key
// sets. A fresh Report is allocated per filter call; the caller owns it.
type Report struct {
	Resources map[string]*tfplan.ResourceChange
	Messages  map[string]string
}

// NewReport returns an empty report.
func NewReport() *Report {
	return &Report{
		Resources: make(map[string]*tfplan.ResourceChange),
		Messages:  make(map[string]string),
	}
}

// add records one violation, keeping Resources and Messages in step.
func (r *Report) add(address string, rc *tfplan.ResourceChange, message string) {
	r.Resources[address] = rc
	r.Messages[address] = message
}

// Empty reports whether the scan found no violators.
func (r *Report) Empty() bool {
	return len(r.Messages) == 0
}

// Count returns the number of violators.
func (r *Report) Count() int {
	return len(r.Messages)
}

// CheckResult is the outcome of one check of a suite.
type CheckResult struct {
	Check  Check   `json:"check"`
	Report *Report `json:"-"`

	// Scanned is the number of resources the check examined.
	Scanned int `json:"scanned"`

	// Violations is the number of violators found.
	Violations int `json:"violations"`

	// Passed is true when no resource violated the check.
	Passed bool `json:"passed"`
}

// RunReport is the result of running a full suite against one plan.
type RunReport struct {
	// ID uniquely identifies the run.
	ID string `json:"id"`

	// SuiteName is the name of the suite that was run.
	SuiteName string `json:"suite_name"`

	// PlanPath is the plan file the run evaluated, when known.
	PlanPath string `json:"plan_path,omitempty"`

	// StartedAt and CompletedAt bound the scan.
	StartedAt   time.Time `json:"started_at"`
	CompletedAt time.Time `json:"completed_at"`

	// Results holds one entry per check, in suite order.
	Results []CheckResult `json:"results"`

	// Violations is the total violator count across all checks.
	Violations int `json:"violations"`
}

// Passed reports whether the run found no violations at all.
func (r *RunReport) Passed() bool {
	return r.Violations == 0
}

// sortedAddresses returns the collection's addresses in sorted order.
// Go map iteration is unordered, so this is the package's defined,
// stable scan order; message emission follows it.
func sortedAddresses(resources map[string]*tfplan.ResourceChange) []string {
	addresses := make([]string, 0, len(resources))
	for address := range resources {
		addresses = append(addresses, address)
	}
	sort.Strings(addresses)
	return addresses
}
