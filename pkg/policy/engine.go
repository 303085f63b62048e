package policy

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/planguard/planguard/pkg/attr"
	"github.com/planguard/planguard/pkg/tfplan"
)

// Engine evaluates attribute predicates over resource collections and
// builds violation reports. It holds no state between calls; every
// filter invocation is a single pass over its input.
type Engine struct {
	reporter Reporter
	logger   zerolog.Logger
}

// NewEngine creates an engine that emits live violation messages to
// reporter when a filter is called with report enabled.
func NewEngine(reporter Reporter, logger zerolog.Logger) *Engine {
	return &Engine{
		reporter: reporter,
		logger:   logger.With().Str("component", "check-engine").Logger(),
	}
}

// FilterAttributeIsNotValue scans resources and flags every resource
// whose attribute does not equal value. An attribute that resolves to
// null, or cannot be resolved at all, is flagged as null or undefined.
// Resources are scanned in sorted address order; when report is true
// each message is emitted to the reporter as the violator is found.
//
// Filters never fail: every resolution problem becomes a finding.
func (e *Engine) FilterAttributeIsNotValue(resources map[string]*tfplan.ResourceChange, attribute string, value any, report bool) *Report {
	result := NewReport()

	for _, address := range sortedAddresses(resources) {
		rc := resources[address]
		resolved := attr.Evaluate(rc, attribute)

		var message string
		switch {
		case resolved == nil || attr.IsAbsent(resolved):
			message = fmt.Sprintf("%s has %s that is null or undefined", address, attribute)
		case !valuesEqual(resolved, value):
			message = fmt.Sprintf("%s has %s with value %s that is not equal to %s",
				address, attribute, attr.ToString(resolved), attr.ToString(value))
		default:
			continue
		}

		result.add(address, rc, message)
		if report {
			e.reporter.Report("", message)
		}
	}

	e.logger.Debug().
		Str("attribute", attribute).
		Int("scanned", len(resources)).
		Int("violations", result.Count()).
		Msg("not-equal filter completed")

	return result
}

// FilterAttributeGreaterThanValue scans resources and flags every
// resource whose attribute, coerced to a number, is strictly greater
// than value. Attributes that are null, unresolvable, or not numeric
// are flagged as null or undefined. Scan order and live reporting
// behave as in FilterAttributeIsNotValue.
func (e *Engine) FilterAttributeGreaterThanValue(resources map[string]*tfplan.ResourceChange, attribute string, value float64, report bool) *Report {
	result := NewReport()

	for _, address := range sortedAddresses(resources) {
		rc := resources[address]
		resolved := attr.Evaluate(rc, attribute)

		var message string
		if n, ok := toNumber(resolved); !ok {
			message = fmt.Sprintf("%s has %s that is null or undefined", address, attribute)
		} else if n > value {
			message = fmt.Sprintf("%s has %s with value %s that is greater than %s",
				address, attribute, attr.ToString(resolved), attr.ToString(value))
		} else {
			continue
		}

		result.add(address, rc, message)
		if report {
			e.reporter.Report("", message)
		}
	}

	e.logger.Debug().
		Str("attribute", attribute).
		Int("scanned", len(resources)).
		Int("violations", result.Count()).
		Msg("greater-than filter completed")

	return result
}

// PrintViolations emits every message of a report to the reporter with
// the given prefix, in sorted address order.
func (e *Engine) PrintViolations(messages map[string]string, prefix string) {
	addresses := make([]string, 0, len(messages))
	for address := range messages {
		addresses = append(addresses, address)
	}
	sort.Strings(addresses)

	for _, address := range addresses {
		e.reporter.Report(prefix, messages[address])
	}
}

// valuesEqual compares a resolved attribute against an expected value.
// Numbers compare numerically across kinds because plan JSON decodes
// numbers as float64 while YAML suites decode whole numbers as int.
func valuesEqual(a, b any) bool {
	if attr.Classify(a) == attr.KindNumber && attr.Classify(b) == attr.KindNumber {
		na, _ := toNumber(a)
		nb, _ := toNumber(b)
		return na == nb
	}
	return reflect.DeepEqual(a, b)
}

// toNumber coerces v to float64. Numeric strings coerce; booleans,
// containers, null, and the absent marker do not.
func toNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	default:
		return 0, false
	}
}
