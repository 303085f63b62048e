package attr

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ToString renders v as a human-readable string. Sequences render as
// "[e1, e2]", mappings as "{k1: v1, k2: v2}" with keys in sorted order
// so output is stable across calls. Null renders as "null", the absent
// marker as "undefined", and unknown kinds as the empty string. ToString
// never fails and never truncates nested structures.
func ToString(v any) string {
	switch Classify(v) {
	case KindString:
		return v.(string)
	case KindNumber:
		return formatNumber(v)
	case KindBool:
		return strconv.FormatBool(v.(bool))
	case KindNull:
		return "null"
	case KindAbsent:
		return "undefined"
	case KindSequence:
		return formatSequence(v.([]any))
	case KindMapping:
		return formatMapping(v.(map[string]any))
	default:
		return ""
	}
}

func formatNumber(v any) string {
	switch n := v.(type) {
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(n), 'f', -1, 32)
	case json.Number:
		return n.String()
	default:
		// Remaining integer kinds all render faithfully via %d.
		return fmt.Sprintf("%d", n)
	}
}

func formatSequence(seq []any) string {
	if len(seq) == 0 {
		return "[]"
	}

	var b strings.Builder
	b.WriteString("[")
	for i, elem := range seq {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(ToString(elem))
	}
	b.WriteString("]")
	return b.String()
}

func formatMapping(m map[string]any) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString("{")
	for i, k := range keys {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(ToString(m[k]))
	}
	b.WriteString("}")
	return b.String()
}
