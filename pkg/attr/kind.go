package attr

import "encoding/json"

// Kind is the runtime kind of a JSON-decoded value.
type Kind int

const (
	// KindUnknown covers values outside the JSON data model.
	KindUnknown Kind = iota

	// KindString is a text value.
	KindString

	// KindNumber covers float64 (the encoding/json default), the Go
	// integer types, and json.Number.
	KindNumber

	// KindBool is a boolean.
	KindBool

	// KindNull is an explicit null (Go nil).
	KindNull

	// KindAbsent is the resolver's not-found marker.
	KindAbsent

	// KindSequence is an ordered list of values.
	KindSequence

	// KindMapping is a string-keyed object.
	KindMapping
)

// String returns the kind name, for logging and test failure output.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindNull:
		return "null"
	case KindAbsent:
		return "absent"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	default:
		return "unknown"
	}
}

// AbsentValue marks an attribute that could not be resolved. It is
// distinct from a present null stored in the data.
type AbsentValue struct{}

// Absent is the singleton not-found marker returned by Evaluate.
var Absent = AbsentValue{}

// IsAbsent reports whether v is the resolver's not-found marker.
func IsAbsent(v any) bool {
	_, ok := v.(AbsentValue)
	return ok
}

// Classify determines the runtime kind of v. It is total: every value
// maps to a kind, and values outside the JSON data model map to
// KindUnknown.
func Classify(v any) Kind {
	switch v.(type) {
	case nil:
		return KindNull
	case AbsentValue:
		return KindAbsent
	case string:
		return KindString
	case bool:
		return KindBool
	case float64, float32, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, json.Number:
		return KindNumber
	case []any:
		return KindSequence
	case map[string]any:
		return KindMapping
	default:
		return KindUnknown
	}
}
