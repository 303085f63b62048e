package attr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToString(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"string passes through", "private", "private"},
		{"whole float renders without decimals", 5.0, "5"},
		{"fractional float", 2.5, "2.5"},
		{"int", 12, "12"},
		{"bool true", true, "true"},
		{"bool false", false, "false"},
		{"null", nil, "null"},
		{"absent", Absent, "undefined"},
		{"empty sequence", []any{}, "[]"},
		{"sequence", []any{1.0, 2.0, 3.0}, "[1, 2, 3]"},
		{"nested sequence", []any{"a", []any{true, nil}}, "[a, [true, null]]"},
		{"mapping keys sorted", map[string]any{"b": 2.0, "a": 1.0}, "{a: 1, b: 2}"},
		{"nested mapping", map[string]any{"x": map[string]any{"y": []any{}}}, "{x: {y: []}}"},
		{"unknown renders empty", struct{}{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToString(tt.value))
		})
	}
}

func TestToStringIsStable(t *testing.T) {
	m := map[string]any{"c": 3.0, "a": 1.0, "b": 2.0}
	first := ToString(m)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ToString(m))
	}
}
