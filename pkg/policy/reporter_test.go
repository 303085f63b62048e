package policy

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestWriterReporter(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewWriterReporter(&buf)

	reporter.Report("violation: ", "r1 has acl that is null or undefined")

	assert.Equal(t, "violation: r1 has acl that is null or undefined\n", buf.String())
}

func TestLogReporter(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	reporter := NewLogReporter(logger)

	reporter.Report("violation: ", "r1 has acl that is null or undefined")

	out := buf.String()
	assert.Contains(t, out, "r1 has acl that is null or undefined")
	assert.Contains(t, out, `"prefix":"violation: "`)
}
