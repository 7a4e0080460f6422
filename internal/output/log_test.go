package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetupLogging_DefaultHidesDebug(t *testing.T) {
	var buf bytes.Buffer
	SetupLoggingTo(&buf, false)
	t.Cleanup(func() { SetupLogging(false) })

	Debug("hidden-msg")
	Info("shown-msg", "file", "LICENSE")

	out := buf.String()
	assert.NotContains(t, out, "hidden-msg")
	assert.Contains(t, out, "shown-msg")
	assert.Contains(t, out, "file=LICENSE")
}

func TestSetupLogging_VerboseEnablesDebug(t *testing.T) {
	var buf bytes.Buffer
	SetupLoggingTo(&buf, true)
	t.Cleanup(func() { SetupLogging(false) })

	Debug("verbose-msg")

	assert.Contains(t, buf.String(), "verbose-msg")
}

func TestWarnAndError(t *testing.T) {
	var buf bytes.Buffer
	SetupLoggingTo(&buf, false)
	t.Cleanup(func() { SetupLogging(false) })

	Warn("careful")
	Error("broken")

	out := buf.String()
	assert.Contains(t, out, "careful")
	assert.Contains(t, out, "broken")
}

func TestCheckmark(t *testing.T) {
	assert.Contains(t, Checkmark("done"), "done")
	assert.Contains(t, Checkmark("done"), "✔")
}
