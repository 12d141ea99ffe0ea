package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func capture(t *testing.T, verboseMode bool) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(verboseMode)
	t.Cleanup(func() {
		SetVerbose(false)
		SetOutput(os.Stderr)
	})
	return &buf
}

func TestSetVerbose(t *testing.T) {
	capture(t, false)
	assert.False(t, IsVerbose())

	SetVerbose(true)
	assert.True(t, IsVerbose())

	SetVerbose(false)
	assert.False(t, IsVerbose())
}

func TestVerboseLevels(t *testing.T) {
	tests := []struct {
		name     string
		log      func()
		expected string
	}{
		{name: "debug", log: func() { Debug("loaded %d", 2) }, expected: "[DEBUG] loaded 2\n"},
		{name: "info", log: func() { Info("seed from %s", "datos.json") }, expected: "[INFO] seed from datos.json\n"},
		{name: "warn", log: func() { Warn("skipped") }, expected: "[WARN] skipped\n"},
		{name: "section", log: func() { Section("Seed Load") }, expected: "\n=== Seed Load ===\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := capture(t, true)
			tt.log()
			assert.Equal(t, tt.expected, buf.String())
		})
		t.Run(tt.name+" quiet", func(t *testing.T) {
			buf := capture(t, false)
			tt.log()
			assert.Empty(t, buf.String())
		})
	}
}

func TestError_AlwaysWritten(t *testing.T) {
	buf := capture(t, false)

	Error("open %s: denied", "cotiza.db")

	assert.Equal(t, "[ERROR] open cotiza.db: denied\n", buf.String())
}
