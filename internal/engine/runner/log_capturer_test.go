package runner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sameunit/internal/core/domain"
	"go.trai.ch/sameunit/internal/engine/runner"
)

func newCapturedContext() *fakeContext {
	return &fakeContext{id: 1, journal: &journal{}, refs: make(map[string]any)}
}

func TestLogCapturer_Registers(t *testing.T) {
	ec := newCapturedContext()

	c := runner.NewLogCapturer(ec)

	require.Len(t, ec.observers, 1)
	ref, ok := ec.Reference(domain.LogCapturerRef)
	require.True(t, ok)
	assert.Same(t, c, ref)
}

func TestLogCapturer_Log(t *testing.T) {
	ec := newCapturedContext()
	c := runner.NewLogCapturer(ec)

	ec.Log(domain.LogLevelError, "E")
	ec.Log(domain.LogLevelWarn, "W")
	ec.Log(domain.LogLevelInfo, "I")
	ec.Log(domain.LogLevelVerbose, "V")
	ec.Log(domain.LogLevelDebug, "D")

	tests := []struct {
		level      domain.LogLevel
		mergeLines bool
		expected   string
	}{
		{domain.LogLevelError, true, "E"},
		{domain.LogLevelWarn, true, "EW"},
		{domain.LogLevelInfo, true, "EWI"},
		{domain.LogLevelVerbose, false, "E\nW\nI\nV\n"},
		{domain.LogLevelDebug, true, "EWIVD"},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			assert.Equal(t, tt.expected, c.Log(tt.level, tt.mergeLines))
		})
	}
}

func TestLogCapturer_DetachesOnBuildFinished(t *testing.T) {
	ec := newCapturedContext()
	c := runner.NewLogCapturer(ec)

	ec.Log(domain.LogLevelInfo, "before")
	ec.FireBuildFinished(nil)
	ec.Log(domain.LogLevelInfo, "after")

	assert.Empty(t, ec.observers)
	assert.Equal(t, "before", c.Log(domain.LogLevelInfo, true))

	// A second finish must not detach twice.
	ec.FireBuildFinished(nil)
}
