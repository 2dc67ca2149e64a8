package logger_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/sameunit/internal/adapters/logger"
)

func TestPrettyHandler_Handle_Levels(t *testing.T) {
	tests := []struct {
		name       string
		level      slog.Level
		msg        string
		goldenName string
	}{
		{name: "info level", level: slog.LevelInfo, msg: "information message", goldenName: "handler_info"},
		{name: "warn level", level: slog.LevelWarn, msg: "warning message", goldenName: "handler_warn"},
		{name: "error level", level: slog.LevelError, msg: "error message", goldenName: "handler_error"},
		{name: "debug level filtered", level: slog.LevelDebug, msg: "debug message", goldenName: "handler_debug_filtered"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", "1")

			buf := &bytes.Buffer{}
			lg := slog.New(logger.NewPrettyHandler(buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

			lg.Log(t.Context(), tt.level, tt.msg)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestPrettyHandler_Attrs(t *testing.T) {
	tests := []struct {
		name string
		log  func(lg *slog.Logger)
		want string
	}{
		{
			name: "script prefix",
			log: func(lg *slog.Logger) {
				lg.With(logger.ScriptAttr, "demo").WithGroup("run").Info("started", slog.Int("tests", 3))
			},
			want: "[demo] started run.tests=3\n",
		},
		{
			name: "script and test prefix",
			log: func(lg *slog.Logger) {
				lg.Warn("slow", logger.ScriptAttr, "demo", logger.TestAttr, "testA", "took", "2s")
			},
			want: "[demo/testA] ! slow took=2s\n",
		},
		{
			name: "grouped script is a plain attribute",
			log: func(lg *slog.Logger) {
				lg.WithGroup("suite").Info("done", logger.ScriptAttr, "demo")
			},
			want: "done suite.script=demo\n",
		},
		{
			name: "nested groups",
			log: func(lg *slog.Logger) {
				lg.WithGroup("run").Info("done",
					slog.Group("outcome", slog.Int("failures", 1), slog.Int("errors", 0)))
			},
			want: "done run.outcome.failures=1 run.outcome.errors=0\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", "1")

			buf := &bytes.Buffer{}
			tt.log(slog.New(logger.NewPrettyHandler(buf, nil)))

			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestPrettyHandler_DebugLevel(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := slog.New(logger.NewPrettyHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	lg.Debug("resolved 3 targets")

	assert.Equal(t, "resolved 3 targets\n", buf.String())
}

func TestPrettyHandler_NilWriter(t *testing.T) {
	h := logger.NewPrettyHandler(nil, nil)
	assert.True(t, h.Enabled(t.Context(), slog.LevelInfo))
	assert.False(t, h.Enabled(t.Context(), slog.LevelDebug))
}
