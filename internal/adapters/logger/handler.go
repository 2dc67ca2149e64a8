// Package logger implements a logging adapter using log/slog.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/muesli/termenv"
	"go.trai.ch/sameunit/internal/ui/output"
	"go.trai.ch/sameunit/internal/ui/style"
)

const (
	// ScriptAttr names the script a record belongs to. It is printed as a prefix.
	ScriptAttr = "script"
	// TestAttr names the test a record belongs to. It is printed after the script.
	TestAttr = "test"
)

// PrettyHandler is a slog.Handler producing colored, human-readable lines.
// Records carrying ScriptAttr or TestAttr at the top level are prefixed
// like the console renderer does, e.g. "[demo/testA] message".
type PrettyHandler struct {
	out    *termenv.Output
	level  slog.Leveler
	attrs  []string
	prefix []string
	groups []string
}

// NewPrettyHandler creates a new PrettyHandler writing to w.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}

	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}

	return &PrettyHandler{
		out:   output.New(w),
		level: level,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle formats and outputs the log record.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	prefix := slices.Clone(h.prefix)
	attrs := slices.Clone(h.attrs)
	r.Attrs(func(attr slog.Attr) bool {
		prefix, attrs = h.appendAttr(prefix, attrs, attr)
		return true
	})

	var b strings.Builder
	if len(prefix) > 0 {
		b.WriteString("[" + strings.Join(prefix, "/") + "] ")
	}

	color := termenv.RGBColor(string(style.Slate))
	switch {
	case r.Level >= slog.LevelError:
		b.WriteString(style.Cross + " ")
		color = termenv.RGBColor(string(style.Red))
	case r.Level >= slog.LevelWarn:
		b.WriteString(style.Warning + " ")
		color = termenv.RGBColor(string(style.Yellow))
	}
	b.WriteString(r.Message)
	if len(attrs) > 0 {
		b.WriteString(" " + strings.Join(attrs, " "))
	}

	styled := h.out.String(b.String()).Foreground(color)
	if r.Level < slog.LevelInfo {
		styled = styled.Faint()
	}
	_, err := h.out.WriteString(styled.String() + "\n")
	return err
}

// WithAttrs returns a new Handler with the given attributes appended.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	c := h.clone()
	for _, attr := range attrs {
		c.prefix, c.attrs = c.appendAttr(c.prefix, c.attrs, attr)
	}
	return c
}

// WithGroup returns a new Handler qualifying later attributes with name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	c := h.clone()
	c.groups = append(c.groups, name)
	return c
}

func (h *PrettyHandler) clone() *PrettyHandler {
	return &PrettyHandler{
		out:    h.out,
		level:  h.level,
		attrs:  slices.Clone(h.attrs),
		prefix: slices.Clone(h.prefix),
		groups: slices.Clone(h.groups),
	}
}

// appendAttr adds attr to the prefix if it names the script or test, and to
// the formatted attributes otherwise.
func (h *PrettyHandler) appendAttr(prefix, attrs []string, attr slog.Attr) ([]string, []string) {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return prefix, attrs
	}
	if len(h.groups) == 0 && (attr.Key == ScriptAttr || attr.Key == TestAttr) {
		return append(prefix, attr.Value.String()), attrs
	}
	return prefix, append(attrs, formatAttr(h.groups, attr)...)
}

// formatAttr formats attr as key=value, qualifying the key with groups.
// Group values are flattened.
func formatAttr(groups []string, attr slog.Attr) []string {
	if attr.Value.Kind() == slog.KindGroup {
		nested := groups
		if attr.Key != "" {
			nested = append(slices.Clone(groups), attr.Key)
		}
		var out []string
		for _, a := range attr.Value.Group() {
			out = append(out, formatAttr(nested, a)...)
		}
		return out
	}

	key := attr.Key
	if len(groups) > 0 {
		key = strings.Join(groups, ".") + "." + key
	}
	return []string{key + "=" + attr.Value.String()}
}
