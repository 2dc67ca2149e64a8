package report

import (
	"fmt"
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"go.trai.ch/sameunit/internal/core/domain"
)

// Summary renders the results of a run as a table.
type Summary struct {
	w     io.Writer
	color bool
}

// NewSummary creates a Summary writing to w. Colored styles are used when color is set.
func NewSummary(w io.Writer, color bool) *Summary {
	return &Summary{w: w, color: color}
}

// Write renders one row per script and a footer with the totals.
func (s *Summary) Write(results []domain.SuiteResult) {
	t := table.NewWriter()
	t.SetOutputMirror(s.w)
	t.SetTitle("Test Summary")

	t.AppendHeader(table.Row{"Script", "Duration", "Tests", "Failures", "Errors", "Status"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Script", WidthMax: 80, WidthMaxEnforcer: text.WrapSoft},
		{Name: "Duration", Align: text.AlignRight},
		{Name: "Tests", Align: text.AlignRight},
		{Name: "Failures", Align: text.AlignRight},
		{Name: "Errors", Align: text.AlignRight},
	})

	var (
		total    domain.SuiteOutcome
		duration time.Duration
		skipped  int
	)
	for _, r := range results {
		if r.Skipped {
			skipped++
			t.AppendRow(table.Row{r.File, "-", "-", "-", "-", "SKIP"})
			continue
		}
		total.Add(r.Outcome)
		duration += r.Duration
		t.AppendRow(table.Row{
			r.File,
			formatDuration(r.Duration),
			r.Outcome.Tests,
			r.Outcome.Failures,
			r.Outcome.Errors,
			resultString(r.Outcome),
		})
	}

	switch {
	case !s.color:
		t.SetStyle(table.StyleLight)
	case total.Failed():
		t.SetStyle(table.StyleColoredBlackOnRedWhite)
	case skipped > 0:
		t.SetStyle(table.StyleColoredBlackOnYellowWhite)
	default:
		t.SetStyle(table.StyleColoredBlackOnGreenWhite)
	}
	t.Style().Format.Footer = text.FormatDefault

	t.AppendFooter(table.Row{
		"TOTAL",
		formatDuration(duration),
		total.Tests,
		total.Failures,
		total.Errors,
		resultString(total),
	})

	t.Render()
}

func resultString(o domain.SuiteOutcome) string {
	switch {
	case o.Failures > 0:
		return "FAIL"
	case o.Errors > 0:
		return "ERROR"
	default:
		return "PASS"
	}
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return fmt.Sprintf("%.1fs", d.Seconds())
}
