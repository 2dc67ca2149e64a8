// Package style provides shared UI styling primitives including brand colors
// and icons for consistent visual presentation across the CLI.
package style

import (
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/sameunit/internal/core/domain"
)

// Brand Colors.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	White  = lipgloss.Color("#FFFFFF")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Dot     = "●"
)

// StatusIcon returns the icon for a test status.
func StatusIcon(status domain.TestStatus) string {
	switch status {
	case domain.TestPassed:
		return Check
	case domain.TestFailed:
		return Cross
	default:
		return Warning
	}
}

// StatusColor returns the brand color for a test status.
func StatusColor(status domain.TestStatus) lipgloss.Color {
	switch status {
	case domain.TestPassed:
		return Green
	case domain.TestFailed:
		return Red
	default:
		return Yellow
	}
}
