// Package styles provides shared lipgloss styles for the CLI dashboard
// output.
package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Semantic colors used across the dashboard views.
var (
	ColorPrimary = lipgloss.Color("#7aa2f7")
	ColorMuted   = lipgloss.Color("#565f89")
	ColorSuccess = lipgloss.Color("#9ece6a")
	ColorWarning = lipgloss.Color("#e0af68")
	ColorError   = lipgloss.Color("#f7768e")
)

var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	ValueStyle = lipgloss.NewStyle().
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	SectionStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorMuted).
			Padding(0, 1)
)

// ScoreStyle picks the style for a 0-100 score value.
func ScoreStyle(score float64) lipgloss.Style {
	switch {
	case score >= 70:
		return SuccessStyle
	case score >= 40:
		return WarningStyle
	default:
		return ErrorStyle
	}
}

// barWidth is the character width of rendered progress bars.
const barWidth = 20

// Bar renders a fixed-width progress bar for a 0-100 percentage.
func Bar(percent float64) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	filled := int(percent / 100 * barWidth)
	bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
	return fmt.Sprintf("%s %5.1f%%", ScoreStyle(percent).Render(bar), percent)
}

// KV renders a muted label with a bold value.
func KV(label string, value any) string {
	return fmt.Sprintf("%s %s", LabelStyle.Render(label+":"), ValueStyle.Render(fmt.Sprint(value)))
}
