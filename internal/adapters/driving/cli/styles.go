package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/reportctl/internal/core/domain"
)

// Palette shared by the table printers. Colour is dropped automatically
// when output is not a terminal.
var (
	colourCritical = lipgloss.Color("#F38BA8") // Red
	colourHigh     = lipgloss.Color("#FAB387") // Orange
	colourMedium   = lipgloss.Color("#F9E2AF") // Yellow
	colourLow      = lipgloss.Color("#A6E3A1") // Green
	colourMuted    = lipgloss.Color("#6C7086") // Medium gray
	colourAccent   = lipgloss.Color("#7C3AED") // Purple
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(colourAccent)
	mutedStyle  = lipgloss.NewStyle().Foreground(colourMuted)
)

var severityStyles = map[domain.Severity]lipgloss.Style{
	domain.SeverityCritical: lipgloss.NewStyle().Bold(true).Foreground(colourCritical),
	domain.SeverityHigh:     lipgloss.NewStyle().Foreground(colourHigh),
	domain.SeverityMedium:   lipgloss.NewStyle().Foreground(colourMedium),
	domain.SeverityLow:      lipgloss.NewStyle().Foreground(colourLow),
	domain.SeverityStyle:    mutedStyle,
}

var reviewStyles = map[domain.ReviewStatus]lipgloss.Style{
	domain.ReviewStatusConfirmed:     lipgloss.NewStyle().Foreground(colourCritical),
	domain.ReviewStatusFalsePositive: mutedStyle,
	domain.ReviewStatusIntentional:   mutedStyle,
}

func severityLabel(s domain.Severity) string {
	if style, ok := severityStyles[s]; ok {
		return style.Render(s.String())
	}
	return s.String()
}

func reviewLabel(s domain.ReviewStatus) string {
	if style, ok := reviewStyles[s]; ok {
		return style.Render(s.String())
	}
	return s.String()
}

func header(text string) string {
	return headerStyle.Render(text)
}
