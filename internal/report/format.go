package report

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/ChenyuHeee/AIOPS/internal/scoring"
)

// metricRow describes one line of the metrics block.
type metricRow struct {
	label   string
	percent bool
	value   func(scoring.Metrics) float64
}

var metricRows = []metricRow{
	{label: "Component Accuracy (LA):", percent: true, value: func(m scoring.Metrics) float64 { return m.ComponentAccuracy }},
	{label: "Reason Accuracy (TA):", percent: true, value: func(m scoring.Metrics) float64 { return m.ReasonAccuracy }},
	{label: "Efficiency:", percent: true, value: func(m scoring.Metrics) float64 { return m.Efficiency }},
	{label: "Explainability:", percent: true, value: func(m scoring.Metrics) float64 { return m.Explainability }},
	{label: "Final Score:", value: func(m scoring.Metrics) float64 { return m.FinalScore }},
}

// format renders the row value for m.
func (r metricRow) format(m scoring.Metrics) string {
	if r.percent {
		return formatPercentage(r.value(m))
	}
	return formatScore(r.value(m))
}

// formatPercentage renders a ratio as a percentage with two decimals.
func formatPercentage(value float64) string {
	return fmt.Sprintf("%.2f%%", value*100)
}

// formatScore renders a final score with two decimals.
func formatScore(value float64) string {
	return fmt.Sprintf("%.2f", value)
}

// formatBool renders booleans the way the details block always has.
func formatBool(value bool) string {
	if value {
		return "True"
	}
	return "False"
}

// scoreColor picks a color band for a final score.
func scoreColor(score float64) lipgloss.Color {
	switch {
	case score >= 80:
		return lipgloss.Color("42")
	case score >= 50:
		return lipgloss.Color("214")
	default:
		return lipgloss.Color("196")
	}
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}

// heading renders a section title.
func heading(title string, noColor bool) string {
	line := "===== " + title + " ====="
	if noColor {
		return line
	}
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33")).Render(line)
}
