package browse

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/ChenyuHeee/AIOPS/internal/scoring"
)

// defaultColumns returns the sample table columns at their natural widths.
func defaultColumns() []table.Column {
	return []table.Column{
		{Title: "UUID", Width: 36},
		{Title: "Component", Width: 10},
		{Title: "Reason", Width: 8},
		{Title: "Steps", Width: 6},
		{Title: "Evidence", Width: 9},
	}
}

// columnsForWidth shrinks the UUID column to fit narrow terminals.
func columnsForWidth(width int) []table.Column {
	columns := defaultColumns()
	fixed := 0
	for _, column := range columns[1:] {
		fixed += column.Width + 2
	}
	if width <= 0 {
		return columns
	}
	uuidWidth := width - fixed - 2
	if uuidWidth < 8 {
		uuidWidth = 8
	}
	if uuidWidth < columns[0].Width {
		columns[0].Width = uuidWidth
	}
	return columns
}

// rowsForSamples converts samples into table rows.
func rowsForSamples(samples []scoring.SampleScore, noColor bool) []table.Row {
	rows := make([]table.Row, 0, len(samples))
	for _, sample := range samples {
		rows = append(rows, table.Row{
			sample.UUID,
			formatVerdict(sample.ComponentCorrect, noColor),
			formatVerdict(sample.ReasonCorrect, noColor),
			strconv.Itoa(sample.StepCount),
			formatEvidence(sample.EvidenceHit, sample.EvidenceTotal),
		})
	}
	return rows
}

// formatVerdict renders a correctness flag.
func formatVerdict(ok bool, noColor bool) string {
	if ok {
		return stylize("ok", noColor, lipgloss.Color("42"))
	}
	return stylize("miss", noColor, lipgloss.Color("196"))
}

// formatEvidence renders evidence coverage as hit/total.
func formatEvidence(hit, total int) string {
	if total == 0 {
		return "-"
	}
	return fmt.Sprintf("%d/%d", hit, total)
}

// formatMetrics renders the one-line metrics header.
func formatMetrics(m scoring.Metrics) string {
	return fmt.Sprintf("LA %.2f%%  TA %.2f%%  Eff %.2f%%  Expl %.2f%%  Score %.2f",
		m.ComponentAccuracy*100, m.ReasonAccuracy*100, m.Efficiency*100, m.Explainability*100, m.FinalScore)
}

// tableStyles returns table styles for the UI.
func tableStyles(noColor bool) table.Styles {
	if noColor {
		return table.DefaultStyles()
	}
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Foreground(lipgloss.Color("252"))
	return styles
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}
