package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var plainCell = lipgloss.NewStyle().PaddingRight(2)

// PlainTable renders a left-aligned table with no borders or color, for
// output that is not a terminal.
func PlainTable(headers []string, rows [][]string) string {
	return table.New().
		Border(lipgloss.HiddenBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		BorderRow(false).
		StyleFunc(func(_, _ int) lipgloss.Style { return plainCell }).
		Headers(headers...).
		Rows(rows...).
		String()
}

// WriteTable writes a PlainTable followed by a newline.
func WriteTable(w io.Writer, headers []string, rows [][]string) error {
	_, err := fmt.Fprintln(w, PlainTable(headers, rows))
	return err
}
