package browse

import (
	"fmt"
	"io"

	"github.com/ChenyuHeee/AIOPS/internal/report"
	"github.com/ChenyuHeee/AIOPS/internal/scoring"
)

// WritePlain prints the filtered sample table without terminal control codes.
func WritePlain(w io.Writer, result scoring.Result, filter Filter) error {
	state := State{Result: result, Filter: filter}
	visible := state.Visible()
	if _, err := fmt.Fprintln(w, formatMetrics(result.Metrics)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Showing %s (%d of %d)\n", filter, len(visible), len(result.Samples)); err != nil {
		return err
	}
	rows := rowsForSamples(visible, true)
	cells := make([][]string, 0, len(rows))
	for _, row := range rows {
		cells = append(cells, row)
	}
	return report.WriteTable(w, []string{"UUID", "COMPONENT", "REASON", "STEPS", "EVIDENCE"}, cells)
}
