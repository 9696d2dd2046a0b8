package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/ChenyuHeee/AIOPS/internal/scoring"
)

// DetailsHeader is the header row of the per-sample breakdown.
var DetailsHeader = []string{"uuid", "component_ok", "reason_ok", "steps", "evidence_hit", "evidence_total"}

// WriteSummary prints the overall metrics block.
func WriteSummary(w io.Writer, metrics scoring.Metrics, noColor bool) error {
	if _, err := fmt.Fprintln(w, heading("Overall Metrics", noColor)); err != nil {
		return err
	}
	for _, row := range metricRows {
		value := row.format(metrics)
		if !row.percent {
			value = stylize(value, noColor, scoreColor(metrics.FinalScore))
		}
		if _, err := fmt.Fprintf(w, "%-25s%s\n", row.label, value); err != nil {
			return err
		}
	}
	return nil
}

// WriteDetails prints the per-sample breakdown as CSV after a blank line and
// a section title.
func WriteDetails(w io.Writer, samples []scoring.SampleScore, noColor bool) error {
	if _, err := fmt.Fprintf(w, "\n%s\n", heading("Per-sample Breakdown", noColor)); err != nil {
		return err
	}
	return writeDetailsCSV(w, samples)
}

func writeDetailsCSV(w io.Writer, samples []scoring.SampleScore) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(DetailsHeader); err != nil {
		return fmt.Errorf("write details header: %w", err)
	}
	for _, sample := range samples {
		record := []string{
			sample.UUID,
			formatBool(sample.ComponentCorrect),
			formatBool(sample.ReasonCorrect),
			strconv.Itoa(sample.StepCount),
			strconv.Itoa(sample.EvidenceHit),
			strconv.Itoa(sample.EvidenceTotal),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write details row %s: %w", sample.UUID, err)
		}
	}
	writer.Flush()
	return writer.Error()
}
