package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ChenyuHeee/AIOPS/internal/scoring"
)

// MetricDelta is the change of one metric between two reports.
type MetricDelta struct {
	Label   string
	Base    float64
	Head    float64
	Percent bool
}

// Delta returns head minus base in display units.
func (d MetricDelta) Delta() float64 {
	delta := d.Head - d.Base
	if d.Percent {
		return delta * 100
	}
	return delta
}

// SampleChange records a per-sample verdict that flipped.
type SampleChange struct {
	UUID  string
	Field string
	Base  bool
	Head  bool
}

// Comparison summarizes the differences between two reports.
type Comparison struct {
	Metrics  []MetricDelta
	Changes  []SampleChange
	OnlyBase []string
	OnlyHead []string
}

// Compare diffs head against base. Sample changes follow head's order.
func Compare(base, head scoring.Result) Comparison {
	var cmp Comparison
	for _, row := range metricRows {
		cmp.Metrics = append(cmp.Metrics, MetricDelta{
			Label:   row.label,
			Base:    row.value(base.Metrics),
			Head:    row.value(head.Metrics),
			Percent: row.percent,
		})
	}

	baseSamples := make(map[string]scoring.SampleScore, len(base.Samples))
	for _, sample := range base.Samples {
		baseSamples[sample.UUID] = sample
	}
	seen := make(map[string]struct{}, len(head.Samples))
	for _, sample := range head.Samples {
		seen[sample.UUID] = struct{}{}
		prev, ok := baseSamples[sample.UUID]
		if !ok {
			cmp.OnlyHead = append(cmp.OnlyHead, sample.UUID)
			continue
		}
		if prev.ComponentCorrect != sample.ComponentCorrect {
			cmp.Changes = append(cmp.Changes, SampleChange{UUID: sample.UUID, Field: "component_correct", Base: prev.ComponentCorrect, Head: sample.ComponentCorrect})
		}
		if prev.ReasonCorrect != sample.ReasonCorrect {
			cmp.Changes = append(cmp.Changes, SampleChange{UUID: sample.UUID, Field: "reason_correct", Base: prev.ReasonCorrect, Head: sample.ReasonCorrect})
		}
	}
	for uuid := range baseSamples {
		if _, ok := seen[uuid]; !ok {
			cmp.OnlyBase = append(cmp.OnlyBase, uuid)
		}
	}
	sort.Strings(cmp.OnlyBase)
	sort.Strings(cmp.OnlyHead)
	return cmp
}

// WriteComparison prints metric deltas and sample flips.
func WriteComparison(w io.Writer, cmp Comparison, noColor bool) error {
	if _, err := fmt.Fprintln(w, heading("Metric Deltas", noColor)); err != nil {
		return err
	}
	for _, metric := range cmp.Metrics {
		format := formatScore
		if metric.Percent {
			format = formatPercentage
		}
		delta := stylize(fmt.Sprintf("(%+.2f)", metric.Delta()), noColor, deltaColor(metric.Delta()))
		if _, err := fmt.Fprintf(w, "%-25s%s -> %s %s\n", metric.Label, format(metric.Base), format(metric.Head), delta); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "\n%s\n", heading("Sample Changes", noColor)); err != nil {
		return err
	}
	if len(cmp.Changes) == 0 {
		if _, err := fmt.Fprintln(w, "No per-sample changes."); err != nil {
			return err
		}
	}
	for _, change := range cmp.Changes {
		color := deltaColor(-1)
		if change.Head {
			color = deltaColor(1)
		}
		line := fmt.Sprintf("%s %s: %s -> %s", change.UUID, change.Field, formatBool(change.Base), formatBool(change.Head))
		if _, err := fmt.Fprintln(w, stylize(line, noColor, color)); err != nil {
			return err
		}
	}
	if len(cmp.OnlyBase) > 0 {
		if _, err := fmt.Fprintf(w, "Only in base: %s\n", strings.Join(cmp.OnlyBase, ", ")); err != nil {
			return err
		}
	}
	if len(cmp.OnlyHead) > 0 {
		if _, err := fmt.Fprintf(w, "Only in head: %s\n", strings.Join(cmp.OnlyHead, ", ")); err != nil {
			return err
		}
	}
	return nil
}

func deltaColor(delta float64) lipgloss.Color {
	switch {
	case delta > 0:
		return lipgloss.Color("42")
	case delta < 0:
		return lipgloss.Color("196")
	default:
		return lipgloss.Color("244")
	}
}
