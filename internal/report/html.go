package report

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/a-h/templ"

	"github.com/ChenyuHeee/AIOPS/internal/scoring"
)

// Page describes an HTML report.
type Page struct {
	Title           string
	RunID           string
	Label           string
	GroundTruth     string
	Submission      string
	ReasonThreshold float64
	GeneratedAt     time.Time
	Result          scoring.Result
}

const pageStyle = `body{font-family:sans-serif;margin:2rem;color:#222}
table{border-collapse:collapse;margin-top:1rem}
th,td{border:1px solid #ccc;padding:.3rem .6rem;text-align:left}
th{background:#f4f4f4}
.ok{color:#1a7f37}.miss{color:#cf222e}
dt{font-weight:bold}`

// ReportPage renders the full HTML document for a page.
func ReportPage(page Page) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		title := page.Title
		if title == "" {
			title = "RCA Submission Report"
		}
		var b strings.Builder
		b.WriteString("<!DOCTYPE html>\n<html lang=\"en\"><head><meta charset=\"utf-8\"><title>")
		b.WriteString(templ.EscapeString(title))
		b.WriteString("</title><style>")
		b.WriteString(pageStyle)
		b.WriteString("</style></head><body><h1>")
		b.WriteString(templ.EscapeString(title))
		b.WriteString("</h1>")
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
		if err := runInfo(page).Render(ctx, w); err != nil {
			return err
		}
		if err := metricsTable(page.Result.Metrics).Render(ctx, w); err != nil {
			return err
		}
		if err := samplesTable(page.Result.Samples).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</body></html>\n")
		return err
	})
}

// runInfo renders run metadata as a definition list.
func runInfo(page Page) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString("<dl>")
		item := func(term, value string) {
			if value == "" {
				return
			}
			b.WriteString("<dt>" + templ.EscapeString(term) + "</dt><dd>" + templ.EscapeString(value) + "</dd>")
		}
		item("Run", page.RunID)
		item("Label", page.Label)
		item("Ground truth", page.GroundTruth)
		item("Submission", page.Submission)
		if page.ReasonThreshold > 0 {
			item("Reason threshold", strconv.FormatFloat(page.ReasonThreshold, 'f', -1, 64))
		}
		if !page.GeneratedAt.IsZero() {
			item("Generated", page.GeneratedAt.UTC().Format(time.RFC3339))
		}
		b.WriteString("</dl>")
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// metricsTable renders the overall metrics.
func metricsTable(metrics scoring.Metrics) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString("<h2>Overall Metrics</h2><table class=\"metrics\"><tbody>")
		for _, row := range metricRows {
			label := strings.TrimSuffix(row.label, ":")
			b.WriteString("<tr><th>" + templ.EscapeString(label) + "</th><td>" + templ.EscapeString(row.format(metrics)) + "</td></tr>")
		}
		b.WriteString("</tbody></table>")
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// samplesTable renders the per-sample breakdown.
func samplesTable(samples []scoring.SampleScore) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString("<h2>Samples</h2><table class=\"samples\"><thead><tr>")
		for _, column := range DetailsHeader {
			b.WriteString("<th>" + column + "</th>")
		}
		b.WriteString("</tr></thead><tbody>")
		for _, sample := range samples {
			b.WriteString("<tr><td>" + templ.EscapeString(sample.UUID) + "</td>")
			b.WriteString(boolCell(sample.ComponentCorrect))
			b.WriteString(boolCell(sample.ReasonCorrect))
			fmt.Fprintf(&b, "<td>%d</td><td>%d</td><td>%d</td></tr>", sample.StepCount, sample.EvidenceHit, sample.EvidenceTotal)
		}
		b.WriteString("</tbody></table>")
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func boolCell(value bool) string {
	class := "miss"
	if value {
		class = "ok"
	}
	return "<td class=\"" + class + "\">" + formatBool(value) + "</td>"
}

// RenderHTML renders a page into a string.
func RenderHTML(ctx context.Context, page Page) (string, error) {
	var builder strings.Builder
	if err := ReportPage(page).Render(ctx, &builder); err != nil {
		return "", err
	}
	return builder.String(), nil
}

// WriteHTML renders a page to path, creating parent directories as needed.
func WriteHTML(ctx context.Context, path string, page Page) error {
	html, err := RenderHTML(ctx, page)
	if err != nil {
		return fmt.Errorf("render html report: %w", err)
	}
	if err := ensureParent(path); err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
		return fmt.Errorf("write html report: %w", err)
	}
	return nil
}
