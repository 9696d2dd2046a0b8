package reportserver

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/a-h/templ"

	"github.com/ChenyuHeee/AIOPS/internal/store"
)

const indexStyle = `body{font-family:sans-serif;margin:2rem;color:#222}
table{border-collapse:collapse;margin-top:1rem}
th,td{border:1px solid #ccc;padding:.3rem .6rem;text-align:left}
th{background:#f4f4f4}`

// indexPage renders the list of recorded runs.
func indexPage(runs []store.Run) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString("<!DOCTYPE html>\n<html lang=\"en\"><head><meta charset=\"utf-8\"><title>Recorded Runs</title><style>")
		b.WriteString(indexStyle)
		b.WriteString("</style></head><body><h1>Recorded Runs</h1>")
		if len(runs) == 0 {
			b.WriteString("<p>No runs recorded.</p>")
		} else {
			b.WriteString("<table><thead><tr><th>Run</th><th>Label</th><th>Created</th><th>Samples</th><th>Final Score</th><th></th></tr></thead><tbody>")
			for _, run := range runs {
				link := "/runs/" + url.PathEscape(run.ID)
				fmt.Fprintf(&b, "<tr><td><a href=\"%s\">%s</a></td><td>%s</td><td>%s</td><td>%d</td><td>%.2f</td><td><a href=\"%s/report.json\">json</a></td></tr>",
					templ.EscapeString(link),
					templ.EscapeString(run.ID),
					templ.EscapeString(run.Label),
					run.CreatedAt.UTC().Format(time.RFC3339),
					run.SampleCount,
					run.Metrics.FinalScore,
					templ.EscapeString(link),
				)
			}
			b.WriteString("</tbody></table>")
		}
		b.WriteString("<p><a href=\"/data/history.duckdb\">Download database</a></p></body></html>\n")
		_, err := io.WriteString(w, b.String())
		return err
	})
}
