package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/ChenyuHeee/AIOPS/internal/report"
)

// runHistory builds the handler for the history command.
func runHistory(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := newFlagSet(cmd, stderr)
		dbPath := fs.String("db", "", "Path to the DuckDB history database (default: store.path from config)")
		limit := fs.Int("limit", 20, "Maximum number of rows (0 for all)")
		sample := fs.String("sample", "", "Show the verdict history of one ground truth uuid")
		configPath := fs.String("config", "", "Path to .rcajudge.yml (default: search upward)")
		if code, ok := parseFlags(cmd, fs, args, stdout, stderr); !ok {
			return code
		}

		path, code, ok := resolveDBPath(*dbPath, *configPath, stderr)
		if !ok {
			return code
		}

		ctx := context.Background()
		db, err := openStoreReadOnly(ctx, path)
		if err != nil {
			fmt.Fprintf(stderr, "History failed: %v\n", err)
			return ExitError
		}
		defer db.Close()

		if uuid := strings.TrimSpace(*sample); uuid != "" {
			outcomes, err := db.SampleHistory(ctx, uuid, *limit)
			if err != nil {
				fmt.Fprintf(stderr, "History failed: %v\n", err)
				return ExitError
			}
			if len(outcomes) == 0 {
				fmt.Fprintf(stdout, "No recorded runs include %s\n", uuid)
				return ExitOK
			}
			rows := make([][]string, 0, len(outcomes))
			for _, outcome := range outcomes {
				rows = append(rows, []string{
					outcome.RunID,
					outcome.Label,
					outcome.CreatedAt.UTC().Format(time.RFC3339),
					verdict(outcome.Score.ComponentCorrect),
					verdict(outcome.Score.ReasonCorrect),
					strconv.Itoa(outcome.Score.StepCount),
					fmt.Sprintf("%d/%d", outcome.Score.EvidenceHit, outcome.Score.EvidenceTotal),
				})
			}
			return writeTable(stdout, stderr, []string{"RUN", "LABEL", "CREATED", "COMPONENT", "REASON", "STEPS", "EVIDENCE"}, rows)
		}

		runs, err := db.ListRuns(ctx, *limit)
		if err != nil {
			fmt.Fprintf(stderr, "History failed: %v\n", err)
			return ExitError
		}
		if len(runs) == 0 {
			fmt.Fprintln(stdout, "No runs recorded")
			return ExitOK
		}
		rows := make([][]string, 0, len(runs))
		for _, run := range runs {
			m := run.Metrics
			rows = append(rows, []string{
				run.ID,
				run.Label,
				run.CreatedAt.UTC().Format(time.RFC3339),
				strconv.Itoa(run.SampleCount),
				fmt.Sprintf("%.2f%%", m.ComponentAccuracy*100),
				fmt.Sprintf("%.2f%%", m.ReasonAccuracy*100),
				fmt.Sprintf("%.2f%%", m.Efficiency*100),
				fmt.Sprintf("%.2f%%", m.Explainability*100),
				fmt.Sprintf("%.2f", m.FinalScore),
			})
		}
		return writeTable(stdout, stderr, []string{"RUN", "LABEL", "CREATED", "SAMPLES", "LA", "TA", "EFF", "EXPL", "SCORE"}, rows)
	}
}

// resolveDBPath picks the history database from the flag or config.
func resolveDBPath(dbPath, configPath string, stderr io.Writer) (string, int, bool) {
	if path := strings.TrimSpace(dbPath); path != "" {
		return path, ExitOK, true
	}
	cfg, _, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to load config:\n%v\n", err)
		return "", ExitError, false
	}
	if cfg.Store.Path == "" {
		fmt.Fprintln(stderr, "Missing --db (and no store.path configured)")
		return "", ExitUsage, false
	}
	return cfg.Store.Path, ExitOK, true
}

func writeTable(stdout, stderr io.Writer, headers []string, rows [][]string) int {
	if err := report.WriteTable(stdout, headers, rows); err != nil {
		fmt.Fprintf(stderr, "History failed: %v\n", err)
		return ExitError
	}
	return ExitOK
}

func verdict(ok bool) string {
	if ok {
		return "ok"
	}
	return "miss"
}
