package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/ChenyuHeee/AIOPS/internal/report"
	"github.com/ChenyuHeee/AIOPS/internal/scoring"
)

// loadReport is a test seam for reading JSON reports.
var loadReport = report.LoadJSON

// runCompare builds the handler for the compare command.
func runCompare(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := newFlagSet(cmd, stderr)
		baseRef := fs.String("base", "", "Base report path (or run id with --db)")
		headRef := fs.String("head", "", "Head report path (or run id with --db)")
		dbPath := fs.String("db", "", "Resolve --base and --head as run ids in this history database")
		colorMode := fs.String("color", "auto", "Color mode: auto|always|never")
		noColor := fs.Bool("no-color", false, "Disable colored output")
		if code, ok := parseFlags(cmd, fs, args, stdout, stderr); !ok {
			return code
		}
		if strings.TrimSpace(*baseRef) == "" || strings.TrimSpace(*headRef) == "" {
			fmt.Fprintln(stderr, "Missing --base or --head")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		plain, err := resolveNoColor(*colorMode, *noColor, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			return ExitUsage
		}

		base, head, err := loadComparePair(context.Background(), *dbPath, *baseRef, *headRef)
		if err != nil {
			fmt.Fprintf(stderr, "Compare failed: %v\n", err)
			return ExitError
		}
		if err := report.WriteComparison(stdout, report.Compare(base, head), plain); err != nil {
			fmt.Fprintf(stderr, "Compare failed: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}

// loadComparePair loads both sides from JSON reports or the history database.
func loadComparePair(ctx context.Context, dbPath, baseRef, headRef string) (scoring.Result, scoring.Result, error) {
	if strings.TrimSpace(dbPath) == "" {
		base, err := loadReport(baseRef)
		if err != nil {
			return scoring.Result{}, scoring.Result{}, fmt.Errorf("base: %w", err)
		}
		head, err := loadReport(headRef)
		if err != nil {
			return scoring.Result{}, scoring.Result{}, fmt.Errorf("head: %w", err)
		}
		return base, head, nil
	}
	db, err := openStoreReadOnly(ctx, dbPath)
	if err != nil {
		return scoring.Result{}, scoring.Result{}, err
	}
	defer db.Close()
	_, base, err := db.LoadRun(ctx, baseRef)
	if err != nil {
		return scoring.Result{}, scoring.Result{}, fmt.Errorf("base: %w", err)
	}
	_, head, err := db.LoadRun(ctx, headRef)
	if err != nil {
		return scoring.Result{}, scoring.Result{}, fmt.Errorf("head: %w", err)
	}
	return base, head, nil
}
