package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ChenyuHeee/AIOPS/internal/scoring"
	"github.com/ChenyuHeee/AIOPS/internal/ui/browse"
)

// runBrowser is a test seam for the interactive browser.
var runBrowser = browse.Run

// browseInput allows tests to override stdin for the browser.
var browseInput io.Reader = os.Stdin

// runBrowse builds the handler for the browse command.
func runBrowse(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := newFlagSet(cmd, stderr)
		uiMode := fs.String("ui", "auto", "UI mode: auto|live|plain")
		filterName := fs.String("filter", "all", "Initial sample filter: all|component|reason|evidence")
		dbPath := fs.String("db", "", "Read the run from this history database")
		runID := fs.String("run", "", "Run id to browse (with --db)")
		noColor := fs.Bool("no-color", false, "Disable colored output")
		positional, code, ok := parseFlagsAndArgs(cmd, fs, args, stdout, stderr)
		if !ok {
			return code
		}

		filter, err := parseFilter(*filterName)
		if err != nil {
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			return ExitUsage
		}
		decision, err := resolveUIMode(*uiMode, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			return ExitUsage
		}
		if decision.warning != "" {
			fmt.Fprintln(stderr, decision.warning)
		}

		result, title, code, ok := loadBrowseResult(positional, *dbPath, *runID, stderr)
		if !ok {
			if code == ExitUsage {
				printCommandUsage(cmd, stderr)
			}
			return code
		}

		if !decision.useLive {
			if err := browse.WritePlain(stdout, result, filter); err != nil {
				fmt.Fprintf(stderr, "Browse failed: %v\n", err)
				return ExitError
			}
			return ExitOK
		}
		if err := runBrowser(result, browse.Options{Title: title, Filter: filter, NoColor: *noColor}, browseInput, stdout); err != nil {
			fmt.Fprintf(stderr, "Browse failed: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}

// loadBrowseResult reads the result named by a report path or a stored run.
func loadBrowseResult(args []string, dbPath, runID string, stderr io.Writer) (scoring.Result, string, int, bool) {
	if strings.TrimSpace(dbPath) != "" {
		if strings.TrimSpace(runID) == "" || len(args) > 0 {
			fmt.Fprintln(stderr, "Use --run <run-id> with --db")
			return scoring.Result{}, "", ExitUsage, false
		}
		ctx := context.Background()
		db, err := openStoreReadOnly(ctx, dbPath)
		if err != nil {
			fmt.Fprintf(stderr, "Browse failed: %v\n", err)
			return scoring.Result{}, "", ExitError, false
		}
		defer db.Close()
		run, result, err := db.LoadRun(ctx, runID)
		if err != nil {
			fmt.Fprintf(stderr, "Browse failed: %v\n", err)
			return scoring.Result{}, "", ExitError, false
		}
		title := "Run " + run.ID
		if run.Label != "" {
			title += " (" + run.Label + ")"
		}
		return result, title, ExitOK, true
	}
	if len(args) != 1 {
		fmt.Fprintln(stderr, "Expected exactly one report path")
		return scoring.Result{}, "", ExitUsage, false
	}
	result, err := loadReport(args[0])
	if err != nil {
		fmt.Fprintf(stderr, "Browse failed: %v\n", err)
		return scoring.Result{}, "", ExitError, false
	}
	return result, args[0], ExitOK, true
}

// parseFilter maps a filter flag value to a browse filter.
func parseFilter(name string) (browse.Filter, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "all":
		return browse.FilterAll, nil
	case "component":
		return browse.FilterComponentMiss, nil
	case "reason":
		return browse.FilterReasonMiss, nil
	case "evidence":
		return browse.FilterEvidenceMiss, nil
	default:
		return browse.FilterAll, fmt.Errorf("invalid filter %q (expected all|component|reason|evidence)", name)
	}
}
