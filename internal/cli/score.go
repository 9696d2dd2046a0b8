package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ChenyuHeee/AIOPS/internal/config"
	"github.com/ChenyuHeee/AIOPS/internal/dataset"
	"github.com/ChenyuHeee/AIOPS/internal/report"
	"github.com/ChenyuHeee/AIOPS/internal/scoring"
	"github.com/ChenyuHeee/AIOPS/internal/store"
)

// newRunID is a test seam for run identifiers.
var newRunID = uuid.NewString

// now is a test seam for run timestamps.
var now = time.Now

// scoreParams is the resolved configuration of one score invocation.
type scoreParams struct {
	groundTruth string
	submission  string
	threshold   float64
	reportPath  string
	htmlPath    string
	details     bool
	dbPath      string
	label       string
	noColor     bool
}

// runScore builds the handler for the score command.
func runScore(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := newFlagSet(cmd, stderr)
		groundTruth := stringFlag(fs, "ground-truth", "g", "", "Path to ground truth JSONL")
		submission := stringFlag(fs, "submission", "s", "", "Path to submission JSONL")
		reportPath := stringFlag(fs, "report", "o", "", "Write a JSON report to this path")
		htmlPath := fs.String("html", "", "Write an HTML report to this path")
		threshold := fs.Float64("reason-threshold", 0, "Minimum similarity (0-1) to accept a reason when keywords miss (default 0.65)")
		showDetails := fs.Bool("show-details", false, "Print the per-sample breakdown")
		dbPath := fs.String("db", "", "Record the run in this DuckDB history database")
		label := fs.String("label", "", "Label stored with the recorded run")
		configPath := fs.String("config", "", "Path to .rcajudge.yml (default: search upward)")
		colorMode := fs.String("color", "", "Color mode: auto|always|never")
		noColor := fs.Bool("no-color", false, "Disable colored output")
		logPath := fs.String("log", "", "Write a verbose run log to this file")
		if code, ok := parseFlags(cmd, fs, args, stdout, stderr); !ok {
			return code
		}
		if strings.TrimSpace(*groundTruth) == "" || strings.TrimSpace(*submission) == "" {
			fmt.Fprintln(stderr, "Missing --ground-truth or --submission")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		cfg, cfgPath, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config:\n%v\n", err)
			return ExitError
		}
		set := setFlags(fs)
		params := scoreParams{
			groundTruth: *groundTruth,
			submission:  *submission,
			threshold:   cfg.Threshold(),
			reportPath:  cfg.Output.Report,
			htmlPath:    cfg.Output.HTML,
			details:     cfg.Output.Details || *showDetails,
			dbPath:      cfg.Store.Path,
			label:       *label,
		}
		if set["reason-threshold"] {
			params.threshold = *threshold
		}
		if set["report"] || set["o"] {
			params.reportPath = *reportPath
		}
		if set["html"] {
			params.htmlPath = *htmlPath
		}
		if set["db"] {
			params.dbPath = *dbPath
		}
		if !(params.threshold >= 0 && params.threshold <= 1) {
			fmt.Fprintf(stderr, "invalid --reason-threshold %g (expected 0-1)\n", params.threshold)
			return ExitUsage
		}
		mode := cfg.Output.Color
		if set["color"] {
			mode = *colorMode
		}
		params.noColor, err = resolveNoColor(mode, *noColor, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			return ExitUsage
		}

		logger, closeLog, err := openRunLog(*logPath)
		if err != nil {
			fmt.Fprintf(stderr, "Scoring failed: %v\n", err)
			return ExitError
		}
		defer closeLog()
		if cfgPath != "" {
			logger.Infow("config loaded", "path", cfgPath)
		}

		if err := executeScore(context.Background(), params, logger, stdout, stderr); err != nil {
			logger.Errorw("scoring failed", "error", err)
			fmt.Fprintf(stderr, "Scoring failed: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}

// executeScore runs the scoring pipeline and writes every requested output.
func executeScore(ctx context.Context, params scoreParams, logger *zap.SugaredLogger, stdout, stderr io.Writer) error {
	logger.Infow("reading inputs", "ground_truth", params.groundTruth, "submission", params.submission)
	inputs, err := dataset.Open(params.groundTruth, params.submission)
	if err != nil {
		return err
	}
	logger.Infow("inputs indexed", "ground_truth_entries", inputs.GroundTruthCount(), "submission_entries", inputs.SubmissionCount())

	reconciliation := inputs.Reconciliation()
	writeReconcileWarnings(stderr, reconciliation)
	if !reconciliation.Clean() {
		logger.Warnw("uuid mismatch", "extra", reconciliation.Extra, "missing", reconciliation.Missing)
	}

	samples, err := inputs.Samples()
	if err != nil {
		return err
	}
	opts := scoring.DefaultOptions()
	opts.ReasonThreshold = params.threshold
	result := scoring.Score(samples, opts)
	logger.Infow("scored",
		"samples", len(result.Samples),
		"reason_threshold", params.threshold,
		"final_score", result.Metrics.FinalScore,
	)

	if err := report.WriteSummary(stdout, result.Metrics, params.noColor); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	if params.details {
		if err := report.WriteDetails(stdout, result.Samples, params.noColor); err != nil {
			return fmt.Errorf("write details: %w", err)
		}
	}

	runID := newRunID()
	createdAt := now()
	if params.reportPath != "" {
		if err := report.WriteJSON(params.reportPath, result); err != nil {
			return err
		}
		logger.Infow("report written", "path", params.reportPath)
		fmt.Fprintf(stdout, "\nReport saved to %s\n", params.reportPath)
	}
	if params.htmlPath != "" {
		page := report.Page{
			RunID:           runID,
			Label:           params.label,
			GroundTruth:     params.groundTruth,
			Submission:      params.submission,
			ReasonThreshold: params.threshold,
			GeneratedAt:     createdAt,
			Result:          result,
		}
		if err := report.WriteHTML(ctx, params.htmlPath, page); err != nil {
			return err
		}
		logger.Infow("html report written", "path", params.htmlPath)
		fmt.Fprintf(stdout, "HTML report saved to %s\n", params.htmlPath)
	}
	if params.dbPath != "" {
		if err := recordRun(ctx, params, runID, createdAt, result); err != nil {
			return err
		}
		logger.Infow("run recorded", "run_id", runID, "db", params.dbPath)
		fmt.Fprintf(stdout, "Run %s recorded in %s\n", runID, params.dbPath)
	}
	return nil
}

// recordRun stores the run in the history database.
func recordRun(ctx context.Context, params scoreParams, runID string, createdAt time.Time, result scoring.Result) error {
	db, err := openStore(ctx, params.dbPath)
	if err != nil {
		return err
	}
	defer db.Close()
	_, err = db.RecordRun(ctx, store.Run{
		ID:              runID,
		Label:           params.label,
		GroundTruth:     params.groundTruth,
		Submission:      params.submission,
		ReasonThreshold: params.threshold,
		Metrics:         result.Metrics,
		CreatedAt:       createdAt,
	}, result.Samples)
	if err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	return nil
}

// openStore is a test seam for opening the history database for writing.
var openStore = store.Open

// openStoreReadOnly is a test seam for reading an existing history database.
var openStoreReadOnly = store.OpenExisting

// writeReconcileWarnings reports uuid mismatches between the two files.
func writeReconcileWarnings(w io.Writer, rec dataset.Reconciliation) {
	if len(rec.Extra) > 0 {
		fmt.Fprintf(w, "Warning: submission contains uuids not present in ground truth; they will be ignored: %s\n", strings.Join(rec.Extra, ", "))
	}
	if len(rec.Missing) > 0 {
		fmt.Fprintf(w, "Warning: submission missing uuids present in ground truth; blank predictions will be assumed: %s\n", strings.Join(rec.Missing, ", "))
	}
}

// defaultConfigNote names the config source for messages.
func defaultConfigNote(path string) string {
	if path == "" {
		return "defaults (no " + config.ConfigFileName + " found)"
	}
	return path
}
