package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ChenyuHeee/AIOPS/internal/dataset"
)

// runValidate builds the handler for the validate command.
func runValidate(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := newFlagSet(cmd, stderr)
		groundTruth := stringFlag(fs, "ground-truth", "g", "", "Path to ground truth JSONL")
		submission := stringFlag(fs, "submission", "s", "", "Path to submission JSONL")
		configPath := fs.String("config", "", "Path to .rcajudge.yml (default: search upward)")
		if code, ok := parseFlags(cmd, fs, args, stdout, stderr); !ok {
			return code
		}

		_, cfgPath, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Validation failed:\n%v\n", err)
			return ExitError
		}
		fmt.Fprintf(stdout, "Config OK: %s\n", defaultConfigNote(cfgPath))

		gt := strings.TrimSpace(*groundTruth)
		sub := strings.TrimSpace(*submission)
		if gt == "" && sub == "" {
			return ExitOK
		}
		if gt == "" || sub == "" {
			fmt.Fprintln(stderr, "Both --ground-truth and --submission are required to check inputs")
			return ExitUsage
		}

		inputs, err := dataset.Open(gt, sub)
		if err != nil {
			fmt.Fprintf(stderr, "Validation failed:\n%v\n", err)
			return ExitError
		}
		writeReconcileWarnings(stderr, inputs.Reconciliation())
		if _, err := inputs.Samples(); err != nil {
			writeValidationFailure(stderr, err)
			return ExitError
		}
		fmt.Fprintf(stdout, "Inputs OK: %d ground truth entries, %d submission entries\n", inputs.GroundTruthCount(), inputs.SubmissionCount())
		return ExitOK
	}
}

// writeValidationFailure prints one line per schema issue when available.
func writeValidationFailure(w io.Writer, err error) {
	fmt.Fprintln(w, "Validation failed:")
	var validationErr *dataset.ValidationError
	if !errors.As(err, &validationErr) || len(validationErr.Issues) == 0 {
		fmt.Fprintln(w, err.Error())
		return
	}
	fmt.Fprintf(w, "%s: %d issue(s)\n", validationErr.Source, len(validationErr.Issues))
	for _, issue := range validationErr.Issues {
		fmt.Fprintf(w, "  %s\n", issue.String())
	}
}
