package cli

import (
	"fmt"
	"io"
)

const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

type Command struct {
	Name    string
	Summary string
	Usage   []string
	Run     func(args []string, stdout, stderr io.Writer) int
}

func Run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		printUsage(stdout)
		return ExitUsage
	}
	if isHelpArg(args[0]) {
		printUsage(stdout)
		return ExitOK
	}

	cmd := findCommand(args[0])
	if cmd == nil {
		fmt.Fprintf(stderr, "Unknown command: %s\n\n", args[0])
		printUsage(stderr)
		return ExitUsage
	}

	return cmd.Run(args[1:], stdout, stderr)
}

func findCommand(name string) *Command {
	for _, cmd := range commands {
		if cmd.Name == name {
			return cmd
		}
	}
	return nil
}

func isHelpArg(arg string) bool {
	switch arg {
	case "-h", "--help", "help":
		return true
	default:
		return false
	}
}

func wantsHelp(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "-h", "--help":
			return true
		}
	}
	return false
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  rcajudge <command> [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, cmd := range commands {
		fmt.Fprintf(w, "  %-9s %s\n", cmd.Name, cmd.Summary)
	}
	fmt.Fprintln(w, "\nUse \"rcajudge <command> --help\" for more information.")
}

func printCommandUsage(cmd *Command, w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	for _, line := range cmd.Usage {
		fmt.Fprintf(w, "  %s\n", line)
	}
	if cmd.Summary != "" {
		fmt.Fprintf(w, "\n%s\n", cmd.Summary)
	}
}

func command(name, summary string, usage []string, runner func(cmd *Command) func(args []string, stdout, stderr io.Writer) int) *Command {
	cmd := &Command{
		Name:    name,
		Summary: summary,
		Usage:   usage,
	}
	cmd.Run = runner(cmd)
	return cmd
}

var commands = []*Command{
	command("score", "Score a submission against ground truth", []string{
		"rcajudge score -g <ground_truth.jsonl> -s <submission.jsonl> [-o <report.json>] [--html <report.html>]",
		"               [--reason-threshold 0.65] [--show-details] [--db <history.duckdb>] [--label <name>]",
		"               [--config <.rcajudge.yml>] [--color auto|always|never] [--no-color] [--log <file>]",
	}, runScore),
	command("validate", "Check input files without scoring", []string{
		"rcajudge validate -g <ground_truth.jsonl> -s <submission.jsonl>",
		"rcajudge validate --config <.rcajudge.yml>",
	}, runValidate),
	command("history", "List recorded scoring runs", []string{
		"rcajudge history --db <history.duckdb> [--limit N]",
		"rcajudge history --db <history.duckdb> --sample <uuid> [--limit N]",
	}, runHistory),
	command("compare", "Compare two scoring reports", []string{
		"rcajudge compare --base <report.json> --head <report.json>",
		"rcajudge compare --db <history.duckdb> --base <run-id> --head <run-id>",
	}, runCompare),
	command("browse", "Browse per-sample results", []string{
		"rcajudge browse [--ui auto|live|plain] [--filter all|component|reason|evidence] <report.json>",
		"rcajudge browse --db <history.duckdb> --run <run-id>",
	}, runBrowse),
	command("serve", "Serve recorded runs over HTTP", []string{
		"rcajudge serve [--addr 127.0.0.1:8080] [--db <history.duckdb>] [--log <file>]",
	}, runServe),
	command("init", "Write a starter .rcajudge.yml", []string{
		"rcajudge init [--dir <path>]",
	}, runInit),
}
