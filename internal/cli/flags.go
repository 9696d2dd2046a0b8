package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

// newFlagSet builds a flag set that reports errors to stderr.
func newFlagSet(cmd *Command, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	return fs
}

// stringFlag registers a string flag under a long name and an optional short alias.
func stringFlag(fs *flag.FlagSet, long, short, value, usage string) *string {
	target := fs.String(long, value, usage)
	if short != "" {
		fs.StringVar(target, short, value, usage+" (shorthand)")
	}
	return target
}

// parseFlags parses args, printing usage on failure. It returns false when the
// command should stop with the returned exit code. Positional arguments are
// rejected.
func parseFlags(cmd *Command, fs *flag.FlagSet, args []string, stdout, stderr io.Writer) (int, bool) {
	positional, code, ok := parseFlagsAndArgs(cmd, fs, args, stdout, stderr)
	if !ok {
		return code, false
	}
	if len(positional) > 0 {
		fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(positional, " "))
		printCommandUsage(cmd, stderr)
		return ExitUsage, false
	}
	return ExitOK, true
}

// parseFlagsAndArgs parses flags that may appear before or after positional
// arguments and returns the positional arguments in order. Everything after
// "--" is positional.
func parseFlagsAndArgs(cmd *Command, fs *flag.FlagSet, args []string, stdout, stderr io.Writer) ([]string, int, bool) {
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			if err == flag.ErrHelp {
				printCommandUsage(cmd, stdout)
				return nil, ExitOK, false
			}
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			printCommandUsage(cmd, stderr)
			return nil, ExitUsage, false
		}
		rest := fs.Args()
		if len(rest) == 0 {
			return positional, ExitOK, true
		}
		if consumed := len(args) - len(rest); consumed > 0 && args[consumed-1] == "--" {
			return append(positional, rest...), ExitOK, true
		}
		positional = append(positional, rest[0])
		args = rest[1:]
	}
}

// setFlags returns the names of flags given explicitly on the command line.
func setFlags(fs *flag.FlagSet) map[string]bool {
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})
	return set
}
