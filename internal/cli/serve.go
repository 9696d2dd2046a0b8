package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/ChenyuHeee/AIOPS/internal/reportserver"
)

// serveReports is a test seam for the report server.
var serveReports = reportserver.Serve

// serveContext returns a context cancelled on interrupt or SIGTERM.
var serveContext = func() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

// runServe builds the handler for the serve command.
func runServe(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := newFlagSet(cmd, stderr)
		addr := fs.String("addr", "127.0.0.1:8080", "Listen address")
		dbPath := fs.String("db", "", "Path to the DuckDB history database (default: store.path from config)")
		configPath := fs.String("config", "", "Path to .rcajudge.yml (default: search upward)")
		logPath := fs.String("log", "", "Write a request log to this file")
		if code, ok := parseFlags(cmd, fs, args, stdout, stderr); !ok {
			return code
		}

		path, code, ok := resolveDBPath(*dbPath, *configPath, stderr)
		if !ok {
			return code
		}
		logger, closeLog, err := openRunLog(*logPath)
		if err != nil {
			fmt.Fprintf(stderr, "Serve failed: %v\n", err)
			return ExitError
		}
		defer closeLog()

		ctx, stop := serveContext()
		defer stop()
		err = serveReports(ctx, reportserver.Config{
			Addr:   *addr,
			DBPath: path,
			Logger: logger,
			Ready: func(bound string) {
				fmt.Fprintf(stdout, "Serving %s on http://%s\n", path, bound)
			},
		})
		if err != nil {
			fmt.Fprintf(stderr, "Serve failed: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}
