// Package main is the entry point for doccore, which opens one document,
// replays a script of motions and edits against it and prints the result.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/doccore/internal/app"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts, scriptPath, quiet := parseFlags()

	application, err := app.New(opts, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}
	defer application.Shutdown()

	var in io.Reader = os.Stdin
	if scriptPath != "" && scriptPath != "-" {
		f, err := os.Open(scriptPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		defer f.Close()
		in = f
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := application.Run(ctx, in); err != nil && !errors.Is(err, app.ErrQuit) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if !quiet {
		if err := application.WriteState(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}
	return 0
}

func parseFlags() (app.Options, string, bool) {
	var opts app.Options
	var scriptPath string
	var quiet, showVersion, showHelp bool

	flag.StringVar(&opts.ConfigPath, "config", "", "Path to settings file (TOML)")
	flag.StringVar(&opts.ConfigPath, "c", "", "Path to settings file (shorthand)")
	flag.StringVar(&scriptPath, "script", "", "Script file to replay (default stdin)")
	flag.StringVar(&scriptPath, "s", "", "Script file to replay (shorthand)")
	flag.StringVar(&opts.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.BoolVar(&opts.Watch, "watch", false, "Reload the settings file when it changes")
	flag.BoolVar(&opts.SystemClipboard, "system-clipboard", false, "Use the system clipboard")
	flag.BoolVar(&opts.ContinueOnError, "keep-going", false, "Log failing script lines and continue")
	flag.BoolVar(&quiet, "q", false, "Do not print the final state")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "doccore - replay cursor motions and edits against a document\n\n")
		fmt.Fprintf(os.Stderr, "Usage: doccore [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  echo 'word-forward' | doccore main.go\n")
		fmt.Fprintf(os.Stderr, "  doccore -s edits.txt -c settings.toml main.go\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("doccore %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	switch opts.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", opts.LogLevel)
		os.Exit(1)
	}

	switch flag.NArg() {
	case 0:
	case 1:
		opts.File = flag.Arg(0)
	default:
		fmt.Fprintf(os.Stderr, "Error: at most one file may be given\n")
		os.Exit(1)
	}

	return opts, scriptPath, quiet
}
