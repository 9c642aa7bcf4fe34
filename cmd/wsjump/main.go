// Package main is the entry point for wsjump.
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

	"github.com/dshills/wsjump/internal/app"
	"github.com/dshills/wsjump/internal/config"
	"github.com/dshills/wsjump/internal/engine/buffer"
	"github.com/dshills/wsjump/internal/renderer/backend"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

type options struct {
	configPath  string
	logLevel    string
	line        int
	char        int
	do          string
	script      string
	interactive bool
	showVersion bool
	file        string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	if opts.showVersion {
		fmt.Fprintf(stdout, "wsjump %s\n", version)
		fmt.Fprintf(stdout, "Commit: %s\n", commit)
		fmt.Fprintf(stdout, "Built: %s\n", date)
		return 0
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := execute(ctx, opts, stdin, stdout, stderr); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func execute(ctx context.Context, opts options, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return app.NewOperationError("load config", opts.configPath, err)
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	logger := app.NewLogger(app.LoggerConfig{
		Level:  app.ParseLogLevel(cfg.Log.Level),
		Output: stderr,
		Prefix: cfg.Log.Prefix,
	})

	buf, err := app.OpenDocument(opts.file, stdin)
	if err != nil {
		return err
	}
	session := app.NewSession(buf, app.DisplayName(opts.file), logger)
	if err := session.SetCursor(buffer.Position{Line: opts.line, Character: opts.char}); err != nil {
		return app.NewOperationError("place cursor", fmt.Sprintf("%d:%d", opts.line, opts.char), err)
	}

	a, err := app.New(cfg, session, app.WithOutput(stdout), app.WithLogger(logger))
	if err != nil {
		return err
	}

	switch {
	case opts.interactive:
		return runInteractive(ctx, a, opts)
	case opts.script != "":
		return a.RunScript(ctx, opts.script)
	case opts.do != "":
		steps, err := app.ParseSteps(opts.do)
		if err != nil {
			return err
		}
		return a.RunBatch(steps)
	default:
		return a.Report()
	}
}

func runInteractive(ctx context.Context, a *app.App, opts options) error {
	term, err := backend.NewTerminal()
	if err != nil {
		return app.NewOperationError("open", "terminal", err)
	}
	if err := term.Init(); err != nil {
		return app.NewOperationError("init", "terminal", err)
	}
	defer term.Shutdown()

	post := func(fn func()) {
		_ = term.Interrupt(fn)
	}
	if opts.configPath != "" {
		w, err := a.WatchConfig(opts.configPath, post)
		if err != nil {
			return err
		}
		defer w.Close()
	}
	if opts.file != app.StdinPath {
		w, err := a.WatchDocument(opts.file, post)
		if err != nil {
			return err
		}
		defer w.Close()
	}

	err = a.RunInteractive(ctx, term)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options

	fs := flag.NewFlagSet("wsjump", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configPath, "config", "", "Path to configuration file (.toml, .yaml)")
	fs.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.IntVar(&opts.line, "line", 0, "Starting cursor line (0-based)")
	fs.IntVar(&opts.char, "char", 0, "Starting cursor character (0-based)")
	fs.StringVar(&opts.do, "do", "", "Comma-separated motions: next, prev, with optional *N")
	fs.StringVar(&opts.script, "script", "", "Lua script to run against the document")
	fs.BoolVar(&opts.interactive, "i", false, "Interactive terminal mode")
	fs.BoolVar(&opts.showVersion, "version", false, "Show version information")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "wsjump - whitespace-boundary cursor motions\n\n")
		fmt.Fprintf(stderr, "Usage: wsjump [options] file\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  wsjump -do next,next notes.txt      Print the cursor after two jumps\n")
		fmt.Fprintf(stderr, "  wsjump -line 3 -do prev*2 main.go   Start on line 3 and jump back twice\n")
		fmt.Fprintf(stderr, "  cat notes.txt | wsjump -do next -   Read the document from stdin\n")
		fmt.Fprintf(stderr, "  wsjump -script jump.lua notes.txt   Run a Lua script\n")
		fmt.Fprintf(stderr, "  wsjump -i notes.txt                 Navigate interactively\n")
	}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if opts.showVersion {
		return opts, nil
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return opts, fmt.Errorf("expected exactly one file, got %d", fs.NArg())
	}
	opts.file = fs.Arg(0)

	modes := 0
	for _, set := range []bool{opts.interactive, opts.script != "", opts.do != ""} {
		if set {
			modes++
		}
	}
	if modes > 1 {
		return opts, errors.New("-i, -script and -do are mutually exclusive")
	}
	return opts, nil
}
