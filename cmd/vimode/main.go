// Package main is the entry point for the vimode demo.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/vimode/internal/app"
	"github.com/dshills/vimode/internal/config"
	"github.com/dshills/vimode/internal/terminal"
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
	opts, replayPath := parseFlags()

	application, err := app.New(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}

	// Ensure cleanup on all exit paths
	defer application.Shutdown()

	// Handle signals for graceful shutdown
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-signals
		application.Shutdown()
	}()

	if replayPath != "" {
		if err := application.Replay(replayPath, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	screen, err := terminal.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	if err := application.SetScreen(screen); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to set screen: %v\n", err)
		return 1
	}

	if err := application.Run(); err != nil {
		if errors.Is(err, app.ErrQuit) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	return 0
}

func parseFlags() (app.Options, string) {
	var opts app.Options
	var replayPath string
	var showVersion bool

	defaults := config.Default()
	defaults.RegisterFlags(flag.CommandLine)

	flag.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.EnvFile, "env", ".env", "Read VIMODE_* variables from a dotenv `file`")
	flag.StringVar(&opts.RecordPath, "record", "", "Record input events to `file`")
	flag.StringVar(&replayPath, "replay", "", "Replay a recording `file` and print the events")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "vimode - vi key-sequence interpreter demo\n\n")
		fmt.Fprintf(os.Stderr, "Usage: vimode [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nEnvironment:\n")
		for _, name := range config.NewEnvLoader(config.EnvPrefix).Variables() {
			fmt.Fprintf(os.Stderr, "  %s\n", name)
		}
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  vimode                        Start in insert mode\n")
		fmt.Fprintf(os.Stderr, "  vimode -mode normal           Start in normal mode\n")
		fmt.Fprintf(os.Stderr, "  vimode -keymap keys.toml -watch\n")
		fmt.Fprintf(os.Stderr, "  vimode -record session.json   Save every key to a file\n")
		fmt.Fprintf(os.Stderr, "  vimode -replay session.json   Print the events of a recording\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("vimode %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	opts.Flags = flag.CommandLine
	return opts, replayPath
}
