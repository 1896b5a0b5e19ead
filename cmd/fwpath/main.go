// Command fwpath is an interactive all-pairs shortest path calculator.
//
// Usage:
//
//	fwpath [-config fwpath.yaml] [-seed graph.yaml] [-log-level debug] [-no-banner]
//
// Commands are read from stdin one per line; type "help" for the menu.
//
// Exit status is 0 on quit, end of input or interrupt, 1 when the session
// fails on I/O, and 2 for bad flags, configuration or seed files.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/katalvlaran/fwpath/config"
	"github.com/katalvlaran/fwpath/menu"
)

const (
	exitOK     = 0
	exitFailed = 1
	exitUsage  = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	// Unblock the pending read so Run observes the cancellation.
	context.AfterFunc(ctx, func() { _ = os.Stdin.Close() })

	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run is the whole program behind main: it parses args, reads commands from
// stdin and returns the exit status.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("fwpath", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "Path to YAML configuration file")
	seedPath := fs.String("seed", "", "Path to YAML graph seed (overrides config seed)")
	logLevel := fs.String("log-level", "", "Log level: debug, info, warn, error, disabled (overrides LOG_LEVEL)")
	noBanner := fs.Bool("no-banner", false, "Do not print the menu on start")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "fwpath: %v\n", err)
		return exitUsage
	}
	if *logLevel != "" {
		cfg.Log.Level = strings.ToLower(*logLevel)
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(stderr, "fwpath: %v\n", err)
			return exitUsage
		}
	}
	if *seedPath != "" {
		cfg.Seed = *seedPath
	}
	if *noBanner {
		cfg.Menu.Banner = false
	}

	logger := config.NewLogger(cfg.Log, stderr)

	opts := []menu.SessionOption{
		menu.WithLogger(logger),
		menu.WithPrompt(cfg.Menu.Prompt),
		menu.WithBanner(cfg.Menu.Banner),
	}
	if !cfg.Menu.Styled {
		opts = append(opts, menu.WithPlainOutput())
	}
	session := menu.NewSession(stdout, opts...)

	if cfg.Seed != "" {
		seed, err := config.LoadSeed(cfg.Seed)
		if err != nil {
			logger.Error().Err(err).Str("path", cfg.Seed).Msg("seed rejected")
			fmt.Fprintf(stderr, "fwpath: %v\n", err)
			return exitUsage
		}
		if err := session.Apply(seed); err != nil {
			if !menu.IsRecoverable(err) {
				logger.Error().Err(err).Msg("seed apply failed")
				return exitFailed
			}
			logger.Warn().Err(err).Str("path", cfg.Seed).Msg("seed partially applied")
		}
		logger.Info().
			Str("path", cfg.Seed).
			Int("vertices", session.Graph().VertexCount()).
			Int("edges", session.Graph().EdgeCount()).
			Msg("seed loaded")
	}

	if err := session.Run(ctx, stdin); err != nil && ctx.Err() == nil {
		logger.Error().Err(err).Msg("session ended")
		return exitFailed
	}

	return exitOK
}
