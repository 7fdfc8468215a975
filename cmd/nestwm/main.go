// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// nestwm builds the window manager in the current directory and, if the
// build succeeds, starts it inside a nested Xephyr display so it can be
// exercised without touching the desktop session.
//
// Usage:
//
//	nestwm [--config <file>] [--dry-run]
//
// With no flags nestwm runs "cargo build", then
//
//	startx ./xinitrc -- $(which Xephyr) :1 -ac -screen 1920x1080 -host-cursor
//
// and exits when the nested session ends.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/google/uuid"
	"github.com/spf13/pflag"
	"golang.org/x/sys/unix"

	"github.com/bureau-foundation/nestwm/lib/builder"
	"github.com/bureau-foundation/nestwm/lib/config"
	"github.com/bureau-foundation/nestwm/lib/harness"
	"github.com/bureau-foundation/nestwm/lib/locator"
	"github.com/bureau-foundation/nestwm/lib/process"
	"github.com/bureau-foundation/nestwm/lib/session"
	"github.com/bureau-foundation/nestwm/lib/version"
)

func main() {
	process.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) error {
	var configPath string
	var dryRun bool
	var showVersion bool

	flagSet := pflag.NewFlagSet("nestwm", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVar(&configPath, "config", "", "path to a YAML or JSONC config file (default: $"+config.EnvironmentVariable+")")
	flagSet.BoolVar(&dryRun, "dry-run", false, "print the build and session commands without running them")
	flagSet.BoolVar(&showVersion, "version", false, "print version information")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			printHelp(stdout, flagSet)
			return nil
		}
		return err
	}

	if help, _ := flagSet.GetBool("help"); help {
		printHelp(stdout, flagSet)
		return nil
	}
	if showVersion {
		version.Print(stdout, "nestwm")
		return nil
	}
	if flagSet.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", flagSet.Args())
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	logger := newLogger(stderr, cfg.Log).With("run_id", uuid.Must(uuid.NewV7()).String())

	ctx, stop := signal.NotifyContext(context.Background(), unix.SIGINT, unix.SIGTERM)
	defer stop()

	build, err := builder.New(builder.Config{
		Command: cfg.Build.Command,
		Dir:     cfg.Project.Dir,
		Logger:  logger,
	})
	if err != nil {
		return err
	}

	launch, err := session.New(session.Config{
		Launcher: cfg.Session.Launcher,
		Script:   cfg.Session.Script,
		Dir:      cfg.Project.Dir,
		Logger:   logger,
	})
	if err != nil {
		return err
	}

	runner, err := harness.New(harness.Config{
		Builder:    build,
		Locator:    locator.NewPathLocator(cfg.Session.SearchDirs...),
		Launcher:   launch,
		ServerName: cfg.Session.Server,
		SearchDirs: cfg.Session.SearchDirs,
		Artifact:   cfg.ProjectPath(cfg.Build.Artifact),
		DryRun:     dryRun,
		Output:     stdout,
		Logger:     logger,
	})
	if err != nil {
		return err
	}

	return runner.Run(ctx)
}

// loadConfig loads the --config file when given, otherwise whatever
// NESTWM_CONFIG names, otherwise the defaults.
func loadConfig(path string) (*config.Config, error) {
	var cfg *config.Config
	var err error
	if path != "" {
		cfg, err = config.LoadFile(path)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func printHelp(w io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprint(w, `nestwm - Build the window manager and run it in a nested X session

USAGE
    nestwm [flags]

FLAGS
`)
	fmt.Fprint(w, flagSet.FlagUsages())
	fmt.Fprint(w, `
SESSION
    The nested server always runs on display :1 with access control
    disabled, a 1920x1080 screen and the host cursor.

ENVIRONMENT
    NESTWM_CONFIG   Config file used when --config is not given
    NESTWM_DEBUG    Enable debug logging
`)
}
