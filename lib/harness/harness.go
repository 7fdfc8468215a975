// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package harness

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/bureau-foundation/nestwm/lib/binhash"
	"github.com/bureau-foundation/nestwm/lib/builder"
	"github.com/bureau-foundation/nestwm/lib/locator"
)

// Builder runs the project build once.
type Builder interface {
	Build(ctx context.Context) (builder.Result, error)
	Command() []string
}

// SessionLauncher starts a nested session for a resolved server path
// and blocks until it ends.
type SessionLauncher interface {
	Launch(ctx context.Context, serverPath string) error
	Args(serverPath string) ([]string, error)
}

// State is the run's position in its lifecycle.
type State int

const (
	// StateInit is the state before and during the build.
	StateInit State = iota
	// StateLaunching is entered once the build gate passes.
	StateLaunching
	// StateAborted is terminal: the build failed or the server could
	// not be resolved. No session was started.
	StateAborted
	// StateEnded is terminal: a session was started and has exited, or
	// failed to start.
	StateEnded
)

func (s State) String() string {
	switch s {
	case StateInit:
		return "init"
	case StateLaunching:
		return "launching"
	case StateAborted:
		return "aborted"
	case StateEnded:
		return "ended"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Config holds configuration for creating a Harness.
type Config struct {
	// Builder runs the build. Required.
	Builder Builder

	// Locator resolves the server executable. Required.
	Locator locator.Locator

	// Launcher starts the session. Required.
	Launcher SessionLauncher

	// ServerName is the nested display server executable to resolve.
	// Required.
	ServerName string

	// SearchDirs are the locator's fallback directories, reported in
	// resolution failures.
	SearchDirs []string

	// Artifact is the built binary whose digest is logged after a
	// successful build. Empty disables the digest.
	Artifact string

	// DryRun prints the build and session command lines to Output and
	// spawns nothing. Resolution still runs.
	DryRun bool

	// Output receives dry-run command lines. Default: os.Stdout.
	Output io.Writer

	// Logger for harness operations.
	Logger *slog.Logger
}

// Harness sequences build, resolution and launch for one invocation.
type Harness struct {
	builder    Builder
	locator    locator.Locator
	launcher   SessionLauncher
	serverName string
	searchDirs []string
	artifact   string
	dryRun     bool
	output     io.Writer
	logger     *slog.Logger
	state      State
}

// New creates a Harness.
func New(config Config) (*Harness, error) {
	if config.Builder == nil {
		return nil, fmt.Errorf("builder is required")
	}
	if config.Locator == nil {
		return nil, fmt.Errorf("locator is required")
	}
	if config.Launcher == nil {
		return nil, fmt.Errorf("session launcher is required")
	}
	if config.ServerName == "" {
		return nil, fmt.Errorf("server name is required")
	}

	output := config.Output
	if output == nil {
		output = os.Stdout
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Harness{
		builder:    config.Builder,
		locator:    config.Locator,
		launcher:   config.Launcher,
		serverName: config.ServerName,
		searchDirs: config.SearchDirs,
		artifact:   config.Artifact,
		dryRun:     config.DryRun,
		output:     output,
		logger:     logger,
		state:      StateInit,
	}, nil
}

// State returns the current lifecycle state.
func (h *Harness) State() State {
	return h.state
}

// Run executes one gated build-and-launch sequence. A Harness is
// single-use; call Run once.
func (h *Harness) Run(ctx context.Context) error {
	if h.dryRun {
		return h.printPlan()
	}

	result, err := h.builder.Build(ctx)
	if !result.Succeeded {
		h.state = StateAborted
		h.logger.Error("build failed, not launching session", "exit_code", result.ExitCode)
		return &BuildFailure{Result: result, Err: err}
	}
	h.state = StateLaunching
	h.logArtifactDigest()

	serverPath, err := h.resolveServer()
	if err != nil {
		h.state = StateAborted
		return err
	}

	err = h.launcher.Launch(ctx, serverPath)
	h.state = StateEnded
	if err != nil {
		return &LaunchFailure{ServerPath: serverPath, Err: err}
	}
	return nil
}

// resolveServer looks up the nested display server.
func (h *Harness) resolveServer() (string, error) {
	serverPath, ok := h.locator.Resolve(h.serverName)
	if !ok || serverPath == "" {
		failure := &ResolutionFailure{Name: h.serverName, SearchDirs: h.searchDirs}
		h.logger.Error("cannot locate nested display server", "server", h.serverName, "search_dirs", h.searchDirs)
		return "", failure
	}
	h.logger.Debug("resolved nested display server", "server", h.serverName, "path", serverPath)
	return serverPath, nil
}

// printPlan writes the commands a real run would execute.
func (h *Harness) printPlan() error {
	fmt.Fprintln(h.output, strings.Join(h.builder.Command(), " "))

	serverPath, err := h.resolveServer()
	if err != nil {
		h.state = StateAborted
		return err
	}

	args, err := h.launcher.Args(serverPath)
	if err != nil {
		h.state = StateAborted
		return &LaunchFailure{ServerPath: serverPath, Err: err}
	}
	fmt.Fprintln(h.output, strings.Join(args, " \\\n  "))
	h.state = StateEnded
	return nil
}

// logArtifactDigest logs the digest of the built artifact. A missing
// artifact is a warning, not a failure: the toolchain owns its output
// layout.
func (h *Harness) logArtifactDigest() {
	if h.artifact == "" {
		return
	}
	digest, err := binhash.HashFile(h.artifact)
	if err != nil {
		h.logger.Warn("cannot hash build artifact", "artifact", h.artifact, "error", err)
		return
	}
	h.logger.Info("build artifact", "artifact", h.artifact, "blake3", binhash.FormatDigest(digest))
}
