// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"

	"golang.org/x/sys/unix"

	"github.com/bureau-foundation/nestwm/lib/process"
)

const (
	// DefaultLauncher is the session-initialization program.
	DefaultLauncher = "startx"

	// DefaultScript is the session script, relative to the project
	// directory.
	DefaultScript = "xinitrc"
)

var (
	// ErrEmptyServerPath is returned when asked to launch with no
	// resolved server executable.
	ErrEmptyServerPath = errors.New("nested display server path is empty")

	// ErrScriptMissing is returned when the session script does not
	// exist or is not a regular file.
	ErrScriptMissing = errors.New("session script missing")

	// ErrLauncherUnavailable is returned when the session-initialization
	// program cannot be started.
	ErrLauncherUnavailable = errors.New("session launcher unavailable")
)

// ExitError represents a session that exited unsuccessfully.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("session exited with code %d", e.Code)
}

// ExitCode returns the session's status so the harness exits with it.
func (e *ExitError) ExitCode() int {
	return e.Code
}

// Config holds configuration for creating a Launcher.
type Config struct {
	// Launcher is the session-initialization program. Default:
	// DefaultLauncher, looked up on PATH when started.
	Launcher string

	// Script is the session script. Relative paths resolve against
	// Dir. Default: DefaultScript.
	Script string

	// Dir is the project directory. Empty means the current working
	// directory.
	Dir string

	// Stdin, Stdout and Stderr are attached to the session. Default:
	// the harness's own.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Logger for session operations.
	Logger *slog.Logger
}

// Launcher composes and runs nested display sessions.
type Launcher struct {
	launcher   string
	script     string
	parameters Parameters
	stdin      io.Reader
	stdout     io.Writer
	stderr     io.Writer
	logger     *slog.Logger
}

// New creates a Launcher.
func New(config Config) (*Launcher, error) {
	launcher := config.Launcher
	if launcher == "" {
		launcher = DefaultLauncher
	}

	script := config.Script
	if script == "" {
		script = DefaultScript
	}
	if !filepath.IsAbs(script) {
		script = filepath.Join(config.Dir, script)
	}
	script, err := filepath.Abs(script)
	if err != nil {
		return nil, fmt.Errorf("resolving session script path: %w", err)
	}

	stdin := config.Stdin
	if stdin == nil {
		stdin = os.Stdin
	}
	stdout := config.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := config.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Launcher{
		launcher:   launcher,
		script:     script,
		parameters: DefaultParameters(),
		stdin:      stdin,
		stdout:     stdout,
		stderr:     stderr,
		logger:     logger,
	}, nil
}

// Script returns the absolute session script path.
func (l *Launcher) Script() string {
	return l.script
}

// Args returns the full session argv for serverPath, launcher program
// first:
//
//	<launcher> <script> -- <serverPath> <parameters...>
func (l *Launcher) Args(serverPath string) ([]string, error) {
	if serverPath == "" {
		return nil, ErrEmptyServerPath
	}

	args := []string{l.launcher, l.script, "--", serverPath}
	args = append(args, l.parameters.Args()...)
	return args, nil
}

// Command creates the exec.Cmd for a session without starting it.
// Useful for custom I/O handling or testing.
func (l *Launcher) Command(ctx context.Context, serverPath string) (*exec.Cmd, error) {
	args, err := l.Args(serverPath)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(l.script)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScriptMissing, err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s is not a regular file", ErrScriptMissing, l.script)
	}

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Stdin = l.stdin
	cmd.Stdout = l.stdout
	cmd.Stderr = l.stderr
	cmd.Cancel = func() error {
		return cmd.Process.Signal(unix.SIGTERM)
	}

	return cmd, nil
}

// Launch starts the session and blocks until it exits.
func (l *Launcher) Launch(ctx context.Context, serverPath string) error {
	cmd, err := l.Command(ctx, serverPath)
	if err != nil {
		return err
	}

	l.logger.Info("starting nested session",
		"launcher", l.launcher,
		"script", l.script,
		"server", serverPath,
		"display", l.parameters.Display,
		"geometry", l.parameters.Geometry(),
	)

	if err := cmd.Start(); err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("session interrupted: %w", ctx.Err())
		}
		return fmt.Errorf("%w: %s: %w", ErrLauncherUnavailable, l.launcher, err)
	}

	if err := cmd.Wait(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return &ExitError{Code: process.ExitStatus(exitError)}
		}
		return fmt.Errorf("waiting for session: %w", err)
	}

	l.logger.Info("nested session ended")
	return nil
}
