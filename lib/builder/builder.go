// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package builder

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"time"

	"golang.org/x/sys/unix"

	"github.com/bureau-foundation/nestwm/lib/process"
)

// DefaultCommand is the toolchain invocation used when Config.Command
// is empty.
var DefaultCommand = []string{"cargo", "build"}

// ErrToolchainUnavailable indicates the build command could not be
// started. It is distinct from a build that ran and failed.
var ErrToolchainUnavailable = errors.New("build toolchain unavailable")

// Result is the outcome of one build attempt.
type Result struct {
	// Succeeded is the gate: true only when the toolchain ran and
	// exited 0.
	Succeeded bool

	// ExitCode is the toolchain's shell-convention status, or -1 when
	// it never started.
	ExitCode int

	// Duration is the wall time spent in the toolchain.
	Duration time.Duration
}

// FailedError reports a toolchain that ran and exited unsuccessfully.
type FailedError struct {
	Command []string
	Code    int
}

func (e *FailedError) Error() string {
	return fmt.Sprintf("%s exited with code %d", strings.Join(e.Command, " "), e.Code)
}

// ExitCode returns the toolchain's status so the harness exits with it.
func (e *FailedError) ExitCode() int {
	return e.Code
}

// Config holds configuration for creating a Builder.
type Config struct {
	// Command is the toolchain argv. Default: DefaultCommand.
	Command []string

	// Dir is the project directory containing the build manifest.
	// Empty means the current working directory.
	Dir string

	// Stdout and Stderr receive the toolchain's output. Default:
	// os.Stdout and os.Stderr.
	Stdout io.Writer
	Stderr io.Writer

	// Logger for build operations.
	Logger *slog.Logger
}

// Builder invokes the build toolchain.
type Builder struct {
	command []string
	dir     string
	stdout  io.Writer
	stderr  io.Writer
	logger  *slog.Logger
}

// New creates a Builder.
func New(config Config) (*Builder, error) {
	command := config.Command
	if len(command) == 0 {
		command = DefaultCommand
	}
	if command[0] == "" {
		return nil, fmt.Errorf("build command has an empty program name")
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

	return &Builder{
		command: append([]string(nil), command...),
		dir:     config.Dir,
		stdout:  stdout,
		stderr:  stderr,
		logger:  logger,
	}, nil
}

// Command returns a copy of the toolchain argv.
func (b *Builder) Command() []string {
	return append([]string(nil), b.command...)
}

// Build runs the toolchain once and waits for it. The returned error is
// nil exactly when Result.Succeeded is true.
//
// Cancelling ctx sends SIGTERM to the toolchain. An interactive Ctrl-C
// reaches the toolchain directly since it shares the terminal's
// foreground process group.
func (b *Builder) Build(ctx context.Context) (Result, error) {
	cmd := exec.CommandContext(ctx, b.command[0], b.command[1:]...)
	cmd.Dir = b.dir
	cmd.Stdout = b.stdout
	cmd.Stderr = b.stderr
	cmd.Cancel = func() error {
		return cmd.Process.Signal(unix.SIGTERM)
	}

	b.logger.Info("building project", "command", b.command, "dir", b.dir)

	start := time.Now()
	if err := cmd.Start(); err != nil {
		if ctx.Err() != nil {
			return Result{ExitCode: -1}, fmt.Errorf("build interrupted: %w", ctx.Err())
		}
		b.logger.Debug("build toolchain failed to start", "program", b.command[0], "error", err)
		return Result{ExitCode: -1}, fmt.Errorf("%w: %s: %w", ErrToolchainUnavailable, b.command[0], err)
	}

	waitErr := cmd.Wait()
	result := Result{Duration: time.Since(start)}
	if waitErr == nil {
		result.Succeeded = true
		b.logger.Info("build succeeded", "duration", result.Duration)
		return result, nil
	}

	var exitError *exec.ExitError
	if !errors.As(waitErr, &exitError) {
		result.ExitCode = 1
		return result, fmt.Errorf("waiting for %s: %w", b.command[0], waitErr)
	}

	result.ExitCode = process.ExitStatus(exitError)
	b.logger.Debug("build exited", "exit_code", result.ExitCode, "duration", result.Duration)
	return result, &FailedError{Command: b.Command(), Code: result.ExitCode}
}
