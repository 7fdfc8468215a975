// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package harness

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bureau-foundation/nestwm/lib/builder"
)

// ErrServerNotFound is wrapped by [ResolutionFailure].
var ErrServerNotFound = errors.New("nested display server not found")

// BuildFailure aborts a run before any session is attempted.
type BuildFailure struct {
	Result builder.Result
	Err    error
}

func (e *BuildFailure) Error() string {
	if e.Err == nil {
		return "build failed"
	}
	return "build failed: " + e.Err.Error()
}

func (e *BuildFailure) Unwrap() error {
	return e.Err
}

// ResolutionFailure aborts a run whose build succeeded but whose nested
// display server could not be located.
type ResolutionFailure struct {
	Name       string
	SearchDirs []string
}

func (e *ResolutionFailure) Error() string {
	if len(e.SearchDirs) == 0 {
		return fmt.Sprintf("%s: %q is not on PATH", ErrServerNotFound, e.Name)
	}
	return fmt.Sprintf("%s: %q is not on PATH or in %s",
		ErrServerNotFound, e.Name, strings.Join(e.SearchDirs, ", "))
}

func (e *ResolutionFailure) Unwrap() error {
	return ErrServerNotFound
}

// LaunchFailure reports a session that could not be started or exited
// abnormally.
type LaunchFailure struct {
	ServerPath string
	Err        error
}

func (e *LaunchFailure) Error() string {
	return "launching nested session: " + e.Err.Error()
}

func (e *LaunchFailure) Unwrap() error {
	return e.Err
}
