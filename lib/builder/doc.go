// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package builder runs the project's build toolchain once and reduces
// the outcome to a pass/fail gate.
//
// The central type is [Builder]. [Builder.Build] starts the configured
// command (cargo build by default) in the project directory with the
// operator's stdout and stderr attached, so compiler diagnostics appear
// exactly as the toolchain prints them. It blocks until the toolchain
// exits and returns a [Result].
//
// Two failure kinds resolve to Result.Succeeded == false:
//
//   - the toolchain could not be started at all (not installed, not
//     executable): the error wraps [ErrToolchainUnavailable];
//   - the toolchain ran and exited non-zero: the error is a
//     [*FailedError] carrying the toolchain's status.
//
// There are no retries. A failed build ends the run.
package builder
