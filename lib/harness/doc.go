// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package harness runs the build-then-launch sequence behind the nestwm
// command.
//
// [Harness.Run] is strictly sequential:
//
//  1. Build the project once. Any failure (toolchain missing or a
//     compile error) aborts the run with a [*BuildFailure]; nothing
//     else is attempted.
//  2. Resolve the nested display server through the injected
//     [locator.Locator]. No match aborts with a [*ResolutionFailure];
//     the session is never started with a blank server path.
//  3. Launch the session and wait for it. Any launch error, including
//     a session exiting non-zero, is a [*LaunchFailure].
//
// The collaborators are interfaces so tests can count spawns without
// running cargo or an X server.
package harness
