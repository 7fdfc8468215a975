// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package version provides build version information for the nestwm
// binary.
//
// Four package-level variables are injected at build time via
// -ldflags -X:
//
//   - [GitCommit] -- short git SHA of the build
//   - [GitDirty] -- "true" if there were uncommitted changes
//   - [BuildTime] -- UTC timestamp of the build
//   - [Version] -- semantic version string (set manually for releases)
//
// Unstamped builds report "0.1.0-dev". Their commit comes from the
// vcs.revision and vcs.modified settings the go command embeds when
// building inside a git checkout, and is "unknown" otherwise (test
// binaries, builds outside a checkout).
package version
