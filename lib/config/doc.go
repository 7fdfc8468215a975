// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for the nestwm harness.
//
// Configuration is optional. A file is loaded only when named by the
// --config flag (via [LoadFile]) or the NESTWM_CONFIG environment
// variable (via [Load]); without either, [Default] applies and the
// harness builds with cargo and launches startx/Xephyr from the current
// directory. There is no automatic file search.
//
// Files ending in .json or .jsonc are stripped of comments and trailing
// commas before decoding; everything else is decoded as YAML. Both
// share one set of field names.
//
// Variable expansion is performed on path fields after loading:
// ${HOME}, ${PROJECT_DIR} and ${VAR:-default} patterns are expanded.
//
// The nested session parameters (display, access control, geometry,
// cursor) are deliberately absent: they are compile-time constants of
// package session.
//
// Key exports:
//
//   - [Config] -- master struct with Project, Build, Session, Log
//   - [Default] -- returns a Config with the built-in defaults
//   - [Load] and [LoadFile] -- the two entry points for loading
//
// This package depends on no other nestwm packages.
package config
