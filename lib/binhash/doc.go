// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package binhash provides BLAKE3 content hashing for build artifacts.
//
// nestwm logs the digest of the freshly built binary after every
// successful build. Two runs over unchanged sources should report the
// same digest; a differing digest means the toolchain produced a
// different binary even though the build "succeeded" both times.
//
// The API surface is three functions:
//
//   - [HashFile] -- streams a file through BLAKE3, returning a [32]byte
//     digest with constant memory usage regardless of file size
//   - [HashReader] -- the same over an arbitrary reader
//   - [FormatDigest] -- converts a digest to its canonical hex string,
//     used in log output
//
// This package has no dependencies on other nestwm packages.
package binhash
