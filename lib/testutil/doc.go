// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers for nestwm packages.
//
// [FakeExecutable] writes a small /bin/sh script into a directory and
// marks it executable. Tests use it to stand in for the build toolchain,
// the session launcher and the nested display server, so no test needs
// cargo, startx or Xephyr installed.
//
// [RecordingExecutable] is a FakeExecutable that writes each argument it
// receives on its own line to a record file and exits with a chosen
// status. [ReadArgv] reads the record back; a missing record means the
// executable was never invoked, which is how tests assert that the build
// gate held.
//
// All helpers call t.Fatalf on failure rather than returning errors,
// since test setup failures are not recoverable.
//
// This package has no nestwm-internal dependencies.
package testutil
