// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package process provides entrypoint helpers for the nestwm binary.
// These functions centralize the raw I/O that happens after the
// structured logger has gone out of scope:
//
//   - Reporting the final error to stderr and mapping it onto the
//     process exit code, honouring errors that carry their own code (a
//     failed build exits with the toolchain's status, an aborted
//     session with the session's status).
//   - Translating a child's wait status into a shell-convention exit
//     code ([ExitStatus]).
package process
