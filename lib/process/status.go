// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package process

import (
	"os/exec"
	"syscall"
)

// ExitStatus returns the shell-convention status of a child that
// exited unsuccessfully: its exit code when it exited normally, or 128
// plus the signal number when a signal killed it (SIGINT=2 gives 130).
// Returns 1 when the status cannot be determined.
func ExitStatus(exitError *exec.ExitError) int {
	if exitError == nil {
		return 1
	}
	if status, ok := exitError.Sys().(syscall.WaitStatus); ok && status.Signaled() {
		return 128 + int(status.Signal())
	}
	if code := exitError.ExitCode(); code > 0 {
		return code
	}
	return 1
}
