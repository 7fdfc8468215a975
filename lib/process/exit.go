// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package process

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// exitCoder is implemented by errors that know which status the process
// should exit with.
type exitCoder interface {
	ExitCode() int
}

// Exit terminates the process for an error returned from run(). A nil
// error exits 0. Errors carrying an exit code (anywhere in the wrap
// chain) exit with that code; everything else exits 1.
func Exit(err error) {
	os.Exit(Report(os.Stderr, err))
}

// Report writes the diagnostic for err to w and returns the exit code
// the process should use. Split out from Exit so the mapping can be
// tested without terminating the test binary.
func Report(w io.Writer, err error) int {
	if err == nil {
		return 0
	}
	fmt.Fprintf(w, "error: %v\n", err)
	return Code(err)
}

// Code returns the exit code for err: 0 for nil, the embedded code for
// errors implementing ExitCode() int, and 1 otherwise. Codes outside
// 1..255 collapse to 1 so a failure never reads as success.
func Code(err error) int {
	if err == nil {
		return 0
	}
	var coder exitCoder
	if errors.As(err, &coder) {
		if code := coder.ExitCode(); code > 0 && code < 256 {
			return code
		}
	}
	return 1
}
