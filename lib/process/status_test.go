// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package process

import (
	"errors"
	"os/exec"
	"testing"
)

func TestExitStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		script string
		want   int
	}{
		{"normal exit", "exit 3", 3},
		{"killed by SIGTERM", "kill -TERM $$", 143},
		{"killed by SIGKILL", "kill -KILL $$", 137},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			err := exec.Command("/bin/sh", "-c", test.script).Run()
			var exitError *exec.ExitError
			if !errors.As(err, &exitError) {
				t.Fatalf("expected *exec.ExitError, got %v", err)
			}
			if got := ExitStatus(exitError); got != test.want {
				t.Errorf("ExitStatus = %d, want %d", got, test.want)
			}
		})
	}
}

func TestExitStatusNil(t *testing.T) {
	t.Parallel()

	if got := ExitStatus(nil); got != 1 {
		t.Errorf("ExitStatus(nil) = %d, want 1", got)
	}
}
