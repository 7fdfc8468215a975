// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"errors"
	"os/exec"
	"slices"
	"testing"
)

func TestRecordingExecutable(t *testing.T) {
	directory := t.TempDir()
	binary, record := RecordingExecutable(t, directory, "recorder", 0)

	if argv := ReadArgv(t, record); argv != nil {
		t.Fatalf("ReadArgv before invocation = %v, want nil", argv)
	}

	if err := exec.Command(binary, "first", "with space", "-flag").Run(); err != nil {
		t.Fatalf("running recorder: %v", err)
	}

	want := []string{"first", "with space", "-flag"}
	if argv := ReadArgv(t, record); !slices.Equal(argv, want) {
		t.Errorf("ReadArgv = %q, want %q", argv, want)
	}
}

func TestRecordingExecutableNoArguments(t *testing.T) {
	binary, record := RecordingExecutable(t, t.TempDir(), "recorder", 0)
	if err := exec.Command(binary).Run(); err != nil {
		t.Fatalf("running recorder: %v", err)
	}

	argv := ReadArgv(t, record)
	if argv == nil || len(argv) != 0 {
		t.Errorf("ReadArgv = %#v, want empty non-nil slice", argv)
	}
}

func TestRecordingExecutableExitCode(t *testing.T) {
	binary, _ := RecordingExecutable(t, t.TempDir(), "failing", 7)
	err := exec.Command(binary).Run()

	var exitError *exec.ExitError
	if !errors.As(err, &exitError) {
		t.Fatalf("expected *exec.ExitError, got %v", err)
	}
	if exitError.ExitCode() != 7 {
		t.Errorf("exit code = %d, want 7", exitError.ExitCode())
	}
}
