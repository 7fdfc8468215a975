// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// FakeExecutable writes a /bin/sh script named name into directory with
// the given body and returns its absolute path. The body is placed after
// the shebang line verbatim.
func FakeExecutable(t *testing.T, directory, name, body string) string {
	t.Helper()

	path := filepath.Join(directory, name)
	content := "#!/bin/sh\n" + body
	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	if err := os.WriteFile(path, []byte(content), 0o755); err != nil {
		t.Fatalf("writing fake executable %s: %v", path, err)
	}

	absolute, err := filepath.Abs(path)
	if err != nil {
		t.Fatalf("resolving fake executable %s: %v", path, err)
	}
	return absolute
}

// RecordingExecutable writes a fake executable that records its argv
// (one argument per line, program name excluded) to a file next to it
// and then exits with exitCode. Returns the executable path and the
// record path.
//
//	binary, record := testutil.RecordingExecutable(t, dir, "startx", 0)
//	// ... run code that invokes binary ...
//	argv := testutil.ReadArgv(t, record)
func RecordingExecutable(t *testing.T, directory, name string, exitCode int) (string, string) {
	t.Helper()

	record := filepath.Join(directory, name+".argv")
	body := fmt.Sprintf(`: > '%[1]s'
for argument in "$@"; do
	printf '%%s\n' "$argument" >> '%[1]s'
done
exit %[2]d
`, record, exitCode)

	return FakeExecutable(t, directory, name, body), record
}

// ReadArgv returns the arguments captured by a RecordingExecutable. It
// returns nil when the executable never ran (the record file does not
// exist) and an empty, non-nil slice when it ran without arguments.
func ReadArgv(t *testing.T, record string) []string {
	t.Helper()

	data, err := os.ReadFile(record)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		t.Fatalf("reading argv record %s: %v", record, err)
	}

	trimmed := strings.TrimSuffix(string(data), "\n")
	if trimmed == "" {
		return []string{}
	}
	return strings.Split(trimmed, "\n")
}
