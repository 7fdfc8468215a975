// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package session

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/bureau-foundation/nestwm/lib/testutil"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestLauncher writes a session script into a project directory and
// returns a Launcher whose session-initialization program records its
// argv and exits with exitCode.
func newTestLauncher(t *testing.T, exitCode int) (*Launcher, string, string) {
	t.Helper()

	project := t.TempDir()
	testutil.FakeExecutable(t, project, DefaultScript, "exec toniowm start")
	startx, record := testutil.RecordingExecutable(t, t.TempDir(), "startx", exitCode)

	launcher, err := New(Config{
		Launcher: startx,
		Dir:      project,
		Stdin:    strings.NewReader(""),
		Stdout:   io.Discard,
		Stderr:   io.Discard,
		Logger:   quietLogger(),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return launcher, project, record
}

func TestLaunch_ComposesSessionCommandLine(t *testing.T) {
	launcher, project, record := newTestLauncher(t, 0)

	if err := launcher.Launch(context.Background(), "/usr/bin/nested-display-server"); err != nil {
		t.Fatalf("Launch: %v", err)
	}

	want := []string{
		filepath.Join(project, DefaultScript),
		"--",
		"/usr/bin/nested-display-server",
		":1", "-ac", "-screen", "1920x1080", "-host-cursor",
	}
	if argv := testutil.ReadArgv(t, record); !slices.Equal(argv, want) {
		t.Errorf("session argv = %q, want %q", argv, want)
	}
}

func TestLaunch_EmptyServerPathSpawnsNothing(t *testing.T) {
	launcher, _, record := newTestLauncher(t, 0)

	err := launcher.Launch(context.Background(), "")
	if !errors.Is(err, ErrEmptyServerPath) {
		t.Fatalf("Launch error = %v, want ErrEmptyServerPath", err)
	}
	if argv := testutil.ReadArgv(t, record); argv != nil {
		t.Errorf("session process ran with %q despite empty server path", argv)
	}
}

func TestLaunch_MissingScript(t *testing.T) {
	launcher, project, record := newTestLauncher(t, 0)
	if err := os.Remove(filepath.Join(project, DefaultScript)); err != nil {
		t.Fatalf("Remove: %v", err)
	}

	err := launcher.Launch(context.Background(), "/usr/bin/Xephyr")
	if !errors.Is(err, ErrScriptMissing) {
		t.Fatalf("Launch error = %v, want ErrScriptMissing", err)
	}
	if argv := testutil.ReadArgv(t, record); argv != nil {
		t.Errorf("session process ran with %q despite missing script", argv)
	}
}

func TestLaunch_ScriptIsDirectory(t *testing.T) {
	project := t.TempDir()
	if err := os.Mkdir(filepath.Join(project, DefaultScript), 0o755); err != nil {
		t.Fatalf("Mkdir: %v", err)
	}

	launcher, err := New(Config{Dir: project, Logger: quietLogger()})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if _, err := launcher.Command(context.Background(), "/usr/bin/Xephyr"); !errors.Is(err, ErrScriptMissing) {
		t.Fatalf("Command error = %v, want ErrScriptMissing", err)
	}
}

func TestLaunch_LauncherUnavailable(t *testing.T) {
	project := t.TempDir()
	testutil.FakeExecutable(t, project, DefaultScript, "exit 0")

	launcher, err := New(Config{
		Launcher: filepath.Join(t.TempDir(), "startx"),
		Dir:      project,
		Logger:   quietLogger(),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	err = launcher.Launch(context.Background(), "/usr/bin/Xephyr")
	if !errors.Is(err, ErrLauncherUnavailable) {
		t.Fatalf("Launch error = %v, want ErrLauncherUnavailable", err)
	}
}

func TestLaunch_SessionExitCode(t *testing.T) {
	launcher, _, _ := newTestLauncher(t, 3)

	err := launcher.Launch(context.Background(), "/usr/bin/Xephyr")
	var exitError *ExitError
	if !errors.As(err, &exitError) {
		t.Fatalf("Launch error = %v, want *ExitError", err)
	}
	if exitError.ExitCode() != 3 {
		t.Errorf("ExitCode() = %d, want 3", exitError.ExitCode())
	}
}

func TestLaunch_CancelTerminatesSession(t *testing.T) {
	project := t.TempDir()
	testutil.FakeExecutable(t, project, DefaultScript, "exit 0")
	startx := testutil.FakeExecutable(t, t.TempDir(), "startx", "exec sleep 30")

	launcher, err := New(Config{
		Launcher: startx,
		Dir:      project,
		Stdin:    strings.NewReader(""),
		Stdout:   io.Discard,
		Stderr:   io.Discard,
		Logger:   quietLogger(),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	err = launcher.Launch(ctx, "/usr/bin/Xephyr")
	var exitError *ExitError
	if !errors.As(err, &exitError) {
		t.Fatalf("Launch error = %v, want *ExitError", err)
	}
	if exitError.ExitCode() != 143 {
		t.Errorf("ExitCode() = %d, want 143 (SIGTERM)", exitError.ExitCode())
	}
}

func TestArgs(t *testing.T) {
	launcher, err := New(Config{Script: "/path/to/session-script", Logger: quietLogger()})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	got, err := launcher.Args("/usr/bin/nested-display-server")
	if err != nil {
		t.Fatalf("Args: %v", err)
	}
	want := []string{
		"startx", "/path/to/session-script", "--",
		"/usr/bin/nested-display-server", ":1", "-ac", "-screen", "1920x1080", "-host-cursor",
	}
	if !slices.Equal(got, want) {
		t.Errorf("Args = %q, want %q", got, want)
	}

	if _, err := launcher.Args(""); !errors.Is(err, ErrEmptyServerPath) {
		t.Errorf("Args(\"\") error = %v, want ErrEmptyServerPath", err)
	}
}

func TestNew_ResolvesScriptAgainstDir(t *testing.T) {
	project := t.TempDir()
	launcher, err := New(Config{Dir: project, Script: "dev/xinitrc"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if want := filepath.Join(project, "dev", "xinitrc"); launcher.Script() != want {
		t.Errorf("Script() = %q, want %q", launcher.Script(), want)
	}
}
