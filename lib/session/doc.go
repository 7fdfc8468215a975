// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package session starts a nested display session for interactive
// testing of a freshly built window manager.
//
// A session is one process: a session-initialization program (startx by
// default) given a session script and, after a literal "--", the nested
// display server command line:
//
//	startx /abs/path/xinitrc -- /usr/bin/Xephyr :1 -ac -screen 1920x1080 -host-cursor
//
// The session script sets up whatever the nested context needs (it
// typically execs the window manager); the server command line comes
// from the resolved server path plus [Parameters]. Parameters are fixed
// at compile time: display :1, access control disabled, a 1920x1080
// screen and the host cursor. Nothing on the command line or in the
// configuration file can change them.
//
// [Launcher.Launch] spawns the session and waits for it, tying the
// harness's lifetime to the session's. It refuses to spawn anything
// when the server path is empty ([ErrEmptyServerPath]) or the session
// script is missing ([ErrScriptMissing]). A session that exits non-zero
// is reported as an [*ExitError] carrying its status.
package session
