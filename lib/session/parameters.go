// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package session

import "fmt"

// Fixed session parameters.
const (
	Display      = ":1"
	ScreenWidth  = 1920
	ScreenHeight = 1080
)

// Parameters are the nested display server settings passed after the
// server path.
type Parameters struct {
	// Display is the X display the nested server claims.
	Display string

	// DisableAccessControl passes -ac so any local client may connect.
	DisableAccessControl bool

	// Width and Height size the nested screen.
	Width  int
	Height int

	// HostCursor passes -host-cursor so the outer session's cursor is
	// reused inside the nested window.
	HostCursor bool
}

// DefaultParameters returns the compile-time session parameters.
func DefaultParameters() Parameters {
	return Parameters{
		Display:              Display,
		DisableAccessControl: true,
		Width:                ScreenWidth,
		Height:               ScreenHeight,
		HostCursor:           true,
	}
}

// Geometry renders the screen size as WxH.
func (p Parameters) Geometry() string {
	return fmt.Sprintf("%dx%d", p.Width, p.Height)
}

// Args renders the parameters as server arguments in the order display,
// access control, screen geometry, host cursor.
func (p Parameters) Args() []string {
	args := []string{p.Display}
	if p.DisableAccessControl {
		args = append(args, "-ac")
	}
	args = append(args, "-screen", p.Geometry())
	if p.HostCursor {
		args = append(args, "-host-cursor")
	}
	return args
}
