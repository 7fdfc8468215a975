// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"fmt"
	"io"
	"runtime"
	"runtime/debug"
)

// Release builds stamp these with -ldflags, for example:
//
//	go build -ldflags "-X github.com/bureau-foundation/nestwm/lib/version.GitCommit=$(git rev-parse --short HEAD)" ./cmd/nestwm
var (
	GitCommit = "unknown"
	GitDirty  = "false"
	BuildTime = "unknown"
	Version   = "0.1.0-dev"
)

// shortRevisionLength matches git rev-parse --short.
const shortRevisionLength = 7

// Info returns "<version> (<commit>[-dirty], <build time>)". When the
// binary was not stamped, the commit comes from the VCS metadata the go
// command embeds for builds inside a checkout.
func Info() string {
	commit, dirty := GitCommit, GitDirty == "true"
	if commit == "unknown" {
		if info, ok := debug.ReadBuildInfo(); ok {
			commit, dirty = revision(info.Settings)
		}
	}

	suffix := ""
	if dirty {
		suffix = "-dirty"
	}
	return fmt.Sprintf("%s (%s%s, %s)", Version, commit, suffix, BuildTime)
}

// revision extracts the short commit and modified flag from embedded
// build settings. Missing settings yield "unknown" and false.
func revision(settings []debug.BuildSetting) (string, bool) {
	commit, dirty := "unknown", false
	for _, setting := range settings {
		switch setting.Key {
		case "vcs.revision":
			commit = setting.Value
			if len(commit) > shortRevisionLength {
				commit = commit[:shortRevisionLength]
			}
		case "vcs.modified":
			dirty = setting.Value == "true"
		}
	}
	return commit, dirty
}

// Print writes the --version output for binary: the [Info] line
// followed by the Go toolchain and platform.
func Print(w io.Writer, binary string) {
	fmt.Fprintf(w, "%s %s\n  Go: %s\n  Platform: %s/%s\n",
		binary, Info(), runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
