// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package locator

// Static is a Locator backed by a fixed name-to-path table, for callers
// that need a deterministic answer without touching the filesystem.
type Static map[string]string

// Resolve implements [Locator]. An entry with an empty path counts as
// no match.
func (s Static) Resolve(name string) (string, bool) {
	path, ok := s[name]
	if !ok || path == "" {
		return "", false
	}
	return path, true
}
