// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package binhash

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/zeebo/blake3"
)

// HashFile computes the BLAKE3 digest of the file at path. The file is
// streamed through the hasher via io.Copy so memory use does not grow
// with the artifact size.
func HashFile(path string) ([32]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return [32]byte{}, fmt.Errorf("opening %s for hashing: %w", path, err)
	}
	defer file.Close()

	return HashReader(file)
}

// HashReader computes the BLAKE3 digest of everything read from reader.
func HashReader(reader io.Reader) ([32]byte, error) {
	hasher := blake3.New()
	if _, err := io.Copy(hasher, reader); err != nil {
		return [32]byte{}, fmt.Errorf("hashing: %w", err)
	}

	var digest [32]byte
	copy(digest[:], hasher.Sum(nil))
	return digest, nil
}

// FormatDigest returns the hex-encoded form of a digest.
func FormatDigest(digest [32]byte) string {
	return hex.EncodeToString(digest[:])
}
