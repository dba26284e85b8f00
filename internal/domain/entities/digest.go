package entities

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"
)

const digestHexLength = 64

// Digest is the expected SHA-256 fingerprint of a file, as a 64-character
// hex string. Comparison against computed digests is an exact, case-sensitive
// string match.
type Digest string

// IsValid reports whether the digest is a well-formed 64-character hex string.
func (it Digest) IsValid() bool {
	if len(it) != digestHexLength {
		return false
	}
	_, err := hex.DecodeString(string(it))
	return err == nil
}

// Matches computes the SHA-256 digest of the file at the given path and
// compares it against the expected value. A missing or unreadable file is
// simply a non-match — fatality is the caller's decision.
func (it Digest) Matches(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer func() {
		_ = f.Close()
	}()

	hash := sha256.New()
	if _, copyErr := io.Copy(hash, f); copyErr != nil {
		return false
	}

	return hex.EncodeToString(hash.Sum(nil)) == string(it)
}
