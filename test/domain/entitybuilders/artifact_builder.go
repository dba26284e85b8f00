//go:build integration || unit || test

// Package entitybuilders provides fluent builders for test entities.
package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"crypto/sha256"
	"encoding/hex"

	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/prefetch/internal/domain/entities"
)

// ArtifactBuilder helps create test artifacts with a fluent interface.
type ArtifactBuilder struct {
	*testkit.BaseBuilder
	url    string
	digest entities.Digest
	mode   entities.TransferMode
}

// NewArtifactBuilder creates a new artifact builder with sensible defaults.
func NewArtifactBuilder() *ArtifactBuilder {
	return &ArtifactBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		url:         "https://example.org/pkg-1.0.tar.gz",
		digest:      DigestOf([]byte("pkg-1.0 contents")),
		mode:        entities.TransferResume,
	}
}

// WithURL sets the source URL.
func (b *ArtifactBuilder) WithURL(url string) *ArtifactBuilder {
	b.url = url
	return b
}

// WithDigest sets the expected digest.
func (b *ArtifactBuilder) WithDigest(digest entities.Digest) *ArtifactBuilder {
	b.digest = digest
	return b
}

// WithContent sets the expected digest to the digest of the given bytes.
func (b *ArtifactBuilder) WithContent(content []byte) *ArtifactBuilder {
	b.digest = DigestOf(content)
	return b
}

// WithMode sets the transfer mode.
func (b *ArtifactBuilder) WithMode(mode entities.TransferMode) *ArtifactBuilder {
	b.mode = mode
	return b
}

// Build creates the artifact (satisfies testkit.Builder interface).
func (b *ArtifactBuilder) Build() interface{} {
	return b.BuildArtifact()
}

// BuildArtifact creates the artifact with a concrete return type.
func (b *ArtifactBuilder) BuildArtifact() entities.Artifact {
	return entities.Artifact{
		URL:    b.url,
		Digest: b.digest,
		Mode:   b.mode,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *ArtifactBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.url = "https://example.org/pkg-1.0.tar.gz"
	b.digest = DigestOf([]byte("pkg-1.0 contents"))
	b.mode = entities.TransferResume
	return b
}

// Clone creates a deep copy of the ArtifactBuilder.
func (b *ArtifactBuilder) Clone() testkit.Builder {
	return &ArtifactBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		url:         b.url,
		digest:      b.digest,
		mode:        b.mode,
	}
}

// DigestOf computes the SHA-256 digest of the given bytes.
func DigestOf(content []byte) entities.Digest {
	sum := sha256.Sum256(content)
	return entities.Digest(hex.EncodeToString(sum[:]))
}
