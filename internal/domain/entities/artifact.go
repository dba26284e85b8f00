package entities

import (
	"fmt"
	"net/url"
	"path"
	"path/filepath"
	"strings"
)

// TransferMode selects how the byte transfer of an artifact behaves when a
// partial file from a previous attempt is still on disk.
type TransferMode int

const (
	// TransferResume continues the download from the existing byte offset.
	TransferResume TransferMode = iota
	// TransferFresh restarts the download from zero, overwriting.
	TransferFresh
)

// ParseTransferMode converts the manifest/CLI representation into a
// TransferMode. The mode is an explicit tag at the boundary, never inferred
// from the state of the destination file.
func ParseTransferMode(raw string) (TransferMode, error) {
	switch raw {
	case "", "resume":
		return TransferResume, nil
	case "fresh":
		return TransferFresh, nil
	default:
		return TransferResume, fmt.Errorf("%w: unknown transfer mode %q", ErrInvalidArguments, raw)
	}
}

// Artifact is a single downloadable file identified by URL and pinned by
// digest. Its local file name is derived from the URL basename.
type Artifact struct {
	URL    string
	Digest Digest
	Mode   TransferMode
}

// LocalName derives the on-disk file name from the URL basename.
func (it Artifact) LocalName() (string, error) {
	parsed, err := url.Parse(it.URL)
	if err != nil {
		return "", fmt.Errorf("%w: cannot parse URL %q: %w", ErrInvalidArguments, it.URL, err)
	}

	name := path.Base(parsed.Path)
	if name == "." || name == "/" || strings.TrimSpace(name) == "" {
		return "", fmt.Errorf("%w: URL %q has no file name", ErrInvalidArguments, it.URL)
	}

	return name, nil
}

// SatisfiedAt reports whether a file with the derived name already exists in
// the given directory and matches the expected digest. Existence alone is
// never sufficient.
func (it Artifact) SatisfiedAt(dir string) bool {
	name, err := it.LocalName()
	if err != nil {
		return false
	}
	return it.Digest.Matches(filepath.Join(dir, name))
}
