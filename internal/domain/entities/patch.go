package entities

// PatchSourceKind tags where a patch comes from. The origin is an explicit
// caller-supplied variant, never sniffed from a string prefix.
type PatchSourceKind int

const (
	// PatchSourceLocal is a patch file already on disk; the caller vouches
	// for it and no digest check is performed.
	PatchSourceLocal PatchSourceKind = iota
	// PatchSourceRemote is a patch fetched from a URL; it must pass digest
	// verification before being applied.
	PatchSourceRemote
)

// Patch is a single diff to apply to a working tree.
type Patch struct {
	Kind   PatchSourceKind
	URL    string // remote source only
	Path   string // local source only
	Digest Digest // required for remote sources
}

// LocalPatch builds a patch sourced from a local path.
func LocalPatch(path string) Patch {
	return Patch{Kind: PatchSourceLocal, Path: path}
}

// RemotePatch builds a patch sourced from a URL, verified by digest.
func RemotePatch(url string, digest Digest) Patch {
	return Patch{Kind: PatchSourceRemote, URL: url, Digest: digest}
}

// DisplayName identifies the patch in logs and errors.
func (it Patch) DisplayName() string {
	if it.Kind == PatchSourceRemote {
		return it.URL
	}
	return it.Path
}
