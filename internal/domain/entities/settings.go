package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Settings is the acquisition manifest: the ordered list of artifacts,
// repositories, and patches a build needs on disk before it can proceed.
type Settings struct {
	WorkDir      string               `yaml:"workdir"`
	Ccache       *CcacheSettings      `yaml:"ccache"`
	Artifacts    []ArtifactSettings   `yaml:"artifacts"`
	Repositories []RepositorySettings `yaml:"repositories"`
	Patches      []PatchSettings      `yaml:"patches"`
}

// CcacheSettings configures the compiler cache before a build.
type CcacheSettings struct {
	Dir     string `yaml:"dir"`
	MaxSize string `yaml:"max_size"`
}

// ArtifactSettings describes a single downloadable file in the manifest.
type ArtifactSettings struct {
	URL      string `yaml:"url"`
	SHA256   string `yaml:"sha256"`
	Transfer string `yaml:"transfer"` // "resume" (default) or "fresh"
	Dir      string `yaml:"dir"`      // relative to workdir, defaults to "."
}

// RepositorySettings describes a git dependency in the manifest.
type RepositorySettings struct {
	Owner       string   `yaml:"owner"`
	Name        string   `yaml:"name"`
	Ref         string   `yaml:"ref"`
	Host        string   `yaml:"host"`
	SparsePaths []string `yaml:"sparse_paths"`
	Dir         string   `yaml:"dir"` // relative to workdir, defaults to the repo name
}

// PatchSettings describes a patch in the manifest. Exactly one of URL and
// Path must be set; URL sources additionally require a SHA256.
type PatchSettings struct {
	URL    string `yaml:"url"`
	Path   string `yaml:"path"`
	SHA256 string `yaml:"sha256"`
	Dir    string `yaml:"dir"` // working tree to patch, relative to workdir
}

// NewSettings reads and parses a manifest file, then validates it.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %q: %w", path, err)
	}

	var settings Settings
	if unmarshalErr := yaml.Unmarshal(data, &settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", unmarshalErr)
	}

	if settings.WorkDir == "" {
		settings.WorkDir = "."
	}

	if validateErr := settings.validate(); validateErr != nil {
		return nil, validateErr
	}

	return &settings, nil
}

// FindConfigFile searches for a manifest in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".prefetch.yaml",
		".prefetch.yml",
		"prefetch.yaml",
		"prefetch.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("manifest not found in default locations")
}

// ToArtifact converts the manifest entry into an Artifact value.
func (it ArtifactSettings) ToArtifact() (Artifact, error) {
	mode, err := ParseTransferMode(it.Transfer)
	if err != nil {
		return Artifact{}, err
	}
	return Artifact{
		URL:    it.URL,
		Digest: Digest(it.SHA256),
		Mode:   mode,
	}, nil
}

// ToRepository converts the manifest entry into a Repository value.
func (it RepositorySettings) ToRepository() Repository {
	return Repository{
		Owner:       it.Owner,
		Name:        it.Name,
		Ref:         it.Ref,
		Host:        it.Host,
		SparsePaths: it.SparsePaths,
	}
}

// ToPatch converts the manifest entry into a Patch value. The source kind
// is decided by which field the manifest author filled in, validated up
// front — not sniffed from the string at apply time.
func (it PatchSettings) ToPatch() Patch {
	if it.URL != "" {
		return RemotePatch(it.URL, Digest(it.SHA256))
	}
	return LocalPatch(it.Path)
}

// TargetDir resolves a manifest-relative directory against the workdir.
func (it *Settings) TargetDir(dir string) string {
	if dir == "" || dir == "." {
		return it.WorkDir
	}
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(it.WorkDir, dir)
}

// RepositoryDir resolves the checkout directory for a repository entry.
func (it *Settings) RepositoryDir(repo RepositorySettings) string {
	dir := repo.Dir
	if dir == "" {
		dir = repo.Name
	}
	return it.TargetDir(dir)
}

// validate checks for required manifest values.
func (it *Settings) validate() error {
	for i, artifact := range it.Artifacts {
		if artifact.URL == "" {
			return fmt.Errorf("artifacts[%d].url is required", i)
		}
		if !Digest(artifact.SHA256).IsValid() {
			return fmt.Errorf("artifacts[%d].sha256 must be a 64-character hex digest", i)
		}
		if _, err := ParseTransferMode(artifact.Transfer); err != nil {
			return fmt.Errorf("artifacts[%d]: %w", i, err)
		}
	}

	for i, repo := range it.Repositories {
		if repo.Owner == "" || repo.Name == "" {
			return fmt.Errorf("repositories[%d] needs both owner and name", i)
		}
		if repo.Ref == "" {
			return fmt.Errorf("repositories[%d].ref is required", i)
		}
	}

	for i, patch := range it.Patches {
		hasURL := patch.URL != ""
		hasPath := patch.Path != ""
		if hasURL == hasPath {
			return fmt.Errorf("patches[%d] needs exactly one of url or path", i)
		}
		if hasURL && !Digest(patch.SHA256).IsValid() {
			return fmt.Errorf("patches[%d].sha256 is required for remote patches", i)
		}
	}

	return nil
}
