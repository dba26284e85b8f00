package entities

import "fmt"

const defaultHost = "github.com"

// Repository is a git working directory tracking one logical dependency,
// pinned to an exact reference.
type Repository struct {
	Owner string
	Name  string
	Ref   string // branch, tag, or commit
	Host  string // defaults to github.com

	// SparsePaths restricts the checkout to a subset of paths on first
	// clone. Only meaningful on first clone; an existing checkout is never
	// retroactively converted between sparse and full.
	SparsePaths []string
}

// FullName returns the owner/name pair used in logs and errors.
func (it Repository) FullName() string {
	return it.Owner + "/" + it.Name
}

// RemoteURL returns the HTTPS clone URL for the repository.
func (it Repository) RemoteURL() string {
	host := it.Host
	if host == "" {
		host = defaultHost
	}
	return fmt.Sprintf("https://%s/%s/%s.git", host, it.Owner, it.Name)
}

// Validate checks the caller contract for a sync operation.
func (it Repository) Validate() error {
	if it.Owner == "" || it.Name == "" {
		return fmt.Errorf("%w: repository owner and name are required", ErrInvalidArguments)
	}
	if it.Ref == "" {
		return fmt.Errorf("%w: repository %s needs a target ref", ErrInvalidArguments, it.FullName())
	}
	return nil
}
