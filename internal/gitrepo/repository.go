// Package gitrepo provides read-side repository inspection on top of
// libgit2: staged paths, diff statistics, branch state, and blob access for
// manifest comparison. Mutations go through the git binary instead so that
// hooks and credential helpers behave exactly as they do on the command
// line.
package gitrepo

import (
	"errors"
	"fmt"

	git2go "github.com/libgit2/git2go/v34"
)

// ErrDetachedHead indicates HEAD does not point at a branch.
var ErrDetachedHead = errors.New("HEAD is detached")

// Repository wraps a libgit2 repository.
type Repository struct {
	repo *git2go.Repository
	path string
}

// Open opens the git repository at path, searching upward from it the way
// the git binary does.
func Open(path string) (*Repository, error) {
	repo, err := git2go.OpenRepositoryExtended(path, 0, "")
	if err != nil {
		return nil, fmt.Errorf("open repository: %w", err)
	}

	return &Repository{repo: repo, path: path}, nil
}

// Path returns the path the repository was opened from.
func (r *Repository) Path() string {
	return r.path
}

// Workdir returns the repository working directory.
func (r *Repository) Workdir() string {
	return r.repo.Workdir()
}

// Free releases the repository resources.
func (r *Repository) Free() {
	if r.repo != nil {
		r.repo.Free()
		r.repo = nil
	}
}

// HeadBranch returns the short name of the branch HEAD points at.
// Returns ErrDetachedHead when HEAD is detached.
func (r *Repository) HeadBranch() (string, error) {
	detached, err := r.repo.IsHeadDetached()
	if err != nil {
		return "", fmt.Errorf("check detached HEAD: %w", err)
	}

	if detached {
		return "", ErrDetachedHead
	}

	unborn, err := r.repo.IsHeadUnborn()
	if err != nil {
		return "", fmt.Errorf("check unborn HEAD: %w", err)
	}

	if unborn {
		// First commit on a fresh repository. HEAD names the branch even
		// though no commit exists yet.
		ref, lookupErr := r.repo.References.Lookup("HEAD")
		if lookupErr != nil {
			return "", fmt.Errorf("lookup HEAD: %w", lookupErr)
		}
		defer ref.Free()

		target := ref.SymbolicTarget()

		return shortBranchName(target), nil
	}

	ref, err := r.repo.Head()
	if err != nil {
		return "", fmt.Errorf("get HEAD: %w", err)
	}
	defer ref.Free()

	name, err := ref.Branch().Name()
	if err != nil {
		return "", fmt.Errorf("get branch name: %w", err)
	}

	return name, nil
}

// RemoteExists reports whether a remote with the given name is configured.
func (r *Repository) RemoteExists(name string) bool {
	remote, err := r.repo.Remotes.Lookup(name)
	if err != nil {
		return false
	}
	remote.Free()

	return true
}

// headTree returns the tree of the HEAD commit, or nil when HEAD is unborn.
// The caller must Free a non-nil tree.
func (r *Repository) headTree() (*git2go.Tree, error) {
	unborn, err := r.repo.IsHeadUnborn()
	if err != nil {
		return nil, fmt.Errorf("check unborn HEAD: %w", err)
	}

	if unborn {
		return nil, nil
	}

	ref, err := r.repo.Head()
	if err != nil {
		return nil, fmt.Errorf("get HEAD: %w", err)
	}
	defer ref.Free()

	commit, err := r.repo.LookupCommit(ref.Target())
	if err != nil {
		return nil, fmt.Errorf("lookup HEAD commit: %w", err)
	}
	defer commit.Free()

	tree, err := commit.Tree()
	if err != nil {
		return nil, fmt.Errorf("get HEAD tree: %w", err)
	}

	return tree, nil
}

func shortBranchName(ref string) string {
	const prefix = "refs/heads/"
	if len(ref) > len(prefix) && ref[:len(prefix)] == prefix {
		return ref[len(prefix):]
	}

	return ref
}
