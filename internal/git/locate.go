// Package git locates the repository a configuration document belongs to.
// It resolves the worktree root for config-file discovery and the current
// HEAD branch name. It never reads history.
package git

import (
	"fmt"

	gogit "github.com/go-git/go-git/v5"
)

// Repository is a located git repository.
type Repository struct {
	repo    *gogit.Repository
	workDir string
}

// Open opens the git repository containing path, walking up parent
// directories to find the .git directory.
func Open(path string) (*Repository, error) {
	r, err := gogit.PlainOpenWithOptions(path, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening git repository at %s: %w", path, err)
	}

	wt, err := r.Worktree()
	if err != nil {
		return nil, fmt.Errorf("getting worktree: %w", err)
	}

	return &Repository{repo: r, workDir: wt.Filesystem.Root()}, nil
}

// WorkingDirectory returns the worktree root.
func (r *Repository) WorkingDirectory() string {
	return r.workDir
}

// CurrentBranch returns the short name of the branch HEAD points at.
// Detached HEAD is an error: there is no branch name to resolve.
func (r *Repository) CurrentBranch() (string, error) {
	ref, err := r.repo.Head()
	if err != nil {
		return "", fmt.Errorf("getting HEAD: %w", err)
	}
	if !ref.Name().IsBranch() {
		return "", fmt.Errorf("HEAD is detached at %s", ref.Hash())
	}
	return ref.Name().Short(), nil
}
