// Package vcs wraps the git operations the CLI performs around a generation
// run: initializing a repository in a fresh project and committing the
// generated tree so later incremental runs diff cleanly.
package vcs

import (
	"time"

	"github.com/cockroachdb/errors"
	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// Repo is an open working-tree repository.
type Repo struct {
	repo *git.Repository
}

// Init creates a repository at dir, or opens the one already there.
func Init(dir string) (*Repo, error) {
	repo, err := git.PlainInit(dir, false)
	if errors.Is(err, git.ErrRepositoryAlreadyExists) {
		repo, err = git.PlainOpen(dir)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "init repository at %s", dir)
	}
	return &Repo{repo: repo}, nil
}

// Open opens the repository at dir.
func Open(dir string) (*Repo, error) {
	repo, err := git.PlainOpen(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "open repository at %s", dir)
	}
	return &Repo{repo: repo}, nil
}

// CommitAll stages every change in the working tree and commits it. Returns
// the commit hash as a string.
func (r *Repo) CommitAll(message string) (string, error) {
	wt, err := r.repo.Worktree()
	if err != nil {
		return "", errors.Wrap(err, "worktree")
	}
	if err := wt.AddGlob("."); err != nil {
		return "", errors.Wrap(err, "stage changes")
	}
	hash, err := wt.Commit(message, &git.CommitOptions{
		Author: &object.Signature{
			Name:  "mycodegent",
			Email: "mycodegent@localhost",
			When:  time.Now(),
		},
	})
	if err != nil {
		return "", errors.Wrap(err, "commit")
	}
	return hash.String(), nil
}

// Dirty reports whether the working tree has uncommitted changes. The CLI
// refuses incremental runs on a dirty tree unless forced, so a failed run
// never mixes with hand edits.
func (r *Repo) Dirty() (bool, error) {
	wt, err := r.repo.Worktree()
	if err != nil {
		return false, errors.Wrap(err, "worktree")
	}
	status, err := wt.Status()
	if err != nil {
		return false, errors.Wrap(err, "status")
	}
	return !status.IsClean(), nil
}

// ChangedFiles returns the paths with uncommitted changes.
func (r *Repo) ChangedFiles() ([]string, error) {
	wt, err := r.repo.Worktree()
	if err != nil {
		return nil, errors.Wrap(err, "worktree")
	}
	status, err := wt.Status()
	if err != nil {
		return nil, errors.Wrap(err, "status")
	}
	out := make([]string, 0, len(status))
	for path, s := range status {
		if s.Worktree != git.Unmodified || s.Staging != git.Unmodified {
			out = append(out, path)
		}
	}
	return out, nil
}
