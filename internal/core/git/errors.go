// Package git drives the system git binary for the repository operations
// BlazeStart needs: init, stage, commit and clone.
package git

import "errors"

// Sentinel errors for the git package.
var (
	// ErrSystemGitNotFound indicates no git binary is on PATH.
	ErrSystemGitNotFound = errors.New("git executable not found")

	// ErrNotRepository indicates the path is not inside a git repository.
	ErrNotRepository = errors.New("not a git repository")

	// ErrNothingToCommit indicates a commit was requested on a clean tree.
	ErrNothingToCommit = errors.New("nothing to commit")

	// ErrDestinationExists indicates a clone target already exists.
	ErrDestinationExists = errors.New("clone destination already exists")
)
