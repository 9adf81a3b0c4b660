// Package github drives the GitHub CLI (gh) to create the remote
// repository of a freshly generated project.
package github

import "errors"

// Sentinel errors for the github package.
var (
	// ErrGHNotFound indicates the gh binary is not on PATH.
	ErrGHNotFound = errors.New("gh CLI not found")

	// ErrGHNotAuthenticated indicates gh has no valid login for github.com.
	ErrGHNotAuthenticated = errors.New("gh CLI not authenticated")

	// ErrRepoCreate indicates gh failed to create the repository.
	ErrRepoCreate = errors.New("repository creation failed")
)
