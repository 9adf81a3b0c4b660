// Package fork turns a cloned repository into a new project: it derives
// the name from the URL, clears history, rewrites the README and
// package.json, swaps the license and detects the package manager.
package fork

import "errors"

// Sentinel errors for fork operations.
var (
	// ErrInvalidURL indicates a repository reference that is not an https
	// URL, an scp-style git@ address or a user/repo shorthand.
	ErrInvalidURL = errors.New("fork: invalid repository URL")

	// ErrNoManifest indicates the repository has no package.json to rewrite.
	ErrNoManifest = errors.New("fork: no package.json")

	// ErrNoReadme indicates the repository has no README to rewrite.
	ErrNoReadme = errors.New("fork: no README")

	// ErrNoPackageManager indicates no lock file or manifest was recognized.
	ErrNoPackageManager = errors.New("fork: package manager not detected")
)
