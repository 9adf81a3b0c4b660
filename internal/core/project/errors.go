// Package project writes a synthesized project plan to disk. It is the
// only part of the core that touches the filesystem: directories first,
// then each generation step's files in order.
package project

import "errors"

// Sentinel errors for the project package.
var (
	// ErrInvalidRoot indicates the target directory is missing or not a directory.
	ErrInvalidRoot = errors.New("invalid project root path")

	// ErrGenerateFailed indicates a generation step failed to write its output.
	ErrGenerateFailed = errors.New("generation failed")
)
