package steps

import "errors"

// Sentinel errors for steps.
var (
	// ErrToolNotFound indicates an external program is not on PATH.
	ErrToolNotFound = errors.New("steps: tool not found in PATH")

	// ErrNoInstallCommand indicates the package manager has no install argv.
	ErrNoInstallCommand = errors.New("steps: package manager has no install command")
)
