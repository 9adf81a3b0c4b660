// Package profile persists named option sets and the global settings
// file under the BlazeStart config home.
package profile

import "errors"

// Sentinel errors for profile and settings operations.
var (
	// ErrProfileNotFound indicates no profile file exists for the name.
	ErrProfileNotFound = errors.New("profile: not found")

	// ErrInvalidProfileName indicates a name outside [A-Za-z0-9_-]+.
	ErrInvalidProfileName = errors.New("profile: name must match [A-Za-z0-9_-]+")

	// ErrInvalidJSON indicates a profile file or import that does not decode.
	ErrInvalidJSON = errors.New("profile: invalid profile data")

	// ErrUnsupportedFormat indicates an export format other than json or yaml.
	ErrUnsupportedFormat = errors.New("profile: unsupported format")

	// ErrUnknownKey indicates a settings key with no value.
	ErrUnknownKey = errors.New("settings: unknown key")

	// ErrInvalidKey indicates an empty or malformed settings key.
	ErrInvalidKey = errors.New("settings: invalid key")
)
