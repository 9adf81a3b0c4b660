// Package defs holds file names, directory names and permissions shared
// across BlazeStart packages.
package defs

// Common file names used across the project.
const (
	// ConfigJSON is the global settings file under the config home.
	ConfigJSON = "config.json"

	// ProfileExt is the file extension of a saved profile.
	ProfileExt = ".json"

	// ReadmeMD is the README written into generated and forked projects.
	ReadmeMD = "README.md"

	// LicenseFile is the license file written into generated projects.
	LicenseFile = "LICENSE"

	// PackageJSON is the Node.js manifest rewritten by fork.
	PackageJSON = "package.json"
)

// Directory names.
const (
	// ConfigHomeDir is the config home directory under the user's home.
	ConfigHomeDir = ".blazestart"

	// ProfilesDir is the profile directory under the config home.
	ProfilesDir = "profiles"

	// GitDir is the version-control metadata directory.
	GitDir = ".git"
)

// Environment variables.
const (
	// EnvPrefix is the prefix for settings read from the environment.
	EnvPrefix = "BLAZESTART"

	// EnvConfigHome overrides the config home directory.
	EnvConfigHome = "BLAZESTART_CONFIG_HOME"
)

// File system permissions.
const (
	DirPerm  = 0o755
	FilePerm = 0o644
)

// LicenseFiles are the names a license file may have in an existing
// repository, in removal order.
var LicenseFiles = []string{"LICENSE", "LICENSE.md", "LICENSE.txt", "LICENCE"}
