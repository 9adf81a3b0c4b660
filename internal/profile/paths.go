package profile

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/blazestart/blazestart/internal/defs"
)

// ConfigHome returns the directory holding config.json and profiles/.
// BLAZESTART_CONFIG_HOME wins over the default ~/.blazestart.
func ConfigHome() (string, error) {
	if dir := os.Getenv(defs.EnvConfigHome); dir != "" {
		return filepath.Clean(dir), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, defs.ConfigHomeDir), nil
}

// ProfilesDir returns the profile directory under home.
func ProfilesDir(home string) string {
	return filepath.Join(home, defs.ProfilesDir)
}

// SettingsFile returns the settings file path under home.
func SettingsFile(home string) string {
	return filepath.Join(home, defs.ConfigJSON)
}

// atomicWrite writes data through a temp file in the same directory and
// renames it into place.
func atomicWrite(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, defs.DirPerm); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, ".profile-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Chmod(perm); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	return os.Rename(tmpName, path)
}
