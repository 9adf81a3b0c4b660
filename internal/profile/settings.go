package profile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/viper"

	"github.com/blazestart/blazestart/internal/defs"
)

// Well-known settings keys. Other keys may be stored freely. Keys are
// case-insensitive and written to disk in lower case.
const (
	KeyDefaultProfile = "defaultProfile"
	KeyGitHubToken    = "githubToken"
	KeyAuthor         = "author"
)

// NoProfile clears the default profile when passed to SetDefaultProfile.
const NoProfile = "none"

// settingsPerm keeps the GitHub token private to the user.
const settingsPerm = 0o600

// Settings is the global config.json, layered under BLAZESTART_*
// environment variables.
type Settings struct {
	v    *viper.Viper
	path string
}

// LoadSettings reads config.json under home. A missing file is not an
// error.
func LoadSettings(home string) (*Settings, error) {
	path := SettingsFile(home)

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	v.SetConfigPermissions(settingsPerm)
	v.SetEnvPrefix(defs.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read settings %s: %w", path, err)
		}
	}
	return &Settings{v: v, path: path}, nil
}

// Path returns the settings file path.
func (s *Settings) Path() string {
	return s.path
}

// Get returns the value stored under key.
func (s *Settings) Get(key string) (any, error) {
	if err := checkKey(key); err != nil {
		return nil, err
	}
	if !s.v.IsSet(key) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return s.v.Get(key), nil
}

// Set stores raw under key. raw is decoded as JSON when it parses, so
// "true", "3" and "[\"a\"]" keep their types. Anything else is a string.
func (s *Settings) Set(key, raw string) error {
	if err := checkKey(key); err != nil {
		return err
	}
	s.v.Set(key, decodeValue(raw))
	return s.save()
}

// All returns every stored setting, for display.
func (s *Settings) All() map[string]any {
	return s.v.AllSettings()
}

// Keys returns the stored keys in lexical order.
func (s *Settings) Keys() []string {
	keys := s.v.AllKeys()
	slices.Sort(keys)
	return keys
}

// DefaultProfile returns the profile applied when none is named.
func (s *Settings) DefaultProfile() string {
	name := s.v.GetString(KeyDefaultProfile)
	if name == NoProfile {
		return ""
	}
	return name
}

// SetDefaultProfile sets the default profile. NoProfile or "" clears it.
func (s *Settings) SetDefaultProfile(name string) error {
	if name == NoProfile {
		name = ""
	}
	s.v.Set(KeyDefaultProfile, name)
	return s.save()
}

// GitHubToken returns the token handed to gh, if any.
func (s *Settings) GitHubToken() string {
	return s.v.GetString(KeyGitHubToken)
}

// Author returns the default author name.
func (s *Settings) Author() string {
	return s.v.GetString(KeyAuthor)
}

func (s *Settings) save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), defs.DirPerm); err != nil {
		return fmt.Errorf("create config home: %w", err)
	}
	if err := s.v.WriteConfigAs(s.path); err != nil {
		return fmt.Errorf("write settings %s: %w", s.path, err)
	}
	return nil
}

func checkKey(key string) error {
	if strings.TrimSpace(key) == "" || strings.ContainsAny(key, " \t=") {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return nil
}

func decodeValue(raw string) any {
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err == nil {
		return v
	}
	return raw
}

// ParseAssignment splits "key=value" as accepted by config set.
func ParseAssignment(arg string) (key, value string, err error) {
	key, value, ok := strings.Cut(arg, "=")
	if !ok {
		return "", "", fmt.Errorf("%w: expected key=value, got %q", ErrInvalidKey, arg)
	}
	key = strings.TrimSpace(key)
	if err := checkKey(key); err != nil {
		return "", "", err
	}
	return key, value, nil
}
