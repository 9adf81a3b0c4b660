package profile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/blazestart/blazestart/internal/defs"
	"github.com/blazestart/blazestart/internal/options"
)

// Export formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Store reads and writes profiles as <dir>/<name>.json.
type Store struct {
	dir string
}

// NewStore returns a Store rooted at dir. The directory is created on
// the first Save.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the profile directory.
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) path(name string) (string, error) {
	if err := ValidateName(name); err != nil {
		return "", err
	}
	return filepath.Join(s.dir, name+defs.ProfileExt), nil
}

// ValidateName checks a profile name.
func ValidateName(name string) error {
	if options.ValidateName(name) != nil {
		return fmt.Errorf("%w: %q", ErrInvalidProfileName, name)
	}
	return nil
}

// List returns the saved profile names in lexical order. A missing
// directory yields an empty list.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read profiles: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != defs.ProfileExt {
			continue
		}
		name := strings.TrimSuffix(e.Name(), defs.ProfileExt)
		if ValidateName(name) == nil {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names, nil
}

// Exists reports whether a profile with name is saved.
func (s *Store) Exists(name string) bool {
	p, err := s.path(name)
	if err != nil {
		return false
	}
	_, err = os.Stat(p)
	return err == nil
}

// Load reads the named profile.
func (s *Store) Load(name string) (options.Options, error) {
	p, err := s.path(name)
	if err != nil {
		return options.Options{}, err
	}
	data, err := os.ReadFile(p)
	if errors.Is(err, fs.ErrNotExist) {
		return options.Options{}, fmt.Errorf("%w: %s", ErrProfileNotFound, name)
	}
	if err != nil {
		return options.Options{}, fmt.Errorf("read profile %s: %w", name, err)
	}

	var opts options.Options
	if err := json.Unmarshal(data, &opts); err != nil {
		return options.Options{}, fmt.Errorf("%w: %s: %w", ErrInvalidJSON, name, err)
	}
	return opts, nil
}

// Save writes opts under name, replacing any existing profile.
func (s *Store) Save(name string, opts options.Options) error {
	p, err := s.path(name)
	if err != nil {
		return err
	}
	data, err := encodeJSON(opts)
	if err != nil {
		return fmt.Errorf("encode profile %s: %w", name, err)
	}
	if err := atomicWrite(p, data, defs.FilePerm); err != nil {
		return fmt.Errorf("save profile %s: %w", name, err)
	}
	return nil
}

// Delete removes the named profile.
func (s *Store) Delete(name string) error {
	p, err := s.path(name)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrProfileNotFound, name)
		}
		return fmt.Errorf("delete profile %s: %w", name, err)
	}
	return nil
}

// Export writes the named profile to w as JSON or YAML.
func (s *Store) Export(name string, w io.Writer, format string) error {
	opts, err := s.Load(name)
	if err != nil {
		return err
	}

	var data []byte
	switch format {
	case "", FormatJSON:
		data, err = encodeJSON(opts)
	case FormatYAML:
		data, err = yaml.Marshal(opts)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return fmt.Errorf("encode profile %s: %w", name, err)
	}
	_, err = w.Write(data)
	return err
}

// Import decodes a JSON or YAML profile from r and saves it as name.
func (s *Store) Import(r io.Reader, name string) (options.Options, error) {
	if err := ValidateName(name); err != nil {
		return options.Options{}, err
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return options.Options{}, fmt.Errorf("read import: %w", err)
	}
	opts, err := decodeProfile(data)
	if err != nil {
		return options.Options{}, err
	}
	if err := s.Save(name, opts); err != nil {
		return options.Options{}, err
	}
	return opts, nil
}

// ImportName derives a profile name from an import file path.
func ImportName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func decodeProfile(data []byte) (options.Options, error) {
	var opts options.Options
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return opts, fmt.Errorf("%w: empty input", ErrInvalidJSON)
	}

	if trimmed[0] == '{' {
		if err := json.Unmarshal(trimmed, &opts); err != nil {
			return opts, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
		}
		return opts, nil
	}
	if err := yaml.Unmarshal(trimmed, &opts); err != nil {
		return opts, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return opts, nil
}

func encodeJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
