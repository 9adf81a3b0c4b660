package fork

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/blazestart/blazestart/internal/catalog"
	"github.com/blazestart/blazestart/internal/defs"
	"github.com/blazestart/blazestart/internal/synth"
)

// KeepLicense leaves the cloned license untouched.
const KeepLicense = "keep"

// ReplaceLicense removes every existing license file in dir and, unless
// id is none, writes a fresh LICENSE. It returns the removed file names.
func ReplaceLicense(s *synth.Synthesizer, dir, id, holder, project string) ([]string, error) {
	var removed []string
	for _, name := range defs.LicenseFiles {
		err := os.Remove(filepath.Join(dir, name))
		if err == nil {
			removed = append(removed, name)
			continue
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return removed, fmt.Errorf("remove %s: %w", name, err)
		}
	}

	if id == catalog.NoLicense {
		return removed, nil
	}
	art, err := s.LicenseFor(id, holder, project)
	if err != nil {
		return removed, err
	}
	if err := os.WriteFile(filepath.Join(dir, art.Path), []byte(art.Content), defs.FilePerm); err != nil {
		return removed, fmt.Errorf("write %s: %w", art.Path, err)
	}
	return removed, nil
}
