package fork

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/blazestart/blazestart/internal/catalog"
)

// lockPrecedence lists lock files in the order they are trusted when a
// tree carries more than one.
var lockPrecedence = []string{
	"pnpm-lock.yaml",
	"yarn.lock",
	"package-lock.json",
	"poetry.lock",
	"Cargo.lock",
	"go.sum",
	"Gemfile.lock",
	"composer.lock",
	"packages.lock.json",
}

// manifestFallbacks map a manifest without a lock file to its package
// manager id.
var manifestFallbacks = []struct {
	file string
	pm   string
}{
	{"package.json", "npm"},
	{"pyproject.toml", "poetry"},
	{"requirements.txt", "pip"},
	{"Cargo.toml", "cargo"},
	{"go.mod", "go"},
	{"Gemfile", "bundler"},
	{"composer.json", "composer"},
}

// DetectPackageManager inspects dir for lock files, then bare manifests.
func DetectPackageManager(dir string) (catalog.PackageManager, error) {
	for _, lock := range lockPrecedence {
		if !exists(filepath.Join(dir, lock)) {
			continue
		}
		if pm, ok := catalog.PackageManagerForLockFile(lock); ok {
			return pm, nil
		}
	}
	for _, m := range manifestFallbacks {
		if !exists(filepath.Join(dir, m.file)) {
			continue
		}
		if pm, ok := catalog.LookupPackageManager(m.pm); ok {
			return pm, nil
		}
	}
	return catalog.PackageManager{}, fmt.Errorf("%w in %s", ErrNoPackageManager, dir)
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
