package catalog

import "slices"

// README styles.
const (
	ReadmeStandard = "standard"
	ReadmeMinimal  = "minimal"
	ReadmeExpanded = "expanded"
)

// Linter ids.
const (
	ESLint   = "eslint"
	Prettier = "prettier"
)

var readmeStyles = []string{ReadmeStandard, ReadmeMinimal, ReadmeExpanded}

var linters = []string{ESLint, Prettier}

// ReadmeStyles returns the README style ids.
func ReadmeStyles() []string {
	return slices.Clone(readmeStyles)
}

// IsReadmeStyle reports whether s names a README style.
func IsReadmeStyle(s string) bool {
	return slices.Contains(readmeStyles, s)
}

// LintersFor returns the linters available for lang. Only the npm
// ecosystem has linter scaffolding.
func LintersFor(lang string) []string {
	if IsJavaScriptFamily(lang) {
		return slices.Clone(linters)
	}
	return nil
}
