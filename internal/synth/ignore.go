package synth

import (
	"strings"

	"github.com/blazestart/blazestart/internal/catalog"
)

// fallbackIgnoreLanguage supplies the ignore table for languages without one.
const fallbackIgnoreLanguage = catalog.JavaScript

var editorPatterns = []string{".DS_Store", ".idea/", ".vscode/", "*.swp", "*.swo"}

var nodeEnvPatterns = []string{
	".env",
	".env.local",
	".env.*.local",
	"npm-debug.log*",
	"yarn-debug.log*",
	"yarn-error.log*",
}

var ignorePatterns = map[string][]string{
	catalog.JavaScript: concat(
		[]string{"node_modules/", "dist/", "build/"},
		nodeEnvPatterns,
		[]string{".DS_Store", "*.log", ".vscode/", ".idea/", "*.swp", "*.swo", "coverage/", ".nyc_output/"},
	),
	catalog.TypeScript: concat(
		[]string{"node_modules/", "dist/", "build/", "*.js", "!*.config.js", "*.js.map", "*.d.ts"},
		nodeEnvPatterns,
		[]string{".DS_Store", "*.log", ".vscode/", ".idea/", "*.swp", "*.swo", "coverage/", ".nyc_output/"},
	),
	catalog.Python: concat(
		[]string{
			"__pycache__/", "*.py[cod]", "*$py.class", "*.so", ".Python",
			"build/", "develop-eggs/", "dist/", "downloads/", "eggs/", ".eggs/",
			"lib/", "lib64/", "parts/", "sdist/", "var/", "wheels/",
			"*.egg-info/", ".installed.cfg", "*.egg", "MANIFEST",
			".env", ".venv", "env/", "venv/", "ENV/",
		},
		[]string{".DS_Store", ".vscode/", ".idea/", "*.swp", "*.swo"},
	),
	catalog.Go: concat(
		[]string{"*.exe", "*.exe~", "*.dll", "*.so", "*.dylib", "*.test", "*.out", "vendor/"},
		editorPatterns,
	),
	catalog.Rust: concat(
		[]string{"target/", "Cargo.lock", "**/*.rs.bk"},
		editorPatterns,
	),
	catalog.Ruby: concat(
		[]string{
			"*.gem", "*.rbc", "/.config", "/coverage/", "/InstalledFiles", "/pkg/",
			"/spec/reports/", "/spec/examples.txt", "/test/tmp/", "/test/version_tmp/", "/tmp/",
		},
		editorPatterns,
	),
	catalog.PHP: concat(
		[]string{"/vendor/", "composer.lock", ".env"},
		editorPatterns,
	),
	catalog.CSharp: concat(
		[]string{"bin/", "obj/", ".vs/", "*.user", "*.suo"},
		editorPatterns,
	),
}

func concat(groups ...[]string) []string {
	var out []string
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// IgnorePatterns returns the ignore patterns for a language. Languages
// without a table get the JavaScript patterns.
func IgnorePatterns(language string) []string {
	p, ok := ignorePatterns[language]
	if !ok {
		p = ignorePatterns[fallbackIgnoreLanguage]
	}
	return append([]string(nil), p...)
}

// IgnoreFile renders the .gitignore artifact.
func (s *Synthesizer) IgnoreFile(language string) Artifact {
	return Artifact{
		Path:    ".gitignore",
		Content: strings.Join(IgnorePatterns(language), "\n") + "\n",
	}
}
