package synth

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/blazestart/blazestart/internal/catalog"
	"github.com/blazestart/blazestart/internal/options"
)

// placeholderScripts are filled with a failing command when no rule sets them.
var placeholderScripts = []string{"start", "dev", "build", "lint", "format"}

const testScript = `echo "Error: no test specified" && exit 1`

// PackageJSON is the package.json document. Field order is the output order.
type PackageJSON struct {
	Name            string            `json:"name"`
	Version         string            `json:"version"`
	Description     string            `json:"description"`
	Main            string            `json:"main,omitempty"`
	Type            string            `json:"type,omitempty"`
	Scripts         map[string]string `json:"scripts"`
	Keywords        []string          `json:"keywords"`
	Author          string            `json:"author"`
	License         string            `json:"license"`
	Dependencies    map[string]string `json:"dependencies,omitempty"`
	DevDependencies map[string]string `json:"devDependencies,omitempty"`
}

// PyProject is the poetry flavoured pyproject.toml document.
type PyProject struct {
	Tool        PyProjectTool `toml:"tool"`
	BuildSystem BuildSystem   `toml:"build-system"`
}

// PyProjectTool holds the [tool] tables.
type PyProjectTool struct {
	Poetry Poetry `toml:"poetry"`
}

// Poetry is the [tool.poetry] table.
type Poetry struct {
	Name            string            `toml:"name"`
	Version         string            `toml:"version"`
	Description     string            `toml:"description"`
	Authors         []string          `toml:"authors"`
	Dependencies    map[string]string `toml:"dependencies"`
	DevDependencies map[string]string `toml:"dev-dependencies"`
}

// BuildSystem is the PEP 517 [build-system] table.
type BuildSystem struct {
	Requires     []string `toml:"requires"`
	BuildBackend string   `toml:"build-backend"`
}

// CargoToml is the Cargo.toml document.
type CargoToml struct {
	Package      CargoPackage   `toml:"package"`
	Dependencies map[string]any `toml:"dependencies"`
}

// CargoPackage is the [package] table.
type CargoPackage struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
	Edition string `toml:"edition"`
}

// CrateSpec is a dependency entry that carries features.
type CrateSpec struct {
	Version  string   `toml:"version"`
	Features []string `toml:"features"`
}

// Manifest is the structured manifest for one project. Only the variant
// matching Language is populated; languages without a manifest format get
// an empty Manifest with HasFiles false.
type Manifest struct {
	Language string

	// Scripts are the named run commands, also shown in the README.
	Scripts map[string]string

	PackageJSON  *PackageJSON
	Requirements []string
	PyProject    *PyProject
	GoMod        string
	Cargo        *CargoToml
}

// HasFiles reports whether the manifest serializes to at least one file.
func (m *Manifest) HasFiles() bool {
	return m.PackageJSON != nil || m.PyProject != nil || m.GoMod != "" || m.Cargo != nil
}

// Artifacts serializes the manifest into its files.
func (m *Manifest) Artifacts() ([]Artifact, error) {
	var out []Artifact
	if m.PackageJSON != nil {
		b, err := marshalJSON(m.PackageJSON)
		if err != nil {
			return nil, fmt.Errorf("marshal package.json: %w", err)
		}
		out = append(out, Artifact{Path: "package.json", Content: b})
	}
	if m.PyProject != nil {
		var reqs string
		if len(m.Requirements) > 0 {
			reqs = strings.Join(m.Requirements, "\n") + "\n"
		}
		out = append(out, Artifact{Path: "requirements.txt", Content: reqs})
		b, err := toml.Marshal(m.PyProject)
		if err != nil {
			return nil, fmt.Errorf("marshal pyproject.toml: %w", err)
		}
		out = append(out, Artifact{Path: "pyproject.toml", Content: string(b)})
	}
	if m.GoMod != "" {
		out = append(out, Artifact{Path: "go.mod", Content: m.GoMod})
	}
	if m.Cargo != nil {
		b, err := toml.Marshal(m.Cargo)
		if err != nil {
			return nil, fmt.Errorf("marshal Cargo.toml: %w", err)
		}
		out = append(out, Artifact{Path: "Cargo.toml", Content: string(b)})
	}
	return out, nil
}

// marshalJSON renders v as 2-space indented JSON without HTML escaping, so
// shell operators in scripts survive verbatim.
func marshalJSON(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Description returns the project description, or the generated default.
func Description(r options.Resolved) string {
	if r.Description != "" {
		return r.Description
	}
	subject := r.Language
	if _, ok := catalog.LookupFramework(r.Framework); ok && r.Framework != catalog.NoFramework {
		subject = r.Framework
	}
	return fmt.Sprintf("A %s project created with %s", subject, Brand)
}

// Manifest builds the manifest for the resolved options.
func (s *Synthesizer) Manifest(r options.Resolved) *Manifest {
	switch r.Language {
	case catalog.JavaScript, catalog.TypeScript:
		return s.nodeManifest(r)
	case catalog.Python:
		return s.pythonManifest(r)
	case catalog.Go:
		return s.goManifest(r)
	case catalog.Rust:
		return s.rustManifest(r)
	default:
		return &Manifest{Language: r.Language, Scripts: map[string]string{}}
	}
}

func (s *Synthesizer) nodeManifest(r options.Resolved) *Manifest {
	ts := r.Language == catalog.TypeScript
	pkg := &PackageJSON{
		Name:        r.SanitizedName(),
		Version:     "1.0.0",
		Description: Description(r),
		Scripts:     map[string]string{},
		Author:      r.Author,
		License:     licenseSPDX(r.License),
	}
	if r.Framework != catalog.NoFramework {
		pkg.Keywords = append(pkg.Keywords, r.Framework)
	}
	pkg.Keywords = append(pkg.Keywords, r.Language, strings.ToLower(Brand))

	// Language skeleton.
	if ts {
		pkg.Main = "dist/index.js"
		pkg.Scripts["build"] = "tsc"
		pkg.Scripts["dev"] = "ts-node src/index.ts"
		pkg.Scripts["start"] = "node dist/index.js"
		pkg.Scripts["watch"] = "tsc -w"
	} else {
		pkg.Main = "src/index.js"
		pkg.Scripts["start"] = "node src/index.js"
		pkg.Scripts["dev"] = "nodemon src/index.js"
	}

	deps := map[string]string{}
	devDeps := map[string]string{}
	addAll := func(dst map[string]string, names []string) {
		for _, n := range names {
			dst[n] = s.version(NPM, n)
		}
	}

	// Framework rule.
	if rule, ok := LookupRule(r.Language, r.Framework); ok {
		addAll(deps, rule.Dependencies)
		addAll(devDeps, rule.DevDependencies)
		maps.Copy(pkg.Scripts, rule.Scripts)
		if rule.ESModule {
			pkg.Type = "module"
		}
	}

	// Type definitions, or the plain JavaScript reloader.
	if ts {
		addAll(devDeps, []string{"typescript", "@types/node", "ts-node"})
		addAll(devDeps, typeDefinitions[r.Framework])
	} else {
		addAll(devDeps, []string{"nodemon"})
	}

	// Linters.
	if r.HasLinter(catalog.ESLint) {
		addAll(devDeps, []string{"eslint"})
		pkg.Scripts["lint"] = "eslint ."
		if ts {
			addAll(devDeps, []string{"@typescript-eslint/eslint-plugin", "@typescript-eslint/parser"})
		}
		switch r.Framework {
		case "react", "next":
			addAll(devDeps, []string{"eslint-plugin-react", "eslint-plugin-react-hooks"})
		case "vue", "nuxt":
			addAll(devDeps, []string{"eslint-plugin-vue"})
		}
	}
	if r.HasLinter(catalog.Prettier) {
		addAll(devDeps, []string{"prettier"})
		pkg.Scripts["format"] = "prettier --write ."
		if r.HasLinter(catalog.ESLint) {
			addAll(devDeps, []string{"eslint-config-prettier", "eslint-plugin-prettier"})
		}
	}

	// Language-global additions.
	pkg.Scripts["test"] = testScript
	for _, name := range placeholderScripts {
		if _, ok := pkg.Scripts[name]; !ok {
			pkg.Scripts[name] = fmt.Sprintf(`echo "Error: %s not implemented" && exit 1`, name)
		}
	}

	if len(deps) > 0 {
		pkg.Dependencies = deps
	}
	if len(devDeps) > 0 {
		pkg.DevDependencies = devDeps
	}

	return &Manifest{
		Language:    r.Language,
		Scripts:     pkg.Scripts,
		PackageJSON: pkg,
	}
}

func (s *Synthesizer) pythonManifest(r options.Resolved) *Manifest {
	scripts := map[string]string{
		"start": "python src/main.py",
		"dev":   "python src/main.py",
		"test":  "pytest",
	}
	var requirements []string
	poetryDeps := map[string]string{"python": "^3.9"}

	if rule, ok := LookupRule(r.Language, r.Framework); ok {
		for _, name := range rule.Requirements {
			v := s.version(PyPI, name)
			requirements = append(requirements, pinRequirement(name, v))
			poetryDeps[name] = caretVersion(v)
		}
		maps.Copy(scripts, rule.Scripts)
	}

	devDeps := map[string]string{}
	for _, name := range []string{"pytest", "black", "flake8"} {
		devDeps[name] = caretVersion(s.version(PyPI, name))
	}

	author := "Your Name <you@example.com>"
	if r.Author != "" {
		author = r.Author
	}

	return &Manifest{
		Language:     r.Language,
		Scripts:      scripts,
		Requirements: requirements,
		PyProject: &PyProject{
			Tool: PyProjectTool{Poetry: Poetry{
				Name:            r.SanitizedName(),
				Version:         "0.1.0",
				Description:     Description(r),
				Authors:         []string{author},
				Dependencies:    poetryDeps,
				DevDependencies: devDeps,
			}},
			BuildSystem: BuildSystem{
				Requires:     []string{"poetry-core>=1.0.0"},
				BuildBackend: "poetry.core.masonry.api",
			},
		},
	}
}

func pinRequirement(name, version string) string {
	if version == fallbackVersions[PyPI] {
		return name
	}
	return name + "==" + version
}

func caretVersion(version string) string {
	if version == fallbackVersions[PyPI] {
		return version
	}
	return "^" + version
}

func (s *Synthesizer) goManifest(r options.Resolved) *Manifest {
	name := r.SanitizedName()
	var b strings.Builder
	fmt.Fprintf(&b, "module %s\n\ngo 1.21\n", name)

	if rule, ok := LookupRule(r.Language, r.Framework); ok && len(rule.GoRequires) > 0 {
		b.WriteString("\nrequire (\n")
		for _, mod := range rule.GoRequires {
			fmt.Fprintf(&b, "\t%s %s\n", mod, s.version(GoModules, mod))
		}
		b.WriteString(")\n")
	}

	return &Manifest{
		Language: r.Language,
		Scripts: map[string]string{
			"start": "go run .",
			"dev":   "go run .",
			"build": "go build -o bin/" + name + " .",
			"test":  "go test ./...",
		},
		GoMod: b.String(),
	}
}

func (s *Synthesizer) rustManifest(r options.Resolved) *Manifest {
	deps := map[string]any{}
	if rule, ok := LookupRule(r.Language, r.Framework); ok {
		for _, c := range rule.Crates {
			v := s.version(Crates, c.Name)
			if len(c.Features) == 0 {
				deps[c.Name] = v
				continue
			}
			deps[c.Name] = CrateSpec{Version: v, Features: slices.Clone(c.Features)}
		}
	}

	return &Manifest{
		Language: r.Language,
		Scripts: map[string]string{
			"start": "cargo run",
			"dev":   "cargo run",
			"build": "cargo build --release",
			"test":  "cargo test",
		},
		Cargo: &CargoToml{
			Package: CargoPackage{
				Name:    r.SanitizedName(),
				Version: "0.1.0",
				Edition: "2021",
			},
			Dependencies: deps,
		},
	}
}

func licenseSPDX(id string) string {
	if l, ok := catalog.LookupLicense(id); ok {
		return l.SPDX
	}
	return "UNLICENSED"
}
