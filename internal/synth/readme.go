package synth

import (
	"fmt"
	"slices"
	"strings"

	"github.com/blazestart/blazestart/internal/catalog"
	"github.com/blazestart/blazestart/internal/defs"
	"github.com/blazestart/blazestart/internal/options"
	"github.com/blazestart/blazestart/internal/template"
)

const defaultBadgeColor = "000000"

var badgeColors = map[string]string{
	catalog.JavaScript: "F7DF1E",
	catalog.TypeScript: "3178C6",
	catalog.Python:     "3776AB",
	catalog.Go:         "00ADD8",
	catalog.Rust:       "000000",
	catalog.Ruby:       "CC342D",
	catalog.PHP:        "777BB4",
	catalog.CSharp:     "239120",
}

var badgeLogos = map[string]string{
	catalog.CSharp: "dotnet",
	catalog.Cpp:    "cplusplus",
	catalog.Java:   "openjdk",
}

var prerequisites = map[string]string{
	catalog.JavaScript: "Node.js 18 or higher",
	catalog.TypeScript: "Node.js 18 or higher",
	catalog.Python:     "Python 3.9+",
	catalog.Go:         "Go 1.21+",
	catalog.Rust:       "Rust 1.70+",
	catalog.Ruby:       "Ruby 3.0+",
	catalog.PHP:        "PHP 8.1+",
	catalog.CSharp:     ".NET 8.0+",
	catalog.Java:       "JDK 17+",
	catalog.Kotlin:     "Kotlin 1.9+ and a JDK",
	catalog.Swift:      "Swift 5.9+",
	catalog.Cpp:        "A C++17 compiler",
}

var runCommands = map[string][]string{
	catalog.Python: {"# Run the application", "python src/main.py"},
	catalog.Go:     {"# Run the application", "go run .", "", "# Build a binary", "go build -o bin/%s ."},
	catalog.Rust:   {"# Run the application", "cargo run", "", "# Build for release", "cargo build --release"},
	catalog.Ruby:   {"# Run the application", "ruby app.rb"},
	catalog.PHP:    {"# Start the built-in server", "php -S localhost:8000 -t public"},
	catalog.CSharp: {"# Run the application", "dotnet run"},
	catalog.Java:   {"# Compile and run", "javac -d out src/main/java/Main.java && java -cp out Main"},
	catalog.Kotlin: {"# Compile and run", "kotlinc src/main/kotlin/Main.kt -include-runtime -d main.jar && java -jar main.jar"},
	catalog.Swift:  {"# Run the application", "swift Sources/main.swift"},
	catalog.Cpp:    {"# Compile and run", "g++ -std=c++17 -o main src/main.cpp && ./main"},
}

var frameworkRunCommands = map[ruleKey][]string{
	{catalog.Python, "flask"}:   {"", "# Development server", "flask --app src/main run --debug"},
	{catalog.Python, "fastapi"}: {"", "# Development server", "uvicorn src.main:app --reload"},
	{catalog.Ruby, "sinatra"}:   {"", "# Or through Rack", "bundle exec rackup"},
}

var testCommands = map[string]string{
	catalog.Python: "pytest",
	catalog.Go:     "go test ./...",
	catalog.Rust:   "cargo test",
	catalog.Ruby:   "bundle exec rake test",
	catalog.PHP:    "composer test",
	catalog.CSharp: "dotnet test",
}

// manifestFiles lists the manifest files shown in the project tree.
var manifestFiles = map[string][]string{
	catalog.JavaScript: {"package.json"},
	catalog.TypeScript: {"package.json"},
	catalog.Python:     {"pyproject.toml", "requirements.txt"},
	catalog.Go:         {"go.mod"},
	catalog.Rust:       {"Cargo.toml"},
}

type readmeData struct {
	Brand          string
	Name           string
	Description    string
	Stack          string
	LanguageName   string
	FrameworkName  string
	Badges         string
	QuickInstall   string
	QuickRun       string
	Install        []string
	Run            []string
	Test           string
	Tree           string
	Prerequisites  []string
	LicensePointer string
}

// Readme renders README.md in the requested style. Unknown styles render
// the standard variant.
func (s *Synthesizer) Readme(r options.Resolved) (Artifact, error) {
	style := r.ReadmeStyle
	if !catalog.IsReadmeStyle(style) {
		style = catalog.ReadmeStandard
	}
	out, err := s.renderer.Render(template.ReadmeTemplatePath(style), s.readmeData(r))
	if err != nil {
		return Artifact{}, fmt.Errorf("render readme %s: %w", style, err)
	}
	return Artifact{Path: "README.md", Content: string(out)}, nil
}

func (s *Synthesizer) readmeData(r options.Resolved) readmeData {
	d := readmeData{
		Brand:          Brand,
		Name:           r.Name,
		Description:    Description(r),
		LanguageName:   catalog.LanguageName(r.Language),
		Badges:         Badges(r),
		Install:        installCommands(r),
		Run:            runInstructions(r),
		Test:           testCommand(r),
		Tree:           projectTree(r),
		LicensePointer: licensePointer(r.License),
	}
	d.Stack = d.LanguageName
	if r.Framework != "" && r.Framework != catalog.NoFramework {
		d.FrameworkName = catalog.FrameworkName(r.Framework)
		d.Stack += " and " + d.FrameworkName
	}
	d.QuickInstall, d.QuickRun = quickStart(r)

	if p, ok := prerequisites[r.Language]; ok {
		d.Prerequisites = append(d.Prerequisites, p)
	} else {
		d.Prerequisites = append(d.Prerequisites, "The "+d.LanguageName+" toolchain")
	}
	d.Prerequisites = append(d.Prerequisites, "Git")
	return d
}

// Badges returns the shields.io badge row: language, framework when set,
// license when set, and a static build badge.
func Badges(r options.Resolved) string {
	color, ok := badgeColors[r.Language]
	if !ok {
		color = defaultBadgeColor
	}
	logo, ok := badgeLogos[r.Language]
	if !ok {
		logo = r.Language
	}

	badges := []string{
		fmt.Sprintf("![%s](https://img.shields.io/badge/%s-%s?style=for-the-badge&logo=%s&logoColor=white)",
			r.Language, shieldsEscape(r.Language), color, logo),
	}
	if r.Framework != "" && r.Framework != catalog.NoFramework {
		badges = append(badges, fmt.Sprintf("![%s](https://img.shields.io/badge/%s-%s?style=for-the-badge&logo=%s&logoColor=white)",
			r.Framework, shieldsEscape(r.Framework), defaultBadgeColor, r.Framework))
	}
	if r.License != catalog.NoLicense {
		badges = append(badges, fmt.Sprintf("![License](https://img.shields.io/badge/license-%s-blue?style=for-the-badge)",
			shieldsEscape(licenseSPDX(r.License))))
	}
	badges = append(badges, "![Build Status](https://img.shields.io/badge/build-passing-brightgreen?style=for-the-badge)")
	return strings.Join(badges, " ")
}

// shieldsEscape doubles dashes and underscores, which shields.io treats as
// separators.
func shieldsEscape(s string) string {
	return strings.NewReplacer("-", "--", "_", "__").Replace(s)
}

func installCommand(r options.Resolved) (string, bool) {
	pm, ok := catalog.LookupPackageManager(r.PackageManager)
	if !ok {
		return "", false
	}
	return strings.Join(pm.Install, " "), true
}

func installCommands(r options.Resolved) []string {
	cmd, ok := installCommand(r)
	if !ok {
		return []string{"# See the documentation for installation instructions"}
	}
	var out []string
	if r.Language == catalog.Python && r.PackageManager == "pip" {
		out = append(out,
			"# Create a virtual environment",
			"python -m venv venv",
			`source venv/bin/activate  # On Windows: venv\Scripts\activate`,
			"",
		)
	}
	return append(out, "# Install dependencies", cmd)
}

// scriptRunner returns the prefix that runs a package.json script.
func scriptRunner(packageManager string) string {
	pm, ok := catalog.LookupPackageManager(packageManager)
	if !ok || pm.Run == "" {
		return "npm run"
	}
	return pm.Run
}

func runInstructions(r options.Resolved) []string {
	if catalog.IsJavaScriptFamily(r.Language) {
		run := scriptRunner(r.PackageManager)
		return []string{
			"# Development mode",
			run + " dev",
			"",
			"# Production build",
			run + " build",
			"",
			"# Start",
			run + " start",
		}
	}
	lines, ok := runCommands[r.Language]
	if !ok {
		return []string{"# See the documentation for usage instructions"}
	}
	out := make([]string, len(lines))
	for i, l := range lines {
		if strings.Contains(l, "%s") {
			l = fmt.Sprintf(l, r.SanitizedName())
		}
		out[i] = l
	}
	return append(out, frameworkRunCommands[ruleKey{r.Language, r.Framework}]...)
}

func testCommand(r options.Resolved) string {
	if catalog.IsJavaScriptFamily(r.Language) {
		if r.PackageManager == "" || r.PackageManager == "npm" {
			return "npm test"
		}
		return r.PackageManager + " test"
	}
	if cmd, ok := testCommands[r.Language]; ok {
		return cmd
	}
	return "# Run tests"
}

func quickStart(r options.Resolved) (install, run string) {
	install = "# See the documentation to install dependencies"
	if cmd, ok := installCommand(r); ok {
		install = cmd
	}
	run = "# See the documentation to run the project"
	if catalog.IsJavaScriptFamily(r.Language) {
		run = scriptRunner(r.PackageManager) + " start"
	} else if lines, ok := runCommands[r.Language]; ok && len(lines) > 1 {
		run = lines[1]
	}
	return install, run
}

func licensePointer(id string) string {
	if id == catalog.NoLicense {
		return "No license has been chosen for this project yet."
	}
	name := id
	if l, ok := catalog.LookupLicense(id); ok {
		name = l.Name
	}
	return fmt.Sprintf("Distributed under the %s. See [LICENSE](LICENSE) for details.", name)
}

// projectTree draws the directory plan and the files generated at the
// root as a box-drawing tree.
func projectTree(r options.Resolved) string {
	paths := Directories(r.Language, r.Framework)
	for i := range paths {
		paths[i] += "/"
	}
	if entry, ok := entryPaths[r.Language]; ok {
		paths = append(paths, entry)
	}
	paths = append(paths, "README.md")
	if r.License != catalog.NoLicense {
		paths = append(paths, defs.LicenseFile)
	}
	paths = append(paths, manifestFiles[r.Language]...)
	return renderTree(r.Name, paths)
}

type treeNode struct {
	name     string
	dir      bool
	children map[string]*treeNode
}

func renderTree(root string, paths []string) string {
	top := &treeNode{name: root, dir: true, children: map[string]*treeNode{}}
	for _, p := range paths {
		isDir := strings.HasSuffix(p, "/")
		parts := strings.Split(strings.TrimSuffix(p, "/"), "/")
		node := top
		for i, part := range parts {
			child, ok := node.children[part]
			if !ok {
				child = &treeNode{name: part, children: map[string]*treeNode{}}
				node.children[part] = child
			}
			if i < len(parts)-1 || isDir {
				child.dir = true
			}
			node = child
		}
	}

	var b strings.Builder
	b.WriteString(root + "/\n")
	writeTree(&b, top, "")
	return b.String()
}

func writeTree(b *strings.Builder, n *treeNode, prefix string) {
	children := make([]*treeNode, 0, len(n.children))
	for _, c := range n.children {
		children = append(children, c)
	}
	slices.SortFunc(children, func(a, c *treeNode) int {
		if a.dir != c.dir {
			if a.dir {
				return -1
			}
			return 1
		}
		return strings.Compare(a.name, c.name)
	})

	for i, c := range children {
		branch, indent := "├── ", "│   "
		if i == len(children)-1 {
			branch, indent = "└── ", "    "
		}
		name := c.name
		if c.dir {
			name += "/"
		}
		b.WriteString(prefix + branch + name + "\n")
		if c.dir {
			writeTree(b, c, prefix+indent)
		}
	}
}
