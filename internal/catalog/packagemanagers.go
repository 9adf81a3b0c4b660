package catalog

import "slices"

// PackageManager describes a dependency manager and how to drive it.
type PackageManager struct {
	ID        string
	Name      string
	Languages []string
	LockFile  string
	// Install is the argv that installs the project's dependencies.
	Install []string
	// Run is the command prefix used to invoke a named script.
	Run string
}

var packageManagers = []PackageManager{
	{ID: "npm", Name: "npm", Languages: jsts, LockFile: "package-lock.json", Install: []string{"npm", "install"}, Run: "npm run"},
	{ID: "yarn", Name: "Yarn", Languages: jsts, LockFile: "yarn.lock", Install: []string{"yarn"}, Run: "yarn"},
	{ID: "pnpm", Name: "pnpm", Languages: jsts, LockFile: "pnpm-lock.yaml", Install: []string{"pnpm", "install"}, Run: "pnpm"},
	{ID: "pip", Name: "pip", Languages: []string{Python}, LockFile: "requirements.txt", Install: []string{"pip", "install", "-r", "requirements.txt"}, Run: "python"},
	{ID: "poetry", Name: "Poetry", Languages: []string{Python}, LockFile: "poetry.lock", Install: []string{"poetry", "install"}, Run: "poetry run"},
	{ID: "cargo", Name: "Cargo", Languages: []string{Rust}, LockFile: "Cargo.lock", Install: []string{"cargo", "build"}, Run: "cargo"},
	{ID: "go", Name: "Go Modules", Languages: []string{Go}, LockFile: "go.sum", Install: []string{"go", "mod", "tidy"}, Run: "go"},
	{ID: "bundler", Name: "Bundler", Languages: []string{Ruby}, LockFile: "Gemfile.lock", Install: []string{"bundle", "install"}, Run: "bundle exec"},
	{ID: "composer", Name: "Composer", Languages: []string{PHP}, LockFile: "composer.lock", Install: []string{"composer", "install"}, Run: "composer"},
	{ID: "nuget", Name: "NuGet", Languages: []string{CSharp}, LockFile: "packages.lock.json", Install: []string{"dotnet", "restore"}, Run: "dotnet"},
}

// PackageManagers returns every package manager.
func PackageManagers() []PackageManager {
	return slices.Clone(packageManagers)
}

// PackageManagersFor returns the package managers usable with lang.
func PackageManagersFor(lang string) []PackageManager {
	var out []PackageManager
	for _, pm := range packageManagers {
		if slices.Contains(pm.Languages, lang) {
			out = append(out, pm)
		}
	}
	return out
}

// LookupPackageManager returns the package manager with the given identifier.
func LookupPackageManager(id string) (PackageManager, bool) {
	for _, pm := range packageManagers {
		if pm.ID == id {
			return pm, true
		}
	}
	return PackageManager{}, false
}

// IsPackageManagerFor reports whether pm may be used with lang. Languages
// without any package manager accept only the empty id.
func IsPackageManagerFor(pm, lang string) bool {
	if pm == "" {
		return len(PackageManagersFor(lang)) == 0
	}
	p, ok := LookupPackageManager(pm)
	return ok && slices.Contains(p.Languages, lang)
}

// DefaultPackageManager returns the first package manager listed for lang,
// or "" when the language has none.
func DefaultPackageManager(lang string) string {
	if pms := PackageManagersFor(lang); len(pms) > 0 {
		return pms[0].ID
	}
	return ""
}

// PackageManagerForLockFile maps a lockfile name back to its package manager.
// requirements.txt is not treated as a lockfile.
func PackageManagerForLockFile(name string) (PackageManager, bool) {
	for _, pm := range packageManagers {
		if pm.LockFile == name && pm.ID != "pip" {
			return pm, true
		}
	}
	return PackageManager{}, false
}
