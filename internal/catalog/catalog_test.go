package catalog

import (
	"slices"
	"testing"
)

func TestIsFrameworkFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		framework string
		lang      string
		want      bool
	}{
		{"express", TypeScript, true},
		{"express", JavaScript, true},
		{"angular", JavaScript, false},
		{"angular", TypeScript, true},
		{"fastapi", Python, true},
		{"fastapi", Go, false},
		{NoFramework, Swift, true},
		{NoFramework, "cobol", true},
		{"unknown", JavaScript, false},
	}

	for _, tt := range tests {
		t.Run(tt.framework+"/"+tt.lang, func(t *testing.T) {
			t.Parallel()
			if got := IsFrameworkFor(tt.framework, tt.lang); got != tt.want {
				t.Errorf("IsFrameworkFor(%q, %q) = %v, want %v", tt.framework, tt.lang, got, tt.want)
			}
		})
	}
}

func TestFrameworksFor_EveryFrameworkDeclaresKnownLanguages(t *testing.T) {
	t.Parallel()

	for _, f := range Frameworks() {
		if len(f.Languages) == 0 {
			t.Errorf("framework %q declares no languages", f.ID)
		}
		for _, l := range f.Languages {
			if _, ok := LookupLanguage(l); !ok {
				t.Errorf("framework %q declares unknown language %q", f.ID, l)
			}
		}
	}

	if got := FrameworksFor(Swift); len(got) != 0 {
		t.Errorf("FrameworksFor(swift) = %d frameworks, want 0", len(got))
	}
}

func TestIsPackageManagerFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		pm   string
		lang string
		want bool
	}{
		{"npm", JavaScript, true},
		{"pnpm", TypeScript, true},
		{"npm", Python, false},
		{"poetry", Python, true},
		{"go", Go, true},
		{"", Swift, true},
		{"", JavaScript, false},
		{"maven", Java, false},
	}

	for _, tt := range tests {
		if got := IsPackageManagerFor(tt.pm, tt.lang); got != tt.want {
			t.Errorf("IsPackageManagerFor(%q, %q) = %v, want %v", tt.pm, tt.lang, got, tt.want)
		}
	}
}

func TestDefaultPackageManager(t *testing.T) {
	t.Parallel()

	if got := DefaultPackageManager(TypeScript); got != "npm" {
		t.Errorf("DefaultPackageManager(typescript) = %q, want %q", got, "npm")
	}
	if got := DefaultPackageManager(Kotlin); got != "" {
		t.Errorf("DefaultPackageManager(kotlin) = %q, want empty", got)
	}
}

func TestPackageManagerForLockFile(t *testing.T) {
	t.Parallel()

	pm, ok := PackageManagerForLockFile("yarn.lock")
	if !ok || pm.ID != "yarn" {
		t.Errorf("PackageManagerForLockFile(yarn.lock) = %q, %v", pm.ID, ok)
	}
	if _, ok := PackageManagerForLockFile("requirements.txt"); ok {
		t.Error("requirements.txt must not be treated as a lockfile")
	}
}

func TestLicenses_ContainsNone(t *testing.T) {
	t.Parallel()

	if !slices.Contains(LicenseIDs(), NoLicense) {
		t.Errorf("LicenseIDs() missing %q", NoLicense)
	}
	l, ok := LookupLicense("apache2")
	if !ok || l.URL == "" {
		t.Errorf("LookupLicense(apache2) = %+v, %v", l, ok)
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	t.Parallel()

	langs := Languages()
	langs[0].ID = "mutated"
	if l, _ := LookupLanguage(JavaScript); l.ID != JavaScript {
		t.Error("Languages() must return a copy")
	}
}

func TestLintersFor(t *testing.T) {
	t.Parallel()

	if got := LintersFor(TypeScript); !slices.Equal(got, []string{ESLint, Prettier}) {
		t.Errorf("LintersFor(typescript) = %v", got)
	}
	if got := LintersFor(Python); got != nil {
		t.Errorf("LintersFor(python) = %v, want nil", got)
	}
}
