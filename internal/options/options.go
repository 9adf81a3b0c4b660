package options

import (
	"regexp"
	"slices"
	"strings"

	"github.com/blazestart/blazestart/internal/catalog"
)

var (
	namePattern     = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
	sanitizePattern = regexp.MustCompile(`[^a-z0-9-]`)
)

// Options is a partial option set. Every field may be unset so that flags,
// a saved profile and interactive answers can be layered with Merge. It is
// also the on-disk shape of a profile.
type Options struct {
	Name                string   `json:"name,omitempty" yaml:"name,omitempty"`
	Description         string   `json:"description,omitempty" yaml:"description,omitempty"`
	Author              string   `json:"author,omitempty" yaml:"author,omitempty"`
	Language            string   `json:"language,omitempty" yaml:"language,omitempty"`
	Framework           string   `json:"framework,omitempty" yaml:"framework,omitempty"`
	License             string   `json:"license,omitempty" yaml:"license,omitempty"`
	PackageManager      string   `json:"packageManager,omitempty" yaml:"packageManager,omitempty"`
	ReadmeStyle         string   `json:"readmeStyle,omitempty" yaml:"readmeStyle,omitempty"`
	Linters             []string `json:"linters,omitempty" yaml:"linters,omitempty"`
	IncludeIgnoreFile   *bool    `json:"includeIgnoreFile,omitempty" yaml:"includeIgnoreFile,omitempty"`
	SetupVCSHooks       *bool    `json:"setupVcsHooks,omitempty" yaml:"setupVcsHooks,omitempty"`
	InitVCS             *bool    `json:"initVcs,omitempty" yaml:"initVcs,omitempty"`
	CreateRemoteRepo    *bool    `json:"createRemoteRepo,omitempty" yaml:"createRemoteRepo,omitempty"`
	InstallDependencies *bool    `json:"installDependencies,omitempty" yaml:"installDependencies,omitempty"`
	OpenEditor          *bool    `json:"openEditor,omitempty" yaml:"openEditor,omitempty"`
}

// Bool returns a pointer to b, for populating the tri-state fields.
func Bool(b bool) *bool {
	return &b
}

// Merge layers over on top of base: every field set in over wins. When
// over switches the language, base fields bound to the old language
// (framework, package manager, linters) are kept only if the new language
// accepts them.
func Merge(base, over Options) Options {
	out := base
	if over.Language != "" && over.Language != base.Language {
		out = out.dropForeignToLanguage(over.Language)
	}
	setString(&out.Name, over.Name)
	setString(&out.Description, over.Description)
	setString(&out.Author, over.Author)
	setString(&out.Language, over.Language)
	setString(&out.Framework, over.Framework)
	setString(&out.License, over.License)
	setString(&out.PackageManager, over.PackageManager)
	setString(&out.ReadmeStyle, over.ReadmeStyle)
	if over.Linters != nil {
		out.Linters = slices.Clone(over.Linters)
	}
	setBool(&out.IncludeIgnoreFile, over.IncludeIgnoreFile)
	setBool(&out.SetupVCSHooks, over.SetupVCSHooks)
	setBool(&out.InitVCS, over.InitVCS)
	setBool(&out.CreateRemoteRepo, over.CreateRemoteRepo)
	setBool(&out.InstallDependencies, over.InstallDependencies)
	setBool(&out.OpenEditor, over.OpenEditor)
	return out
}

func (o Options) dropForeignToLanguage(lang string) Options {
	if o.Framework != "" && !catalog.IsFrameworkFor(o.Framework, lang) {
		o.Framework = ""
	}
	if o.PackageManager != "" && !catalog.IsPackageManagerFor(o.PackageManager, lang) {
		o.PackageManager = ""
	}
	if o.Linters != nil {
		allowed := catalog.LintersFor(lang)
		var kept []string
		for _, l := range o.Linters {
			if slices.Contains(allowed, l) {
				kept = append(kept, l)
			}
		}
		o.Linters = kept
	}
	return o
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setBool(dst **bool, v *bool) {
	if v != nil {
		b := *v
		*dst = &b
	}
}

// Resolved is a complete, validated option set. Synthesizers only ever
// receive a Resolved value.
type Resolved struct {
	Name                string
	Description         string
	Author              string
	Language            string
	Framework           string
	License             string
	PackageManager      string
	ReadmeStyle         string
	Linters             []string
	IncludeIgnoreFile   bool
	SetupVCSHooks       bool
	InitVCS             bool
	CreateRemoteRepo    bool
	InstallDependencies bool
	OpenEditor          bool
}

// WithDefaults fills every unset field with its default. Defaults that
// depend on the language (package manager, install) are only applied when
// the language is known.
func (o Options) WithDefaults() Options {
	out := o
	if out.Framework == "" {
		out.Framework = catalog.NoFramework
	}
	if out.License == "" {
		out.License = "mit"
	}
	if out.ReadmeStyle == "" {
		out.ReadmeStyle = catalog.ReadmeStandard
	}
	if out.PackageManager == "" {
		out.PackageManager = catalog.DefaultPackageManager(out.Language)
	}
	if out.IncludeIgnoreFile == nil {
		out.IncludeIgnoreFile = Bool(true)
	}
	if out.SetupVCSHooks == nil {
		out.SetupVCSHooks = Bool(false)
	}
	if out.InitVCS == nil {
		out.InitVCS = Bool(true)
	}
	if out.CreateRemoteRepo == nil {
		out.CreateRemoteRepo = Bool(false)
	}
	if out.InstallDependencies == nil {
		out.InstallDependencies = Bool(catalog.IsJavaScriptFamily(out.Language))
	}
	if out.OpenEditor == nil {
		out.OpenEditor = Bool(false)
	}
	return out
}

// Resolve applies defaults, validates, and returns the resolved option set.
func (o Options) Resolve() (Resolved, error) {
	full := o.WithDefaults()
	if err := full.Validate(); err != nil {
		return Resolved{}, err
	}
	return Resolved{
		Name:                full.Name,
		Description:         strings.TrimSpace(full.Description),
		Author:              strings.TrimSpace(full.Author),
		Language:            full.Language,
		Framework:           full.Framework,
		License:             full.License,
		PackageManager:      full.PackageManager,
		ReadmeStyle:         full.ReadmeStyle,
		Linters:             canonicalLinters(full.Linters),
		IncludeIgnoreFile:   *full.IncludeIgnoreFile,
		SetupVCSHooks:       *full.SetupVCSHooks,
		InitVCS:             *full.InitVCS,
		CreateRemoteRepo:    *full.CreateRemoteRepo,
		InstallDependencies: *full.InstallDependencies,
		OpenEditor:          *full.OpenEditor,
	}, nil
}

// canonicalLinters dedupes the linter list into catalog order.
func canonicalLinters(in []string) []string {
	var out []string
	for _, l := range []string{catalog.ESLint, catalog.Prettier} {
		if slices.Contains(in, l) {
			out = append(out, l)
		}
	}
	return out
}

// Validate checks every field against the catalog. Unset optional fields
// are accepted; call WithDefaults first to validate a complete set.
func (o Options) Validate() error {
	errs := &ValidationErrors{}

	if err := ValidateName(o.Name); err != nil {
		errs.add("name", "must be non-empty and contain only letters, digits, '-' or '_'", o.Name, ErrInvalidName)
	}

	langKnown := false
	if _, ok := catalog.LookupLanguage(o.Language); ok {
		langKnown = true
	} else {
		errs.add("language", "unknown language", o.Language, ErrUnknownLanguage)
	}

	if langKnown && o.Framework != "" && !catalog.IsFrameworkFor(o.Framework, o.Language) {
		errs.add("framework", "not available for "+o.Language, o.Framework, ErrFrameworkMismatch)
	}

	if o.License != "" {
		if _, ok := catalog.LookupLicense(o.License); !ok {
			errs.add("license", "unknown license", o.License, ErrUnknownLicense)
		}
	}

	if langKnown && !catalog.IsPackageManagerFor(o.PackageManager, o.Language) {
		// An empty package manager is fine before defaults are applied.
		if o.PackageManager != "" {
			errs.add("packageManager", "not available for "+o.Language, o.PackageManager, ErrPackageManagerMismatch)
		}
	}

	if o.ReadmeStyle != "" && !catalog.IsReadmeStyle(o.ReadmeStyle) {
		errs.add("readmeStyle", "must be one of: "+strings.Join(catalog.ReadmeStyles(), ", "), o.ReadmeStyle, ErrUnknownReadmeStyle)
	}

	if langKnown {
		allowed := catalog.LintersFor(o.Language)
		for _, l := range o.Linters {
			if !slices.Contains(allowed, l) {
				errs.add("linters", "not available for "+o.Language, l, ErrLinterUnsupported)
			}
		}
	}

	if o.CreateRemoteRepo != nil && *o.CreateRemoteRepo && (o.InitVCS == nil || !*o.InitVCS) {
		errs.add("createRemoteRepo", "requires initVcs", nil, ErrRemoteRequiresVCS)
	}

	if len(errs.Errors) > 0 {
		return errs
	}
	return nil
}

// ValidateName checks that name is a portable directory and package name.
func ValidateName(name string) error {
	if !namePattern.MatchString(name) {
		return ErrInvalidName
	}
	return nil
}

// SanitizeName lowercases name and replaces every character outside
// [a-z0-9-] with '-'. It is used for manifest identifiers only.
func SanitizeName(name string) string {
	return sanitizePattern.ReplaceAllString(strings.ToLower(name), "-")
}

// SanitizedName returns the manifest-safe form of the project name.
func (r Resolved) SanitizedName() string {
	return SanitizeName(r.Name)
}

// HasLinter reports whether the linter id was requested.
func (r Resolved) HasLinter(id string) bool {
	return slices.Contains(r.Linters, id)
}

// IsTypeScript reports whether the project language is TypeScript.
func (r Resolved) IsTypeScript() bool {
	return r.Language == catalog.TypeScript
}

// IsJavaScriptFamily reports whether the project uses the npm ecosystem.
func (r Resolved) IsJavaScriptFamily() bool {
	return catalog.IsJavaScriptFamily(r.Language)
}

// Options converts the resolved set back into a fully populated Options,
// suitable for saving as a profile.
func (r Resolved) Options() Options {
	return Options{
		Name:                r.Name,
		Description:         r.Description,
		Author:              r.Author,
		Language:            r.Language,
		Framework:           r.Framework,
		License:             r.License,
		PackageManager:      r.PackageManager,
		ReadmeStyle:         r.ReadmeStyle,
		Linters:             slices.Clone(r.Linters),
		IncludeIgnoreFile:   Bool(r.IncludeIgnoreFile),
		SetupVCSHooks:       Bool(r.SetupVCSHooks),
		InitVCS:             Bool(r.InitVCS),
		CreateRemoteRepo:    Bool(r.CreateRemoteRepo),
		InstallDependencies: Bool(r.InstallDependencies),
		OpenEditor:          Bool(r.OpenEditor),
	}
}
