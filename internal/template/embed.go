package template

import (
	"embed"
	"fmt"
	"io/fs"
)

//go:embed all:templates
var embedded embed.FS

// EmbeddedTemplates returns the built-in template tree rooted at templates/.
func EmbeddedTemplates() (fs.FS, error) {
	sub, err := fs.Sub(embedded, "templates")
	if err != nil {
		return nil, fmt.Errorf("open embedded templates: %w", err)
	}
	return sub, nil
}

// EntryTemplatePath returns the template path for a language/framework pair.
func EntryTemplatePath(language, framework string) string {
	return "entry/" + language + "/" + framework + ".tmpl"
}

// LicenseTemplatePath returns the template path for a license id.
func LicenseTemplatePath(id string) string {
	return "license/" + id + ".tmpl"
}

// ReadmeTemplatePath returns the template path for a README style.
func ReadmeTemplatePath(style string) string {
	return "readme/" + style + ".md.tmpl"
}
