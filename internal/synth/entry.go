package synth

import (
	"errors"
	"fmt"

	"github.com/blazestart/blazestart/internal/catalog"
	"github.com/blazestart/blazestart/internal/options"
	"github.com/blazestart/blazestart/internal/template"
)

// noneFramework is the template consulted when a framework has no template.
const noneFramework = catalog.NoFramework

// entryPaths maps a language to its entry-point file.
var entryPaths = map[string]string{
	catalog.JavaScript: "src/index.js",
	catalog.TypeScript: "src/index.ts",
	catalog.Python:     "src/main.py",
	catalog.Go:         "main.go",
	catalog.Rust:       "src/main.rs",
	catalog.Ruby:       "app.rb",
	catalog.PHP:        "public/index.php",
	catalog.CSharp:     "Program.cs",
	catalog.Java:       "src/main/java/Main.java",
	catalog.Kotlin:     "src/main/kotlin/Main.kt",
	catalog.Swift:      "Sources/main.swift",
	catalog.Cpp:        "src/main.cpp",
}

// entryCompanions are extra files that only make sense next to one entry.
var entryCompanions = map[ruleKey][]Artifact{
	{catalog.Ruby, "sinatra"}: {
		{Path: "config.ru", Content: "require './app'\nrun Sinatra::Application\n"},
	},
}

// EntryPath returns the entry-point path for a language.
func EntryPath(language string) (string, bool) {
	p, ok := entryPaths[language]
	return p, ok
}

type entryData struct {
	Name        string
	Description string
}

// Entry renders the entry-point file for the pair. The framework template
// is tried first, then the language's plain template. When neither exists
// ok is false and the caller skips the file.
func (s *Synthesizer) Entry(r options.Resolved) (artifacts []Artifact, ok bool, err error) {
	path, known := entryPaths[r.Language]
	if !known {
		return nil, false, nil
	}

	data := entryData{Name: r.Name, Description: Description(r)}
	for _, fw := range []string{r.Framework, noneFramework} {
		name := template.EntryTemplatePath(r.Language, fw)
		if !s.renderer.Has(name) {
			continue
		}
		out, err := s.renderer.Render(name, data)
		if err != nil {
			if errors.Is(err, template.ErrTemplateNotFound) {
				continue
			}
			return nil, false, fmt.Errorf("render entry %s: %w", name, err)
		}
		artifacts = append(artifacts, Artifact{Path: path, Content: string(out)})
		if fw == r.Framework {
			artifacts = append(artifacts, entryCompanions[ruleKey{r.Language, fw}]...)
		}
		return artifacts, true, nil
	}
	return nil, false, nil
}
