package wizard

import (
	"path/filepath"

	"github.com/blazestart/blazestart/internal/catalog"
	"github.com/blazestart/blazestart/internal/options"
)

const defaultProjectName = "my-project"

// DefaultQuestions returns every question in asking order. projectDir
// seeds the default project name.
func DefaultQuestions(projectDir string) []Question {
	defaultName := defaultProjectName
	if projectDir != "" {
		if base := filepath.Base(projectDir); base != "." && base != string(filepath.Separator) {
			defaultName = base
		}
	}
	if options.ValidateName(defaultName) != nil {
		defaultName = defaultProjectName
	}

	return []Question{
		{
			ID:          IDName,
			Type:        QuestionTypeInput,
			Title:       "Project name",
			Description: "Letters, digits, '-' and '_' only.",
			Default:     defaultName,
			Required:    true,
			Validate:    options.ValidateName,
		},
		{
			ID:          IDDescription,
			Type:        QuestionTypeInput,
			Title:       "Description",
			Description: "One line for the README and manifest. Press Enter to skip.",
		},
		{
			ID:      IDLanguage,
			Type:    QuestionTypeSelect,
			Title:   "Language",
			Options: languageOptions(),
			Default: catalog.TypeScript,
		},
		{
			ID:          IDFramework,
			Type:        QuestionTypeSelect,
			Title:       "Framework",
			OptionsFunc: frameworkOptions,
			Default:     catalog.NoFramework,
		},
		{
			ID:          IDPackageManager,
			Type:        QuestionTypeSelect,
			Title:       "Package manager",
			OptionsFunc: packageManagerOptions,
			Condition: func(r *options.Options) bool {
				return len(catalog.PackageManagersFor(r.Language)) > 1
			},
		},
		{
			ID:      IDLicense,
			Type:    QuestionTypeSelect,
			Title:   "License",
			Options: licenseOptions(),
			Default: "mit",
		},
		{
			ID:    IDReadmeStyle,
			Type:  QuestionTypeSelect,
			Title: "README style",
			Options: []Option{
				{Label: "Standard", Value: catalog.ReadmeStandard, Desc: "install, usage and structure"},
				{Label: "Minimal", Value: catalog.ReadmeMinimal, Desc: "title and description only"},
				{Label: "Expanded", Value: catalog.ReadmeExpanded, Desc: "badges, quick start and contributing"},
			},
			Default: catalog.ReadmeStandard,
		},
		{
			ID:          IDLinters,
			Type:        QuestionTypeMultiSelect,
			Title:       "Linters",
			Description: "Space to toggle, Enter to confirm.",
			OptionsFunc: linterOptions,
			Condition:   func(r *options.Options) bool { return catalog.IsJavaScriptFamily(r.Language) },
		},
		{
			ID:      IDIgnoreFile,
			Type:    QuestionTypeConfirm,
			Title:   "Add a .gitignore?",
			Default: "true",
		},
		{
			ID:      IDInitVCS,
			Type:    QuestionTypeConfirm,
			Title:   "Initialize a git repository?",
			Default: "true",
		},
		{
			ID:        IDHooks,
			Type:      QuestionTypeConfirm,
			Title:     "Set up pre-commit hooks?",
			Default:   "false",
			Condition: isTrue(func(r *options.Options) *bool { return r.InitVCS }),
		},
		{
			ID:        IDRemote,
			Type:      QuestionTypeConfirm,
			Title:     "Create a GitHub repository?",
			Default:   "false",
			Condition: isTrue(func(r *options.Options) *bool { return r.InitVCS }),
		},
		{
			ID:    IDInstall,
			Type:  QuestionTypeConfirm,
			Title: "Install dependencies now?",
			Condition: func(r *options.Options) bool {
				return len(catalog.PackageManagersFor(r.Language)) > 0
			},
			Default: "true",
		},
		{
			ID:      IDOpenEditor,
			Type:    QuestionTypeConfirm,
			Title:   "Open the project in VS Code?",
			Default: "false",
		},
	}
}

// Unanswered returns the questions whose field is unset in base.
func Unanswered(questions []Question, base options.Options) []Question {
	out := make([]Question, 0, len(questions))
	for _, q := range questions {
		if !isAnswered(q.ID, base) {
			out = append(out, q)
		}
	}
	return out
}

// FilteredQuestions returns the questions whose condition holds for result.
func FilteredQuestions(questions []Question, result *options.Options) []Question {
	filtered := make([]Question, 0, len(questions))
	for _, q := range questions {
		if q.Condition == nil || q.Condition(result) {
			filtered = append(filtered, q)
		}
	}
	return filtered
}

// QuestionByID finds a question by its ID.
func QuestionByID(questions []Question, id string) *Question {
	for i := range questions {
		if questions[i].ID == id {
			return &questions[i]
		}
	}
	return nil
}

func isAnswered(id string, o options.Options) bool {
	switch id {
	case IDName:
		return o.Name != ""
	case IDDescription:
		return o.Description != ""
	case IDLanguage:
		return o.Language != ""
	case IDFramework:
		return o.Framework != ""
	case IDPackageManager:
		return o.PackageManager != ""
	case IDLicense:
		return o.License != ""
	case IDReadmeStyle:
		return o.ReadmeStyle != ""
	case IDLinters:
		return o.Linters != nil
	case IDIgnoreFile:
		return o.IncludeIgnoreFile != nil
	case IDHooks:
		return o.SetupVCSHooks != nil
	case IDInitVCS:
		return o.InitVCS != nil
	case IDRemote:
		return o.CreateRemoteRepo != nil
	case IDInstall:
		return o.InstallDependencies != nil
	case IDOpenEditor:
		return o.OpenEditor != nil
	}
	return false
}

func isTrue(field func(*options.Options) *bool) func(*options.Options) bool {
	return func(r *options.Options) bool {
		v := field(r)
		return v == nil || *v
	}
}

func languageOptions() []Option {
	langs := catalog.Languages()
	opts := make([]Option, len(langs))
	for i, l := range langs {
		opts[i] = Option{Label: l.Name, Value: l.ID}
	}
	return opts
}

func frameworkOptions(r *options.Options) []Option {
	opts := []Option{{Label: "None", Value: catalog.NoFramework, Desc: "plain " + catalog.LanguageName(r.Language)}}
	for _, f := range catalog.FrameworksFor(r.Language) {
		opts = append(opts, Option{Label: f.Name, Value: f.ID, Desc: f.Description})
	}
	return opts
}

func packageManagerOptions(r *options.Options) []Option {
	var opts []Option
	for _, pm := range catalog.PackageManagersFor(r.Language) {
		opts = append(opts, Option{Label: pm.Name, Value: pm.ID})
	}
	return opts
}

func licenseOptions() []Option {
	lics := catalog.Licenses()
	opts := make([]Option, len(lics))
	for i, l := range lics {
		opts[i] = Option{Label: l.Name, Value: l.ID}
	}
	return opts
}

func linterOptions(r *options.Options) []Option {
	var opts []Option
	for _, id := range catalog.LintersFor(r.Language) {
		label := "ESLint"
		if id == catalog.Prettier {
			label = "Prettier"
		}
		opts = append(opts, Option{Label: label, Value: id})
	}
	return opts
}
