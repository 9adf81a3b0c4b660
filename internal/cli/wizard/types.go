// Package wizard asks for the project options that flags and the
// selected profile left unset, one huh form per question.
package wizard

import (
	"errors"

	"github.com/blazestart/blazestart/internal/options"
)

// QuestionType represents the kind of prompt.
type QuestionType int

const (
	// QuestionTypeSelect is a single-choice selection.
	QuestionTypeSelect QuestionType = iota
	// QuestionTypeInput is a text input.
	QuestionTypeInput
	// QuestionTypeMultiSelect is a multiple-choice selection.
	QuestionTypeMultiSelect
	// QuestionTypeConfirm is a yes/no question.
	QuestionTypeConfirm
)

// Question defines a single wizard question.
type Question struct {
	ID          string
	Type        QuestionType
	Title       string
	Description string
	// Options lists the choices. OptionsFunc, when set, computes them from
	// the answers so far and takes precedence.
	Options     []Option
	OptionsFunc func(*options.Options) []Option
	Default     string
	Required    bool
	// Validate checks input answers.
	Validate func(string) error
	// Condition hides the question when it returns false.
	Condition func(*options.Options) bool
}

// Option represents a selectable choice.
type Option struct {
	Label string
	Value string
	Desc  string
}

// Question ids. Each maps to one options.Options field.
const (
	IDName           = "name"
	IDDescription    = "description"
	IDLanguage       = "language"
	IDFramework      = "framework"
	IDPackageManager = "packageManager"
	IDLicense        = "license"
	IDReadmeStyle    = "readmeStyle"
	IDLinters        = "linters"
	IDIgnoreFile     = "includeIgnoreFile"
	IDHooks          = "setupVcsHooks"
	IDInitVCS        = "initVcs"
	IDRemote         = "createRemoteRepo"
	IDInstall        = "installDependencies"
	IDOpenEditor     = "openEditor"
)

// Error definitions for the wizard package.
var (
	// ErrCancelled is returned when the user aborts the wizard.
	ErrCancelled = errors.New("wizard cancelled by user")
	// ErrNoQuestions is returned when no questions are provided.
	ErrNoQuestions = errors.New("no questions provided")
)

// resolveOptions returns the choices for q given the answers so far.
func resolveOptions(q *Question, result *options.Options) []Option {
	if q.OptionsFunc != nil {
		return q.OptionsFunc(result)
	}
	return q.Options
}
