package wizard

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/blazestart/blazestart/internal/options"
)

// Brand colors.
const (
	ColorPrimary   = "#FF8C42"
	ColorSecondary = "#FFD166"
	ColorSuccess   = "#06D6A0"
	ColorError     = "#EF476F"
	ColorText      = "#F8F9FA"
	ColorMuted     = "#6C757D"
	ColorBorder    = "#495057"
)

// Run asks every question in order, starting from base, and returns base
// with the answers applied. Each question runs as its own huh.Form so
// that later questions can depend on earlier answers.
func Run(questions []Question, base options.Options) (options.Options, error) {
	if len(questions) == 0 {
		return base, ErrNoQuestions
	}

	result := base
	theme := NewTheme()

	for i := range questions {
		q := &questions[i]
		if q.Condition != nil && !q.Condition(&result) {
			continue
		}
		field := buildField(q, &result)
		if field == nil {
			continue
		}

		form := huh.NewForm(huh.NewGroup(field)).
			WithTheme(theme).
			WithAccessible(false)

		if err := form.Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return base, ErrCancelled
			}
			return base, fmt.Errorf("wizard error: %w", err)
		}
	}

	return result, nil
}

// buildField creates the huh field for q. It returns nil for a choice
// question with no choices.
func buildField(q *Question, result *options.Options) huh.Field {
	switch q.Type {
	case QuestionTypeSelect:
		return buildSelectField(q, result)
	case QuestionTypeMultiSelect:
		return buildMultiSelectField(q, result)
	case QuestionTypeConfirm:
		return buildConfirmField(q, result)
	default:
		return buildInputField(q, result)
	}
}

func buildSelectField(q *Question, result *options.Options) huh.Field {
	choices := resolveOptions(q, result)
	if len(choices) == 0 {
		return nil
	}

	// The default goes first: huh scrolls the viewport to the selected
	// index and would hide the options above it.
	selected := choices[0].Value
	opts := make([]huh.Option[string], 0, len(choices))
	for _, c := range choices {
		if c.Value == q.Default {
			selected = c.Value
			opts = append([]huh.Option[string]{huh.NewOption(optionKey(c), c.Value)}, opts...)
			continue
		}
		opts = append(opts, huh.NewOption(optionKey(c), c.Value))
	}
	saveAnswer(q.ID, selected, result)

	id := q.ID
	return huh.NewSelect[string]().
		Title(q.Title).
		Description(q.Description).
		Options(opts...).
		Value(&selected).
		Validate(func(val string) error {
			saveAnswer(id, val, result)
			return nil
		})
}

func buildMultiSelectField(q *Question, result *options.Options) huh.Field {
	choices := resolveOptions(q, result)
	if len(choices) == 0 {
		return nil
	}

	opts := make([]huh.Option[string], len(choices))
	for i, c := range choices {
		opts[i] = huh.NewOption(optionKey(c), c.Value)
	}

	selected := []string{}
	saveList(q.ID, selected, result)

	id := q.ID
	return huh.NewMultiSelect[string]().
		Title(q.Title).
		Description(q.Description).
		Options(opts...).
		Value(&selected).
		Validate(func(vals []string) error {
			saveList(id, vals, result)
			return nil
		})
}

func buildConfirmField(q *Question, result *options.Options) huh.Field {
	value, _ := strconv.ParseBool(q.Default)
	saveAnswer(q.ID, strconv.FormatBool(value), result)

	id := q.ID
	return huh.NewConfirm().
		Title(q.Title).
		Description(q.Description).
		Affirmative("Yes").
		Negative("No").
		Value(&value).
		Validate(func(v bool) error {
			saveAnswer(id, strconv.FormatBool(v), result)
			return nil
		})
}

func buildInputField(q *Question, result *options.Options) huh.Field {
	var value string
	inp := huh.NewInput().
		Title(q.Title).
		Description(q.Description).
		Value(&value)
	if q.Default != "" {
		inp = inp.Placeholder(q.Default)
	}

	id, required, defVal, check := q.ID, q.Required, q.Default, q.Validate
	return inp.Validate(func(val string) error {
		v := strings.TrimSpace(val)
		if v == "" {
			v = defVal
		}
		if required && v == "" {
			return errors.New("a value is required")
		}
		if check != nil && v != "" {
			if err := check(v); err != nil {
				return err
			}
		}
		saveAnswer(id, v, result)
		return nil
	})
}

func optionKey(o Option) string {
	if o.Desc != "" {
		return o.Label + " - " + o.Desc
	}
	return o.Label
}

// saveAnswer stores a scalar answer in result.
func saveAnswer(id, value string, result *options.Options) {
	switch id {
	case IDName:
		result.Name = value
	case IDDescription:
		result.Description = value
	case IDLanguage:
		result.Language = value
	case IDFramework:
		result.Framework = value
	case IDPackageManager:
		result.PackageManager = value
	case IDLicense:
		result.License = value
	case IDReadmeStyle:
		result.ReadmeStyle = value
	case IDIgnoreFile:
		result.IncludeIgnoreFile = parseBool(value)
	case IDHooks:
		result.SetupVCSHooks = parseBool(value)
	case IDInitVCS:
		result.InitVCS = parseBool(value)
	case IDRemote:
		result.CreateRemoteRepo = parseBool(value)
	case IDInstall:
		result.InstallDependencies = parseBool(value)
	case IDOpenEditor:
		result.OpenEditor = parseBool(value)
	}
}

// saveList stores a multi-choice answer in result.
func saveList(id string, values []string, result *options.Options) {
	if id == IDLinters {
		result.Linters = append([]string{}, values...)
	}
}

func parseBool(s string) *bool {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return nil
	}
	return options.Bool(b)
}

// NewTheme creates a huh.Theme in the BlazeStart palette.
func NewTheme() *huh.Theme {
	t := huh.ThemeBase()

	primary := lipgloss.AdaptiveColor{Light: "#D9480F", Dark: ColorPrimary}
	secondary := lipgloss.AdaptiveColor{Light: "#B08900", Dark: ColorSecondary}
	green := lipgloss.AdaptiveColor{Light: "#059669", Dark: ColorSuccess}
	red := lipgloss.AdaptiveColor{Light: "#DC2626", Dark: ColorError}
	text := lipgloss.AdaptiveColor{Light: "#111827", Dark: ColorText}
	muted := lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: ColorMuted}
	border := lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: ColorBorder}

	t.Focused.Base = t.Focused.Base.BorderForeground(border)
	t.Focused.Card = t.Focused.Base
	t.Focused.Title = t.Focused.Title.Foreground(primary).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(muted)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(red)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(red)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(primary).SetString("▸ ")
	t.Focused.Option = t.Focused.Option.Foreground(text)
	t.Focused.MultiSelectSelector = t.Focused.MultiSelectSelector.Foreground(primary)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(green)
	t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(green).SetString("◆ ")
	t.Focused.UnselectedOption = t.Focused.UnselectedOption.Foreground(text)
	t.Focused.UnselectedPrefix = lipgloss.NewStyle().Foreground(muted).SetString("◇ ")
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(primary)
	t.Focused.TextInput.Placeholder = t.Focused.TextInput.Placeholder.Foreground(muted)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(secondary)
	t.Focused.FocusedButton = t.Focused.FocusedButton.
		Foreground(lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#1A1A1A"}).
		Background(primary)
	t.Focused.BlurredButton = t.Focused.BlurredButton.
		Foreground(text).
		Background(lipgloss.AdaptiveColor{Light: "#E5E7EB", Dark: "#343A40"})

	t.Blurred = t.Focused
	t.Blurred.Base = t.Focused.Base.BorderStyle(lipgloss.HiddenBorder())
	t.Blurred.Card = t.Blurred.Base

	t.Group.Title = t.Focused.Title
	t.Group.Description = t.Focused.Description

	return t
}
