package cli

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/blazestart/blazestart/internal/cli/wizard"
	"github.com/blazestart/blazestart/internal/output"
)

// confirmFunc asks a yes/no question. Tests replace it.
var confirmFunc = func(title, description string, def bool) (bool, error) {
	value := def
	err := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(title).
			Description(description).
			Affirmative("Yes").
			Negative("No").
			Value(&value),
	)).WithTheme(wizard.NewTheme()).Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("prompt: %w", err)
	}
	return value, nil
}

// inputFunc asks for a line of text. Tests replace it.
var inputFunc = func(title, placeholder string, validate func(string) error) (string, error) {
	var value string
	in := huh.NewInput().Title(title).Placeholder(placeholder).Value(&value)
	if validate != nil {
		in = in.Validate(validate)
	}
	err := huh.NewForm(huh.NewGroup(in)).WithTheme(wizard.NewTheme()).Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return "", wizard.ErrCancelled
	}
	if err != nil {
		return "", fmt.Errorf("prompt: %w", err)
	}
	return value, nil
}

// wizardFunc runs the option wizard. Tests replace it.
var wizardFunc = wizard.Run

// interactive reports whether prompts may be shown.
var interactive = output.IsTTY
