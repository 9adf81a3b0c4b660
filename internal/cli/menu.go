package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/blazestart/blazestart/internal/cli/wizard"
	"github.com/blazestart/blazestart/internal/fork"
	"github.com/blazestart/blazestart/internal/output"
)

// Menu entries.
const (
	menuCreate   = "create"
	menuInit     = "init"
	menuFork     = "fork"
	menuProfiles = "profiles"
	menuList     = "list"
	menuQuit     = "quit"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Choose what to do from an interactive menu",
	Args:  cobra.NoArgs,
	RunE:  runMenu,
}

func init() {
	rootCmd.AddCommand(menuCmd)
}

// menuSelectFunc asks which action to run. Tests replace it.
var menuSelectFunc = func() (string, error) {
	choice := menuCreate
	err := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("What would you like to do?").
			Options(
				huh.NewOption("Create a new project", menuCreate),
				huh.NewOption("Initialize the current directory", menuInit),
				huh.NewOption("Fork a repository", menuFork),
				huh.NewOption("Show saved profiles", menuProfiles),
				huh.NewOption("List languages and frameworks", menuList),
				huh.NewOption("Quit", menuQuit),
			).
			Value(&choice),
	)).WithTheme(wizard.NewTheme()).Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return menuQuit, nil
	}
	if err != nil {
		return "", fmt.Errorf("menu: %w", err)
	}
	return choice, nil
}

func runMenu(cmd *cobra.Command, _ []string) error {
	if !interactive() {
		return NewUserError("the menu needs an interactive terminal; run blazestart --help for commands")
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), output.StyleTitle.Render("BlazeStart"))

	choice, err := menuSelectFunc()
	if err != nil {
		return NewSystemErrorWithCause("menu", err)
	}

	var (
		target *cobra.Command
		args   []string
	)
	switch choice {
	case menuCreate:
		target = createCmd
	case menuInit:
		target = initCmd
	case menuFork:
		url, err := inputFunc("Repository", "user/repo or https://...", func(s string) error {
			_, err := fork.ParseRepoURL(strings.TrimSpace(s))
			return err
		})
		if err != nil {
			return finish(cmd, err)
		}
		target, args = forkCmd, []string{strings.TrimSpace(url)}
	case menuProfiles:
		target = configListCmd
	case menuList:
		target = listCmd
	default:
		return nil
	}

	target.SetContext(cmd.Context())
	target.SetOut(cmd.OutOrStdout())
	target.SetErr(cmd.ErrOrStderr())
	return target.RunE(target, args)
}
