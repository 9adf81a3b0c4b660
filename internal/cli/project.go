package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blazestart/blazestart/internal/catalog"
	"github.com/blazestart/blazestart/internal/cli/wizard"
	"github.com/blazestart/blazestart/internal/core/git"
	"github.com/blazestart/blazestart/internal/core/project"
	"github.com/blazestart/blazestart/internal/core/steps"
	"github.com/blazestart/blazestart/internal/github"
	"github.com/blazestart/blazestart/internal/options"
	"github.com/blazestart/blazestart/internal/output"
	"github.com/blazestart/blazestart/internal/profile"
	"github.com/blazestart/blazestart/internal/ui"
)

// errCancelled signals a clean stop requested by the user.
var errCancelled = errors.New("cancelled")

// loadBaseProfile returns the profile named by --config, else the default
// profile from settings, else empty options. A missing default profile
// only warns.
func loadBaseProfile(cmd *cobra.Command, d *Dependencies) (options.Options, error) {
	name := getStringFlag(cmd, "config")
	explicit := name != ""
	if !explicit {
		name = d.Settings.DefaultProfile()
	}
	if name == "" {
		return options.Options{}, nil
	}

	opts, err := d.Store.Load(name)
	if err != nil {
		if !explicit && errors.Is(err, profile.ErrProfileNotFound) {
			output.Warn("default profile not found, ignoring it", "profile", name)
			return options.Options{}, nil
		}
		return options.Options{}, NewUserErrorWithCause("load profile", err)
	}
	output.Debug("using profile", "profile", name)
	return opts, nil
}

// resolveProjectOptions fills unset fields through the wizard when
// prompting is allowed, then validates. dir seeds the default name.
func resolveProjectOptions(d *Dependencies, merged options.Options, dir string, prompt bool) (options.Resolved, error) {
	if merged.Author == "" {
		merged.Author = d.Settings.Author()
	}

	if prompt {
		qs := wizard.Unanswered(wizard.DefaultQuestions(dir), merged)
		if len(qs) > 0 {
			answered, err := wizardFunc(qs, merged)
			if errors.Is(err, wizard.ErrCancelled) {
				return options.Resolved{}, errCancelled
			}
			if err != nil {
				return options.Resolved{}, NewSystemErrorWithCause("run wizard", err)
			}
			merged = answered
		}
	}

	if merged.Name == "" {
		return options.Resolved{}, NewUserError("a project name is required")
	}
	if merged.Language == "" {
		return options.Resolved{}, NewUserError("--language is required when not running interactively")
	}

	r, err := merged.Resolve()
	if err != nil {
		return options.Resolved{}, invalidOptions(err)
	}
	return r, nil
}

// invalidOptions reports a validation failure as a user error. The cause
// already starts with "invalid options".
func invalidOptions(err error) error {
	return &ExitError{Code: ExitUserError, Cause: err}
}

// generateProject writes the project into target, which must exist, then
// runs the follow-up steps and prints the summary.
func generateProject(cmd *cobra.Command, d *Dependencies, target string, r options.Resolved) error {
	out := cmd.OutOrStdout()
	reporter := ui.NewStepReporter(ui.NewProgressWriter(d.Theme, d.Headless, out), "Generating "+r.Name)

	res, err := d.Generator.Generate(cmd.Context(), project.GenerateOptions{
		ProjectRoot: target,
		Project:     r,
		Reporter:    reporter,
	})
	if err != nil {
		return NewSystemErrorWithCause("generate project", err)
	}

	results := runSteps(cmd.Context(), d, projectSteps(d, target, r))
	printProjectSummary(out, target, r, res, results)
	return nil
}

// projectSteps lists the follow-up steps the options ask for, in order:
// version control, install, remote repository, editor.
func projectSteps(d *Dependencies, target string, r options.Resolved) []steps.Step {
	var ss []steps.Step
	if r.InitVCS {
		ss = append(ss, steps.VCS(target, git.InitialCommitMessage, d.Logger))
	}
	if r.InstallDependencies {
		if pm, ok := catalog.LookupPackageManager(r.PackageManager); ok && len(pm.Install) > 0 {
			ss = append(ss, steps.Install(target, pm, d.Exec))
		}
	}
	if r.CreateRemoteRepo && r.InitVCS {
		gh := d.NewGH(target, d.Settings.GitHubToken())
		ss = append(ss, steps.Remote(gh, github.RepoCreateOptions{
			Name:        r.Name,
			Description: r.Description,
			Visibility:  github.Public,
			Source:      target,
			Remote:      "origin",
			Push:        true,
		}))
	}
	if r.OpenEditor {
		ss = append(ss, steps.Editor(target, d.Exec))
	}
	return ss
}

// runSteps runs ss best-effort, each behind a spinner.
func runSteps(ctx context.Context, d *Dependencies, ss []steps.Step) []steps.Result {
	if len(ss) == 0 {
		return nil
	}
	runner := steps.NewRunner(
		steps.WithLogger(d.Logger),
		steps.WithAround(func(ctx context.Context, title string, run func(context.Context) error) error {
			return output.RunWithSpinner(ctx, run, output.WithTitle(title))
		}),
	)
	return runner.Run(ctx, ss)
}

// confirmOrForce settles a conflict: --force wins, otherwise the user is
// asked when prompting is allowed. Without either it is a user error.
func confirmOrForce(force, prompt bool, title, description string) error {
	if force {
		return nil
	}
	if !prompt {
		return NewUserError(fmt.Sprintf("%s (use --force to proceed)", description))
	}
	ok, err := confirmFunc(title, description, false)
	if err != nil {
		return NewSystemErrorWithCause("prompt", err)
	}
	if !ok {
		return errCancelled
	}
	return nil
}

// finish turns errCancelled into a clean exit with a notice.
func finish(cmd *cobra.Command, err error) error {
	if errors.Is(err, errCancelled) || errors.Is(err, wizard.ErrCancelled) {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), output.StyleWarn.Render("Cancelled."))
		return nil
	}
	return err
}
