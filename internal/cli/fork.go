package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/blazestart/blazestart/internal/catalog"
	"github.com/blazestart/blazestart/internal/fork"
	"github.com/blazestart/blazestart/internal/options"
	"github.com/blazestart/blazestart/internal/output"
)

var forkCmd = &cobra.Command{
	Use:   "fork <repo-url>",
	Short: "Clone a repository and make it your own project",
	Long: `Clone a repository and turn it into a new project.

The URL may be https, ssh (git@host:user/repo) or a GitHub user/repo
shorthand. After cloning, the README title, package.json and license are
rewritten for the new name, and the changes are committed. With --clean
the original history is dropped and a fresh repository is initialized.
Each rewrite is best-effort: a failure is reported and the rest go on.

Examples:
  blazestart fork vercel/next.js --name my-next --clean
  blazestart fork https://github.com/user/tool.git --license mit --no-readme`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return finish(cmd, runFork(cmd, args))
	},
}

func init() {
	rootCmd.AddCommand(forkCmd)

	forkCmd.Flags().String("name", "", "New project name (default: repository name)")
	forkCmd.Flags().String("path", "", "Parent directory (default: current directory)")
	forkCmd.Flags().String("description", "", "New project description")
	forkCmd.Flags().String("author", "", "License holder (default: configured author)")
	forkCmd.Flags().String("license", fork.KeepLicense, "keep, or a license id to replace the existing one")
	forkCmd.Flags().Bool("clean", false, "Drop the git history and start a fresh repository")
	addTriStateFlag(forkCmd, "readme", "Rewrite the README title")
	addTriStateFlag(forkCmd, "manifest", "Rewrite package.json")
	addTriStateFlag(forkCmd, "install", "Install dependencies with the detected package manager")
	forkCmd.Flags().Bool("open", false, "Open the project in VS Code")
	forkCmd.Flags().BoolP("yes", "y", false, "Do not prompt")
}

func runFork(cmd *cobra.Command, args []string) error {
	d, err := mustDeps()
	if err != nil {
		return err
	}
	prompt := interactive() && !getBoolFlag(cmd, "yes")

	url, err := fork.ParseRepoURL(args[0])
	if err != nil {
		return NewUserErrorWithCause("invalid repository", err)
	}

	name := getStringFlag(cmd, "name")
	if name == "" {
		name = fork.RepoName(url)
		if prompt {
			answer, err := inputFunc("Project name", name, func(s string) error {
				if s == "" {
					return nil
				}
				return options.ValidateName(s)
			})
			if err != nil {
				return err
			}
			if answer = strings.TrimSpace(answer); answer != "" {
				name = answer
			}
		}
	}
	if err := options.ValidateName(name); err != nil {
		return NewUserErrorWithCause("invalid project name", err)
	}

	license := getStringFlag(cmd, "license")
	if license != fork.KeepLicense {
		if _, ok := catalog.LookupLicense(license); !ok {
			return NewUserError(fmt.Sprintf("unknown license %q (see: blazestart list licenses)", license))
		}
	}

	parent := getStringFlag(cmd, "path")
	if parent == "" {
		parent = "."
	}
	dir, err := filepath.Abs(filepath.Join(parent, name))
	if err != nil {
		return NewUserErrorWithCause("resolve destination", err)
	}
	if _, err := os.Stat(dir); err == nil {
		return NewUserError(dir + " already exists")
	}

	author := getStringFlag(cmd, "author")
	if author == "" {
		author = d.Settings.Author()
	}
	o := fork.Options{
		URL:             url,
		Name:            name,
		Dir:             dir,
		Description:     getStringFlag(cmd, "description"),
		Author:          author,
		License:         license,
		Clean:           getBoolFlag(cmd, "clean"),
		RewriteReadme:   triStateDefault(cmd, "readme", true),
		RewriteManifest: triStateDefault(cmd, "manifest", true),
		Install:         triStateDefault(cmd, "install", false),
		OpenEditor:      getBoolFlag(cmd, "open"),
	}

	err = output.RunWithSpinner(cmd.Context(), func(ctx context.Context) error {
		return d.Forker.Clone(ctx, o)
	}, output.WithTitle("Cloning "+url))
	if err != nil {
		return NewSystemErrorWithCause("clone "+url, err)
	}

	results := runSteps(cmd.Context(), d, d.Forker.Steps(o))

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintln(out, output.Checkmark("Forked "+output.StyleNoun.Render(url)+" into "+output.StyleNoun.Render(dir)))
	printStepResults(out, results)
	_, _ = fmt.Fprintln(out, "\n"+output.StyleTitle.Render("Next steps"))
	_, _ = fmt.Fprintln(out, "  cd "+quotePath(dir))
	return nil
}

// triStateDefault reads a --x / --no-x pair, falling back to def.
func triStateDefault(cmd *cobra.Command, name string, def bool) bool {
	if v := getTriStateFlag(cmd, name); v != nil {
		return *v
	}
	return def
}
