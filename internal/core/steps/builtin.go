package steps

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/blazestart/blazestart/internal/catalog"
	"github.com/blazestart/blazestart/internal/core/git"
	"github.com/blazestart/blazestart/internal/github"
)

// Step names.
const (
	NameVCS     = "vcs"
	NameCommit  = "commit"
	NameInstall = "install"
	NameRemote  = "remote"
	NameEditor  = "editor"
)

// EditorCommand launches the editor.
const EditorCommand = "code"

// VCS initializes a repository in dir and records every file in one
// commit.
func VCS(dir, message string, logger *log.Logger) Step {
	return Step{
		Name:  NameVCS,
		Title: "Initializing git repository",
		Run: func(ctx context.Context) (string, error) {
			repo, err := git.Init(ctx, dir, logger)
			if err != nil {
				return "", err
			}
			if err := repo.AddAll(ctx); err != nil {
				return "", err
			}
			if err := repo.Commit(ctx, message); err != nil {
				return "", err
			}
			return "initial commit created", nil
		},
		Recovery: fmt.Sprintf("cd %s && git init && git add -A && git commit -m %q", quote(dir), message),
	}
}

// Commit records every change in the existing repository at dir. A clean
// tree is not an error.
func Commit(dir, message string, logger *log.Logger) Step {
	return Step{
		Name:  NameCommit,
		Title: "Committing changes",
		Run: func(ctx context.Context) (string, error) {
			repo, err := git.Open(ctx, dir, logger)
			if err != nil {
				return "", err
			}
			if err := repo.AddAll(ctx); err != nil {
				return "", err
			}
			err = repo.Commit(ctx, message)
			if errors.Is(err, git.ErrNothingToCommit) {
				return "nothing to commit", nil
			}
			if err != nil {
				return "", err
			}
			return "changes committed", nil
		},
		Recovery: fmt.Sprintf("cd %s && git add -A && git commit -m %q", quote(dir), message),
	}
}

// Install runs the package manager's install command in dir.
func Install(dir string, pm catalog.PackageManager, run ExecFunc) Step {
	argv := pm.Install
	return Step{
		Name:  NameInstall,
		Title: fmt.Sprintf("Installing dependencies with %s", pm.Name),
		Run: func(ctx context.Context) (string, error) {
			if len(argv) == 0 {
				return "", fmt.Errorf("%w: %s", ErrNoInstallCommand, pm.ID)
			}
			if err := run(ctx, dir, argv[0], argv[1:]...); err != nil {
				return "", err
			}
			return strings.Join(argv, " "), nil
		},
		Recovery: fmt.Sprintf("cd %s && %s", quote(dir), strings.Join(argv, " ")),
	}
}

// Remote creates a GitHub repository from the local tree at opts.Source
// and pushes to it.
func Remote(client github.GHClient, opts github.RepoCreateOptions) Step {
	return Step{
		Name:  NameRemote,
		Title: "Creating GitHub repository",
		Run: func(ctx context.Context) (string, error) {
			if _, err := client.Version(ctx); err != nil {
				return "", err
			}
			if err := client.IsAuthenticated(ctx); err != nil {
				return "", err
			}
			return client.RepoCreate(ctx, opts)
		},
		Recovery: ManualPushInstructions(opts.Source, opts.Name),
	}
}

// ManualPushInstructions explains how to publish the tree at dir without
// the gh CLI.
func ManualPushInstructions(dir, name string) string {
	return strings.Join([]string{
		"create an empty repository named " + name + " on GitHub, then run:",
		"  cd " + quote(dir),
		"  git remote add origin https://github.com/<your-user>/" + name + ".git",
		"  git push -u origin HEAD",
	}, "\n")
}

// Editor opens dir in the editor.
func Editor(dir string, run ExecFunc) Step {
	return Step{
		Name:  NameEditor,
		Title: "Opening editor",
		Run: func(ctx context.Context) (string, error) {
			if err := run(ctx, dir, EditorCommand, dir); err != nil {
				return "", err
			}
			return EditorCommand + " " + filepath.Base(dir), nil
		},
		Recovery: EditorCommand + " " + quote(dir),
	}
}

// quote wraps paths containing spaces for copy-paste into a shell.
func quote(path string) string {
	if strings.ContainsAny(path, " \t'\"") {
		return fmt.Sprintf("%q", path)
	}
	return path
}
