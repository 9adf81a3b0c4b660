package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/blazestart/blazestart/internal/cli/wizard"
	"github.com/blazestart/blazestart/internal/core/project"
	"github.com/blazestart/blazestart/internal/fork"
	"github.com/blazestart/blazestart/internal/github"
	"github.com/blazestart/blazestart/internal/options"
	"github.com/blazestart/blazestart/internal/profile"
	"github.com/blazestart/blazestart/internal/synth"
	"github.com/blazestart/blazestart/internal/ui"
)

// execCall records one process launched through Dependencies.Exec.
type execCall struct {
	dir  string
	argv string
}

type testEnv struct {
	home   string
	deps   *Dependencies
	calls  []execCall
	gh     *fakeGH
	cloned []string
}

type fakeGH struct {
	authErr error
	created []github.RepoCreateOptions
}

func (f *fakeGH) Version(context.Context) (string, error) { return "2.60.0", nil }

func (f *fakeGH) IsAuthenticated(context.Context) error { return f.authErr }

func (f *fakeGH) RepoCreate(_ context.Context, opts github.RepoCreateOptions) (string, error) {
	f.created = append(f.created, opts)
	return "https://github.com/dev/" + opts.Name, nil
}

// newTestEnv wires Dependencies against a temporary config home with
// every external process faked, and restores the package state after t.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{home: t.TempDir(), gh: &fakeGH{}}
	logger := log.New(io.Discard)

	s, err := synth.New()
	require.NoError(t, err)
	settings, err := profile.LoadSettings(env.home)
	require.NoError(t, err)

	exec := func(_ context.Context, dir, name string, args ...string) error {
		env.calls = append(env.calls, execCall{dir: dir, argv: strings.Join(append([]string{name}, args...), " ")})
		return nil
	}
	clone := func(_ context.Context, url, dest string, _ *log.Logger) error {
		env.cloned = append(env.cloned, url)
		if err := os.MkdirAll(dest, 0o755); err != nil {
			return err
		}
		files := map[string]string{
			"README.md":    "# upstream\n\nThe original tool.\n",
			"package.json": `{"name":"upstream","version":"3.2.1","repository":"git://x","scripts":{"test":"jest"}}`,
			"LICENSE.txt":  "old license\n",
			"yarn.lock":    "",
		}
		for name, content := range files {
			if err := os.WriteFile(filepath.Join(dest, name), []byte(content), 0o644); err != nil {
				return err
			}
		}
		return nil
	}

	hm := ui.NewHeadlessManager()
	hm.ForceHeadless(true)
	env.deps = &Dependencies{
		Synth:     s,
		Generator: project.NewGenerator(s, logger),
		Forker:    fork.New(s, fork.WithLogger(logger), fork.WithClone(clone), fork.WithExec(exec)),
		Store:     profile.NewStore(profile.ProfilesDir(env.home)),
		Settings:  settings,
		NewGH:     func(string, string) github.GHClient { return env.gh },
		Exec:      exec,
		Theme:     ui.NewTheme(true),
		Headless:  hm,
		Logger:    logger,
	}

	oldDeps, oldInteractive, oldConfirm, oldInput, oldWizard, oldMenu :=
		deps, interactive, confirmFunc, inputFunc, wizardFunc, menuSelectFunc
	t.Cleanup(func() {
		deps, interactive, confirmFunc, inputFunc, wizardFunc, menuSelectFunc =
			oldDeps, oldInteractive, oldConfirm, oldInput, oldWizard, oldMenu
	})

	SetDeps(env.deps)
	interactive = func() bool { return false }
	confirmFunc = func(string, string, bool) (bool, error) {
		t.Fatal("unexpected confirmation prompt")
		return false, nil
	}
	wizardFunc = func([]wizard.Question, options.Options) (options.Options, error) {
		t.Fatal("unexpected wizard run")
		return options.Options{}, nil
	}
	return env
}

// resetFlags restores every flag of cmd to its default and clears Changed,
// since commands are package globals shared across tests.
func resetFlags(t *testing.T, cmd *cobra.Command) {
	t.Helper()
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			require.NoError(t, sv.Replace(nil))
		} else {
			require.NoError(t, f.Value.Set(f.DefValue))
		}
		f.Changed = false
	})
}

// runCmd resets cmd, applies flags in order and runs it.
func runCmd(t *testing.T, cmd *cobra.Command, args []string, flags ...string) (string, error) {
	t.Helper()
	require.Zero(t, len(flags)%2, "flags come in name/value pairs")
	resetFlags(t, cmd)
	for i := 0; i < len(flags); i += 2 {
		require.NoError(t, cmd.Flags().Set(flags[i], flags[i+1]))
	}

	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetContext(context.Background())
	err := cmd.RunE(cmd, args)
	return buf.String(), err
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func exitCodeOf(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return -1
}
