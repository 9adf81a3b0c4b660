package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blazestart/blazestart/internal/cli/wizard"
	"github.com/blazestart/blazestart/internal/options"
	"github.com/blazestart/blazestart/internal/profile"
)

func TestConfigSave_FromFlags(t *testing.T) {
	env := newTestEnv(t)

	out, err := runCmd(t, configSaveCmd, []string{"web"},
		"language", "typescript", "framework", "react", "lint", "eslint,prettier", "no-git", "true", "default", "true")
	require.NoError(t, err)
	assert.Contains(t, out, "Saved profile")

	got, err := env.deps.Store.Load("web")
	require.NoError(t, err)
	assert.Equal(t, "typescript", got.Language)
	assert.Equal(t, "react", got.Framework)
	assert.Equal(t, []string{"eslint", "prettier"}, got.Linters)
	assert.Equal(t, options.Bool(false), got.InitVCS)
	assert.Empty(t, got.Name)
	assert.Equal(t, "web", env.deps.Settings.DefaultProfile())
}

func TestConfigSave_PartialProfileIsValid(t *testing.T) {
	env := newTestEnv(t)
	_, err := runCmd(t, configSaveCmd, []string{"mit-only"}, "license", "mit")
	require.NoError(t, err)
	assert.True(t, env.deps.Store.Exists("mit-only"))
}

func TestConfigSave_Rejects(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, env.deps.Store.Save("taken", options.Options{Language: "go"}))

	tests := []struct {
		name  string
		args  []string
		flags []string
	}{
		{"bad profile name", []string{"../evil"}, nil},
		{"framework mismatch", []string{"p"}, []string{"language", "go", "framework", "react"}},
		{"unknown license", []string{"p"}, []string{"license", "wtfpl"}},
		{"exists without force", []string{"taken"}, []string{"language", "rust"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCmd(t, configSaveCmd, tt.args, tt.flags...)
			require.Error(t, err)
			assert.Equal(t, ExitUserError, exitCodeOf(err))
		})
	}

	got, err := env.deps.Store.Load("taken")
	require.NoError(t, err)
	assert.Equal(t, "go", got.Language)
}

func TestConfigSave_WizardSkipsName(t *testing.T) {
	env := newTestEnv(t)
	interactive = func() bool { return true }
	wizardFunc = func(qs []wizard.Question, base options.Options) (options.Options, error) {
		for _, q := range qs {
			assert.NotEqual(t, wizard.IDName, q.ID)
		}
		base.Language = "go"
		return base, nil
	}

	_, err := runCmd(t, configSaveCmd, []string{"gopher"})
	require.NoError(t, err)
	got, err := env.deps.Store.Load("gopher")
	require.NoError(t, err)
	assert.Equal(t, "go", got.Language)
}

func TestConfigUseAndSetProfile(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, env.deps.Store.Save("web", options.Options{Language: "javascript"}))

	_, err := runCmd(t, configUseCmd, []string{"web"})
	require.NoError(t, err)
	assert.Equal(t, "web", env.deps.Settings.DefaultProfile())

	_, err = runCmd(t, configCmd, nil, "setprofile", "none")
	require.NoError(t, err)
	assert.Empty(t, env.deps.Settings.DefaultProfile())

	_, err = runCmd(t, configCmd, nil, "setprofile", "web")
	require.NoError(t, err)
	assert.Equal(t, "web", env.deps.Settings.DefaultProfile())

	_, err = runCmd(t, configUseCmd, []string{"missing"})
	require.Error(t, err)
	assert.Equal(t, ExitUserError, exitCodeOf(err))
	assert.ErrorIs(t, err, profile.ErrProfileNotFound)
}

func TestConfigList(t *testing.T) {
	env := newTestEnv(t)

	out, err := runCmd(t, configListCmd, nil)
	require.NoError(t, err)
	assert.Contains(t, out, "No saved profiles")

	require.NoError(t, env.deps.Store.Save("alpha", options.Options{Language: "go"}))
	require.NoError(t, env.deps.Store.Save("beta", options.Options{Language: "python", Framework: "flask"}))
	require.NoError(t, env.deps.Settings.SetDefaultProfile("beta"))

	out, err = runCmd(t, configListCmd, nil)
	require.NoError(t, err)
	assert.Contains(t, out, "alpha")
	assert.Contains(t, out, "Python")
	assert.Contains(t, out, "flask")
	assert.Contains(t, out, "*")
}

func TestConfigDelete(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, env.deps.Store.Save("old", options.Options{Language: "go"}))
	require.NoError(t, env.deps.Settings.SetDefaultProfile("old"))

	_, err := runCmd(t, configDeleteCmd, []string{"old"})
	require.NoError(t, err)
	assert.False(t, env.deps.Store.Exists("old"))
	assert.Empty(t, env.deps.Settings.DefaultProfile(), "deleting the default clears it")

	_, err = runCmd(t, configDeleteCmd, []string{"old"})
	assert.Equal(t, ExitUserError, exitCodeOf(err))
}

func TestConfigDelete_Declined(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, env.deps.Store.Save("keep", options.Options{}))
	interactive = func() bool { return true }
	confirmFunc = func(string, string, bool) (bool, error) { return false, nil }

	out, err := runCmd(t, configDeleteCmd, []string{"keep"})
	require.NoError(t, err)
	assert.Contains(t, out, "Cancelled.")
	assert.True(t, env.deps.Store.Exists("keep"))
}

func TestConfigShow(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, env.deps.Store.Save("web", options.Options{Language: "typescript", Linters: []string{"eslint"}}))

	out, err := runCmd(t, configShowCmd, []string{"web"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"language":"typescript","linters":["eslint"]}`, out)

	_, err = runCmd(t, configShowCmd, []string{"nope"})
	assert.Equal(t, ExitUserError, exitCodeOf(err))
}

func TestConfigSetGet(t *testing.T) {
	env := newTestEnv(t)

	_, err := runCmd(t, configSetCmd, []string{"author=Ada Lovelace"})
	require.NoError(t, err)
	_, err = runCmd(t, configSetCmd, []string{"retries=3"})
	require.NoError(t, err)
	_, err = runCmd(t, configSetCmd, []string{"tags=[\"a\",\"b\"]"})
	require.NoError(t, err)

	out, err := runCmd(t, configGetCmd, []string{"author"})
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace\n", out)

	out, err = runCmd(t, configGetCmd, []string{"retries"})
	require.NoError(t, err)
	assert.Equal(t, "3\n", out)

	out, err = runCmd(t, configGetCmd, []string{"tags"})
	require.NoError(t, err)
	assert.Equal(t, "[\"a\",\"b\"]\n", out)

	assert.Equal(t, "Ada Lovelace", env.deps.Settings.Author())

	_, err = runCmd(t, configGetCmd, []string{"unset"})
	assert.ErrorIs(t, err, profile.ErrUnknownKey)
	assert.Equal(t, ExitUserError, exitCodeOf(err))

	_, err = runCmd(t, configSetCmd, []string{"novalue"})
	assert.Equal(t, ExitUserError, exitCodeOf(err))
}

func TestConfigSet_DefaultProfileIsChecked(t *testing.T) {
	newTestEnv(t)
	_, err := runCmd(t, configSetCmd, []string{"defaultProfile=ghost"})
	assert.ErrorIs(t, err, profile.ErrProfileNotFound)
}

func TestConfigExportImport(t *testing.T) {
	env := newTestEnv(t)
	original := options.Options{
		Language:    "python",
		Framework:   "fastapi",
		License:     "apache2",
		InitVCS:     options.Bool(true),
		ReadmeStyle: "expanded",
	}
	require.NoError(t, env.deps.Store.Save("api", original))

	for _, format := range []string{"json", "yaml"} {
		t.Run(format, func(t *testing.T) {
			file := filepath.Join(t.TempDir(), "api-copy."+format)
			_, err := runCmd(t, configExportCmd, []string{"api"}, "output", file, "format", format)
			require.NoError(t, err)
			assert.FileExists(t, file)

			_, err = runCmd(t, configImportCmd, []string{file})
			require.NoError(t, err)
			got, err := env.deps.Store.Load("api-copy")
			require.NoError(t, err)
			assert.Equal(t, original, got)
		})
	}

	t.Run("stdout with explicit name", func(t *testing.T) {
		out, err := runCmd(t, configExportCmd, []string{"api"})
		require.NoError(t, err)
		assert.Contains(t, out, `"framework": "fastapi"`)

		file := filepath.Join(t.TempDir(), "x.json")
		require.NoError(t, os.WriteFile(file, []byte(out), 0o644))
		_, err = runCmd(t, configImportCmd, []string{file}, "name", "renamed")
		require.NoError(t, err)
		assert.True(t, env.deps.Store.Exists("renamed"))
	})

	t.Run("errors", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "never.json")
		_, err := runCmd(t, configExportCmd, []string{"missing"}, "output", out)
		assert.Equal(t, ExitUserError, exitCodeOf(err))
		assert.NoFileExists(t, out)

		_, err = runCmd(t, configExportCmd, []string{"api"}, "format", "xml")
		assert.ErrorIs(t, err, profile.ErrUnsupportedFormat)

		bad := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte("{not json"), 0o644))
		_, err = runCmd(t, configImportCmd, []string{bad})
		assert.Equal(t, ExitUserError, exitCodeOf(err))

		_, err = runCmd(t, configImportCmd, []string{filepath.Join(t.TempDir(), "absent.json")})
		assert.Equal(t, ExitUserError, exitCodeOf(err))
	})
}
