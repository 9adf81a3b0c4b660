package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFork_RewritesClone(t *testing.T) {
	env := newTestEnv(t)
	parent := t.TempDir()

	out, err := runCmd(t, forkCmd, []string{"octo/upstream"},
		"name", "mine", "description", "My take", "license", "mit", "author", "Ada",
		"install", "true", "path", parent)
	require.NoError(t, err)

	dir := filepath.Join(parent, "mine")
	assert.Equal(t, []string{"https://github.com/octo/upstream.git"}, env.cloned)

	readme := readFile(t, filepath.Join(dir, "README.md"))
	assert.Contains(t, readme, "# mine")
	assert.Contains(t, readme, "Forked from https://github.com/octo/upstream.git")
	assert.Contains(t, readme, "My take")
	assert.NotContains(t, readme, "The original tool.", "description replaces the upstream intro")

	var pkg map[string]any
	require.NoError(t, json.Unmarshal([]byte(readFile(t, filepath.Join(dir, "package.json"))), &pkg))
	assert.Equal(t, "mine", pkg["name"])
	assert.Equal(t, "1.0.0", pkg["version"])
	assert.NotContains(t, pkg, "repository")

	assert.NoFileExists(t, filepath.Join(dir, "LICENSE.txt"))
	assert.Contains(t, readFile(t, filepath.Join(dir, "LICENSE")), "Ada")

	require.NotEmpty(t, env.calls)
	assert.Equal(t, execCall{dir: dir, argv: "yarn"}, env.calls[0], "lockfile picks the package manager")
	assert.Contains(t, out, "Forked")
}

func TestFork_NameFromURLAndKeepLicense(t *testing.T) {
	env := newTestEnv(t)
	parent := t.TempDir()

	_, err := runCmd(t, forkCmd, []string{"git@github.com:octo/tool.git"},
		"no-readme", "true", "no-manifest", "true", "path", parent)
	require.NoError(t, err)

	dir := filepath.Join(parent, "tool")
	assert.Equal(t, "# upstream\n\nThe original tool.\n", readFile(t, filepath.Join(dir, "README.md")))
	assert.FileExists(t, filepath.Join(dir, "LICENSE.txt"))
	assert.Empty(t, env.calls, "install is off by default")
}

func TestFork_Errors(t *testing.T) {
	newTestEnv(t)
	parent := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(parent, "taken"), 0o755))

	tests := []struct {
		name  string
		url   string
		flags []string
	}{
		{"invalid url", "not a url", nil},
		{"unknown license", "octo/tool", []string{"license", "wtfpl"}},
		{"bad name", "octo/tool", []string{"name", "a b"}},
		{"destination exists", "octo/taken", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags := append([]string{"path", parent}, tt.flags...)
			_, err := runCmd(t, forkCmd, []string{tt.url}, flags...)
			require.Error(t, err)
			assert.Equal(t, ExitUserError, exitCodeOf(err))
		})
	}
}

func TestFork_PromptsForName(t *testing.T) {
	newTestEnv(t)
	parent := t.TempDir()
	interactive = func() bool { return true }
	inputFunc = func(_, placeholder string, validate func(string) error) (string, error) {
		assert.Equal(t, "tool", placeholder)
		require.NoError(t, validate("renamed"))
		return "renamed", nil
	}

	_, err := runCmd(t, forkCmd, []string{"octo/tool"}, "path", parent)
	require.NoError(t, err)
	assert.DirExists(t, filepath.Join(parent, "renamed"))
}
