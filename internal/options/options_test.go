package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_AppliesDefaults(t *testing.T) {
	r, err := Options{Name: "My_App", Language: "typescript"}.Resolve()
	require.NoError(t, err)

	assert.Equal(t, "none", r.Framework)
	assert.Equal(t, "mit", r.License)
	assert.Equal(t, "npm", r.PackageManager)
	assert.Equal(t, "standard", r.ReadmeStyle)
	assert.True(t, r.IncludeIgnoreFile)
	assert.True(t, r.InitVCS)
	assert.True(t, r.InstallDependencies)
	assert.False(t, r.CreateRemoteRepo)
	assert.False(t, r.SetupVCSHooks)
}

func TestResolve_InstallDefaultsOffOutsideNPM(t *testing.T) {
	r, err := Options{Name: "svc", Language: "go"}.Resolve()
	require.NoError(t, err)
	assert.False(t, r.InstallDependencies)
	assert.Equal(t, "go", r.PackageManager)
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want error
	}{
		{"empty name", Options{Language: "go"}, ErrInvalidName},
		{"bad name", Options{Name: "my app", Language: "go"}, ErrInvalidName},
		{"unknown language", Options{Name: "x", Language: "cobol"}, ErrUnknownLanguage},
		{"framework mismatch", Options{Name: "x", Language: "python", Framework: "express"}, ErrFrameworkMismatch},
		{"unknown framework", Options{Name: "x", Language: "python", Framework: "bogus"}, ErrFrameworkMismatch},
		{"pm mismatch", Options{Name: "x", Language: "python", PackageManager: "npm"}, ErrPackageManagerMismatch},
		{"unknown license", Options{Name: "x", Language: "go", License: "wtfpl"}, ErrUnknownLicense},
		{"unknown readme", Options{Name: "x", Language: "go", ReadmeStyle: "ai"}, ErrUnknownReadmeStyle},
		{"linter for python", Options{Name: "x", Language: "python", Linters: []string{"eslint"}}, ErrLinterUnsupported},
		{"remote without vcs", Options{Name: "x", Language: "go", InitVCS: Bool(false), CreateRemoteRepo: Bool(true)}, ErrRemoteRequiresVCS},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.opts.Resolve()
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, ErrInvalidOptions)

			var verrs *ValidationErrors
			require.True(t, errors.As(err, &verrs))
			assert.NotEmpty(t, verrs.Errors)
		})
	}
}

func TestMerge_Precedence(t *testing.T) {
	profile := Options{Language: "javascript", Framework: "react", License: "apache2", InitVCS: Bool(false)}
	flags := Options{Framework: "vue", InitVCS: Bool(true)}

	got := Merge(profile, flags)

	assert.Equal(t, "javascript", got.Language)
	assert.Equal(t, "vue", got.Framework)
	assert.Equal(t, "apache2", got.License)
	require.NotNil(t, got.InitVCS)
	assert.True(t, *got.InitVCS)
}

func TestMerge_LanguageSwitchDropsBoundFields(t *testing.T) {
	profile := Options{
		Language:       "javascript",
		Framework:      "express",
		PackageManager: "yarn",
		Linters:        []string{"eslint", "prettier"},
		License:        "apache2",
	}

	t.Run("incompatible", func(t *testing.T) {
		got := Merge(profile, Options{Name: "svc", Language: "python"})
		assert.Equal(t, "python", got.Language)
		assert.Empty(t, got.Framework)
		assert.Empty(t, got.PackageManager)
		assert.Empty(t, got.Linters)
		assert.Equal(t, "apache2", got.License)

		_, err := got.Resolve()
		require.NoError(t, err)
	})

	t.Run("compatible", func(t *testing.T) {
		got := Merge(profile, Options{Language: "typescript"})
		assert.Equal(t, "express", got.Framework)
		assert.Equal(t, "yarn", got.PackageManager)
		assert.Equal(t, []string{"eslint", "prettier"}, got.Linters)
	})

	t.Run("explicit_framework_still_wins", func(t *testing.T) {
		got := Merge(profile, Options{Language: "python", Framework: "flask"})
		assert.Equal(t, "flask", got.Framework)
	})
}

func TestMerge_DoesNotAliasBools(t *testing.T) {
	over := Options{OpenEditor: Bool(true)}
	got := Merge(Options{}, over)
	*over.OpenEditor = false
	assert.True(t, *got.OpenEditor)
}

func TestSanitizeName(t *testing.T) {
	tests := map[string]string{
		"MyApp":        "myapp",
		"my_app":       "my-app",
		"My App 2":     "my-app-2",
		"already-fine": "already-fine",
	}
	for in, want := range tests {
		assert.Equal(t, want, SanitizeName(in), in)
	}
}

func TestResolved_LintersCanonicalOrder(t *testing.T) {
	r, err := Options{Name: "x", Language: "typescript", Linters: []string{"prettier", "eslint", "prettier"}}.Resolve()
	require.NoError(t, err)
	assert.Equal(t, []string{"eslint", "prettier"}, r.Linters)
	assert.True(t, r.HasLinter("eslint"))
}

func TestResolved_OptionsRoundTrip(t *testing.T) {
	r, err := Options{Name: "x", Language: "rust", Framework: "actix", License: "bsd3"}.Resolve()
	require.NoError(t, err)

	again, err := r.Options().Resolve()
	require.NoError(t, err)
	assert.Equal(t, r, again)
}
