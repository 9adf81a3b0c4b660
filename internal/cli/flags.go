package cli

import (
	"github.com/spf13/cobra"

	"github.com/blazestart/blazestart/internal/options"
)

// getStringFlag retrieves a string flag value from the command.
func getStringFlag(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		return ""
	}
	return val
}

// getBoolFlag retrieves a bool flag value from the command.
func getBoolFlag(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false
	}
	return val
}

// getStringSliceFlag retrieves a string slice flag value from the command.
// It returns nil when the flag was not given.
func getStringSliceFlag(cmd *cobra.Command, name string) []string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	val, err := cmd.Flags().GetStringSlice(name)
	if err != nil {
		return nil
	}
	return val
}

// getTriStateFlag reads a --x / --no-x pair. It returns nil when neither
// was given, so a profile or the wizard can decide.
func getTriStateFlag(cmd *cobra.Command, name string) *bool {
	neg := "no-" + name
	switch {
	case cmd.Flags().Changed(neg) && getBoolFlag(cmd, neg):
		return options.Bool(false)
	case cmd.Flags().Changed(name):
		return options.Bool(getBoolFlag(cmd, name))
	}
	return nil
}

// addTriStateFlag registers a --x / --no-x pair.
func addTriStateFlag(cmd *cobra.Command, name, usage string) {
	cmd.Flags().Bool(name, false, usage)
	cmd.Flags().Bool("no-"+name, false, "Do not "+lowerFirst(usage))
	cmd.MarkFlagsMutuallyExclusive(name, "no-"+name)
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	if b[0] >= 'A' && b[0] <= 'Z' {
		b[0] += 'a' - 'A'
	}
	return string(b)
}

// addOptionFlags registers the flags that map onto options.Options.
func addOptionFlags(cmd *cobra.Command) {
	cmd.Flags().String("language", "", "Programming language (see: blazestart list languages)")
	cmd.Flags().String("framework", "", "Framework, or \"none\"")
	cmd.Flags().String("license", "", "License id (see: blazestart list licenses)")
	cmd.Flags().String("package-manager", "", "Package manager (default: first for the language)")
	cmd.Flags().String("readme", "", "README style: standard, minimal or expanded")
	cmd.Flags().StringSlice("lint", nil, "Linters to configure: eslint, prettier (repeatable)")
	cmd.Flags().String("description", "", "One-line project description")
	cmd.Flags().String("author", "", "Author for the license and manifests")
	addTriStateFlag(cmd, "gitignore", "Write a .gitignore")
	addTriStateFlag(cmd, "hooks", "Set up pre-commit hooks")
	addTriStateFlag(cmd, "git", "Initialize a git repository")
	addTriStateFlag(cmd, "install", "Install dependencies after generation")
	addTriStateFlag(cmd, "remote", "Create a GitHub repository and push")
	addTriStateFlag(cmd, "open", "Open the project in VS Code")
}

// optionsFromFlags collects the option flags that were set.
func optionsFromFlags(cmd *cobra.Command) options.Options {
	return options.Options{
		Description:         getStringFlag(cmd, "description"),
		Author:              getStringFlag(cmd, "author"),
		Language:            getStringFlag(cmd, "language"),
		Framework:           getStringFlag(cmd, "framework"),
		License:             getStringFlag(cmd, "license"),
		PackageManager:      getStringFlag(cmd, "package-manager"),
		ReadmeStyle:         getStringFlag(cmd, "readme"),
		Linters:             getStringSliceFlag(cmd, "lint"),
		IncludeIgnoreFile:   getTriStateFlag(cmd, "gitignore"),
		SetupVCSHooks:       getTriStateFlag(cmd, "hooks"),
		InitVCS:             getTriStateFlag(cmd, "git"),
		InstallDependencies: getTriStateFlag(cmd, "install"),
		CreateRemoteRepo:    getTriStateFlag(cmd, "remote"),
		OpenEditor:          getTriStateFlag(cmd, "open"),
	}
}

// getIntFlag retrieves an int flag value from the command.
func getIntFlag(cmd *cobra.Command, name string) int {
	val, err := cmd.Flags().GetInt(name)
	if err != nil {
		return 0
	}
	return val
}
