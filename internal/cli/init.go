package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/blazestart/blazestart/internal/options"
	"github.com/blazestart/blazestart/internal/output"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Scaffold a project in the current directory",
	Long: `Scaffold a project in the current directory.

The project name defaults to the directory name. Initializing a directory
that already has files asks for confirmation first; --force skips it.

Examples:
  blazestart init --language python --framework fastapi
  blazestart init --name api --config backend --yes`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return finish(cmd, runInit(cmd, args))
	},
}

func init() {
	rootCmd.AddCommand(initCmd)

	addOptionFlags(initCmd)
	initCmd.Flags().String("name", "", "Project name (default: directory name)")
	initCmd.Flags().String("config", "", "Profile to start from")
	initCmd.Flags().BoolP("yes", "y", false, "Do not prompt; use flags, profile and defaults")
	initCmd.Flags().BoolP("force", "f", false, "Initialize a non-empty directory without asking")
}

func runInit(cmd *cobra.Command, _ []string) error {
	d, err := mustDeps()
	if err != nil {
		return err
	}
	prompt := interactive() && !getBoolFlag(cmd, "yes")

	cwd, err := os.Getwd()
	if err != nil {
		return NewSystemErrorWithCause("get working directory", err)
	}

	base, err := loadBaseProfile(cmd, d)
	if err != nil {
		return err
	}
	merged := options.Merge(base, optionsFromFlags(cmd))
	merged.Name = getStringFlag(cmd, "name")
	if merged.Name == "" {
		if dirName := filepath.Base(cwd); options.ValidateName(dirName) == nil {
			merged.Name = dirName
		}
	}

	entries, err := os.ReadDir(cwd)
	if err != nil {
		return NewSystemErrorWithCause("read working directory", err)
	}
	if len(entries) > 0 {
		output.Warn("directory is not empty", "path", cwd, "entries", len(entries))
		err := confirmOrForce(getBoolFlag(cmd, "force"), prompt,
			"Initialize a non-empty directory?",
			cwd+" already has files; files with the same names will be overwritten")
		if err != nil {
			return err
		}
	}

	r, err := resolveProjectOptions(d, merged, cwd, prompt)
	if err != nil {
		return err
	}
	output.Debug("initializing project", "name", r.Name, "path", cwd)
	return generateProject(cmd, d, cwd, r)
}
