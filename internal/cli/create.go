package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/blazestart/blazestart/internal/defs"
	"github.com/blazestart/blazestart/internal/options"
	"github.com/blazestart/blazestart/internal/output"
)

var createCmd = &cobra.Command{
	Use:   "create [project-name]",
	Short: "Create a new project in a new directory",
	Long: `Create a new project in <path>/<project-name>.

Options are layered: command-line flags win over the selected profile
(--config, or the default profile), and anything still unset is asked
interactively. With --yes, or when not attached to a terminal, nothing is
asked and defaults fill the gaps.

Examples:
  blazestart create my-api --language typescript --framework express --lint eslint,prettier
  blazestart create tool --language go --no-git --yes
  blazestart create web --config frontend --path ~/code`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return finish(cmd, runCreate(cmd, args))
	},
}

func init() {
	rootCmd.AddCommand(createCmd)

	addOptionFlags(createCmd)
	createCmd.Flags().String("config", "", "Profile to start from")
	createCmd.Flags().String("path", "", "Parent directory (default: current directory)")
	createCmd.Flags().BoolP("yes", "y", false, "Do not prompt; use flags, profile and defaults")
	createCmd.Flags().BoolP("force", "f", false, "Write into an existing directory without asking")
}

func runCreate(cmd *cobra.Command, args []string) error {
	d, err := mustDeps()
	if err != nil {
		return err
	}
	prompt := interactive() && !getBoolFlag(cmd, "yes")

	base, err := loadBaseProfile(cmd, d)
	if err != nil {
		return err
	}
	flags := optionsFromFlags(cmd)
	if len(args) == 1 {
		flags.Name = args[0]
	}
	merged := options.Merge(base, flags)
	// A profile may carry a name, but every create asks for a fresh one.
	if len(args) == 0 {
		merged.Name = ""
	}

	parent := getStringFlag(cmd, "path")
	if parent == "" {
		parent = "."
	}
	parent, err = filepath.Abs(parent)
	if err != nil {
		return NewUserErrorWithCause("resolve --path", err)
	}

	r, err := resolveProjectOptions(d, merged, filepath.Join(parent, "my-project"), prompt)
	if err != nil {
		return err
	}

	target := filepath.Join(parent, r.Name)
	info, statErr := os.Stat(target)
	if statErr == nil {
		if !info.IsDir() {
			return NewUserError(target + " exists and is not a directory")
		}
		err := confirmOrForce(getBoolFlag(cmd, "force"), prompt,
			"Directory "+r.Name+" already exists",
			target+" already exists; existing files with the same names will be overwritten")
		if err != nil {
			return err
		}
	}

	if err := os.MkdirAll(target, defs.DirPerm); err != nil {
		return NewSystemErrorWithCause("create project directory", err)
	}
	output.Debug("creating project", "name", r.Name, "path", target)
	if err := generateProject(cmd, d, target, r); err != nil {
		if statErr != nil {
			// Only a directory this run created is removed.
			_ = os.RemoveAll(target)
		}
		return err
	}
	return nil
}
