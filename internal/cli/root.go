package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/blazestart/blazestart/internal/output"
	"github.com/blazestart/blazestart/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "blazestart",
	Short: "Scaffold new projects in seconds",
	Long: `BlazeStart creates ready-to-code projects: directory layout, manifest,
entry point, README, license and ignore file, for a dozen languages and
their popular frameworks. It can then initialize git, install
dependencies, create a GitHub repository and open your editor.

Run without arguments in a terminal for an interactive menu.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE: func(cmd *cobra.Command, args []string) error {
		if interactive() {
			return runMenu(cmd, args)
		}
		return cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colors and animations")
}

// setup configures logging and wires dependencies before any command runs.
func setup(cmd *cobra.Command, _ []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	output.SetupLogging(verbose)
	output.Debug("starting", "version", version.GetFullVersion())

	if deps == nil {
		if err := InitDependencies(); err != nil {
			return NewSystemErrorWithCause("initialize", err)
		}
	}
	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
		deps.Theme.NoColor = true
		output.DisableColor()
	}
	return nil
}

// Execute runs the command tree and returns the process exit code.
func Execute(ctx context.Context) int {
	err := fang.Execute(ctx, rootCmd,
		fang.WithVersion(version.GetVersion()),
		fang.WithCommit(version.GetCommit()),
	)
	return ExitCode(err)
}

// mustDeps returns the wired dependencies.
func mustDeps() (*Dependencies, error) {
	if deps == nil {
		return nil, fmt.Errorf("dependencies not initialized")
	}
	return deps, nil
}
