package cli

import (
	"fmt"
	"path"
	"strings"

	"github.com/spf13/cobra"

	"github.com/blazestart/blazestart/internal/defs"
	"github.com/blazestart/blazestart/internal/options"
	"github.com/blazestart/blazestart/internal/output"
	"github.com/blazestart/blazestart/internal/ui"
)

var previewCmd = &cobra.Command{
	Use:   "preview [project-name]",
	Short: "Show what a project would contain without writing anything",
	Long: `Render the README a set of options would produce, or any other planned
file, without touching the filesystem.

Examples:
  blazestart preview demo --language rust --framework axum
  blazestart preview demo --language typescript --lint eslint --file package.json
  blazestart preview demo --config web --files`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)

	addOptionFlags(previewCmd)
	previewCmd.Flags().String("config", "", "Profile to start from")
	previewCmd.Flags().Bool("raw", false, "Print markdown source instead of rendering it")
	previewCmd.Flags().String("file", defs.ReadmeMD, "Planned file to show")
	previewCmd.Flags().Bool("files", false, "List the planned directories and files")
	previewCmd.Flags().Int("width", 0, "Wrap width for rendered markdown")
}

func runPreview(cmd *cobra.Command, args []string) error {
	d, err := mustDeps()
	if err != nil {
		return err
	}
	base, err := loadBaseProfile(cmd, d)
	if err != nil {
		return err
	}
	merged := options.Merge(base, optionsFromFlags(cmd))
	merged.Name = "my-project"
	if len(args) == 1 {
		merged.Name = args[0]
	}

	r, err := resolveProjectOptions(d, merged, ".", false)
	if err != nil {
		return err
	}
	plan, err := d.Generator.Plan(r)
	if err != nil {
		return NewSystemErrorWithCause("plan project", err)
	}

	out := cmd.OutOrStdout()
	files := plan.Files()
	if getBoolFlag(cmd, "files") {
		for _, dir := range plan.Dirs {
			_, _ = fmt.Fprintln(out, output.StyleNoun.Render(dir+"/"))
		}
		for _, p := range files.Paths() {
			_, _ = fmt.Fprintln(out, p)
		}
		return nil
	}

	name := getStringFlag(cmd, "file")
	art, ok := files.Get(name)
	if !ok {
		return NewUserError(fmt.Sprintf("%s is not part of this project (planned: %s)", name, strings.Join(files.Paths(), ", ")))
	}

	if getBoolFlag(cmd, "raw") || !strings.EqualFold(path.Ext(art.Path), ".md") {
		_, _ = fmt.Fprint(out, art.Content)
		return nil
	}
	rendered, err := ui.RenderMarkdown(d.Theme, art.Content, getIntFlag(cmd, "width"))
	if err != nil {
		return NewSystemErrorWithCause("render preview", err)
	}
	_, _ = fmt.Fprint(out, rendered)
	return nil
}
