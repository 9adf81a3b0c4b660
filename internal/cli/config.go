package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/blazestart/blazestart/internal/catalog"
	"github.com/blazestart/blazestart/internal/cli/wizard"
	"github.com/blazestart/blazestart/internal/options"
	"github.com/blazestart/blazestart/internal/output"
	"github.com/blazestart/blazestart/internal/profile"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage saved profiles and settings",
	Long: `Manage saved option profiles and global settings.

A profile is a saved set of project options. The default profile applies
to every create and init unless --config names another one.

Settings live in config.json under the config home ($BLAZESTART_CONFIG_HOME,
else ~/.blazestart). Environment variables such as BLAZESTART_AUTHOR override
the stored values.

Examples:
  blazestart config save web --language typescript --framework react --lint eslint
  blazestart config --setprofile web
  blazestart config set author="Ada Lovelace"
  blazestart config export web --format yaml --output web.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

var configListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List saved profiles",
	Args:    cobra.NoArgs,
	RunE:    runConfigList,
}

var configSaveCmd = &cobra.Command{
	Use:     "save <name>",
	Aliases: []string{"create"},
	Short:   "Save a profile from flags or answers",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return finish(cmd, runConfigSave(cmd, args))
	},
}

var configUseCmd = &cobra.Command{
	Use:     "use <name>",
	Aliases: []string{"load"},
	Short:   "Make a profile the default",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setDefaultProfile(cmd, args[0])
	},
}

var configDeleteCmd = &cobra.Command{
	Use:     "delete <name>",
	Aliases: []string{"remove", "rm"},
	Short:   "Delete a profile",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return finish(cmd, runConfigDelete(cmd, args))
	},
}

var configShowCmd = &cobra.Command{
	Use:     "show <name>",
	Aliases: []string{"view"},
	Short:   "Print a profile",
	Args:    cobra.ExactArgs(1),
	RunE:    runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key=value>",
	Short: "Store a setting; JSON values keep their type",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigSet,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print a setting",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configExportCmd = &cobra.Command{
	Use:   "export <name>",
	Short: "Write a profile to stdout or a file",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigExport,
}

var configImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Save a profile from a JSON or YAML file",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigImport,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().String("setprofile", "", "Set the default profile (\"none\" clears it)")

	addOptionFlags(configSaveCmd)
	configSaveCmd.Flags().Bool("default", false, "Also make it the default profile")
	configSaveCmd.Flags().BoolP("yes", "y", false, "Do not prompt for unset options")
	configSaveCmd.Flags().BoolP("force", "f", false, "Overwrite an existing profile without asking")

	configDeleteCmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")

	configExportCmd.Flags().StringP("output", "o", "", "Write to this file instead of stdout")
	configExportCmd.Flags().String("format", profile.FormatJSON, "Output format: json or yaml")

	configImportCmd.Flags().String("name", "", "Profile name (default: file name without extension)")

	configCmd.AddCommand(configListCmd, configSaveCmd, configUseCmd, configDeleteCmd,
		configShowCmd, configSetCmd, configGetCmd, configExportCmd, configImportCmd)
}

func runConfig(cmd *cobra.Command, _ []string) error {
	if cmd.Flags().Changed("setprofile") {
		return setDefaultProfile(cmd, getStringFlag(cmd, "setprofile"))
	}
	return cmd.Help()
}

// setDefaultProfile makes name the default; profile.NoProfile clears it.
func setDefaultProfile(cmd *cobra.Command, name string) error {
	d, err := mustDeps()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if name == profile.NoProfile || name == "" {
		if err := d.Settings.SetDefaultProfile(profile.NoProfile); err != nil {
			return NewSystemErrorWithCause("save settings", err)
		}
		_, _ = fmt.Fprintln(out, output.Checkmark("Default profile cleared"))
		return nil
	}

	if !d.Store.Exists(name) {
		return NewUserErrorWithCause("set default profile", fmt.Errorf("%w: %s", profile.ErrProfileNotFound, name))
	}
	if err := d.Settings.SetDefaultProfile(name); err != nil {
		return NewSystemErrorWithCause("save settings", err)
	}
	_, _ = fmt.Fprintln(out, output.Checkmark("Default profile set to "+output.StyleNoun.Render(name)))
	return nil
}

func runConfigList(cmd *cobra.Command, _ []string) error {
	d, err := mustDeps()
	if err != nil {
		return err
	}
	names, err := d.Store.List()
	if err != nil {
		return NewSystemErrorWithCause("list profiles", err)
	}
	out := cmd.OutOrStdout()
	if len(names) == 0 {
		_, _ = fmt.Fprintln(out, "No saved profiles. Create one with: blazestart config save <name>")
		return nil
	}

	def := d.Settings.DefaultProfile()
	tbl := output.NewTable("Profile", "Language", "Framework", "License", "Default")
	for _, name := range names {
		opts, err := d.Store.Load(name)
		if err != nil {
			output.Warn("skipping unreadable profile", "profile", name, "error", err)
			continue
		}
		mark := ""
		if name == def {
			mark = "*"
		}
		tbl.Row(name, displayOr(catalog.LanguageName(opts.Language)), displayOr(opts.Framework), displayOr(opts.License), mark)
	}
	_, _ = fmt.Fprintln(out, tbl.String())
	return nil
}

func displayOr(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func runConfigSave(cmd *cobra.Command, args []string) error {
	d, err := mustDeps()
	if err != nil {
		return err
	}
	name := args[0]
	if err := profile.ValidateName(name); err != nil {
		return NewUserErrorWithCause("invalid profile name", err)
	}
	prompt := interactive() && !getBoolFlag(cmd, "yes")

	if d.Store.Exists(name) {
		if err := confirmOrForce(getBoolFlag(cmd, "force"), prompt,
			"Overwrite profile "+name+"?", "profile "+name+" already exists"); err != nil {
			return err
		}
	}

	opts := optionsFromFlags(cmd)
	if prompt {
		var qs []wizard.Question
		for _, q := range wizard.Unanswered(wizard.DefaultQuestions("."), opts) {
			if q.ID != wizard.IDName {
				qs = append(qs, q)
			}
		}
		if len(qs) > 0 {
			opts, err = wizardFunc(qs, opts)
			if err != nil {
				return err
			}
		}
	}
	opts.Name = ""
	if err := validateProfile(opts); err != nil {
		return invalidOptions(err)
	}

	if err := d.Store.Save(name, opts); err != nil {
		return NewSystemErrorWithCause("save profile", err)
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), output.Checkmark("Saved profile "+output.StyleNoun.Render(name)))

	if getBoolFlag(cmd, "default") {
		return setDefaultProfile(cmd, name)
	}
	return nil
}

// validateProfile checks a profile the way Resolve would, except that a
// profile may leave the name and language open.
func validateProfile(opts options.Options) error {
	check := opts.WithDefaults()
	check.Name = "profile"
	err := check.Validate()
	var verrs *options.ValidationErrors
	if err == nil || opts.Language != "" || !errors.As(err, &verrs) {
		return err
	}

	kept := &options.ValidationErrors{}
	for _, e := range verrs.Errors {
		if e.Field != "language" {
			kept.Errors = append(kept.Errors, e)
		}
	}
	if len(kept.Errors) == 0 {
		return nil
	}
	return kept
}

func runConfigDelete(cmd *cobra.Command, args []string) error {
	d, err := mustDeps()
	if err != nil {
		return err
	}
	name := args[0]
	if !d.Store.Exists(name) {
		return NewUserErrorWithCause("delete profile", fmt.Errorf("%w: %s", profile.ErrProfileNotFound, name))
	}
	if interactive() && !getBoolFlag(cmd, "yes") {
		ok, err := confirmFunc("Delete profile "+name+"?", "This cannot be undone.", false)
		if err != nil {
			return NewSystemErrorWithCause("prompt", err)
		}
		if !ok {
			return errCancelled
		}
	}

	if err := d.Store.Delete(name); err != nil {
		return NewSystemErrorWithCause("delete profile", err)
	}
	if d.Settings.DefaultProfile() == name {
		if err := d.Settings.SetDefaultProfile(profile.NoProfile); err != nil {
			return NewSystemErrorWithCause("save settings", err)
		}
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), output.Checkmark("Deleted profile "+output.StyleNoun.Render(name)))
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	d, err := mustDeps()
	if err != nil {
		return err
	}
	if err := d.Store.Export(args[0], cmd.OutOrStdout(), profile.FormatJSON); err != nil {
		return profileError("show profile", err)
	}
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	d, err := mustDeps()
	if err != nil {
		return err
	}
	key, value, err := profile.ParseAssignment(args[0])
	if err != nil {
		return NewUserErrorWithCause("config set", err)
	}
	if strings.EqualFold(key, profile.KeyDefaultProfile) {
		return setDefaultProfile(cmd, value)
	}
	if err := d.Settings.Set(key, value); err != nil {
		if errors.Is(err, profile.ErrInvalidKey) {
			return NewUserErrorWithCause("config set", err)
		}
		return NewSystemErrorWithCause("config set", err)
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), output.Checkmark("Set "+output.StyleNoun.Render(key)))
	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	d, err := mustDeps()
	if err != nil {
		return err
	}
	v, err := d.Settings.Get(args[0])
	if err != nil {
		return NewUserErrorWithCause("config get", err)
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), formatSetting(v))
	return nil
}

// formatSetting prints strings bare and everything else as JSON.
func formatSetting(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(data)
}

func runConfigExport(cmd *cobra.Command, args []string) error {
	d, err := mustDeps()
	if err != nil {
		return err
	}
	name := args[0]
	format := strings.ToLower(getStringFlag(cmd, "format"))
	path := getStringFlag(cmd, "output")

	if path == "" {
		if err := d.Store.Export(name, cmd.OutOrStdout(), format); err != nil {
			return profileError("export profile", err)
		}
		return nil
	}

	if !d.Store.Exists(name) {
		return profileError("export profile", fmt.Errorf("%w: %s", profile.ErrProfileNotFound, name))
	}
	f, err := os.Create(path)
	if err != nil {
		return NewSystemErrorWithCause("create "+path, err)
	}
	if err := d.Store.Export(name, f, format); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return profileError("export profile", err)
	}
	if err := f.Close(); err != nil {
		return NewSystemErrorWithCause("write "+path, err)
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), output.Checkmark("Exported "+output.StyleNoun.Render(name)+" to "+path))
	return nil
}

func runConfigImport(cmd *cobra.Command, args []string) error {
	d, err := mustDeps()
	if err != nil {
		return err
	}
	path := args[0]
	name := getStringFlag(cmd, "name")
	if name == "" {
		name = profile.ImportName(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return NewUserErrorWithCause("open "+path, err)
	}
	defer func() { _ = f.Close() }()

	if _, err := d.Store.Import(f, name); err != nil {
		return profileError("import profile", err)
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), output.Checkmark("Imported "+output.StyleNoun.Render(name)+" from "+path))
	return nil
}

// profileError maps store errors: bad input is the user's, the rest the system's.
func profileError(msg string, err error) error {
	switch {
	case errors.Is(err, profile.ErrProfileNotFound),
		errors.Is(err, profile.ErrInvalidProfileName),
		errors.Is(err, profile.ErrInvalidJSON),
		errors.Is(err, profile.ErrUnsupportedFormat):
		return NewUserErrorWithCause(msg, err)
	}
	return NewSystemErrorWithCause(msg, err)
}
