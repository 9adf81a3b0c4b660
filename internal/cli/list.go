package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/blazestart/blazestart/internal/catalog"
	"github.com/blazestart/blazestart/internal/output"
)

// Catalog sections accepted by list.
const (
	listLanguages       = "languages"
	listFrameworks      = "frameworks"
	listLicenses        = "licenses"
	listPackageManagers = "package-managers"
)

var listSections = []string{listLanguages, listFrameworks, listLicenses, listPackageManagers}

var listCmd = &cobra.Command{
	Use:       "list [languages|frameworks|licenses|package-managers]",
	Short:     "Show the supported languages, frameworks, licenses and package managers",
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: listSections,
	RunE:      runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().String("language", "", "Only show entries usable with this language")
}

func runList(cmd *cobra.Command, args []string) error {
	lang := getStringFlag(cmd, "language")
	if lang != "" {
		if _, ok := catalog.LookupLanguage(lang); !ok {
			return NewUserError(fmt.Sprintf("unknown language %q", lang))
		}
	}

	sections := listSections
	if len(args) == 1 {
		sections = args
	}

	out := cmd.OutOrStdout()
	for i, s := range sections {
		if i > 0 {
			_, _ = fmt.Fprintln(out)
		}
		if len(sections) > 1 {
			_, _ = fmt.Fprintln(out, output.StyleTitle.Render(titleFor(s)))
		}
		renderSection(out, s, lang)
	}
	return nil
}

func titleFor(section string) string {
	return strings.ToUpper(section[:1]) + strings.ReplaceAll(section[1:], "-", " ")
}

func renderSection(w io.Writer, section, lang string) {
	var tbl *output.Table
	switch section {
	case listLanguages:
		tbl = output.NewTable("ID", "Name", "Package managers")
		for _, l := range catalog.Languages() {
			tbl.Row(l.ID, l.Name, displayOr(joinPackageManagers(l.ID)))
		}
	case listFrameworks:
		tbl = output.NewTable("ID", "Name", "Languages", "Description")
		for _, f := range catalog.Frameworks() {
			if lang != "" && !f.SupportsLanguage(lang) {
				continue
			}
			tbl.Row(f.ID, f.Name, strings.Join(f.Languages, ", "), f.Description)
		}
	case listLicenses:
		tbl = output.NewTable("ID", "Name", "SPDX")
		for _, l := range catalog.Licenses() {
			tbl.Row(l.ID, l.Name, l.SPDX)
		}
	case listPackageManagers:
		tbl = output.NewTable("ID", "Name", "Languages", "Install")
		for _, pm := range catalog.PackageManagers() {
			if lang != "" && !catalog.IsPackageManagerFor(pm.ID, lang) {
				continue
			}
			tbl.Row(pm.ID, pm.Name, strings.Join(pm.Languages, ", "), strings.Join(pm.Install, " "))
		}
	}
	if tbl.Len() == 0 {
		_, _ = fmt.Fprintln(w, output.StyleDim.Render("(none)"))
		return
	}
	_, _ = fmt.Fprintln(w, tbl.String())
}

func joinPackageManagers(lang string) string {
	pms := catalog.PackageManagersFor(lang)
	ids := make([]string, len(pms))
	for i, pm := range pms {
		ids[i] = pm.ID
	}
	return strings.Join(ids, ", ")
}
