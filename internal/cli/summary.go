package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/blazestart/blazestart/internal/catalog"
	"github.com/blazestart/blazestart/internal/core/project"
	"github.com/blazestart/blazestart/internal/core/steps"
	"github.com/blazestart/blazestart/internal/options"
	"github.com/blazestart/blazestart/internal/output"
)

// printProjectSummary prints the result card, step outcomes, warnings
// and next steps of a create or init run.
func printProjectSummary(w io.Writer, target string, r options.Resolved, res *project.Result, results []steps.Result) {
	stack := catalog.LanguageName(r.Language)
	if r.Framework != catalog.NoFramework {
		stack += " + " + catalog.FrameworkName(r.Framework)
	}

	var card strings.Builder
	card.WriteString(output.StyleTitle.Render("Project "+r.Name+" created") + "\n\n")
	fmt.Fprintf(&card, "%-10s %s\n", "Location", output.StyleNoun.Render(target))
	fmt.Fprintf(&card, "%-10s %s\n", "Stack", stack)
	if r.PackageManager != "" {
		fmt.Fprintf(&card, "%-10s %s\n", "Packages", r.PackageManager)
	}
	fmt.Fprintf(&card, "%-10s %d files, %d directories", "Written", len(res.CreatedFiles), len(res.CreatedDirs))
	_, _ = fmt.Fprintln(w, output.StyleCard.Render(card.String()))

	printStepResults(w, results)
	printWarnings(w, res.Warnings)

	_, _ = fmt.Fprintln(w, "\n"+output.StyleTitle.Render("Next steps"))
	for _, line := range nextSteps(target, r, results) {
		_, _ = fmt.Fprintln(w, "  "+line)
	}
}

// printStepResults prints one line per step; failures carry their
// recovery instructions.
func printStepResults(w io.Writer, results []steps.Result) {
	if len(results) == 0 {
		return
	}
	_, _ = fmt.Fprintln(w)
	for _, r := range results {
		if r.OK() {
			line := r.Name
			if r.Detail != "" {
				line += output.StyleDim.Render(" (" + r.Detail + ")")
			}
			_, _ = fmt.Fprintln(w, output.Checkmark(line))
			continue
		}
		_, _ = fmt.Fprintln(w, output.Cross(r.Name+": "+r.Err.Error()))
		if r.Recovery != "" {
			for _, l := range strings.Split(r.Recovery, "\n") {
				_, _ = fmt.Fprintln(w, "    "+output.StyleDim.Render(l))
			}
		}
	}
}

func printWarnings(w io.Writer, warnings []string) {
	for _, msg := range warnings {
		_, _ = fmt.Fprintln(w, output.Bullet(msg))
	}
}

// nextSteps suggests commands to get the project running.
func nextSteps(target string, r options.Resolved, results []steps.Result) []string {
	var out []string
	if dir := displayDir(target); dir != "." {
		out = append(out, "cd "+quotePath(dir))
	}

	installed := false
	for _, res := range results {
		if res.Name == steps.NameInstall && res.OK() {
			installed = true
		}
	}
	if pm, ok := catalog.LookupPackageManager(r.PackageManager); ok && !installed && len(pm.Install) > 0 {
		out = append(out, strings.Join(pm.Install, " "))
	}
	out = append(out, "see README.md for how to run it")
	return out
}

// displayDir returns target relative to the working directory when it
// lies below it.
func displayDir(target string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return target
	}
	rel, err := filepath.Rel(cwd, target)
	if err != nil || strings.HasPrefix(rel, "..") {
		return target
	}
	return rel
}

func quotePath(p string) string {
	if strings.ContainsAny(p, " \t") {
		return `"` + p + `"`
	}
	return p
}
