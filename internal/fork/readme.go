package fork

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/blazestart/blazestart/internal/defs"
)

// readmeNames are the README spellings recognized in a cloned tree.
var readmeNames = []string{defs.ReadmeMD, "readme.md", "Readme.md", "README.markdown", "README"}

// FindReadme returns the path of the README in dir.
func FindReadme(dir string) (string, error) {
	for _, name := range readmeNames {
		p := filepath.Join(dir, name)
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w in %s", ErrNoReadme, dir)
}

// RewriteReadme replaces the first level-one heading with name and puts
// a fork notice under it. A non-empty description takes the place of the
// first prose paragraph below the heading, or is inserted when there is
// none. Without a heading the block is prepended.
func RewriteReadme(content, name, sourceURL, description string) string {
	description = strings.TrimSpace(description)
	var header strings.Builder
	header.WriteString("# " + name + "\n\n")
	header.WriteString("> Forked from " + sourceURL + "\n")
	if description != "" {
		header.WriteString("\n" + description + "\n")
	}

	lines := strings.Split(content, "\n")
	inFence := false
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") {
			inFence = !inFence
			continue
		}
		if inFence || !strings.HasPrefix(trimmed, "# ") {
			continue
		}
		rest := lines[i+1:]
		if description != "" {
			rest = dropLeadParagraph(rest)
		}
		return strings.Join(lines[:i], "\n") + prefixNewline(i) + header.String() + strings.Join(rest, "\n")
	}

	if strings.TrimSpace(content) == "" {
		return header.String()
	}
	return header.String() + "\n" + content
}

// dropLeadParagraph removes the first paragraph of lines when it is prose.
// Headings, quotes, lists, fences, tables, images and HTML are kept.
func dropLeadParagraph(lines []string) []string {
	start := 0
	for start < len(lines) && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	if start == len(lines) || !isProse(lines[start]) {
		return lines
	}
	end := start
	for end < len(lines) && strings.TrimSpace(lines[end]) != "" {
		end++
	}
	return lines[end:]
}

func isProse(line string) bool {
	trimmed := strings.TrimSpace(line)
	for _, marker := range []string{"#", ">", "-", "*", "+", "|", "!", "[!", "<", "```", "~~~"} {
		if strings.HasPrefix(trimmed, marker) {
			return false
		}
	}
	return trimmed != ""
}

func prefixNewline(i int) string {
	if i == 0 {
		return ""
	}
	return "\n"
}
