package template

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"regexp"
	"strings"
	"text/template"
	"text/template/parse"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// templateFuncMap is shared by every template.
var templateFuncMap = template.FuncMap{
	// jsonEscape escapes a string for safe embedding in JSON string values.
	"jsonEscape": func(s string) string {
		b, err := json.Marshal(s)
		if err != nil {
			return s
		}
		return string(b[1 : len(b)-1])
	},
	"title": func(s string) string {
		return cases.Title(language.English).String(strings.NewReplacer("-", " ", "_", " ").Replace(s))
	},
	"lower": strings.ToLower,
}

// unexpandedTokenPattern detects directives a template would emit literally,
// such as a quoted "{{ .Name }}" constant. Shell and JavaScript
// interpolations such as ${PORT} are legitimate output and are not matched.
var unexpandedTokenPattern = regexp.MustCompile(`\{\{\s*\.?[A-Za-z_][A-Za-z0-9_.]*\s*\}\}`)

// Renderer executes text/template files, failing on missing keys.
type Renderer interface {
	// Render parses the named template and executes it with data. Returns
	// ErrTemplateNotFound, ErrMissingTemplateKey or ErrUnexpandedToken.
	Render(templateName string, data any) ([]byte, error)

	// Has reports whether the named template exists.
	Has(templateName string) bool
}

type renderer struct {
	fsys fs.FS
}

// NewRenderer reads templates from fsys.
func NewRenderer(fsys fs.FS) Renderer {
	return &renderer{fsys: fsys}
}

// NewEmbeddedRenderer creates a Renderer over the built-in templates.
func NewEmbeddedRenderer() (Renderer, error) {
	fsys, err := EmbeddedTemplates()
	if err != nil {
		return nil, err
	}
	return NewRenderer(fsys), nil
}

// Has reports whether the named template exists.
func (r *renderer) Has(templateName string) bool {
	_, err := fs.Stat(r.fsys, templateName)
	return err == nil
}

// Render executes templateName against data. Text owned by the template is
// checked for directives it would emit literally; user data is written as is.
func (r *renderer) Render(templateName string, data any) ([]byte, error) {
	content, err := fs.ReadFile(r.fsys, templateName)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, templateName)
	}

	tmpl, err := template.New(templateName).
		Funcs(templateFuncMap).
		Option("missingkey=error").
		Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("template parse %q: %w", templateName, err)
	}

	for _, t := range tmpl.Templates() {
		if t.Tree == nil {
			continue
		}
		if tok := findLiteralToken(t.Tree.Root); tok != "" {
			return nil, fmt.Errorf("%w: found %q", ErrUnexpandedToken, tok)
		}
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingTemplateKey, err)
	}
	return buf.Bytes(), nil
}

// findLiteralToken walks a parse tree and returns the first directive-like
// token found in its text or string constants.
func findLiteralToken(node parse.Node) string {
	switch n := node.(type) {
	case nil:
		return ""
	case *parse.TextNode:
		return string(unexpandedTokenPattern.Find(n.Text))
	case *parse.StringNode:
		return unexpandedTokenPattern.FindString(n.Text)
	case *parse.ListNode:
		if n == nil {
			return ""
		}
		for _, child := range n.Nodes {
			if tok := findLiteralToken(child); tok != "" {
				return tok
			}
		}
	case *parse.ActionNode:
		return findLiteralToken(n.Pipe)
	case *parse.PipeNode:
		if n == nil {
			return ""
		}
		for _, cmd := range n.Cmds {
			if tok := findLiteralToken(cmd); tok != "" {
				return tok
			}
		}
	case *parse.CommandNode:
		for _, arg := range n.Args {
			if tok := findLiteralToken(arg); tok != "" {
				return tok
			}
		}
	case *parse.ChainNode:
		return findLiteralToken(n.Node)
	case *parse.IfNode:
		return findBranchToken(&n.BranchNode)
	case *parse.RangeNode:
		return findBranchToken(&n.BranchNode)
	case *parse.WithNode:
		return findBranchToken(&n.BranchNode)
	case *parse.TemplateNode:
		return findLiteralToken(n.Pipe)
	}
	return ""
}

func findBranchToken(b *parse.BranchNode) string {
	if tok := findLiteralToken(b.Pipe); tok != "" {
		return tok
	}
	if tok := findLiteralToken(b.List); tok != "" {
		return tok
	}
	return findLiteralToken(b.ElseList)
}
