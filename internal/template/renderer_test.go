package template

import (
	"errors"
	"io/fs"
	"strings"
	"testing"
	"testing/fstest"
	"text/template"
)

func TestRendererRender(t *testing.T) {
	t.Run("successful_render", func(t *testing.T) {
		fs := fstest.MapFS{
			"entry/go/none.tmpl": &fstest.MapFile{
				Data: []byte("fmt.Println(\"{{.Name}} is up\")\n"),
			},
		}
		r := NewRenderer(fs)

		result, err := r.Render("entry/go/none.tmpl", map[string]string{"Name": "svc"})
		if err != nil {
			t.Fatalf("Render error: %v", err)
		}

		expected := "fmt.Println(\"svc is up\")\n"
		if string(result) != expected {
			t.Errorf("Render result = %q, want %q", string(result), expected)
		}
	})

	t.Run("missing_key_strict_mode", func(t *testing.T) {
		fs := fstest.MapFS{
			"test.tmpl": &fstest.MapFile{Data: []byte("Copyright {{.Year}} {{.Holder}}")},
		}
		r := NewRenderer(fs)

		_, err := r.Render("test.tmpl", map[string]string{"Year": "2026"})
		if !errors.Is(err, ErrMissingTemplateKey) {
			t.Errorf("expected ErrMissingTemplateKey, got: %v", err)
		}
	})

	t.Run("nonexistent_template", func(t *testing.T) {
		r := NewRenderer(fstest.MapFS{})

		_, err := r.Render("entry/cobol/none.tmpl", nil)
		if !errors.Is(err, ErrTemplateNotFound) {
			t.Errorf("expected ErrTemplateNotFound, got: %v", err)
		}
	})

	t.Run("javascript_interpolation_is_not_a_token", func(t *testing.T) {
		fs := fstest.MapFS{
			"t.tmpl": &fstest.MapFile{Data: []byte("console.log(`port ${PORT}`); // {{.Name}}")},
		}
		r := NewRenderer(fs)

		out, err := r.Render("t.tmpl", map[string]string{"Name": "api"})
		if err != nil {
			t.Fatalf("Render error: %v", err)
		}
		if !strings.Contains(string(out), "${PORT}") {
			t.Errorf("Render result = %q, want ${PORT} preserved", out)
		}
	})

	t.Run("braces_in_data_are_written_verbatim", func(t *testing.T) {
		fs := fstest.MapFS{
			"t.tmpl": &fstest.MapFile{Data: []byte("# {{.Name}}\n\n{{.Description}}\n")},
		}
		r := NewRenderer(fs)

		out, err := r.Render("t.tmpl", map[string]string{
			"Name":        "demo",
			"Description": "Renders {{ title }} placeholders",
		})
		if err != nil {
			t.Fatalf("Render error: %v", err)
		}
		if !strings.Contains(string(out), "Renders {{ title }} placeholders") {
			t.Errorf("Render result = %q, want description verbatim", out)
		}
	})

	t.Run("literal_directive_in_template", func(t *testing.T) {
		fs := fstest.MapFS{
			"t.tmpl": &fstest.MapFile{Data: []byte(`# {{"{{ .Name }}"}}`)},
		}
		r := NewRenderer(fs)

		_, err := r.Render("t.tmpl", map[string]string{"Name": "demo"})
		if !errors.Is(err, ErrUnexpandedToken) {
			t.Errorf("expected ErrUnexpandedToken, got: %v", err)
		}
	})

	t.Run("literal_directive_in_branch", func(t *testing.T) {
		fs := fstest.MapFS{
			"t.tmpl": &fstest.MapFile{Data: []byte(`{{if .Name}}ok{{else}}{{printf "%s" "{{.Missing}}"}}{{end}}`)},
		}
		r := NewRenderer(fs)

		_, err := r.Render("t.tmpl", map[string]string{"Name": "demo"})
		if !errors.Is(err, ErrUnexpandedToken) {
			t.Errorf("expected ErrUnexpandedToken, got: %v", err)
		}
	})
}

func TestRendererHas(t *testing.T) {
	fs := fstest.MapFS{
		"license/mit.tmpl": &fstest.MapFile{Data: []byte("MIT")},
	}
	r := NewRenderer(fs)

	if !r.Has(LicenseTemplatePath("mit")) {
		t.Error("Has(license/mit.tmpl) = false, want true")
	}
	if r.Has(LicenseTemplatePath("wtfpl")) {
		t.Error("Has(license/wtfpl.tmpl) = true, want false")
	}
}

func TestTitleTemplateFunc(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"my-app", "My App"},
		{"data_pipeline", "Data Pipeline"},
		{"api", "Api"},
	}

	fs := fstest.MapFS{"t.tmpl": &fstest.MapFile{Data: []byte("{{title .}}")}}
	r := NewRenderer(fs)

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			out, err := r.Render("t.tmpl", tt.in)
			if err != nil {
				t.Fatalf("Render error: %v", err)
			}
			if string(out) != tt.want {
				t.Errorf("title(%q) = %q, want %q", tt.in, out, tt.want)
			}
		})
	}
}

func TestEmbeddedTemplates(t *testing.T) {
	r, err := NewEmbeddedRenderer()
	if err != nil {
		t.Fatalf("NewEmbeddedRenderer() error = %v", err)
	}

	for _, lang := range []string{"javascript", "typescript", "python", "go", "rust", "ruby", "php", "csharp", "java", "kotlin", "swift", "cpp"} {
		if !r.Has(EntryTemplatePath(lang, "none")) {
			t.Errorf("missing fallback entry template for %s", lang)
		}
	}
	for _, id := range []string{"mit", "apache2", "gpl3", "bsd3", "mpl2", "unlicense", "proprietary"} {
		if !r.Has(LicenseTemplatePath(id)) {
			t.Errorf("missing license template %s", id)
		}
	}
}
func TestEmbeddedTemplates_NoLiteralDirectives(t *testing.T) {
	fsys, err := EmbeddedTemplates()
	if err != nil {
		t.Fatalf("EmbeddedTemplates() error = %v", err)
	}
	err = fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		content, err := fs.ReadFile(fsys, path)
		if err != nil {
			return err
		}
		tmpl, err := template.New(path).Funcs(templateFuncMap).Parse(string(content))
		if err != nil {
			t.Errorf("parse %s: %v", path, err)
			return nil
		}
		if tmpl.Tree == nil {
			return nil
		}
		if tok := findLiteralToken(tmpl.Tree.Root); tok != "" {
			t.Errorf("%s emits literal directive %q", path, tok)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("walk templates: %v", err)
	}
}
