package project

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/blazestart/blazestart/internal/options"
	"github.com/blazestart/blazestart/internal/synth"
)

// --- Test helpers ---

type recordingReporter struct {
	total int
	steps []string
	ended bool
}

func (r *recordingReporter) Begin(total int)  { r.total = total }
func (r *recordingReporter) Step(name string) { r.steps = append(r.steps, name) }
func (r *recordingReporter) End()             { r.ended = true }

func newTestGenerator(t *testing.T) Generator {
	t.Helper()
	s, err := synth.New()
	if err != nil {
		t.Fatalf("synth.New() error = %v", err)
	}
	return NewGenerator(s, nil)
}

func mustResolve(t *testing.T, o options.Options) options.Resolved {
	t.Helper()
	r, err := o.Resolve()
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	return r
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected file %s to exist: %v", path, err)
		return
	}
	if info.IsDir() {
		t.Errorf("expected %s to be a file", path)
	}
}

func assertNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("expected %s to not exist, stat error = %v", path, err)
	}
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// --- Generator tests ---

func TestGenerate_TypeScriptExpress(t *testing.T) {
	root := t.TempDir()
	gen := newTestGenerator(t)
	rep := &recordingReporter{}

	result, err := gen.Generate(context.Background(), GenerateOptions{
		ProjectRoot: root,
		Project: mustResolve(t, options.Options{
			Name:          "api",
			Language:      "typescript",
			Framework:     "express",
			Linters:       []string{"eslint", "prettier"},
			SetupVCSHooks: options.Bool(true),
		}),
		Reporter: rep,
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	for _, dir := range []string{"src", "tests", "docs", "src/routes", "src/middleware"} {
		if !dirExists(filepath.Join(root, dir)) {
			t.Errorf("expected directory %s to exist", dir)
		}
	}
	for _, f := range []string{
		".gitignore", "LICENSE", "README.md", "package.json", "src/index.ts",
		"tsconfig.json", ".eslintrc.json", ".prettierrc", ".huskyrc.json",
	} {
		assertFileExists(t, filepath.Join(root, f))
	}

	if len(result.CreatedFiles) != 9 {
		t.Errorf("CreatedFiles = %v, want 9 entries", result.CreatedFiles)
	}
	if len(result.Warnings) != 0 {
		t.Errorf("Warnings = %v, want none", result.Warnings)
	}
	if rep.total != len(rep.steps) || !rep.ended {
		t.Errorf("reporter total=%d steps=%v ended=%v", rep.total, rep.steps, rep.ended)
	}
	if rep.steps[0] != synth.StepDirectories {
		t.Errorf("first step = %q, want %q", rep.steps[0], synth.StepDirectories)
	}
}

func TestGenerate_NoLicense(t *testing.T) {
	root := t.TempDir()
	gen := newTestGenerator(t)

	_, err := gen.Generate(context.Background(), GenerateOptions{
		ProjectRoot: root,
		Project:     mustResolve(t, options.Options{Name: "tool", Language: "go", License: "none"}),
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	assertNotExists(t, filepath.Join(root, "LICENSE"))
	assertFileExists(t, filepath.Join(root, "go.mod"))
	assertFileExists(t, filepath.Join(root, "main.go"))

	data, err := os.ReadFile(filepath.Join(root, "README.md"))
	if err != nil {
		t.Fatalf("read README: %v", err)
	}
	if !strings.Contains(string(data), "# tool") {
		t.Errorf("README missing title:\n%s", data)
	}
}

func TestGenerate_FilePermissionsAndNoTempFiles(t *testing.T) {
	root := t.TempDir()
	gen := newTestGenerator(t)

	_, err := gen.Generate(context.Background(), GenerateOptions{
		ProjectRoot: root,
		Project:     mustResolve(t, options.Options{Name: "perm", Language: "python"}),
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if strings.HasSuffix(d.Name(), ".tmp") {
			t.Errorf("leftover temp file %s", path)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("WalkDir() error = %v", err)
	}

	info, err := os.Stat(filepath.Join(root, "requirements.txt"))
	if err != nil {
		t.Fatalf("stat requirements.txt: %v", err)
	}
	if info.Mode().Perm()&0o044 == 0 {
		t.Errorf("requirements.txt mode = %v, want group/other readable", info.Mode().Perm())
	}
}

func TestGenerate_OverwritesExistingFile(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "README.md"), []byte("old"), 0o644); err != nil {
		t.Fatal(err)
	}

	gen := newTestGenerator(t)
	_, err := gen.Generate(context.Background(), GenerateOptions{
		ProjectRoot: root,
		Project:     mustResolve(t, options.Options{Name: "fresh", Language: "rust"}),
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	data, _ := os.ReadFile(filepath.Join(root, "README.md"))
	if string(data) == "old" {
		t.Error("README.md was not overwritten")
	}
}

func TestGenerate_InvalidRoot(t *testing.T) {
	gen := newTestGenerator(t)
	_, err := gen.Generate(context.Background(), GenerateOptions{
		ProjectRoot: filepath.Join(t.TempDir(), "missing"),
		Project:     mustResolve(t, options.Options{Name: "x", Language: "go"}),
	})
	if !errors.Is(err, ErrInvalidRoot) {
		t.Errorf("Generate() error = %v, want ErrInvalidRoot", err)
	}
}

func TestGenerate_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	root := t.TempDir()
	gen := newTestGenerator(t)
	_, err := gen.Generate(ctx, GenerateOptions{
		ProjectRoot: root,
		Project:     mustResolve(t, options.Options{Name: "x", Language: "go"}),
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Generate() error = %v, want context.Canceled", err)
	}
	assertNotExists(t, filepath.Join(root, "src"))
}

func TestGenerate_WriteFailureNamesStep(t *testing.T) {
	root := t.TempDir()
	// A directory where the ignore file should go makes the rename fail.
	if err := os.Mkdir(filepath.Join(root, ".gitignore"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, ".gitignore", "keep"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	gen := newTestGenerator(t)
	result, err := gen.Generate(context.Background(), GenerateOptions{
		ProjectRoot: root,
		Project:     mustResolve(t, options.Options{Name: "x", Language: "go"}),
	})
	if !errors.Is(err, ErrGenerateFailed) {
		t.Fatalf("Generate() error = %v, want ErrGenerateFailed", err)
	}
	if !strings.Contains(err.Error(), synth.StepIgnore) {
		t.Errorf("error %q does not name the failing step", err)
	}
	if result == nil || len(result.CreatedDirs) == 0 {
		t.Error("directories created before the failure should be reported")
	}
}

func TestPlan_WritesNothing(t *testing.T) {
	gen := newTestGenerator(t)
	plan, err := gen.Plan(mustResolve(t, options.Options{Name: "x", Language: "javascript", Framework: "react"}))
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}
	if !plan.Files().Has("vite.config.js") {
		t.Errorf("plan files = %v, want vite.config.js", plan.Files().Paths())
	}
}
