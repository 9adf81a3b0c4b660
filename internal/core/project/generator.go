package project

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/blazestart/blazestart/internal/defs"
	"github.com/blazestart/blazestart/internal/options"
	"github.com/blazestart/blazestart/internal/synth"
)

// GenerateOptions configures one generation run.
type GenerateOptions struct {
	ProjectRoot string           // Existing, writable target directory.
	Project     options.Resolved // Validated option set.
	Reporter    Reporter         // Optional progress sink.
}

// Result summarizes the outcome of a generation run. Paths are relative to
// the project root and slash-separated.
type Result struct {
	CreatedDirs  []string
	CreatedFiles []string
	Warnings     []string
}

// Reporter receives progress events while a plan is written.
type Reporter interface {
	Begin(total int)
	Step(name string)
	End()
}

// Generator plans and writes projects.
type Generator interface {
	// Plan returns the in-memory project without writing anything.
	Plan(opts options.Resolved) (*synth.Plan, error)

	// Generate writes the project into opts.ProjectRoot.
	Generate(ctx context.Context, opts GenerateOptions) (*Result, error)
}

type projectGenerator struct {
	synth  *synth.Synthesizer
	logger *log.Logger
}

// NewGenerator creates a Generator over the given synthesizer.
func NewGenerator(s *synth.Synthesizer, logger *log.Logger) Generator {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &projectGenerator{synth: s, logger: logger}
}

func (g *projectGenerator) Plan(opts options.Resolved) (*synth.Plan, error) {
	return g.synth.Plan(opts)
}

// Generate writes every planned directory and file. A failed write aborts
// the run; files written by earlier steps are left in place.
func (g *projectGenerator) Generate(ctx context.Context, opts GenerateOptions) (*Result, error) {
	root := filepath.Clean(opts.ProjectRoot)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRoot, root)
	}

	plan, err := g.synth.Plan(opts.Project)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGenerateFailed, err)
	}

	g.logger.Info("generating project",
		"root", root,
		"name", opts.Project.Name,
		"language", opts.Project.Language,
		"framework", opts.Project.Framework,
	)

	reporter := opts.Reporter
	if reporter == nil {
		reporter = nopReporter{}
	}
	reporter.Begin(len(plan.Steps))
	defer reporter.End()

	result := &Result{}
	for _, w := range plan.Warnings {
		g.logger.Warn(w)
		result.Warnings = append(result.Warnings, w)
	}

	for _, step := range plan.Steps {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		reporter.Step(step.Name)

		if step.Name == synth.StepDirectories {
			if err := g.createDirs(root, plan.Dirs, result); err != nil {
				return result, fmt.Errorf("%w: %s: %w", ErrGenerateFailed, step.Name, err)
			}
			continue
		}

		for _, a := range step.Artifacts {
			if err := writeArtifact(root, a); err != nil {
				return result, fmt.Errorf("%w: %s: %w", ErrGenerateFailed, step.Name, err)
			}
			result.CreatedFiles = append(result.CreatedFiles, a.Path)
			g.logger.Debug("wrote file", "step", step.Name, "path", a.Path)
		}
	}

	g.logger.Info("project generated",
		"dirs", len(result.CreatedDirs),
		"files", len(result.CreatedFiles),
		"warnings", len(result.Warnings),
	)
	return result, nil
}

func (g *projectGenerator) createDirs(root string, dirs []string, result *Result) error {
	for _, d := range dirs {
		if err := os.MkdirAll(filepath.Join(root, filepath.FromSlash(d)), defs.DirPerm); err != nil {
			return fmt.Errorf("create %s: %w", d, err)
		}
		result.CreatedDirs = append(result.CreatedDirs, d)
	}
	return nil
}

func writeArtifact(root string, a synth.Artifact) error {
	path := filepath.Join(root, filepath.FromSlash(a.Path))
	if err := os.MkdirAll(filepath.Dir(path), defs.DirPerm); err != nil {
		return fmt.Errorf("create parent of %s: %w", a.Path, err)
	}
	if err := atomicWrite(path, []byte(a.Content)); err != nil {
		return fmt.Errorf("write %s: %w", a.Path, err)
	}
	return nil
}

// atomicWrite writes data to a file atomically using temp file + os.Rename.
func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".blazestart-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }() // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Chmod(defs.FilePerm); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	return os.Rename(tmpName, path)
}

type nopReporter struct{}

func (nopReporter) Begin(int)   {}
func (nopReporter) Step(string) {}
func (nopReporter) End()        {}
