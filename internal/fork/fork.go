package fork

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/blazestart/blazestart/internal/core/git"
	"github.com/blazestart/blazestart/internal/core/steps"
	"github.com/blazestart/blazestart/internal/defs"
	"github.com/blazestart/blazestart/internal/resilience"
	"github.com/blazestart/blazestart/internal/synth"
)

// Step names specific to forking.
const (
	NameHistory  = "history"
	NameReadme   = "readme"
	NameManifest = "manifest"
	NameLicense  = "license"
)

// Options describes one fork.
type Options struct {
	// URL is the normalized repository URL from ParseRepoURL.
	URL string
	// Name is the new project name. It defaults to RepoName(URL).
	Name string
	// Dir is the clone destination.
	Dir         string
	Description string
	Author      string
	// License is KeepLicense, a catalog license id, or none.
	License         string
	Clean           bool
	RewriteReadme   bool
	RewriteManifest bool
	Install         bool
	OpenEditor      bool
}

// CloneFunc clones url into dest.
type CloneFunc func(ctx context.Context, url, dest string, logger *log.Logger) error

// Forker clones repositories and prepares their rewrite steps.
type Forker struct {
	synth  *synth.Synthesizer
	logger *log.Logger
	clone  CloneFunc
	exec   steps.ExecFunc
	retry  resilience.Policy
}

// CloneRetry is the default retry policy for clones. A missing git binary
// or an occupied destination is never retried.
var CloneRetry = resilience.Policy{
	MaxRetries: 2,
	BaseDelay:  2 * time.Second,
	MaxDelay:   8 * time.Second,
	UseJitter:  true,
	Retryable: func(err error) bool {
		return !errors.Is(err, git.ErrDestinationExists) && !errors.Is(err, git.ErrSystemGitNotFound)
	},
}

// Option configures a Forker.
type Option func(*Forker)

// WithLogger sets the logger.
func WithLogger(logger *log.Logger) Option {
	return func(f *Forker) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// WithClone replaces git clone.
func WithClone(fn CloneFunc) Option {
	return func(f *Forker) { f.clone = fn }
}

// WithRetry replaces the clone retry policy.
func WithRetry(p resilience.Policy) Option {
	return func(f *Forker) { f.retry = p }
}

// WithExec replaces process execution for install and editor steps.
func WithExec(fn steps.ExecFunc) Option {
	return func(f *Forker) { f.exec = fn }
}

// New creates a Forker that renders licenses with s.
func New(s *synth.Synthesizer, opts ...Option) *Forker {
	f := &Forker{
		synth:  s,
		logger: log.New(io.Discard),
		clone:  git.Clone,
		exec:   steps.Exec,
		retry:  CloneRetry,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Clone fetches the repository into o.Dir, retrying transient failures.
// A partial checkout is removed before the next attempt.
func (f *Forker) Clone(ctx context.Context, o Options) error {
	policy := f.retry
	policy.OnRetry = func(attempt int, err error, delay time.Duration) {
		f.logger.Warn("clone failed, retrying", "url", o.URL, "attempt", attempt, "delay", delay, "error", err)
	}
	return resilience.Retry(ctx, policy, func(ctx context.Context) error {
		err := f.clone(ctx, o.URL, o.Dir, f.logger)
		if err != nil && !errors.Is(err, git.ErrDestinationExists) {
			_ = os.RemoveAll(o.Dir)
		}
		return err
	})
}

// Steps returns the best-effort rewrite steps for a cloned tree, in
// order: history, readme, manifest, license, commit, install, editor.
func (f *Forker) Steps(o Options) []steps.Step {
	var out []steps.Step
	if o.Clean {
		out = append(out, f.historyStep(o))
	}
	if o.RewriteReadme {
		out = append(out, f.readmeStep(o))
	}
	if o.RewriteManifest {
		out = append(out, f.manifestStep(o))
	}
	if o.License != "" && o.License != KeepLicense {
		out = append(out, f.licenseStep(o))
	}
	if o.Clean {
		out = append(out, steps.VCS(o.Dir, "Initial commit, forked from "+o.URL, f.logger))
	} else {
		out = append(out, steps.Commit(o.Dir, "Set up fork as "+o.Name, f.logger))
	}
	if o.Install {
		out = append(out, f.installStep(o))
	}
	if o.OpenEditor {
		out = append(out, steps.Editor(o.Dir, f.exec))
	}
	return out
}

func (f *Forker) historyStep(o Options) steps.Step {
	gitDir := filepath.Join(o.Dir, defs.GitDir)
	return steps.Step{
		Name:  NameHistory,
		Title: "Clearing git history",
		Run: func(context.Context) (string, error) {
			if err := os.RemoveAll(gitDir); err != nil {
				return "", fmt.Errorf("remove %s: %w", gitDir, err)
			}
			return "history removed", nil
		},
		Recovery: "rm -rf " + gitDir,
	}
}

func (f *Forker) readmeStep(o Options) steps.Step {
	return steps.Step{
		Name:  NameReadme,
		Title: "Rewriting README",
		Run: func(context.Context) (string, error) {
			path, err := FindReadme(o.Dir)
			if errors.Is(err, ErrNoReadme) {
				content := RewriteReadme("", o.Name, o.URL, o.Description)
				path = filepath.Join(o.Dir, defs.ReadmeMD)
				if err := os.WriteFile(path, []byte(content), defs.FilePerm); err != nil {
					return "", fmt.Errorf("write README: %w", err)
				}
				return "created " + defs.ReadmeMD, nil
			}
			if err != nil {
				return "", err
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return "", fmt.Errorf("read README: %w", err)
			}
			content := RewriteReadme(string(data), o.Name, o.URL, o.Description)
			if err := os.WriteFile(path, []byte(content), defs.FilePerm); err != nil {
				return "", fmt.Errorf("write README: %w", err)
			}
			return "updated " + filepath.Base(path), nil
		},
		Recovery: "edit README.md: set the title to " + o.Name + " and note the original repository",
	}
}

func (f *Forker) manifestStep(o Options) steps.Step {
	path := filepath.Join(o.Dir, defs.PackageJSON)
	return steps.Step{
		Name:  NameManifest,
		Title: "Rewriting package.json",
		Run: func(context.Context) (string, error) {
			data, err := os.ReadFile(path)
			if errors.Is(err, fs.ErrNotExist) {
				f.logger.Debug("no package.json to rewrite", "dir", o.Dir)
				return "no package.json", nil
			}
			if err != nil {
				return "", fmt.Errorf("read package.json: %w", err)
			}
			out, err := RewritePackageJSON(data, o.Name, o.Description)
			if err != nil {
				return "", err
			}
			if err := os.WriteFile(path, out, defs.FilePerm); err != nil {
				return "", fmt.Errorf("write package.json: %w", err)
			}
			return "renamed package to " + o.Name, nil
		},
		Recovery: fmt.Sprintf("edit package.json: set name to %q and version to %q, remove repository", o.Name, ForkVersion),
	}
}

func (f *Forker) licenseStep(o Options) steps.Step {
	holder := o.Author
	if holder == "" {
		holder = o.Name
	}
	return steps.Step{
		Name:  NameLicense,
		Title: "Replacing license",
		Run: func(context.Context) (string, error) {
			removed, err := ReplaceLicense(f.synth, o.Dir, o.License, holder, o.Name)
			if err != nil {
				return "", err
			}
			if len(removed) == 0 {
				return "license " + o.License, nil
			}
			return fmt.Sprintf("license %s (replaced %s)", o.License, strings.Join(removed, ", ")), nil
		},
		Recovery: "replace the LICENSE file by hand",
	}
}

func (f *Forker) installStep(o Options) steps.Step {
	return steps.Step{
		Name:  steps.NameInstall,
		Title: "Installing dependencies",
		Run: func(ctx context.Context) (string, error) {
			pm, err := DetectPackageManager(o.Dir)
			if err != nil {
				return "", err
			}
			return steps.Install(o.Dir, pm, f.exec).Run(ctx)
		},
		Recovery: "cd " + o.Dir + " and run your package manager's install command",
	}
}
