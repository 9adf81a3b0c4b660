// Package cli provides the cobra command tree of the blazestart binary
// and the composition root that wires the domain packages together.
package cli

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/blazestart/blazestart/internal/core/project"
	"github.com/blazestart/blazestart/internal/core/steps"
	"github.com/blazestart/blazestart/internal/fork"
	"github.com/blazestart/blazestart/internal/github"
	"github.com/blazestart/blazestart/internal/output"
	"github.com/blazestart/blazestart/internal/profile"
	"github.com/blazestart/blazestart/internal/synth"
	"github.com/blazestart/blazestart/internal/ui"
)

// Dependencies holds every service the commands use. It is the only
// place where concrete types are instantiated and wired together.
type Dependencies struct {
	Synth     *synth.Synthesizer
	Generator project.Generator
	Forker    *fork.Forker
	Store     *profile.Store
	Settings  *profile.Settings
	// NewGH builds a gh client for a working tree.
	NewGH func(root, token string) github.GHClient
	// Exec runs install and editor processes.
	Exec     steps.ExecFunc
	Theme    *ui.Theme
	Headless *ui.HeadlessManager
	Logger   *log.Logger
}

// deps is the global dependencies instance, initialized by InitDependencies.
var deps *Dependencies

// NewDependencies wires the services against the config home directory.
func NewDependencies(home string, logger *log.Logger) (*Dependencies, error) {
	s, err := synth.New()
	if err != nil {
		return nil, fmt.Errorf("init synthesizer: %w", err)
	}
	settings, err := profile.LoadSettings(home)
	if err != nil {
		return nil, err
	}

	return &Dependencies{
		Synth:     s,
		Generator: project.NewGenerator(s, logger),
		Forker:    fork.New(s, fork.WithLogger(logger)),
		Store:     profile.NewStore(profile.ProfilesDir(home)),
		Settings:  settings,
		NewGH: func(root, token string) github.GHClient {
			opts := []github.Option{github.WithLogger(logger)}
			if token != "" {
				opts = append(opts, github.WithToken(token))
			}
			return github.NewGHClient(root, opts...)
		},
		Exec:     steps.Exec,
		Theme:    ui.NewTheme(false),
		Headless: ui.NewHeadlessManager(),
		Logger:   logger,
	}, nil
}

// InitDependencies creates the global dependencies from the environment.
func InitDependencies() error {
	home, err := profile.ConfigHome()
	if err != nil {
		return err
	}
	d, err := NewDependencies(home, output.Logger)
	if err != nil {
		return err
	}
	deps = d
	return nil
}

// GetDeps returns the current Dependencies instance.
func GetDeps() *Dependencies {
	return deps
}

// SetDeps replaces the global dependencies (used for testing).
func SetDeps(d *Dependencies) {
	deps = d
}
