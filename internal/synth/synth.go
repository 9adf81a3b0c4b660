// Package synth holds the pure synthesizers that turn a resolved option
// set into generated file content: manifests, entry points, ignore rules,
// license bodies, READMEs and the secondary tool configuration files.
//
// Nothing in this package touches the filesystem. Given the same options,
// version source and clock, every function returns byte-identical output.
package synth

import (
	"errors"
	"fmt"
	"time"

	"github.com/blazestart/blazestart/internal/template"
)

// Brand is the tool name embedded in generated descriptions and keywords.
const Brand = "BlazeStart"

// Sentinel errors for synthesis.
var (
	// ErrNoLicense is returned when a license body is requested for "none".
	ErrNoLicense = errors.New("synth: no license selected")

	// ErrUnknownLicense is returned for a license id without a template.
	ErrUnknownLicense = errors.New("synth: unknown license")
)

// Synthesizer produces generated file content. The zero value is not
// usable; construct one with New.
type Synthesizer struct {
	renderer template.Renderer
	versions VersionSource
	now      func() time.Time
}

// Option configures a Synthesizer.
type Option func(*Synthesizer)

// WithRenderer overrides the template renderer.
func WithRenderer(r template.Renderer) Option {
	return func(s *Synthesizer) {
		s.renderer = r
	}
}

// WithVersions overrides the dependency version source.
func WithVersions(v VersionSource) Option {
	return func(s *Synthesizer) {
		s.versions = v
	}
}

// WithClock overrides the clock used for license years.
func WithClock(now func() time.Time) Option {
	return func(s *Synthesizer) {
		s.now = now
	}
}

// New creates a Synthesizer backed by the embedded templates and the
// static version table.
func New(opts ...Option) (*Synthesizer, error) {
	s := &Synthesizer{
		versions: StaticVersions,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.renderer == nil {
		r, err := template.NewEmbeddedRenderer()
		if err != nil {
			return nil, fmt.Errorf("load templates: %w", err)
		}
		s.renderer = r
	}
	return s, nil
}
