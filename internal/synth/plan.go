package synth

import (
	"fmt"

	"github.com/blazestart/blazestart/internal/catalog"
	"github.com/blazestart/blazestart/internal/options"
)

// Step names, in generation order.
const (
	StepDirectories = "directories"
	StepIgnore      = "ignore"
	StepLicense     = "license"
	StepReadme      = "readme"
	StepManifest    = "manifest"
	StepEntry       = "entry"
	StepConfigs     = "configs"
	StepLinters     = "linters"
	StepHooks       = "hooks"
)

// PlanStep is one generation step and the files it writes.
type PlanStep struct {
	Name      string
	Artifacts []Artifact
}

// Plan is the complete, in-memory description of a project: the
// directories to create and the files each step writes.
type Plan struct {
	Dirs     []string
	Steps    []PlanStep
	Warnings []string
}

// Files returns every artifact across all steps in write order.
func (p *Plan) Files() *ArtifactSet {
	set := &ArtifactSet{}
	for _, st := range p.Steps {
		set.AddAll(st.Artifacts)
	}
	return set
}

// Plan synthesizes every file for the resolved options without touching
// the filesystem. Steps that produce nothing are still listed so progress
// reporting stays stable.
func (s *Synthesizer) Plan(r options.Resolved) (*Plan, error) {
	p := &Plan{Dirs: Directories(r.Language, r.Framework)}
	add := func(name string, as ...Artifact) {
		p.Steps = append(p.Steps, PlanStep{Name: name, Artifacts: as})
	}

	add(StepDirectories)

	if r.IncludeIgnoreFile {
		add(StepIgnore, s.IgnoreFile(r.Language))
	} else {
		add(StepIgnore)
	}

	if r.License != catalog.NoLicense {
		lic, err := s.License(r)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", StepLicense, err)
		}
		add(StepLicense, lic)
	} else {
		add(StepLicense)
	}

	readme, err := s.Readme(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", StepReadme, err)
	}
	add(StepReadme, readme)

	manifest, err := s.Manifest(r).Artifacts()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", StepManifest, err)
	}
	add(StepManifest, manifest...)

	entry, ok, err := s.Entry(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", StepEntry, err)
	}
	if !ok {
		p.Warnings = append(p.Warnings, fmt.Sprintf("no entry template for %s/%s; entry file skipped", r.Language, r.Framework))
	}
	add(StepEntry, entry...)

	configs, err := s.SecondaryConfigs(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", StepConfigs, err)
	}
	add(StepConfigs, configs...)

	linters, err := s.LinterConfigs(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", StepLinters, err)
	}
	add(StepLinters, linters...)

	if r.SetupVCSHooks {
		hooks, warnings, err := s.HookConfigs(r)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", StepHooks, err)
		}
		p.Warnings = append(p.Warnings, warnings...)
		add(StepHooks, hooks...)
	} else {
		add(StepHooks)
	}

	return p, nil
}
