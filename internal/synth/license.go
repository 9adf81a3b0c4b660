package synth

import (
	"fmt"
	"strconv"

	"github.com/blazestart/blazestart/internal/catalog"
	"github.com/blazestart/blazestart/internal/defs"
	"github.com/blazestart/blazestart/internal/options"
	"github.com/blazestart/blazestart/internal/template"
)

type licenseData struct {
	Year   string
	Holder string
	Name   string
}

// License renders the LICENSE file body for the resolved options. The
// copyright holder is the author, or the project name when no author is
// set. Requesting "none" returns ErrNoLicense.
func (s *Synthesizer) License(r options.Resolved) (Artifact, error) {
	return s.LicenseFor(r.License, licenseHolder(r), r.Name)
}

// LicenseFor renders the license id for an explicit holder and project.
func (s *Synthesizer) LicenseFor(id, holder, project string) (Artifact, error) {
	if id == catalog.NoLicense {
		return Artifact{}, ErrNoLicense
	}
	if _, ok := catalog.LookupLicense(id); !ok {
		return Artifact{}, fmt.Errorf("%w: %s", ErrUnknownLicense, id)
	}

	data := licenseData{
		Year:   strconv.Itoa(s.now().Year()),
		Holder: holder,
		Name:   project,
	}
	out, err := s.renderer.Render(template.LicenseTemplatePath(id), data)
	if err != nil {
		return Artifact{}, fmt.Errorf("render license %s: %w", id, err)
	}
	return Artifact{Path: defs.LicenseFile, Content: string(out)}, nil
}

func licenseHolder(r options.Resolved) string {
	if r.Author != "" {
		return r.Author
	}
	return r.Name
}
