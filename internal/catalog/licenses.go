package catalog

import "slices"

// NoLicense is the license id that suppresses the LICENSE file.
const NoLicense = "none"

// License describes a license choice.
type License struct {
	ID   string
	Name string
	URL  string
	// SPDX is the identifier written into package manifests.
	SPDX string
}

var licenses = []License{
	{ID: "mit", Name: "MIT License", URL: "https://opensource.org/licenses/MIT", SPDX: "MIT"},
	{ID: "apache2", Name: "Apache 2.0", URL: "https://www.apache.org/licenses/LICENSE-2.0", SPDX: "Apache-2.0"},
	{ID: "gpl3", Name: "GPLv3", URL: "https://www.gnu.org/licenses/gpl-3.0.html", SPDX: "GPL-3.0-or-later"},
	{ID: "bsd3", Name: "BSD 3-Clause", URL: "https://opensource.org/licenses/BSD-3-Clause", SPDX: "BSD-3-Clause"},
	{ID: "mpl2", Name: "MPL 2.0", URL: "https://www.mozilla.org/MPL/2.0/", SPDX: "MPL-2.0"},
	{ID: "unlicense", Name: "Unlicense", URL: "https://unlicense.org/", SPDX: "Unlicense"},
	{ID: "proprietary", Name: "Proprietary", SPDX: "UNLICENSED"},
	{ID: NoLicense, Name: "No License", SPDX: "UNLICENSED"},
}

// Licenses returns every license choice, including NoLicense.
func Licenses() []License {
	return slices.Clone(licenses)
}

// LicenseIDs returns the identifiers of every license choice.
func LicenseIDs() []string {
	ids := make([]string, len(licenses))
	for i, l := range licenses {
		ids[i] = l.ID
	}
	return ids
}

// LookupLicense returns the license with the given identifier.
func LookupLicense(id string) (License, bool) {
	for _, l := range licenses {
		if l.ID == id {
			return l, true
		}
	}
	return License{}, false
}
