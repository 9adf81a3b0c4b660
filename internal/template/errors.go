// Package template renders the embedded text/template sources used for
// generated entry files and license bodies.
package template

import "errors"

// Sentinel errors for template rendering.
var (
	// ErrTemplateNotFound indicates the named template does not exist.
	ErrTemplateNotFound = errors.New("template: not found")

	// ErrMissingTemplateKey indicates the data lacked a key the template referenced.
	ErrMissingTemplateKey = errors.New("template: missing key")

	// ErrUnexpandedToken indicates template directives survived rendering.
	ErrUnexpandedToken = errors.New("template: unexpanded token")
)
