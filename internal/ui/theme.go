// Package ui provides the terminal widgets shared by the blazestart
// commands: progress bars, spinners, the step reporter and markdown
// rendering. Every widget degrades to plain lines when no terminal is
// attached or colors are disabled.
package ui

import (
	"os"
)

// Colors is the hex palette used by the widgets.
type Colors struct {
	Primary   string
	Secondary string
	Success   string
	Muted     string
}

// Theme controls how widgets render.
type Theme struct {
	NoColor bool
	Colors  Colors
}

// NewTheme returns the default theme. Colors are disabled when noColor is
// set or the NO_COLOR environment variable is present.
func NewTheme(noColor bool) *Theme {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		noColor = true
	}
	return &Theme{
		NoColor: noColor,
		Colors: Colors{
			Primary:   "#FF8C42",
			Secondary: "#FFD166",
			Success:   "#06D6A0",
			Muted:     "#6C757D",
		},
	}
}

// Progress creates progress indicators.
type Progress interface {
	// Start creates a determinate progress bar with the given total.
	Start(title string, total int) ProgressBar
	// Spinner creates an indeterminate spinner.
	Spinner(title string) Spinner
}

// ProgressBar is a determinate progress indicator.
type ProgressBar interface {
	Increment(n int)
	SetTitle(title string)
	Done()
}

// Spinner is an indeterminate progress indicator.
type Spinner interface {
	SetTitle(title string)
	Stop()
}
