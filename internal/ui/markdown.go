package ui

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

const defaultWrap = 80

// RenderMarkdown renders md for the terminal. Without colors it uses
// glamour's plain style so the output stays readable in logs.
func RenderMarkdown(theme *Theme, md string, width int) (string, error) {
	if width <= 0 {
		width = defaultWrap
	}

	style := glamour.WithAutoStyle()
	if theme == nil || theme.NoColor {
		style = glamour.WithStandardStyle("notty")
	}

	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(width))
	if err != nil {
		return "", fmt.Errorf("markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}
