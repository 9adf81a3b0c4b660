package ui

import (
	"os"

	"github.com/mattn/go-isatty"
)

// HeadlessManager decides whether widgets may animate. Animated widgets
// redraw stdout in place, so stdout must be a terminal.
type HeadlessManager struct {
	forced *bool
}

// NewHeadlessManager creates a HeadlessManager that detects headless
// mode from os.Stdout.
func NewHeadlessManager() *HeadlessManager {
	return &HeadlessManager{}
}

// IsHeadless reports whether widgets should print plain lines.
func (h *HeadlessManager) IsHeadless() bool {
	if h == nil {
		return true
	}
	if h.forced != nil {
		return *h.forced
	}
	fd := os.Stdout.Fd()
	return !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd)
}

// ForceHeadless overrides terminal detection.
func (h *HeadlessManager) ForceHeadless(force bool) {
	h.forced = &force
}

// ClearForce reverts to automatic detection.
func (h *HeadlessManager) ClearForce() {
	h.forced = nil
}
