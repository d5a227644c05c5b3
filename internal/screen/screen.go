package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/ssanyal/lingua/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// Status carries the header indicators: remaining hearts and lifetime points.
type Status struct {
	Hearts   int
	Infinite bool
	Points   int
}

// StatusProvider is an optional interface for screens that know the
// learner's current hearts and points.
type StatusProvider interface {
	Status() Status
}
