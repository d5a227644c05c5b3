package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/ssanyal/lingua/internal/ui/theme"
)

// HeartsMeter displays remaining hearts, or ∞ for subscribers.
type HeartsMeter struct {
	Count    int
	Max      int
	Infinite bool
}

// NewHeartsMeter creates a hearts meter.
func NewHeartsMeter(count, max int, infinite bool) HeartsMeter {
	return HeartsMeter{Count: count, Max: max, Infinite: infinite}
}

// View renders the meter.
func (h HeartsMeter) View() string {
	if h.Infinite {
		return lipgloss.NewStyle().Foreground(theme.Hearts).Bold(true).Render("♥ ∞")
	}

	count := h.Count
	if count < 0 {
		count = 0
	}
	if count > h.Max {
		count = h.Max
	}

	full := lipgloss.NewStyle().Foreground(theme.Hearts).Render(strings.Repeat("♥ ", count))
	empty := lipgloss.NewStyle().Foreground(theme.TextDim).Render(strings.Repeat("♡ ", h.Max-count))
	return strings.TrimRight(full+empty, " ")
}
