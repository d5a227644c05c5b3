package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ssanyal/lingua/internal/engine"
	"github.com/ssanyal/lingua/internal/router"
	"github.com/ssanyal/lingua/internal/screen"
	"github.com/ssanyal/lingua/internal/ui/components"
	"github.com/ssanyal/lingua/internal/ui/layout"
	"github.com/ssanyal/lingua/internal/ui/theme"
)

// PracticeRequestedMsg asks the lesson screen underneath to restart the
// finished session in practice mode. The summary pops itself first, so the
// lesson screen is active when this message arrives.
type PracticeRequestedMsg struct{}

// SummaryScreen displays the completion summary for a finished lesson pass.
type SummaryScreen struct {
	summary engine.Summary
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)
var _ screen.StatusProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(sum engine.Summary) *SummaryScreen {
	return &SummaryScreen{summary: sum}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Lesson Complete"
}

func (s *SummaryScreen) Status() screen.Status {
	return screen.Status{
		Hearts:   s.summary.Hearts,
		Infinite: s.summary.Infinite,
	}
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "P", Description: "Practice again"},
		{Key: "Enter", Description: "Done"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "p":
		// Pop back to the lesson screen, then ask it to restart.
		return s, tea.Sequence(
			func() tea.Msg { return router.PopScreenMsg{} },
			func() tea.Msg { return PracticeRequestedMsg{} },
		)
	case "enter", "esc":
		// Pop summary and the lesson screen beneath it.
		return s, tea.Sequence(
			func() tea.Msg { return router.PopScreenMsg{} },
			func() tea.Msg { return router.PopScreenMsg{} },
		)
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Lesson complete!"))
	b.WriteString("\n\n")

	mode := "Lesson"
	if s.summary.Practice {
		mode = "Practice"
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(mode + " finished"))
	b.WriteString("\n\n")

	points := lipgloss.NewStyle().
		Foreground(theme.Accent).
		Bold(true).
		Render(fmt.Sprintf("✦ %d XP", s.summary.Points))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, points))
	b.WriteString("\n\n")

	hearts := components.NewHeartsMeter(s.summary.Hearts, engine.MaxHearts, s.summary.Infinite)
	heartsLine := lipgloss.NewStyle().Foreground(theme.TextDim).Render("Hearts left  ") + hearts.View()
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, heartsLine))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press P to practice again, or Enter to go home."))

	return b.String()
}
