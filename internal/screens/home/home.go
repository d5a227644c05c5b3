// Package home renders the course ledger: units with their lessons classified
// as completed, current, or locked. Only enterable lessons can be opened.
package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ssanyal/lingua/internal/api"
	"github.com/ssanyal/lingua/internal/catalog"
	"github.com/ssanyal/lingua/internal/router"
	"github.com/ssanyal/lingua/internal/screen"
	"github.com/ssanyal/lingua/internal/screens/lesson"
	"github.com/ssanyal/lingua/internal/store"
	"github.com/ssanyal/lingua/internal/ui/components"
	"github.com/ssanyal/lingua/internal/ui/layout"
	"github.com/ssanyal/lingua/internal/ui/theme"
)

// progressLoadedMsg is sent when the learner's course progress arrives.
type progressLoadedMsg struct {
	Progress api.UserProgress
	Points   int
	Err      error
}

// HomeScreen is the course overview and entry point into lessons.
type HomeScreen struct {
	platform lesson.Platform
	events   store.EventRepo

	menu   components.Menu
	loaded bool
	errMsg string
	status screen.Status
	course string
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)
var _ screen.StatusProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(platform lesson.Platform, events store.EventRepo) *HomeScreen {
	return &HomeScreen{
		platform: platform,
		events:   events,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.loadProgress()
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) Status() screen.Status {
	return h.status
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	if h.errMsg != "" {
		return []layout.KeyHint{
			{Key: "R", Description: "Retry"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Open lesson"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) loadProgress() tea.Cmd {
	platform := h.platform
	events := h.events
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), api.DefaultTimeout)
		defer cancel()

		progress, err := platform.UserProgress(ctx)
		if err != nil {
			return progressLoadedMsg{Err: err}
		}

		points := 0
		if events != nil {
			points, _ = events.TotalPoints(ctx)
		}

		return progressLoadedMsg{Progress: progress, Points: points}
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case progressLoadedMsg:
		return h.handleProgress(msg)

	case tea.KeyMsg:
		if h.errMsg != "" {
			if msg.String() == "r" {
				h.errMsg = ""
				return h, h.loadProgress()
			}
			return h, nil
		}
		if !h.loaded {
			return h, nil
		}
		var cmd tea.Cmd
		h.menu, cmd = h.menu.Update(msg)
		return h, cmd
	}

	return h, nil
}

func (h *HomeScreen) handleProgress(msg progressLoadedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		h.errMsg = msg.Err.Error()
		return h, nil
	}

	h.status = screen.Status{
		Hearts:   msg.Progress.Hearts,
		Infinite: msg.Progress.Subscribed,
		Points:   msg.Points,
	}
	h.course = msg.Progress.ActiveCourse
	h.menu = components.NewMenu(h.buildItems(msg.Progress.Units))
	h.loaded = true
	return h, nil
}

// buildItems flattens the course units into one menu: unit titles as
// unselectable dividers, lessons labelled by their ledger state.
func (h *HomeScreen) buildItems(units []catalog.Unit) []components.MenuItem {
	var items []components.MenuItem

	for _, unit := range units {
		items = append(items, components.MenuItem{
			Label:    "── " + unit.Title + " ──",
			Disabled: true,
		})

		states := catalog.LedgerStates(unit.Lessons)
		for i, ref := range unit.Lessons {
			state := states[i]
			label := lessonLabel(ref, state)
			lessonID := ref.ID

			items = append(items, components.MenuItem{
				Label:    label,
				Disabled: !state.Enterable(),
				Action: func() tea.Cmd {
					return func() tea.Msg {
						return router.PushScreenMsg{
							Screen: lesson.New(h.platform, h.events, lessonID),
						}
					}
				},
			})
		}
	}

	items = append(items, components.MenuItem{
		Label: "Quit",
		Action: func() tea.Cmd {
			return tea.Quit
		},
	})

	return items
}

func lessonLabel(ref catalog.LessonRef, state catalog.LessonState) string {
	switch state {
	case catalog.LessonCompleted:
		return fmt.Sprintf("✓ %s  (practice)", ref.Title)
	case catalog.LessonCurrent:
		return ref.Title
	default:
		return fmt.Sprintf("🔒 %s", ref.Title)
	}
}

func (h *HomeScreen) View(width, height int) string {
	if h.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(fmt.Sprintf("\n\n\n  Couldn't load your progress: %s\n\n  Press R to retry.", h.errMsg))
	}
	if !h.loaded {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n\n  Loading your course...")
	}

	var b strings.Builder
	b.WriteString("\n")

	title := h.course
	if title == "" {
		title = "Your course"
	}
	b.WriteString(theme.Title.Width(width).Render(title))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))

	return b.String()
}
