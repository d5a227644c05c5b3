package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ssanyal/lingua/internal/catalog"
	"github.com/ssanyal/lingua/internal/ui/theme"
)

// OptionList is a selectable list of challenge options. It handles cursor
// movement only; submission and grading belong to the session engine, so the
// list never decides correctness itself. MarkVerdict colors the chosen option
// once the platform has graded it.
type OptionList struct {
	Options []catalog.Option
	Cursor  int

	frozen   bool
	graded   bool
	correct  bool
	gradedID string
}

// NewOptionList creates an option list over the challenge's options.
func NewOptionList(options []catalog.Option) OptionList {
	return OptionList{Options: options}
}

// Init returns nil.
func (o OptionList) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation. Frozen lists ignore input.
func (o OptionList) Update(msg tea.Msg) (OptionList, tea.Cmd) {
	if o.frozen {
		return o, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return o, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if o.Cursor > 0 {
			o.Cursor--
		}
	case "down", "j":
		if o.Cursor < len(o.Options)-1 {
			o.Cursor++
		}
	}

	return o, nil
}

// Current returns the option under the cursor.
func (o OptionList) Current() (catalog.Option, bool) {
	if o.Cursor < 0 || o.Cursor >= len(o.Options) {
		return catalog.Option{}, false
	}
	return o.Options[o.Cursor], true
}

// Freeze stops the list from reacting to input, for the window between
// submission and verdict.
func (o *OptionList) Freeze() {
	o.frozen = true
}

// MarkVerdict records the grading result for the given option id.
func (o *OptionList) MarkVerdict(optionID string, correct bool) {
	o.frozen = true
	o.graded = true
	o.correct = correct
	o.gradedID = optionID
}

// Reset clears freeze and verdict state for a retry of the same challenge.
func (o *OptionList) Reset() {
	o.frozen = false
	o.graded = false
	o.gradedID = ""
}

// View renders the option list.
func (o OptionList) View() string {
	var s string
	labels := "ABCDEFGH"

	for i, opt := range o.Options {
		label := byte('?')
		if i < len(labels) {
			label = labels[i]
		}
		prefix := "  "
		if i == o.Cursor && !o.frozen {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%c)  %s", prefix, label, opt.Text)

		switch {
		case o.graded && opt.ID == o.gradedID && o.correct:
			s += lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(line) + "\n"
		case o.graded && opt.ID == o.gradedID:
			s += lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render(line) + "\n"
		case o.graded:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
		case i == o.Cursor:
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}

	return s
}
