package lesson

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/ssanyal/lingua/internal/catalog"
	"github.com/ssanyal/lingua/internal/engine"
	"github.com/ssanyal/lingua/internal/ui/components"
	"github.com/ssanyal/lingua/internal/ui/theme"
)

func (s *LessonScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}
	if s.session == nil {
		return renderLoading(width)
	}
	if s.exhausted {
		return renderExhausted(width)
	}
	return s.renderChallenge(width)
}

func (s *LessonScreen) renderChallenge(width int) string {
	ch := s.session.Current()
	if ch == nil {
		return ""
	}

	var b strings.Builder

	// Progress and hearts line.
	bar := components.NewProgressBar("", s.session.Percentage()/100, true, width/2)
	hearts := components.NewHeartsMeter(s.session.Hearts(), engine.MaxHearts, s.session.InfiniteHearts())

	left := "  " + bar.View()
	right := hearts.View()
	gap := width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if gap < 1 {
		gap = 1
	}
	b.WriteString(left + strings.Repeat(" ", gap) + right)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	// Challenge counter and variant label.
	counter := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Challenge %d of %d  ·  %s",
			s.session.ActiveIndex()+1, s.session.Lesson().Len(), variantLabel(ch.Type)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, counter))
	b.WriteString("\n\n")

	// Question text.
	question := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(ch.Question)
	b.WriteString(question)
	b.WriteString("\n\n")

	// Variant input area.
	b.WriteString(s.renderInput(*ch, width))
	b.WriteString("\n")

	// Verdict banner / notices.
	switch {
	case s.evaluating:
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\nChecking..."))
	case s.evalNotice != "":
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Render("\n" + s.evalNotice))
	case s.session.Status() == engine.StatusCorrect:
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render("\nNicely done!"))
		b.WriteString("\n")
		b.WriteString(pressEnterHint(width, "continue"))
	case s.session.Status() == engine.StatusWrong:
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Bold(true).
			Render("\nNot quite"))
		b.WriteString("\n")
		b.WriteString(pressEnterHint(width, "try again"))
	}

	return b.String()
}

func (s *LessonScreen) renderInput(ch catalog.Challenge, width int) string {
	switch ch.Type {
	case catalog.TypeSelect, catalog.TypeAssist:
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, s.options.View())

	case catalog.TypeListening:
		var b strings.Builder
		if s.audioPlayed {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Render("  ♪ played"))
			b.WriteString("\n\n")
			b.WriteString(s.options.View())
		} else {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("  ♪ Press P to play the audio"))
		}
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, b.String())

	case catalog.TypeSpeaking:
		label := "  ● Press R to record yourself saying the sentence"
		if s.recorded {
			label = "  ● Recorded — press Enter to check"
		}
		return lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(label))

	case catalog.TypeMatchPairs:
		line := fmt.Sprintf("  Pairs matched: %d / %d", s.pairsResolved, len(ch.Options))
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if s.pairsResolved == len(ch.Options) {
			style = style.Foreground(theme.Success)
		}
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line))

	case catalog.TypeSentenceOrder:
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, s.renderTokens(ch))

	case catalog.TypeFillBlank, catalog.TypeTranslation:
		answerLine := lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render("Answer: " + s.input.View())
		return answerLine
	}

	return ""
}

// renderTokens shows the sentence built so far and the remaining word bank.
func (s *LessonScreen) renderTokens(ch catalog.Challenge) string {
	byID := make(map[string]string, len(ch.Options))
	for _, opt := range ch.Options {
		byID[opt.ID] = opt.Text
	}

	var b strings.Builder

	var placed []string
	for _, id := range s.tokensPlaced {
		placed = append(placed, byID[id])
	}
	sentence := strings.Join(placed, " ")
	if sentence == "" {
		sentence = "…"
	}
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("  " + sentence))
	b.WriteString("\n\n")

	remaining := s.remainingTokens(ch)
	var bank []string
	for i, opt := range remaining {
		bank = append(bank, fmt.Sprintf("%d:%s", i+1, opt.Text))
	}
	if len(bank) > 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("  " + strings.Join(bank, "   ")))
	} else {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Success).Render("  All words placed — press Enter to check"))
	}

	return b.String()
}

func variantLabel(t catalog.Type) string {
	switch t {
	case catalog.TypeSelect:
		return "Pick the meaning"
	case catalog.TypeAssist:
		return "Choose the translation"
	case catalog.TypeFillBlank:
		return "Fill in the blank"
	case catalog.TypeTranslation:
		return "Translate the sentence"
	case catalog.TypeListening:
		return "Listen and choose"
	case catalog.TypeSpeaking:
		return "Say it out loud"
	case catalog.TypeMatchPairs:
		return "Match the pairs"
	case catalog.TypeSentenceOrder:
		return "Build the sentence"
	default:
		return string(t)
	}
}

func pressEnterHint(width int, verb string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press Enter to " + verb)
}

func renderLoading(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n\n  Loading lesson...")
}

func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
}

func renderExhausted(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Hearts).
		Bold(true).
		Render("You're out of hearts!"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Practice completed lessons to earn hearts back,\nor subscribe for unlimited hearts."))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press any key to go back."))
	return b.String()
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
