package summary

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/ssanyal/lingua/internal/engine"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func testSummary() engine.Summary {
	return engine.Summary{
		LessonID: "l1",
		Points:   40,
		Hearts:   3,
	}
}

func TestSummaryScreen_View(t *testing.T) {
	s := New(testSummary())

	view := s.View(80, 24)
	if view == "" {
		t.Fatal("expected non-empty view")
	}
}

func TestSummaryScreen_PracticeAgain(t *testing.T) {
	s := New(testSummary())

	_, cmd := s.Update(keyPress('p'))
	if cmd == nil {
		t.Fatal("expected a command for practice again")
	}
}

func TestSummaryScreen_Done(t *testing.T) {
	s := New(testSummary())

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command to leave the summary")
	}
}

func TestSummaryScreen_StatusReportsHearts(t *testing.T) {
	s := New(testSummary())

	st := s.Status()
	if st.Hearts != 3 || st.Infinite {
		t.Errorf("status = %+v, want 3 finite hearts", st)
	}
}
