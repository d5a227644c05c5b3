package engine

import (
	"fmt"
	"testing"

	"github.com/ssanyal/lingua/internal/catalog"
)

func testLesson(t *testing.T, n int, percentage float64, completed ...bool) *catalog.Lesson {
	t.Helper()
	chs := make([]catalog.Challenge, n)
	for i := range chs {
		done := false
		if i < len(completed) {
			done = completed[i]
		}
		chs[i] = catalog.Challenge{
			ID:        fmt.Sprintf("ch-%d", i+1),
			Type:      catalog.TypeSelect,
			Question:  fmt.Sprintf("question %d", i+1),
			Order:     i + 1,
			Completed: done,
			Options: []catalog.Option{
				{ID: fmt.Sprintf("ch-%d-a", i+1), Text: "alpha", Order: 1},
				{ID: fmt.Sprintf("ch-%d-b", i+1), Text: "beta", Order: 2},
			},
		}
	}
	lesson, err := catalog.NewLesson("lesson-1", "Basics", percentage, chs)
	if err != nil {
		t.Fatalf("NewLesson: %v", err)
	}
	return lesson
}

// submit drives one full select → continue → verdict cycle.
func submit(t *testing.T, s *Session, correct bool, heartsAfter int) {
	t.Helper()
	cur := s.Current()
	if cur == nil {
		t.Fatal("submit on completed session")
	}
	if !s.Select(cur.Options[0].ID) {
		t.Fatalf("Select rejected on challenge %s", cur.ID)
	}
	if out := s.Continue(); out != OutcomeSubmit {
		t.Fatalf("Continue = %v, want OutcomeSubmit", out)
	}
	if err := s.Resolve(Verdict{Correct: correct, Hearts: heartsAfter}); err != nil {
		t.Fatalf("Resolve: %v", err)
	}
}

func TestFullPass_ReachesHundredPercentAndCompleted(t *testing.T) {
	for _, n := range []int{1, 3, 4, 7} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			s, err := New(testLesson(t, n, 0), MaxHearts, false, Hooks{})
			if err != nil {
				t.Fatalf("New: %v", err)
			}

			for i := 0; i < n; i++ {
				submit(t, s, true, MaxHearts)
				s.Continue()
			}

			if s.Percentage() != 100 {
				t.Errorf("Percentage = %v, want 100", s.Percentage())
			}
			if !s.Completed() {
				t.Error("expected Completed after N correct submissions")
			}
		})
	}
}

func TestPercentage_MonotonicAndClamped(t *testing.T) {
	s, err := New(testLesson(t, 3, 0), MaxHearts, false, Hooks{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	prev := s.Percentage()
	// Interleave wrong answers and retries; percentage must never move down.
	script := []bool{false, true, false, false, true, true}
	for _, correct := range script {
		if s.Completed() {
			break
		}
		submit(t, s, correct, 4)
		if s.Percentage() < prev {
			t.Errorf("percentage decreased: %v -> %v", prev, s.Percentage())
		}
		if s.Percentage() > 100 {
			t.Errorf("percentage exceeds 100: %v", s.Percentage())
		}
		prev = s.Percentage()
		s.Continue()
	}
}

func TestWrongVerdict_RetriesInPlace(t *testing.T) {
	s, err := New(testLesson(t, 3, 0), MaxHearts, false, Hooks{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	first := s.Current().ID
	submit(t, s, false, 4)

	if s.Status() != StatusWrong {
		t.Fatalf("Status = %v, want StatusWrong", s.Status())
	}
	if out := s.Continue(); out != OutcomeRetry {
		t.Fatalf("Continue = %v, want OutcomeRetry", out)
	}
	if s.Current().ID != first {
		t.Errorf("cursor advanced past wrong answer: now on %s", s.Current().ID)
	}
	if s.SelectedOptionID() != "" {
		t.Error("selection not cleared on retry")
	}
	if s.Status() != StatusNone {
		t.Errorf("Status = %v, want StatusNone after retry", s.Status())
	}
}

func TestPendingGuard_SecondContinueIsNoOp(t *testing.T) {
	s, err := New(testLesson(t, 2, 0), MaxHearts, false, Hooks{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	s.Select(s.Current().Options[0].ID)
	if out := s.Continue(); out != OutcomeSubmit {
		t.Fatalf("first Continue = %v, want OutcomeSubmit", out)
	}
	if out := s.Continue(); out != OutcomeNone {
		t.Errorf("second Continue while pending = %v, want OutcomeNone", out)
	}
	// Selection is also frozen while pending.
	if s.Select(s.Current().Options[1].ID) {
		t.Error("Select accepted while pending")
	}
}

func TestSelect_NoOpOncePendingVerdictShown(t *testing.T) {
	s, err := New(testLesson(t, 2, 0), MaxHearts, false, Hooks{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	submit(t, s, false, 4)
	if s.Select(s.Current().Options[1].ID) {
		t.Error("Select accepted while a verdict is showing")
	}
}

func TestScenario_FourChallengesTwoWrong(t *testing.T) {
	// Catalog of 4 SELECT challenges, subscription inactive, hearts=5.
	// correct, correct, wrong, wrong, correct, correct.
	s, err := New(testLesson(t, 4, 0), 5, false, Hooks{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	type step struct {
		correct     bool
		heartsAfter int
		wantPct     float64
	}
	steps := []step{
		{true, 5, 25},
		{true, 5, 50},
		{false, 4, 50},
		{false, 3, 50},
		{true, 3, 75},
		{true, 3, 100},
	}

	if s.Percentage() != 0 {
		t.Fatalf("initial percentage = %v, want 0", s.Percentage())
	}

	for i, st := range steps {
		submit(t, s, st.correct, st.heartsAfter)
		if s.Percentage() != st.wantPct {
			t.Errorf("step %d: percentage = %v, want %v", i, s.Percentage(), st.wantPct)
		}
		s.Continue()
	}

	if s.Hearts() != 3 {
		t.Errorf("Hearts = %d, want 3", s.Hearts())
	}
	if !s.Completed() {
		t.Error("expected Completed after both retried challenges answered correctly")
	}
}

func TestHeartsExhausted_NoMutationSignalOnce(t *testing.T) {
	signals := 0
	s, err := New(testLesson(t, 2, 0), 0, false, Hooks{
		OnHeartsExhausted: func() { signals++ },
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	s.Select(s.Current().Options[0].ID)
	if out := s.Continue(); out != OutcomeSubmit {
		t.Fatalf("Continue = %v, want OutcomeSubmit", out)
	}
	if err := s.RejectHeartsExhausted(); err != nil {
		t.Fatalf("RejectHeartsExhausted: %v", err)
	}

	if signals != 1 {
		t.Errorf("hearts-exhausted signals = %d, want 1", signals)
	}
	if s.Hearts() != 0 {
		t.Errorf("Hearts = %d, want 0 (unchanged)", s.Hearts())
	}
	if s.Percentage() != 0 {
		t.Errorf("Percentage = %v, want 0 (unchanged)", s.Percentage())
	}
	if s.Pending() {
		t.Error("pending not cleared after hearts-exhausted rejection")
	}
	if s.ActiveIndex() != 0 {
		t.Errorf("ActiveIndex = %d, want 0 (frozen in place)", s.ActiveIndex())
	}
}

func TestHearts_NeverNegative(t *testing.T) {
	s, err := New(testLesson(t, 2, 0), 1, false, Hooks{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	submit(t, s, false, -3) // hostile server value
	if s.Hearts() != 0 {
		t.Errorf("Hearts = %d, want clamped to 0", s.Hearts())
	}
}

func TestTransientFailure_LeavesStateUntouched(t *testing.T) {
	s, err := New(testLesson(t, 2, 0), 4, false, Hooks{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	opt := s.Current().Options[1].ID
	s.Select(opt)
	s.Continue()
	if err := s.Fail(); err != nil {
		t.Fatalf("Fail: %v", err)
	}

	if s.Pending() {
		t.Error("pending not cleared after transient failure")
	}
	if s.Hearts() != 4 || s.Percentage() != 0 || s.ActiveIndex() != 0 {
		t.Error("transient failure mutated session state")
	}
	if s.SelectedOptionID() != opt {
		t.Error("selection lost across transient failure")
	}
	// Manual retry works.
	if out := s.Continue(); out != OutcomeSubmit {
		t.Errorf("retry Continue = %v, want OutcomeSubmit", out)
	}
}

func TestResolve_WithoutPendingRejected(t *testing.T) {
	s, err := New(testLesson(t, 2, 0), 5, false, Hooks{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := s.Resolve(Verdict{Correct: true}); err != ErrNotPending {
		t.Errorf("Resolve without pending = %v, want ErrNotPending", err)
	}
}

func TestReplayEntry_HundredPercentLessonStartsFresh(t *testing.T) {
	lesson := testLesson(t, 3, 100, true, true, true)
	s, err := New(lesson, 2, false, Hooks{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if s.Completed() {
		t.Fatal("re-entered lesson must not start in Completed")
	}
	if s.ActiveIndex() != 0 {
		t.Errorf("ActiveIndex = %d, want 0", s.ActiveIndex())
	}
	if s.Percentage() != 0 {
		t.Errorf("Percentage = %v, want 0", s.Percentage())
	}
	if !s.Practice() {
		t.Error("expected practice mode on replay entry")
	}
}

func TestStartIndex_ResumesAtFirstIncomplete(t *testing.T) {
	lesson := testLesson(t, 4, 50, true, true, false, false)
	s, err := New(lesson, 5, false, Hooks{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if s.ActiveIndex() != 2 {
		t.Errorf("ActiveIndex = %d, want 2", s.ActiveIndex())
	}
	if s.Practice() {
		t.Error("resumed pass must not be practice mode")
	}
}

func TestPracticeMode_CorrectRefundsHeartCapped(t *testing.T) {
	lesson := testLesson(t, 2, 100, true, true)
	s, err := New(lesson, 4, false, Hooks{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	submit(t, s, true, 4)
	if s.Hearts() != 5 {
		t.Errorf("Hearts = %d, want 5 after practice refund", s.Hearts())
	}
	s.Continue()

	submit(t, s, true, 5)
	if s.Hearts() != MaxHearts {
		t.Errorf("Hearts = %d, want capped at %d", s.Hearts(), MaxHearts)
	}
}

func TestInfiniteHearts_WrongVerdictDoesNotMutate(t *testing.T) {
	s, err := New(testLesson(t, 2, 0), 5, true, Hooks{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	submit(t, s, false, 0)
	if s.Hearts() != 5 {
		t.Errorf("Hearts = %d, want 5 (subscriber hearts never deplete)", s.Hearts())
	}
	if !s.InfiniteHearts() {
		t.Error("InfiniteHearts = false, want true")
	}
}

func TestCompletion_FiredExactlyOnce(t *testing.T) {
	var summaries []Summary
	completedIDs := map[string]bool{}
	s, err := New(testLesson(t, 2, 0), 5, false, Hooks{
		OnCompletion:         func(sum Summary) { summaries = append(summaries, sum) },
		OnChallengeCompleted: func(id string) { completedIDs[id] = true },
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	submit(t, s, true, 5)
	s.Continue()
	submit(t, s, true, 5)
	if out := s.Continue(); out != OutcomeCompleted {
		t.Fatalf("final Continue = %v, want OutcomeCompleted", out)
	}
	// Further continues in the terminal state must not re-trigger.
	s.Continue()
	s.Continue()

	if len(summaries) != 1 {
		t.Fatalf("completion fired %d times, want 1", len(summaries))
	}
	if summaries[0].Points != 2*PointsPerChallenge {
		t.Errorf("Points = %d, want %d", summaries[0].Points, 2*PointsPerChallenge)
	}
	if summaries[0].Hearts != 5 {
		t.Errorf("summary Hearts = %d, want 5", summaries[0].Hearts)
	}
	if len(completedIDs) != 2 {
		t.Errorf("challenge-completed events = %d, want 2", len(completedIDs))
	}
}

func TestPracticeAgain_ResetsOnSameCatalog(t *testing.T) {
	lesson := testLesson(t, 2, 0)
	s, err := New(lesson, 5, false, Hooks{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	submit(t, s, true, 5)
	s.Continue()
	submit(t, s, true, 5)
	s.Continue()

	if !s.PracticeAgain() {
		t.Fatal("PracticeAgain rejected in terminal state")
	}
	if s.ActiveIndex() != 0 || s.Percentage() != 0 || s.Status() != StatusNone {
		t.Error("PracticeAgain did not reset cursor/percentage/status")
	}
	if s.Lesson() != lesson {
		t.Error("PracticeAgain replaced the catalog instance")
	}
	if !s.Practice() {
		t.Error("replay pass must be practice mode")
	}

	// A second completion fires the summary again for the new pass.
	fired := 0
	s.hooks.OnCompletion = func(Summary) { fired++ }
	submit(t, s, true, 5)
	s.Continue()
	submit(t, s, true, 5)
	s.Continue()
	if fired != 1 {
		t.Errorf("completion after replay fired %d times, want 1", fired)
	}
}

func TestPracticeAgain_RejectedMidPass(t *testing.T) {
	s, err := New(testLesson(t, 2, 0), 5, false, Hooks{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if s.PracticeAgain() {
		t.Error("PracticeAgain accepted before completion")
	}
}

func TestNew_NilAndEmptyLesson(t *testing.T) {
	if _, err := New(nil, 5, false, Hooks{}); err == nil {
		t.Error("expected error for nil lesson")
	}
}
