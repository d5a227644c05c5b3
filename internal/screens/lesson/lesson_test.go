package lesson

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/ssanyal/lingua/internal/api"
	"github.com/ssanyal/lingua/internal/catalog"
	"github.com/ssanyal/lingua/internal/engine"
	"github.com/ssanyal/lingua/internal/router"
	"github.com/ssanyal/lingua/internal/screen"
	"github.com/ssanyal/lingua/internal/screens/summary"
	"github.com/ssanyal/lingua/internal/store"
)

// fakePlatform implements Platform for testing. Grading is keyed by the
// correct option id per challenge; hearts decrement on wrong answers.
type fakePlatform struct {
	lesson   *catalog.Lesson
	progress api.UserProgress
	correct  map[string]string // challenge id -> correct option id
	hearts   int
	evalErr  error
	calls    int
}

func (f *fakePlatform) LessonChallenges(_ context.Context, _ string) (*catalog.Lesson, error) {
	return f.lesson, nil
}

func (f *fakePlatform) UserProgress(_ context.Context) (api.UserProgress, error) {
	return f.progress, nil
}

func (f *fakePlatform) Evaluate(_ context.Context, challengeID, optionID string) (engine.Verdict, error) {
	f.calls++
	if f.evalErr != nil {
		return engine.Verdict{}, f.evalErr
	}
	correct := f.correct[challengeID] == optionID
	if !correct {
		f.hearts--
	}
	return engine.Verdict{Correct: correct, Hearts: f.hearts}, nil
}

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	sessionEvents []store.SessionEventData
	answerEvents  []store.AnswerEventData
}

func (m *mockEventRepo) AppendAnswerEvent(_ context.Context, data store.AnswerEventData) error {
	m.answerEvents = append(m.answerEvents, data)
	return nil
}
func (m *mockEventRepo) AppendSessionEvent(_ context.Context, data store.SessionEventData) error {
	m.sessionEvents = append(m.sessionEvents, data)
	return nil
}
func (m *mockEventRepo) LessonStats(_ context.Context, _ string) (store.LessonStats, error) {
	return store.LessonStats{}, nil
}
func (m *mockEventRepo) TotalPoints(_ context.Context) (int, error)  { return 0, nil }
func (m *mockEventRepo) SessionCount(_ context.Context) (int, error) { return 0, nil }

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func selectChallenge(id string, order int) catalog.Challenge {
	return catalog.Challenge{
		ID:       id,
		Type:     catalog.TypeSelect,
		Question: "Which one means \"the apple\"?",
		Order:    order,
		Options: []catalog.Option{
			{ID: id + "-o1", Text: "la manzana", Order: 1},
			{ID: id + "-o2", Text: "el perro", Order: 2},
			{ID: id + "-o3", Text: "el gato", Order: 3},
		},
	}
}

func testLesson(t *testing.T, challenges ...catalog.Challenge) *catalog.Lesson {
	t.Helper()
	l, err := catalog.NewLesson("l1", "Basics 1", 0, challenges)
	if err != nil {
		t.Fatalf("build lesson: %v", err)
	}
	return l
}

// testScreen builds a loaded lesson screen over the given challenges, with
// c1-o1 as the correct option for every challenge.
func testScreen(t *testing.T, challenges ...catalog.Challenge) (*LessonScreen, *fakePlatform, *mockEventRepo) {
	t.Helper()
	correct := make(map[string]string, len(challenges))
	for _, ch := range challenges {
		correct[ch.ID] = ch.ID + "-o1"
	}
	platform := &fakePlatform{
		lesson:   testLesson(t, challenges...),
		progress: api.UserProgress{Hearts: 5},
		correct:  correct,
		hearts:   5,
	}
	events := &mockEventRepo{}
	s := New(platform, events, "l1")

	msg := s.load()()
	loaded, ok := msg.(lessonLoadedMsg)
	if !ok {
		t.Fatalf("load returned %T, want lessonLoadedMsg", msg)
	}
	s.Update(loaded)
	if s.session == nil {
		t.Fatalf("session not built: %v", s.errMsg)
	}
	return s, platform, events
}

// submitCurrent presses Enter and feeds the resulting verdict back in.
func submitCurrent(t *testing.T, s *LessonScreen) {
	t.Helper()
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected an evaluation command on submit")
	}
	if !s.evaluating {
		t.Fatal("expected evaluating state after submit")
	}
	_, next := s.Update(cmd())
	if next != nil {
		s.Update(next())
	}
}

func TestLessonScreen_LoadBuildsSessionAndJournalsStart(t *testing.T) {
	s, _, events := testScreen(t, selectChallenge("c1", 1))

	if s.session.Hearts() != 5 {
		t.Errorf("hearts = %d, want 5", s.session.Hearts())
	}
	if len(events.sessionEvents) != 1 || events.sessionEvents[0].Action != "start" {
		t.Errorf("expected one start event, got %+v", events.sessionEvents)
	}
}

func TestLessonScreen_CorrectAnswerAdvances(t *testing.T) {
	s, _, events := testScreen(t, selectChallenge("c1", 1), selectChallenge("c2", 2))

	submitCurrent(t, s)

	if s.session.Status() != engine.StatusCorrect {
		t.Fatalf("status = %v, want correct", s.session.Status())
	}
	if got := s.session.Percentage(); got != 50 {
		t.Errorf("percentage = %v, want 50", got)
	}
	if len(events.answerEvents) != 1 || !events.answerEvents[0].Correct {
		t.Errorf("expected one correct answer event, got %+v", events.answerEvents)
	}

	// Acknowledge: cursor moves to the next challenge.
	s.Update(specialKey(tea.KeyEnter))
	if s.session.ActiveIndex() != 1 {
		t.Errorf("active index = %d, want 1", s.session.ActiveIndex())
	}
}

func TestLessonScreen_WrongAnswerRetriesInPlace(t *testing.T) {
	s, _, _ := testScreen(t, selectChallenge("c1", 1), selectChallenge("c2", 2))

	// Move the cursor to a wrong option before submitting.
	s.Update(keyPress('j'))
	submitCurrent(t, s)

	if s.session.Status() != engine.StatusWrong {
		t.Fatalf("status = %v, want wrong", s.session.Status())
	}
	if s.session.Hearts() != 4 {
		t.Errorf("hearts = %d, want 4", s.session.Hearts())
	}
	if s.session.Percentage() != 0 {
		t.Errorf("percentage = %v, want 0 after wrong answer", s.session.Percentage())
	}

	// Acknowledge: same challenge, cleared selection.
	s.Update(specialKey(tea.KeyEnter))
	if s.session.ActiveIndex() != 0 {
		t.Errorf("active index = %d, want 0 (retry in place)", s.session.ActiveIndex())
	}
	if s.session.SelectedOptionID() != "" {
		t.Errorf("selection = %q, want cleared", s.session.SelectedOptionID())
	}
}

func TestLessonScreen_PendingGuardBlocksInput(t *testing.T) {
	s, platform, _ := testScreen(t, selectChallenge("c1", 1))

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected evaluation command")
	}

	// While the round trip is in flight, keys do nothing.
	_, again := s.Update(specialKey(tea.KeyEnter))
	if again != nil {
		t.Error("expected no command while evaluation pending")
	}
	s.Update(keyPress('j'))
	if got := s.session.SelectedOptionID(); got != "c1-o1" {
		t.Errorf("selection = %q, want frozen at c1-o1", got)
	}

	s.Update(cmd())
	if platform.calls != 1 {
		t.Errorf("evaluate calls = %d, want 1", platform.calls)
	}
}

func TestLessonScreen_TransientFailureKeepsSelection(t *testing.T) {
	s, platform, _ := testScreen(t, selectChallenge("c1", 1))
	platform.evalErr = &api.TransientError{Err: context.DeadlineExceeded}

	submitCurrent(t, s)

	if s.evalNotice == "" {
		t.Error("expected a retry notice after transient failure")
	}
	if s.session.Pending() {
		t.Error("expected pending cleared after failure")
	}
	if got := s.session.SelectedOptionID(); got != "c1-o1" {
		t.Errorf("selection = %q, want preserved", got)
	}
	if s.session.Hearts() != 5 || s.session.Percentage() != 0 {
		t.Error("expected session state untouched by transient failure")
	}

	// Manual retry succeeds once the platform recovers.
	platform.evalErr = nil
	submitCurrent(t, s)
	if s.session.Status() != engine.StatusCorrect {
		t.Errorf("status = %v, want correct after retry", s.session.Status())
	}
	if platform.calls != 2 {
		t.Errorf("evaluate calls = %d, want 2 (no automatic retry)", platform.calls)
	}
}

func TestLessonScreen_HeartsExhausted(t *testing.T) {
	s, platform, _ := testScreen(t, selectChallenge("c1", 1))
	platform.evalErr = api.ErrHeartsExhausted

	submitCurrent(t, s)

	if !s.exhausted {
		t.Error("expected hearts-exhausted surface")
	}
	if s.session.Percentage() != 0 || s.session.Status() != engine.StatusNone {
		t.Error("expected no state mutation on hearts-exhausted rejection")
	}

	// Any key exits the lesson.
	_, cmd := s.Update(keyPress(' '))
	if cmd == nil {
		t.Fatal("expected pop command from exhausted surface")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

func TestLessonScreen_CompletionPushesSummary(t *testing.T) {
	s, _, events := testScreen(t, selectChallenge("c1", 1))

	submitCurrent(t, s)

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a command after final acknowledge")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	if _, ok := push.Screen.(*summary.SummaryScreen); !ok {
		t.Errorf("expected summary screen, got %T", push.Screen)
	}

	var end *store.SessionEventData
	for i := range events.sessionEvents {
		if events.sessionEvents[i].Action == "end" {
			end = &events.sessionEvents[i]
		}
	}
	if end == nil {
		t.Fatal("expected an end event")
	}
	if end.Points != engine.PointsPerChallenge {
		t.Errorf("points = %d, want %d", end.Points, engine.PointsPerChallenge)
	}
}

func TestLessonScreen_PracticeRequestedRestartsSameCatalog(t *testing.T) {
	s, _, events := testScreen(t, selectChallenge("c1", 1))

	submitCurrent(t, s)
	s.Update(specialKey(tea.KeyEnter)) // completion

	before := s.session.Lesson()
	s.Update(summary.PracticeRequestedMsg{})

	if s.session.Lesson() != before {
		t.Error("expected practice restart on the same catalog instance")
	}
	if s.session.ActiveIndex() != 0 || s.session.Percentage() != 0 {
		t.Error("expected cursor and percentage reset for practice")
	}
	if !s.session.Practice() {
		t.Error("expected practice mode on")
	}

	starts := 0
	for _, e := range events.sessionEvents {
		if e.Action == "start" {
			starts++
		}
	}
	if starts != 2 {
		t.Errorf("start events = %d, want 2", starts)
	}
}

func TestLessonScreen_ListeningGatesOnPlayback(t *testing.T) {
	ch := selectChallenge("c1", 1)
	ch.Type = catalog.TypeListening
	s, platform, _ := testScreen(t, ch)

	// Enter before playback: not submittable.
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd != nil || s.evaluating {
		t.Error("expected no submission before audio playback")
	}
	if platform.calls != 0 {
		t.Errorf("evaluate calls = %d, want 0", platform.calls)
	}

	// Play, then submit.
	s.Update(keyPress('p'))
	submitCurrent(t, s)
	if s.session.Status() != engine.StatusCorrect {
		t.Errorf("status = %v, want correct", s.session.Status())
	}
}

func TestLessonScreen_TranslationFreeTextMatchesOption(t *testing.T) {
	ch := selectChallenge("c1", 1)
	ch.Type = catalog.TypeTranslation
	s, platform, _ := testScreen(t, ch)

	s.input.Model.SetValue("  LA   Manzana ")
	submitCurrent(t, s)

	if platform.calls != 1 {
		t.Fatalf("evaluate calls = %d, want 1", platform.calls)
	}
	if s.session.Status() != engine.StatusCorrect {
		t.Errorf("status = %v, want correct for normalized text match", s.session.Status())
	}
}

func TestLessonScreen_SentenceOrderPlacesTokens(t *testing.T) {
	ch := selectChallenge("c1", 1)
	ch.Type = catalog.TypeSentenceOrder
	s, platform, _ := testScreen(t, ch)

	// Enter with tokens missing: not submittable.
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd != nil {
		t.Error("expected no submission with unplaced tokens")
	}

	// Place all three tokens, undo one, place it again.
	s.Update(keyPress('1'))
	s.Update(keyPress('1'))
	s.Update(keyPress('1'))
	s.Update(specialKey(tea.KeyBackspace))
	s.Update(keyPress('1'))

	if len(s.tokensPlaced) != 3 {
		t.Fatalf("tokens placed = %d, want 3", len(s.tokensPlaced))
	}

	submitCurrent(t, s)
	if platform.calls != 1 {
		t.Errorf("evaluate calls = %d, want 1", platform.calls)
	}
	// Composite input resolves to the canonical option, which grades correct.
	if s.session.Status() != engine.StatusCorrect {
		t.Errorf("status = %v, want correct", s.session.Status())
	}
}

func TestLessonScreen_ViewStates(t *testing.T) {
	s, _, _ := testScreen(t, selectChallenge("c1", 1))
	if s.View(80, 24) == "" {
		t.Error("expected non-empty challenge view")
	}

	s.exhausted = true
	if s.View(80, 24) == "" {
		t.Error("expected non-empty exhausted view")
	}

	s.exhausted = false
	s.errMsg = "boom"
	if s.View(80, 24) == "" {
		t.Error("expected non-empty error view")
	}
}

func TestLessonScreen_KeyHints(t *testing.T) {
	s, _, _ := testScreen(t, selectChallenge("c1", 1))
	if len(s.KeyHints()) == 0 {
		t.Error("expected key hints for active challenge")
	}

	var _ screen.Screen = s
}
