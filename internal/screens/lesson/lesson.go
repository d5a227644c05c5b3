package lesson

import (
	"context"
	"errors"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/google/uuid"

	"github.com/ssanyal/lingua/internal/api"
	"github.com/ssanyal/lingua/internal/catalog"
	"github.com/ssanyal/lingua/internal/engine"
	"github.com/ssanyal/lingua/internal/router"
	"github.com/ssanyal/lingua/internal/screen"
	"github.com/ssanyal/lingua/internal/screens/summary"
	"github.com/ssanyal/lingua/internal/store"
	"github.com/ssanyal/lingua/internal/ui/components"
	"github.com/ssanyal/lingua/internal/ui/layout"
)

// Platform is the slice of the api client this screen needs. *api.Client
// satisfies it; tests inject a fake.
type Platform interface {
	LessonChallenges(ctx context.Context, lessonID string) (*catalog.Lesson, error)
	UserProgress(ctx context.Context) (api.UserProgress, error)
	Evaluate(ctx context.Context, challengeID, optionID string) (engine.Verdict, error)
}

// LessonScreen runs one lesson session: it collects variant input, drives the
// progression engine, and runs the evaluation round trip as a command.
type LessonScreen struct {
	platform Platform
	events   store.EventRepo
	lessonID string

	sessionID    string
	session      *engine.Session
	points       int
	sessionStart time.Time

	// per-challenge input state, reset on advance and retry
	options        components.OptionList
	input          components.TextInput
	audioPlayed    bool
	recorded       bool
	pairsResolved  int
	tokensPlaced   []string
	challengeStart time.Time

	evaluating bool
	evalNotice string
	exhausted  bool
	errMsg     string

	// set by the engine's completion hook during the final Continue
	finished *engine.Summary
}

var _ screen.Screen = (*LessonScreen)(nil)
var _ screen.KeyHintProvider = (*LessonScreen)(nil)
var _ screen.StatusProvider = (*LessonScreen)(nil)

// New creates a lesson screen. The catalog and learner progress are fetched
// on Init.
func New(platform Platform, events store.EventRepo, lessonID string) *LessonScreen {
	return &LessonScreen{
		platform: platform,
		events:   events,
		lessonID: lessonID,
	}
}

// Init fetches the catalog on first entry. Re-Init after a practice restart
// is a no-op: the session keeps the same frozen catalog instance.
func (s *LessonScreen) Init() tea.Cmd {
	if s.session != nil {
		return nil
	}
	return s.load()
}

func (s *LessonScreen) Title() string {
	if s.session != nil && s.session.Practice() {
		return "Practice"
	}
	return "Lesson"
}

func (s *LessonScreen) Status() screen.Status {
	st := screen.Status{Points: s.points}
	if s.session != nil {
		st.Hearts = s.session.Hearts()
		st.Infinite = s.session.InfiniteHearts()
	}
	return st
}

func (s *LessonScreen) KeyHints() []layout.KeyHint {
	if s.errMsg != "" || s.exhausted {
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	}
	if s.session == nil {
		return nil
	}
	if s.session.Status() != engine.StatusNone {
		return []layout.KeyHint{{Key: "Enter", Description: "Continue"}}
	}

	hints := []layout.KeyHint{}
	if ch := s.session.Current(); ch != nil {
		switch ch.Type {
		case catalog.TypeListening:
			hints = append(hints, layout.KeyHint{Key: "P", Description: "Play audio"})
			hints = append(hints, layout.KeyHint{Key: "↑↓", Description: "Choose"})
		case catalog.TypeSpeaking:
			hints = append(hints, layout.KeyHint{Key: "R", Description: "Record"})
		case catalog.TypeMatchPairs:
			hints = append(hints, layout.KeyHint{Key: "Space", Description: "Match pair"})
		case catalog.TypeSentenceOrder:
			hints = append(hints, layout.KeyHint{Key: "1-9", Description: "Place word"})
			hints = append(hints, layout.KeyHint{Key: "Backspace", Description: "Undo"})
		case catalog.TypeFillBlank, catalog.TypeTranslation:
			hints = append(hints, layout.KeyHint{Key: "Type", Description: "Answer"})
		default:
			hints = append(hints, layout.KeyHint{Key: "↑↓", Description: "Choose"})
		}
	}
	hints = append(hints,
		layout.KeyHint{Key: "Enter", Description: "Check"},
		layout.KeyHint{Key: "Esc", Description: "Quit lesson"},
	)
	return hints
}

func (s *LessonScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case lessonLoadedMsg:
		return s.handleLoaded(msg)

	case verdictMsg:
		return s.handleVerdict(msg)

	case journalAckMsg:
		// Best effort: a failed journal append never blocks the session.
		return s, nil

	case summary.PracticeRequestedMsg:
		return s.handlePracticeRequested()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

// load fetches learner progress and the lesson catalog, plus the lifetime
// points balance from the local journal for the header.
func (s *LessonScreen) load() tea.Cmd {
	platform := s.platform
	events := s.events
	lessonID := s.lessonID
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), api.DefaultTimeout)
		defer cancel()

		progress, err := platform.UserProgress(ctx)
		if err != nil {
			return lessonLoadedMsg{Err: err}
		}

		lesson, err := platform.LessonChallenges(ctx, lessonID)
		if err != nil {
			return lessonLoadedMsg{Err: err}
		}

		points := 0
		if events != nil {
			points, _ = events.TotalPoints(ctx)
		}

		return lessonLoadedMsg{Lesson: lesson, Progress: progress, Points: points}
	}
}

func (s *LessonScreen) handleLoaded(msg lessonLoadedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}

	sess, err := engine.New(msg.Lesson, msg.Progress.Hearts, msg.Progress.Subscribed, engine.Hooks{
		OnHeartsExhausted: func() { s.exhausted = true },
		OnCompletion: func(sum engine.Summary) {
			c := sum
			s.finished = &c
		},
	})
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}

	s.session = sess
	s.points = msg.Points
	s.sessionID = uuid.New().String()
	s.sessionStart = time.Now()
	s.setupChallenge()

	if s.events != nil {
		_ = s.events.AppendSessionEvent(context.Background(), store.SessionEventData{
			SessionID: s.sessionID,
			LessonID:  s.lessonID,
			Action:    "start",
			Practice:  sess.Practice(),
		})
	}

	return s, s.input.Init()
}

// setupChallenge resets per-challenge input state for the challenge under
// the cursor.
func (s *LessonScreen) setupChallenge() {
	s.audioPlayed = false
	s.recorded = false
	s.pairsResolved = 0
	s.tokensPlaced = nil
	s.evalNotice = ""
	s.challengeStart = time.Now()

	ch := s.session.Current()
	if ch == nil {
		return
	}
	s.options = components.NewOptionList(ch.Options)
	s.input = components.NewTextInput("Type your answer...", 120)
}

// resetForRetry clears the verdict display but keeps the learner on the same
// challenge.
func (s *LessonScreen) resetForRetry() {
	s.options.Reset()
	s.input.Reset()
	s.audioPlayed = false
	s.recorded = false
	s.pairsResolved = 0
	s.tokensPlaced = nil
	s.evalNotice = ""
	s.challengeStart = time.Now()
}

func (s *LessonScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if s.session == nil {
		return s, nil
	}
	if s.exhausted {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if s.session.Completed() {
		// Back from the summary with nothing left to answer.
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if s.evaluating {
		// The single suspension point: nothing moves until the verdict lands.
		return s, nil
	}

	if key == "enter" {
		return s.handleEnter()
	}

	// A verdict is showing; only Enter acknowledges.
	if s.session.Status() != engine.StatusNone {
		return s, nil
	}

	ch := s.session.Current()
	if ch == nil {
		return s, nil
	}

	switch ch.Type {
	case catalog.TypeSelect, catalog.TypeAssist:
		return s.updateOptions(msg)

	case catalog.TypeListening:
		if key == "p" {
			s.audioPlayed = true
			return s, nil
		}
		if s.audioPlayed {
			return s.updateOptions(msg)
		}
		return s, nil

	case catalog.TypeSpeaking:
		if key == "r" {
			s.recorded = true
		}
		return s, nil

	case catalog.TypeMatchPairs:
		if key == "space" && s.pairsResolved < len(ch.Options) {
			s.pairsResolved++
		}
		return s, nil

	case catalog.TypeSentenceOrder:
		return s.handleTokenKey(key, *ch)

	case catalog.TypeFillBlank, catalog.TypeTranslation:
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	return s, nil
}

// updateOptions moves the cursor and mirrors it into the engine's selection.
func (s *LessonScreen) updateOptions(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.options, cmd = s.options.Update(msg)
	if opt, ok := s.options.Current(); ok {
		s.session.Select(opt.ID)
	}
	return s, cmd
}

// handleTokenKey places and removes word tokens for SENTENCE_ORDER. Digit
// keys place the nth remaining token; backspace removes the last placed one.
func (s *LessonScreen) handleTokenKey(key string, ch catalog.Challenge) (screen.Screen, tea.Cmd) {
	if key == "backspace" {
		if len(s.tokensPlaced) > 0 {
			s.tokensPlaced = s.tokensPlaced[:len(s.tokensPlaced)-1]
		}
		return s, nil
	}

	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		idx := int(key[0] - '1')
		remaining := s.remainingTokens(ch)
		if idx < len(remaining) {
			s.tokensPlaced = append(s.tokensPlaced, remaining[idx].ID)
		}
	}
	return s, nil
}

// remainingTokens returns the challenge options not yet placed, in order.
func (s *LessonScreen) remainingTokens(ch catalog.Challenge) []catalog.Option {
	placed := make(map[string]bool, len(s.tokensPlaced))
	for _, id := range s.tokensPlaced {
		placed[id] = true
	}
	var out []catalog.Option
	for _, opt := range ch.Options {
		if !placed[opt.ID] {
			out = append(out, opt)
		}
	}
	return out
}

func (s *LessonScreen) handleEnter() (screen.Screen, tea.Cmd) {
	// Acknowledge a showing verdict: advance, retry, or finish.
	if s.session.Status() != engine.StatusNone {
		switch s.session.Continue() {
		case engine.OutcomeAdvance:
			s.setupChallenge()
			return s, s.input.Init()
		case engine.OutcomeRetry:
			s.resetForRetry()
			return s, s.input.Init()
		case engine.OutcomeCompleted:
			return s.finishSession()
		}
		return s, nil
	}

	// Idle: map the variant's composite input onto one option and submit.
	ch := s.session.Current()
	if ch == nil {
		return s, nil
	}

	optionID, err := s.resolveInput(*ch)
	if err != nil {
		// Incomplete input is not an error surface; the learner isn't done.
		return s, nil
	}
	if !s.session.Select(optionID) {
		return s, nil
	}
	if s.session.Continue() != engine.OutcomeSubmit {
		return s, nil
	}

	challengeID, chosenID := s.session.Submission()
	s.evaluating = true
	s.evalNotice = ""
	s.options.Freeze()
	return s, s.evaluate(challengeID, chosenID)
}

// resolveInput gathers the current variant input and resolves it to a
// canonical option id.
func (s *LessonScreen) resolveInput(ch catalog.Challenge) (string, error) {
	resolver, err := catalog.ResolverFor(ch.Type)
	if err != nil {
		return "", err
	}

	in := catalog.Input{
		AudioPlayed:   s.audioPlayed,
		Recorded:      s.recorded,
		PairsResolved: s.pairsResolved,
		TokensPlaced:  s.tokensPlaced,
	}

	switch ch.Type {
	case catalog.TypeSelect, catalog.TypeAssist, catalog.TypeListening:
		if opt, ok := s.options.Current(); ok {
			in.OptionID = opt.ID
		}
	case catalog.TypeFillBlank, catalog.TypeTranslation:
		in.Text = s.input.Value()
	}

	return resolver.Resolve(ch, in)
}

// evaluate runs the grading round trip asynchronously.
func (s *LessonScreen) evaluate(challengeID, optionID string) tea.Cmd {
	platform := s.platform
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), api.DefaultTimeout)
		defer cancel()

		v, err := platform.Evaluate(ctx, challengeID, optionID)
		return verdictMsg{ChallengeID: challengeID, OptionID: optionID, Verdict: v, Err: err}
	}
}

func (s *LessonScreen) handleVerdict(msg verdictMsg) (screen.Screen, tea.Cmd) {
	s.evaluating = false

	if msg.Err != nil {
		switch {
		case errors.Is(msg.Err, api.ErrHeartsExhausted):
			_ = s.session.RejectHeartsExhausted()
			s.options.Reset()

		case errors.Is(msg.Err, api.ErrUnauthorized):
			_ = s.session.Fail()
			s.errMsg = "The platform rejected your credentials. Set LINGUA_API_TOKEN and try again."

		default:
			// Transient or unexpected: state and selection survive untouched;
			// the learner's next Enter re-attempts.
			_ = s.session.Fail()
			s.options.Reset()
			s.evalNotice = "Couldn't reach the platform. Press Enter to retry."
		}
		return s, nil
	}

	if err := s.session.Resolve(msg.Verdict); err != nil {
		return s, nil
	}

	correct := msg.Verdict.Correct
	s.options.MarkVerdict(msg.OptionID, correct)
	s.input.Submit(correct)

	return s, s.journalAnswer(msg)
}

// journalAnswer appends the graded submission to the local journal.
func (s *LessonScreen) journalAnswer(msg verdictMsg) tea.Cmd {
	if s.events == nil {
		return nil
	}
	events := s.events
	data := store.AnswerEventData{
		SessionID:     s.sessionID,
		LessonID:      s.lessonID,
		ChallengeID:   msg.ChallengeID,
		ChallengeType: string(s.session.Current().Type),
		OptionID:      msg.OptionID,
		Correct:       msg.Verdict.Correct,
		HeartsAfter:   s.session.Hearts(),
		TimeMs:        int(time.Since(s.challengeStart).Milliseconds()),
		Practice:      s.session.Practice(),
	}
	return func() tea.Msg {
		return journalAckMsg{Err: events.AppendAnswerEvent(context.Background(), data)}
	}
}

// finishSession journals the end event and replaces this screen with the
// summary.
func (s *LessonScreen) finishSession() (screen.Screen, tea.Cmd) {
	if s.finished == nil {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	sum := *s.finished
	s.finished = nil
	s.points += sum.Points

	if s.events != nil {
		_ = s.events.AppendSessionEvent(context.Background(), store.SessionEventData{
			SessionID:       s.sessionID,
			LessonID:        s.lessonID,
			Action:          "end",
			Points:          sum.Points,
			HeartsRemaining: sum.Hearts,
			Practice:        sum.Practice,
			DurationSecs:    int(time.Since(s.sessionStart).Seconds()),
		})
	}

	return s, func() tea.Msg {
		return router.PushScreenMsg{Screen: summary.New(sum)}
	}
}

// handlePracticeRequested restarts the finished session from the top with
// the same catalog instance.
func (s *LessonScreen) handlePracticeRequested() (screen.Screen, tea.Cmd) {
	if s.session == nil || !s.session.PracticeAgain() {
		return s, nil
	}

	s.sessionID = uuid.New().String()
	s.sessionStart = time.Now()
	s.setupChallenge()

	if s.events != nil {
		_ = s.events.AppendSessionEvent(context.Background(), store.SessionEventData{
			SessionID: s.sessionID,
			LessonID:  s.lessonID,
			Action:    "start",
			Practice:  true,
		})
	}

	return s, s.input.Init()
}
