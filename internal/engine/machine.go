package engine

// Outcome tells the caller what a Continue invocation decided, so the event
// loop knows whether to start the evaluation round trip, re-render, or move
// to the summary surface.
type Outcome int

const (
	// OutcomeNone: nothing to do (no selection yet, or a submission is
	// already pending).
	OutcomeNone Outcome = iota

	// OutcomeSubmit: the engine is now pending and the caller must run the
	// evaluation for Submission(), then call Resolve, RejectHeartsExhausted,
	// or Fail.
	OutcomeSubmit

	// OutcomeRetry: a wrong answer was acknowledged; the same challenge is
	// re-shown with a cleared selection.
	OutcomeRetry

	// OutcomeAdvance: a correct answer was acknowledged and the cursor
	// moved to the next challenge.
	OutcomeAdvance

	// OutcomeCompleted: the catalog is exhausted; the completion summary
	// has been surfaced.
	OutcomeCompleted
)

// Select records the learner's choice for the visible challenge. Selection
// is a no-op once a verdict is showing, while a submission is pending, or in
// the terminal state; it returns whether the selection took.
func (s *Session) Select(optionID string) bool {
	if s.pending || s.status != StatusNone || s.Completed() {
		return false
	}
	if _, ok := s.Current().Option(optionID); !ok {
		return false
	}
	s.selectedID = optionID
	return true
}

// Continue is the second of the two driving actions. Its meaning depends on
// the current state: with a verdict showing it acknowledges (advance or
// retry in place); in the idle state with a selection it starts the
// evaluation round trip.
func (s *Session) Continue() Outcome {
	if s.pending || s.Completed() {
		return OutcomeNone
	}

	switch s.status {
	case StatusCorrect:
		s.status = StatusNone
		s.selectedID = ""
		s.activeIndex++
		if s.Completed() {
			s.fireCompletion()
			return OutcomeCompleted
		}
		return OutcomeAdvance

	case StatusWrong:
		// Retry in place: the cursor never advances past an unanswered
		// challenge.
		s.status = StatusNone
		s.selectedID = ""
		return OutcomeRetry
	}

	if s.selectedID == "" {
		return OutcomeNone
	}
	s.pending = true
	return OutcomeSubmit
}

// Submission returns the challenge and option ids the caller must evaluate.
// Valid only while Pending.
func (s *Session) Submission() (challengeID, optionID string) {
	if !s.pending || s.Completed() {
		return "", ""
	}
	return s.Current().ID, s.selectedID
}

// Resolve applies the platform's verdict to the session. A correct verdict
// bumps the percentage by one catalog share and, in practice mode, refunds a
// heart; a wrong verdict copies the server-reported hearts balance. No other
// field moves.
func (s *Session) Resolve(v Verdict) error {
	if !s.pending {
		return ErrNotPending
	}
	s.pending = false

	if v.Correct {
		s.status = StatusCorrect
		s.percentage += 100 / float64(s.lesson.Len())
		if s.percentage > 100 {
			s.percentage = 100
		}
		if s.practice && !s.infinite && s.hearts < MaxHearts {
			s.hearts++
		}
		if s.hooks.OnChallengeCompleted != nil {
			s.hooks.OnChallengeCompleted(s.Current().ID)
		}
		return nil
	}

	s.status = StatusWrong
	if !s.infinite {
		s.hearts = v.Hearts
		if s.hearts < 0 {
			s.hearts = 0
		}
	}
	return nil
}

// RejectHeartsExhausted handles the platform refusing a submission because
// the server-side balance is already zero. Session state is left exactly as
// before the call — no counter moves — and the hearts-acquisition
// collaborator is signalled once.
func (s *Session) RejectHeartsExhausted() error {
	if !s.pending {
		return ErrNotPending
	}
	s.pending = false
	if s.hooks.OnHeartsExhausted != nil {
		s.hooks.OnHeartsExhausted()
	}
	return nil
}

// Fail handles a transient protocol failure (network, timeout, server
// error). State is left untouched besides clearing the pending guard; the
// learner's next Continue re-attempts.
func (s *Session) Fail() error {
	if !s.pending {
		return ErrNotPending
	}
	s.pending = false
	return nil
}

// PracticeAgain re-enters the lesson from the top with the same catalog
// instance: cursor and percentage reset, hearts carried over, practice mode
// on. Only valid in the terminal state.
func (s *Session) PracticeAgain() bool {
	if !s.Completed() {
		return false
	}
	s.activeIndex = 0
	s.percentage = 0
	s.status = StatusNone
	s.selectedID = ""
	s.pending = false
	s.practice = true
	s.completionFired = false
	return true
}

func (s *Session) fireCompletion() {
	if s.completionFired {
		return
	}
	s.completionFired = true
	if s.hooks.OnCompletion != nil {
		s.hooks.OnCompletion(s.Summary())
	}
}
