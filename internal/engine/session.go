// Package engine drives a learner through one lesson: an immutable challenge
// catalog, a select/continue state machine, a server-authoritative grading
// round trip, the hearts economy, and the completion/replay lifecycle.
//
// The engine never judges correctness itself. Verdicts, hearts counts, and
// durable progress all belong to the platform; the session holds a
// best-effort mirror for the current render only.
package engine

import (
	"errors"

	"github.com/ssanyal/lingua/internal/catalog"
)

// Status is the transient state of the in-flight question.
type Status int

const (
	StatusNone Status = iota
	StatusCorrect
	StatusWrong
)

// MaxHearts is the hearts cap for non-subscribed sessions.
const MaxHearts = 5

// PointsPerChallenge is the fixed score awarded per catalog entry on
// completion.
const PointsPerChallenge = 10

// Verdict is the platform's grading decision for one submitted option.
// Hearts is the server-side balance after grading; the client copies it
// verbatim and never predicts it.
type Verdict struct {
	Correct bool `json:"correct"`
	Hearts  int  `json:"hearts"`
}

// Hooks are the collaborator hand-offs the engine raises. All are optional;
// they are injected at construction so the engine's dependencies are visible
// rather than reached through shared state.
type Hooks struct {
	// OnHeartsExhausted routes to the hearts-acquisition flow (shop or
	// subscription). The session stays frozen in place.
	OnHeartsExhausted func()

	// OnCompletion observes the terminal summary, once per pass.
	OnCompletion func(Summary)

	// OnChallengeCompleted observes each confirmed-correct challenge, for
	// the unlock ledger and any analytics collaborator.
	OnChallengeCompleted func(challengeID string)
}

// Session is the mutable run-time state of one pass through a lesson's
// catalog. It is owned by a single event loop: methods are not safe for
// concurrent use, and the pending flag is the only guard the loop needs.
type Session struct {
	lesson *catalog.Lesson
	hooks  Hooks

	activeIndex int
	hearts      int
	infinite    bool
	percentage  float64
	status      Status
	selectedID  string
	pending     bool
	practice    bool

	completionFired bool
}

// New constructs a session over a frozen catalog. hearts is the
// server-reported balance at entry; subscribed switches the hearts economy
// to infinite. The starting cursor is the first incomplete challenge, and a
// lesson stored at 100% re-enters as a practice replay from the top.
func New(lesson *catalog.Lesson, hearts int, subscribed bool, hooks Hooks) (*Session, error) {
	if lesson == nil || lesson.Len() == 0 {
		return nil, catalog.ErrEmptyCatalog
	}

	startIdx, allDone := lesson.FirstIncomplete()

	percentage := lesson.Percentage
	practice := allDone
	if percentage == 100 {
		// Reaching 100 previously means this entry is a replay.
		percentage = 0
		practice = true
	}

	if hearts < 0 {
		hearts = 0
	}
	if !subscribed && hearts > MaxHearts {
		hearts = MaxHearts
	}

	return &Session{
		lesson:      lesson,
		hooks:       hooks,
		activeIndex: startIdx,
		hearts:      hearts,
		infinite:    subscribed,
		percentage:  percentage,
		practice:    practice,
	}, nil
}

// Lesson returns the catalog this session runs over. The same instance is
// reused across practice replays; it is never re-fetched.
func (s *Session) Lesson() *catalog.Lesson { return s.lesson }

// ActiveIndex returns the cursor into the catalog. Equal to Len() in the
// terminal state.
func (s *Session) ActiveIndex() int { return s.activeIndex }

// Current returns the challenge under the cursor, or nil when completed.
func (s *Session) Current() *catalog.Challenge {
	if s.Completed() {
		return nil
	}
	return &s.lesson.Challenges[s.activeIndex]
}

// Completed reports whether the catalog is exhausted.
func (s *Session) Completed() bool { return s.activeIndex >= s.lesson.Len() }

// Hearts returns the locally mirrored hearts count. Meaningless when
// InfiniteHearts is true.
func (s *Session) Hearts() int { return s.hearts }

// InfiniteHearts reports whether the session belongs to a subscriber.
func (s *Session) InfiniteHearts() bool { return s.infinite }

// Percentage returns lesson progress in [0,100]. It only ever increases
// within a pass.
func (s *Session) Percentage() float64 { return s.percentage }

// Status returns the transient verdict state of the visible challenge.
func (s *Session) Status() Status { return s.status }

// SelectedOptionID returns the option chosen for the visible challenge, or
// empty when nothing is selected.
func (s *Session) SelectedOptionID() string { return s.selectedID }

// Pending reports whether an evaluation round trip is in flight.
func (s *Session) Pending() bool { return s.pending }

// Practice reports whether this pass is a replay of an already-completed
// lesson, during which correct answers refund hearts.
func (s *Session) Practice() bool { return s.practice }

// ErrNotPending guards verdict application against stray responses: a
// verdict may only be applied while a submission is outstanding.
var ErrNotPending = errors.New("engine: no evaluation in flight")
