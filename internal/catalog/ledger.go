package catalog

// LessonState classifies a lesson within its unit for gating purposes.
type LessonState int

const (
	// LessonCompleted lessons come before the first incomplete one and can
	// be re-entered for practice.
	LessonCompleted LessonState = iota
	// LessonCurrent is the first incomplete lesson in the unit, the only
	// one accepting fresh progress.
	LessonCurrent
	// LessonLocked lessons come after the current one and are not
	// enterable yet.
	LessonLocked
)

// String returns the display label for the state.
func (s LessonState) String() string {
	switch s {
	case LessonCompleted:
		return "completed"
	case LessonCurrent:
		return "current"
	default:
		return "locked"
	}
}

// LessonRef is a unit's view of one lesson: identity plus the completion
// flag the platform reported.
type LessonRef struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// Unit groups an ordered run of lessons within a course.
type Unit struct {
	ID      string      `json:"id"`
	Title   string      `json:"title"`
	Lessons []LessonRef `json:"lessons"`
}

// LedgerStates maps each lesson in order to its gating state: everything
// before the first incomplete lesson is completed, the first incomplete one
// is current, and the rest are locked. A fully completed unit has no current
// lesson.
func LedgerStates(lessons []LessonRef) []LessonState {
	states := make([]LessonState, len(lessons))
	currentSeen := false
	for i, l := range lessons {
		switch {
		case l.Completed:
			states[i] = LessonCompleted
		case !currentSeen:
			states[i] = LessonCurrent
			currentSeen = true
		default:
			states[i] = LessonLocked
		}
	}
	return states
}

// Enterable reports whether a lesson in the given state may be opened.
// Locked lessons are the only ones gated out; completed lessons re-enter in
// practice mode.
func (s LessonState) Enterable() bool {
	return s != LessonLocked
}
