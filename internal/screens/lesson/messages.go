package lesson

import (
	"github.com/ssanyal/lingua/internal/api"
	"github.com/ssanyal/lingua/internal/catalog"
	"github.com/ssanyal/lingua/internal/engine"
)

// lessonLoadedMsg is sent when the catalog and progress round trips finish.
type lessonLoadedMsg struct {
	Lesson   *catalog.Lesson
	Progress api.UserProgress
	Points   int
	Err      error
}

// verdictMsg carries the platform's grading result — or the error that took
// its place — back into the event loop. ChallengeID and OptionID echo the
// submission so the journal entry doesn't depend on engine state that may
// have moved on.
type verdictMsg struct {
	ChallengeID string
	OptionID    string
	Verdict     engine.Verdict
	Err         error
}

// journalAckMsg confirms a fire-and-forget journal append completed.
type journalAckMsg struct {
	Err error
}
