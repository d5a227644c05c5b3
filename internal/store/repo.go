package store

import (
	"context"
)

// AnswerEventData captures one graded submission for the journal.
type AnswerEventData struct {
	SessionID     string
	LessonID      string
	ChallengeID   string
	ChallengeType string
	OptionID      string
	Correct       bool
	HeartsAfter   int
	TimeMs        int
	Practice      bool
}

// SessionEventData captures a session lifecycle event.
type SessionEventData struct {
	SessionID       string
	LessonID        string
	Action          string // "start" or "end"
	Points          int
	HeartsRemaining int
	Practice        bool
	DurationSecs    int
}

// LessonStats summarizes journaled history for one lesson.
type LessonStats struct {
	Attempts int
	Correct  int
	Accuracy float64
}

// EventRepo provides append and query access to journal events.
type EventRepo interface {
	// AppendAnswerEvent records a graded submission.
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error

	// AppendSessionEvent records a session start or end.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// LessonStats returns attempt counts and accuracy for one lesson.
	LessonStats(ctx context.Context, lessonID string) (LessonStats, error)

	// TotalPoints sums points across all completed sessions.
	TotalPoints(ctx context.Context) (int, error)

	// SessionCount returns the number of completed sessions.
	SessionCount(ctx context.Context) (int, error)
}
