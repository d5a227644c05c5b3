package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/ssanyal/lingua/ent"
	"github.com/ssanyal/lingua/ent/answerevent"
	"github.com/ssanyal/lingua/ent/sessionevent"
)

// sequenceCounter manages the global monotonic sequence number shared across
// both event tables. Per-table auto-increment IDs can't establish cross-type
// ordering (did the answer land before the session ended?), so a single
// counter assigns every event its place.
//
// Uses raw SQL outside ent because ent doesn't support database-level atomic
// counters. The mutex serializes within the process; the RETURNING clause
// makes the increment atomic at the database level.
type sequenceCounter struct {
	mu sync.Mutex
	db *sql.DB
}

// newSequenceCounter creates a counter and ensures the tracking table exists.
func newSequenceCounter(db *sql.DB) (*sequenceCounter, error) {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS global_sequence (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		next_val INTEGER NOT NULL DEFAULT 1
	)`)
	if err != nil {
		return nil, fmt.Errorf("create sequence table: %w", err)
	}

	_, err = db.Exec(`INSERT OR IGNORE INTO global_sequence (id, next_val) VALUES (1, 1)`)
	if err != nil {
		return nil, fmt.Errorf("seed sequence: %w", err)
	}

	return &sequenceCounter{db: db}, nil
}

// Next atomically returns the next sequence number and increments the counter.
func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	var seq int64
	err := sc.db.QueryRowContext(ctx,
		`UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`,
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return seq, nil
}

// eventRepo implements EventRepo using the ent client.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetLessonID(data.LessonID).
		SetChallengeID(data.ChallengeID).
		SetChallengeType(data.ChallengeType).
		SetOptionID(data.OptionID).
		SetCorrect(data.Correct).
		SetHeartsAfter(data.HeartsAfter).
		SetTimeMs(data.TimeMs).
		SetPractice(data.Practice).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetLessonID(data.LessonID).
		SetAction(data.Action).
		SetPoints(data.Points).
		SetHeartsRemaining(data.HeartsRemaining).
		SetPractice(data.Practice).
		SetDurationSecs(data.DurationSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) LessonStats(ctx context.Context, lessonID string) (LessonStats, error) {
	events, err := r.client.AnswerEvent.Query().
		Where(answerevent.LessonID(lessonID)).
		All(ctx)
	if err != nil {
		return LessonStats{}, fmt.Errorf("query lesson stats: %w", err)
	}

	stats := LessonStats{Attempts: len(events)}
	for _, e := range events {
		if e.Correct {
			stats.Correct++
		}
	}
	if stats.Attempts > 0 {
		stats.Accuracy = float64(stats.Correct) / float64(stats.Attempts)
	}
	return stats, nil
}

func (r *eventRepo) TotalPoints(ctx context.Context) (int, error) {
	events, err := r.client.SessionEvent.Query().
		Where(sessionevent.Action("end")).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("sum points: %w", err)
	}
	total := 0
	for _, e := range events {
		total += e.Points
	}
	return total, nil
}

func (r *eventRepo) SessionCount(ctx context.Context) (int, error) {
	n, err := r.client.SessionEvent.Query().
		Where(sessionevent.Action("end")).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count sessions: %w", err)
	}
	return n, nil
}
