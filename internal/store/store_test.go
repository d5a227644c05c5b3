package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAnswerEvents_AppendAndStats(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	answers := []AnswerEventData{
		{SessionID: "s1", LessonID: "l1", ChallengeID: "c1", ChallengeType: "SELECT", OptionID: "o1", Correct: true, HeartsAfter: 5, TimeMs: 1200},
		{SessionID: "s1", LessonID: "l1", ChallengeID: "c2", ChallengeType: "ASSIST", OptionID: "o2", Correct: false, HeartsAfter: 4, TimeMs: 3400},
		{SessionID: "s1", LessonID: "l1", ChallengeID: "c2", ChallengeType: "ASSIST", OptionID: "o3", Correct: true, HeartsAfter: 4, TimeMs: 900},
		{SessionID: "s2", LessonID: "l2", ChallengeID: "c9", ChallengeType: "SPEAKING", OptionID: "o9", Correct: true, HeartsAfter: 4, TimeMs: 500, Practice: true},
	}
	for _, a := range answers {
		if err := repo.AppendAnswerEvent(ctx, a); err != nil {
			t.Fatalf("append answer: %v", err)
		}
	}

	stats, err := repo.LessonStats(ctx, "l1")
	if err != nil {
		t.Fatalf("lesson stats: %v", err)
	}
	if stats.Attempts != 3 || stats.Correct != 2 {
		t.Errorf("stats = %+v, want 3 attempts / 2 correct", stats)
	}
	if stats.Accuracy < 0.66 || stats.Accuracy > 0.67 {
		t.Errorf("accuracy = %v, want ~0.667", stats.Accuracy)
	}

	empty, err := repo.LessonStats(ctx, "unknown")
	if err != nil {
		t.Fatalf("lesson stats (empty): %v", err)
	}
	if empty.Attempts != 0 || empty.Accuracy != 0 {
		t.Errorf("empty stats = %+v, want zeros", empty)
	}
}

func TestSessionEvents_PointsAndCount(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []SessionEventData{
		{SessionID: "s1", LessonID: "l1", Action: "start"},
		{SessionID: "s1", LessonID: "l1", Action: "end", Points: 40, HeartsRemaining: 3, DurationSecs: 95},
		{SessionID: "s2", LessonID: "l1", Action: "start"},
		{SessionID: "s2", LessonID: "l1", Action: "end", Points: 40, HeartsRemaining: 5, Practice: true, DurationSecs: 60},
	}
	for _, e := range events {
		if err := repo.AppendSessionEvent(ctx, e); err != nil {
			t.Fatalf("append session event: %v", err)
		}
	}

	points, err := repo.TotalPoints(ctx)
	if err != nil {
		t.Fatalf("total points: %v", err)
	}
	if points != 80 {
		t.Errorf("TotalPoints = %d, want 80", points)
	}

	n, err := repo.SessionCount(ctx)
	if err != nil {
		t.Fatalf("session count: %v", err)
	}
	if n != 2 {
		t.Errorf("SessionCount = %d, want 2 (start events excluded)", n)
	}
}

func TestSequence_MonotonicAcrossEventTypes(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var prev int64 = -1
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next sequence: %v", err)
		}
		if seq <= prev {
			t.Errorf("sequence not increasing: %d after %d", seq, prev)
		}
		prev = seq
	}
}
