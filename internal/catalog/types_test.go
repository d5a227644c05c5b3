package catalog

import (
	"errors"
	"fmt"
	"testing"
)

func testChallenges(n int) []Challenge {
	chs := make([]Challenge, n)
	for i := range chs {
		chs[i] = Challenge{
			ID:       fmt.Sprintf("ch-%d", i+1),
			Type:     TypeSelect,
			Question: fmt.Sprintf("question %d", i+1),
			Order:    i + 1,
			Options: []Option{
				{ID: fmt.Sprintf("ch-%d-a", i+1), Text: "alpha", Order: 1},
				{ID: fmt.Sprintf("ch-%d-b", i+1), Text: "beta", Order: 2},
			},
		}
	}
	return chs
}

func TestNewLesson_SortsByOrder(t *testing.T) {
	chs := testChallenges(3)
	// Shuffle deliberately.
	shuffled := []Challenge{chs[2], chs[0], chs[1]}

	lesson, err := NewLesson("lesson-1", "Basics", 0, shuffled)
	if err != nil {
		t.Fatalf("NewLesson: %v", err)
	}

	for i, ch := range lesson.Challenges {
		if ch.Order != i+1 {
			t.Errorf("challenge %d has order %d, want %d", i, ch.Order, i+1)
		}
	}
}

func TestNewLesson_EmptyCatalog(t *testing.T) {
	_, err := NewLesson("lesson-1", "Basics", 0, nil)
	if !errors.Is(err, ErrEmptyCatalog) {
		t.Fatalf("err = %v, want ErrEmptyCatalog", err)
	}
}

func TestNewLesson_ChallengeWithoutOptions(t *testing.T) {
	chs := testChallenges(2)
	chs[1].Options = nil

	_, err := NewLesson("lesson-1", "Basics", 0, chs)
	if err == nil {
		t.Fatal("expected error for challenge without options")
	}
}

func TestNewLesson_UnknownType(t *testing.T) {
	chs := testChallenges(1)
	chs[0].Type = "FLASHCARD"

	_, err := NewLesson("lesson-1", "Basics", 0, chs)
	if err == nil {
		t.Fatal("expected error for unknown challenge type")
	}
}

func TestNewLesson_DuplicateOptionID(t *testing.T) {
	chs := testChallenges(1)
	chs[0].Options[1].ID = chs[0].Options[0].ID

	_, err := NewLesson("lesson-1", "Basics", 0, chs)
	if err == nil {
		t.Fatal("expected error for duplicate option id")
	}
}

func TestNewLesson_SortsOptions(t *testing.T) {
	chs := testChallenges(1)
	chs[0].Options = []Option{
		{ID: "b", Text: "beta", Order: 2},
		{ID: "a", Text: "alpha", Order: 1},
	}

	lesson, err := NewLesson("lesson-1", "Basics", 0, chs)
	if err != nil {
		t.Fatalf("NewLesson: %v", err)
	}
	if got := lesson.Challenges[0].Canonical().ID; got != "a" {
		t.Errorf("Canonical().ID = %q, want %q", got, "a")
	}
}

func TestFirstIncomplete(t *testing.T) {
	tests := []struct {
		name      string
		completed []bool
		wantIdx   int
		wantAll   bool
	}{
		{"none completed", []bool{false, false, false}, 0, false},
		{"partial", []bool{true, true, false}, 2, false},
		{"all completed", []bool{true, true, true}, 0, true},
		{"gap resumes at first incomplete", []bool{true, false, true}, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chs := testChallenges(len(tt.completed))
			for i := range chs {
				chs[i].Completed = tt.completed[i]
			}
			lesson, err := NewLesson("lesson-1", "Basics", 0, chs)
			if err != nil {
				t.Fatalf("NewLesson: %v", err)
			}

			idx, all := lesson.FirstIncomplete()
			if idx != tt.wantIdx || all != tt.wantAll {
				t.Errorf("FirstIncomplete() = (%d, %v), want (%d, %v)", idx, all, tt.wantIdx, tt.wantAll)
			}
		})
	}
}

func TestLedgerStates(t *testing.T) {
	lessons := []LessonRef{
		{ID: "l1", Completed: true},
		{ID: "l2", Completed: true},
		{ID: "l3", Completed: false},
		{ID: "l4", Completed: false},
	}

	states := LedgerStates(lessons)
	want := []LessonState{LessonCompleted, LessonCompleted, LessonCurrent, LessonLocked}
	for i, s := range states {
		if s != want[i] {
			t.Errorf("lesson %d state = %v, want %v", i, s, want[i])
		}
	}

	if !states[0].Enterable() {
		t.Error("completed lesson should be enterable (practice)")
	}
	if !states[2].Enterable() {
		t.Error("current lesson should be enterable")
	}
	if states[3].Enterable() {
		t.Error("locked lesson should not be enterable")
	}
}

func TestLedgerStates_AllCompleted(t *testing.T) {
	lessons := []LessonRef{
		{ID: "l1", Completed: true},
		{ID: "l2", Completed: true},
	}

	for i, s := range LedgerStates(lessons) {
		if s != LessonCompleted {
			t.Errorf("lesson %d state = %v, want completed", i, s)
		}
	}
}
