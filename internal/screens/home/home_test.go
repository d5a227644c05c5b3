package home

import (
	"context"
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/ssanyal/lingua/internal/api"
	"github.com/ssanyal/lingua/internal/catalog"
	"github.com/ssanyal/lingua/internal/engine"
	"github.com/ssanyal/lingua/internal/router"
)

type fakePlatform struct {
	progress api.UserProgress
	err      error
}

func (f *fakePlatform) LessonChallenges(_ context.Context, _ string) (*catalog.Lesson, error) {
	return nil, errors.New("not used")
}
func (f *fakePlatform) UserProgress(_ context.Context) (api.UserProgress, error) {
	return f.progress, f.err
}
func (f *fakePlatform) Evaluate(_ context.Context, _, _ string) (engine.Verdict, error) {
	return engine.Verdict{}, errors.New("not used")
}

func testProgress() api.UserProgress {
	return api.UserProgress{
		Hearts:       4,
		ActiveCourse: "Spanish",
		Units: []catalog.Unit{
			{
				ID:    "u1",
				Title: "Unit 1",
				Lessons: []catalog.LessonRef{
					{ID: "l1", Title: "Basics 1", Completed: true},
					{ID: "l2", Title: "Basics 2"},
					{ID: "l3", Title: "Basics 3"},
				},
			},
		},
	}
}

func loadedHome(t *testing.T) *HomeScreen {
	t.Helper()
	h := New(&fakePlatform{progress: testProgress()}, nil)

	msg := h.Init()()
	h.Update(msg)
	if !h.loaded {
		t.Fatalf("home not loaded: %v", h.errMsg)
	}
	return h
}

func TestHomeScreen_LoadBuildsLedger(t *testing.T) {
	h := loadedHome(t)

	// Unit divider + 3 lessons + quit.
	if len(h.menu.Items) != 5 {
		t.Fatalf("menu items = %d, want 5", len(h.menu.Items))
	}
	if !h.menu.Items[0].Disabled {
		t.Error("expected unit divider to be unselectable")
	}
	if h.menu.Items[1].Disabled {
		t.Error("expected completed lesson to be enterable")
	}
	if h.menu.Items[2].Disabled {
		t.Error("expected current lesson to be enterable")
	}
	if !h.menu.Items[3].Disabled {
		t.Error("expected locked lesson to be gated out")
	}
}

func TestHomeScreen_EnterOpensLesson(t *testing.T) {
	h := loadedHome(t)

	// Initial selection is the first enterable item: the completed lesson.
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on enter")
	}
	if _, ok := cmd().(router.PushScreenMsg); !ok {
		t.Errorf("expected PushScreenMsg, got %T", cmd())
	}
}

func TestHomeScreen_StatusFromProgress(t *testing.T) {
	h := loadedHome(t)

	st := h.Status()
	if st.Hearts != 4 {
		t.Errorf("hearts = %d, want 4", st.Hearts)
	}
}

func TestHomeScreen_LoadErrorRetries(t *testing.T) {
	platform := &fakePlatform{err: errors.New("offline")}
	h := New(platform, nil)

	h.Update(h.Init()())
	if h.errMsg == "" {
		t.Fatal("expected load error surfaced")
	}

	platform.err = nil
	platform.progress = testProgress()
	_, cmd := h.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})
	if cmd == nil {
		t.Fatal("expected reload command on retry")
	}
	h.Update(cmd())
	if !h.loaded {
		t.Error("expected home loaded after retry")
	}
}
