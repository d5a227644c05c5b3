package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePlatform is an in-process stand-in for the progress authority.
type fakePlatform struct {
	hearts      int
	correct     map[string]string // challenge id -> correct option id
	evaluations int
}

func (f *fakePlatform) router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/evaluations", f.handleEvaluate).Methods(http.MethodPost)
	r.HandleFunc("/lessons/{id}/challenges", f.handleChallenges).Methods(http.MethodGet)
	r.HandleFunc("/me/progress", f.handleProgress).Methods(http.MethodGet)
	return r
}

func (f *fakePlatform) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	f.evaluations++
	var req struct {
		ChallengeID string `json:"challenge_id"`
		OptionID    string `json:"option_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	correct := f.correct[req.ChallengeID] == req.OptionID
	if !correct {
		if f.hearts == 0 {
			w.WriteHeader(http.StatusForbidden)
			json.NewEncoder(w).Encode(map[string]string{"error": "hearts_exhausted"})
			return
		}
		f.hearts--
	}
	json.NewEncoder(w).Encode(map[string]any{"correct": correct, "hearts": f.hearts})
}

func (f *fakePlatform) handleChallenges(w http.ResponseWriter, r *http.Request) {
	lessonID := mux.Vars(r)["id"]
	json.NewEncoder(w).Encode(map[string]any{
		"id":    lessonID,
		"title": "Nouns",
		"challenges": []map[string]any{
			{
				"id": "ch-1", "type": "SELECT", "question": "q", "order": 1,
				"options": []map[string]any{
					{"id": "opt-1", "text": "a", "order": 1},
					{"id": "opt-2", "text": "b", "order": 2},
				},
			},
		},
	})
}

func (f *fakePlatform) handleProgress(w http.ResponseWriter, r *http.Request) {
	json.NewEncoder(w).Encode(map[string]any{
		"hearts":        f.hearts,
		"active_course": "spanish",
		"subscribed":    false,
		"units": []map[string]any{
			{
				"id": "u1", "title": "Unit 1",
				"lessons": []map[string]any{
					{"id": "l1", "title": "Nouns", "completed": true},
					{"id": "l2", "title": "Verbs", "completed": false},
				},
			},
		},
	})
}

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, "test-token", time.Second)
}

func TestEvaluate_Verdicts(t *testing.T) {
	fake := &fakePlatform{hearts: 5, correct: map[string]string{"ch-1": "opt-1"}}
	client := newTestClient(t, fake.router())
	ctx := context.Background()

	v, err := client.Evaluate(ctx, "ch-1", "opt-1")
	require.NoError(t, err)
	assert.True(t, v.Correct)
	assert.Equal(t, 5, v.Hearts)

	v, err = client.Evaluate(ctx, "ch-1", "opt-2")
	require.NoError(t, err)
	assert.False(t, v.Correct)
	assert.Equal(t, 4, v.Hearts)
}

func TestEvaluate_HeartsExhausted(t *testing.T) {
	fake := &fakePlatform{hearts: 0, correct: map[string]string{"ch-1": "opt-1"}}
	client := newTestClient(t, fake.router())

	_, err := client.Evaluate(context.Background(), "ch-1", "opt-2")
	assert.ErrorIs(t, err, ErrHeartsExhausted)
}

func TestEvaluate_ServerErrorIsTransient(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := client.Evaluate(context.Background(), "ch-1", "opt-1")
	assert.True(t, IsTransient(err), "5xx should classify as transient, got %v", err)
}

func TestEvaluate_ConnectionErrorIsTransient(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // connection refused from here on
	client := NewClient(srv.URL, "", time.Second)

	_, err := client.Evaluate(context.Background(), "ch-1", "opt-1")
	assert.True(t, IsTransient(err), "connection failure should classify as transient, got %v", err)
}

func TestEvaluate_Unauthorized(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	_, err := client.Evaluate(context.Background(), "ch-1", "opt-1")
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.False(t, IsTransient(err))
}

func TestLessonChallenges_DecodesAndFreezes(t *testing.T) {
	fake := &fakePlatform{hearts: 5}
	client := newTestClient(t, fake.router())

	lesson, err := client.LessonChallenges(context.Background(), "lesson-9")
	require.NoError(t, err)
	assert.Equal(t, "lesson-9", lesson.ID)
	require.Equal(t, 1, lesson.Len())
	assert.Equal(t, "opt-1", lesson.Challenges[0].Canonical().ID)
}

func TestLessonChallenges_MalformedPayloadFatal(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Catalog with an empty challenge list: fatal, not transient.
		w.Write([]byte(`{"id": "l", "challenges": []}`))
	}))

	_, err := client.LessonChallenges(context.Background(), "l")
	require.Error(t, err)
	assert.False(t, IsTransient(err), "invalid catalog is a construction failure, not retryable")
}

func TestUserProgress(t *testing.T) {
	fake := &fakePlatform{hearts: 3}
	client := newTestClient(t, fake.router())

	p, err := client.UserProgress(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, p.Hearts)
	assert.Equal(t, "spanish", p.ActiveCourse)
	require.Len(t, p.Units, 1)
	assert.Len(t, p.Units[0].Lessons, 2)
}

func TestAuthHeaderSent(t *testing.T) {
	var gotAuth string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(map[string]any{"hearts": 1})
	}))

	_, err := client.UserProgress(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer test-token", gotAuth)
}

func TestEvaluate_NoAutomaticRetry(t *testing.T) {
	calls := 0
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadGateway)
	}))

	_, err := client.Evaluate(context.Background(), "ch-1", "opt-1")
	require.True(t, errors.As(err, new(*TransientError)))
	assert.Equal(t, 1, calls, "client must not retry on its own")
}
