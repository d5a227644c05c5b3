// Package api is the client for the platform's progress authority: it
// fetches lesson catalogs and user progress and runs the evaluation round
// trip. The platform is the single writer of record for hearts and
// per-challenge completion; this client never grades anything locally.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ssanyal/lingua/internal/catalog"
	"github.com/ssanyal/lingua/internal/engine"
)

// DefaultTimeout bounds a single round trip. There is no automatic retry:
// a timed-out call surfaces as transient and the learner re-attempts.
const DefaultTimeout = 10 * time.Second

// UserProgress is the learner state the platform reports on entry.
type UserProgress struct {
	Hearts       int            `json:"hearts"`
	ActiveCourse string         `json:"active_course"`
	Subscribed   bool           `json:"subscribed"`
	Units        []catalog.Unit `json:"units"`
}

// Client talks to the platform API. Safe for use from a single event loop;
// it holds no mutable state beyond the http.Client.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// NewClient creates a platform client. baseURL is the API root without a
// trailing slash; token is sent as a bearer credential on every call.
func NewClient(baseURL, token string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{Timeout: timeout},
	}
}

type evaluateRequest struct {
	ChallengeID string `json:"challenge_id"`
	OptionID    string `json:"option_id"`
}

type apiError struct {
	Error string `json:"error"`
}

// Evaluate submits the learner's chosen option for grading and returns the
// platform's verdict. The call is idempotent per (challenge, user): a
// re-submitted answer already graded correct in this pass is not
// re-penalized server-side.
//
// Error taxonomy: ErrHeartsExhausted when the server refuses a would-be
// wrong answer at zero hearts; *TransientError for network/timeout/5xx;
// ErrUnauthorized on credential rejection.
func (c *Client) Evaluate(ctx context.Context, challengeID, optionID string) (engine.Verdict, error) {
	body, err := json.Marshal(evaluateRequest{ChallengeID: challengeID, OptionID: optionID})
	if err != nil {
		return engine.Verdict{}, fmt.Errorf("marshal evaluation: %w", err)
	}

	resp, err := c.do(ctx, http.MethodPost, "/evaluations", bytes.NewReader(body))
	if err != nil {
		return engine.Verdict{}, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		var v engine.Verdict
		if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
			return engine.Verdict{}, &TransientError{Err: fmt.Errorf("decode verdict: %w", err)}
		}
		return v, nil

	case resp.StatusCode == http.StatusUnauthorized:
		return engine.Verdict{}, ErrUnauthorized

	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		var ae apiError
		if err := json.NewDecoder(resp.Body).Decode(&ae); err == nil && ae.Error == "hearts_exhausted" {
			return engine.Verdict{}, ErrHeartsExhausted
		}
		return engine.Verdict{}, fmt.Errorf("evaluate: unexpected status %d", resp.StatusCode)

	default:
		return engine.Verdict{}, &TransientError{Err: fmt.Errorf("evaluate: status %d", resp.StatusCode)}
	}
}

// LessonChallenges fetches the challenge catalog for one lesson. Called once
// per session; the returned Lesson is schema-validated, sorted, and frozen.
func (c *Client) LessonChallenges(ctx context.Context, lessonID string) (*catalog.Lesson, error) {
	resp, err := c.do(ctx, http.MethodGet, "/lessons/"+lessonID+"/challenges", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := c.checkStatus(resp); err != nil {
		return nil, err
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransientError{Err: fmt.Errorf("read lesson payload: %w", err)}
	}
	return catalog.DecodeLesson(raw)
}

// UserProgress fetches the learner's hearts balance, subscription flag, and
// the course units with per-lesson completion for the unlock ledger.
func (c *Client) UserProgress(ctx context.Context) (UserProgress, error) {
	resp, err := c.do(ctx, http.MethodGet, "/me/progress", nil)
	if err != nil {
		return UserProgress{}, err
	}
	defer resp.Body.Close()

	if err := c.checkStatus(resp); err != nil {
		return UserProgress{}, err
	}

	var p UserProgress
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return UserProgress{}, &TransientError{Err: fmt.Errorf("decode progress: %w", err)}
	}
	return p, nil
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &TransientError{Err: err}
	}
	return resp, nil
}

func (c *Client) checkStatus(resp *http.Response) error {
	switch {
	case resp.StatusCode == http.StatusOK:
		return nil
	case resp.StatusCode == http.StatusUnauthorized:
		return ErrUnauthorized
	case resp.StatusCode >= 500:
		return &TransientError{Err: fmt.Errorf("%s: status %d", resp.Request.URL.Path, resp.StatusCode)}
	default:
		return fmt.Errorf("%s: unexpected status %d", resp.Request.URL.Path, resp.StatusCode)
	}
}
