package catalog

import (
	"errors"
	"fmt"
	"sort"
)

// Type identifies the interaction shape of a challenge. The set is closed:
// the platform never serves a type outside it, and the client rejects
// catalogs that try.
type Type string

const (
	TypeSelect        Type = "SELECT"
	TypeAssist        Type = "ASSIST"
	TypeFillBlank     Type = "FILL_BLANK"
	TypeTranslation   Type = "TRANSLATION"
	TypeListening     Type = "LISTENING"
	TypeSpeaking      Type = "SPEAKING"
	TypeMatchPairs    Type = "MATCH_PAIRS"
	TypeSentenceOrder Type = "SENTENCE_ORDER"
)

// Types lists every valid challenge type in display order.
var Types = []Type{
	TypeSelect, TypeAssist, TypeFillBlank, TypeTranslation,
	TypeListening, TypeSpeaking, TypeMatchPairs, TypeSentenceOrder,
}

// Valid reports whether t is a member of the closed type set.
func (t Type) Valid() bool {
	for _, known := range Types {
		if t == known {
			return true
		}
	}
	return false
}

// Option is one answer candidate for a challenge. Whether it is the correct
// one is known only to the platform; the client never sees correctness.
type Option struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Image string `json:"image,omitempty"`
	Audio string `json:"audio,omitempty"`
	Order int    `json:"order"`
}

// Challenge is one exercise within a lesson.
type Challenge struct {
	ID        string   `json:"id"`
	Type      Type     `json:"type"`
	Question  string   `json:"question"`
	Order     int      `json:"order"`
	Options   []Option `json:"options"`
	Completed bool     `json:"completed"`
}

// Canonical returns the challenge's canonical option: the one with the
// lowest order. Variants that collect composite input submit this option
// when their input cannot be mapped onto a specific candidate.
func (c Challenge) Canonical() Option {
	return c.Options[0]
}

// Lesson is an immutable, ordered catalog of challenges. Construct it with
// NewLesson; a zero or hand-built Lesson skips validation and must not be
// handed to the engine.
type Lesson struct {
	ID         string      `json:"id"`
	Title      string      `json:"title"`
	Percentage float64     `json:"percentage"`
	Challenges []Challenge `json:"challenges"`
}

// ErrEmptyCatalog is returned when a lesson arrives with no challenges.
// The engine cannot compute a starting index for an empty catalog, so this
// is fatal to session construction.
var ErrEmptyCatalog = errors.New("catalog: lesson has no challenges")

// NewLesson validates and freezes a challenge catalog. Challenges are sorted
// by Order, and each challenge's options by their Order. An empty catalog, a
// challenge without options, or an unknown challenge type is a construction
// error.
func NewLesson(id, title string, percentage float64, challenges []Challenge) (*Lesson, error) {
	if len(challenges) == 0 {
		return nil, ErrEmptyCatalog
	}

	sorted := make([]Challenge, len(challenges))
	copy(sorted, challenges)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Order < sorted[j].Order })

	for i := range sorted {
		ch := &sorted[i]
		if ch.ID == "" {
			return nil, fmt.Errorf("catalog: challenge at position %d has no id", i)
		}
		if !ch.Type.Valid() {
			return nil, fmt.Errorf("catalog: challenge %s has unknown type %q", ch.ID, ch.Type)
		}
		if len(ch.Options) == 0 {
			return nil, fmt.Errorf("catalog: challenge %s has no options", ch.ID)
		}
		opts := make([]Option, len(ch.Options))
		copy(opts, ch.Options)
		sort.SliceStable(opts, func(a, b int) bool { return opts[a].Order < opts[b].Order })
		seen := make(map[string]bool, len(opts))
		for _, o := range opts {
			if o.ID == "" {
				return nil, fmt.Errorf("catalog: challenge %s has an option without an id", ch.ID)
			}
			if seen[o.ID] {
				return nil, fmt.Errorf("catalog: challenge %s has duplicate option id %s", ch.ID, o.ID)
			}
			seen[o.ID] = true
		}
		ch.Options = opts
	}

	if percentage < 0 {
		percentage = 0
	}
	if percentage > 100 {
		percentage = 100
	}

	return &Lesson{
		ID:         id,
		Title:      title,
		Percentage: percentage,
		Challenges: sorted,
	}, nil
}

// FirstIncomplete returns the index of the first challenge not yet completed
// in a prior pass. The second return is true when every challenge is already
// complete, meaning a fresh entry should replay from the start.
func (l *Lesson) FirstIncomplete() (int, bool) {
	for i, ch := range l.Challenges {
		if !ch.Completed {
			return i, false
		}
	}
	return 0, true
}

// Len returns the number of challenges in the catalog.
func (l *Lesson) Len() int {
	return len(l.Challenges)
}

// Option looks up an option by id on the given challenge.
func (c Challenge) Option(id string) (Option, bool) {
	for _, o := range c.Options {
		if o.ID == id {
			return o, true
		}
	}
	return Option{}, false
}
