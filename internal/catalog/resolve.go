package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// Input is the composite learner input a variant collects before submission.
// Only the fields a given variant reads are meaningful; the rest stay zero.
type Input struct {
	// OptionID is a direct 1-of-N choice (SELECT, ASSIST, LISTENING, and the
	// pick path of FILL_BLANK/TRANSLATION).
	OptionID string

	// Text is a free-text entry (FILL_BLANK, TRANSLATION).
	Text string

	// AudioPlayed gates LISTENING: no selection is accepted before playback.
	AudioPlayed bool

	// Recorded is SPEAKING's single affordance.
	Recorded bool

	// PairsResolved counts locally matched pairs for MATCH_PAIRS.
	PairsResolved int

	// TokensPlaced is the ordered word-token sequence for SENTENCE_ORDER,
	// as option ids.
	TokensPlaced []string
}

// ErrIncompleteInput means the variant's composite input is not yet in a
// submittable state (nothing chosen, audio not played, pairs unresolved).
// It is a guard, not a verdict: the learner just isn't done yet.
var ErrIncompleteInput = errors.New("catalog: input incomplete")

// Resolver maps a variant's composite input down to exactly one canonical
// option id. The grading authority is keyed by option id, so every variant,
// whatever it collects, converges here before the evaluation round trip.
type Resolver interface {
	Resolve(c Challenge, in Input) (string, error)
}

// ResolverFor returns the resolver for a challenge type. Unknown types are
// rejected at catalog construction, so this never fails on a frozen Lesson.
func ResolverFor(t Type) (Resolver, error) {
	switch t {
	case TypeSelect, TypeAssist:
		return choiceResolver{}, nil
	case TypeFillBlank, TypeTranslation:
		return textResolver{}, nil
	case TypeListening:
		return listeningResolver{}, nil
	case TypeSpeaking:
		return speakingResolver{}, nil
	case TypeMatchPairs:
		return matchPairsResolver{}, nil
	case TypeSentenceOrder:
		return sentenceOrderResolver{}, nil
	default:
		return nil, fmt.Errorf("catalog: no resolver for type %q", t)
	}
}

// choiceResolver handles the direct 1-of-N variants. ASSIST differs from
// SELECT only in presentation (the prompt bubble), not in resolution.
type choiceResolver struct{}

func (choiceResolver) Resolve(c Challenge, in Input) (string, error) {
	if in.OptionID == "" {
		return "", ErrIncompleteInput
	}
	if _, ok := c.Option(in.OptionID); !ok {
		return "", fmt.Errorf("catalog: option %s not in challenge %s", in.OptionID, c.ID)
	}
	return in.OptionID, nil
}

// textResolver handles FILL_BLANK and TRANSLATION: a direct pick wins, a
// typed entry is matched against option text, and an unmatched entry falls
// back to the canonical option so the server makes the call.
type textResolver struct{}

func (textResolver) Resolve(c Challenge, in Input) (string, error) {
	if in.OptionID != "" {
		if _, ok := c.Option(in.OptionID); !ok {
			return "", fmt.Errorf("catalog: option %s not in challenge %s", in.OptionID, c.ID)
		}
		return in.OptionID, nil
	}

	entry := normalizeText(in.Text)
	if entry == "" {
		return "", ErrIncompleteInput
	}
	for _, o := range c.Options {
		if normalizeText(o.Text) == entry {
			return o.ID, nil
		}
	}
	return c.Canonical().ID, nil
}

// listeningResolver is SELECT behind an audio gate.
type listeningResolver struct{}

func (listeningResolver) Resolve(c Challenge, in Input) (string, error) {
	if !in.AudioPlayed {
		return "", ErrIncompleteInput
	}
	return choiceResolver{}.Resolve(c, in)
}

// speakingResolver maps the single recording affordance to the lesson's one
// canonical option; there are no enumerated choices to pick from.
type speakingResolver struct{}

func (speakingResolver) Resolve(c Challenge, in Input) (string, error) {
	if !in.Recorded {
		return "", ErrIncompleteInput
	}
	return c.Canonical().ID, nil
}

// matchPairsResolver requires all pairs resolved locally before one
// confirmation submits the canonical option.
type matchPairsResolver struct{}

func (matchPairsResolver) Resolve(c Challenge, in Input) (string, error) {
	if in.PairsResolved < len(c.Options) {
		return "", ErrIncompleteInput
	}
	return c.Canonical().ID, nil
}

// sentenceOrderResolver requires every word token placed before one
// confirmation submits the canonical option.
type sentenceOrderResolver struct{}

func (sentenceOrderResolver) Resolve(c Challenge, in Input) (string, error) {
	if len(in.TokensPlaced) < len(c.Options) {
		return "", ErrIncompleteInput
	}
	for _, id := range in.TokensPlaced {
		if _, ok := c.Option(id); !ok {
			return "", fmt.Errorf("catalog: token %s not in challenge %s", id, c.ID)
		}
	}
	return c.Canonical().ID, nil
}

// normalizeText lowercases, trims, and collapses inner whitespace so typed
// entries compare loosely against option text.
func normalizeText(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
