package catalog

import (
	"errors"
	"testing"
)

func resolveChallenge(typ Type) Challenge {
	return Challenge{
		ID:       "ch-1",
		Type:     typ,
		Question: "test",
		Order:    1,
		Options: []Option{
			{ID: "opt-a", Text: "el hombre", Order: 1},
			{ID: "opt-b", Text: "la mujer", Order: 2},
			{ID: "opt-c", Text: "el robot", Order: 3},
		},
	}
}

func mustResolve(t *testing.T, typ Type, in Input) string {
	t.Helper()
	r, err := ResolverFor(typ)
	if err != nil {
		t.Fatalf("ResolverFor(%s): %v", typ, err)
	}
	id, err := r.Resolve(resolveChallenge(typ), in)
	if err != nil {
		t.Fatalf("Resolve(%s): %v", typ, err)
	}
	return id
}

func resolveErr(t *testing.T, typ Type, in Input) error {
	t.Helper()
	r, err := ResolverFor(typ)
	if err != nil {
		t.Fatalf("ResolverFor(%s): %v", typ, err)
	}
	_, err = r.Resolve(resolveChallenge(typ), in)
	return err
}

func TestResolverFor_AllTypes(t *testing.T) {
	for _, typ := range Types {
		if _, err := ResolverFor(typ); err != nil {
			t.Errorf("ResolverFor(%s): %v", typ, err)
		}
	}
	if _, err := ResolverFor("FLASHCARD"); err == nil {
		t.Error("expected error for unknown type")
	}
}

func TestChoiceResolver(t *testing.T) {
	if got := mustResolve(t, TypeSelect, Input{OptionID: "opt-b"}); got != "opt-b" {
		t.Errorf("resolved %q, want opt-b", got)
	}
	// ASSIST resolves identically to SELECT.
	if got := mustResolve(t, TypeAssist, Input{OptionID: "opt-c"}); got != "opt-c" {
		t.Errorf("resolved %q, want opt-c", got)
	}

	if err := resolveErr(t, TypeSelect, Input{}); !errors.Is(err, ErrIncompleteInput) {
		t.Errorf("empty input err = %v, want ErrIncompleteInput", err)
	}
	if err := resolveErr(t, TypeSelect, Input{OptionID: "nope"}); err == nil {
		t.Error("expected error for foreign option id")
	}
}

func TestTextResolver(t *testing.T) {
	// Direct pick wins over text.
	if got := mustResolve(t, TypeFillBlank, Input{OptionID: "opt-b", Text: "el hombre"}); got != "opt-b" {
		t.Errorf("resolved %q, want opt-b", got)
	}

	// Typed entry matches option text, loosely normalized.
	if got := mustResolve(t, TypeTranslation, Input{Text: "  La  MUJER "}); got != "opt-b" {
		t.Errorf("resolved %q, want opt-b", got)
	}

	// Unmatched entry converges on the canonical option; the server decides.
	if got := mustResolve(t, TypeTranslation, Input{Text: "no idea"}); got != "opt-a" {
		t.Errorf("resolved %q, want canonical opt-a", got)
	}

	if err := resolveErr(t, TypeFillBlank, Input{Text: "   "}); !errors.Is(err, ErrIncompleteInput) {
		t.Errorf("blank entry err = %v, want ErrIncompleteInput", err)
	}
}

func TestListeningResolver_AudioGate(t *testing.T) {
	if err := resolveErr(t, TypeListening, Input{OptionID: "opt-a"}); !errors.Is(err, ErrIncompleteInput) {
		t.Errorf("unplayed audio err = %v, want ErrIncompleteInput", err)
	}
	if got := mustResolve(t, TypeListening, Input{OptionID: "opt-a", AudioPlayed: true}); got != "opt-a" {
		t.Errorf("resolved %q, want opt-a", got)
	}
}

func TestSpeakingResolver(t *testing.T) {
	if err := resolveErr(t, TypeSpeaking, Input{}); !errors.Is(err, ErrIncompleteInput) {
		t.Errorf("unrecorded err = %v, want ErrIncompleteInput", err)
	}
	if got := mustResolve(t, TypeSpeaking, Input{Recorded: true}); got != "opt-a" {
		t.Errorf("resolved %q, want canonical opt-a", got)
	}
}

func TestMatchPairsResolver(t *testing.T) {
	if err := resolveErr(t, TypeMatchPairs, Input{PairsResolved: 2}); !errors.Is(err, ErrIncompleteInput) {
		t.Errorf("partial pairs err = %v, want ErrIncompleteInput", err)
	}
	if got := mustResolve(t, TypeMatchPairs, Input{PairsResolved: 3}); got != "opt-a" {
		t.Errorf("resolved %q, want canonical opt-a", got)
	}
}

func TestSentenceOrderResolver(t *testing.T) {
	if err := resolveErr(t, TypeSentenceOrder, Input{TokensPlaced: []string{"opt-a"}}); !errors.Is(err, ErrIncompleteInput) {
		t.Errorf("partial tokens err = %v, want ErrIncompleteInput", err)
	}
	got := mustResolve(t, TypeSentenceOrder, Input{TokensPlaced: []string{"opt-c", "opt-a", "opt-b"}})
	if got != "opt-a" {
		t.Errorf("resolved %q, want canonical opt-a", got)
	}
	if err := resolveErr(t, TypeSentenceOrder, Input{TokensPlaced: []string{"opt-a", "opt-b", "zzz"}}); err == nil {
		t.Error("expected error for foreign token id")
	}
}
