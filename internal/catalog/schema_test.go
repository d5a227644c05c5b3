package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validLessonPayload = `{
	"id": "lesson-1",
	"title": "Nouns",
	"percentage": 50,
	"challenges": [
		{
			"id": "ch-1",
			"type": "SELECT",
			"question": "Which one is \"the man\"?",
			"order": 1,
			"completed": true,
			"options": [
				{"id": "opt-1", "text": "el hombre", "order": 1},
				{"id": "opt-2", "text": "la mujer", "order": 2}
			]
		},
		{
			"id": "ch-2",
			"type": "TRANSLATION",
			"question": "Translate: the woman",
			"order": 2,
			"options": [
				{"id": "opt-3", "text": "la mujer", "order": 1}
			]
		}
	]
}`

func TestDecodeLesson_Valid(t *testing.T) {
	lesson, err := DecodeLesson([]byte(validLessonPayload))
	require.NoError(t, err)

	assert.Equal(t, "lesson-1", lesson.ID)
	assert.Equal(t, 50.0, lesson.Percentage)
	require.Len(t, lesson.Challenges, 2)
	assert.True(t, lesson.Challenges[0].Completed)
	assert.Equal(t, TypeTranslation, lesson.Challenges[1].Type)

	idx, all := lesson.FirstIncomplete()
	assert.Equal(t, 1, idx)
	assert.False(t, all)
}

func TestDecodeLesson_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"not json", `{{`},
		{"missing challenges", `{"id": "lesson-1"}`},
		{"empty challenges", `{"id": "lesson-1", "challenges": []}`},
		{"unknown type", `{"id": "l", "challenges": [
			{"id": "c", "type": "FLASHCARD", "order": 1,
			 "options": [{"id": "o", "order": 1}]}]}`},
		{"challenge without options", `{"id": "l", "challenges": [
			{"id": "c", "type": "SELECT", "order": 1, "options": []}]}`},
		{"option without id", `{"id": "l", "challenges": [
			{"id": "c", "type": "SELECT", "order": 1,
			 "options": [{"text": "x", "order": 1}]}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeLesson([]byte(tt.payload))
			assert.Error(t, err)
		})
	}
}
