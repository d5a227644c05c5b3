// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/ssanyal/lingua/ent/answerevent"
	"github.com/ssanyal/lingua/ent/schema"
	"github.com/ssanyal/lingua/ent/sessionevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescSessionID is the schema descriptor for session_id field.
	answereventDescSessionID := answereventFields[0].Descriptor()
	// answerevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	answerevent.SessionIDValidator = answereventDescSessionID.Validators[0].(func(string) error)
	// answereventDescLessonID is the schema descriptor for lesson_id field.
	answereventDescLessonID := answereventFields[1].Descriptor()
	// answerevent.LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	answerevent.LessonIDValidator = answereventDescLessonID.Validators[0].(func(string) error)
	// answereventDescChallengeID is the schema descriptor for challenge_id field.
	answereventDescChallengeID := answereventFields[2].Descriptor()
	// answerevent.ChallengeIDValidator is a validator for the "challenge_id" field. It is called by the builders before save.
	answerevent.ChallengeIDValidator = answereventDescChallengeID.Validators[0].(func(string) error)
	// answereventDescChallengeType is the schema descriptor for challenge_type field.
	answereventDescChallengeType := answereventFields[3].Descriptor()
	// answerevent.ChallengeTypeValidator is a validator for the "challenge_type" field. It is called by the builders before save.
	answerevent.ChallengeTypeValidator = answereventDescChallengeType.Validators[0].(func(string) error)
	// answereventDescOptionID is the schema descriptor for option_id field.
	answereventDescOptionID := answereventFields[4].Descriptor()
	// answerevent.OptionIDValidator is a validator for the "option_id" field. It is called by the builders before save.
	answerevent.OptionIDValidator = answereventDescOptionID.Validators[0].(func(string) error)
	// answereventDescPractice is the schema descriptor for practice field.
	answereventDescPractice := answereventFields[8].Descriptor()
	// answerevent.DefaultPractice holds the default value on creation for the practice field.
	answerevent.DefaultPractice = answereventDescPractice.Default.(bool)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescLessonID is the schema descriptor for lesson_id field.
	sessioneventDescLessonID := sessioneventFields[1].Descriptor()
	// sessionevent.LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	sessionevent.LessonIDValidator = sessioneventDescLessonID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[2].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescPoints is the schema descriptor for points field.
	sessioneventDescPoints := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultPoints holds the default value on creation for the points field.
	sessionevent.DefaultPoints = sessioneventDescPoints.Default.(int)
	// sessioneventDescHeartsRemaining is the schema descriptor for hearts_remaining field.
	sessioneventDescHeartsRemaining := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultHeartsRemaining holds the default value on creation for the hearts_remaining field.
	sessionevent.DefaultHeartsRemaining = sessioneventDescHeartsRemaining.Default.(int)
	// sessioneventDescPractice is the schema descriptor for practice field.
	sessioneventDescPractice := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultPractice holds the default value on creation for the practice field.
	sessionevent.DefaultPractice = sessioneventDescPractice.Default.(bool)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[6].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
}
