// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/idelarosa/subjunto/ent/attemptevent"
	"github.com/idelarosa/subjunto/ent/llmrequestevent"
	"github.com/idelarosa/subjunto/ent/reviewschedule"
	"github.com/idelarosa/subjunto/ent/schema"
	"github.com/idelarosa/subjunto/ent/sessionevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	attempteventMixin := schema.AttemptEvent{}.Mixin()
	attempteventMixinFields0 := attempteventMixin[0].Fields()
	_ = attempteventMixinFields0
	attempteventFields := schema.AttemptEvent{}.Fields()
	_ = attempteventFields
	// attempteventDescTimestamp is the schema descriptor for timestamp field.
	attempteventDescTimestamp := attempteventMixinFields0[1].Descriptor()
	// attemptevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	attemptevent.DefaultTimestamp = attempteventDescTimestamp.Default.(func() time.Time)
	// attempteventDescVerb is the schema descriptor for verb field.
	attempteventDescVerb := attempteventFields[0].Descriptor()
	// attemptevent.VerbValidator is a validator for the "verb" field. It is called by the builders before save.
	attemptevent.VerbValidator = attempteventDescVerb.Validators[0].(func(string) error)
	// attempteventDescTense is the schema descriptor for tense field.
	attempteventDescTense := attempteventFields[1].Descriptor()
	// attemptevent.TenseValidator is a validator for the "tense" field. It is called by the builders before save.
	attemptevent.TenseValidator = attempteventDescTense.Validators[0].(func(string) error)
	// attempteventDescPerson is the schema descriptor for person field.
	attempteventDescPerson := attempteventFields[2].Descriptor()
	// attemptevent.PersonValidator is a validator for the "person" field. It is called by the builders before save.
	attemptevent.PersonValidator = attempteventDescPerson.Validators[0].(func(string) error)
	// attempteventDescTriggerCategory is the schema descriptor for trigger_category field.
	attempteventDescTriggerCategory := attempteventFields[3].Descriptor()
	// attemptevent.TriggerCategoryValidator is a validator for the "trigger_category" field. It is called by the builders before save.
	attemptevent.TriggerCategoryValidator = attempteventDescTriggerCategory.Validators[0].(func(string) error)
	// attempteventDescExpected is the schema descriptor for expected field.
	attempteventDescExpected := attempteventFields[5].Descriptor()
	// attemptevent.ExpectedValidator is a validator for the "expected" field. It is called by the builders before save.
	attemptevent.ExpectedValidator = attempteventDescExpected.Validators[0].(func(string) error)
	// attempteventDescAnswer is the schema descriptor for answer field.
	attempteventDescAnswer := attempteventFields[6].Descriptor()
	// attemptevent.DefaultAnswer holds the default value on creation for the answer field.
	attemptevent.DefaultAnswer = attempteventDescAnswer.Default.(string)
	// attempteventDescClassification is the schema descriptor for classification field.
	attempteventDescClassification := attempteventFields[7].Descriptor()
	// attemptevent.ClassificationValidator is a validator for the "classification" field. It is called by the builders before save.
	attemptevent.ClassificationValidator = attempteventDescClassification.Validators[0].(func(string) error)
	// attempteventDescDistance is the schema descriptor for distance field.
	attempteventDescDistance := attempteventFields[10].Descriptor()
	// attemptevent.DefaultDistance holds the default value on creation for the distance field.
	attemptevent.DefaultDistance = attempteventDescDistance.Default.(int)
	// attempteventDescHintUsed is the schema descriptor for hint_used field.
	attempteventDescHintUsed := attempteventFields[11].Descriptor()
	// attemptevent.DefaultHintUsed holds the default value on creation for the hint_used field.
	attemptevent.DefaultHintUsed = attempteventDescHintUsed.Default.(bool)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	reviewscheduleFields := schema.ReviewSchedule{}.Fields()
	_ = reviewscheduleFields
	// reviewscheduleDescVerb is the schema descriptor for verb field.
	reviewscheduleDescVerb := reviewscheduleFields[0].Descriptor()
	// reviewschedule.VerbValidator is a validator for the "verb" field. It is called by the builders before save.
	reviewschedule.VerbValidator = reviewscheduleDescVerb.Validators[0].(func(string) error)
	// reviewscheduleDescEasinessFactor is the schema descriptor for easiness_factor field.
	reviewscheduleDescEasinessFactor := reviewscheduleFields[1].Descriptor()
	// reviewschedule.DefaultEasinessFactor holds the default value on creation for the easiness_factor field.
	reviewschedule.DefaultEasinessFactor = reviewscheduleDescEasinessFactor.Default.(float64)
	// reviewscheduleDescIntervalDays is the schema descriptor for interval_days field.
	reviewscheduleDescIntervalDays := reviewscheduleFields[2].Descriptor()
	// reviewschedule.DefaultIntervalDays holds the default value on creation for the interval_days field.
	reviewschedule.DefaultIntervalDays = reviewscheduleDescIntervalDays.Default.(int)
	// reviewscheduleDescRepetitions is the schema descriptor for repetitions field.
	reviewscheduleDescRepetitions := reviewscheduleFields[3].Descriptor()
	// reviewschedule.DefaultRepetitions holds the default value on creation for the repetitions field.
	reviewschedule.DefaultRepetitions = reviewscheduleDescRepetitions.Default.(int)
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
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[1].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescExercisesServed is the schema descriptor for exercises_served field.
	sessioneventDescExercisesServed := sessioneventFields[2].Descriptor()
	// sessionevent.DefaultExercisesServed holds the default value on creation for the exercises_served field.
	sessionevent.DefaultExercisesServed = sessioneventDescExercisesServed.Default.(int)
	// sessioneventDescCorrectAnswers is the schema descriptor for correct_answers field.
	sessioneventDescCorrectAnswers := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultCorrectAnswers holds the default value on creation for the correct_answers field.
	sessionevent.DefaultCorrectAnswers = sessioneventDescCorrectAnswers.Default.(int)
	// sessioneventDescFinalTier is the schema descriptor for final_tier field.
	sessioneventDescFinalTier := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultFinalTier holds the default value on creation for the final_tier field.
	sessionevent.DefaultFinalTier = sessioneventDescFinalTier.Default.(int)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
}
