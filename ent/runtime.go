// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/priyam/learnsphere/ent/lessonevent"
	"github.com/priyam/learnsphere/ent/llmrequestevent"
	"github.com/priyam/learnsphere/ent/quizevent"
	"github.com/priyam/learnsphere/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
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
	lessoneventMixin := schema.LessonEvent{}.Mixin()
	lessoneventMixinFields0 := lessoneventMixin[0].Fields()
	_ = lessoneventMixinFields0
	lessoneventFields := schema.LessonEvent{}.Fields()
	_ = lessoneventFields
	// lessoneventDescTimestamp is the schema descriptor for timestamp field.
	lessoneventDescTimestamp := lessoneventMixinFields0[1].Descriptor()
	// lessonevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	lessonevent.DefaultTimestamp = lessoneventDescTimestamp.Default.(func() time.Time)
	// lessoneventDescSessionID is the schema descriptor for session_id field.
	lessoneventDescSessionID := lessoneventFields[0].Descriptor()
	// lessonevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	lessonevent.SessionIDValidator = lessoneventDescSessionID.Validators[0].(func(string) error)
	// lessoneventDescTopic is the schema descriptor for topic field.
	lessoneventDescTopic := lessoneventFields[1].Descriptor()
	// lessonevent.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	lessonevent.TopicValidator = lessoneventDescTopic.Validators[0].(func(string) error)
	// lessoneventDescSubTopic is the schema descriptor for sub_topic field.
	lessoneventDescSubTopic := lessoneventFields[2].Descriptor()
	// lessonevent.DefaultSubTopic holds the default value on creation for the sub_topic field.
	lessonevent.DefaultSubTopic = lessoneventDescSubTopic.Default.(string)
	// lessoneventDescLearningStyle is the schema descriptor for learning_style field.
	lessoneventDescLearningStyle := lessoneventFields[3].Descriptor()
	// lessonevent.LearningStyleValidator is a validator for the "learning_style" field. It is called by the builders before save.
	lessonevent.LearningStyleValidator = lessoneventDescLearningStyle.Validators[0].(func(string) error)
	// lessoneventDescKnowledgeLevel is the schema descriptor for knowledge_level field.
	lessoneventDescKnowledgeLevel := lessoneventFields[4].Descriptor()
	// lessonevent.KnowledgeLevelValidator is a validator for the "knowledge_level" field. It is called by the builders before save.
	lessonevent.KnowledgeLevelValidator = lessoneventDescKnowledgeLevel.Validators[0].(func(string) error)
	// lessoneventDescLessonTitle is the schema descriptor for lesson_title field.
	lessoneventDescLessonTitle := lessoneventFields[6].Descriptor()
	// lessonevent.DefaultLessonTitle holds the default value on creation for the lesson_title field.
	lessonevent.DefaultLessonTitle = lessoneventDescLessonTitle.Default.(string)
	// lessoneventDescSectionCount is the schema descriptor for section_count field.
	lessoneventDescSectionCount := lessoneventFields[7].Descriptor()
	// lessonevent.DefaultSectionCount holds the default value on creation for the section_count field.
	lessonevent.DefaultSectionCount = lessoneventDescSectionCount.Default.(int)
	quizeventMixin := schema.QuizEvent{}.Mixin()
	quizeventMixinFields0 := quizeventMixin[0].Fields()
	_ = quizeventMixinFields0
	quizeventFields := schema.QuizEvent{}.Fields()
	_ = quizeventFields
	// quizeventDescTimestamp is the schema descriptor for timestamp field.
	quizeventDescTimestamp := quizeventMixinFields0[1].Descriptor()
	// quizevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	quizevent.DefaultTimestamp = quizeventDescTimestamp.Default.(func() time.Time)
	// quizeventDescSessionID is the schema descriptor for session_id field.
	quizeventDescSessionID := quizeventFields[0].Descriptor()
	// quizevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	quizevent.SessionIDValidator = quizeventDescSessionID.Validators[0].(func(string) error)
	// quizeventDescTopic is the schema descriptor for topic field.
	quizeventDescTopic := quizeventFields[1].Descriptor()
	// quizevent.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	quizevent.TopicValidator = quizeventDescTopic.Validators[0].(func(string) error)
}
