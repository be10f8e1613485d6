// Code generated by ent, DO NOT EDIT.

package lessonevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/priyam/learnsphere/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldEQ(FieldSessionID, v))
}

// Topic applies equality check predicate on the "topic" field. It's identical to TopicEQ.
func Topic(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldEQ(FieldTopic, v))
}

// SubTopic applies equality check predicate on the "sub_topic" field. It's identical to SubTopicEQ.
func SubTopic(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldEQ(FieldSubTopic, v))
}

// LearningStyle applies equality check predicate on the "learning_style" field. It's identical to LearningStyleEQ.
func LearningStyle(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldEQ(FieldLearningStyle, v))
}

// KnowledgeLevel applies equality check predicate on the "knowledge_level" field. It's identical to KnowledgeLevelEQ.
func KnowledgeLevel(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldEQ(FieldKnowledgeLevel, v))
}

// Retry applies equality check predicate on the "retry" field. It's identical to RetryEQ.
func Retry(v bool) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldEQ(FieldRetry, v))
}

// LessonTitle applies equality check predicate on the "lesson_title" field. It's identical to LessonTitleEQ.
func LessonTitle(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldEQ(FieldLessonTitle, v))
}

// SectionCount applies equality check predicate on the "section_count" field. It's identical to SectionCountEQ.
func SectionCount(v int) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldEQ(FieldSectionCount, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// TopicEQ applies the EQ predicate on the "topic" field.
func TopicEQ(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldEQ(FieldTopic, v))
}

// TopicNEQ applies the NEQ predicate on the "topic" field.
func TopicNEQ(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldNEQ(FieldTopic, v))
}

// TopicIn applies the In predicate on the "topic" field.
func TopicIn(vs ...string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldIn(FieldTopic, vs...))
}

// TopicNotIn applies the NotIn predicate on the "topic" field.
func TopicNotIn(vs ...string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldNotIn(FieldTopic, vs...))
}

// TopicGT applies the GT predicate on the "topic" field.
func TopicGT(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldGT(FieldTopic, v))
}

// TopicGTE applies the GTE predicate on the "topic" field.
func TopicGTE(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldGTE(FieldTopic, v))
}

// TopicLT applies the LT predicate on the "topic" field.
func TopicLT(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldLT(FieldTopic, v))
}

// TopicLTE applies the LTE predicate on the "topic" field.
func TopicLTE(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldLTE(FieldTopic, v))
}

// TopicContains applies the Contains predicate on the "topic" field.
func TopicContains(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldContains(FieldTopic, v))
}

// TopicHasPrefix applies the HasPrefix predicate on the "topic" field.
func TopicHasPrefix(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldHasPrefix(FieldTopic, v))
}

// TopicHasSuffix applies the HasSuffix predicate on the "topic" field.
func TopicHasSuffix(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldHasSuffix(FieldTopic, v))
}

// TopicEqualFold applies the EqualFold predicate on the "topic" field.
func TopicEqualFold(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldEqualFold(FieldTopic, v))
}

// TopicContainsFold applies the ContainsFold predicate on the "topic" field.
func TopicContainsFold(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldContainsFold(FieldTopic, v))
}

// SubTopicEQ applies the EQ predicate on the "sub_topic" field.
func SubTopicEQ(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldEQ(FieldSubTopic, v))
}

// SubTopicNEQ applies the NEQ predicate on the "sub_topic" field.
func SubTopicNEQ(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldNEQ(FieldSubTopic, v))
}

// SubTopicIn applies the In predicate on the "sub_topic" field.
func SubTopicIn(vs ...string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldIn(FieldSubTopic, vs...))
}

// SubTopicNotIn applies the NotIn predicate on the "sub_topic" field.
func SubTopicNotIn(vs ...string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldNotIn(FieldSubTopic, vs...))
}

// SubTopicGT applies the GT predicate on the "sub_topic" field.
func SubTopicGT(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldGT(FieldSubTopic, v))
}

// SubTopicGTE applies the GTE predicate on the "sub_topic" field.
func SubTopicGTE(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldGTE(FieldSubTopic, v))
}

// SubTopicLT applies the LT predicate on the "sub_topic" field.
func SubTopicLT(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldLT(FieldSubTopic, v))
}

// SubTopicLTE applies the LTE predicate on the "sub_topic" field.
func SubTopicLTE(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldLTE(FieldSubTopic, v))
}

// SubTopicContains applies the Contains predicate on the "sub_topic" field.
func SubTopicContains(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldContains(FieldSubTopic, v))
}

// SubTopicHasPrefix applies the HasPrefix predicate on the "sub_topic" field.
func SubTopicHasPrefix(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldHasPrefix(FieldSubTopic, v))
}

// SubTopicHasSuffix applies the HasSuffix predicate on the "sub_topic" field.
func SubTopicHasSuffix(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldHasSuffix(FieldSubTopic, v))
}

// SubTopicEqualFold applies the EqualFold predicate on the "sub_topic" field.
func SubTopicEqualFold(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldEqualFold(FieldSubTopic, v))
}

// SubTopicContainsFold applies the ContainsFold predicate on the "sub_topic" field.
func SubTopicContainsFold(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldContainsFold(FieldSubTopic, v))
}

// LearningStyleEQ applies the EQ predicate on the "learning_style" field.
func LearningStyleEQ(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldEQ(FieldLearningStyle, v))
}

// LearningStyleNEQ applies the NEQ predicate on the "learning_style" field.
func LearningStyleNEQ(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldNEQ(FieldLearningStyle, v))
}

// LearningStyleIn applies the In predicate on the "learning_style" field.
func LearningStyleIn(vs ...string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldIn(FieldLearningStyle, vs...))
}

// LearningStyleNotIn applies the NotIn predicate on the "learning_style" field.
func LearningStyleNotIn(vs ...string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldNotIn(FieldLearningStyle, vs...))
}

// LearningStyleGT applies the GT predicate on the "learning_style" field.
func LearningStyleGT(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldGT(FieldLearningStyle, v))
}

// LearningStyleGTE applies the GTE predicate on the "learning_style" field.
func LearningStyleGTE(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldGTE(FieldLearningStyle, v))
}

// LearningStyleLT applies the LT predicate on the "learning_style" field.
func LearningStyleLT(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldLT(FieldLearningStyle, v))
}

// LearningStyleLTE applies the LTE predicate on the "learning_style" field.
func LearningStyleLTE(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldLTE(FieldLearningStyle, v))
}

// LearningStyleContains applies the Contains predicate on the "learning_style" field.
func LearningStyleContains(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldContains(FieldLearningStyle, v))
}

// LearningStyleHasPrefix applies the HasPrefix predicate on the "learning_style" field.
func LearningStyleHasPrefix(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldHasPrefix(FieldLearningStyle, v))
}

// LearningStyleHasSuffix applies the HasSuffix predicate on the "learning_style" field.
func LearningStyleHasSuffix(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldHasSuffix(FieldLearningStyle, v))
}

// LearningStyleEqualFold applies the EqualFold predicate on the "learning_style" field.
func LearningStyleEqualFold(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldEqualFold(FieldLearningStyle, v))
}

// LearningStyleContainsFold applies the ContainsFold predicate on the "learning_style" field.
func LearningStyleContainsFold(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldContainsFold(FieldLearningStyle, v))
}

// KnowledgeLevelEQ applies the EQ predicate on the "knowledge_level" field.
func KnowledgeLevelEQ(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldEQ(FieldKnowledgeLevel, v))
}

// KnowledgeLevelNEQ applies the NEQ predicate on the "knowledge_level" field.
func KnowledgeLevelNEQ(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldNEQ(FieldKnowledgeLevel, v))
}

// KnowledgeLevelIn applies the In predicate on the "knowledge_level" field.
func KnowledgeLevelIn(vs ...string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldIn(FieldKnowledgeLevel, vs...))
}

// KnowledgeLevelNotIn applies the NotIn predicate on the "knowledge_level" field.
func KnowledgeLevelNotIn(vs ...string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldNotIn(FieldKnowledgeLevel, vs...))
}

// KnowledgeLevelGT applies the GT predicate on the "knowledge_level" field.
func KnowledgeLevelGT(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldGT(FieldKnowledgeLevel, v))
}

// KnowledgeLevelGTE applies the GTE predicate on the "knowledge_level" field.
func KnowledgeLevelGTE(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldGTE(FieldKnowledgeLevel, v))
}

// KnowledgeLevelLT applies the LT predicate on the "knowledge_level" field.
func KnowledgeLevelLT(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldLT(FieldKnowledgeLevel, v))
}

// KnowledgeLevelLTE applies the LTE predicate on the "knowledge_level" field.
func KnowledgeLevelLTE(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldLTE(FieldKnowledgeLevel, v))
}

// KnowledgeLevelContains applies the Contains predicate on the "knowledge_level" field.
func KnowledgeLevelContains(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldContains(FieldKnowledgeLevel, v))
}

// KnowledgeLevelHasPrefix applies the HasPrefix predicate on the "knowledge_level" field.
func KnowledgeLevelHasPrefix(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldHasPrefix(FieldKnowledgeLevel, v))
}

// KnowledgeLevelHasSuffix applies the HasSuffix predicate on the "knowledge_level" field.
func KnowledgeLevelHasSuffix(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldHasSuffix(FieldKnowledgeLevel, v))
}

// KnowledgeLevelEqualFold applies the EqualFold predicate on the "knowledge_level" field.
func KnowledgeLevelEqualFold(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldEqualFold(FieldKnowledgeLevel, v))
}

// KnowledgeLevelContainsFold applies the ContainsFold predicate on the "knowledge_level" field.
func KnowledgeLevelContainsFold(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldContainsFold(FieldKnowledgeLevel, v))
}

// RetryEQ applies the EQ predicate on the "retry" field.
func RetryEQ(v bool) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldEQ(FieldRetry, v))
}

// RetryNEQ applies the NEQ predicate on the "retry" field.
func RetryNEQ(v bool) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldNEQ(FieldRetry, v))
}

// LessonTitleEQ applies the EQ predicate on the "lesson_title" field.
func LessonTitleEQ(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldEQ(FieldLessonTitle, v))
}

// LessonTitleNEQ applies the NEQ predicate on the "lesson_title" field.
func LessonTitleNEQ(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldNEQ(FieldLessonTitle, v))
}

// LessonTitleIn applies the In predicate on the "lesson_title" field.
func LessonTitleIn(vs ...string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldIn(FieldLessonTitle, vs...))
}

// LessonTitleNotIn applies the NotIn predicate on the "lesson_title" field.
func LessonTitleNotIn(vs ...string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldNotIn(FieldLessonTitle, vs...))
}

// LessonTitleGT applies the GT predicate on the "lesson_title" field.
func LessonTitleGT(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldGT(FieldLessonTitle, v))
}

// LessonTitleGTE applies the GTE predicate on the "lesson_title" field.
func LessonTitleGTE(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldGTE(FieldLessonTitle, v))
}

// LessonTitleLT applies the LT predicate on the "lesson_title" field.
func LessonTitleLT(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldLT(FieldLessonTitle, v))
}

// LessonTitleLTE applies the LTE predicate on the "lesson_title" field.
func LessonTitleLTE(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldLTE(FieldLessonTitle, v))
}

// LessonTitleContains applies the Contains predicate on the "lesson_title" field.
func LessonTitleContains(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldContains(FieldLessonTitle, v))
}

// LessonTitleHasPrefix applies the HasPrefix predicate on the "lesson_title" field.
func LessonTitleHasPrefix(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldHasPrefix(FieldLessonTitle, v))
}

// LessonTitleHasSuffix applies the HasSuffix predicate on the "lesson_title" field.
func LessonTitleHasSuffix(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldHasSuffix(FieldLessonTitle, v))
}

// LessonTitleEqualFold applies the EqualFold predicate on the "lesson_title" field.
func LessonTitleEqualFold(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldEqualFold(FieldLessonTitle, v))
}

// LessonTitleContainsFold applies the ContainsFold predicate on the "lesson_title" field.
func LessonTitleContainsFold(v string) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldContainsFold(FieldLessonTitle, v))
}

// SectionCountEQ applies the EQ predicate on the "section_count" field.
func SectionCountEQ(v int) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldEQ(FieldSectionCount, v))
}

// SectionCountNEQ applies the NEQ predicate on the "section_count" field.
func SectionCountNEQ(v int) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldNEQ(FieldSectionCount, v))
}

// SectionCountIn applies the In predicate on the "section_count" field.
func SectionCountIn(vs ...int) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldIn(FieldSectionCount, vs...))
}

// SectionCountNotIn applies the NotIn predicate on the "section_count" field.
func SectionCountNotIn(vs ...int) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldNotIn(FieldSectionCount, vs...))
}

// SectionCountGT applies the GT predicate on the "section_count" field.
func SectionCountGT(v int) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldGT(FieldSectionCount, v))
}

// SectionCountGTE applies the GTE predicate on the "section_count" field.
func SectionCountGTE(v int) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldGTE(FieldSectionCount, v))
}

// SectionCountLT applies the LT predicate on the "section_count" field.
func SectionCountLT(v int) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldLT(FieldSectionCount, v))
}

// SectionCountLTE applies the LTE predicate on the "section_count" field.
func SectionCountLTE(v int) predicate.LessonEvent {
	return predicate.LessonEvent(sql.FieldLTE(FieldSectionCount, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LessonEvent) predicate.LessonEvent {
	return predicate.LessonEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LessonEvent) predicate.LessonEvent {
	return predicate.LessonEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LessonEvent) predicate.LessonEvent {
	return predicate.LessonEvent(sql.NotPredicates(p))
}
