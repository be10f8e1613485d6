// Code generated by ent, DO NOT EDIT.

package lessonevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the lessonevent type in the database.
	Label = "lesson_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldTopic holds the string denoting the topic field in the database.
	FieldTopic = "topic"
	// FieldSubTopic holds the string denoting the sub_topic field in the database.
	FieldSubTopic = "sub_topic"
	// FieldLearningStyle holds the string denoting the learning_style field in the database.
	FieldLearningStyle = "learning_style"
	// FieldKnowledgeLevel holds the string denoting the knowledge_level field in the database.
	FieldKnowledgeLevel = "knowledge_level"
	// FieldRetry holds the string denoting the retry field in the database.
	FieldRetry = "retry"
	// FieldLessonTitle holds the string denoting the lesson_title field in the database.
	FieldLessonTitle = "lesson_title"
	// FieldSectionCount holds the string denoting the section_count field in the database.
	FieldSectionCount = "section_count"
	// Table holds the table name of the lessonevent in the database.
	Table = "lesson_events"
)

// Columns holds all SQL columns for lessonevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldTopic,
	FieldSubTopic,
	FieldLearningStyle,
	FieldKnowledgeLevel,
	FieldRetry,
	FieldLessonTitle,
	FieldSectionCount,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	TopicValidator func(string) error
	// DefaultSubTopic holds the default value on creation for the "sub_topic" field.
	DefaultSubTopic string
	// LearningStyleValidator is a validator for the "learning_style" field. It is called by the builders before save.
	LearningStyleValidator func(string) error
	// KnowledgeLevelValidator is a validator for the "knowledge_level" field. It is called by the builders before save.
	KnowledgeLevelValidator func(string) error
	// DefaultLessonTitle holds the default value on creation for the "lesson_title" field.
	DefaultLessonTitle string
	// DefaultSectionCount holds the default value on creation for the "section_count" field.
	DefaultSectionCount int
)

// OrderOption defines the ordering options for the LessonEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByTopic orders the results by the topic field.
func ByTopic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopic, opts...).ToFunc()
}

// BySubTopic orders the results by the sub_topic field.
func BySubTopic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubTopic, opts...).ToFunc()
}

// ByLearningStyle orders the results by the learning_style field.
func ByLearningStyle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLearningStyle, opts...).ToFunc()
}

// ByKnowledgeLevel orders the results by the knowledge_level field.
func ByKnowledgeLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKnowledgeLevel, opts...).ToFunc()
}

// ByRetry orders the results by the retry field.
func ByRetry(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRetry, opts...).ToFunc()
}

// ByLessonTitle orders the results by the lesson_title field.
func ByLessonTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLessonTitle, opts...).ToFunc()
}

// BySectionCount orders the results by the section_count field.
func BySectionCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSectionCount, opts...).ToFunc()
}
