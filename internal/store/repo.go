package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit   int    // max results (0 = unlimited)
	Purpose string // filter LLM events by purpose label
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEvent is a stored LLM request event.
type LLMRequestEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsageStat aggregates usage for one purpose or model.
type LLMUsageStat struct {
	Purpose      string
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LessonEventData captures a generated lesson for telemetry.
type LessonEventData struct {
	SessionID      string
	Topic          string
	SubTopic       string
	LearningStyle  string
	KnowledgeLevel string
	Retry          bool
	LessonTitle    string
	SectionCount   int
}

// QuizEventData captures a quiz submission for telemetry.
type QuizEventData struct {
	SessionID string
	Topic     string
	Score     int
	Total     int
	Passed    bool
}

// LearningStats aggregates telemetry for the stats subcommand.
type LearningStats struct {
	LessonsGenerated int
	RetryLessons     int
	QuizzesTaken     int
	QuizzesPassed    int
	AvgScore         float64
}

// EventRepo provides append and query access to telemetry events. The
// session state machine never reads from it; it exists for the CLI
// inspection commands only.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// AppendLesson records a generated lesson.
	AppendLesson(ctx context.Context, data LessonEventData) error

	// AppendQuiz records a quiz submission.
	AppendQuiz(ctx context.Context, data QuizEventData) error

	// QueryLLMEvents returns recent LLM events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEvent, error)

	// GetLLMEvent returns one LLM event by ID, or nil if not found.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEvent, error)

	// LLMUsageByPurpose aggregates token usage grouped by purpose.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStat, error)

	// LLMUsageByModel aggregates token usage grouped by model.
	LLMUsageByModel(ctx context.Context) ([]LLMUsageStat, error)

	// Stats aggregates lesson and quiz telemetry.
	Stats(ctx context.Context) (*LearningStats, error)
}
