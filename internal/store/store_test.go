package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testRepo(t *testing.T) EventRepo {
	t.Helper()
	repo, err := openTestStore(t).EventRepo()
	if err != nil {
		t.Fatalf("event repo: %v", err)
	}
	return repo
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is not asserted here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		if err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got); err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAppendAndQueryLLMEvents(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	for _, purpose := range []string{"lesson", "elaboration", "lesson"} {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "gemini",
			Model:        "gemini-2.5-flash",
			Purpose:      purpose,
			InputTokens:  100,
			OutputTokens: 50,
			LatencyMs:    1200,
			Success:      true,
			RequestBody:  "[user]\nGenerate a lesson",
			ResponseBody: `{"title":"T"}`,
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("events = %d, want 3", len(events))
	}

	// Newest first.
	if events[0].Sequence <= events[1].Sequence {
		t.Error("events should be ordered newest first")
	}

	filtered, err := repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "elaboration"})
	if err != nil {
		t.Fatalf("query filtered: %v", err)
	}
	if len(filtered) != 1 {
		t.Fatalf("filtered events = %d, want 1", len(filtered))
	}

	got, err := repo.GetLLMEvent(ctx, filtered[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.RequestBody == "" {
		t.Fatal("expected stored request body")
	}

	missing, err := repo.GetLLMEvent(ctx, 9999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Fatal("expected nil for missing event")
	}
}

func TestLLMUsageAggregation(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "lesson",
			InputTokens: 100, OutputTokens: 40, LatencyMs: 1000, Success: true,
		}); err != nil {
			t.Fatal(err)
		}
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(byPurpose) != 1 {
		t.Fatalf("purposes = %d, want 1", len(byPurpose))
	}
	if byPurpose[0].Calls != 2 || byPurpose[0].InputTokens != 200 {
		t.Errorf("aggregate = %+v", byPurpose[0])
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(byModel) != 1 || byModel[0].Model != "gemini-2.5-flash" {
		t.Errorf("model aggregate = %+v", byModel)
	}
}

func TestLearningStats(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	lessons := []LessonEventData{
		{SessionID: "s1", Topic: "Photosynthesis", LearningStyle: "visual", KnowledgeLevel: "beginner", LessonTitle: "A", SectionCount: 3},
		{SessionID: "s1", Topic: "Photosynthesis", LearningStyle: "visual", KnowledgeLevel: "beginner", LessonTitle: "B", SectionCount: 2, Retry: true},
	}
	for _, l := range lessons {
		if err := repo.AppendLesson(ctx, l); err != nil {
			t.Fatal(err)
		}
	}

	quizzes := []QuizEventData{
		{SessionID: "s1", Topic: "Photosynthesis", Score: 3, Total: 10, Passed: false},
		{SessionID: "s1", Topic: "Photosynthesis", Score: 7, Total: 10, Passed: true},
	}
	for _, q := range quizzes {
		if err := repo.AppendQuiz(ctx, q); err != nil {
			t.Fatal(err)
		}
	}

	stats, err := repo.Stats(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if stats.LessonsGenerated != 2 {
		t.Errorf("lessons = %d, want 2", stats.LessonsGenerated)
	}
	if stats.RetryLessons != 1 {
		t.Errorf("retries = %d, want 1", stats.RetryLessons)
	}
	if stats.QuizzesTaken != 2 || stats.QuizzesPassed != 1 {
		t.Errorf("quizzes = %d/%d", stats.QuizzesPassed, stats.QuizzesTaken)
	}
	if stats.AvgScore != 5.0 {
		t.Errorf("avg score = %v, want 5.0", stats.AvgScore)
	}
}

func TestAppendLessonRequiresStyleAndLevel(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	err := repo.AppendLesson(ctx, LessonEventData{SessionID: "s", Topic: "t", LessonTitle: "T", SectionCount: 1})
	if err == nil {
		t.Fatal("expected validation error for empty learning style and knowledge level")
	}
}

func TestSequenceSpansEventTypes(t *testing.T) {
	s := openTestStore(t)
	repo, err := s.EventRepo()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()

	if err := repo.AppendLLMRequest(ctx, LLMRequestEventData{Provider: "gemini", Model: "m", Purpose: "lesson", Success: true}); err != nil {
		t.Fatal(err)
	}
	if err := repo.AppendLesson(ctx, LessonEventData{SessionID: "s", Topic: "t", LearningStyle: "reading", KnowledgeLevel: "beginner", LessonTitle: "T", SectionCount: 1}); err != nil {
		t.Fatal(err)
	}
	if err := repo.AppendLLMRequest(ctx, LLMRequestEventData{Provider: "gemini", Model: "m", Purpose: "lesson", Success: true}); err != nil {
		t.Fatal(err)
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 2 {
		t.Fatalf("events = %d, want 2", len(events))
	}
	// The lesson event claimed a sequence number between the two LLM events.
	if events[0].Sequence-events[1].Sequence < 2 {
		t.Errorf("sequence gap = %d, want >= 2", events[0].Sequence-events[1].Sequence)
	}
}
