package lesson

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/priyam/learnsphere/internal/llm"
)

func validLessonJSON() json.RawMessage {
	var quiz []string
	for i := 0; i < QuizLength; i++ {
		quiz = append(quiz, fmt.Sprintf(`{
			"question": "Question %d?",
			"options": ["A", "B", "C", "D"],
			"correctAnswerIndex": %d
		}`, i+1, i%OptionsPerQuestion))
	}
	return json.RawMessage(fmt.Sprintf(`{
		"title": "Photosynthesis Basics",
		"introduction": "Plants make their own food from sunlight.",
		"sections": [
			{"title": "Light Reactions", "content": "Chlorophyll absorbs light.\nWater molecules are split."},
			{"title": "The Calvin Cycle", "content": "Carbon dioxide becomes sugar."}
		],
		"quiz": [%s]
	}`, strings.Join(quiz, ",")))
}

func testRequest() Request {
	return Request{
		Topic:          "Photosynthesis",
		LearningStyle:  StyleVisual,
		KnowledgeLevel: LevelBeginner,
	}
}

func TestGenerateLesson(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validLessonJSON()})
	svc := NewService(mock, DefaultConfig())

	l, err := svc.GenerateLesson(t.Context(), testRequest(), false)
	if err != nil {
		t.Fatal(err)
	}

	if l.Title != "Photosynthesis Basics" {
		t.Errorf("title = %q", l.Title)
	}
	if len(l.Sections) != 2 {
		t.Fatalf("sections = %d, want 2", len(l.Sections))
	}
	if len(l.Quiz) != QuizLength {
		t.Fatalf("quiz length = %d, want %d", len(l.Quiz), QuizLength)
	}
	if got := l.Sections[0].Paragraphs(); len(got) != 2 {
		t.Errorf("paragraphs = %d, want 2", len(got))
	}

	call := mock.Calls[0]
	if call.Schema != LessonSchema {
		t.Error("expected structured output schema on the request")
	}
	if call.Temperature != DefaultConfig().Temperature {
		t.Errorf("temperature = %v, want %v", call.Temperature, DefaultConfig().Temperature)
	}
	if !strings.Contains(call.Messages[0].Content, `"Photosynthesis"`) {
		t.Error("user message should carry the topic")
	}
}

func TestGenerateLessonRetryPrompt(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validLessonJSON()})
	svc := NewService(mock, DefaultConfig())

	if _, err := svc.GenerateLesson(t.Context(), testRequest(), true); err != nil {
		t.Fatal(err)
	}

	call := mock.Calls[0]
	if !strings.Contains(call.Messages[0].Content, "SIMPLER") {
		t.Error("retry prompt should ask for a simpler lesson")
	}
	if call.Temperature != DefaultConfig().RetryTemperature {
		t.Errorf("retry temperature = %v, want %v", call.Temperature, DefaultConfig().RetryTemperature)
	}
}

func TestGenerateLessonRejectsShortQuiz(t *testing.T) {
	short := json.RawMessage(`{
		"title": "T",
		"introduction": "I",
		"sections": [{"title": "S", "content": "C"}],
		"quiz": [{"question": "Q?", "options": ["A","B","C","D"], "correctAnswerIndex": 0}]
	}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: short})
	svc := NewService(mock, DefaultConfig())

	if _, err := svc.GenerateLesson(t.Context(), testRequest(), false); err == nil {
		t.Fatal("expected structural validation error")
	}
}

func TestGenerateLessonProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: errors.New("boom")})
	svc := NewService(mock, DefaultConfig())

	if _, err := svc.GenerateLesson(t.Context(), testRequest(), false); err == nil {
		t.Fatal("expected error")
	}
}

func TestGenerateElaboration(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage("  Think of chlorophyll as a solar panel.  "),
	})
	svc := NewService(mock, DefaultConfig())

	text, err := svc.GenerateElaboration(t.Context(), "Photosynthesis", "Light Reactions", "Chlorophyll absorbs light.", LevelBeginner)
	if err != nil {
		t.Fatal(err)
	}
	if text != "Think of chlorophyll as a solar panel." {
		t.Errorf("text = %q", text)
	}

	call := mock.Calls[0]
	if call.Schema != nil {
		t.Error("elaboration must not request structured output")
	}
	if call.Temperature != DefaultConfig().ElaborationTemperature {
		t.Errorf("temperature = %v, want %v", call.Temperature, DefaultConfig().ElaborationTemperature)
	}
}

func TestGenerateElaborationTruncatesContent(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage("An analogy.")})
	svc := NewService(mock, DefaultConfig())

	long := strings.Repeat("x", 2000)
	if _, err := svc.GenerateElaboration(t.Context(), "T", "S", long, LevelBeginner); err != nil {
		t.Fatal(err)
	}

	msg := mock.Calls[0].Messages[0].Content
	if strings.Contains(msg, strings.Repeat("x", elaborationContentLimit+1)) {
		t.Error("section content should be truncated before sending")
	}
	if !strings.Contains(msg, strings.Repeat("x", elaborationContentLimit)) {
		t.Error("truncated prefix should still be present")
	}
}

func TestGenerateElaborationTruncatesOnRuneBoundary(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage("An analogy.")})
	svc := NewService(mock, DefaultConfig())

	long := strings.Repeat("é", 2000)
	if _, err := svc.GenerateElaboration(t.Context(), "T", "S", long, LevelBeginner); err != nil {
		t.Fatal(err)
	}

	msg := mock.Calls[0].Messages[0].Content
	if !utf8.ValidString(msg) {
		t.Error("prompt contains invalid UTF-8")
	}
	if strings.Contains(msg, strings.Repeat("é", elaborationContentLimit+1)) {
		t.Error("section content should be truncated before sending")
	}
	if !strings.Contains(msg, strings.Repeat("é", elaborationContentLimit)) {
		t.Error("truncated prefix should still be present")
	}
}

func TestGenerateElaborationEmptyResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage("   ")})
	svc := NewService(mock, DefaultConfig())

	if _, err := svc.GenerateElaboration(t.Context(), "T", "S", "C", LevelBeginner); err == nil {
		t.Fatal("expected error for empty elaboration")
	}
}
