package lesson

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/priyam/learnsphere/internal/llm"
)

// Service generates lessons and elaborations through an LLM provider.
// Both calls are synchronous; the TUI layer runs them off the update loop.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a lesson generation service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

type lessonOutput struct {
	Title        string          `json:"title"`
	Introduction string          `json:"introduction"`
	Sections     []sectionOutput `json:"sections"`
	Quiz         []questionOutput `json:"quiz"`
}

type sectionOutput struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type questionOutput struct {
	Question           string   `json:"question"`
	Options            []string `json:"options"`
	CorrectAnswerIndex int      `json:"correctAnswerIndex"`
}

// GenerateLesson requests a full structured lesson. When isRetry is true
// the provider is asked for a simpler, more foundational version of the
// same topic, at slightly lower temperature.
func (s *Service) GenerateLesson(ctx context.Context, req Request, isRetry bool) (*Lesson, error) {
	ctx = llm.WithPurpose(ctx, "lesson")

	temp := s.cfg.Temperature
	if isRetry {
		temp = s.cfg.RetryTemperature
	}

	resp, err := s.provider.Generate(ctx, llm.Request{
		System: lessonSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildLessonUserMessage(req, isRetry)},
		},
		Schema:      LessonSchema,
		MaxTokens:   s.cfg.LessonMaxTokens,
		Temperature: temp,
	})
	if err != nil {
		return nil, fmt.Errorf("lesson generation: %w", err)
	}

	var out lessonOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse lesson response: %w", err)
	}

	l := &Lesson{
		Title:        out.Title,
		Introduction: out.Introduction,
	}
	for _, sec := range out.Sections {
		l.Sections = append(l.Sections, Section{Title: sec.Title, Content: sec.Content})
	}
	for _, q := range out.Quiz {
		l.Quiz = append(l.Quiz, QuizQuestion{
			Question:           q.Question,
			Options:            q.Options,
			CorrectAnswerIndex: q.CorrectAnswerIndex,
		})
	}

	if err := l.Validate(); err != nil {
		return nil, fmt.Errorf("invalid lesson structure: %w", err)
	}

	return l, nil
}

// GenerateElaboration requests a short analogy for one section. The
// section content is truncated to a bounded prefix before sending.
func (s *Service) GenerateElaboration(ctx context.Context, mainTopic, sectionTitle, sectionContent string, level KnowledgeLevel) (string, error) {
	ctx = llm.WithPurpose(ctx, "elaboration")

	resp, err := s.provider.Generate(ctx, llm.Request{
		System: elaborationSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildElaborationUserMessage(mainTopic, sectionTitle, sectionContent, level)},
		},
		MaxTokens:   s.cfg.ElaborationMaxTokens,
		Temperature: s.cfg.ElaborationTemperature,
	})
	if err != nil {
		return "", fmt.Errorf("elaboration generation: %w", err)
	}

	text := strings.TrimSpace(string(resp.Content))
	if text == "" {
		return "", fmt.Errorf("elaboration generation: empty response")
	}

	return text, nil
}
