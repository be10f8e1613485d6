package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendLesson(ctx context.Context, data LessonEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.LessonEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetTopic(data.Topic).
		SetSubTopic(data.SubTopic).
		SetLearningStyle(data.LearningStyle).
		SetKnowledgeLevel(data.KnowledgeLevel).
		SetRetry(data.Retry).
		SetLessonTitle(data.LessonTitle).
		SetSectionCount(data.SectionCount).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save lesson event: %w", err)
	}

	return nil
}

func (r *eventRepo) Stats(ctx context.Context) (*LearningStats, error) {
	stats := &LearningStats{}

	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*), COALESCE(SUM(retry), 0) FROM lesson_events`).
		Scan(&stats.LessonsGenerated, &stats.RetryLessons)
	if err != nil {
		return nil, fmt.Errorf("query lesson stats: %w", err)
	}

	err = r.db.QueryRowContext(ctx, `
		SELECT COUNT(*), COALESCE(SUM(passed), 0), COALESCE(AVG(score), 0)
		FROM quiz_events`).
		Scan(&stats.QuizzesTaken, &stats.QuizzesPassed, &stats.AvgScore)
	if err != nil {
		return nil, fmt.Errorf("query quiz stats: %w", err)
	}

	return stats, nil
}
