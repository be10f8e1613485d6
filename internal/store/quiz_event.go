package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendQuiz(ctx context.Context, data QuizEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.QuizEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetTopic(data.Topic).
		SetScore(data.Score).
		SetTotal(data.Total).
		SetPassed(data.Passed).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save quiz event: %w", err)
	}

	return nil
}
