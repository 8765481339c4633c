package study

import (
	"context"
	"errors"
	"fmt"

	"github.com/cinevocab/backend/internal/domain"
	"github.com/cinevocab/backend/internal/service/study/leitner"
	"github.com/cinevocab/backend/pkg/ctxutil"
)

// RecordAnswerResult is the outcome of recording one answer.
type RecordAnswerResult struct {
	Record *domain.MasteryRecord
	Tier   domain.MasteryTier
	// NewlyMastered is true when this answer pushed the word over the
	// mastered threshold.
	NewlyMastered bool
}

// RecordAnswer applies one answered question to the user's mastery state:
// it bumps the answer counters, recomputes the mastery score, moves the word
// through the Leitner boxes, logs the miss in the wrong-answer book, and
// touches the learning streak. All writes happen in one transaction.
func (s *Service) RecordAnswer(ctx context.Context, in RecordAnswerInput) (*RecordAnswerResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	now := s.cfg.Now().In(s.cfg.Location)

	var result RecordAnswerResult
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		vocab, err := s.vocabulary.GetByID(ctx, in.VocabularyID)
		if err != nil {
			return fmt.Errorf("load vocabulary: %w", err)
		}

		correctCount, incorrectCount, box := 0, 0, domain.MinBox
		prevScore := 0.0
		current, err := s.mastery.Get(ctx, userID, in.VocabularyID)
		switch {
		case err == nil:
			correctCount = current.CorrectCount
			incorrectCount = current.IncorrectCount
			box = current.SRSBox
			prevScore = current.MasteryLevel
		case errors.Is(err, domain.ErrNotFound):
			// First answer for this word.
		default:
			return fmt.Errorf("load mastery record: %w", err)
		}

		if in.Correct {
			correctCount++
		} else {
			incorrectCount++
		}
		score := Score(correctCount, incorrectCount)

		if _, err := s.mastery.UpsertAnswer(ctx, userID, in.VocabularyID, domain.MasteryUpdateParams{
			CorrectCount:   correctCount,
			IncorrectCount: incorrectCount,
			MasteryLevel:   score,
			LastReviewedAt: &now,
		}); err != nil {
			return fmt.Errorf("save mastery record: %w", err)
		}

		move := leitner.Advance(s.cfg.BoxIntervals, box, in.Correct, now)
		record, err := s.mastery.UpsertSchedule(ctx, userID, in.VocabularyID, domain.ScheduleUpdateParams{
			SRSBox:          move.Box,
			SRSIntervalDays: move.IntervalDays,
			NextReviewDate:  &move.NextReview,
		})
		if err != nil {
			return fmt.Errorf("save review schedule: %w", err)
		}

		if !in.Correct {
			if _, err := s.wrongAnswers.RecordMiss(ctx, domain.WrongAnswerEntry{
				UserID:          userID,
				VocabularyID:    in.VocabularyID,
				WrongAnswer:     in.UserAnswer,
				CorrectAnswer:   in.CorrectAnswer,
				QuestionType:    in.QuestionType,
				QuestionContext: in.QuestionContext,
			}); err != nil {
				return fmt.Errorf("record miss: %w", err)
			}
		}

		newlyMastered := score >= s.cfg.MasteredThreshold && prevScore < s.cfg.MasteredThreshold
		if newlyMastered {
			if err := s.wrongAnswers.MarkMastered(ctx, userID, in.VocabularyID); err != nil {
				return fmt.Errorf("retire wrong answer entry: %w", err)
			}
		}

		if err := s.touchStreak(ctx, userID); err != nil {
			return fmt.Errorf("update streak: %w", err)
		}

		s.log.InfoContext(ctx, "answer recorded",
			"user_id", userID,
			"vocabulary_id", in.VocabularyID,
			"word", vocab.Word,
			"correct", in.Correct,
			"box", move.Box,
			"mastery", score,
		)

		result = RecordAnswerResult{
			Record:        record,
			Tier:          TierFor(score),
			NewlyMastered: newlyMastered,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
