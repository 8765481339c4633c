package study

import (
	"context"
	"errors"
	"fmt"

	"github.com/cinevocab/backend/internal/domain"
	"github.com/cinevocab/backend/pkg/ctxutil"
)

// Dashboard assembles the user's progress overview: catalog coverage,
// mastered and due counts, box distribution, quiz totals, and the current
// streak.
func (s *Service) Dashboard(ctx context.Context) (*domain.Dashboard, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	total, err := s.vocabulary.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count vocabulary: %w", err)
	}

	studied, err := s.mastery.CountStudied(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count studied: %w", err)
	}

	mastered, err := s.mastery.CountMastered(ctx, userID, s.cfg.MasteredThreshold)
	if err != nil {
		return nil, fmt.Errorf("count mastered: %w", err)
	}

	due, err := s.mastery.ListDue(ctx, userID, s.today())
	if err != nil {
		return nil, fmt.Errorf("list due records: %w", err)
	}

	boxCounts, err := s.mastery.CountByBox(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count by box: %w", err)
	}

	quizzes, err := s.quizStats.CountCompleted(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count quizzes: %w", err)
	}

	avgScore, err := s.quizStats.AverageScore(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("average quiz score: %w", err)
	}

	currentStreak := 0
	streak, err := s.streaks.Get(ctx, userID)
	switch {
	case err == nil:
		currentStreak = streak.CurrentStreak
	case errors.Is(err, domain.ErrNotFound):
		// Never studied; streak stays 0.
	default:
		return nil, fmt.Errorf("load streak: %w", err)
	}

	neverStudied := total - studied
	if neverStudied < 0 {
		neverStudied = 0
	}

	return &domain.Dashboard{
		TotalVocabulary: total,
		MasteredCount:   mastered,
		DueCount:        len(due),
		NeverStudied:    neverStudied,
		BoxCounts:       boxCounts,
		TotalQuizzes:    quizzes,
		AverageScore:    avgScore,
		CurrentStreak:   currentStreak,
	}, nil
}
