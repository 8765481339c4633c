package study

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cinevocab/backend/internal/domain"
	"github.com/cinevocab/backend/pkg/ctxutil"
)

// touchStreak marks today as a study day. A second answer on the same day is
// a no-op; a gap of more than one day resets the current streak to 1.
func (s *Service) touchStreak(ctx context.Context, userID uuid.UUID) error {
	today := s.today()

	current := domain.LearningStreak{UserID: userID}
	existing, err := s.streaks.Get(ctx, userID)
	switch {
	case err == nil:
		current = *existing
	case errors.Is(err, domain.ErrNotFound):
		// First study day ever.
	default:
		return fmt.Errorf("load streak: %w", err)
	}

	if current.LastStudyDate != nil {
		last := current.LastStudyDate.In(s.cfg.Location)
		lastDay := time.Date(last.Year(), last.Month(), last.Day(), 0, 0, 0, 0, s.cfg.Location)
		switch {
		case lastDay.Equal(today):
			return nil
		case lastDay.AddDate(0, 0, 1).Equal(today):
			current.CurrentStreak++
		default:
			current.CurrentStreak = 1
		}
	} else {
		current.CurrentStreak = 1
	}

	if current.CurrentStreak > current.LongestStreak {
		current.LongestStreak = current.CurrentStreak
	}
	current.TotalStudyDays++
	current.LastStudyDate = &today

	if _, err := s.streaks.Upsert(ctx, current); err != nil {
		return fmt.Errorf("save streak: %w", err)
	}
	return nil
}

// Streak returns the user's learning streak; a user who has never studied
// gets a zero streak rather than an error.
func (s *Service) Streak(ctx context.Context) (*domain.LearningStreak, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	streak, err := s.streaks.Get(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return &domain.LearningStreak{UserID: userID}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load streak: %w", err)
	}
	return streak, nil
}
