// Package study implements the mastery tracking and review scheduling
// business logic: answer recording, Leitner scheduling, due queues, and the
// progress dashboard.
package study

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/cinevocab/backend/internal/domain"
	"github.com/cinevocab/backend/internal/service/study/leitner"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type masteryRepo interface {
	Get(ctx context.Context, userID, vocabularyID uuid.UUID) (*domain.MasteryRecord, error)
	UpsertAnswer(ctx context.Context, userID, vocabularyID uuid.UUID, params domain.MasteryUpdateParams) (*domain.MasteryRecord, error)
	UpsertSchedule(ctx context.Context, userID, vocabularyID uuid.UUID, params domain.ScheduleUpdateParams) (*domain.MasteryRecord, error)
	ListDue(ctx context.Context, userID uuid.UUID, today time.Time) ([]domain.MasteryRecord, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.MasteryRecord, error)
	CountByBox(ctx context.Context, userID uuid.UUID) ([]domain.BoxCount, error)
	CountMastered(ctx context.Context, userID uuid.UUID, threshold float64) (int, error)
	CountStudied(ctx context.Context, userID uuid.UUID) (int, error)
}

type vocabularyRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Vocabulary, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Vocabulary, error)
	Count(ctx context.Context) (int, error)
}

type wrongAnswerRecorder interface {
	RecordMiss(ctx context.Context, entry domain.WrongAnswerEntry) (*domain.WrongAnswerEntry, error)
	MarkMastered(ctx context.Context, userID, vocabularyID uuid.UUID) error
}

type streakRepo interface {
	Get(ctx context.Context, userID uuid.UUID) (*domain.LearningStreak, error)
	Upsert(ctx context.Context, s domain.LearningStreak) (*domain.LearningStreak, error)
}

type quizStatsRepo interface {
	CountCompleted(ctx context.Context, userID uuid.UUID) (int, error)
	AverageScore(ctx context.Context, userID uuid.UUID) (*float64, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Config holds the study service tunables.
type Config struct {
	// BoxIntervals maps each Leitner box to its review interval in days.
	BoxIntervals [domain.MaxBox + 1]int
	// MasteredThreshold is the score at which a word counts as mastered.
	MasteredThreshold float64
	// Location is the timezone for date-only comparisons.
	Location *time.Location
	// Now is the clock; defaults to time.Now.
	Now func() time.Time
}

// Service implements the study business logic.
type Service struct {
	mastery      masteryRepo
	vocabulary   vocabularyRepo
	wrongAnswers wrongAnswerRecorder
	streaks      streakRepo
	quizStats    quizStatsRepo
	tx           txManager
	log          *slog.Logger
	cfg          Config
}

// NewService creates a new Study service.
func NewService(
	log *slog.Logger,
	mastery masteryRepo,
	vocabulary vocabularyRepo,
	wrongAnswers wrongAnswerRecorder,
	streaks streakRepo,
	quizStats quizStatsRepo,
	tx txManager,
	cfg Config,
) *Service {
	if cfg.BoxIntervals == ([domain.MaxBox + 1]int{}) {
		cfg.BoxIntervals = leitner.DefaultIntervals
	}
	if cfg.MasteredThreshold <= 0 {
		cfg.MasteredThreshold = 0.8
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	return &Service{
		mastery:      mastery,
		vocabulary:   vocabulary,
		wrongAnswers: wrongAnswers,
		streaks:      streaks,
		quizStats:    quizStats,
		tx:           tx,
		log:          log.With("service", "study"),
		cfg:          cfg,
	}
}

// today returns the current date truncated to midnight in the service
// timezone.
func (s *Service) today() time.Time {
	now := s.cfg.Now().In(s.cfg.Location)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.cfg.Location)
}
