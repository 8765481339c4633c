// Package wronganswer implements the wrong-answer book: it keeps one live
// entry per missed word, counts repeat misses, retires entries once the word
// is mastered, and aggregates the user's weak spots.
package wronganswer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/cinevocab/backend/internal/domain"
	"github.com/cinevocab/backend/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type wrongAnswerRepo interface {
	GetLive(ctx context.Context, userID, vocabularyID uuid.UUID) (*domain.WrongAnswerEntry, error)
	Create(ctx context.Context, entry domain.WrongAnswerEntry) (*domain.WrongAnswerEntry, error)
	IncrementMiss(ctx context.Context, id uuid.UUID, wrongAnswer, correctAnswer string, questionType domain.QuestionType, questionContext *string) (*domain.WrongAnswerEntry, error)
	MarkMastered(ctx context.Context, userID, vocabularyID uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID, filter domain.WrongAnswerFilter) ([]domain.WrongAnswerEntry, error)
	WeaknessAnalysis(ctx context.Context, userID uuid.UUID, limit int) ([]domain.WeakSpot, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Config holds the wrong-answer service tunables.
type Config struct {
	// WeaknessLimit caps the weakness analysis result.
	WeaknessLimit int
}

// Service implements the wrong-answer book business logic.
type Service struct {
	entries wrongAnswerRepo
	log     *slog.Logger
	cfg     Config
}

// NewService creates a new WrongAnswer service.
func NewService(log *slog.Logger, entries wrongAnswerRepo, cfg Config) *Service {
	if cfg.WeaknessLimit <= 0 {
		cfg.WeaknessLimit = 20
	}
	return &Service{
		entries: entries,
		log:     log.With("service", "wronganswer"),
		cfg:     cfg,
	}
}

// RecordMiss logs one missed question. A repeat miss on a word with a live
// entry bumps its counter and overwrites the answer snapshot; otherwise a
// fresh entry starts at one miss, even if the word was mastered and
// relapsed.
func (s *Service) RecordMiss(ctx context.Context, entry domain.WrongAnswerEntry) (*domain.WrongAnswerEntry, error) {
	if err := validateEntry(entry); err != nil {
		return nil, err
	}

	live, err := s.entries.GetLive(ctx, entry.UserID, entry.VocabularyID)
	switch {
	case err == nil:
		updated, err := s.entries.IncrementMiss(ctx, live.ID,
			entry.WrongAnswer, entry.CorrectAnswer, entry.QuestionType, entry.QuestionContext)
		if err != nil {
			return nil, fmt.Errorf("increment miss: %w", err)
		}
		return updated, nil
	case errors.Is(err, domain.ErrNotFound):
		entry.ID = uuid.New()
		entry.TimesWrong = 1
		created, err := s.entries.Create(ctx, entry)
		if err != nil {
			return nil, fmt.Errorf("create wrong answer entry: %w", err)
		}
		s.log.InfoContext(ctx, "wrong answer logged",
			"user_id", entry.UserID,
			"vocabulary_id", entry.VocabularyID,
		)
		return created, nil
	default:
		return nil, fmt.Errorf("load live entry: %w", err)
	}
}

// MarkMastered retires the live entry for the pair, keeping it as history.
// A pair with no live entry is a no-op.
func (s *Service) MarkMastered(ctx context.Context, userID, vocabularyID uuid.UUID) error {
	if userID == uuid.Nil {
		return domain.NewValidationError("user_id", "required")
	}
	if vocabularyID == uuid.Nil {
		return domain.NewValidationError("vocabulary_id", "required")
	}
	if err := s.entries.MarkMastered(ctx, userID, vocabularyID); err != nil {
		return fmt.Errorf("mark mastered: %w", err)
	}
	return nil
}

// List returns the acting user's wrong-answer entries matching the filter.
func (s *Service) List(ctx context.Context, in ListInput) ([]domain.WrongAnswerEntry, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	entries, err := s.entries.List(ctx, userID, domain.WrongAnswerFilter{
		MovieID:  in.MovieID,
		Level:    in.Level,
		Mastered: in.Mastered,
		Limit:    in.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("list wrong answers: %w", err)
	}
	return entries, nil
}

// Weakness returns the acting user's most-missed unmastered words, worst
// first.
func (s *Service) Weakness(ctx context.Context) ([]domain.WeakSpot, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	spots, err := s.entries.WeaknessAnalysis(ctx, userID, s.cfg.WeaknessLimit)
	if err != nil {
		return nil, fmt.Errorf("weakness analysis: %w", err)
	}
	return spots, nil
}

func validateEntry(entry domain.WrongAnswerEntry) error {
	var errs []domain.FieldError

	if entry.UserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	if entry.VocabularyID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "vocabulary_id", Message: "required"})
	}
	if entry.WrongAnswer == "" {
		errs = append(errs, domain.FieldError{Field: "wrong_answer", Message: "required"})
	}
	if entry.CorrectAnswer == "" {
		errs = append(errs, domain.FieldError{Field: "correct_answer", Message: "required"})
	}
	if !entry.QuestionType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "question_type", Message: "must be WORD_TO_MEANING, MEANING_TO_WORD, or CLOZE_TO_MEANING"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
