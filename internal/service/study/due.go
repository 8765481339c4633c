package study

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/cinevocab/backend/internal/domain"
	"github.com/cinevocab/backend/pkg/ctxutil"
)

// DueReviews returns the user's words due for review today, words never
// scheduled included, joined with their vocabulary entries.
func (s *Service) DueReviews(ctx context.Context) ([]domain.DueReview, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	records, err := s.mastery.ListDue(ctx, userID, s.today())
	if err != nil {
		return nil, fmt.Errorf("list due records: %w", err)
	}
	if len(records) == 0 {
		return []domain.DueReview{}, nil
	}

	ids := make([]uuid.UUID, 0, len(records))
	for _, rec := range records {
		ids = append(ids, rec.VocabularyID)
	}
	vocab, err := s.vocabulary.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load due vocabulary: %w", err)
	}

	byID := make(map[uuid.UUID]domain.Vocabulary, len(vocab))
	for _, v := range vocab {
		byID[v.ID] = v
	}

	reviews := make([]domain.DueReview, 0, len(records))
	for _, rec := range records {
		v, ok := byID[rec.VocabularyID]
		if !ok {
			// Vocabulary row deleted since scheduling; skip.
			continue
		}
		reviews = append(reviews, domain.DueReview{Record: rec, Vocabulary: v})
	}
	return reviews, nil
}

// MasteryStatus is the per-word progress view.
type MasteryStatus struct {
	Record *domain.MasteryRecord
	Tier   domain.MasteryTier
	// NeededCorrect is how many consecutive correct answers remain until
	// the word counts as mastered; -1 means unreachable.
	NeededCorrect int
}

// Mastery returns the user's mastery record and tier for one word. A word
// never answered yields a zeroed record in the NOT_STARTED tier.
func (s *Service) Mastery(ctx context.Context, vocabularyID uuid.UUID) (*MasteryStatus, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if vocabularyID == uuid.Nil {
		return nil, domain.NewValidationError("vocabulary_id", "required")
	}

	record, err := s.mastery.Get(ctx, userID, vocabularyID)
	if errors.Is(err, domain.ErrNotFound) {
		if _, err := s.vocabulary.GetByID(ctx, vocabularyID); err != nil {
			return nil, fmt.Errorf("load vocabulary: %w", err)
		}
		record = &domain.MasteryRecord{UserID: userID, VocabularyID: vocabularyID}
	} else if err != nil {
		return nil, fmt.Errorf("load mastery record: %w", err)
	}

	return &MasteryStatus{
		Record:        record,
		Tier:          TierFor(record.MasteryLevel),
		NeededCorrect: NeededCorrect(record.CorrectCount, record.IncorrectCount, s.cfg.MasteredThreshold),
	}, nil
}
