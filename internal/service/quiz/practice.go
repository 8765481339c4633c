package quiz

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/cinevocab/backend/internal/domain"
	"github.com/cinevocab/backend/pkg/ctxutil"
)

// PracticeQuestions builds a quiz targeting the user's weak spots: the
// vocabulary behind the live wrong-answer entries, worst first. Questions
// carry the part-of-speech hint and the movie line. Count 0 uses the
// configured default; a negative count or an empty wrong-answer book yields
// an empty quiz.
func (s *Service) PracticeQuestions(ctx context.Context, count int) ([]domain.Question, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	if count < 0 {
		return []domain.Question{}, nil
	}
	if count == 0 {
		count = s.cfg.DefaultQuestionCount
	}
	if count > s.cfg.MaxQuestionCount {
		count = s.cfg.MaxQuestionCount
	}

	spots, err := s.weakSpots.Weakness(ctx)
	if err != nil {
		return nil, fmt.Errorf("load weak spots: %w", err)
	}
	if len(spots) == 0 {
		return []domain.Question{}, nil
	}
	if count > len(spots) {
		count = len(spots)
	}

	ids := make([]uuid.UUID, 0, len(spots))
	for _, spot := range spots {
		ids = append(ids, spot.VocabularyID)
	}
	targets, err := s.vocabulary.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load weak vocabulary: %w", err)
	}
	byID := make(map[uuid.UUID]domain.Vocabulary, len(targets))
	for _, v := range targets {
		byID[v.ID] = v
	}

	// Distractors come from the whole pool, not just the weak words.
	pool, err := s.vocabulary.List(ctx, domain.VocabularyFilter{})
	if err != nil {
		return nil, fmt.Errorf("load vocabulary pool: %w", err)
	}

	allowed := domain.AllQuestionTypes()

	questions := make([]domain.Question, 0, count)
	for _, spot := range spots {
		if len(questions) == count {
			break
		}
		target, ok := byID[spot.VocabularyID]
		if !ok {
			continue
		}
		qtype := allowed[s.cfg.Rand.Intn(len(allowed))]

		q, err := s.buildQuestion(pool, target, qtype, true)
		if errors.Is(err, errInsufficientDistractors) {
			s.log.DebugContext(ctx, "practice question skipped",
				"vocabulary_id", target.ID,
				"word", target.Word,
			)
			continue
		}
		if err != nil {
			return nil, err
		}
		questions = append(questions, *q)
	}
	return questions, nil
}
